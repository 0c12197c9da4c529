package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/selector"
)

var ErrInvalidRun = errors.New("invalid arena run")

// Config describes a series of matches between two strategies.
type Config struct {
	Black   string
	White   string
	Matches int
	Width   int
	Height  int
	Workers int
	Seed    int64
	Rule    game.WinnerRule
}

// Validate validates the run config.
func (c *Config) Validate() error {
	for _, name := range []string{c.Black, c.White} {
		if _, err := selector.New(name, 0); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRun, err)
		}
	}

	if c.Matches < 1 {
		return fmt.Errorf("%w: need at least one match", ErrInvalidRun)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: need at least one worker", ErrInvalidRun)
	}

	return nil
}

// Summary tallies the outcomes of a run.
type Summary struct {
	Matches   int
	BlackWins int
	WhiteWins int
	Draws     int
}

// Run is the outcome of all matches of a run, in match order.
type Run struct {
	ID      uuid.UUID
	Results []models.MatchResult
}

// Payload converts the run into a payload for the server.
func (r *Run) Payload() models.ResultsPayload {
	return models.ResultsPayload{
		RunID:   r.ID,
		Results: r.Results,
	}
}

// Summary tallies the results.
func (r *Run) Summary() Summary {
	summary := Summary{Matches: len(r.Results)}

	for _, result := range r.Results {
		switch result.Winner.Outcome {
		case game.BlackWins:
			summary.BlackWins++
		case game.WhiteWins:
			summary.WhiteWins++
		default:
			summary.Draws++
		}
	}

	return summary
}

// matchSeeds derives the seeds of both players of a match, so every match is
// reproducible regardless of which worker plays it.
func matchSeeds(seed int64, match int) (int64, int64) {
	base := seed + 2*int64(match) //nolint:mnd
	return base, base + 1
}

// PlayMatch plays match number match of the run.
func PlayMatch(ctx context.Context, cfg *Config, match int) (models.MatchResult, error) {
	blackSeed, whiteSeed := matchSeeds(cfg.Seed, match)

	black, err := selector.New(cfg.Black, blackSeed)
	if err != nil {
		return models.MatchResult{}, err
	}

	white, err := selector.New(cfg.White, whiteSeed)
	if err != nil {
		return models.MatchResult{}, err
	}

	g, err := game.New(cfg.Width, cfg.Height, cfg.Rule)
	if err != nil {
		return models.MatchResult{}, err
	}

	result, err := game.Run(ctx, g, black, white, nil)
	if err != nil {
		return models.MatchResult{}, fmt.Errorf("match %d: %w", match, err)
	}

	return models.NewMatchResult(cfg.Black, cfg.White, cfg.Width, cfg.Height, cfg.Rule, result), nil
}

// Play plays all matches of the run on cfg.Workers goroutines.
// It stops at the first failed match.
func Play(ctx context.Context, cfg *Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]models.MatchResult, cfg.Matches)
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for range min(cfg.Workers, cfg.Matches) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for match := range jobs {
				result, err := PlayMatch(ctx, cfg, match)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				results[match] = result
			}
		}()
	}

feed:
	for match := range cfg.Matches {
		select {
		case jobs <- match:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Run{
		ID:      uuid.New(),
		Results: results,
	}, nil
}
