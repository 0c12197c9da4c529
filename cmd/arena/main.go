package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/lk16/reversi/internal/arena"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
)

func main() {
	config.SetLogLevel()

	black := flag.String("black", "greedy", "strategy playing black")
	white := flag.String("white", "random", "strategy playing white")
	matches := flag.Int("n", 100, "number of matches") //nolint:mnd
	size := flag.String("size", "8x8", "board size as WIDTHxHEIGHT")
	workers := flag.Int("workers", runtime.NumCPU(), "number of matches played concurrently")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the random strategy")
	ruleName := flag.String("rule", "score", "winner rule: score or stalemate")
	submit := flag.Bool("submit", false, "submit the results to the server")
	flag.Parse()

	if err := run(*black, *white, *matches, *size, *workers, *seed, *ruleName, *submit); err != nil {
		slog.Error("Arena failed", "error", err)
		os.Exit(1)
	}
}

func parseSize(s string) (int, int, error) {
	var width, height int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	if width < 2 || height < 2 {
		return 0, 0, errors.New("board size too small")
	}

	if width > config.MaxBoardSize || height > config.MaxBoardSize {
		return 0, 0, errors.New("board size too big")
	}

	return width, height, nil
}

func run(black, white string, matches int, size string, workers int, seed int64, ruleName string, submit bool) error {
	width, height, err := parseSize(size)
	if err != nil {
		return err
	}

	rule, err := game.ParseWinnerRule(ruleName)
	if err != nil {
		return err
	}

	cfg := &arena.Config{
		Black:   black,
		White:   white,
		Matches: matches,
		Width:   width,
		Height:  height,
		Workers: workers,
		Seed:    seed,
		Rule:    rule,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("Starting arena", "black", black, "white", white, "matches", matches, "size", size, "seed", seed, "rule", rule)

	start := time.Now()
	result, err := arena.Play(ctx, cfg)
	if err != nil {
		return err
	}

	summary := result.Summary()
	slog.Info("Arena finished",
		"run_id", result.ID,
		"matches", summary.Matches,
		"black_wins", summary.BlackWins,
		"white_wins", summary.WhiteWins,
		"draws", summary.Draws,
		"duration", time.Since(start),
	)

	if !submit {
		return nil
	}

	client := arena.NewAPIClient(config.LoadArenaConfig())

	inserted, err := client.SubmitResults(ctx, result.Payload())
	if err != nil {
		return err
	}

	slog.Info("Submitted results", "run_id", result.ID, "inserted", inserted)
	return nil
}
