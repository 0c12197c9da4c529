package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
)

var ErrResultsDisabled = errors.New("results storage is not configured")

// ResultRepository stores arena match results in postgres.
type ResultRepository struct {
	services *services.Services
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(c *fiber.Ctx) *ResultRepository {
	return &ResultRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewResultRepositoryFromServices(services *services.Services) *ResultRepository {
	return &ResultRepository{
		services: services,
	}
}

func (repo *ResultRepository) db() (*sqlx.DB, error) {
	if repo.services.Postgres == nil {
		return nil, ErrResultsDisabled
	}
	return repo.services.Postgres, nil
}

// matchResultRow is a MatchResult with the run it belongs to.
type matchResultRow struct {
	models.MatchResult
	RunID string `db:"run_id"`
}

// SubmitResults stores a batch of results in a single transaction.
// Results that were submitted before are ignored.
func (repo *ResultRepository) SubmitResults(ctx context.Context, payload models.ResultsPayload) (int64, error) {
	pgConn, err := repo.db()
	if err != nil {
		return 0, err
	}

	rows := make([]matchResultRow, len(payload.Results))
	for i, result := range payload.Results {
		rows[i] = matchResultRow{MatchResult: result, RunID: payload.RunID.String()}
	}

	tx, err := pgConn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO match_results (id, run_id, black, white, width, height, rule, winner, black_discs, white_discs, moves)
		VALUES (:id, :run_id, :black, :white, :width, :height, :rule, :winner, :black_discs, :white_discs, :moves)
		ON CONFLICT (id) DO NOTHING
	`

	var inserted int64
	for _, row := range rows {
		result, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return 0, fmt.Errorf("error inserting result %s: %w", row.ID, err)
		}

		count, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("error counting inserted rows: %w", err)
		}
		inserted += count
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing results: %w", err)
	}

	return inserted, nil
}

// GetStandings aggregates results per strategy pairing. If strategies is not
// empty, only pairings involving one of them are returned.
func (repo *ResultRepository) GetStandings(ctx context.Context, strategies []string) ([]models.Standing, error) {
	pgConn, err := repo.db()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			black,
			white,
			COUNT(*) AS matches,
			COUNT(*) FILTER (WHERE winner = 'black') AS black_wins,
			COUNT(*) FILTER (WHERE winner = 'white') AS white_wins,
			COUNT(*) FILTER (WHERE winner = 'draw') AS draws,
			MAX(created_at) AS last_play
		FROM match_results
		WHERE cardinality($1::TEXT[]) = 0 OR black = ANY($1) OR white = ANY($1)
		GROUP BY black, white
		ORDER BY black, white
	`

	if strategies == nil {
		strategies = []string{}
	}

	standings := make([]models.Standing, 0)
	if err = pgConn.SelectContext(ctx, &standings, query, pq.Array(strategies)); err != nil {
		return nil, fmt.Errorf("error getting standings: %w", err)
	}

	return standings, nil
}
