package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

func TestResultRepository_Disabled(t *testing.T) {
	repo := NewResultRepositoryFromServices(services.NewMemoryServices())

	_, err := repo.SubmitResults(context.Background(), models.ResultsPayload{})
	require.ErrorIs(t, err, ErrResultsDisabled)

	_, err = repo.GetStandings(context.Background(), nil)
	require.ErrorIs(t, err, ErrResultsDisabled)
}

// TestResultRepository_Postgres needs a disposable database in OTHELLO_TEST_POSTGRES_URL.
func TestResultRepository_Postgres(t *testing.T) {
	url := os.Getenv("OTHELLO_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("OTHELLO_TEST_POSTGRES_URL is not set")
	}

	db, err := services.InitPostgres(url)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("TRUNCATE match_results")
	require.NoError(t, err)

	svc := services.NewMemoryServices()
	svc.Postgres = db
	repo := NewResultRepositoryFromServices(svc)
	ctx := context.Background()

	win := models.NewMatchResult("greedy", "random", 8, 8, game.ScoreRule, game.Result{Winner: game.BlackWins, Black: 40, White: 24, Moves: 60})
	loss := models.NewMatchResult("greedy", "random", 8, 8, game.ScoreRule, game.Result{Winner: game.WhiteWins, Black: 20, White: 44, Moves: 60})
	draw := models.NewMatchResult("random", "random", 8, 8, game.ScoreRule, game.Result{Winner: game.Draw, Black: 32, White: 32, Moves: 60})

	payload := models.ResultsPayload{
		RunID:   uuid.New(),
		Results: []models.MatchResult{win, loss, draw},
	}

	inserted, err := repo.SubmitResults(ctx, payload)
	require.NoError(t, err)
	require.Equal(t, int64(3), inserted)

	// Submitting the same results again is a no-op.
	inserted, err = repo.SubmitResults(ctx, payload)
	require.NoError(t, err)
	require.Equal(t, int64(0), inserted)

	standings, err := repo.GetStandings(ctx, nil)
	require.NoError(t, err)
	require.Len(t, standings, 2)

	require.Equal(t, "greedy", standings[0].Black)
	require.Equal(t, 2, standings[0].Matches)
	require.Equal(t, 1, standings[0].BlackWins)
	require.Equal(t, 1, standings[0].WhiteWins)

	require.Equal(t, "random", standings[1].Black)
	require.Equal(t, 1, standings[1].Draws)

	standings, err = repo.GetStandings(ctx, []string{"greedy"})
	require.NoError(t, err)
	require.Len(t, standings, 1)
}
