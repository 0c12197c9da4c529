package services

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Load the postgres driver
)

// InitPostgres connects to postgres and makes sure the results table exists.
func InitPostgres(url string) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS match_results (
	id          UUID PRIMARY KEY,
	run_id      UUID NOT NULL,
	black       TEXT NOT NULL,
	white       TEXT NOT NULL,
	width       INTEGER NOT NULL,
	height      INTEGER NOT NULL,
	rule        TEXT NOT NULL,
	winner      TEXT NOT NULL,
	black_discs INTEGER NOT NULL,
	white_discs INTEGER NOT NULL,
	moves       INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS match_results_run_id ON match_results (run_id);
`
