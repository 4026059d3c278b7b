package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied at startup; every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS players (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	avatar_key TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tournaments (
	id         SERIAL PRIMARY KEY,
	status     TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS matches (
	id            SERIAL PRIMARY KEY,
	tournament_id INTEGER NOT NULL REFERENCES tournaments(id),
	round         INTEGER NOT NULL,
	player1_id    INTEGER REFERENCES players(id),
	player2_id    INTEGER REFERENCES players(id),
	score1        INTEGER NOT NULL DEFAULT 0,
	score2        INTEGER NOT NULL DEFAULT 0,
	winner_id     INTEGER REFERENCES players(id),
	sets_detail   TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_matches_tournament_round ON matches (tournament_id, round, id);
CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments (status, id);
`

// EnsureSchema creates the tables on first run.
func EnsureSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	return nil
}
