package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the session schema if needed. Statements are idempotent.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			owner TEXT NOT NULL DEFAULT '',
			columns_per_row INTEGER NOT NULL CHECK (columns_per_row > 0),
			next_row_seq INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_rows (
			session_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			row_id TEXT NOT NULL,
			PRIMARY KEY (session_id, row_id),
			UNIQUE (session_id, position),
			FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS session_columns (
			session_id TEXT NOT NULL,
			row_id TEXT NOT NULL,
			column_index INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (session_id, row_id, column_index),
			FOREIGN KEY (session_id, row_id) REFERENCES session_rows(session_id, row_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
