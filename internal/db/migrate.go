package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; every statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id               TEXT PRIMARY KEY,
		session_key      TEXT NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		start_datetime   TEXT NOT NULL,
		end_datetime     TEXT NOT NULL,
		location         TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT 'personal',
		reminder_minutes INTEGER NOT NULL DEFAULT 30,
		recurrence       TEXT NOT NULL DEFAULT 'none'
		                 CHECK(recurrence IN ('none','daily','weekly','monthly','yearly')),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_key)`,
	`CREATE INDEX IF NOT EXISTS idx_events_session_start ON events(session_key, start_datetime)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
