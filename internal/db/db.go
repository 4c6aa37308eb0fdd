package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenMemory opens a process-lifetime in-memory SQLite database and runs
// migrations. The pool is pinned to a single connection: every connection
// to ":memory:" gets its own database, so more than one would silently
// split the store.
func OpenMemory() (*sql.DB, error) {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}
