package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database holding the local profile library. Profiles
// are stored whole as their canonical JSON under a unique name, so the
// library never needs to understand the config schema.
type DB struct {
	*sql.DB
}

// New opens (or creates) the library database at path and brings its schema
// up to date.
func New(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening library database: %w", err)
	}

	// WAL keeps saves from the wizard and reads from `lpm library list`
	// from blocking each other
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}

	database := &DB{DB: sqlDB}

	if err := database.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}
