// Package database loads projects from the configured data source: the
// built-in sample set, a YAML file or a SQLite database.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

var pragmas = []struct {
	stmt string
	desc string
}{
	// Required for CASCADE deletions
	{"PRAGMA foreign_keys = ON", "enable foreign keys"},
	{"PRAGMA journal_mode = WAL", "enable WAL mode"},
	// SQLite retries for this duration before returning SQLITE_BUSY
	{"PRAGMA busy_timeout = 5000", "set busy timeout"},
}

// InitDB opens the SQLite database at path, creating its directory, and
// brings the schema up to date.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps an in-memory database alive and serialises writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if path == MemoryPath && p.stmt == "PRAGMA journal_mode = WAL" {
			continue
		}
		if _, err := db.ExecContext(ctx, p.stmt); err != nil {
			slog.Error("failed to "+p.desc, "error", err)
			closeDB(db)
			return nil, fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
