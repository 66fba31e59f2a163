package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/plazo/internal/models"
)

// SQLiteStore serves projects from a SQLite database
type SQLiteStore struct {
	*ProjectRepo
	db   *sql.DB
	path string
}

// OpenSQLite initialises the database at path and wraps it in a store
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db, path), nil
}

// NewSQLiteStore wraps an initialised database connection
func NewSQLiteStore(db *sql.DB, path string) *SQLiteStore {
	return &SQLiteStore{ProjectRepo: NewProjectRepo(db), db: db, path: path}
}

// ImportProjects replaces the stored dataset with projects
func (s *SQLiteStore) ImportProjects(ctx context.Context, projects []*models.Project) error {
	return s.ReplaceAllProjects(ctx, projects)
}

// Path returns the database file location
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the underlying connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
