package database

import (
	"context"

	"github.com/thenoetrevino/plazo/internal/models"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	ReplaceAllProjects(ctx context.Context, projects []*models.Project) error
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}
