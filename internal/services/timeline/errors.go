package timeline

import "errors"

// Domain errors for the timeline service
var (
	// Validation errors
	ErrInvalidColumnWidth = errors.New("column width must be positive")

	// Business logic errors
	ErrNoProjects = errors.New("no projects available")
)
