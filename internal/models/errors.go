package models

import "errors"

// Domain-specific errors for parsing and validating project data
var (
	// ErrInvalidStatus indicates a task status outside todo/inprogress/review/completed
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority indicates a task priority outside low/medium/high
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidFilter indicates an unknown timeline filter
	ErrInvalidFilter = errors.New("invalid filter")
)
