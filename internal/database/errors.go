package database

import "errors"

var (
	// ErrInvalidData indicates project data that cannot be used for layout
	ErrInvalidData = errors.New("invalid project data")

	// ErrUnknownSource indicates a data source kind with no implementation
	ErrUnknownSource = errors.New("unknown data source")
)
