package cli

import (
	"errors"
	"io/fs"

	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/models"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
)

// Failure describes how a command error is reported
type Failure struct {
	ExitCode   int
	Code       string
	Suggestion string
}

// Classify maps an error to its exit code, machine-readable code and a hint
func Classify(err error) Failure {
	switch {
	case errors.Is(err, timelineservice.ErrNoProjects):
		return Failure{ExitNotFound, "NO_PROJECTS", "Import projects with: plazo import <file.yaml> --source sqlite"}
	case errors.Is(err, fs.ErrNotExist):
		return Failure{ExitNotFound, "FILE_NOT_FOUND", "Check the path and try again"}
	case errors.Is(err, database.ErrInvalidData):
		return Failure{ExitDataErr, "INVALID_DATA", "Dates must be YYYY-MM-DD and project ids unique"}
	case errors.Is(err, models.ErrInvalidFilter):
		return Failure{ExitValidation, "INVALID_FILTER", "Use one of: all, todo, in-progress, completed"}
	case errors.Is(err, timelineservice.ErrInvalidColumnWidth):
		return Failure{ExitValidation, "INVALID_ZOOM", "Zoom is the day column width in pixels, e.g. --zoom 40"}
	case errors.Is(err, database.ErrUnknownSource), errors.Is(err, config.ErrInvalidConfig):
		return Failure{ExitUsage, "INVALID_DATA_SOURCE", "Use --source mock, yaml or sqlite (yaml needs --data <file>)"}
	}
	return Failure{ExitError, "ERROR", ""}
}

// Fail reports err through the formatter and returns it with its exit code
func Fail(f *OutputFormatter, err error) error {
	failure := Classify(err)
	_ = f.ErrorWithSuggestion(failure.Code, err.Error(), failure.Suggestion)
	return WithExitCode(failure.ExitCode, err)
}
