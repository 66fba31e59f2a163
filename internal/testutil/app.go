package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/plazo/internal/app"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

// Today is the fixed clock used by test apps
var Today = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// NewTestApp creates an App over the given projects, or the sample dataset
// when none are given, with the clock fixed at Today.
func NewTestApp(t *testing.T, projects ...*models.Project) *app.App {
	t.Helper()
	if len(projects) == 0 {
		projects = database.MockProjects()
	}
	a := app.New(database.NewMemoryStore(projects), config.Default(), FixedClock(Today))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// FixedClock pins the layout engine's notion of now
func FixedClock(now time.Time) timeline.Option {
	return timeline.WithClock(func() time.Time { return now })
}
