package timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/resolver"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type failingRepo struct{ err error }

func (f failingRepo) GetAllProjects(context.Context) ([]*models.Project, error) {
	return nil, f.err
}

func clockAt(s string) *timeline.Engine {
	now := models.MustParseDate(s).Time.Add(9 * time.Hour)
	return timeline.NewEngine(timeline.WithClock(func() time.Time { return now }))
}

func newTestService(t *testing.T, today string) Service {
	t.Helper()
	return NewService(database.NewMockStore(), clockAt(today))
}

// ============================================================================
// TESTS
// ============================================================================

func TestListProjects(t *testing.T) {
	svc := newTestService(t, "2026-10-15")

	projects, err := svc.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 5)
}

func TestListProjects_RepositoryError(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(failingRepo{err: boom}, nil)

	_, err := svc.ListProjects(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestResolve(t *testing.T) {
	svc := newTestService(t, "2026-10-15")

	tests := []struct {
		name  string
		query any
		want  string
		rule  resolver.Rule
		index int
	}{
		{"numeric", "4", "proj4", resolver.RuleNumericID, 3},
		{"int", 2, "proj2", resolver.RuleNumericID, 1},
		{"exact id", "proj3", "proj3", resolver.RuleExactID, 2},
		{"partial name", "marketing", "proj4", resolver.RulePartialName, 3},
		{"empty", "", "proj1", resolver.RuleEmptyQuery, 0},
		{"unknown", "zzz", "proj1", resolver.RuleFallback, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Resolve(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Project.ID)
			assert.Equal(t, tt.rule, res.Rule)
			assert.Equal(t, tt.index, res.Index)
		})
	}
}

func TestResolve_NoProjects(t *testing.T) {
	svc := NewService(database.NewMemoryStore(nil), nil)

	_, err := svc.Resolve(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNoProjects)
}

func TestLayout(t *testing.T) {
	svc := newTestService(t, "2026-10-15")

	res, err := svc.Layout(context.Background(), LayoutRequest{Query: "proj4", ColumnWidth: 40})
	require.NoError(t, err)

	assert.Equal(t, "proj4", res.Project.ID)
	assert.Equal(t, models.FilterAll, res.Filter)
	assert.Equal(t, 92, res.SpanDays)
	assert.Equal(t, 92*40, res.TotalWidth)
	assert.Len(t, res.Days, 92)
	require.Len(t, res.Bars, 5)

	// Creative assets: Oct 5 to Oct 25
	assert.Equal(t, 4*40, res.Bars[1].Left)
	assert.Equal(t, 21*40, res.Bars[1].Width)

	assert.True(t, res.TodayVisible)
	assert.Equal(t, 14*40, res.TodayOffset)
}

func TestLayout_Filter(t *testing.T) {
	svc := newTestService(t, "2026-10-15")

	res, err := svc.Layout(context.Background(), LayoutRequest{
		Query:       "Marketing",
		ColumnWidth: 20,
		Filter:      "inprogress",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FilterInProgress, res.Filter)
	require.Len(t, res.Bars, 1)
	assert.Equal(t, "task14", res.Bars[0].Task.ID)
}

func TestLayout_TodayBeforeProject(t *testing.T) {
	svc := newTestService(t, "2026-10-15")

	res, err := svc.Layout(context.Background(), LayoutRequest{Query: "5", ColumnWidth: 40})
	require.NoError(t, err)
	assert.False(t, res.TodayVisible)
	assert.Zero(t, res.TodayOffset)
}

func TestLayout_Validation(t *testing.T) {
	svc := newTestService(t, "2026-10-15")

	_, err := svc.Layout(context.Background(), LayoutRequest{ColumnWidth: 0})
	assert.ErrorIs(t, err, ErrInvalidColumnWidth)

	_, err = svc.Layout(context.Background(), LayoutRequest{ColumnWidth: 40, Filter: "blocked"})
	assert.ErrorIs(t, err, models.ErrInvalidFilter)
}
