package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

func sampleProject() *models.Project {
	d := models.MustParseDate
	return &models.Project{
		ID:        "proj1",
		Name:      "R&D <Alpha>",
		StartDate: d("2026-01-01"),
		EndDate:   d("2026-01-10"),
		Progress:  30,
		Tasks: []*models.Task{
			{ID: "a", Title: "Design", StartDate: d("2026-01-01"), Deadline: d("2026-01-03"), Status: models.StatusCompleted, Priority: models.PriorityHigh},
			{ID: "b", Title: "Build", StartDate: d("2026-01-04"), Deadline: d("2026-01-08"), Status: models.StatusTodo, Priority: models.PriorityLow},
		},
	}
}

func render(t *testing.T, columnWidth int) string {
	t.Helper()
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	engine := timeline.NewEngine(timeline.WithClock(func() time.Time { return now }))
	p := sampleProject()

	var sb strings.Builder
	err := WriteSVG(&sb, p, engine.Compute(p, columnWidth), engine.Days(p), DefaultSVGOptions(columnWidth))
	require.NoError(t, err)
	return sb.String()
}

func TestWriteSVG_Structure(t *testing.T) {
	out := render(t, 40)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `R&amp;D &lt;Alpha&gt;`)
	assert.Equal(t, 2, strings.Count(out, `<rect class="bar `))
	assert.Equal(t, 10, strings.Count(out, `stroke-width="1"/>`), "one grid line per day")
	assert.Equal(t, 1, strings.Count(out, `class="today"`))
}

func TestWriteSVG_BarGeometry(t *testing.T) {
	out := render(t, 40)

	// label column 200 + margin 10; Build starts on day 3
	assert.Contains(t, out, `<rect class="bar completed" x="210" y="91" width="120"`)
	assert.Contains(t, out, `<rect class="bar todo" x="330" y="119" width="200"`)
}

func TestWriteSVG_Weekends(t *testing.T) {
	// Jan 3 and 4, 2026 fall on a weekend; Jan 10 is a Saturday
	out := render(t, 40)
	assert.Equal(t, 3, strings.Count(out, `class="weekend"`))
}

func TestWriteSVG_RejectsZeroWidth(t *testing.T) {
	var sb strings.Builder
	err := WriteSVG(&sb, sampleProject(), nil, nil, SVGOptions{})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "設計…", truncate("設計レビュー", 5))
	assert.Equal(t, "設計レビュー", truncate("設計レビュー", 12))
}
