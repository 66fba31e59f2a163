package render

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/models"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
	"github.com/thenoetrevino/plazo/internal/testutil"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

func layout(t *testing.T, columnWidth int, filter models.Filter, projects ...*models.Project) *timelineservice.LayoutResult {
	t.Helper()
	if len(projects) == 0 {
		projects = []*models.Project{tenDays()}
	}
	svc := timelineservice.NewService(database.NewMemoryStore(projects),
		timeline.NewEngine(testutil.FixedClock(testutil.Today)))
	res, err := svc.Layout(context.Background(), timelineservice.LayoutRequest{ColumnWidth: columnWidth, Filter: filter})
	require.NoError(t, err)
	return res
}

// tenDays spans Oct 12 (Monday) to Oct 21 2026; today is Oct 15
func tenDays() *models.Project {
	d := models.MustParseDate
	return &models.Project{
		ID:        "proj1",
		Name:      "Sprint",
		StartDate: d("2026-10-12"),
		EndDate:   d("2026-10-21"),
		Tasks: []*models.Task{
			{ID: "a", Title: "Plan", StartDate: d("2026-10-12"), Deadline: d("2026-10-13"), Status: models.StatusCompleted},
			{ID: "b", Title: "Build the thing properly", StartDate: d("2026-10-14"), Deadline: d("2026-10-21"), Status: models.StatusInProgress},
		},
	}
}

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestGantt_FullChart(t *testing.T) {
	opts := DefaultGanttOptions()
	opts.LabelWidth = 10
	lines := plain(Gantt(layout(t, 40, ""), opts))

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat(" ", 11)+"Oct 12 2026"))
	assert.Contains(t, lines[1], "12  13  14  15")

	// 4 cells per day at 40px; Plan covers days 0-1
	plan := lines[2]
	assert.True(t, strings.HasPrefix(plan, "Plan       "))
	assert.Equal(t, strings.Repeat("█", 8), string([]rune(plan)[11:19]))

	build := lines[3]
	assert.True(t, strings.HasPrefix(build, "Build the…"))
	assert.Equal(t, 11+40, len([]rune(build)))
	assert.Equal(t, strings.Repeat("█", 32), string([]rune(build)[19:51]))
}

func TestGantt_ScrolledWindow(t *testing.T) {
	opts := DefaultGanttOptions()
	opts.LabelWidth = 6
	opts.ScrollPx = 80 // starts at day 2
	opts.ChartCells = 8
	lines := plain(Gantt(layout(t, 40, ""), opts))

	assert.Equal(t, 6+1+8, len([]rune(lines[2])))
	assert.NotContains(t, lines[2], "█", "Plan is scrolled out of view")
	assert.Equal(t, strings.Repeat("█", 8), string([]rune(lines[3])[7:]))
	assert.Contains(t, lines[1], "14")
}

func TestGantt_MinimumWidthStaysVisible(t *testing.T) {
	d := models.MustParseDate
	p := tenDays()
	p.Tasks = []*models.Task{{ID: "x", Title: "Blip", StartDate: d("2026-10-20"), Deadline: d("2026-10-20")}}

	opts := DefaultGanttOptions()
	opts.LabelWidth = 4
	// at 2px per day a one-day bar is 4px wide, less than half a cell
	lines := plain(Gantt(layout(t, 2, "", p), opts))
	assert.Equal(t, 1, strings.Count(lines[2], "█"))
}

func TestGantt_EmptyFilter(t *testing.T) {
	out := ansi.Strip(Gantt(layout(t, 40, models.FilterTodo), DefaultGanttOptions()))
	assert.Contains(t, out, "No tasks match the To Do filter")
}

func TestGantt_RowWindow(t *testing.T) {
	opts := DefaultGanttOptions()
	opts.RowOffset = 1
	opts.MaxRows = 1
	lines := plain(Gantt(layout(t, 40, ""), opts))

	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "Build")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", fit("ab", 5))
	assert.Equal(t, "abc…", fit("abcdef", 4))
	assert.Equal(t, "a", fit("abc", 1))
}

func TestFit_WideCharacters(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"設計レビュー", 12, "設計レビュー"},
		{"設計レビュー", 14, "設計レビュー  "},
		{"設計レビュー", 7, "設計レ…"},
		{"設計レビュー", 6, "設計… "},
		{"🚀 launch", 10, "🚀 launch "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := fit(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, ansi.StringWidth(got))
		})
	}
}

func TestGantt_WideTitleKeepsChartAligned(t *testing.T) {
	d := models.MustParseDate
	p := &models.Project{
		ID:        "proj1",
		Name:      "Wide",
		StartDate: d("2026-10-01"),
		EndDate:   d("2026-10-10"),
		Tasks: []*models.Task{
			{ID: "t1", Title: "ascii title", StartDate: d("2026-10-01"), Deadline: d("2026-10-03"), Status: models.StatusTodo, Priority: models.PriorityLow},
			{ID: "t2", Title: "設計レビューと承認のための長いタイトル", StartDate: d("2026-10-01"), Deadline: d("2026-10-03"), Status: models.StatusTodo, Priority: models.PriorityLow},
		},
	}
	lines := plain(Gantt(layout(t, 40, models.FilterAll, p), DefaultGanttOptions()))
	require.Len(t, lines, 4)
	assert.Equal(t, ansi.StringWidth(lines[2]), ansi.StringWidth(lines[3]))
	assert.Equal(t, 24+1+40, ansi.StringWidth(lines[3]))
}

func TestProgressBar(t *testing.T) {
	c := DefaultGanttOptions().Colors
	assert.Equal(t, "█████░░░░░ 50%", ansi.Strip(ProgressBar(50, 10, c)))
	assert.Equal(t, "░░░░ 0%", ansi.Strip(ProgressBar(-5, 4, c)))
	assert.Equal(t, "████ 100%", ansi.Strip(ProgressBar(140, 4, c)))
}
