package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/plazo/internal/models"
)

func TestClassifyStatus(t *testing.T) {
	now := date("2024-01-10").Time

	tests := []struct {
		name   string
		status models.Status
		due    string
		want   models.StatusClass
	}{
		{"completed even when late", models.StatusCompleted, "2024-01-01", models.StatusClassCompleted},
		{"in progress even when late", models.StatusInProgress, "2024-01-01", models.StatusClassInProgress},
		{"review is in progress", models.StatusReview, "2024-02-01", models.StatusClassInProgress},
		{"todo past deadline", models.StatusTodo, "2024-01-09", models.StatusClassOverdue},
		{"todo due today", models.StatusTodo, "2024-01-10", models.StatusClassTodo},
		{"todo due later", models.StatusTodo, "2024-01-20", models.StatusClassTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := task("t", "2024-01-01", tt.due, tt.status)
			assert.Equal(t, tt.want, ClassifyStatus(tk, now))
		})
	}
}

func TestClassifyStatus_LocalClock(t *testing.T) {
	tk := task("t", "2026-10-01", "2026-10-15", models.StatusTodo)

	evening := time.Date(2026, time.October, 15, 20, 0, 0, 0, time.FixedZone("PDT", -7*60*60))
	assert.Equal(t, models.StatusClassTodo, ClassifyStatus(tk, evening), "due today in the user's zone")

	morning := time.Date(2026, time.October, 16, 7, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	assert.Equal(t, models.StatusClassOverdue, ClassifyStatus(tk, morning), "the deadline was yesterday locally")
}

func TestFilterTasks(t *testing.T) {
	tasks := []*models.Task{
		task("a", "2024-01-01", "2024-01-02", models.StatusTodo),
		task("b", "2024-01-01", "2024-01-02", models.StatusInProgress),
		task("c", "2024-01-01", "2024-01-02", models.StatusReview),
		task("d", "2024-01-01", "2024-01-02", models.StatusCompleted),
	}

	ids := func(ts []*models.Task) []string {
		out := make([]string, 0, len(ts))
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(FilterTasks(tasks, models.FilterAll)))
	assert.Equal(t, []string{"a"}, ids(FilterTasks(tasks, models.FilterTodo)))
	assert.Equal(t, []string{"b", "c"}, ids(FilterTasks(tasks, models.FilterInProgress)))
	assert.Equal(t, []string{"d"}, ids(FilterTasks(tasks, models.FilterCompleted)))
}
