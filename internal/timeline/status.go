package timeline

import (
	"time"

	"github.com/thenoetrevino/plazo/internal/models"
)

// ClassifyStatus derives the display class of a task.
// completed wins, then inprogress/review, then a deadline before today's
// date, otherwise todo.
func ClassifyStatus(t *models.Task, now time.Time) models.StatusClass {
	switch t.Status {
	case models.StatusCompleted:
		return models.StatusClassCompleted
	case models.StatusInProgress, models.StatusReview:
		return models.StatusClassInProgress
	}
	if DaysBetween(t.Due(), now) > 0 {
		return models.StatusClassOverdue
	}
	return models.StatusClassTodo
}

// FilterTasks returns the tasks that pass the filter, preserving order
func FilterTasks(tasks []*models.Task, filter models.Filter) []*models.Task {
	if filter == "" || filter == models.FilterAll {
		return tasks
	}
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t.Status) {
			out = append(out, t)
		}
	}
	return out
}
