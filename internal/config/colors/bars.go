package colors

import "github.com/thenoetrevino/plazo/internal/models"

// BarColor picks the fill for a timeline bar. Completed, in-progress and
// overdue bars use their status color; remaining todo bars are colored by
// priority.
func (c *ColorScheme) BarColor(class models.StatusClass, priority models.Priority) string {
	switch class {
	case models.StatusClassCompleted:
		return c.Completed
	case models.StatusClassInProgress:
		return c.InProgress
	case models.StatusClassOverdue:
		return c.Overdue
	}

	switch priority {
	case models.PriorityHigh:
		return c.HighPriority
	case models.PriorityLow:
		return c.LowPriority
	default:
		return c.MediumPriority
	}
}
