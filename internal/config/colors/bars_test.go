package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/plazo/internal/models"
)

func TestBarColor(t *testing.T) {
	c := Default()

	assert.Equal(t, c.Completed, c.BarColor(models.StatusClassCompleted, models.PriorityHigh))
	assert.Equal(t, c.InProgress, c.BarColor(models.StatusClassInProgress, models.PriorityLow))
	assert.Equal(t, c.Overdue, c.BarColor(models.StatusClassOverdue, models.PriorityLow))
	assert.Equal(t, c.HighPriority, c.BarColor(models.StatusClassTodo, models.PriorityHigh))
	assert.Equal(t, c.LowPriority, c.BarColor(models.StatusClassTodo, models.PriorityLow))
	assert.Equal(t, c.MediumPriority, c.BarColor(models.StatusClassTodo, ""))
}
