package models

import (
	"fmt"
	"strings"
)

// Status is the stored workflow state of a task
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
)

// AllStatuses lists every stored status in workflow order
var AllStatuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusCompleted}

// ParseStatus maps a status string to a Status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusTodo:
		return StatusTodo, nil
	case StatusInProgress, "in-progress", "in_progress":
		return StatusInProgress, nil
	case StatusReview:
		return StatusReview, nil
	case StatusCompleted, "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: '%s' (must be: todo, inprogress, review, completed)", ErrInvalidStatus, s)
}

// StatusClass is the display-only classification of a task on the timeline.
// It is derived from the stored status and the deadline and never persisted.
type StatusClass string

const (
	StatusClassTodo       StatusClass = "todo"
	StatusClassInProgress StatusClass = "in-progress"
	StatusClassCompleted  StatusClass = "completed"
	StatusClassOverdue    StatusClass = "overdue"
)

// Filter selects which tasks are shown on the timeline
type Filter string

const (
	FilterAll        Filter = "all"
	FilterTodo       Filter = "todo"
	FilterInProgress Filter = "in-progress"
	FilterCompleted  Filter = "completed"
)

// AllFilters lists the filters in the order the TUI cycles through them
var AllFilters = []Filter{FilterAll, FilterTodo, FilterInProgress, FilterCompleted}

// ParseFilter maps a filter string to a Filter. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterTodo:
		return FilterTodo, nil
	case FilterInProgress, "inprogress":
		return FilterInProgress, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("%w: '%s' (must be: all, todo, in-progress, completed)", ErrInvalidFilter, s)
}

// Matches reports whether a task with the given status passes the filter.
// The in-progress filter also admits tasks under review.
func (f Filter) Matches(s Status) bool {
	switch f {
	case FilterTodo:
		return s == StatusTodo
	case FilterInProgress:
		return s == StatusInProgress || s == StatusReview
	case FilterCompleted:
		return s == StatusCompleted
	default:
		return true
	}
}

// Label returns the human readable name of the filter
func (f Filter) Label() string {
	switch f {
	case FilterTodo:
		return "To Do"
	case FilterInProgress:
		return "In Progress"
	case FilterCompleted:
		return "Completed"
	default:
		return "All Tasks"
	}
}
