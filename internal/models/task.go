package models

import (
	"math"
	"time"
)

// Task represents a single dated unit of work inside a project
type Task struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate      Date     `json:"start_date" yaml:"start_date"`
	Deadline       Date     `json:"deadline" yaml:"deadline"`
	Priority       Priority `json:"priority" yaml:"priority"`
	Status         Status   `json:"status" yaml:"status"`
	AssigneeID     string   `json:"assignee_id,omitempty" yaml:"assignee_id,omitempty"`
	EstimatedHours float64  `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	LoggedHours    float64  `json:"logged_hours,omitempty" yaml:"logged_hours,omitempty"`
}

// Start returns the task start as a time.Time
func (t *Task) Start() time.Time {
	return t.StartDate.Time
}

// Due returns the task deadline as a time.Time
func (t *Task) Due() time.Time {
	return t.Deadline.Time
}

// HoursProgress returns logged hours as a percentage of the estimate, capped at 100.
// Tasks without an estimate report 0.
func (t *Task) HoursProgress() int {
	if t.EstimatedHours <= 0 {
		return 0
	}
	pct := int(math.Round(t.LoggedHours / t.EstimatedHours * 100))
	return min(pct, 100)
}
