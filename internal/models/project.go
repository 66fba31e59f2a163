package models

import "time"

// Project represents a dated unit of work and the tasks that make it up.
// Projects are the top-level organizational unit in plazo and are treated as
// immutable for the duration of a view session.
type Project struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   Date    `json:"start_date" yaml:"start_date"`
	EndDate     Date    `json:"end_date" yaml:"end_date"`
	Progress    int     `json:"progress" yaml:"progress"` // 0-100
	Tasks       []*Task `json:"tasks" yaml:"tasks"`
}

// Start returns the project start as a time.Time
func (p *Project) Start() time.Time {
	return p.StartDate.Time
}

// End returns the project end as a time.Time
func (p *Project) End() time.Time {
	return p.EndDate.Time
}

// GetID satisfies the quiet-mode contract of the CLI output formatter
func (p *Project) GetID() string {
	return p.ID
}

// TaskCount returns the number of tasks owned by the project
func (p *Project) TaskCount() int {
	return len(p.Tasks)
}
