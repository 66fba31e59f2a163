package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plazo/internal/models"
)

func dated(p *models.Project) *models.Project {
	p.StartDate = models.MustParseDate("2026-01-01")
	p.EndDate = models.MustParseDate("2026-01-31")
	for _, t := range p.Tasks {
		if t != nil {
			t.StartDate = p.StartDate
			t.Deadline = p.EndDate
		}
	}
	return p
}

func TestValidateProjects_NormalizesTasks(t *testing.T) {
	projects := []*models.Project{dated(&models.Project{
		ID:    "proj1",
		Name:  "Alpha",
		Tasks: []*models.Task{{ID: "t1"}, {ID: "t2", Status: "in-progress", Priority: "HIGH"}},
	})}

	require.NoError(t, ValidateProjects(projects))

	tasks := projects[0].Tasks
	assert.Equal(t, models.StatusTodo, tasks[0].Status)
	assert.Equal(t, models.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, models.StatusInProgress, tasks[1].Status)
	assert.Equal(t, models.PriorityHigh, tasks[1].Priority)
}

func TestValidateProjects_CanonicalIDs(t *testing.T) {
	projects := []*models.Project{
		dated(&models.Project{ID: "4", Name: "Numbered"}),
		dated(&models.Project{ID: " proj7 ", Name: "Padded"}),
		dated(&models.Project{ID: "launch", Name: "Named"}),
	}

	require.NoError(t, ValidateProjects(projects))
	assert.Equal(t, "proj4", projects[0].ID)
	assert.Equal(t, "proj7", projects[1].ID)
	assert.Equal(t, "launch", projects[2].ID)
}

func TestValidateProjects_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		projects []*models.Project
	}{
		{"nil project", []*models.Project{nil}},
		{"missing id", []*models.Project{dated(&models.Project{Name: "Alpha"})}},
		{"duplicate id", []*models.Project{dated(&models.Project{ID: "proj1"}), dated(&models.Project{ID: "proj1"})}},
		{"duplicate after normalizing", []*models.Project{dated(&models.Project{ID: "3"}), dated(&models.Project{ID: "proj3"})}},
		{"missing start date", []*models.Project{{ID: "proj1", EndDate: models.MustParseDate("2026-01-31")}}},
		{"missing end date", []*models.Project{{ID: "proj1", StartDate: models.MustParseDate("2026-01-01")}}},
		{"task without deadline", []*models.Project{{
			ID:        "proj1",
			StartDate: models.MustParseDate("2026-01-01"),
			EndDate:   models.MustParseDate("2026-01-31"),
			Tasks:     []*models.Task{{ID: "t", StartDate: models.MustParseDate("2026-01-02")}},
		}}},
		{"progress too high", []*models.Project{dated(&models.Project{ID: "proj1", Progress: 101})}},
		{"negative progress", []*models.Project{dated(&models.Project{ID: "proj1", Progress: -1})}},
		{"nil task", []*models.Project{dated(&models.Project{ID: "proj1", Tasks: []*models.Task{nil}})}},
		{"bad status", []*models.Project{dated(&models.Project{ID: "proj1", Tasks: []*models.Task{{ID: "t", Status: "blocked"}}})}},
		{"bad priority", []*models.Project{dated(&models.Project{ID: "proj1", Tasks: []*models.Task{{ID: "t", Priority: "urgent"}}})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjects(tt.projects)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestValidateProjects_EmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateProjects(nil))
}
