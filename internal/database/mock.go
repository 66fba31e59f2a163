package database

import (
	"context"

	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/types"
)

// MockStore serves the built-in sample dataset
type MockStore struct {
	projects []*models.Project
}

// NewMockStore creates a store over the sample projects
func NewMockStore() *MockStore {
	return &MockStore{projects: MockProjects()}
}

// NewMemoryStore creates a store over caller-supplied projects
func NewMemoryStore(projects []*models.Project) *MockStore {
	return &MockStore{projects: projects}
}

// GetAllProjects returns the projects in their defined order
func (s *MockStore) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.projects, nil
}

// Close is a no-op
func (s *MockStore) Close() error {
	return nil
}

// MockProjects returns the sample dataset: five projects with canonical
// proj<N> identifiers, proj4 being the Marketing Campaign.
func MockProjects() []*models.Project {
	d := models.MustParseDate

	return []*models.Project{
		{
			ID:          types.CanonicalProjectID(1).String(),
			Name:        "Website Redesign",
			Description: "Refresh the **public website** with the new brand.\n\n- new landing page\n- faster checkout",
			StartDate:   d("2026-09-01"),
			EndDate:     d("2026-11-30"),
			Progress:    65,
			Tasks: []*models.Task{
				{ID: "task1", Title: "Wireframes", StartDate: d("2026-09-01"), Deadline: d("2026-09-12"), Priority: models.PriorityHigh, Status: models.StatusCompleted, AssigneeID: "user1", EstimatedHours: 24, LoggedHours: 26},
				{ID: "task2", Title: "Visual design", StartDate: d("2026-09-10"), Deadline: d("2026-10-05"), Priority: models.PriorityHigh, Status: models.StatusReview, AssigneeID: "user2", EstimatedHours: 40, LoggedHours: 35},
				{ID: "task3", Title: "Frontend build", StartDate: d("2026-10-01"), Deadline: d("2026-11-10"), Priority: models.PriorityMedium, Status: models.StatusInProgress, AssigneeID: "user3", EstimatedHours: 80, LoggedHours: 30},
				{ID: "task4", Title: "Content migration", StartDate: d("2026-10-20"), Deadline: d("2026-11-20"), Priority: models.PriorityLow, Status: models.StatusTodo, AssigneeID: "user4", EstimatedHours: 16},
				{ID: "task5", Title: "Launch", StartDate: d("2026-11-30"), Deadline: d("2026-11-30"), Priority: models.PriorityHigh, Status: models.StatusTodo, AssigneeID: "user1", EstimatedHours: 4},
			},
		},
		{
			ID:          types.CanonicalProjectID(2).String(),
			Name:        "Mobile App Development",
			Description: "Native apps for iOS and Android.",
			StartDate:   d("2026-08-15"),
			EndDate:     d("2027-01-31"),
			Progress:    40,
			Tasks: []*models.Task{
				{ID: "task6", Title: "API contract", StartDate: d("2026-08-15"), Deadline: d("2026-08-31"), Priority: models.PriorityHigh, Status: models.StatusCompleted, AssigneeID: "user3", EstimatedHours: 20, LoggedHours: 18},
				{ID: "task7", Title: "Authentication flow", StartDate: d("2026-09-01"), Deadline: d("2026-10-01"), Priority: models.PriorityHigh, Status: models.StatusTodo, AssigneeID: "user2", EstimatedHours: 32, LoggedHours: 4},
				{ID: "task8", Title: "Offline sync", StartDate: d("2026-10-01"), Deadline: d("2026-12-15"), Priority: models.PriorityMedium, Status: models.StatusInProgress, AssigneeID: "user3", EstimatedHours: 60, LoggedHours: 12},
				{ID: "task9", Title: "Store submission", StartDate: d("2027-01-20"), Deadline: d("2027-02-10"), Priority: models.PriorityMedium, Status: models.StatusTodo, AssigneeID: "user4", EstimatedHours: 8},
			},
		},
		{
			ID:          types.CanonicalProjectID(3).String(),
			Name:        "Database Migration",
			Description: "Move the order system to the new cluster.",
			StartDate:   d("2026-07-01"),
			EndDate:     d("2026-09-30"),
			Progress:    90,
			Tasks: []*models.Task{
				{ID: "task10", Title: "Schema audit", StartDate: d("2026-06-20"), Deadline: d("2026-07-10"), Priority: models.PriorityMedium, Status: models.StatusCompleted, AssigneeID: "user4", EstimatedHours: 12, LoggedHours: 12},
				{ID: "task11", Title: "Dual writes", StartDate: d("2026-07-10"), Deadline: d("2026-08-20"), Priority: models.PriorityHigh, Status: models.StatusCompleted, AssigneeID: "user3", EstimatedHours: 40, LoggedHours: 44},
				{ID: "task12", Title: "Cutover", StartDate: d("2026-09-20"), Deadline: d("2026-09-25"), Priority: models.PriorityHigh, Status: models.StatusTodo, AssigneeID: "user1", EstimatedHours: 10},
			},
		},
		{
			ID:          types.CanonicalProjectID(4).String(),
			Name:        "Marketing Campaign",
			Description: "Autumn campaign across **social**, email and paid search.",
			StartDate:   d("2026-10-01"),
			EndDate:     d("2026-12-31"),
			Progress:    25,
			Tasks: []*models.Task{
				{ID: "task13", Title: "Campaign brief", StartDate: d("2026-10-01"), Deadline: d("2026-10-07"), Priority: models.PriorityHigh, Status: models.StatusCompleted, AssigneeID: "user2", EstimatedHours: 8, LoggedHours: 7},
				{ID: "task14", Title: "Creative assets", StartDate: d("2026-10-05"), Deadline: d("2026-10-25"), Priority: models.PriorityMedium, Status: models.StatusInProgress, AssigneeID: "user4", EstimatedHours: 30, LoggedHours: 10},
				{ID: "task15", Title: "Email sequence", StartDate: d("2026-10-15"), Deadline: d("2026-11-05"), Priority: models.PriorityLow, Status: models.StatusTodo, AssigneeID: "user1", EstimatedHours: 12},
				{ID: "task16", Title: "Paid search", StartDate: d("2026-11-01"), Deadline: d("2026-12-31"), Priority: models.PriorityMedium, Status: models.StatusTodo, AssigneeID: "user3", EstimatedHours: 20},
				{ID: "task17", Title: "Results report", StartDate: d("2026-12-20"), Deadline: d("2027-01-10"), Priority: models.PriorityLow, Status: models.StatusTodo, AssigneeID: "user2", EstimatedHours: 6},
			},
		},
		{
			ID:          types.CanonicalProjectID(5).String(),
			Name:        "Customer Portal",
			Description: "Self-service portal for invoices and support tickets.",
			StartDate:   d("2026-11-01"),
			EndDate:     d("2027-03-31"),
			Progress:    5,
			Tasks: []*models.Task{
				{ID: "task18", Title: "Discovery", StartDate: d("2026-11-01"), Deadline: d("2026-11-21"), Priority: models.PriorityMedium, Status: models.StatusTodo, AssigneeID: "user1", EstimatedHours: 20},
				{ID: "task19", Title: "Billing integration", StartDate: d("2026-12-01"), Deadline: d("2027-02-15"), Priority: models.PriorityHigh, Status: models.StatusTodo, AssigneeID: "user3", EstimatedHours: 90},
			},
		},
	}
}
