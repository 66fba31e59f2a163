package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/thenoetrevino/plazo/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo wraps an initialised database
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// GetAllProjects retrieves all projects with their tasks, in import order
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, start_date, end_date, progress FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer closeRows(rows)

	projects := make([]*models.Project, 0)
	byID := make(map[string]*models.Project)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	// Release the single connection before querying tasks
	closeRows(rows)

	tasks, err := r.db.QueryContext(ctx,
		`SELECT project_id, id, title, description, start_date, deadline, priority, status,
			assignee_id, estimated_hours, logged_hours
		FROM tasks ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer closeRows(tasks)

	for tasks.Next() {
		projectID, t, err := scanTask(tasks)
		if err != nil {
			return nil, err
		}
		if p, ok := byID[projectID]; ok {
			p.Tasks = append(p.Tasks, t)
		}
	}
	if err := tasks.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return projects, nil
}

// ReplaceAllProjects swaps the stored dataset for projects in one transaction.
// Nothing changes if any row fails to insert.
func (r *ProjectRepo) ReplaceAllProjects(ctx context.Context, projects []*models.Project) error {
	if err := ValidateProjects(projects); err != nil {
		return err
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
			return fmt.Errorf("failed to clear projects: %w", err)
		}

		for i, p := range projects {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO projects (id, position, name, description, start_date, end_date, progress)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.ID, i, p.Name, p.Description, p.StartDate.String(), p.EndDate.String(), p.Progress)
			if err != nil {
				return fmt.Errorf("failed to insert project %s: %w", p.ID, err)
			}

			for j, t := range p.Tasks {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO tasks (project_id, id, position, title, description, start_date, deadline,
						priority, status, assignee_id, estimated_hours, logged_hours)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					p.ID, t.ID, j, t.Title, t.Description, t.StartDate.String(), t.Deadline.String(),
					string(t.Priority), string(t.Status), t.AssigneeID, t.EstimatedHours, t.LoggedHours)
				if err != nil {
					return fmt.Errorf("failed to insert task %s of project %s: %w", t.ID, p.ID, err)
				}
			}
		}
		return nil
	})
}

// Counts returns the number of stored projects and tasks
func (r *ProjectRepo) Counts(ctx context.Context) (projects, tasks int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM projects), (SELECT COUNT(*) FROM tasks)`).Scan(&projects, &tasks)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return projects, tasks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	var (
		p          models.Project
		start, end string
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &start, &end, &p.Progress); err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	var err error
	if p.StartDate, err = models.ParseDate(start); err != nil {
		return nil, fmt.Errorf("%w: project %s start date: %w", ErrInvalidData, p.ID, err)
	}
	if p.EndDate, err = models.ParseDate(end); err != nil {
		return nil, fmt.Errorf("%w: project %s end date: %w", ErrInvalidData, p.ID, err)
	}
	p.Tasks = make([]*models.Task, 0)
	return &p, nil
}

func scanTask(s scanner) (string, *models.Task, error) {
	var (
		projectID, start, deadline string
		priority, status           string
		t                          models.Task
	)
	err := s.Scan(&projectID, &t.ID, &t.Title, &t.Description, &start, &deadline,
		&priority, &status, &t.AssigneeID, &t.EstimatedHours, &t.LoggedHours)
	if err != nil {
		return "", nil, fmt.Errorf("failed to scan task: %w", err)
	}

	if t.StartDate, err = models.ParseDate(start); err != nil {
		return "", nil, fmt.Errorf("%w: task %s start date: %w", ErrInvalidData, t.ID, err)
	}
	if t.Deadline, err = models.ParseDate(deadline); err != nil {
		return "", nil, fmt.Errorf("%w: task %s deadline: %w", ErrInvalidData, t.ID, err)
	}
	t.Priority = models.Priority(priority)
	t.Status = models.Status(status)
	return projectID, &t, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("error closing rows: %v", err)
	}
}
