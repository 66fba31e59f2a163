package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/types"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ValidateProjects normalizes project ids, statuses and priorities in place
// (a bare number like "4" becomes "proj4") and rejects
// data the timeline cannot lay out: missing or duplicate project ids, missing
// dates and unknown enum values. Empty priorities default to medium, empty statuses to todo.
func ValidateProjects(projects []*models.Project) error {
	seen := make(map[string]bool, len(projects))
	for i, p := range projects {
		if p == nil {
			return fmt.Errorf("%w: project #%d is empty", ErrInvalidData, i+1)
		}
		p.ID = types.NormalizeProjectID(p.ID).String()
		if p.ID == "" {
			return fmt.Errorf("%w: project #%d (%q) has no id", ErrInvalidData, i+1, p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate project id %s", ErrInvalidData, p.ID)
		}
		seen[p.ID] = true

		if p.StartDate.IsZero() || p.EndDate.IsZero() {
			return fmt.Errorf("%w: project %s needs start_date and end_date", ErrInvalidData, p.ID)
		}

		if p.Progress < models.MinProgress || p.Progress > models.MaxProgress {
			return fmt.Errorf("%w: project %s progress %d is outside 0-100", ErrInvalidData, p.ID, p.Progress)
		}

		for j, t := range p.Tasks {
			if t == nil {
				return fmt.Errorf("%w: project %s task #%d is empty", ErrInvalidData, p.ID, j+1)
			}
			if t.StartDate.IsZero() || t.Deadline.IsZero() {
				return fmt.Errorf("%w: project %s task %s needs start_date and deadline", ErrInvalidData, p.ID, t.ID)
			}
			if err := normalizeTask(t); err != nil {
				return fmt.Errorf("%w: project %s task %s: %w", ErrInvalidData, p.ID, t.ID, err)
			}
		}
	}
	return nil
}

func normalizeTask(t *models.Task) error {
	if t.Status == "" {
		t.Status = models.StatusTodo
	} else {
		status, err := models.ParseStatus(string(t.Status))
		if err != nil {
			return err
		}
		t.Status = status
	}

	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	} else {
		priority, err := models.ParsePriority(string(t.Priority))
		if err != nil {
			return err
		}
		t.Priority = priority
	}
	return nil
}
