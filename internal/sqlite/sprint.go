package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
	"github.com/sleipnirhq/sleipnir/internal/repository"
)

// SprintRepository implements repository.SprintRepository for SQLite
type SprintRepository struct {
	db *DB
}

// NewSprintRepository creates a new SprintRepository
func NewSprintRepository(db *DB) *SprintRepository {
	return &SprintRepository{db: db}
}

// Create creates a new sprint
func (r *SprintRepository) Create(ctx context.Context, sp *sprint.Sprint) error {
	query := `
		INSERT INTO sprints (id, project_id, name, start_date, end_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sp.ID,
		sp.ProjectID,
		sp.Name,
		sp.StartDate,
		sp.EndDate,
		sp.IsActive,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create sprint: %w", err)
	}

	return nil
}

// Get retrieves a sprint by ID
func (r *SprintRepository) Get(ctx context.Context, id string) (*sprint.Sprint, error) {
	query := `
		SELECT id, project_id, name, start_date, end_date, is_active
		FROM sprints
		WHERE id = ?
	`

	var sp sprint.Sprint
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sp.ID,
		&sp.ProjectID,
		&sp.Name,
		&sp.StartDate,
		&sp.EndDate,
		&sp.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}

	return &sp, nil
}

// ListByProject returns all sprints in a project ordered by start date
func (r *SprintRepository) ListByProject(ctx context.Context, projectID string) ([]*sprint.Sprint, error) {
	query := `
		SELECT id, project_id, name, start_date, end_date, is_active
		FROM sprints
		WHERE project_id = ?
		ORDER BY start_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*sprint.Sprint
	for rows.Next() {
		var sp sprint.Sprint
		err := rows.Scan(
			&sp.ID,
			&sp.ProjectID,
			&sp.Name,
			&sp.StartDate,
			&sp.EndDate,
			&sp.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sprint: %w", err)
		}
		sprints = append(sprints, &sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sprint rows: %w", err)
	}

	return sprints, nil
}

// Update updates a sprint
func (r *SprintRepository) Update(ctx context.Context, sp *sprint.Sprint) error {
	query := `
		UPDATE sprints
		SET name = ?, start_date = ?, end_date = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		sp.Name,
		sp.StartDate,
		sp.EndDate,
		sp.IsActive,
		sp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sprint: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete deletes a sprint. Issues still pointing at it keep their
// sprint_id; the caller clears memberships first.
func (r *SprintRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sprints WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sprint: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
