package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/repository"
)

const issueColumns = `
	id, project_id, sprint_id, program_component, sub_components,
	description, long_description, type, category, status, priority,
	responsible_users, parent_issue_id, created_at
`

// IssueRepository implements repository.IssueRepository for SQLite
type IssueRepository struct {
	db *DB
}

// NewIssueRepository creates a new IssueRepository
func NewIssueRepository(db *DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// Create creates a new issue
func (r *IssueRepository) Create(ctx context.Context, iss *issue.Issue) error {
	query := `
		INSERT INTO issues (` + issueColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		iss.ID,
		iss.ProjectID,
		iss.SprintID,
		iss.ProgramComponent,
		iss.SubComponents,
		iss.Description,
		iss.LongDescription,
		iss.Type,
		iss.Category,
		iss.Status,
		iss.Priority,
		iss.ResponsibleUsers,
		iss.ParentIssueID,
		iss.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create issue: %w", err)
	}

	return nil
}

// Get retrieves an issue by ID
func (r *IssueRepository) Get(ctx context.Context, id string) (*issue.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = ?`

	iss, err := scanIssue(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	return iss, nil
}

// ListByProject returns all issues in a project ordered by creation time
func (r *IssueRepository) ListByProject(ctx context.Context, projectID string) ([]*issue.Issue, error) {
	query := `
		SELECT ` + issueColumns + `
		FROM issues
		WHERE project_id = ?
		ORDER BY created_at ASC
	`
	return r.queryIssues(ctx, query, projectID)
}

// ListBySprint returns all issues assigned to a sprint
func (r *IssueRepository) ListBySprint(ctx context.Context, sprintID string) ([]*issue.Issue, error) {
	query := `
		SELECT ` + issueColumns + `
		FROM issues
		WHERE sprint_id = ?
		ORDER BY created_at ASC
	`
	return r.queryIssues(ctx, query, sprintID)
}

// GetChildren returns all direct children of an issue
func (r *IssueRepository) GetChildren(ctx context.Context, parentID string) ([]*issue.Issue, error) {
	query := `
		SELECT ` + issueColumns + `
		FROM issues
		WHERE parent_issue_id = ?
		ORDER BY created_at ASC
	`
	return r.queryIssues(ctx, query, parentID)
}

// Update updates an issue
func (r *IssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	query := `
		UPDATE issues
		SET sprint_id = ?, program_component = ?, sub_components = ?,
		    description = ?, long_description = ?, type = ?, category = ?,
		    status = ?, priority = ?, responsible_users = ?, parent_issue_id = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		iss.SprintID,
		iss.ProgramComponent,
		iss.SubComponents,
		iss.Description,
		iss.LongDescription,
		iss.Type,
		iss.Category,
		iss.Status,
		iss.Priority,
		iss.ResponsibleUsers,
		iss.ParentIssueID,
		iss.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
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

// Delete deletes an issue
func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM issues WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
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

func (r *IssueRepository) queryIssues(ctx context.Context, query string, args ...any) ([]*issue.Issue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	var issues []*issue.Issue
	for rows.Next() {
		iss, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, iss)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issue rows: %w", err)
	}

	return issues, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIssue(row scanner) (*issue.Issue, error) {
	var iss issue.Issue
	err := row.Scan(
		&iss.ID,
		&iss.ProjectID,
		&iss.SprintID,
		&iss.ProgramComponent,
		&iss.SubComponents,
		&iss.Description,
		&iss.LongDescription,
		&iss.Type,
		&iss.Category,
		&iss.Status,
		&iss.Priority,
		&iss.ResponsibleUsers,
		&iss.ParentIssueID,
		&iss.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iss, nil
}
