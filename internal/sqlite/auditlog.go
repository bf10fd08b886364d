package sqlite

import (
	"context"
	"fmt"

	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
)

// AuditLogRepository implements repository.AuditLogRepository for SQLite
type AuditLogRepository struct {
	db *DB
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Append writes an entry to the log and fills in its generated ID
func (r *AuditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	query := `
		INSERT INTO issue_logs (issue_id, actor, action, field, old_value, new_value, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.IssueID,
		entry.Actor,
		entry.Action,
		entry.Field,
		entry.OldValue,
		entry.NewValue,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get log entry id: %w", err)
	}
	entry.ID = id

	return nil
}

// ListByIssue returns an issue's log entries, newest first
func (r *AuditLogRepository) ListByIssue(ctx context.Context, issueID string, limit int) ([]auditlog.Entry, error) {
	query := `
		SELECT id, issue_id, actor, action, field, old_value, new_value, details, created_at
		FROM issue_logs
		WHERE issue_id = ?
		ORDER BY id DESC
	`

	args := []any{issueID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	defer rows.Close()

	var entries []auditlog.Entry
	for rows.Next() {
		var entry auditlog.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.IssueID,
			&entry.Actor,
			&entry.Action,
			&entry.Field,
			&entry.OldValue,
			&entry.NewValue,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log entry rows: %w", err)
	}

	return entries, nil
}
