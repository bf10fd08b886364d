package auditlog

import "context"

// Repository appends and reads audit entries.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	ListByIssue(ctx context.Context, issueID string, limit int) ([]Entry, error)
}
