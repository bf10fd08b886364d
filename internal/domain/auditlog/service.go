package auditlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultActor is recorded when no actor is supplied with a mutation.
const DefaultActor = "System"

// Service handles audit log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new audit log service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Append writes an entry, stamping actor and timestamp if missing.
func (s *Service) Append(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.IssueID == "" {
		return ErrInvalidInput
	}
	if entry.Actor == "" {
		entry.Actor = DefaultActor
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}

// ListByIssue returns the audit trail for one issue, newest first.
func (s *Service) ListByIssue(ctx context.Context, issueID string, limit int) ([]Entry, error) {
	return s.repo.ListByIssue(ctx, issueID, limit)
}
