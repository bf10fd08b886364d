package sprint

import (
	"context"

	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
)

// Repository manages sprint persistence.
type Repository interface {
	Create(ctx context.Context, s *Sprint) error
	Get(ctx context.Context, id string) (*Sprint, error)
	ListByProject(ctx context.Context, projectID string) ([]*Sprint, error)
	Update(ctx context.Context, s *Sprint) error
	Delete(ctx context.Context, id string) error
}

// IssueRepository is the slice of issue persistence the lifecycle
// manager needs.
type IssueRepository interface {
	Get(ctx context.Context, id string) (*issue.Issue, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*issue.Issue, error)
	Update(ctx context.Context, iss *issue.Issue) error
}

// AuditLogRepository appends audit entries.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *auditlog.Entry) error
}
