package issue

import (
	"context"

	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
)

// Repository manages issue persistence.
type Repository interface {
	Create(ctx context.Context, iss *Issue) error
	Get(ctx context.Context, id string) (*Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*Issue, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*Issue, error)
	GetChildren(ctx context.Context, parentID string) ([]*Issue, error)
	Update(ctx context.Context, iss *Issue) error
	Delete(ctx context.Context, id string) error
}

// AuditLogRepository appends audit entries.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *auditlog.Entry) error
}

// SearchRepository runs full-text search over issue text.
type SearchRepository interface {
	Search(ctx context.Context, projectID, query string, limit int) ([]SearchHit, error)
}
