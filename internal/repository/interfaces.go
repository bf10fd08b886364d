// Package repository declares the Entity Store contract the core consumes.
// Implementations may fail with transport errors; the core does not retry.
package repository

import (
	"context"

	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
)

// ProjectRepository manages project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, proj *project.Project) error
	Get(ctx context.Context, id string) (*project.Project, error)
	GetDefault(ctx context.Context) (*project.Project, error)
	List(ctx context.Context) ([]*project.Project, error)
	Update(ctx context.Context, proj *project.Project) error
	Delete(ctx context.Context, id string) error
}

// CollaboratorRepository manages the assignee directory.
type CollaboratorRepository interface {
	Create(ctx context.Context, collab *project.Collaborator) error
	List(ctx context.Context) ([]*project.Collaborator, error)
}

// SprintRepository manages sprint persistence.
type SprintRepository interface {
	Create(ctx context.Context, sp *sprint.Sprint) error
	Get(ctx context.Context, id string) (*sprint.Sprint, error)
	ListByProject(ctx context.Context, projectID string) ([]*sprint.Sprint, error)
	Update(ctx context.Context, sp *sprint.Sprint) error
	Delete(ctx context.Context, id string) error
}

// IssueRepository manages issue persistence.
type IssueRepository interface {
	Create(ctx context.Context, iss *issue.Issue) error
	Get(ctx context.Context, id string) (*issue.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*issue.Issue, error)
	ListBySprint(ctx context.Context, sprintID string) ([]*issue.Issue, error)
	GetChildren(ctx context.Context, parentID string) ([]*issue.Issue, error)
	Update(ctx context.Context, iss *issue.Issue) error
	Delete(ctx context.Context, id string) error
}

// AuditLogRepository manages the append-only audit log. Entries are never
// updated or deleted.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *auditlog.Entry) error
	ListByIssue(ctx context.Context, issueID string, limit int) ([]auditlog.Entry, error)
}

// SearchRepository manages full-text search over issue text.
type SearchRepository interface {
	Search(ctx context.Context, projectID, query string, limit int) ([]issue.SearchHit, error)
}
