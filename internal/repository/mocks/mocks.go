// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetDefault(ctx context.Context) (*project.Project, error) {
	args := m.Called(ctx)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CollaboratorRepository is a mock for repository.CollaboratorRepository.
type CollaboratorRepository struct {
	mock.Mock
}

func (m *CollaboratorRepository) Create(ctx context.Context, collab *project.Collaborator) error {
	args := m.Called(ctx, collab)
	return args.Error(0)
}

func (m *CollaboratorRepository) List(ctx context.Context) ([]*project.Collaborator, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*project.Collaborator); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SprintRepository is a mock for repository.SprintRepository.
type SprintRepository struct {
	mock.Mock
}

func (m *SprintRepository) Create(ctx context.Context, sp *sprint.Sprint) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *SprintRepository) Get(ctx context.Context, id string) (*sprint.Sprint, error) {
	args := m.Called(ctx, id)
	if sp, ok := args.Get(0).(*sprint.Sprint); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SprintRepository) ListByProject(ctx context.Context, projectID string) ([]*sprint.Sprint, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]*sprint.Sprint); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SprintRepository) Update(ctx context.Context, sp *sprint.Sprint) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *SprintRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// IssueRepository is a mock for repository.IssueRepository.
type IssueRepository struct {
	mock.Mock
}

func (m *IssueRepository) Create(ctx context.Context, iss *issue.Issue) error {
	args := m.Called(ctx, iss)
	return args.Error(0)
}

func (m *IssueRepository) Get(ctx context.Context, id string) (*issue.Issue, error) {
	args := m.Called(ctx, id)
	if iss, ok := args.Get(0).(*issue.Issue); ok {
		return iss, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) ListByProject(ctx context.Context, projectID string) ([]*issue.Issue, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]*issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) ListBySprint(ctx context.Context, sprintID string) ([]*issue.Issue, error) {
	args := m.Called(ctx, sprintID)
	if list, ok := args.Get(0).([]*issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) GetChildren(ctx context.Context, parentID string) ([]*issue.Issue, error) {
	args := m.Called(ctx, parentID)
	if list, ok := args.Get(0).([]*issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	args := m.Called(ctx, iss)
	return args.Error(0)
}

func (m *IssueRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AuditLogRepository is a mock for repository.AuditLogRepository.
type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *AuditLogRepository) ListByIssue(ctx context.Context, issueID string, limit int) ([]auditlog.Entry, error) {
	args := m.Called(ctx, issueID, limit)
	if list, ok := args.Get(0).([]auditlog.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchRepository is a mock for repository.SearchRepository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) Search(ctx context.Context, projectID, query string, limit int) ([]issue.SearchHit, error) {
	args := m.Called(ctx, projectID, query, limit)
	if hits, ok := args.Get(0).([]issue.SearchHit); ok {
		return hits, args.Error(1)
	}
	return nil, args.Error(1)
}
