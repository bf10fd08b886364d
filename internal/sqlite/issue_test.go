package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestIssue(id, projectID string, createdAt time.Time) *issue.Issue {
	return &issue.Issue{
		ID:               id,
		ProjectID:        projectID,
		ProgramComponent: "Auth",
		SubComponents:    "Login;Session",
		Description:      "Issue " + id,
		Type:             issue.TypeBug,
		Category:         issue.CategoryBacklog,
		Status:           issue.StatusOpen,
		Priority:         issue.PriorityNeutral,
		CreatedAt:        createdAt,
	}
}

func TestIssueRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "p1")

	sprintID := "s1"
	parentID := "epic1"
	iss := newTestIssue("i1", "p1", time.Now())
	iss.SprintID = &sprintID
	iss.ParentIssueID = &parentID
	iss.LongDescription = "Token refresh races the logout path"
	iss.ResponsibleUsers = "Riley;Alex"

	err := repo.Create(ctx, iss)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "i1")
	require.NoError(t, err)
	require.Equal(t, iss.Description, retrieved.Description)
	require.Equal(t, iss.LongDescription, retrieved.LongDescription)
	require.Equal(t, issue.TypeBug, retrieved.Type)
	require.Equal(t, issue.CategoryBacklog, retrieved.Category)
	require.Equal(t, issue.StatusOpen, retrieved.Status)
	require.Equal(t, "Riley;Alex", retrieved.ResponsibleUsers)
	require.NotNil(t, retrieved.SprintID)
	require.Equal(t, "s1", *retrieved.SprintID)
	require.NotNil(t, retrieved.ParentIssueID)
	require.Equal(t, "epic1", *retrieved.ParentIssueID)

	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestIssueRepository_CreateRequiresProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, newTestIssue("i1", "missing", time.Now()))
	require.Equal(t, repository.ErrForeignKeyViolation, err)
}

func TestIssueRepository_ListByProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "p1")
	createTestProject(t, db, "p2")

	now := time.Now()
	require.NoError(t, repo.Create(ctx, newTestIssue("i2", "p1", now)))
	require.NoError(t, repo.Create(ctx, newTestIssue("i1", "p1", now.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, newTestIssue("other", "p2", now)))

	issues, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	require.Equal(t, "i1", issues[0].ID, "ordered by creation time")
	require.Equal(t, "i2", issues[1].ID)
}

func TestIssueRepository_ListBySprint(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "p1")

	sprintID := "s1"
	inSprint := newTestIssue("i1", "p1", time.Now())
	inSprint.SprintID = &sprintID
	require.NoError(t, repo.Create(ctx, inSprint))
	require.NoError(t, repo.Create(ctx, newTestIssue("i2", "p1", time.Now())))

	issues, err := repo.ListBySprint(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "i1", issues[0].ID)
}

func TestIssueRepository_GetChildren(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "p1")

	epic := newTestIssue("epic1", "p1", time.Now().Add(-2*time.Hour))
	epic.Type = issue.TypeEpic
	epic.Category = issue.CategoryHub
	require.NoError(t, repo.Create(ctx, epic))

	parentID := "epic1"
	now := time.Now()
	second := newTestIssue("story2", "p1", now)
	second.Type = issue.TypeStory
	second.Category = issue.CategoryPipeline
	second.ParentIssueID = &parentID
	require.NoError(t, repo.Create(ctx, second))

	first := newTestIssue("story1", "p1", now.Add(-time.Hour))
	first.Type = issue.TypeStory
	first.Category = issue.CategoryPipeline
	first.ParentIssueID = &parentID
	require.NoError(t, repo.Create(ctx, first))

	children, err := repo.GetChildren(ctx, "epic1")
	require.NoError(t, err)
	require.Len(t, children, 2)
	require.Equal(t, "story1", children[0].ID, "ordered by creation time")
	require.Equal(t, "story2", children[1].ID)

	children, err = repo.GetChildren(ctx, "story1")
	require.NoError(t, err)
	require.Empty(t, children)
}

func TestIssueRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "p1")

	iss := newTestIssue("i1", "p1", time.Now())
	require.NoError(t, repo.Create(ctx, iss))

	sprintID := "s1"
	iss.Status = issue.StatusFinished
	iss.Priority = issue.PriorityHigh
	iss.SprintID = &sprintID
	require.NoError(t, repo.Update(ctx, iss))

	retrieved, err := repo.Get(ctx, "i1")
	require.NoError(t, err)
	require.Equal(t, issue.StatusFinished, retrieved.Status)
	require.Equal(t, issue.PriorityHigh, retrieved.Priority)
	require.NotNil(t, retrieved.SprintID)
	require.Equal(t, "s1", *retrieved.SprintID)

	// Clearing the sprint writes NULL back
	iss.SprintID = nil
	require.NoError(t, repo.Update(ctx, iss))

	retrieved, err = repo.Get(ctx, "i1")
	require.NoError(t, err)
	require.Nil(t, retrieved.SprintID)

	missing := newTestIssue("missing", "p1", time.Now())
	require.Equal(t, repository.ErrNotFound, repo.Update(ctx, missing))
}

func TestIssueRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "p1")
	require.NoError(t, repo.Create(ctx, newTestIssue("i1", "p1", time.Now())))

	require.NoError(t, repo.Delete(ctx, "i1"))
	_, err := repo.Get(ctx, "i1")
	require.Equal(t, repository.ErrNotFound, err)

	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, "i1"))
}
