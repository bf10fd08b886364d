package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/repository"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, db *DB, id string) *project.Project {
	t.Helper()
	repo := NewProjectRepository(db)
	proj := &project.Project{
		ID:          id,
		Name:        "Test Project " + id,
		Description: "A test project",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), proj))
	return proj
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	logo := "https://example.com/logo.png"
	proj := &project.Project{
		ID:          "p1",
		Name:        "Test Project",
		Description: "A test project",
		LogoURL:     &logo,
		CreatedAt:   time.Now(),
	}

	err := repo.Create(ctx, proj)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj.Name, retrieved.Name)
	require.Equal(t, proj.Description, retrieved.Description)
	require.NotNil(t, retrieved.LogoURL)
	require.Equal(t, logo, *retrieved.LogoURL)

	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_GetDefault(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	_, err := repo.GetDefault(ctx)
	require.Equal(t, repository.ErrNotFound, err)

	first := &project.Project{ID: "p1", Name: "First", CreatedAt: time.Now().Add(-time.Hour)}
	second := &project.Project{ID: "p2", Name: "Second", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	defaultProj, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "p1", defaultProj.ID, "default is the oldest project")
}

func TestProjectRepository_UpdateAndDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, "p1")

	proj.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", retrieved.Name)

	require.NoError(t, repo.Delete(ctx, "p1"))
	_, err = repo.Get(ctx, "p1")
	require.Equal(t, repository.ErrNotFound, err)

	require.Equal(t, repository.ErrNotFound, repo.Update(ctx, proj))
	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, "p1"))
}

func TestProjectRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	older := &project.Project{ID: "p1", Name: "Older", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &project.Project{ID: "p2", Name: "Newer", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "p1", projects[0].ID, "ordered by creation time")
	require.Equal(t, "p2", projects[1].ID)
}

func TestCollaboratorRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCollaboratorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &project.Collaborator{ID: "c2", Name: "Riley", Email: "riley@example.com"}))
	require.NoError(t, repo.Create(ctx, &project.Collaborator{ID: "c1", Name: "Alex"}))

	collabs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, collabs, 2)
	require.Equal(t, "Alex", collabs[0].Name, "ordered by name")
	require.Equal(t, "Riley", collabs[1].Name)
	require.Equal(t, "riley@example.com", collabs[1].Email)
}
