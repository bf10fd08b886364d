package project_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/repository/mocks"
	"github.com/sleipnirhq/sleipnir/internal/repository/repoerr"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*project.Service, *mocks.ProjectRepository, *mocks.CollaboratorRepository) {
	repo := new(mocks.ProjectRepository)
	collabs := new(mocks.CollaboratorRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return project.NewService(repo, collabs, logger), repo, collabs
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	var created *project.Project
	repo.On("Create", mock.Anything, mock.AnythingOfType("*project.Project")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*project.Project) }).
		Return(nil)

	proj, err := svc.Create(ctx, project.CreateRequest{Name: "Sleipnir", LogoURL: "https://example.com/l.png"})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID, "id is generated when omitted")
	require.Equal(t, created, proj)
	require.NotNil(t, proj.LogoURL)

	proj, err = svc.Create(ctx, project.CreateRequest{ID: "custom", Name: "Named"})
	require.NoError(t, err)
	require.Equal(t, "custom", proj.ID)
	require.Nil(t, proj.LogoURL)

	_, err = svc.Create(ctx, project.CreateRequest{Name: "   "})
	require.Equal(t, project.ErrInvalidInput, err)
}

func TestService_Update(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	logo := "https://example.com/l.png"
	proj := &project.Project{ID: "p1", Name: "Old", LogoURL: &logo}
	repo.On("Get", mock.Anything, "p1").Return(proj, nil)
	repo.On("Update", mock.Anything, proj).Return(nil)

	updated, err := svc.Update(ctx, project.UpdateRequest{ID: "p1", Name: strPtr("New"), LogoURL: strPtr("")})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Name)
	require.Nil(t, updated.LogoURL, "empty string clears the logo")

	_, err = svc.Update(ctx, project.UpdateRequest{ID: "p1", Name: strPtr("  ")})
	require.Equal(t, project.ErrInvalidInput, err)

	_, err = svc.Update(ctx, project.UpdateRequest{})
	require.Equal(t, project.ErrInvalidInput, err)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("Get", mock.Anything, "missing").Return(nil, repoerr.ErrNotFound)

	_, err := svc.Get(context.Background(), "missing")
	require.Equal(t, project.ErrProjectNotFound, err)
}

func TestService_GetDefault(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	existing := &project.Project{ID: "p1", Name: "First"}
	repo.On("GetDefault", mock.Anything).Return(existing, nil)

	proj, err := svc.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, existing, proj)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetDefault_CreatesWhenMissing(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.On("GetDefault", mock.Anything).Return(nil, repoerr.ErrNotFound)
	var created *project.Project
	repo.On("Create", mock.Anything, mock.AnythingOfType("*project.Project")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*project.Project) }).
		Return(nil)

	proj, err := svc.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "Default Project", proj.Name)
	require.Equal(t, created, proj)
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.On("Delete", mock.Anything, "p1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "p1"))

	repo.On("Delete", mock.Anything, "missing").Return(repoerr.ErrNotFound)
	require.Equal(t, project.ErrProjectNotFound, svc.Delete(ctx, "missing"))

	require.Equal(t, project.ErrInvalidInput, svc.Delete(ctx, ""))
}

func TestService_AddCollaborator(t *testing.T) {
	svc, _, collabs := newTestService()
	ctx := context.Background()

	collabs.On("Create", mock.Anything, mock.AnythingOfType("*project.Collaborator")).Return(nil)

	collab, err := svc.AddCollaborator(ctx, "Riley", "riley@example.com", "")
	require.NoError(t, err)
	require.NotEmpty(t, collab.ID)
	require.Equal(t, "Riley", collab.Name)
	require.Nil(t, collab.AvatarURL)

	withAvatar, err := svc.AddCollaborator(ctx, "Alex", "", "https://example.com/a.png")
	require.NoError(t, err)
	require.NotNil(t, withAvatar.AvatarURL)

	_, err = svc.AddCollaborator(ctx, "  ", "", "")
	require.Equal(t, project.ErrInvalidInput, err)
}
