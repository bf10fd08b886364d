package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sleipnirhq/sleipnir/internal/repository/repoerr"
)

// Service handles project operations.
type Service struct {
	repo    Repository
	collabs CollaboratorRepository
	logger  *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, collabs CollaboratorRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, collabs: collabs, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID          string
	Name        string
	Description string
	LogoURL     string
}

// UpdateRequest defines project edit inputs.
type UpdateRequest struct {
	ID          string
	Name        *string
	Description *string
	LogoURL     *string
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	proj := &Project{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if req.LogoURL != "" {
		proj.LogoURL = &req.LogoURL
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return proj, nil
}

// Update edits a project's name, description and logo.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	proj, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		proj.Name = *req.Name
	}
	if req.Description != nil {
		proj.Description = *req.Description
	}
	if req.LogoURL != nil {
		if *req.LogoURL == "" {
			proj.LogoURL = nil
		} else {
			proj.LogoURL = req.LogoURL
		}
	}
	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// GetDefault returns the default project, creating one if missing.
func (s *Service) GetDefault(ctx context.Context) (*Project, error) {
	proj, err := s.repo.GetDefault(ctx)
	if err == nil {
		return proj, nil
	}
	if !errors.Is(err, repoerr.ErrNotFound) {
		return nil, fmt.Errorf("getting default project: %w", err)
	}

	return s.Create(ctx, CreateRequest{
		Name:        "Default Project",
		Description: "",
	})
}

// List returns all projects.
func (s *Service) List(ctx context.Context) ([]*Project, error) {
	return s.repo.List(ctx)
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// AddCollaborator adds a directory entry for the assignee pickers.
func (s *Service) AddCollaborator(ctx context.Context, name, email, avatarURL string) (*Collaborator, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	collab := &Collaborator{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if avatarURL != "" {
		collab.AvatarURL = &avatarURL
	}
	if err := s.collabs.Create(ctx, collab); err != nil {
		return nil, fmt.Errorf("creating collaborator: %w", err)
	}
	return collab, nil
}

// ListCollaborators returns the assignee directory.
func (s *Service) ListCollaborators(ctx context.Context) ([]*Collaborator, error) {
	return s.collabs.List(ctx)
}
