package project

import "context"

// Repository manages project persistence.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	GetDefault(ctx context.Context) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
}

// CollaboratorRepository manages the assignee directory.
type CollaboratorRepository interface {
	Create(ctx context.Context, collab *Collaborator) error
	List(ctx context.Context) ([]*Collaborator, error)
}
