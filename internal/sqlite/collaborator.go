package sqlite

import (
	"context"
	"fmt"

	"github.com/sleipnirhq/sleipnir/internal/domain/project"
)

// CollaboratorRepository implements repository.CollaboratorRepository for SQLite
type CollaboratorRepository struct {
	db *DB
}

// NewCollaboratorRepository creates a new CollaboratorRepository
func NewCollaboratorRepository(db *DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

// Create registers a collaborator in the directory
func (r *CollaboratorRepository) Create(ctx context.Context, collab *project.Collaborator) error {
	query := `
		INSERT INTO collaborators (id, name, email, avatar_url)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		collab.ID,
		collab.Name,
		collab.Email,
		collab.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create collaborator: %w", err)
	}

	return nil
}

// List returns all collaborators ordered by name
func (r *CollaboratorRepository) List(ctx context.Context) ([]*project.Collaborator, error) {
	query := `
		SELECT id, name, email, avatar_url
		FROM collaborators
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var collabs []*project.Collaborator
	for rows.Next() {
		var collab project.Collaborator
		err := rows.Scan(
			&collab.ID,
			&collab.Name,
			&collab.Email,
			&collab.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		collabs = append(collabs, &collab)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collaborator rows: %w", err)
	}

	return collabs, nil
}
