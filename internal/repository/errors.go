package repository

import "github.com/sleipnirhq/sleipnir/internal/repository/repoerr"

var (
	// ErrNotFound indicates the entity doesn't exist.
	ErrNotFound = repoerr.ErrNotFound
	// ErrForeignKeyViolation indicates a referenced entity doesn't exist.
	ErrForeignKeyViolation = repoerr.ErrForeignKeyViolation
)
