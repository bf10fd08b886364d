// Package repoerr holds the repository sentinel errors in a dependency-free
// leaf package so the domain packages can match on them without importing
// the repository interfaces, which themselves import the domain packages.
package repoerr

import "errors"

var (
	// ErrNotFound indicates the entity doesn't exist.
	ErrNotFound = errors.New("entity not found")
	// ErrForeignKeyViolation indicates a referenced entity doesn't exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
