package auditlog

import "errors"

var (
	// ErrInvalidInput indicates a nil or empty audit entry.
	ErrInvalidInput = errors.New("invalid audit entry")
)
