package issue

import "errors"

var (
	// ErrIssueNotFound indicates the issue doesn't exist.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrInvalidInput indicates invalid input for issue operations.
	ErrInvalidInput = errors.New("invalid issue input")
	// ErrInvalidParent indicates a parent link that violates the
	// three-level hierarchy.
	ErrInvalidParent = errors.New("invalid parent issue")
	// ErrAborted indicates the caller's disposition cancelled the operation.
	ErrAborted = errors.New("operation aborted")
)
