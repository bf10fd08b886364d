package sprint

import "errors"

var (
	// ErrSprintNotFound indicates the sprint doesn't exist.
	ErrSprintNotFound = errors.New("sprint not found")
	// ErrInvalidInput indicates invalid input for sprint operations.
	ErrInvalidInput = errors.New("invalid sprint input")
	// ErrInvalidDates indicates the end date precedes the start date.
	ErrInvalidDates = errors.New("sprint end date precedes start date")
)
