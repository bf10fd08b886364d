package mcp

import (
	"errors"
	"fmt"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, issue.ErrIssueNotFound):
		return &APIError{Code: "ISSUE_NOT_FOUND", Message: "issue not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, issue.ErrInvalidParent):
		return &APIError{Code: "INVALID_PARENT", Message: "invalid parent issue", RecoveryHint: "Stories link to epics, leaf issues link to stories"}
	case errors.Is(err, issue.ErrAborted):
		return &APIError{Code: "CHILDREN_NEED_DECISION", Message: "issue has linked children", RecoveryHint: "Retry with children set to cascade or unlink"}
	case errors.Is(err, issue.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, sprint.ErrSprintNotFound):
		return &APIError{Code: "SPRINT_NOT_FOUND", Message: "sprint not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, sprint.ErrInvalidDates):
		return &APIError{Code: "INVALID_DATES", Message: "sprint end date precedes start date"}
	case errors.Is(err, sprint.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}
