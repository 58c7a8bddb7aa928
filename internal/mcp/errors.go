package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, roster.ErrActivityNotFound):
		return &APIError{Code: "ACTIVITY_NOT_FOUND", Message: "Activity not found", RecoveryHint: "Call list_activities for exact names"}
	case errors.Is(err, roster.ErrAlreadyRegistered):
		return &APIError{Code: "ALREADY_REGISTERED", Message: "Student is already signed up"}
	case errors.Is(err, roster.ErrNotRegistered):
		return &APIError{Code: "NOT_REGISTERED", Message: "Student is not signed up for this activity"}
	case errors.Is(err, roster.ErrInvalidInput), errors.Is(err, enrollment.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}

// toolError converts err into the error returned from a tool handler.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
