package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/interview"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
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
	case errors.Is(err, activity.ErrInvalidArgument), errors.Is(err, pipeline.ErrInvalidArgument):
		return &APIError{
			Code:         "INVALID_ARGUMENT",
			Message:      err.Error(),
			RecoveryHint: "Counts and limits must be zero or greater",
		}
	case errors.Is(err, interview.ErrInvalidArgument):
		return &APIError{
			Code:         "INVALID_ARGUMENT",
			Message:      err.Error(),
			RecoveryHint: "Skill levels are percentages from 0 to 100",
		}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
