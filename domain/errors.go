/*
errors.go - Centralized error types for the leave planner

PURPOSE:
  All error types in one place for consistency and discoverability.
  Workflows convert failures into typed Error records; handlers map
  those records to HTTP status codes and user-visible messages.

ERROR CATEGORIES:
  validation  - bad user input (date order, balance violations)
  network     - simulated/real remote-call failure
  integration - third-party calendar/HR sync failure (simulated only)
  auth        - authorization failure (reserved; no auth in scope)
  unknown     - catch-all

USAGE:
  Callers match with errors.As / errors.Is:

    var verr *domain.Error
    if errors.As(err, &verr) && verr.Kind == domain.ErrValidation {
        // verr.Field names the offending input
    }

SEE ALSO:
  - leave/request.go: Produces validation errors
  - state/store.go: Queues Error records for the UI
  - api/handlers.go: Maps kinds to HTTP status codes
*/
package domain

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// ErrorKind is the coarse error taxonomy shared across the planner.
type ErrorKind string

const (
	ErrValidation  ErrorKind = "validation"
	ErrNetwork     ErrorKind = "network"
	ErrIntegration ErrorKind = "integration"
	ErrAuth        ErrorKind = "auth"
	ErrUnknown     ErrorKind = "unknown"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDateRange is returned when a request's end date precedes
	// its start date.
	ErrInvalidDateRange = errors.New("invalid date range: end before start")

	// ErrInsufficientBalance is returned when the balance gate for a
	// leave type fails.
	ErrInsufficientBalance = errors.New("insufficient leave balance")

	// ErrUnknownLeaveType is returned for a leave type outside the enum.
	ErrUnknownLeaveType = errors.New("unknown leave type")
)

// =============================================================================
// STRUCTURED ERROR - Carries kind and offending field
// =============================================================================

// Error is the typed record pushed to the store's error queue and
// mirrored as a user-visible notification. Field names the offending
// input for validation errors ("dates", "balance") and is empty
// otherwise.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError builds a validation error for a named input field.
func NewValidationError(field, message string, cause error) *Error {
	return &Error{Kind: ErrValidation, Message: message, Field: field, cause: cause}
}

// WrapError classifies an arbitrary error. Already-typed errors pass
// through unchanged; anything else becomes kind "unknown".
func WrapError(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return &Error{Kind: ErrUnknown, Message: err.Error(), cause: err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var typed *Error
	return errors.As(err, &typed) && typed.Kind == ErrValidation
}

// IsClientError reports whether the error is due to invalid client input
// rather than a planner fault.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrUnknownLeaveType) ||
		IsValidation(err)
}
