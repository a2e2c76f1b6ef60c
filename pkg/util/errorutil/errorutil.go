package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports rejected caller input.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewNotFound reports a missing resource.
func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewForbidden reports a failed credential check.
func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewAlreadyClosed reports a mutation attempted after assignments were drawn.
func NewAlreadyClosed(message string) error {
	return NewDomainError("ALREADY_CLOSED", message, http.StatusConflict, nil)
}

// NewNotEnoughParticipants reports a draw attempted below the minimum group size.
func NewNotEnoughParticipants(count int) error {
	return NewDomainError(
		"NOT_ENOUGH_PARTICIPANTS",
		"at least two participants are required to draw assignments",
		http.StatusConflict,
		map[string]any{"participants": count},
	)
}

// NewAssignmentNotReady reports an assignment lookup before the draw.
func NewAssignmentNotReady() error {
	return NewDomainError("ASSIGNMENT_NOT_READY", "assignments have not been drawn yet", http.StatusConflict, nil)
}

// NewAssignmentIncomplete reports a recorded recipient that no longer
// resolves. This is corrupted state, surfaced as a server fault rather than a
// caller error.
func NewAssignmentIncomplete() error {
	return NewDomainError("ASSIGNMENT_INCOMPLETE", "assignment data is incomplete", http.StatusInternalServerError, nil)
}

// NewInternalError wraps an unexpected server-side failure.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError converts an arbitrary error into its DomainError form.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
