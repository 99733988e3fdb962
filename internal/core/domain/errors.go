package domain

import (
	"errors"
	"fmt"
)

var ErrRegistrationClosed = errors.New("registration window is closed")
var ErrInvalidManagerCode = errors.New("invalid manager code")
var ErrPlayerNotFound = errors.New("player not found")
var ErrTeamNotFound = errors.New("team not found")
var ErrManagerNotFound = errors.New("manager not found")
var ErrRoundNotFound = errors.New("fixture round not found")
var ErrUnauthorized = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrDuplicate = errors.New("duplicate registration")
var ErrFileTooLarge = errors.New("file too large")
var ErrUnsupportedFileType = errors.New("unsupported file type")
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Upstream transport failures. Timeout and unreachable are deliberately
// distinct sentinels: the UI must show a different message for each.
var ErrUpstreamTimeout = errors.New("upstream request timed out")
var ErrUpstreamUnavailable = errors.New("upstream unreachable")

// UpstreamError carries a non-success HTTP response from the upstream API.
// Detail is the upstream's own message when the body had one.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}

// ValidationError identifies the first rule that failed during the
// fixed-order submission check. Field names match the wire field names
// so the message can point at the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
