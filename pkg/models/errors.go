package models

import (
	"errors"
	"fmt"
)

// ValidationError reports an unrecognized league or a missing/invalid parameter.
// It is raised before any cache or rate limiter access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UpstreamError reports a failed provider call: network failure, timeout,
// non-success HTTP status or an unparseable body.
type UpstreamError struct {
	Operation  string
	League     LeagueID
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	prefix := "upstream request failed"
	if e.Operation != "" {
		prefix = fmt.Sprintf("%s %s failed", e.Operation, e.League)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d): %v", prefix, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewValidationError is a shorthand for a field-scoped ValidationError
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
