package models

import (
	"errors"
	"fmt"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope error types
const (
	ErrorTypeValidation = "validation"
	ErrorTypeUpstream   = "upstream"
	ErrorTypeInternal   = "internal"
)

// Envelope is the only shape ever returned to a caller
type Envelope struct {
	Status       string `json:"status"`
	Data         any    `json:"data,omitempty"`
	Meta         *Meta  `json:"meta,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ErrorType    string `json:"error_type,omitempty"`
}

// Meta carries pagination and provenance details of a success envelope
type Meta struct {
	NextCursor string `json:"next_cursor,omitempty"`
	Cached     bool   `json:"cached"`
}

// SuccessEnvelope wraps a normalized result.
// The data field carries the list (or single game) for the operation that produced it.
func SuccessEnvelope(result *Result, cached bool) Envelope {
	env := Envelope{
		Status: StatusSuccess,
		Meta:   &Meta{Cached: cached},
	}
	if result == nil {
		return env
	}

	env.Data = result.Items()
	env.Meta.NextCursor = result.NextCursor
	return env
}

// ErrorEnvelope classifies err and wraps it into an error envelope
func ErrorEnvelope(err error) Envelope {
	if err == nil {
		err = errors.New("unknown error")
	}

	var vErr *ValidationError
	var uErr *UpstreamError
	errorType := ErrorTypeInternal
	switch {
	case errors.As(err, &vErr):
		errorType = ErrorTypeValidation
	case errors.As(err, &uErr):
		errorType = ErrorTypeUpstream
	}

	return Envelope{
		Status:       StatusError,
		ErrorMessage: err.Error(),
		ErrorType:    errorType,
	}
}

// IsSuccess reports whether the envelope carries a success status
func (e Envelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}

// Items returns the populated collection of the result.
// Empty collections are returned as empty slices so they serialize as [].
func (r *Result) Items() any {
	switch {
	case r.Game != nil:
		return r.Game
	case r.Teams != nil:
		return r.Teams
	case r.Players != nil:
		return r.Players
	case r.Games != nil:
		return r.Games
	}
	return []any{}
}

// String implements fmt.Stringer for log fields
func (e Envelope) String() string {
	if e.IsSuccess() {
		return e.Status
	}
	return fmt.Sprintf("%s(%s): %s", e.Status, e.ErrorType, e.ErrorMessage)
}
