// Package shared holds the error taxonomy used across the client.
package shared

import (
	"errors"
	"net/http"
)

var (
	// ErrTokenInvalid marks a session token that failed to decode
	// (malformed or expired). Downgrades the session to unauthenticated.
	ErrTokenInvalid = errors.New("invalid session token")

	// ErrUnavailable marks a transport failure: no response reached the backend.
	ErrUnavailable = errors.New("server unavailable")

	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrIllegalTransition marks a booking status change rejected by the
	// local state-machine guard, before any network call.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// RejectedError is returned when the backend responded with a non-2xx status
// and an error payload. Message carries the server's text verbatim so the
// caller can surface it unchanged.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// Is classifies rejections by status code so callers can match the sentinels
// with errors.Is without losing the verbatim message.
func (e *RejectedError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}
