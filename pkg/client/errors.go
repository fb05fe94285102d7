package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for server operations.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates missing or rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServerUnavailable indicates the server could not be reached or
	// failed internally.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrThrottled indicates the server rate limited the request.
	ErrThrottled = errors.New("request throttled")
)

// APIError wraps a failed server operation with request context.
type APIError struct {
	// Op is the operation that failed (e.g. "ListDistributions").
	Op string

	// Path is the request path relative to the API root.
	Path string

	// StatusCode is the HTTP status, zero when the request never
	// reached the server.
	StatusCode int

	// Message is the server-supplied error text, if any.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %v: %s", e.Op, e.Path, e.Err, e.Message)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized returns true if the error indicates rejected credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsServerUnavailable returns true if the error indicates the server
// could not serve the request.
func IsServerUnavailable(err error) bool {
	return errors.Is(err, ErrServerUnavailable)
}

// IsThrottled returns true if the error indicates rate limiting.
func IsThrottled(err error) bool {
	return errors.Is(err, ErrThrottled)
}
