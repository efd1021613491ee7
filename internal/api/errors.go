package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-success response from the server.
type APIError struct {
	StatusCode int
	// Message is the server-provided "error" field, if any.
	Message string
	// Body is the raw response body.
	Body string
}

// newAPIError builds an APIError, extracting {"error": "..."} when present.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Body:       string(body),
	}

	var payload errorResponse
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		apiErr.Message = strings.TrimSpace(payload.Error)
	}

	return apiErr
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (status %d)", e.StatusCode)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsAPIError checks if an error is, or wraps, an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorMessage converts err into a single user-facing message: the
// server-provided message when there is one, otherwise fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := IsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
