package greenhouseapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/greenhouse/console/internal/core/domain"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	// Message is taken from the response body when the server supplied one.
	Message string
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: messageFromBody(body)}
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ServerMessage returns the message the backend put in the body, if any.
func (e *APIError) ServerMessage() string { return e.Message }

// Is lets errors.Is(err, domain.ErrUnauthorized) match 401 responses.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err carries a 401 from the backend.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// StatusCode returns the HTTP status behind err, or 0 if it is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// TransportError means the request never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap exposes both the cause and domain.ErrServerUnreachable.
func (e *TransportError) Unwrap() []error {
	return []error{domain.ErrServerUnreachable, e.Err}
}

// errorBody covers the shapes the backend uses for failures: plain
// {"message"}, {"error"} and RFC 7807 problem details.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Title   string `json:"title"`
	Detail  string `json:"detail"`
}

func messageFromBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, m := range []string{eb.Message, eb.Detail, eb.Error, eb.Title} {
			if m != "" {
				return m
			}
		}
		return ""
	}

	// A bare JSON string or plain text.
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	if strings.HasPrefix(trimmed, "<") {
		return ""
	}
	return trimmed
}
