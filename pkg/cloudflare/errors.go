package cloudflare

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a single error entry returned inside the response
// envelope.
type APIError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// ResponseError is raised when the API answers with success=false. It
// carries every error entry of the envelope in its original order, never
// just the first.
type ResponseError struct {
	StatusCode int        `json:"-"`
	Errors     []APIError `json:"errors"`
	Messages   []string   `json:"messages,omitempty"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	parts := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		parts = append(parts, e.Errors[i].Error())
	}

	return "multiple errors: " + strings.Join(parts, "; ")
}

// FirstError returns the first error entry or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// HasCode reports whether any error entry carries the given code.
func (e *ResponseError) HasCode(code int) bool {
	for i := range e.Errors {
		if e.Errors[i].Code == code {
			return true
		}
	}

	return false
}

// TransportError wraps a network-level fault or a throttling/5xx response
// that survived the retry policy. The original failure is reachable through
// Unwrap, so retry exhaustion never hides the error kind.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Common error codes returned by the API.
const (
	ErrorCodeAuthentication   = 10000
	ErrorCodeInvalidHeaders   = 6003
	ErrorCodeInvalidRoute     = 7003
	ErrorCodeRecordNotFound   = 81044
	ErrorCodeRecordExists     = 81057
	ErrorCodeWidgetNotFound   = 12200
	ErrorCodeAccountForbidden = 9109
)

// Common static errors that can be wrapped with context.
var (
	// ErrConfigRequired is returned when a nil config is passed to a
	// client constructor.
	ErrConfigRequired = errors.New("config is required")

	// ErrAPITokenRequired is returned when the mandatory API token is
	// absent from the config.
	ErrAPITokenRequired = errors.New("API token is required")

	// ErrIdentifierRequired is returned before any network activity when a
	// required path identifier is empty or all-whitespace.
	ErrIdentifierRequired = errors.New("identifier is required")

	// ErrRateLimitQueueFull is returned when the local admission queue is
	// at capacity. It is never retried by the client; callers may retry
	// later.
	ErrRateLimitQueueFull = errors.New("rate limit queue is full")

	// ErrClientClosed is returned by every operation attempted on a closed
	// client handle.
	ErrClientClosed = errors.New("client is closed")

	// ErrNoMoreItems is returned by PageIterator.Next once the sequence is
	// exhausted.
	ErrNoMoreItems = errors.New("no more items")

	ErrClientNotRegistered     = errors.New("no client registered under that name")
	ErrClientAlreadyRegistered = errors.New("client already registered under that name")
	ErrBaseURLRequired         = errors.New("base URL is required")
)

// IsNotFound checks if the error represents a missing resource.
func IsNotFound(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == 404 ||
			respErr.HasCode(ErrorCodeInvalidRoute) ||
			respErr.HasCode(ErrorCodeRecordNotFound) ||
			respErr.HasCode(ErrorCodeWidgetNotFound)
	}

	return false
}

// IsAuthenticationError checks if the error represents a rejected
// credential.
func IsAuthenticationError(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == 401 || respErr.StatusCode == 403 ||
			respErr.HasCode(ErrorCodeAuthentication)
	}

	return false
}

// IsRateLimited checks if the error came from the local admission queue.
// Server-side throttling (429) is retried internally and surfaces as a
// TransportError instead.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimitQueueFull)
}

// IsTransient reports whether retrying the operation may succeed. Envelope
// errors reflect a definitive server decision and are never transient.
func IsTransient(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// ParseResponseError parses an error response body.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var respErr ResponseError

	err := json.Unmarshal(data, &respErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &respErr, nil
}
