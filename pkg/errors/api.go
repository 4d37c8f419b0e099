package errors

import (
	"fmt"
	"strings"
	"time"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Server error codes carried in GraphQL error extensions.
const (
	ExtensionNotFound   = "NOT_FOUND"
	ExtensionBadRequest = "BAD_REQUEST"
	ExtensionBadInput   = "BAD_USER_INPUT"
	ExtensionConflict   = "CONFLICT"
)

// APIError represents GraphQL errors reported by the server that are not a
// not-found classification, such as business-rule violations.
type APIError struct {
	StatusCode int           `json:"statusCode"`
	Errors     gqlerror.List `json:"errors"`
	RetryAfter time.Duration `json:"-"` // From Retry-After header
	Err        error         `json:"-"` // Underlying error for wrapping
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("onprem: API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("onprem: API error (status %d): %s", e.StatusCode, msg)
}

// Message joins the messages of all GraphQL errors.
func (e *APIError) Message() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		if ge == nil {
			continue
		}
		msgs = append(msgs, ge.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap returns the underlying error for error chain support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// ExtensionCode returns the "code" extension of the first GraphQL error
// that carries one.
func (e *APIError) ExtensionCode() string {
	for _, ge := range e.Errors {
		if code := ExtensionCodeOf(ge); code != "" {
			return code
		}
	}
	return ""
}

// IsBadRequest returns true when the server rejected the request itself.
func (e *APIError) IsBadRequest() bool {
	switch e.ExtensionCode() {
	case ExtensionBadRequest, ExtensionBadInput:
		return true
	}
	return e.StatusCode == 400
}

// IsConflict returns true for conflicting-constraint errors.
func (e *APIError) IsConflict() bool {
	return e.ExtensionCode() == ExtensionConflict || e.StatusCode == 409
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsRateLimited returns true if the error is a 429 Too Many Requests error.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsRetryable returns true if the request should be retried.
func (e *APIError) IsRetryable() bool {
	return e.IsRateLimited() || e.IsServerError()
}

// SuggestedRetryAfter returns the delay from the Retry-After header.
func (e *APIError) SuggestedRetryAfter() time.Duration {
	return e.RetryAfter
}

// Code implements OnpremError.
func (e *APIError) Code() ErrorCode {
	return ErrCodeAPI
}

var _ OnpremError = (*APIError)(nil)

// ExtensionCodeOf returns the string "code" extension of a GraphQL error.
func ExtensionCodeOf(ge *gqlerror.Error) string {
	if ge == nil || ge.Extensions == nil {
		return ""
	}
	code, _ := ge.Extensions["code"].(string)
	return code
}

// TransportError represents a network failure or a response that could not
// be understood as a GraphQL envelope.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("onprem: transport error in %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("onprem: transport error in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Code implements OnpremError.
func (e *TransportError) Code() ErrorCode {
	return ErrCodeTransport
}

// IsRetryable returns true for 5xx and 429 status codes.
func (e *TransportError) IsRetryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

var _ OnpremError = (*TransportError)(nil)
