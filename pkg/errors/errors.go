package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of error for metrics and logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeConfig       ErrorCode = "CONFIG"        // Configuration errors
	ErrCodeBadParameter ErrorCode = "BAD_PARAMETER" // Client-side argument errors
	ErrCodeValidation   ErrorCode = "VALIDATION"    // Closed-set value errors
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"     // Server reported no such entity
	ErrCodeAPI          ErrorCode = "API"           // Server-reported GraphQL errors
	ErrCodeTransport    ErrorCode = "TRANSPORT"     // Network or malformed responses
	ErrCodeUpload       ErrorCode = "UPLOAD"        // Blob store PUT/GET failures
	ErrCodeInternal     ErrorCode = "INTERNAL"      // Internal SDK errors
)

// OnpremError is the common interface for all SDK errors.
//
//	var sdkErr errors.OnpremError
//	if stdErrors.As(err, &sdkErr) {
//	    log.Printf("error code: %s", sdkErr.Code())
//	}
type OnpremError interface {
	error

	// Code returns a machine-readable error code for categorization.
	Code() ErrorCode

	// IsRetryable returns true if the operation can be retried.
	IsRetryable() bool
}

// Sentinel errors.
var (
	ErrMissingEndpoint = errors.New("onprem: endpoint is required")
	ErrNilRequest      = errors.New("onprem: request cannot be nil")
	ErrEmptyResponse   = errors.New("onprem: response has no data")
)

// Sentinels for use with errors.Is. They match any error of the same kind.
var (
	ErrNotFound     = &NotFoundError{}
	ErrBadParameter = &BadParameterError{}
)

// NotFoundError is returned when the server reports that no entity matches
// a get or delete request. It is distinct from an empty list result.
type NotFoundError struct {
	// Resource is the logical resource name, e.g. "dataset".
	Resource string
	// Message is the server message, if any.
	Message string
	// Path is the GraphQL path that reported the error.
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.Message != "":
		return fmt.Sprintf("onprem: %s not found: %s", e.Resource, e.Message)
	case e.Resource != "":
		return fmt.Sprintf("onprem: %s not found", e.Resource)
	case e.Message != "":
		return "onprem: not found: " + e.Message
	}
	return "onprem: not found"
}

// Is matches any *NotFoundError, so errors.Is(err, ErrNotFound) works.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// Code implements OnpremError.
func (e *NotFoundError) Code() ErrorCode { return ErrCodeNotFound }

// IsRetryable implements OnpremError.
func (e *NotFoundError) IsRetryable() bool { return false }

var _ OnpremError = (*NotFoundError)(nil)

// NewNotFoundError creates a NotFoundError for resource.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// UploadError is returned when the blob store rejects an out-of-band
// upload or download with a non-2xx status.
type UploadError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("onprem: %s %s failed (status %d): %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("onprem: %s %s failed (status %d)", e.Method, e.URL, e.StatusCode)
}

// Code implements OnpremError.
func (e *UploadError) Code() ErrorCode { return ErrCodeUpload }

// IsRetryable returns true for 5xx and 429 responses.
func (e *UploadError) IsRetryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

var _ OnpremError = (*UploadError)(nil)

// AsNotFoundError extracts a NotFoundError from the error chain.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// AsBadParameterError extracts a BadParameterError from the error chain.
func AsBadParameterError(err error) (*BadParameterError, bool) {
	var bp *BadParameterError
	if errors.As(err, &bp) {
		return bp, true
	}
	return nil, false
}

// AsValidationError extracts a ValidationError from the error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsAPIError extracts an APIError from the error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsTransportError extracts a TransportError from the error chain.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// AsUploadError extracts an UploadError from the error chain.
func AsUploadError(err error) (*UploadError, bool) {
	var ue *UploadError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadParameter reports whether err is a BadParameterError.
func IsBadParameter(err error) bool {
	return errors.Is(err, ErrBadParameter)
}

// IsRetryable returns true if the error represents a retryable condition.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var sdkErr OnpremError
	if errors.As(err, &sdkErr) {
		return sdkErr.IsRetryable()
	}
	return false
}

// ErrorCodeOf returns the error code for err, or ErrCodeInternal for
// errors that do not implement OnpremError. Returns "" for nil.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var sdkErr OnpremError
	if errors.As(err, &sdkErr) {
		return sdkErr.Code()
	}
	if errors.Is(err, ErrMissingEndpoint) {
		return ErrCodeConfig
	}
	return ErrCodeInternal
}
