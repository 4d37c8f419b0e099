package onprem

import (
	pkgerrors "github.com/superb-ai/onprem-go/pkg/errors"
)

// ErrorCode represents a category of error for metrics and logging.
type ErrorCode = pkgerrors.ErrorCode

// Error codes for categorization.
const (
	ErrCodeConfig       = pkgerrors.ErrCodeConfig
	ErrCodeBadParameter = pkgerrors.ErrCodeBadParameter
	ErrCodeValidation   = pkgerrors.ErrCodeValidation
	ErrCodeNotFound     = pkgerrors.ErrCodeNotFound
	ErrCodeAPI          = pkgerrors.ErrCodeAPI
	ErrCodeTransport    = pkgerrors.ErrCodeTransport
	ErrCodeUpload       = pkgerrors.ErrCodeUpload
	ErrCodeInternal     = pkgerrors.ErrCodeInternal
)

// OnpremError is the common interface for all SDK errors.
//
// Example:
//
//	var sdkErr onprem.OnpremError
//	if errors.As(err, &sdkErr) {
//	    log.Printf("code=%s retryable=%t", sdkErr.Code(), sdkErr.IsRetryable())
//	}
type OnpremError = pkgerrors.OnpremError

// Error types.
type (
	// BadParameterError is returned before any network I/O for missing or
	// out-of-range arguments.
	BadParameterError = pkgerrors.BadParameterError
	// ValidationError is returned for values outside a closed enum.
	ValidationError = pkgerrors.ValidationError
	// NotFoundError is returned when the server has no matching entity.
	NotFoundError = pkgerrors.NotFoundError
	// APIError carries server-reported GraphQL errors.
	APIError = pkgerrors.APIError
	// TransportError is a network failure or malformed response.
	TransportError = pkgerrors.TransportError
	// UploadError is a non-2xx response from the blob store.
	UploadError = pkgerrors.UploadError
)

// Sentinel errors.
var (
	ErrMissingEndpoint = pkgerrors.ErrMissingEndpoint
	ErrNilRequest      = pkgerrors.ErrNilRequest
	ErrEmptyResponse   = pkgerrors.ErrEmptyResponse
	// ErrNotFound matches any *NotFoundError with errors.Is.
	ErrNotFound = pkgerrors.ErrNotFound
	// ErrBadParameter matches any *BadParameterError with errors.Is.
	ErrBadParameter = pkgerrors.ErrBadParameter
)

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return pkgerrors.IsNotFound(err) }

// IsBadParameter reports whether err is a BadParameterError.
func IsBadParameter(err error) bool { return pkgerrors.IsBadParameter(err) }

// IsRetryable returns true if the error represents a retryable condition.
func IsRetryable(err error) bool { return pkgerrors.IsRetryable(err) }

// ErrorCodeOf returns the error code for err.
func ErrorCodeOf(err error) ErrorCode { return pkgerrors.ErrorCodeOf(err) }

// AsNotFoundError extracts a *NotFoundError from err.
func AsNotFoundError(err error) (*NotFoundError, bool) { return pkgerrors.AsNotFoundError(err) }

// AsBadParameterError extracts a *BadParameterError from err.
func AsBadParameterError(err error) (*BadParameterError, bool) {
	return pkgerrors.AsBadParameterError(err)
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) { return pkgerrors.AsAPIError(err) }

// AsUploadError extracts an *UploadError from err.
func AsUploadError(err error) (*UploadError, bool) { return pkgerrors.AsUploadError(err) }
