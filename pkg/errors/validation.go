package errors

import "fmt"

// BadParameterError is returned before any network I/O when a required
// argument is missing or violates a client-checkable constraint.
type BadParameterError struct {
	Param   string
	Message string
}

// Error implements the error interface.
func (e *BadParameterError) Error() string {
	return fmt.Sprintf("onprem: bad parameter %q: %s", e.Param, e.Message)
}

// Is matches any *BadParameterError, so errors.Is(err, ErrBadParameter) works.
func (e *BadParameterError) Is(target error) bool {
	_, ok := target.(*BadParameterError)
	return ok
}

// Code implements OnpremError.
func (e *BadParameterError) Code() ErrorCode {
	return ErrCodeBadParameter
}

// IsRetryable returns false; the call has to be fixed, not retried.
func (e *BadParameterError) IsRetryable() bool {
	return false
}

var _ OnpremError = (*BadParameterError)(nil)

// NewBadParameterError creates a new bad parameter error.
func NewBadParameterError(param, message string) *BadParameterError {
	return &BadParameterError{
		Param:   param,
		Message: message,
	}
}

// Required returns a BadParameterError for an empty required argument.
func Required(param string) *BadParameterError {
	return NewBadParameterError(param, "is required")
}

// ValidationError represents a value outside a closed set, such as an
// unknown enum string.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error // Underlying error for wrapping
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("onprem: validation error for field %q (value %q): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("onprem: validation error for field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code implements OnpremError.
func (e *ValidationError) Code() ErrorCode {
	return ErrCodeValidation
}

// IsRetryable returns false for validation errors.
func (e *ValidationError) IsRetryable() bool {
	return false
}

var _ OnpremError = (*ValidationError)(nil)

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a new validation error with an underlying cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}
