package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication and Authorization errors
	ErrCodeUnauthorized           ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidCredentials     ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionNotFound        ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeMalformedAuthResponse  ErrorCode = "MALFORMED_AUTH_RESPONSE"
	ErrCodeAuthServiceUnavailable ErrorCode = "AUTH_SERVICE_UNAVAILABLE"

	// Validation errors
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeMissingField   ErrorCode = "MISSING_FIELD"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeConflict ErrorCode = "CONFLICT"

	// System errors
	ErrCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrCodeStorageError      ErrorCode = "STORAGE_ERROR"
	ErrCodeConfigError       ErrorCode = "CONFIG_ERROR"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same error code, so wrapped copies
// of the predefined errors still match errors.Is.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

// WithCause adds a cause to a copy of the error
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// WithDetails adds details to a copy of the error
func (e *AppError) WithDetails(details string) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials, ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeInvalidRequest, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeAuthServiceUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeMalformedAuthResponse, ErrCodeInternalError, ErrCodeStorageError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

// Authentication errors
var (
	ErrUnauthorized           = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidCredentials     = New(ErrCodeInvalidCredentials, "invalid credentials")
	ErrSessionNotFound        = New(ErrCodeSessionNotFound, "session not found")
	ErrMalformedAuthResponse  = New(ErrCodeMalformedAuthResponse, "malformed authentication response")
	ErrAuthServiceUnavailable = New(ErrCodeAuthServiceUnavailable, "authentication service unavailable")
)

// Request and resource errors
var (
	ErrInvalidRequest = New(ErrCodeInvalidRequest, "invalid request")
	ErrNotFound       = New(ErrCodeNotFound, "slide album not found")
	ErrConflict       = New(ErrCodeConflict, "slide album already exists")
)

// System errors
var (
	ErrInternalError     = New(ErrCodeInternalError, "internal server error")
	ErrStorageError      = New(ErrCodeStorageError, "storage operation failed")
	ErrConfigError       = New(ErrCodeConfigError, "configuration error")
	ErrRateLimitExceeded = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// Helper functions for creating contextual errors

// NewMissingField creates an invalid-request error naming the absent field
func NewMissingField(field string) *AppError {
	return Newf(ErrCodeMissingField, "required field %q is missing", field)
}

// NewNotFound creates a not found error. The message is constant on purpose:
// cross-tenant probes must not be able to distinguish "absent" from "not
// yours" by the error shape.
func NewNotFound() *AppError {
	return New(ErrCodeNotFound, "slide album not found")
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewStorageError creates a storage error with cause
func NewStorageError(cause error) *AppError {
	return Wrap(ErrCodeStorageError, "storage operation failed", cause)
}

// NewAuthServiceError creates an auth-service error with cause
func NewAuthServiceError(cause error) *AppError {
	return Wrap(ErrCodeAuthServiceUnavailable, "authentication service unavailable", cause)
}
