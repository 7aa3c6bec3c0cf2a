// Package errors provides unified error handling for the transcription
// service. It implements structured error types with error codes, HTTP status
// mapping, and retryable detection.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried by the caller.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidArgument creates a new AppError for malformed or unsupported input.
func InvalidArgument(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Validation creates a new AppError for a field-level validation failure.
func Validation(message string) *AppError {
	return InvalidArgument(message)
}

// ProviderUnavailable creates a new AppError for a provider whose credential
// is not configured.
func ProviderUnavailable(provider, envVar string) *AppError {
	return &AppError{
		Code:       ErrCodeServiceUnavailable,
		Message:    fmt.Sprintf("%s API is not configured. Set the %s environment variable.", provider, envVar),
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"provider": provider},
	}
}

// Upstream creates a new AppError for a failed provider call. The call is
// never retried by the service.
func Upstream(provider string, cause error) *AppError {
	return &AppError{
		Code:       ErrCodeUpstream,
		Message:    fmt.Sprintf("transcription with %s failed: %v", provider, cause),
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
		Details: map[string]any{"provider": provider}, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal fault.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
