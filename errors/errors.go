package errors

import (
	"fmt"
	"net/http"
)

// AppError is the structured error reported at the module boundary.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable hints that the same call may succeed later.
	Retryable bool `json:"retryable"`
	// Status is the endpoint's HTTP status, when one was received.
	Status int `json:"status,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error.
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

// WithDetails merges details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// New creates an AppError, deriving Retryable from the code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: code.Retryable(),
	}
}

// Validation creates an error for an invalid request configuration.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// InvalidCredentials creates an error for unreadable certificate or key material.
func InvalidCredentials(message string) *AppError {
	return New(ErrCodeInvalidCredentials, message)
}

// TLSConfig creates an error for a TLS context that could not be built.
func TLSConfig(message string) *AppError {
	return New(ErrCodeTLSConfig, message)
}

// ConnectionFailed creates an error for an endpoint that could not be reached.
func ConnectionFailed(message string) *AppError {
	return New(ErrCodeConnectionFailed, message)
}

// Timeout creates an error for a call that ran past its deadline.
func Timeout(message string) *AppError {
	return New(ErrCodeTimeout, message)
}

// Endpoint creates an error for a non-200 answer. 401 and 403 map onto
// UNAUTHORIZED and FORBIDDEN; 429 and 5xx answers are retryable.
func Endpoint(status int, message string) *AppError {
	var e *AppError
	switch status {
	case http.StatusUnauthorized:
		e = New(ErrCodeUnauthorized, message)
	case http.StatusForbidden:
		e = New(ErrCodeForbidden, message)
	default:
		e = New(ErrCodeExternalService, message)
		e.Retryable = status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
	}
	e.Status = status
	return e
}

// Internal creates an error that fits no other code.
func Internal(cause error) *AppError {
	e := New(ErrCodeInternal, "An unexpected error occurred.")
	if cause != nil {
		e.Message = cause.Error()
	}
	return e.WithCause(cause)
}
