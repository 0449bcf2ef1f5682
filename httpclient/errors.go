package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTransport indicates the request could not be sent or the
	// response could not be read (refused, DNS, TLS handshake, cancellation).
	ErrCodeTransport ErrorCode = iota
	// ErrCodeEndpoint indicates the endpoint answered with a status other than 200.
	ErrCodeEndpoint
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTransport:
		return "transport"
	case ErrCodeEndpoint:
		return "endpoint"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for transport errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the response body of an endpoint error.
	Body string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error.
func NewTransportError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewEndpointError creates an endpoint error for a non-200 response.
func NewEndpointError(statusCode int, body string) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeEndpoint,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsEndpoint checks if an error is an endpoint error.
func IsEndpoint(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeEndpoint
}
