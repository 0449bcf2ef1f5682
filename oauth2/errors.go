package oauth2

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/kbukum/idpclient/errors"
	"github.com/kbukum/idpclient/httpclient"
	"github.com/kbukum/idpclient/security"
)

// Kind names the phase a call failed in.
type Kind string

const (
	// KindConfig is an invalid request, rejected before any file or network access.
	KindConfig Kind = "config"
	// KindCredential is certificate or key material that could not be loaded.
	KindCredential Kind = "credential"
	// KindTLS is resolved material that could not form a TLS context.
	KindTLS Kind = "tls"
	// KindTransport is a connection or I/O failure, including cancellation.
	KindTransport Kind = "transport"
	// KindEndpoint is a response with a status other than 200.
	KindEndpoint Kind = "endpoint"
)

// Message prefixes of each failing phase.
const (
	msgInitSSLContext = "Failed to init SSL context. "
	msgSendRequest    = "Failed to send the request to the endpoint. "
	msgInvalidConfig  = "Invalid request configuration. "
)

// Error is the single error type returned by a call.
type Error struct {
	// Kind names the failing phase.
	Kind Kind
	// Message is the human-readable description including the cause.
	Message string
	// StatusCode is the response status of an endpoint error.
	StatusCode int
	// Body is the response body of an endpoint error.
	Body string
	// Err is the underlying error.
	Err error
}

var _ errors.Provider = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// AppError converts the error into the shared application error model.
func (e *Error) AppError() *errors.AppError {
	var appErr *errors.AppError
	switch e.Kind {
	case KindConfig:
		appErr = errors.Validation(e.Message)
		if cause, ok := errors.AsAppError(e.Err); ok {
			appErr.WithDetails(cause.Details)
		}
	case KindCredential:
		appErr = errors.InvalidCredentials(e.Message)
	case KindTLS:
		appErr = errors.TLSConfig(e.Message)
	case KindTransport:
		if stderrors.Is(e.Err, context.DeadlineExceeded) {
			appErr = errors.Timeout(e.Message)
		} else {
			appErr = errors.ConnectionFailed(e.Message)
		}
	case KindEndpoint:
		appErr = errors.Endpoint(e.StatusCode, e.Message)
		if e.Body != "" {
			appErr.WithDetail("body", e.Body)
		}
	default:
		appErr = errors.Internal(nil)
	}
	return appErr.WithCause(e.Err)
}

// classify turns a failure of any phase into an *Error.
func classify(err error) *Error {
	if err == nil {
		return nil
	}

	var callErr *Error
	if stderrors.As(err, &callErr) {
		return callErr
	}

	var credErr *security.CredentialError
	if stderrors.As(err, &credErr) {
		return &Error{Kind: KindCredential, Message: msgInitSSLContext + credErr.Error(), Err: err}
	}

	var tlsErr *security.TLSError
	if stderrors.As(err, &tlsErr) {
		return &Error{Kind: KindTLS, Message: msgInitSSLContext + tlsErr.Error(), Err: err}
	}

	var httpErr *httpclient.Error
	if stderrors.As(err, &httpErr) {
		switch httpErr.Code {
		case httpclient.ErrCodeEndpoint:
			return &Error{
				Kind: KindEndpoint,
				Message: fmt.Sprintf(
					"Failed to get a success response from the endpoint. Response Code: '%d'. Response Body: '%s'",
					httpErr.StatusCode, httpErr.Body),
				StatusCode: httpErr.StatusCode,
				Body:       httpErr.Body,
				Err:        err,
			}
		default:
			return &Error{Kind: KindTransport, Message: msgSendRequest + httpErr.Message, Err: err}
		}
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return &Error{Kind: KindConfig, Message: msgInvalidConfig + appErr.Message, Err: err}
	}

	// Unknown resolution failures (e.g. an unsupported source) still fail the TLS setup.
	return &Error{Kind: KindTLS, Message: msgInitSSLContext + err.Error(), Err: err}
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

// IsConfig checks if err is a configuration error.
func IsConfig(err error) bool { return hasKind(err, KindConfig) }

// IsCredential checks if err is a credential error.
func IsCredential(err error) bool { return hasKind(err, KindCredential) }

// IsTLS checks if err is a TLS context error.
func IsTLS(err error) bool { return hasKind(err, KindTLS) }

// IsTransport checks if err is a transport error.
func IsTransport(err error) bool { return hasKind(err, KindTransport) }

// IsEndpoint checks if err is an endpoint error.
func IsEndpoint(err error) bool { return hasKind(err, KindEndpoint) }
