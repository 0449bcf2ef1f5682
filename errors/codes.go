package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Request errors, detected before any network I/O.
const (
	// ErrCodeInvalidInput indicates the request configuration is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidCredentials indicates certificate or key material could not be loaded.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeTLSConfig indicates the TLS context could not be assembled.
	ErrCodeTLSConfig ErrorCode = "TLS_CONFIG_ERROR"
)

// Connection errors.
const (
	// ErrCodeConnectionFailed indicates the endpoint could not be reached.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the caller's deadline expired.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Endpoint responses.
const (
	// ErrCodeUnauthorized indicates the endpoint answered 401.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the endpoint answered 403.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeExternalService indicates any other non-200 answer.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// ErrCodeInternal indicates an error that fits no other code.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeExternalService:  true,
}

// Retryable reports whether the code hints at a transient failure.
// Nothing in this module retries; the hint is for callers.
func (c ErrorCode) Retryable() bool {
	return retryableCodes[c]
}
