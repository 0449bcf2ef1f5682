// Package errors defines AppError, the structured error reported at the
// module boundary: a stable code, a message, a retryable hint and, for
// endpoint answers, the HTTP status the identity provider returned.
//
// Typed errors of the lower layers implement Provider to map themselves
// onto an AppError; From performs that conversion for any error.
package errors
