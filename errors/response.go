package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON document printed for machine consumers.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error details.
type ErrorBody struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Retryable bool           `json:"retryable"`
	Status    int            `json:"status,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:      e.Code,
			Message:   e.Message,
			Retryable: e.Retryable,
			Status:    e.Status,
			Details:   e.Details,
		},
	}
}

// Provider is implemented by error types that map themselves onto an AppError.
type Provider interface {
	AppError() *AppError
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// From converts any error into an AppError. Errors in the chain that are a
// Provider or an *AppError are used as is; anything else becomes INTERNAL_ERROR.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var p Provider
	if stderrors.As(err, &p) {
		return p.AppError()
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
