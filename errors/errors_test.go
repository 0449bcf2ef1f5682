package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNew_RetryableFromCode(t *testing.T) {
	tests := []struct {
		code      ErrorCode
		retryable bool
	}{
		{ErrCodeInvalidInput, false},
		{ErrCodeInvalidCredentials, false},
		{ErrCodeTLSConfig, false},
		{ErrCodeConnectionFailed, true},
		{ErrCodeTimeout, true},
		{ErrCodeUnauthorized, false},
		{ErrCodeForbidden, false},
		{ErrCodeExternalService, true},
		{ErrCodeInternal, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "msg")
			if err.Code != tt.code {
				t.Errorf("code = %s, want %s", err.Code, tt.code)
			}
			if err.Retryable != tt.retryable {
				t.Errorf("retryable = %v, want %v", err.Retryable, tt.retryable)
			}
		})
	}
}

func TestEndpoint_StatusMapping(t *testing.T) {
	tests := []struct {
		status    int
		code      ErrorCode
		retryable bool
	}{
		{http.StatusBadRequest, ErrCodeExternalService, false},
		{http.StatusUnauthorized, ErrCodeUnauthorized, false},
		{http.StatusForbidden, ErrCodeForbidden, false},
		{http.StatusTooManyRequests, ErrCodeExternalService, true},
		{http.StatusInternalServerError, ErrCodeExternalService, true},
		{http.StatusServiceUnavailable, ErrCodeExternalService, true},
		{http.StatusCreated, ErrCodeExternalService, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := Endpoint(tt.status, "answer")
			if err.Code != tt.code {
				t.Errorf("code = %s, want %s", err.Code, tt.code)
			}
			if err.Retryable != tt.retryable {
				t.Errorf("retryable = %v, want %v", err.Retryable, tt.retryable)
			}
			if err.Status != tt.status {
				t.Errorf("status = %d, want %d", err.Status, tt.status)
			}
			if err.Message != "answer" {
				t.Errorf("message = %q", err.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"validation", Validation("x"), ErrCodeInvalidInput},
		{"invalid credentials", InvalidCredentials("bad pem"), ErrCodeInvalidCredentials},
		{"tls config", TLSConfig("bad key"), ErrCodeTLSConfig},
		{"connection failed", ConnectionFailed("refused"), ErrCodeConnectionFailed},
		{"timeout", Timeout("deadline"), ErrCodeTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.Status != 0 {
				t.Errorf("status = %d, want 0", tt.err.Status)
			}
		})
	}
}

func TestInternal(t *testing.T) {
	if got := Internal(nil).Message; got != "An unexpected error occurred." {
		t.Errorf("unexpected default message %q", got)
	}
	cause := fmt.Errorf("boom")
	err := Internal(cause)
	if err.Message != "boom" {
		t.Errorf("expected cause message, got %q", err.Message)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	root := fmt.Errorf("connection refused")
	err := ConnectionFailed("dial failed").WithCause(root)
	if !stderrors.Is(err, root) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := Validation("bad")
	err.WithDetail("field", "url")
	err.WithDetails(map[string]any{"reason": "empty", "field": "uri"})
	if err.Details["field"] != "uri" || err.Details["reason"] != "empty" {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := Validation("url: is required")
	if got := err.Error(); got != "INVALID_INPUT: url: is required" {
		t.Errorf("unexpected format %q", got)
	}
}

func TestAppError_ToResponse_JSON(t *testing.T) {
	err := Endpoint(http.StatusUnauthorized, "invalid_client").WithDetail("body", `{"error":"invalid_client"}`)
	data, marshalErr := json.Marshal(err.ToResponse())
	if marshalErr != nil {
		t.Fatalf("unexpected error: %v", marshalErr)
	}
	for _, want := range []string{`"code":"UNAUTHORIZED"`, `"status":401`, `"retryable":false`, `"body":`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %s in JSON, got %s", want, data)
		}
	}

	data, _ = json.Marshal(Validation("bad").ToResponse())
	if strings.Contains(string(data), `"status"`) {
		t.Errorf("zero status should be omitted, got %s", data)
	}
}

func TestAppError_AsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Validation("inner"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Message != "inner" {
		t.Errorf("unexpected message %q", appErr.Message)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected plain error not to convert")
	}
}

type providerError struct{}

func (providerError) Error() string        { return "provider" }
func (providerError) AppError() *AppError { return TLSConfig("from provider") }

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Error("expected nil for nil error")
	}

	tests := []struct {
		name string
		err  error
		code ErrorCode
		msg  string
	}{
		{"provider", fmt.Errorf("wrap: %w", providerError{}), ErrCodeTLSConfig, "from provider"},
		{"app error", fmt.Errorf("wrap: %w", Timeout("late")), ErrCodeTimeout, "late"},
		{"plain", fmt.Errorf("plain"), ErrCodeInternal, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			if got.Code != tt.code {
				t.Errorf("code = %s, want %s", got.Code, tt.code)
			}
			if got.Message != tt.msg {
				t.Errorf("message = %q, want %q", got.Message, tt.msg)
			}
		})
	}
}
