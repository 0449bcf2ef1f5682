package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTransport, "transport"},
		{ErrCodeEndpoint, "endpoint"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := NewEndpointError(401, "invalid_client")
	if got := err.Error(); got != "httpclient: endpoint (HTTP 401): HTTP 401" {
		t.Errorf("unexpected message %q", got)
	}

	cause := errors.New("connection refused")
	terr := NewTransportError(cause)
	if got := terr.Error(); got != "httpclient: transport: connection refused" {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(terr, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestIsHelpers_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("call: %w", NewEndpointError(500, "boom"))
	if !IsEndpoint(wrapped) || IsTransport(wrapped) {
		t.Error("expected wrapped endpoint error to classify as endpoint only")
	}
	if IsEndpoint(errors.New("plain")) {
		t.Error("plain error must not classify")
	}
}
