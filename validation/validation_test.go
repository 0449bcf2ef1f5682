package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/idpclient/errors"
)

type endpointInput struct {
	URL     string `mapstructure:"url" validate:"required,url"`
	Version string `mapstructure:"http_version" validate:"omitempty,oneof=HTTP_1_1 HTTP_2"`
}

func TestValidate_Valid(t *testing.T) {
	in := endpointInput{URL: "https://idp.example.com/oauth2/token", Version: "HTTP_2"}
	if err := Validate(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		in      endpointInput
		wantMsg string
	}{
		{"missing url", endpointInput{}, "url: is required"},
		{"malformed url", endpointInput{URL: "not a url"}, "url: must be a valid URL"},
		{"unknown version", endpointInput{URL: "http://localhost", Version: "HTTP_3"}, "http_version: must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in %q", tt.wantMsg, err.Error())
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("unexpected code %s", appErr.Code)
			}
			if _, ok := appErr.Details["fields"]; !ok {
				t.Error("expected field details")
			}
		})
	}
}

func TestValidatorRequired(t *testing.T) {
	if New().Required("path", "/etc/ca.pem").HasErrors() {
		t.Error("expected no errors for valid input")
	}
	if !New().Required("path", "").HasErrors() {
		t.Error("expected error for empty required field")
	}
	if !New().Required("path", "   ").HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorErr(t *testing.T) {
	if err := New().Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	err := New().
		Custom(false, "cert_file", "must not be set together with trust_store").
		Required("trust_store.path", "").
		Err()
	if err == nil {
		t.Fatal("expected error")
	}
	want := "cert_file: must not be set together with trust_store; trust_store.path: is required"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected %q in %q", want, err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"TrustStore": "trust_store",
		"URL":        "u_r_l",
		"cert":       "cert",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
