package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(strings.Split(strings.TrimSpace(buf.String()), "\n")[0])
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "idpcall", &buf)

	l.Debug("resolving credentials", Fields(FieldPhase, "credentials", FieldRequestID, "abc"))

	m := decodeLine(t, &buf)
	if m["message"] != "resolving credentials" {
		t.Errorf("unexpected message %v", m["message"])
	}
	if m[FieldService] != "idpcall" {
		t.Errorf("expected service field, got %v", m[FieldService])
	}
	if m[FieldPhase] != "credentials" {
		t.Errorf("expected phase field, got %v", m[FieldPhase])
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn", Format: "json"}, "svc", &buf)

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}

	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn to be written, got %q", buf.String())
	}
}

func TestNewWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "invalid-level", Format: "json"}, "svc", &buf)

	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("expected debug to be filtered at info level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected info line")
	}
}

func TestWithComponentAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "svc", &buf)

	l.WithComponent("oauth2").Error("call failed", ErrorFields("send", errors.New("boom")))

	m := decodeLine(t, &buf)
	if m[FieldComponent] != "oauth2" {
		t.Errorf("expected component field, got %v", m[FieldComponent])
	}
	if m["error"] != "boom" {
		t.Errorf("expected error field, got %v", m["error"])
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	l.WithComponent("x").Info("nothing")
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(f) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(f), f)
	}
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestErrorFields(t *testing.T) {
	ef := ErrorFields("send", errors.New("refused"))
	if ef[FieldOperation] != "send" || ef[FieldError] != "refused" {
		t.Errorf("unexpected error fields %v", ef)
	}

	merged := MergeWithError(nil, errors.New("x"))
	if merged[FieldError] != "x" {
		t.Errorf("unexpected merged fields %v", merged)
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != FormatConsole || cfg.Output != "stderr" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Config{Level: "loud", Format: "json", Output: "stderr"}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("expected level error, got %v", err)
	}

	bad = Config{Level: "info", Format: "xml", Output: "stderr"}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("expected format error, got %v", err)
	}

	bad = Config{Level: "info", Format: "json", Output: "file"}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "logging.output") {
		t.Errorf("expected output error, got %v", err)
	}
}

func TestLevelTag(t *testing.T) {
	tests := map[string]string{
		"debug": "[DBG]",
		"info":  "[INF]",
		"warn":  "[WRN]",
		"error": "[ERR]",
		"trace": "[TRACE]",
	}
	for in, want := range tests {
		if got := levelTag(in); got != want {
			t.Errorf("levelTag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in      string
		visible int
		want    string
	}{
		{"Basic Y2xpZW50OnNlY3JldA==", 5, "Basic***"},
		{"abc", 3, "***"},
		{"", 0, "***"},
		{"secret", 0, "***"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.in, tt.visible); got != tt.want {
			t.Errorf("MaskSecret(%q, %d) = %q, want %q", tt.in, tt.visible, got, tt.want)
		}
	}
}
