package httpclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != ContentTypeForm {
			t.Errorf("expected form content type, got %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "grant_type=client_credentials&scope=read" {
			t.Errorf("unexpected body %q", body)
		}
		if got := r.Header.Values("X-Tenant"); len(got) != 2 {
			t.Errorf("expected duplicate X-Tenant headers, got %v", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc"}`))
	}))
	defer srv.Close()

	req := BuildRequest(RequestConfig{
		URL:           srv.URL,
		BasePayload:   "grant_type=client_credentials",
		CustomPayload: "scope=read",
		Headers:       map[string]string{"X-Tenant": "acme", "Content-Type": "application/json"},
		CustomHeaders: map[string]string{"X-Tenant": "beta"},
	})
	client, err := NewHTTPClient(HTTP11, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := Send(context.Background(), client, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body != `{"access_token":"abc"}` {
		t.Errorf("unexpected body %q", resp.Body)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSend_EndpointError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid_client"}`},
		{"created is not success", http.StatusCreated, `{"access_token":"abc"}`},
		{"no content", http.StatusNoContent, ""},
		{"server error", http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, _ := NewHTTPClient(HTTP11, nil)
			resp, err := Send(context.Background(), client, BuildRequest(RequestConfig{URL: srv.URL}))
			if !IsEndpoint(err) {
				t.Fatalf("expected endpoint error, got %v", err)
			}
			var httpErr *Error
			errors.As(err, &httpErr)
			if httpErr.StatusCode != tt.status || httpErr.Body != tt.body {
				t.Errorf("error carries %d %q, want %d %q", httpErr.StatusCode, httpErr.Body, tt.status, tt.body)
			}
			if resp == nil || resp.StatusCode != tt.status {
				t.Errorf("expected response with status %d, got %+v", tt.status, resp)
			}
		})
	}
}

func TestSend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, _ := NewHTTPClient(HTTP11, nil)
	resp, err := Send(context.Background(), client, BuildRequest(RequestConfig{URL: url}))
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if resp != nil {
		t.Error("expected no response on transport error")
	}
}

func TestSend_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, _ := NewHTTPClient(HTTP11, nil)
	_, err := Send(ctx, client, BuildRequest(RequestConfig{URL: srv.URL}))
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("expected cancellation cause, got %q", err.Error())
	}
}

func TestNewHTTPClient_ProtocolSelection(t *testing.T) {
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Proto))
	}))
	srv.EnableHTTP2 = true
	srv.StartTLS()
	defer srv.Close()

	tests := []struct {
		name    string
		version HTTPVersion
		want    string
	}{
		{"http2", ParseHTTPVersion("HTTP_2"), "HTTP/2.0"},
		{"http1.1", ParseHTTPVersion("HTTP_1_1"), "HTTP/1.1"},
		{"empty falls back to http1.1", ParseHTTPVersion(""), "HTTP/1.1"},
		{"unknown falls back to http1.1", ParseHTTPVersion("SPDY"), "HTTP/1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewHTTPClient(tt.version, serverTrust(srv))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp, err := Send(context.Background(), client, BuildRequest(RequestConfig{URL: srv.URL}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Body != tt.want || resp.Proto != tt.want {
				t.Errorf("negotiated %q (server saw %q), want %q", resp.Proto, resp.Body, tt.want)
			}
		})
	}
}

func TestNewHTTPClient_HTTP2Cleartext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Proto))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(HTTP2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := Send(context.Background(), client, BuildRequest(RequestConfig{URL: srv.URL}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body != "HTTP/1.1" {
		t.Errorf("expected cleartext HTTP/1.1, got %q", resp.Body)
	}
}

func TestNewHTTPClient_UntrustedServer(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client, _ := NewHTTPClient(HTTP11, &tls.Config{RootCAs: x509.NewCertPool(), MinVersion: tls.VersionTLS12})
	_, err := Send(context.Background(), client, BuildRequest(RequestConfig{URL: srv.URL}))
	if !IsTransport(err) {
		t.Fatalf("expected transport error for untrusted server, got %v", err)
	}
}

func serverTrust(srv *httptest.Server) *tls.Config {
	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
}
