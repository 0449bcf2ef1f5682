package oauth2

import (
	"testing"

	"github.com/kbukum/idpclient/httpclient"
	"github.com/kbukum/idpclient/security"
)

func TestRequest_RequestConfig(t *testing.T) {
	req := Request{
		URL:     "https://idp.test/token",
		Payload: "grant_type=client_credentials",
		Headers: map[string]string{"Authorization": "Basic abc"},
		Config: &ClientConfig{
			CustomPayload: "scope=read",
			CustomHeaders: map[string]string{"X-Tenant": "acme"},
			HTTPVersion:   "HTTP_2",
		},
	}

	cfg := req.RequestConfig()
	if cfg.URL != req.URL || cfg.BasePayload != req.Payload || cfg.CustomPayload != "scope=read" {
		t.Errorf("unexpected request config %+v", cfg)
	}
	if cfg.Headers["Authorization"] != "Basic abc" || cfg.CustomHeaders["X-Tenant"] != "acme" {
		t.Errorf("headers not carried over: %+v", cfg)
	}
	if cfg.Version() != httpclient.HTTP2 {
		t.Errorf("expected HTTP2, got %q", cfg.Version())
	}
}

func TestRequest_RequestConfigDefaults(t *testing.T) {
	cfg := (&Request{URL: "https://idp.test/token"}).RequestConfig()
	if cfg.HTTPVersion != string(httpclient.HTTP11) {
		t.Errorf("expected HTTP_1_1 default, got %q", cfg.HTTPVersion)
	}
	if cfg.CustomPayload != "" || cfg.CustomHeaders != nil {
		t.Errorf("expected no custom settings, got %+v", cfg)
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"minimal", Request{URL: "https://idp.test/token"}, false},
		{"nil socket", Request{URL: "https://idp.test/token", Config: &ClientConfig{}}, false},
		{"missing url", Request{}, true},
		{"key store and client cert", Request{
			URL: "https://idp.test/token",
			Config: &ClientConfig{SecureSocket: &security.SecureSocket{
				CertFile:   "ca.pem",
				KeyStore:   &security.StoreConfig{Path: "ks.p12"},
				ClientCert: &security.CertKeyConfig{CertFile: "c.pem", KeyFile: "c.key"},
			}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHeaderSummaryMasksValues(t *testing.T) {
	got := headerSummary([]httpclient.Header{
		{Name: "Authorization", Value: "Basic Y2xpZW50OnNlY3JldA=="},
		{Name: "X-Tenant", Value: "acme"},
	})
	want := []string{"Authorization: Basic ***", "X-Tenant: ***"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}
}
