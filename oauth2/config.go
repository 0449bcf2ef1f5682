package oauth2

import (
	"github.com/kbukum/idpclient/httpclient"
	"github.com/kbukum/idpclient/security"
	"github.com/kbukum/idpclient/validation"
)

// ClientConfig holds the per-endpoint client options.
type ClientConfig struct {
	// CustomPayload is appended to the payload with '&'. Empty means absent.
	CustomPayload string `yaml:"custom_payload" mapstructure:"custom_payload"`
	// CustomHeaders are sent after the request headers.
	CustomHeaders map[string]string `yaml:"custom_headers" mapstructure:"custom_headers"`
	// HTTPVersion is "HTTP_1_1" (default) or "HTTP_2".
	HTTPVersion string `yaml:"http_version" mapstructure:"http_version"`
	// SecureSocket configures TLS. Nil means no custom TLS context.
	SecureSocket *security.SecureSocket `yaml:"secure_socket" mapstructure:"secure_socket"`
}

// Request is one endpoint call.
type Request struct {
	// URL is the absolute endpoint URL.
	URL string `yaml:"url" mapstructure:"url" validate:"required,url"`
	// Headers are sent before the custom headers.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
	// Payload is the form-encoded body.
	Payload string `yaml:"payload" mapstructure:"payload"`
	// Config holds optional client settings. Nil selects the defaults.
	Config *ClientConfig `yaml:"client" mapstructure:"client"`
}

// Validate checks the request at the boundary, before any file or network access.
func (r *Request) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	return r.secureSocket().Validate()
}

// RequestConfig flattens the request into the HTTP layer's configuration.
func (r *Request) RequestConfig() httpclient.RequestConfig {
	cfg := httpclient.RequestConfig{
		URL:         r.URL,
		BasePayload: r.Payload,
		Headers:     r.Headers,
	}
	if r.Config != nil {
		cfg.CustomPayload = r.Config.CustomPayload
		cfg.CustomHeaders = r.Config.CustomHeaders
		cfg.HTTPVersion = r.Config.HTTPVersion
	}
	cfg.ApplyDefaults()
	return cfg
}

// secureSocket returns the secure socket configuration, or nil.
func (r *Request) secureSocket() *security.SecureSocket {
	if r.Config == nil {
		return nil
	}
	return r.Config.SecureSocket
}
