package httpclient

import (
	"github.com/kbukum/idpclient/validation"
)

// HTTPVersion selects the protocol of the endpoint call.
type HTTPVersion string

const (
	// HTTP11 is HTTP/1.1, the default.
	HTTP11 HTTPVersion = "HTTP_1_1"
	// HTTP2 is HTTP/2, negotiated through ALPN on TLS connections.
	HTTP2 HTTPVersion = "HTTP_2"
)

// ParseHTTPVersion maps a configured version string onto an HTTPVersion.
// Only the exact string "HTTP_2" selects HTTP/2; anything else, including
// the empty string, selects HTTP/1.1.
func ParseHTTPVersion(s string) HTTPVersion {
	if HTTPVersion(s) == HTTP2 {
		return HTTP2
	}
	return HTTP11
}

// RequestConfig describes one endpoint call.
type RequestConfig struct {
	// URL is the absolute endpoint URL.
	URL string `yaml:"url" mapstructure:"url" validate:"required,url"`

	// BasePayload is the form-encoded request body.
	BasePayload string `yaml:"payload" mapstructure:"payload"`

	// Headers are sent first, in name order.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// CustomPayload is appended to BasePayload with '&'. Empty means absent.
	CustomPayload string `yaml:"custom_payload" mapstructure:"custom_payload"`

	// CustomHeaders are sent after Headers, in name order. Names that also
	// appear in Headers are sent twice.
	CustomHeaders map[string]string `yaml:"custom_headers" mapstructure:"custom_headers"`

	// HTTPVersion is "HTTP_1_1" (default) or "HTTP_2".
	HTTPVersion string `yaml:"http_version" mapstructure:"http_version"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *RequestConfig) ApplyDefaults() {
	if c.HTTPVersion == "" {
		c.HTTPVersion = string(HTTP11)
	}
}

// Validate checks that the configuration is valid.
func (c *RequestConfig) Validate() error {
	return validation.Validate(c)
}

// Version returns the parsed protocol version.
func (c *RequestConfig) Version() HTTPVersion {
	return ParseHTTPVersion(c.HTTPVersion)
}
