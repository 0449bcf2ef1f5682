package httpclient

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"golang.org/x/net/http2"
)

// NewHTTPClient creates a client with a fresh transport for one call.
//
// HTTP11 disables HTTP/2 on the transport. HTTP2 enables it through ALPN;
// cleartext URLs stay on HTTP/1.1. A nil tlsCfg keeps the transport's
// default TLS behavior. The TLS config is bound before HTTP/2 is configured
// so its ALPN protocols are set on the config actually used.
func NewHTTPClient(version HTTPVersion, tlsCfg *tls.Config) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsCfg

	switch version {
	case HTTP2:
		if _, err := http2.ConfigureTransports(transport); err != nil {
			return nil, fmt.Errorf("configure HTTP/2 transport: %w", err)
		}
	default:
		transport.ForceAttemptHTTP2 = false
		transport.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
	}

	return &http.Client{Transport: transport}, nil
}
