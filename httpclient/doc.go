// Package httpclient builds and sends the single form-encoded POST of an
// identity provider call.
//
// A call is three steps: BuildRequest merges payloads and headers from a
// RequestConfig, NewHTTPClient creates a fresh client for the requested
// protocol version and TLS context, and Send posts the request and returns
// the response, failing unless the status is 200.
//
// # Basic Usage
//
//	cfg := httpclient.RequestConfig{
//	    URL:         "https://idp.example.com/oauth2/token",
//	    BasePayload: "grant_type=client_credentials",
//	    HTTPVersion: "HTTP_2",
//	}
//	req := httpclient.BuildRequest(cfg)
//	client, err := httpclient.NewHTTPClient(cfg.Version(), tlsCfg)
//	resp, err := httpclient.Send(ctx, client, req)
//
// Send never retries. Non-200 responses become an *Error with
// ErrCodeEndpoint and I/O failures an *Error with ErrCodeTransport.
package httpclient
