package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Response is the result of an endpoint call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Proto is the negotiated protocol, e.g. "HTTP/2.0".
	Proto string
	// Body is the raw response body.
	Body string
}

// Send posts req with client.
//
// Only status 200 counts as success. Any other status returns the response
// together with an endpoint *Error carrying the status and body. Failures to
// connect, write or read, including ctx cancellation, return a transport
// *Error and no response. Idle connections of client are closed before Send
// returns; the request is never retried.
func Send(ctx context.Context, client *http.Client, req *Request) (*Response, error) {
	defer client.CloseIdleConnections()

	httpReq, err := req.HTTPRequest(ctx)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("create request: %w", err))
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Proto:      resp.Proto,
		Body:       string(body),
	}
	if resp.StatusCode != http.StatusOK {
		return result, NewEndpointError(resp.StatusCode, result.Body)
	}
	return result, nil
}
