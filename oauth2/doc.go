// Package oauth2 sends one request to an identity provider endpoint
// (authorization, token or introspection), optionally over mutual TLS, and
// returns the raw response body.
//
// A call resolves credentials from the secure socket configuration, builds
// the TLS context, assembles the form-encoded POST and sends it with a
// fresh client. Every failure is returned as a single *Error whose Kind names
// the failing phase and whose message carries the cause verbatim. Nothing is
// cached or retried between calls.
//
// # Basic Usage
//
//	body, err := oauth2.Do(ctx, oauth2.Request{
//	    URL:     "https://idp.example.com/oauth2/token",
//	    Payload: "grant_type=client_credentials",
//	    Headers: map[string]string{"Authorization": "Basic ..."},
//	    Config: &oauth2.ClientConfig{
//	        CustomPayload: "scope=read",
//	        HTTPVersion:   "HTTP_2",
//	        SecureSocket: &security.SecureSocket{
//	            CertFile: "/etc/idp/ca.pem",
//	            ClientCert: &security.CertKeyConfig{
//	                CertFile: "/etc/idp/client.pem",
//	                KeyFile:  "/etc/idp/client.key",
//	            },
//	        },
//	    },
//	})
//
// The call has no internal timeout; pass a context with a deadline to bound it.
package oauth2
