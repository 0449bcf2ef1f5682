package httpclient

import (
	"context"
	"net/http"
	"sort"
	"strings"
)

// ContentTypeForm is the content type of every endpoint call.
const ContentTypeForm = "application/x-www-form-urlencoded"

const headerContentType = "Content-Type"

// Header is one request header. Names keep the case they were configured with.
type Header struct {
	Name  string
	Value string
}

// Request is a fully assembled endpoint call. Method is always POST.
type Request struct {
	// URL is the endpoint URL.
	URL string
	// Body is the form-encoded body.
	Body string
	// Headers in send order. Duplicate names are kept.
	Headers []Header
	// ContentType replaces every Content-Type entry of Headers on the wire.
	ContentType string
}

// BuildRequest assembles the request described by cfg.
//
// The body is BasePayload, followed by "&" and CustomPayload when
// CustomPayload is non-empty. Headers are Headers then CustomHeaders, each
// group sorted by name. Any configured Content-Type, matched without regard
// to case, is replaced by ContentTypeForm when the request is sent.
func BuildRequest(cfg RequestConfig) *Request {
	body := cfg.BasePayload
	if cfg.CustomPayload != "" {
		body += "&" + cfg.CustomPayload
	}

	headers := make([]Header, 0, len(cfg.Headers)+len(cfg.CustomHeaders))
	headers = appendSorted(headers, cfg.Headers)
	headers = appendSorted(headers, cfg.CustomHeaders)

	return &Request{
		URL:         cfg.URL,
		Body:        body,
		Headers:     headers,
		ContentType: ContentTypeForm,
	}
}

// HTTPRequest creates the *http.Request for r bound to ctx.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, strings.NewReader(r.Body))
	if err != nil {
		return nil, err
	}
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, headerContentType) {
			continue
		}
		// Direct map access keeps the configured name case.
		req.Header[h.Name] = append(req.Header[h.Name], h.Value)
	}
	contentType := r.ContentType
	if contentType == "" {
		contentType = ContentTypeForm
	}
	req.Header.Set(headerContentType, contentType)
	return req, nil
}

func appendSorted(dst []Header, src map[string]string) []Header {
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dst = append(dst, Header{Name: name, Value: src[name]})
	}
	return dst
}
