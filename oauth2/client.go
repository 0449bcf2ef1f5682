package oauth2

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/idpclient/httpclient"
	"github.com/kbukum/idpclient/logger"
	"github.com/kbukum/idpclient/observability"
	"github.com/kbukum/idpclient/security"
)

const (
	componentName      = "oauth2"
	headerValueVisible = 6
)

// Call phases reported in debug logs.
const (
	phaseValidate  = "validate"
	phaseResolve   = "resolve"
	phaseBuildTLS  = "build_tls"
	phaseBuild     = "build_request"
	phaseTransport = "transport"
	phaseSend      = "send"
)

// Client sends identity provider requests. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	log      *logger.Logger
	resolver *security.Resolver
	tracer   trace.Tracer
	metrics  *observability.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.WithComponent(componentName)
		}
	}
}

// WithDecoder sets the certificate and private key decoder.
// Defaults to security.PEMDecoder.
func WithDecoder(d security.Decoder) Option {
	return func(c *Client) {
		c.resolver = security.NewResolver(d)
	}
}

// WithTracer sets the tracer. Defaults to the global tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// WithMetrics records call metrics. Disabled by default.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		resolver: security.NewResolver(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.WithComponent(componentName)
	}
	return c
}

// Do sends req and returns the response body of a 200 response.
//
// The phases run in order: validate, resolve credentials, build the TLS
// context, build the request, create the client, send. The first failure
// ends the call and is returned as an *Error; no network I/O happens before
// the TLS context is built.
func (c *Client) Do(ctx context.Context, req Request) (string, error) {
	cfg := req.RequestConfig()
	requestID := uuid.NewString()
	log := c.log.WithFields(logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldURL, req.URL,
		logger.FieldHTTPVersion, string(cfg.Version()),
	))

	cc := observability.NewCallContext(requestID, req.URL, string(cfg.Version()), c.tracer, c.metrics)
	ctx, span := cc.StartSpan(ctx)

	resp, err := c.do(ctx, log, &req, cfg)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if err != nil {
		callErr := classify(err)
		log.Error("identity provider call failed", logger.MergeWithError(logger.Fields(
			logger.FieldStatus, statusCode,
			logger.FieldKind, string(callErr.Kind),
			logger.FieldDuration, cc.Duration().Milliseconds(),
		), callErr))
		cc.End(ctx, span, statusCode, string(callErr.Kind), callErr)
		return "", callErr
	}

	log.Debug("identity provider call succeeded", logger.Fields(
		logger.FieldStatus, statusCode,
		logger.FieldProtocol, resp.Proto,
		logger.FieldDuration, cc.Duration().Milliseconds(),
	))
	cc.End(ctx, span, statusCode, "", nil)
	return resp.Body, nil
}

func (c *Client) do(ctx context.Context, log *logger.Logger, req *Request, cfg httpclient.RequestConfig) (*httpclient.Response, error) {
	log.Debug("validating request", phaseFields(phaseValidate))
	if err := req.Validate(); err != nil {
		return nil, err
	}

	socket := req.secureSocket()
	if socket != nil && socket.Disable {
		log.Warn("server certificate verification is disabled", phaseFields(phaseResolve))
	}
	if trust, key := socket.Sources(); trust == nil && key != nil && !socket.Disable {
		log.Warn("client identity ignored: no trust source configured", phaseFields(phaseResolve))
	}

	log.Debug("resolving credentials", phaseFields(phaseResolve))
	material, err := c.resolver.Resolve(socket)
	if err != nil {
		return nil, err
	}

	log.Debug("building TLS context", phaseFields(phaseBuildTLS))
	tlsCfg, err := security.BuildTLS(material)
	if err != nil {
		return nil, err
	}

	httpReq := httpclient.BuildRequest(cfg)
	log.Debug("built request", logger.Fields(
		logger.FieldPhase, phaseBuild,
		"headers", headerSummary(httpReq.Headers),
		"body_bytes", len(httpReq.Body),
	))

	log.Debug("creating client", phaseFields(phaseTransport))
	client, err := httpclient.NewHTTPClient(cfg.Version(), tlsCfg)
	if err != nil {
		return nil, httpclient.NewTransportError(err)
	}

	log.Debug("sending request", phaseFields(phaseSend))
	return httpclient.Send(ctx, client, httpReq)
}

// headerSummary lists headers as "Name: value" with values masked, since
// they commonly carry client credentials.
func headerSummary(headers []httpclient.Header) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = h.Name + ": " + logger.MaskSecret(h.Value, headerValueVisible)
	}
	return out
}

func phaseFields(phase string) map[string]interface{} {
	return logger.Fields(logger.FieldPhase, phase)
}

// Do sends req with a Client using the default options.
func Do(ctx context.Context, req Request) (string, error) {
	return New().Do(ctx, req)
}
