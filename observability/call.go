package observability

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Call outcomes recorded on spans and metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// CallContext holds observability context for one endpoint call.
type CallContext struct {
	RequestID   string
	URL         string
	HTTPVersion string
	StartTime   time.Time
	Tracer      trace.Tracer
	Metrics     *Metrics
}

// NewCallContext creates a call context. A nil tracer selects the global
// tracer; nil metrics skip metric recording.
func NewCallContext(requestID, endpoint, httpVersion string, tracer trace.Tracer, metrics *Metrics) *CallContext {
	if tracer == nil {
		tracer = Tracer(InstrumentationName)
	}
	return &CallContext{
		RequestID:   requestID,
		URL:         endpoint,
		HTTPVersion: httpVersion,
		StartTime:   time.Now(),
		Tracer:      tracer,
		Metrics:     metrics,
	}
}

type callContextKey struct{}

// WithCallContext stores a CallContext in the context.
func WithCallContext(ctx context.Context, cc *CallContext) context.Context {
	return context.WithValue(ctx, callContextKey{}, cc)
}

// CallContextFromContext retrieves the CallContext from context, or nil.
func CallContextFromContext(ctx context.Context) *CallContext {
	if cc, ok := ctx.Value(callContextKey{}).(*CallContext); ok {
		return cc
	}
	return nil
}

// StartSpan starts the client span of the call and counts it as in flight.
func (cc *CallContext) StartSpan(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := cc.Tracer.Start(ctx, SpanEndpointCall, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String(AttrRequestID, cc.RequestID),
		attribute.String(AttrURL, cc.URL),
		attribute.String(AttrHTTPVersion, cc.HTTPVersion),
	)
	if cc.Metrics != nil {
		cc.Metrics.RecordCallStart(ctx)
	}
	return WithCallContext(ctx, cc), span
}

// End finishes the span and records the call. errKind is empty on success.
func (cc *CallContext) End(ctx context.Context, span trace.Span, statusCode int, errKind string, err error) {
	duration := cc.Duration()
	outcome := OutcomeSuccess

	if statusCode > 0 {
		span.SetAttributes(attribute.Int(AttrStatusCode, statusCode))
	}
	if err != nil {
		outcome = OutcomeFailure
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorKind, errKind))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(
		attribute.String(AttrOutcome, outcome),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if cc.Metrics != nil {
		cc.Metrics.RecordCallEnd(ctx, cc.host(), cc.HTTPVersion, outcome, duration)
		if err != nil {
			cc.Metrics.RecordError(ctx, errKind)
		}
	}
}

// Duration returns the elapsed time since the call started.
func (cc *CallContext) Duration() time.Duration {
	return time.Since(cc.StartTime)
}

// host keeps metric cardinality bounded by dropping path and query.
func (cc *CallContext) host() string {
	u, err := url.Parse(cc.URL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
