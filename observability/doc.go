// Package observability provides OpenTelemetry tracing and metrics for
// identity provider calls, exported over OTLP/HTTP.
//
// Setup from configuration:
//
//	cfg.ApplyDefaults()
//	tp, err := observability.InitTracer(ctx, cfg.TracerConfig("idpcall", version, env))
//	defer tp.Shutdown(ctx)
//	mp, err := observability.InitMeter(ctx, cfg.MeterConfig("idpcall", version, env))
//	defer mp.Shutdown(ctx)
//	metrics, err := observability.NewMetrics(mp.Meter(observability.InstrumentationName))
//
// Per call:
//
//	cc := observability.NewCallContext(requestID, url, "HTTP_2", nil, metrics)
//	ctx, span := cc.StartSpan(ctx)
//	defer cc.End(ctx, span, status, kind, err)
package observability
