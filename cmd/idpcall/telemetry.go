package main

import (
	"context"
	"errors"

	"github.com/kbukum/idpclient/oauth2"
	"github.com/kbukum/idpclient/observability"
)

type shutdownFunc func(context.Context) error

// setupTelemetry starts the OTLP trace and metric exporters when enabled and
// returns the client options that report to them.
func setupTelemetry(ctx context.Context, cfg *CallConfig) ([]oauth2.Option, shutdownFunc, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Telemetry.Enabled {
		return nil, noop, nil
	}

	tp, err := observability.InitTracer(ctx, cfg.Telemetry.TracerConfig(cfg.Name, cfg.Version, cfg.Environment))
	if err != nil {
		return nil, noop, err
	}
	mp, err := observability.InitMeter(ctx, cfg.Telemetry.MeterConfig(cfg.Name, cfg.Version, cfg.Environment))
	if err != nil {
		return nil, noop, errors.Join(err, tp.Shutdown(ctx))
	}
	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	metrics, err := observability.NewMetrics(mp.Meter(observability.InstrumentationName))
	if err != nil {
		return nil, noop, errors.Join(err, shutdown(ctx))
	}

	opts := []oauth2.Option{
		oauth2.WithTracer(tp.Tracer(observability.InstrumentationName)),
		oauth2.WithMetrics(metrics),
	}
	return opts, shutdown, nil
}
