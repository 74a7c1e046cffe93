package main

import (
	"context"
	"errors"
	"strings"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/gofetch/component"
	"github.com/kbukum/gofetch/observability"
)

// telemetry owns the OpenTelemetry providers for the lifetime of a command.
type telemetry struct {
	tracing observability.TracerConfig
	metrics observability.MeterConfig

	tp *sdktrace.TracerProvider
	mp *sdkmetric.MeterProvider
}

var (
	_ component.Component   = (*telemetry)(nil)
	_ component.Describable = (*telemetry)(nil)
)

func (t *telemetry) Name() string { return "telemetry" }

func (t *telemetry) Start(ctx context.Context) error {
	if t.tracing.Endpoint != "" {
		tp, err := observability.InitTracer(ctx, &t.tracing)
		if err != nil {
			return err
		}
		t.tp = tp
	}
	if t.metrics.Endpoint != "" {
		mp, err := observability.InitMeter(ctx, &t.metrics)
		if err != nil {
			return err
		}
		t.mp = mp
	}
	return nil
}

func (t *telemetry) Stop(ctx context.Context) error {
	var errs []error
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
		t.tp = nil
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
		t.mp = nil
	}
	return errors.Join(errs...)
}

func (t *telemetry) Health(context.Context) component.Health {
	return component.Health{Name: t.Name(), Status: component.StatusHealthy}
}

func (t *telemetry) Describe() component.Description {
	var parts []string
	if t.tracing.Endpoint != "" {
		parts = append(parts, "traces="+t.tracing.Endpoint)
	}
	if t.metrics.Endpoint != "" {
		parts = append(parts, "metrics="+t.metrics.Endpoint)
	}
	if len(parts) == 0 {
		parts = append(parts, "disabled")
	}
	return component.Description{Type: "otel", Details: strings.Join(parts, " ")}
}
