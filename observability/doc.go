// Package observability wires OpenTelemetry tracing and metrics for
// outbound HTTP calls.
//
// Tracing:
//
//	cfg := observability.DefaultTracerConfig("gofetch")
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
//	defer span.End()
//	observability.InjectHeaders(ctx, req.Header)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("gofetch"))
//	metrics.RecordRequestStart(ctx, "api.example.com")
//	metrics.RecordRequestEnd(ctx, "api.example.com", "GET", "2xx", duration)
package observability
