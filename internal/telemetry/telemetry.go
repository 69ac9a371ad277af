// Package telemetry exports dashboard traces over OTLP. Export is enabled
// only when an endpoint is configured; a nil Tracer is safe to use, so the
// rest of the application never branches on whether telemetry is on.
//
// Two things are traced: navigation events (one span per route change,
// covering the time the page was active) and backend API requests (via the
// instrumented Transport).
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer owns the OTLP pipeline. The zero of a nil *Tracer is a disabled
// tracer; all methods are nil-safe.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Tracer exporting to endpoint. An empty endpoint returns a
// nil Tracer, which disables all tracing.
func New(ctx context.Context, endpoint, serviceName string) (*Tracer, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors; TLS config can come later
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "cerebro-dashboard"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("cerebro/dashboard"),
	}, nil
}

// Navigation records a completed navigation: the span covers the time the
// previous page was active, from start until the route change at end.
func (t *Tracer) Navigation(path, routeName string, start, end time.Time) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "navigation",
		oteltrace.WithTimestamp(start),
	)
	span.SetAttributes(
		attribute.String("cerebro.path", path),
		attribute.String("cerebro.route", routeName),
	)
	span.End(oteltrace.WithTimestamp(end))
}

// Transport wraps base so every request through it produces a client span.
// With a nil Tracer the base transport is returned unchanged.
func (t *Tracer) Transport(base http.RoundTripper) http.RoundTripper {
	if t == nil {
		return base
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &tracingTransport{base: base, tracer: t.tracer}
}

// Shutdown flushes pending exports. Safe on a nil Tracer.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

type tracingTransport struct {
	base   http.RoundTripper
	tracer oteltrace.Tracer
}

func (tt *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := tt.tracer.Start(req.Context(), "backend "+req.Method,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
	)
	span.SetAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL.String()),
	)
	defer span.End()

	resp, err := tt.base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, resp.Status)
	}
	return resp, nil
}
