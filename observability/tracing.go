// Package observability provides OpenTelemetry tracing and go-utils metrics
// for webhook verification. Neither records secrets, digests or signatures.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/xraph/hookverify"

// Tracer provides OpenTelemetry tracing for verifications.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a tracer from the global OpenTelemetry provider.
func NewTracer() *Tracer {
	return NewTracerFromProvider(otel.GetTracerProvider())
}

// NewTracerFromProvider creates a tracer from an explicit provider.
func NewTracerFromProvider(tp trace.TracerProvider) *Tracer {
	return &Tracer{
		tracer: tp.Tracer(tracerName),
	}
}

// StartVerifySpan starts a span for a single verification.
func (t *Tracer) StartVerifySpan(ctx context.Context, leewayMinutes int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "hookverify.verify",
		trace.WithAttributes(
			attribute.Int("hookverify.leeway_minutes", leewayMinutes),
		),
	)
}

// EndVerifySpan ends a verification span. A non-empty reason marks the span
// as failed.
func (t *Tracer) EndVerifySpan(span trace.Span, reason string) {
	if reason != "" {
		span.SetAttributes(attribute.String("hookverify.reason", reason))
		span.SetStatus(codes.Error, reason)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
