package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("factory")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartProduceSpan starts a span covering one Produce call.
	StartProduceSpan(ctx context.Context, factory, product string, argc int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

type otelSpanManager struct {
	tracer trace.Tracer // nil means the package tracer
}

// NewSpanManager returns a SpanManager using the global OTel tracer provider.
// Like NewMetricsRecorder it follows the first provider installed with
// otel.SetTracerProvider.
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// NewSpanManagerFor returns a SpanManager that starts spans on provider.
func NewSpanManagerFor(provider trace.TracerProvider) SpanManager {
	return &otelSpanManager{tracer: provider.Tracer("factory")}
}

func (m *otelSpanManager) StartProduceSpan(ctx context.Context, factory, product string, argc int) (context.Context, trace.Span) {
	t := m.tracer
	if t == nil {
		t = tracer
	}
	return startProduceSpan(ctx, t, factory, product, argc)
}

func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// StartProduceSpan starts a "factory.produce" span on the global tracer.
func StartProduceSpan(ctx context.Context, factory, product string, argc int) (context.Context, trace.Span) {
	return startProduceSpan(ctx, tracer, factory, product, argc)
}

func startProduceSpan(ctx context.Context, t trace.Tracer, factory, product string, argc int) (context.Context, trace.Span) {
	return t.Start(ctx, "factory.produce",
		trace.WithAttributes(
			attribute.String("factory.name", factory),
			attribute.String("product.name", product),
			attribute.Int("product.argc", argc),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
