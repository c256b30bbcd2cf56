package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

// RecordProduce does nothing.
func (NoopMetrics) RecordProduce(_ context.Context, _, _ string, _ time.Duration, _ string) {}

// RecordIndex does nothing.
func (NoopMetrics) RecordIndex(_ context.Context, _ string, _, _ int) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartProduceSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartProduceSpan(ctx context.Context, _, _ string, _ int) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}
