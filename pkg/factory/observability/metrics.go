package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records factory metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordProduce records one Produce call with its outcome
	// ("produced", "not_registered" or "construction_failed").
	RecordProduce(ctx context.Context, factory, product string, duration time.Duration, outcome string)

	// RecordIndex records the size of a freshly built index and how many
	// duplicate names discovery dropped.
	RecordIndex(ctx context.Context, factory string, size, collisions int)
}

type otelMetrics struct {
	produceCount    metric.Int64Counter
	produceErrors   metric.Int64Counter
	produceLatency  metric.Float64Histogram
	indexSize       metric.Int64Gauge
	indexCollisions metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.Meter("factory"))
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	produceCount, err := meter.Int64Counter("factory.produce.count",
		metric.WithDescription("Number of product requests"),
	)
	if err != nil {
		return nil, err
	}

	produceErrors, err := meter.Int64Counter("factory.produce.errors",
		metric.WithDescription("Number of failed product requests"),
	)
	if err != nil {
		return nil, err
	}

	produceLatency, err := meter.Float64Histogram("factory.produce.latency_ms",
		metric.WithDescription("Product construction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	indexSize, err := meter.Int64Gauge("factory.index.size",
		metric.WithDescription("Number of implementations in a factory index"),
	)
	if err != nil {
		return nil, err
	}

	indexCollisions, err := meter.Int64Counter("factory.index.collisions",
		metric.WithDescription("Implementations dropped for duplicate names"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		produceCount:    produceCount,
		produceErrors:   produceErrors,
		produceLatency:  produceLatency,
		indexSize:       indexSize,
		indexCollisions: indexCollisions,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel meter
// provider, or a no-op recorder if instrument creation fails.
//
// The instruments are created once per process and follow the first provider
// installed with otel.SetMeterProvider; later providers are not seen. Use
// NewMetricsRecorderFor when the provider can change. Configure the provider
// before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFor returns a MetricsRecorder whose instruments belong to
// provider rather than the global one.
func NewMetricsRecorderFor(provider metric.MeterProvider) (MetricsRecorder, error) {
	return newOtelMetrics(provider.Meter("factory"))
}

// RecordProduce records a Produce call.
func (m *otelMetrics) RecordProduce(ctx context.Context, factory, product string, duration time.Duration, outcome string) {
	attrs := metric.WithAttributes(
		attribute.String("factory", factory),
		attribute.String("product", product),
		attribute.String("outcome", outcome),
	)

	m.produceCount.Add(ctx, 1, attrs)
	m.produceLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if outcome != OutcomeProduced {
		m.produceErrors.Add(ctx, 1, attrs)
	}
}

// RecordIndex records index construction.
func (m *otelMetrics) RecordIndex(ctx context.Context, factory string, size, collisions int) {
	attrs := metric.WithAttributes(attribute.String("factory", factory))
	m.indexSize.Record(ctx, int64(size), attrs)
	if collisions > 0 {
		m.indexCollisions.Add(ctx, int64(collisions), attrs)
	}
}

// Outcome labels shared by metrics, spans and the ledger.
const (
	OutcomeProduced           = "produced"
	OutcomeNotRegistered      = "not_registered"
	OutcomeConstructionFailed = "construction_failed"
)
