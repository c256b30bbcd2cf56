package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/randalmurphal/factory/pkg/factory"
	"github.com/randalmurphal/factory/pkg/factory/config"
	"github.com/randalmurphal/factory/pkg/factory/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// telemetry owns the SDK providers created for one invocation. The factory
// is bound to them directly rather than through the OTel globals, which keep
// the first provider a process installs.
type telemetry struct {
	tracer *sdktrace.TracerProvider
	reader *sdkmetric.ManualReader
	meter  *sdkmetric.MeterProvider

	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// newTelemetry creates tracer and meter providers as requested by s.
// Spans are written to w as they end.
func newTelemetry(w io.Writer, s config.Settings) (*telemetry, error) {
	t := &telemetry{}

	if s.Tracing {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		t.tracer = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		t.spans = observability.NewSpanManagerFor(t.tracer)
	}

	if s.Metrics {
		t.reader = sdkmetric.NewManualReader()
		t.meter = sdkmetric.NewMeterProvider(sdkmetric.WithReader(t.reader))
		recorder, err := observability.NewMetricsRecorderFor(t.meter)
		if err != nil {
			return nil, fmt.Errorf("create metric instruments: %w", err)
		}
		t.metrics = recorder
	}

	return t, nil
}

// options binds a factory to the invocation's providers.
func (t *telemetry) options() []factory.Option {
	var opts []factory.Option
	if t.metrics != nil {
		opts = append(opts, factory.WithMetricsRecorder(t.metrics))
	}
	if t.spans != nil {
		opts = append(opts, factory.WithSpanManager(t.spans))
	}
	return opts
}

// shutdown prints collected metrics to w and stops both providers.
func (t *telemetry) shutdown(ctx context.Context, w io.Writer) error {
	var errs []error
	if t.reader != nil {
		var rm metricdata.ResourceMetrics
		if err := t.reader.Collect(ctx, &rm); err != nil {
			errs = append(errs, fmt.Errorf("collect metrics: %w", err))
		} else {
			printMetrics(w, rm)
		}
		errs = append(errs, t.meter.Shutdown(ctx))
	}
	if t.tracer != nil {
		errs = append(errs, t.tracer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

var attrEncoder = attribute.DefaultEncoder()

func printMetrics(w io.Writer, rm metricdata.ResourceMetrics) {
	var lines []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s{%s} %d", m.Name, dp.Attributes.Encoded(attrEncoder), dp.Value))
				}
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s{%s} %d", m.Name, dp.Attributes.Encoded(attrEncoder), dp.Value))
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s{%s} count=%d sum=%.3f",
						m.Name, dp.Attributes.Encoded(attrEncoder), dp.Count, dp.Sum))
				}
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
