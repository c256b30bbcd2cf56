package factory

import (
	"log/slog"

	"github.com/randalmurphal/factory/pkg/factory/config"
	"github.com/randalmurphal/factory/pkg/factory/ledger"
	"github.com/randalmurphal/factory/pkg/factory/observability"
)

// factoryConfig holds construction-time settings for a Factory.
type factoryConfig struct {
	logger          *slog.Logger
	metrics         observability.MetricsRecorder
	spans           observability.SpanManager
	ledger          ledger.Store
	warnOnCollision bool
}

func defaultFactoryConfig() factoryConfig {
	return factoryConfig{
		logger:          slog.Default(),
		metrics:         observability.NoopMetrics{},
		spans:           observability.NoopSpanManager{},
		warnOnCollision: true,
	}
}

// Option configures a Factory.
type Option func(*factoryConfig)

// WithLogger sets the logger used for product requests and discovery.
// Default: slog.Default(). A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *factoryConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
// Default: disabled.
func WithMetrics(enabled bool) Option {
	return func(c *factoryConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a custom metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(c *factoryConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans using the global tracer provider.
// Default: disabled.
func WithTracing(enabled bool) Option {
	return func(c *factoryConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a custom span manager.
func WithSpanManager(s observability.SpanManager) Option {
	return func(c *factoryConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// WithLedger records every product request in store. Append failures are
// logged and otherwise ignored.
func WithLedger(store ledger.Store) Option {
	return func(c *factoryConfig) {
		c.ledger = store
	}
}

// WithCollisionWarnings controls the warning logged when discovery drops an
// implementation whose name is already taken. Default: enabled.
func WithCollisionWarnings(enabled bool) Option {
	return func(c *factoryConfig) {
		c.warnOnCollision = enabled
	}
}

// WithSettings applies the metrics, tracing and collision-warning fields of s.
// Enabled metrics or tracing install the global OTel recorder or span manager
// only where no other one is configured, so recorders passed through
// WithMetricsRecorder or WithSpanManager survive in any option order.
// Disabled settings change nothing. Logging and the ledger are left to the
// caller, who owns those resources.
func WithSettings(s config.Settings) Option {
	return func(c *factoryConfig) {
		if _, isNoop := c.metrics.(observability.NoopMetrics); s.Metrics && isNoop {
			c.metrics = observability.NewMetricsRecorder()
		}
		if _, isNoop := c.spans.(observability.NoopSpanManager); s.Tracing && isNoop {
			c.spans = observability.NewSpanManager()
		}
		WithCollisionWarnings(s.WarnOnCollision)(c)
	}
}
