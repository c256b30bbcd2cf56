// Package observability provides logging, metrics and tracing for factories.
//
// Features:
//   - Structured logging via slog
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Metrics and tracing are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns a logger carrying the factory name and its contract.
func EnrichLogger(logger *slog.Logger, factory, contract string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("factory", factory),
		slog.String("contract", contract),
	)
}

// LogProduce logs a product request. It is emitted before the name is resolved.
func LogProduce(logger *slog.Logger, product, factory string) {
	if logger == nil {
		return
	}
	logger.Info("obtaining product",
		slog.String("product", product),
		slog.String("factory", factory),
	)
}

// LogProduceError logs a failed product request.
func LogProduceError(logger *slog.Logger, product, factory, kind string, err error) {
	if logger == nil {
		return
	}
	logger.Debug("product request failed",
		slog.String("product", product),
		slog.String("factory", factory),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
}

// LogDiscovery logs the result of building a factory index.
func LogDiscovery(logger *slog.Logger, factory string, size, collisions int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("factory index built",
		slog.String("factory", factory),
		slog.Int("implementations", size),
		slog.Int("collisions", collisions),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCollision warns that discovery dropped an implementation because an
// earlier one already holds its name. Positions are registration indexes
// under each node's parent.
func LogCollision(logger *slog.Logger, factory, name, keptPath, droppedPath string, keptPos, droppedPos int) {
	if logger == nil {
		return
	}
	logger.Warn("duplicate implementation name dropped",
		slog.String("factory", factory),
		slog.String("name", name),
		slog.String("kept", keptPath),
		slog.String("dropped", droppedPath),
		slog.Int("kept_position", keptPos),
		slog.Int("dropped_position", droppedPos),
	)
}

// LogLedgerError logs a ledger write failure (non-fatal).
func LogLedgerError(logger *slog.Logger, factory, product string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("ledger append failed",
		slog.String("factory", factory),
		slog.String("product", product),
		slog.String("error", err.Error()),
	)
}

// TimedOperation returns a function reporting the elapsed time since the call.
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
