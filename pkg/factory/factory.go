package factory

import (
	"context"
	"log/slog"
	"time"

	"github.com/randalmurphal/factory/pkg/factory/ledger"
	"github.com/randalmurphal/factory/pkg/factory/observability"
	"github.com/randalmurphal/factory/pkg/factory/registry"
	"go.opentelemetry.io/otel/trace"
)

// Factory constructs implementations of T by name.
// It is safe for concurrent use once New returns.
type Factory[T any] struct {
	name     string
	contract string
	index    *registry.Index[string, Entry[T]]

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	ledger  ledger.Store
}

// New discovers the implementations of contract and returns a factory
// serving them. An empty name defaults to the contract name plus "Factory".
func New[T any](name string, contract *Node[T], opts ...Option) *Factory[T] {
	cfg := defaultFactoryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if name == "" {
		name = contract.Name() + "Factory"
	}

	elapsed := observability.TimedOperation()
	d := Discover(contract)

	index := registry.New[string, Entry[T]]()
	for _, e := range d.Entries {
		index.Insert(e.Name, e)
	}
	index.Seal()

	f := &Factory[T]{
		name:     name,
		contract: contract.Name(),
		index:    index,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
		spans:    cfg.spans,
		ledger:   cfg.ledger,
	}

	if cfg.warnOnCollision {
		for _, c := range d.Collisions {
			observability.LogCollision(cfg.logger, name, c.Name, c.Kept, c.Dropped, c.KeptPosition, c.DroppedPosition)
		}
	}
	observability.LogDiscovery(cfg.logger, name, index.Len(), len(d.Collisions),
		float64(elapsed().Microseconds())/1000)
	f.metrics.RecordIndex(context.Background(), name, index.Len(), len(d.Collisions))

	return f
}

// Produce constructs the implementation registered under name, passing args
// to its constructor unchanged. It returns a *NameNotRegisteredError when the
// name is unknown and the constructor's own error when construction fails.
func (f *Factory[T]) Produce(ctx context.Context, name string, args ...any) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	observability.LogProduce(f.logger, name, f.name)

	ctx, span := f.spans.StartProduceSpan(ctx, f.name, name, len(args))
	elapsed := observability.TimedOperation()

	var zero T
	entry, ok := f.index.Get(name)
	if !ok {
		err := &NameNotRegisteredError{Name: name, Factory: f.name}
		f.finish(ctx, span, name, len(args), elapsed(), observability.OutcomeNotRegistered, err)
		return zero, err
	}

	product, err := entry.Constructor(args...)
	if err != nil {
		f.finish(ctx, span, name, len(args), elapsed(), observability.OutcomeConstructionFailed, err)
		return zero, err
	}

	f.finish(ctx, span, name, len(args), elapsed(), observability.OutcomeProduced, nil)
	return product, nil
}

func (f *Factory[T]) finish(ctx context.Context, span trace.Span, product string, argc int, d time.Duration, outcome string, err error) {
	f.spans.EndSpanWithError(span, err)
	f.metrics.RecordProduce(ctx, f.name, product, d, outcome)
	if err != nil {
		observability.LogProduceError(f.logger, product, f.name, outcome, err)
	}

	if f.ledger == nil {
		return
	}
	rec := ledger.NewRecord(f.name, product, argc)
	rec.Outcome = outcome
	rec.Duration = d
	if err != nil {
		rec.Error = err.Error()
	}
	if lerr := f.ledger.Append(rec); lerr != nil {
		observability.LogLedgerError(f.logger, f.name, product, lerr)
	}
}

// Name returns the factory's name.
func (f *Factory[T]) Name() string { return f.name }

// Contract returns the name of the capability contract the factory serves.
func (f *Factory[T]) Contract() string { return f.contract }

// Names returns the implementation names in discovery order.
func (f *Factory[T]) Names() []string { return f.index.Keys() }

// Entries returns the index entries in discovery order.
func (f *Factory[T]) Entries() []Entry[T] { return f.index.Values() }

// Lookup returns the entry registered under name.
func (f *Factory[T]) Lookup(name string) (Entry[T], bool) { return f.index.Get(name) }

// Has reports whether name is in the index.
func (f *Factory[T]) Has(name string) bool { return f.index.Has(name) }

// Len returns the number of implementations in the index.
func (f *Factory[T]) Len() int { return f.index.Len() }
