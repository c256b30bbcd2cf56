package factory_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/randalmurphal/factory/pkg/factory"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Shape is the contract used throughout these tests.
type Shape interface {
	Area() float64
}

type circle struct{ radius float64 }

func (c circle) Area() float64 { return 3 * c.radius * c.radius }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

func newCircle(args ...any) (Shape, error) {
	if err := factory.ExpectArgs(args, 1, 1); err != nil {
		return nil, err
	}
	r, err := factory.Float(args, 0)
	if err != nil {
		return nil, err
	}
	return circle{radius: r}, nil
}

func newSquare(args ...any) (Shape, error) {
	if err := factory.ExpectArgs(args, 1, 1); err != nil {
		return nil, err
	}
	s, err := factory.Float(args, 0)
	if err != nil {
		return nil, err
	}
	return square{side: s}, nil
}

// newShapeContract returns a contract with Circle and Square.
func newShapeContract() *factory.Node[Shape] {
	c := factory.NewContract[Shape]("Shape")
	c.Provide("Circle", newCircle)
	c.Provide("Square", newSquare)
	return c
}

// logCapture is a JSON logger whose records can be decoded after the fact.
type logCapture struct {
	buf    *bytes.Buffer
	Logger *slog.Logger
}

func newLogCapture() *logCapture {
	buf := &bytes.Buffer{}
	return &logCapture{
		buf:    buf,
		Logger: slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (c *logCapture) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(c.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func (c *logCapture) withMessage(t *testing.T, msg string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, rec := range c.records(t) {
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

// produceCall is one RecordProduce observation.
type produceCall struct {
	Factory, Product, Outcome string
}

// fakeMetrics records calls for assertions.
type fakeMetrics struct {
	mu       sync.Mutex
	produces []produceCall
	indexes  [][2]int
}

func (m *fakeMetrics) RecordProduce(_ context.Context, factory, product string, _ time.Duration, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.produces = append(m.produces, produceCall{factory, product, outcome})
}

func (m *fakeMetrics) RecordIndex(_ context.Context, _ string, size, collisions int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexes = append(m.indexes, [2]int{size, collisions})
}

// fakeSpans counts started and ended spans and keeps the errors they ended with.
type fakeSpans struct {
	mu      sync.Mutex
	started []string
	ended   []error
}

func (s *fakeSpans) StartProduceSpan(ctx context.Context, _, product string, _ int) (context.Context, trace.Span) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = append(s.started, product)
	return ctx, noop.Span{}
}

func (s *fakeSpans) EndSpanWithError(_ trace.Span, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = append(s.ended, err)
}
