package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/johnmwilson82/observable"
)

// Default tracer name for observable spans.
const defaultTracerName = "observable"

// TraceConfig configures a TracedValue.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "observable").
	TracerName string

	// Attributes are added to every span the cell emits.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures a TracedValue.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithSpanAttributes adds attributes to every span the cell emits.
func WithSpanAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

func defaultTraceConfig() TraceConfig {
	return TraceConfig{
		TracerName: defaultTracerName,
	}
}

// TracedValue wraps a cell so every mutation runs inside a span. Reads
// and subscriptions pass through to the embedded cell untouched; Set
// and Update take a context and record whether a change fired, with
// rejected mutations recorded as span errors.
//
// The tracer comes from the global OpenTelemetry tracer provider, so
// configure the provider before mutating traced cells:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
type TracedValue[T any] struct {
	*observable.Value[T]

	name   string
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

// NewTracedValue wraps v. The name identifies the cell on every span
// it emits.
func NewTracedValue[T any](v *observable.Value[T], name string, opts ...TraceOption) *TracedValue[T] {
	config := defaultTraceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	attrs := append([]attribute.KeyValue{
		attribute.String("observable.name", name),
	}, config.Attributes...)

	return &TracedValue[T]{
		Value:  v,
		name:   name,
		tracer: config.tracer,
		attrs:  attrs,
	}
}

// Name returns the identifier the cell carries on its spans.
func (t *TracedValue[T]) Name() string {
	return t.name
}

// Set stores value through the wrapped cell inside a span named
// "observable.set".
func (t *TracedValue[T]) Set(ctx context.Context, value T) (bool, error) {
	_, span := t.tracer.Start(ctx, "observable.set",
		trace.WithAttributes(t.attrs...),
	)
	defer span.End()

	changed, err := t.Value.Set(value)
	t.record(span, changed, err)
	return changed, err
}

// Update stores fn(current) through the wrapped cell inside a span
// named "observable.update".
func (t *TracedValue[T]) Update(ctx context.Context, fn func(T) T) (bool, error) {
	_, span := t.tracer.Start(ctx, "observable.update",
		trace.WithAttributes(t.attrs...),
	)
	defer span.End()

	changed, err := t.Value.Update(fn)
	t.record(span, changed, err)
	return changed, err
}

func (t *TracedValue[T]) record(span trace.Span, changed bool, err error) {
	span.SetAttributes(attribute.Bool("observable.changed", changed))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
