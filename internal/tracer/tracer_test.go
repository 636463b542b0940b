package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNoopTracer(t *testing.T) {
	tracer := &NoopTracer{}
	ctx := context.Background()

	// Should not panic
	_, span := tracer.StartSpan(ctx, "sqlfrag.where")
	assert.NotNil(t, span)

	span.SetAttributes(attribute.String("key", "value"))
	span.RecordError(errors.New("test error"))
	span.SetStatus(codes.Error, "error")
	span.End()
}

func TestOtelTracer(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := NewOtelTracer(tp.Tracer("sqlfrag-test"))

	_, span := tracer.StartSpan(context.Background(), "sqlfrag.where")
	span.SetAttributes(attribute.String("sqlfrag.op", "where"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "sqlfrag.where", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("sqlfrag.op", "where"))
}

func TestAddFragmentAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := NewOtelTracer(tp.Tracer("sqlfrag-test"))

	t.Run("success", func(t *testing.T) {
		exporter.Reset()

		_, span := tracer.StartSpan(context.Background(), "sqlfrag.where")
		AddFragmentAttributes(span, &FragmentMetadata{
			Op:       "where",
			Clause:   "age >= $1",
			ArgCount: 1,
		})
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		attrs := spans[0].Attributes
		assert.Contains(t, attrs, attribute.String("db.statement", "age >= $1"))
		assert.Contains(t, attrs, attribute.Int("sqlfrag.arg_count", 1))
		assert.Equal(t, codes.Ok, spans[0].Status.Code)
	})

	t.Run("error", func(t *testing.T) {
		exporter.Reset()

		_, span := tracer.StartSpan(context.Background(), "sqlfrag.where")
		AddFragmentAttributes(span, &FragmentMetadata{
			Op:    "where",
			Error: errors.New("invalid operator: bogus"),
		})
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		require.Len(t, spans[0].Events, 1)
	})
}
