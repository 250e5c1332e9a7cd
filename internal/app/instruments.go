package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
)

const instrumentationName = "github.com/jsamuelsen/quote-link-service/app"

// instruments bundles the tracer and the operation counter of a service.
// Providers are resolved from the otel globals when the service is built.
type instruments struct {
	resource string
	tracer   trace.Tracer
	ops      metric.Int64Counter
}

func newInstruments(resource string) *instruments {
	ops, err := otel.Meter(instrumentationName).Int64Counter(
		"quotelink.store.operations",
		metric.WithDescription("Store operations by resource, operation and outcome"),
	)
	if err != nil {
		otel.Handle(err)

		ops, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("noop")
	}

	return &instruments{
		resource: resource,
		tracer:   otel.Tracer(instrumentationName),
		ops:      ops,
	}
}

func (i *instruments) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (i *instruments) record(ctx context.Context, op string, err error) {
	i.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("resource", i.resource),
		attribute.String("operation", op),
		attribute.String("outcome", outcome(err)),
	))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsEmptyCollection(err):
		return "empty"
	case domain.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}
