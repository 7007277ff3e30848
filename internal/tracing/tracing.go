package tracing

import (
	"context"
	"fmt"

	"body-echo-api/internal/config"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Init installs the global tracer provider and returns it with its shutdown function.
// Spans are only exported when cfg.Exporting() holds; otherwise they stay in process.
func Init(ctx context.Context, cfg config.TracingConfig, logger *logrus.Logger) (*sdktrace.TracerProvider, func(context.Context) error, error) {
	if logger == nil {
		logger = logrus.New()
	}

	tp := sdktrace.NewTracerProvider()
	shutdown := func(ctx context.Context) error {
		return tp.Shutdown(ctx)
	}

	if cfg.Exporting() {
		logger.WithFields(logrus.Fields{
			"service":  cfg.ServiceName,
			"endpoint": cfg.Endpoint,
		}).Info("Initializing OpenTelemetry with OTLP exporter")

		var opts []otlptracegrpc.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithInsecure())
		}

		exp, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}

		tp = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		shutdown = func(ctx context.Context) error {
			_ = tp.ForceFlush(ctx)
			_ = exp.Shutdown(ctx)
			return tp.Shutdown(ctx)
		}
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})
	otel.SetTracerProvider(tp)

	return tp, shutdown, nil
}
