package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"meteo-gateway/internal/config"
)

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(context.Context) error

// Setup installs the global tracer provider and W3C propagator. With
// tracing disabled the global no-op provider is kept and only the
// propagator is installed.
func Setup(cfg config.TracingConfig, logger *slog.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		logger.Debug("tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create zipkin exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)

	logger.Info("tracing enabled",
		"exporter", "zipkin",
		"endpoint", cfg.ZipkinEndpoint,
		"service_name", cfg.ServiceName,
	)

	return tp.Shutdown, nil
}
