// Package telemetry installs the global OpenTelemetry TracerProvider.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ErrUnknownExporter reports an unsupported trace exporter name.
var ErrUnknownExporter = errors.New("telemetry: unknown trace exporter")

// Config selects the exporter.
type Config struct {
	// ServiceName is recorded as service.name on every span.
	ServiceName string
	// TraceExporter is "none" (default) or "stdout".
	TraceExporter string
	// Output receives stdout spans; defaults to os.Stdout.
	Output io.Writer
}

// ShutdownFunc flushes and stops the provider installed by Init.
type ShutdownFunc func(context.Context) error

// Init installs a TracerProvider for cfg and returns its shutdown function.
// With "none" (or an empty exporter) the global no-op provider stays in place
// and the shutdown function does nothing.
func Init(cfg Config) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.TraceExporter {
	case "", "none":
		return noop, nil
	case "stdout":
	default:
		return noop, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.TraceExporter)
	}

	tp, err := newStdoutProvider(cfg)
	if err != nil {
		return noop, err
	}
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func newStdoutProvider(cfg Config) (*sdktrace.TracerProvider, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, fmt.Errorf("telemetry: create stdout exporter: %w", err)
	}
	name := cfg.ServiceName
	if name == "" {
		name = "georoute"
	}
	res := resource.NewWithAttributes("", attribute.String("service.name", name))

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
