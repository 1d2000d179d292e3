package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/scaledash/internal/core/ports"
)

// NewTracerProvider returns a tracer provider for request spans. With
// logRequests set, every successful request is logged through logger.
func NewTracerProvider(logger ports.Logger, logRequests bool, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	if logRequests {
		opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(logger)))
	}
	return sdktrace.NewTracerProvider(opts...)
}
