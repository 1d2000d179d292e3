// Package telemetry builds the OpenTelemetry tracer provider used by the
// transport and reports finished request spans to the logger.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/scaledash/internal/core/ports"
)

const statusCodeKey = attribute.Key("http.response.status_code")

// Bridge implements sdktrace.SpanProcessor to report finished client spans
// through a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs a one-line summary of a successful client span.
// Failed spans are skipped because the transport error hook reports them.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}
	if s.SpanKind() != trace.SpanKindClient || s.Status().Code == codes.Error {
		return
	}

	status := "-"
	for _, attr := range s.Attributes() {
		if attr.Key == statusCodeKey {
			status = attr.Value.Emit()
			break
		}
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	b.logger.Info(fmt.Sprintf("%s %s (%s)", s.Name(), status, elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
