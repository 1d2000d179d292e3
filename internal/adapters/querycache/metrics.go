package querycache

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope for registry metrics.
const meterName = "go.trai.ch/scaledash/querycache"

// metrics holds the OpenTelemetry instruments of a Registry. Instruments that
// fail to register stay nil and are skipped.
type metrics struct {
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	invalidations metric.Int64Counter
	errors        metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter(meterName)

	m := &metrics{}
	m.hits, _ = meter.Int64Counter("scaledash.querycache.hits",
		metric.WithDescription("Number of fetches served from cache"))
	m.misses, _ = meter.Int64Counter("scaledash.querycache.misses",
		metric.WithDescription("Number of fetches that ran or joined a producer"))
	m.invalidations, _ = meter.Int64Counter("scaledash.querycache.invalidations",
		metric.WithDescription("Number of entries marked stale"))
	m.errors, _ = meter.Int64Counter("scaledash.querycache.errors",
		metric.WithDescription("Number of producer runs that failed"))
	return m
}

func (m *metrics) hit(ctx context.Context) {
	if m.hits != nil {
		m.hits.Add(ctx, 1)
	}
}

func (m *metrics) miss(ctx context.Context) {
	if m.misses != nil {
		m.misses.Add(ctx, 1)
	}
}

func (m *metrics) failure(ctx context.Context) {
	if m.errors != nil {
		m.errors.Add(ctx, 1)
	}
}

func (m *metrics) invalidated(ctx context.Context, n int) {
	if m.invalidations != nil && n > 0 {
		m.invalidations.Add(ctx, int64(n))
	}
}
