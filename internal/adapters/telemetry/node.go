package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/scaledash/internal/adapters/config"
	"go.trai.ch/scaledash/internal/adapters/logger"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
)

// NodeID is the unique identifier for the tracer provider Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[trace.TracerProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (trace.TracerProvider, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracerProvider(log, cfg.Log.Requests), nil
		},
	})
}
