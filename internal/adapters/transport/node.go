package transport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/scaledash/internal/adapters/config"
	"go.trai.ch/scaledash/internal/adapters/logger"
	"go.trai.ch/scaledash/internal/adapters/notifier"
	"go.trai.ch/scaledash/internal/adapters/telemetry"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
)

// NodeID is the unique identifier for the transport Graft node.
const NodeID graft.ID = "adapter.transport"

func init() {
	graft.Register(graft.Node[ports.Transport]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, notifier.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Transport, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			n, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tp, err := graft.Dep[trace.TracerProvider](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.API, n, log,
				WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst),
				WithTracerProvider(tp),
			), nil
		},
	})
}
