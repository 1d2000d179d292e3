package querycache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaledash/internal/adapters/config"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
)

// NodeID is the unique identifier for the query registry Graft node.
const NodeID graft.ID = "adapter.querycache"

func init() {
	graft.Register(graft.Node[ports.QueryCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.QueryCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(WithMaxEntries(cfg.Cache.MaxEntries))
		},
	})
}
