package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaledash/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/scaledash/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/scaledash/internal/adapters/querycache" //nolint:depguard // Wired in app layer
	"go.trai.ch/scaledash/internal/adapters/transport"  //nolint:depguard // Wired in app layer
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
	"go.trai.ch/scaledash/internal/core/services"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			transport.NodeID,
			querycache.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	tr, err := graft.Dep[ports.Transport](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.QueryCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		services.NewInfoService(tr, cache),
		services.NewHistoryService(tr, cache, cfg.Cache.HistoryStaleness()),
		services.NewDefinitionService(tr, cache),
		log,
	), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, cfg), nil
}
