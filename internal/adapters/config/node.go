package config

import (
	"context"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/logger"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// RendererNodeID is the unique identifier for the record renderer Graft node.
	RendererNodeID graft.ID = "adapter.record_renderer"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.RecordRenderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.RecordRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
