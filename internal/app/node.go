package app

import (
	"context"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/Guardsquare/proguard-sub005/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/Guardsquare/proguard-sub005/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/Guardsquare/proguard-sub005/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/Guardsquare/proguard-sub005/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.RendererNodeID,
			fs.FingerprinterNodeID,
			fs.VerifierNodeID,
			watcher.WatcherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.RecordRenderer](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.FileVerifier](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, renderer, fingerprinter, verifier, w, tracer, log), nil
}
