package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/swiftbuild/helper/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/swiftbuild/helper/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/swiftbuild/helper/internal/adapters/state"   //nolint:depguard // Wired in app layer
	"github.com/swiftbuild/helper/internal/adapters/swiftpm" //nolint:depguard // Wired in app layer
	"github.com/swiftbuild/helper/internal/core/ports"
	"github.com/swiftbuild/helper/internal/engine/session"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the adapters the CLI needs directly.
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
			swiftpm.NodeID,
			state.NodeID,
			session.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.SessionLoader](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[*session.Runner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, toolchain, runner, store), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
