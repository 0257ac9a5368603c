package session

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/swiftbuild/helper/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/swiftbuild/helper/internal/adapters/state"     //nolint:depguard // Wired in engine wiring
	"github.com/swiftbuild/helper/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/swiftbuild/helper/internal/core/ports"
)

// NodeID is the unique identifier for the session runner Graft node.
const NodeID graft.ID = "engine.session"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			state.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(log, tracer, store), nil
		},
	})
}
