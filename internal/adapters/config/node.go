package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/swiftbuild/helper/internal/core/ports"
)

// NodeID is the unique identifier for the session loader Graft node.
const NodeID graft.ID = "adapter.session_loader"

func init() {
	graft.Register(graft.Node[ports.SessionLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SessionLoader, error) {
			return &FileSessionLoader{}, nil
		},
	})
}
