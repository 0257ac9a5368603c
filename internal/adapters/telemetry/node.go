package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	tprogrock "github.com/swiftbuild/helper/internal/adapters/telemetry/progrock"
	"github.com/swiftbuild/helper/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// Vertex recording only makes sense on a terminal; piped
			// output gets the no-op tracer so logs stay plain.
			if info, err := os.Stderr.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
				return tprogrock.New(), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
