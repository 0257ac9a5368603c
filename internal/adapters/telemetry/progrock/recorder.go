// Package progrock provides the Progrock implementation of the telemetry
// tracer.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/swiftbuild/helper/internal/core/ports"
	"github.com/vito/progrock"
)

// Recorder implements ports.Tracer using the progrock vertex model: one
// vertex per product action.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a new vertex for one product action.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	return ctx, &Span{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
