package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording product action progress.
type Tracer interface {
	// Start begins recording a new vertex for one product action.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one recorded product action.
type Span interface {
	io.Writer
	// End completes the span successfully.
	End()
	// RecordError completes the span with an error.
	RecordError(err error)
}
