package progrock

import "github.com/vito/progrock"

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	done   bool
}

// Write forwards output to the vertex's stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// End marks the vertex as finished successfully.
func (s *Span) End() {
	if s.done {
		return
	}
	s.done = true
	s.vertex.Done(nil)
}

// RecordError marks the vertex as finished with an error.
func (s *Span) RecordError(err error) {
	if s.done {
		return
	}
	s.done = true
	s.vertex.Done(err)
}
