package handler

import (
	"io"
	"os"
	"sync"

	"github.com/clust4j/algolog/core"
)

// WriterSink sends every severity to a single io.Writer. It serves
// console destinations and tests; the writer is not closed because the
// sink does not own it.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink over w. A nil writer defaults to
// os.Stdout.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stdout
	}
	return &WriterSink{w: w}
}

// Write appends one record to the writer.
func (s *WriterSink) Write(_ core.Severity, rec []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.w.Write(rec)
	return err
}

// Close is a no-op; the underlying writer is owned by the caller.
func (s *WriterSink) Close() error {
	return nil
}
