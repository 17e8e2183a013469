package benchmark

import (
	"github.com/clust4j/algolog/core"
	"github.com/clust4j/algolog/handler"
)

type noopSink struct{}

func newNoopSink() handler.Sink {
	return &noopSink{}
}

func (s *noopSink) Write(_ core.Severity, rec []byte) error {
	_ = len(rec)
	return nil
}

func (s *noopSink) Close() error {
	return nil
}
