package handler

import (
	"go.uber.org/multierr"

	"github.com/clust4j/algolog/core"
)

// MultiSink sends records to multiple sinks
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write routes the record to all sinks. Every sink is attempted even
// after a failure; the combined error is returned.
func (m *MultiSink) Write(sev core.Severity, rec []byte) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Write(sev, rec))
	}
	return err
}

// Close closes all sinks
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
