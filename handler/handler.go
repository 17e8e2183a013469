package handler

import (
	"github.com/clust4j/algolog/core"
)

// Sink is a leveled destination for finished records. The dispatcher
// hands every record to exactly one Sink together with the severity it
// was routed at; the sink decides which of its destinations the record
// reaches.
type Sink interface {
	// Write routes one finished record at the given severity
	Write(sev core.Severity, rec []byte) error

	// Close flushes and releases the sink's resources
	Close() error
}
