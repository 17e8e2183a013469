package handler

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/clust4j/algolog/core"
)

// LeveledFileSink writes records to one rolling file per severity.
//
// Destinations cascade: a record routed at severity S reaches every
// file whose severity is at or below S, so the TRACE file carries the
// complete stream while the FATAL file carries only the worst of it.
// A runtime threshold drops records below it from all destinations.
type LeveledFileSink struct {
	mu        sync.Mutex
	dir       string
	files     [core.NumSeverities]*rollingFile
	threshold atomic.Int32
}

// NewLeveledFileSink creates the destination directory and opens one
// rolling file per severity as described by cfg.
func NewLeveledFileSink(cfg SinkConfig) (*LeveledFileSink, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, err
	}

	s := &LeveledFileSink{dir: cfg.Dir}
	for i := range s.files {
		fc := cfg.Files[i]
		rf, err := openRollingFile(filepath.Join(cfg.Dir, fc.Name), fc.MaxSize, fc.MaxBackups)
		if err != nil {
			// Release the files opened so far
			for j := 0; j < i; j++ {
				_ = s.files[j].close()
			}
			return nil, err
		}
		s.files[i] = rf
	}
	return s, nil
}

// Write routes one record. An unrecognized severity routes at
// ErrorLevel rather than being dropped. Every destination at or below
// the routed severity is attempted even after a write failure; the
// combined error is returned.
func (s *LeveledFileSink) Write(sev core.Severity, rec []byte) error {
	if !sev.Valid() {
		sev = core.ErrorLevel
	}
	if sev < s.Threshold() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	for l := core.TraceLevel; l <= sev; l++ {
		err = multierr.Append(err, s.files[l].write(rec))
	}
	return err
}

// SetThreshold sets the minimum severity that reaches any destination.
func (s *LeveledFileSink) SetThreshold(sev core.Severity) {
	s.threshold.Store(int32(sev))
}

// Threshold returns the active minimum severity.
func (s *LeveledFileSink) Threshold() core.Severity {
	return core.Severity(s.threshold.Load())
}

// Dir returns the destination directory.
func (s *LeveledFileSink) Dir() string {
	return s.dir
}

// Path returns the current file path for a severity's destination.
func (s *LeveledFileSink) Path(sev core.Severity) string {
	if !sev.Valid() {
		sev = core.ErrorLevel
	}
	return s.files[sev].filename
}

// Close syncs and closes every destination file.
func (s *LeveledFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	for _, f := range s.files {
		if f != nil {
			err = multierr.Append(err, f.close())
		}
	}
	return err
}
