package logger

import (
	"io"

	"github.com/clust4j/algolog/core"
)

// SetFlag enables verbose (debug and trace) output for the category.
func (l *Logger) SetFlag(cat core.Category) {
	if cat.Valid() {
		l.flags[cat].Store(true)
	}
}

// UnsetFlag disables verbose output for the category.
func (l *Logger) UnsetFlag(cat core.Category) {
	if cat.Valid() {
		l.flags[cat].Store(false)
	}
}

// Flag reports whether verbose output is enabled for the category.
func (l *Logger) Flag(cat core.Category) bool {
	return cat.Valid() && l.flags[cat].Load()
}

// SetPrintAll switches echoing of every record to the console,
// overriding per-event echo policy and verbose gating of the echo.
func (l *Logger) SetPrintAll(v bool) {
	l.printAll.Store(v)
}

// PrintAll reports whether print-all is switched on.
func (l *Logger) PrintAll() bool {
	return l.printAll.Load()
}

// SetLogLevel sets the minimum severity written to the sink from the
// one-based index n (1 trace .. 6 fatal). An out-of-range index
// returns an error and changes nothing. Console echo is unaffected.
func (l *Logger) SetLogLevel(n int) error {
	sev, err := core.SeverityFromIndex(n)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = sev
	if ts, ok := l.sink.(thresholdSink); ok {
		ts.SetThreshold(sev)
	}
	return nil
}

// LogLevel returns the current sink threshold.
func (l *Logger) LogLevel() core.Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// SetRoot sets the root location the log directory is derived from.
// It has no effect once the sink exists.
func (l *Logger) SetRoot(root string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.root = root
}

// SetProperties sets the path of the sink properties resource. It has
// no effect once the sink exists.
func (l *Logger) SetProperties(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.propsPath = path
}

// SetConsole redirects the console echo stream.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	l.console = w
}

// Dir returns the directory log files live in, or the empty string
// before the sink exists.
func (l *Logger) Dir() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d, ok := l.sink.(interface{ Dir() string }); ok {
		return d.Dir()
	}
	return ""
}
