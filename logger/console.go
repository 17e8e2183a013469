package logger

import (
	"io"
	"log"
	"strings"

	"github.com/clust4j/algolog/core"
)

// ConsoleWriter decorates a console stream so that anything written to
// it is recorded through the logger as an info event under the default
// category and forwarded to the underlying stream in record form.
// Echoed records bypass the decoration, so interception never feeds
// back into itself.
type ConsoleWriter struct {
	l      *Logger
	parent io.Writer
}

// NewConsoleWriter wraps w for the logger. Wrapping an already wrapped
// writer returns it unchanged, so decoration never nests.
func NewConsoleWriter(l *Logger, w io.Writer) *ConsoleWriter {
	if cw, ok := w.(*ConsoleWriter); ok {
		return cw
	}
	return &ConsoleWriter{l: l, parent: w}
}

// Write records p as an info event and forwards the short record form
// to the underlying stream. The reported length is always len(p).
func (cw *ConsoleWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	e := cw.l.construct(core.Default, core.InfoLevel, nil, nil, msg)
	if e == nil {
		// Total loss under degradation; pass the raw bytes through so
		// the console itself stays live.
		if _, err := cw.parent.Write(p); err != nil {
			return 0, err
		}
		return len(p), nil
	}

	// Render before emitting: emission releases the event for reuse.
	rec, ferr := cw.l.formatter.FormatShort(e)
	cw.l.emit(e, false)
	if ferr != nil {
		return 0, ferr
	}
	if _, err := cw.parent.Write(rec); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Unwrap returns the underlying stream.
func (cw *ConsoleWriter) Unwrap() io.Writer {
	return cw.parent
}

// CaptureStdlog redirects the standard library's log package through
// the logger's console interception and strips its own prefixes so
// records are not stamped twice. The returned function restores the
// previous configuration.
func CaptureStdlog(l *Logger) func() {
	prevWriter := log.Writer()
	prevFlags := log.Flags()
	prevPrefix := log.Prefix()

	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(NewConsoleWriter(l, prevWriter))

	return func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	}
}
