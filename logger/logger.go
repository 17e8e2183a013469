package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/clust4j/algolog/core"
	"github.com/clust4j/algolog/formatter"
	"github.com/clust4j/algolog/handler"
)

// droppedMessage is the payload of the synthetic WARN notice injected
// when degradation pressure clears.
const droppedMessage = "Logging framework dropped a message"

// SinkFactory builds the sink for a computed log directory. Returning
// (nil, nil) signals that the destination is not ready yet; the
// dispatcher keeps buffering and asks again on the next emission.
// Returning an error records a failed attempt, which is not retried.
type SinkFactory func(dir string) (handler.Sink, error)

// thresholdSink is implemented by sinks that honor a minimum severity.
type thresholdSink interface {
	SetThreshold(core.Severity)
}

// Logger is the dispatcher at the center of the facility. It owns the
// whole mutable dispatch state behind one mutex: the sink handle, the
// startup queue, the degradation slot with its missed counter, and
// the creation latch. All emissions serialize through it, which is
// what makes startup replay and degradation recovery atomic with
// respect to each other.
type Logger struct {
	mu          sync.Mutex
	sink        handler.Sink
	createTried bool
	startup     []*core.Event
	replayed    bool
	spare       *core.Event
	missed      int
	threshold   core.Severity
	root        string
	propsPath   string
	makeSink    SinkFactory

	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	console         io.Writer
	fallback        io.Writer

	// alloc is the event allocator; it returns nil when memory for a
	// new event cannot be obtained, which routes the call into the
	// degradation slot. Overridable in tests.
	alloc func() *core.Event

	printAll atomic.Bool
	flags    [core.NumCategories]atomic.Bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink      handler.Sink
	makeSink  SinkFactory
	formatter formatter.Formatter
	console   io.Writer
	fallback  io.Writer
	root      string
	propsPath string
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSink attaches a ready sink, skipping lazy creation entirely.
func (b *Builder) WithSink(s handler.Sink) *Builder {
	b.sink = s
	return b
}

// WithSinkFactory sets the factory used for lazy sink creation.
func (b *Builder) WithSinkFactory(f SinkFactory) *Builder {
	b.makeSink = f
	return b
}

// WithFormatter sets the record formatter (default: formatter.NewText).
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithConsole sets the console stream used for echoed records
// (default: os.Stdout).
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	return b
}

// WithFallback sets the writer internal failures of the facility are
// reported on (default: os.Stderr).
func (b *Builder) WithFallback(w io.Writer) *Builder {
	b.fallback = w
	return b
}

// WithRoot sets the root location the log directory is derived from.
func (b *Builder) WithRoot(root string) *Builder {
	b.root = root
	return b
}

// WithProperties sets the path of a sink properties resource consulted
// at sink creation.
func (b *Builder) WithProperties(path string) *Builder {
	b.propsPath = path
	return b
}

// Build creates the Logger instance. Category verbose flags start
// enabled; the degradation slot is pre-allocated here so the degraded
// path never needs the allocator.
func (b *Builder) Build() *Logger {
	if b.formatter == nil {
		b.formatter = formatter.NewText()
	}
	if b.console == nil {
		b.console = os.Stdout
	}
	if b.fallback == nil {
		b.fallback = os.Stderr
	}

	l := &Logger{
		sink:      b.sink,
		makeSink:  b.makeSink,
		formatter: b.formatter,
		console:   b.console,
		fallback:  b.fallback,
		root:      b.root,
		propsPath: b.propsPath,
		spare:     &core.Event{},
		threshold: core.TraceLevel,
		alloc:     func() *core.Event { return new(core.Event) },
	}
	if l.sink != nil {
		l.createTried = true
	}

	// Cache WriterFormatter for the direct-to-console path
	l.writerFormatter, _ = b.formatter.(formatter.WriterFormatter)

	for i := range l.flags {
		l.flags[i].Store(true)
	}
	return l
}

// New creates a Logger with default settings: lazy file sink under the
// system default root, console echo on stdout.
func New() *Logger {
	return NewBuilder().Build()
}

// construct attempts to allocate and initialize a new event. On
// allocation failure it falls back to the degradation slot: if the
// slot still holds an unwritten event, the message is counted as
// missed and nil is returned; otherwise the slot is reinitialized in
// place and returned. The degraded branch allocates nothing.
func (l *Logger) construct(cat core.Category, sev core.Severity, err error, parts []any, single any) *core.Event {
	if e := l.alloc(); e != nil {
		e.Init(cat, sev, core.Now(), err, parts, single)
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.spare.Pending() {
		l.missed++
		return nil
	}
	l.spare.Init(cat, sev, core.Now(), err, parts, single)
	return l.spare
}

// emit routes one event to the sink or the startup queue, echoes it
// to the console per policy, and runs the degradation drain cycle.
// A nil event (total loss under degradation) is a no-op.
func (l *Logger) emit(e *core.Event, echo bool) {
	if e == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureSinkLocked()

	if l.sink == nil {
		// Not ready. Buffer until the sink attaches, unless readiness
		// already came and went; echo happens at call time either way.
		if !l.replayed {
			l.startup = append(l.startup, e)
		}
		l.echoLocked(e, echo)
		e.ClearPending()
		return
	}

	if !l.replayed {
		l.replayed = true
		for _, q := range l.startup {
			if err := l.writeSinkLocked(q); err != nil {
				l.reportf("replaying buffered record: %v", err)
			}
		}
		l.startup = nil
	}

	if err := l.writeSinkLocked(e); err != nil {
		l.reportf("log write failed: %v", err)
		if !l.spare.Pending() {
			l.spare = e
		} else {
			l.missed++
		}
		return
	}
	l.echoLocked(e, echo)
	e.ClearPending()

	l.drainLocked()
}

// drainLocked completes one degradation drain cycle: write out a
// parked event if the slot holds one, then, if messages were missed
// while the slot was occupied, repopulate it with a single dropped-
// message notice and decrement the counter by one. The notice reaches
// the sink on the next cycle.
func (l *Logger) drainLocked() {
	if l.spare.Pending() {
		if err := l.writeSinkLocked(l.spare); err != nil {
			l.reportf("draining parked record: %v", err)
			return
		}
		l.echoLocked(l.spare, true)
		l.spare.ClearPending()
	}
	if l.missed > 0 && !l.spare.Pending() {
		l.spare.Init(core.Default, core.WarnLevel, core.Now(), nil, nil, droppedMessage)
		l.missed--
	}
}

// ensureSinkLocked performs lazy one-time sink creation. A factory
// error records the attempt and is not retried; a not-ready factory
// result leaves the dispatcher buffering. On success the threshold is
// forwarded and the log location is announced in-stream, queued so it
// replays in position.
func (l *Logger) ensureSinkLocked() {
	if l.sink != nil || l.createTried {
		return
	}

	dir := l.logDirLocked()
	var (
		s   handler.Sink
		err error
	)
	if l.makeSink != nil {
		s, err = l.makeSink(dir)
	} else {
		l.createTried = true
		s, err = l.defaultSinkLocked(dir)
	}
	if err != nil {
		l.createTried = true
		l.reportf("cannot create log sink: %v", err)
		return
	}
	if s == nil {
		return
	}

	l.sink = s
	l.createTried = true
	if ts, ok := s.(thresholdSink); ok {
		ts.SetThreshold(l.threshold)
	}

	announce := dir
	if d, ok := s.(interface{ Dir() string }); ok && d.Dir() != "" {
		announce = d.Dir()
	}
	if a := l.alloc(); a != nil {
		a.Init(core.Default, core.InfoLevel, core.Now(), nil, nil, "Logging at "+announce)
		l.startup = append(l.startup, a)
		l.echoLocked(a, true)
		a.ClearPending()
	}
}

// defaultSinkLocked builds the leveled file sink from the properties
// resource when one is configured, else from the generated defaults.
func (l *Logger) defaultSinkLocked(dir string) (handler.Sink, error) {
	cfg := handler.DefaultSinkConfig(dir)
	if l.propsPath != "" {
		loaded, err := handler.LoadSinkProperties(l.propsPath, dir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return handler.NewLeveledFileSink(cfg)
}

// writeSinkLocked formats the event and hands it to the sink. An
// unrecognized severity routes at ErrorLevel so a mis-tagged record
// fails loud instead of disappearing.
func (l *Logger) writeSinkLocked(e *core.Event) error {
	rec, err := l.formatter.Format(e)
	if err != nil {
		return err
	}
	sev := e.Sev
	if !sev.Valid() {
		sev = core.ErrorLevel
	}
	return l.sink.Write(sev, rec)
}

// echoLocked writes the short render to the console stream when the
// event's echo policy or the global print-all switch asks for it. A
// decorated console is unwrapped first so echo never re-enters
// interception.
func (l *Logger) echoLocked(e *core.Event, echo bool) {
	if !echo && !l.printAll.Load() {
		return
	}
	w := l.console
	if cw, ok := w.(*ConsoleWriter); ok {
		w = cw.Unwrap()
	}
	if err := l.formatShortTo(e, w); err != nil {
		l.reportf("console echo failed: %v", err)
	}
}

// formatShortTo renders the short record form directly into w.
func (l *Logger) formatShortTo(e *core.Event, w io.Writer) error {
	if l.writerFormatter != nil {
		return l.writerFormatter.FormatShortTo(e, w)
	}
	rec, err := l.formatter.FormatShort(e)
	if err != nil {
		return err
	}
	_, err = w.Write(rec)
	return err
}

// reportf writes an internal failure of the facility itself to the
// fallback writer. Logging callers never see these.
func (l *Logger) reportf(format string, args ...any) {
	if l.fallback == nil {
		return
	}
	fmt.Fprintf(l.fallback, "algolog: "+format+"\n", args...)
}

// Close closes the sink if one was created. The logger keeps echoing
// to the console afterwards but no longer buffers records.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink == nil {
		return nil
	}
	err := l.sink.Close()
	l.sink = nil
	l.replayed = true
	return err
}
