package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/clust4j/algolog/core"
)

func TestConsoleWriter_RecordsAndForwards(t *testing.T) {
	l, sink, _ := newTestLogger()
	parent := &bytes.Buffer{}

	cw := NewConsoleWriter(l, parent)
	n, err := fmt.Fprintln(cw, "hello from stdout")
	if err != nil {
		t.Fatalf("Expected clean write, got: %v", err)
	}
	if n != len("hello from stdout")+1 {
		t.Errorf("Expected reported length %d, got %d", len("hello from stdout")+1, n)
	}

	recs := sink.records()
	if len(recs) != 1 {
		t.Fatalf("Expected 1 sink record, got %d", len(recs))
	}
	if !strings.Contains(recs[0], "hello from stdout") {
		t.Errorf("Expected message in sink record, got: %s", recs[0])
	}
	if !strings.Contains(recs[0], "CLUST4J") {
		t.Errorf("Expected default category, got: %s", recs[0])
	}
	if sink.severities()[0] != core.InfoLevel {
		t.Errorf("Expected InfoLevel, got: %v", sink.severities()[0])
	}

	// Forwarded form carries the record header, not the raw text
	out := parent.String()
	if !strings.Contains(out, "hello from stdout") {
		t.Errorf("Expected forward to parent, got: %s", out)
	}
	if !strings.Contains(out, "INFO ") {
		t.Errorf("Expected record form on parent, got: %s", out)
	}
}

func TestConsoleWriter_NoNesting(t *testing.T) {
	l, _, _ := newTestLogger()
	parent := &bytes.Buffer{}

	cw := NewConsoleWriter(l, parent)
	again := NewConsoleWriter(l, cw)

	if again != cw {
		t.Error("Expected wrapping a wrapped writer to return it unchanged")
	}
	if cw.Unwrap() != parent {
		t.Error("Expected Unwrap to return the original stream")
	}
}

func TestConsoleWriter_EchoBypassesInterception(t *testing.T) {
	l, sink, _ := newTestLogger()
	parent := &bytes.Buffer{}

	// Point the echo stream at the wrapped console
	cw := NewConsoleWriter(l, parent)
	l.SetConsole(cw)

	l.Info(KMeans, "echoed once")

	if got := strings.Count(parent.String(), "echoed once"); got != 1 {
		t.Errorf("Expected exactly one line on the console, got %d:\n%s", got, parent.String())
	}
	if got := len(sink.records()); got != 1 {
		t.Errorf("Expected exactly one sink record, got %d", got)
	}
}

func TestConsoleWriter_DegradedPassthrough(t *testing.T) {
	l, sink, _ := newTestLogger()
	parent := &bytes.Buffer{}
	cw := NewConsoleWriter(l, parent)

	// Slot taken and allocation failing: interception loses the event
	// but the console itself must stay live.
	l.alloc = func() *core.Event { return nil }
	l.mu.Lock()
	l.spare.Init(core.Default, core.InfoLevel, core.Now(), nil, nil, "parked")
	l.mu.Unlock()

	n, err := cw.Write([]byte("raw line\n"))
	if err != nil {
		t.Fatalf("Expected clean write, got: %v", err)
	}
	if n != len("raw line\n") {
		t.Errorf("Expected reported length %d, got %d", len("raw line\n"), n)
	}
	if parent.String() != "raw line\n" {
		t.Errorf("Expected raw passthrough, got: %q", parent.String())
	}
	if len(sink.records()) != 0 {
		t.Error("Expected no sink record for lost event")
	}
}

func TestCaptureStdlog(t *testing.T) {
	l, sink, _ := newTestLogger()
	orig := &bytes.Buffer{}
	log.SetOutput(orig)
	defer log.SetOutput(io.Discard)

	restore := CaptureStdlog(l)
	log.Print("migrated message")
	restore()

	recs := sink.records()
	if len(recs) != 1 {
		t.Fatalf("Expected stdlib log to reach the sink, got %d records", len(recs))
	}
	if !strings.Contains(recs[0], "migrated message") {
		t.Errorf("Expected message in record, got: %s", recs[0])
	}
	if !strings.Contains(orig.String(), "migrated message") {
		t.Errorf("Expected forward to previous writer, got: %s", orig.String())
	}

	if log.Writer() != orig {
		t.Error("Expected restore to reinstate the previous writer")
	}
	log.Print("after restore")
	if len(sink.records()) != 1 {
		t.Error("Expected no interception after restore")
	}
}
