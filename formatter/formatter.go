package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/clust4j/algolog/core"
)

// Formatter defines the interface for record formatters. Format and
// FormatShort currently render identically; both exist because some
// destinations (the console echo path) historically take the short
// form while sinks take the full form.
type Formatter interface {
	// Format renders an event into a finished record, including the
	// trailing newline
	Format(e *core.Event) ([]byte, error)
	// FormatShort renders the short form of the record
	FormatShort(e *core.Event) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo renders an event and writes it directly to the writer
	FormatTo(e *core.Event, w io.Writer) error
	// FormatShortTo renders the short form directly to the writer
	FormatShortTo(e *core.Event, w io.Writer) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
