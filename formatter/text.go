package formatter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/clust4j/algolog/core"
)

// Text renders events as human-readable records with aligned
// continuation lines.
//
// Every record starts with the header
//
//	<elapsed> <severity-label> <category-label>:
//
// followed by the payload body. When the body spans multiple lines,
// each continuation line is re-emitted prefixed by '+' and padded with
// spaces to the header's exact width, so continuation text aligns
// vertically under the first body character. An attached error has its
// trace appended after the body in the same padded form, one trace
// line per output line.
type Text struct{}

// NewText creates a new text formatter.
func NewText() *Text {
	return &Text{}
}

// Format renders the full record for an event.
func (f *Text) Format(e *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(e, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatShort renders the short record for an event. The header
// already carries no thread identity, so the short and full forms are
// the same; the method exists for interface symmetry.
func (f *Text) FormatShort(e *core.Event) ([]byte, error) {
	return f.Format(e)
}

// FormatTo renders the full record and writes it directly to the writer.
func (f *Text) FormatTo(e *core.Event, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(e, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatShortTo renders the short record directly to the writer.
func (f *Text) FormatShortTo(e *core.Event, w io.Writer) error {
	return f.FormatTo(e, w)
}

// padding backs the continuation prefix; chunks of it are written
// until the header width is covered.
var padding = bytes.Repeat([]byte{' '}, 64)

// formatToBuffer writes the formatted event into the given buffer.
func (f *Text) formatToBuffer(e *core.Event, buf *bytes.Buffer) {
	buf.WriteString(e.When.ElapsedString())
	buf.WriteByte(' ')
	buf.WriteString(e.Sev.Label())
	buf.WriteByte(' ')
	buf.WriteString(e.Cat.Label())
	buf.WriteString(": ")
	header := buf.Len()

	body := getBuffer()
	if e.Parts != nil {
		for _, p := range e.Parts {
			fmt.Fprintf(body, "%v", p)
		}
	} else if e.Single != nil {
		fmt.Fprintf(body, "%v", e.Single)
	}
	writeAligned(buf, body.Bytes(), header)
	putBuffer(body)

	if e.Err != nil {
		writeTrace(buf, e.Err, header)
	}
	buf.WriteByte('\n')
}

// writeAligned writes the body with continuation alignment. Trailing
// line breaks are dropped; interior empty lines are kept.
func writeAligned(buf *bytes.Buffer, body []byte, header int) {
	body = bytes.TrimRight(body, "\n")
	i := bytes.IndexByte(body, '\n')
	if i < 0 {
		buf.Write(body)
		return
	}
	buf.Write(body[:i])
	for _, line := range bytes.Split(body[i+1:], []byte{'\n'}) {
		writeContinuation(buf, line, header)
	}
}

// writeTrace appends the error's trace rendering, one padded line per
// trace line. Errors carrying a captured stack render it via %+v;
// plain errors contribute their message only.
func writeTrace(buf *bytes.Buffer, err error, header int) {
	text := getBuffer()
	fmt.Fprintf(text, "%+v", err)
	trace := bytes.TrimRight(text.Bytes(), "\n")
	for _, line := range bytes.Split(trace, []byte{'\n'}) {
		writeContinuation(buf, line, header)
	}
	putBuffer(text)
}

// writeContinuation emits one line prefixed by '+' and padded to the
// header width.
func writeContinuation(buf *bytes.Buffer, line []byte, header int) {
	buf.WriteByte('\n')
	buf.WriteByte('+')
	for n := header - 1; n > 0; {
		chunk := n
		if chunk > len(padding) {
			chunk = len(padding)
		}
		buf.Write(padding[:chunk])
		n -= chunk
	}
	buf.Write(line)
}
