// Package formatter renders events into finished textual records.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. The
// dispatcher checks for WriterFormatter and prefers it on the console
// echo path, eliminating the intermediate byte slice allocation.
//
// The built-in Text formatter produces the aligned record shape:
// a header of elapsed time plus fixed-width severity and category
// labels, the payload body, and one '+'-prefixed continuation line per
// embedded line break, padded with spaces to the header's exact width
// so continuation text sits directly under the first body character.
// Attached errors contribute their trace in the same padded form;
// errors created with github.com/pkg/errors render their captured
// stack, one frame line per record line.
//
// Formatting uses a pooled bytes.Buffer internally. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// record from permanently inflating memory usage.
package formatter
