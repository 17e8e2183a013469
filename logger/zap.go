package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/clust4j/algolog/core"
)

// ZapCore is an adapter that implements zapcore.Core on top of a
// Logger, so zap-instrumented code can emit into the facility without
// carrying a second logging pipeline. Fields are rendered into the
// record body as key=value pairs in key order.
type ZapCore struct {
	l      *Logger
	cat    core.Category
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core adapter recording under the given
// category.
func NewZapCore(l *Logger, cat core.Category) *ZapCore {
	if !cat.Valid() {
		cat = core.Default
	}
	return &ZapCore{l: l, cat: cat}
}

// Enabled reports whether the core handles entries at the given level.
// Debug follows the category's verbose flag.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	if zapLevelToSeverity(level) <= core.DebugLevel {
		return c.l.Flag(c.cat) || c.l.PrintAll()
	}
	return true
}

// With returns a copy of the core carrying the additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	newFields = append(newFields, fields...)
	return &ZapCore{l: c.l, cat: c.cat, fields: newFields}
}

// Check adds the core to the checked entry if the entry's level is
// enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and its fields to an event and dispatches
// it.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var b strings.Builder
	b.WriteString(ent.Message)
	if pairs := renderZapFields(c.fields, fields); pairs != "" {
		b.WriteByte(' ')
		b.WriteString(pairs)
	}
	c.l.Log(c.cat, zapLevelToSeverity(ent.Level), nil, b.String())
	return nil
}

// Sync is a no-op; dispatch is synchronous.
func (c *ZapCore) Sync() error {
	return nil
}

// zapLevelToSeverity converts a zapcore.Level to a core.Severity.
// DPanic and Panic record as errors; process termination stays with
// zap.
func zapLevelToSeverity(level zapcore.Level) core.Severity {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarnLevel
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel:
		return core.ErrorLevel
	case zapcore.FatalLevel:
		return core.FatalLevel
	default:
		return core.ErrorLevel
	}
}

// renderZapFields flattens bound and call-site fields to key=value
// pairs, sorted by key so output is stable.
func renderZapFields(bound, extra []zapcore.Field) string {
	if len(bound) == 0 && len(extra) == 0 {
		return ""
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range bound {
		f.AddTo(enc)
	}
	for _, f := range extra {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, enc.Fields[k]))
	}
	return strings.Join(pairs, " ")
}
