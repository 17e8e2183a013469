package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/clust4j/algolog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. This allows the facility to be used as a drop-in backend for
// log/slog. Attributes are rendered into the record body as key=value
// pairs; group names become dotted key prefixes.
type SlogHandler struct {
	l     *Logger
	cat   core.Category
	attrs []string
	group string
}

// NewSlogHandler creates a new slog.Handler adapter recording under
// the given category.
func NewSlogHandler(l *Logger, cat core.Category) *SlogHandler {
	if !cat.Valid() {
		cat = core.Default
	}
	return &SlogHandler{l: l, cat: cat}
}

// Enabled reports whether the handler handles records at the given
// level. Levels below info follow the category's verbose flag.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if slogLevelToSeverity(level) <= core.DebugLevel {
		return s.l.Flag(s.cat) || s.l.PrintAll()
	}
	return true
}

// Handle converts a slog.Record to an event and dispatches it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, a := range s.attrs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		if pair := slogAttrToPair(s.group, a); pair != "" {
			b.WriteByte(' ')
			b.WriteString(pair)
		}
		return true
	})

	s.l.Log(s.cat, slogLevelToSeverity(record.Level), nil, b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]string, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if pair := slogAttrToPair(s.group, a); pair != "" {
			newAttrs = append(newAttrs, pair)
		}
	}
	return &SlogHandler{l: s.l, cat: s.cat, attrs: newAttrs, group: s.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]string, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{l: s.l, cat: s.cat, attrs: newAttrs, group: newGroup}
}

// slogLevelToSeverity converts a slog.Level to a core.Severity.
func slogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// slogAttrToPair renders a slog.Attr as a key=value pair, prepending
// the group prefix if present. Group attrs flatten recursively.
func slogAttrToPair(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		pairs := make([]string, 0, len(attrs))
		for _, ga := range attrs {
			if pair := slogAttrToPair(key, ga); pair != "" {
				pairs = append(pairs, pair)
			}
		}
		return strings.Join(pairs, " ")
	}
	if key == "" {
		return ""
	}
	return key + "=" + a.Value.String()
}
