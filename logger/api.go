package logger

import (
	"github.com/pkg/errors"

	"github.com/clust4j/algolog/core"
)

// Err records an error-severity event for the category and returns err
// unchanged, so the call can sit directly in a return statement.
func (l *Logger) Err(cat core.Category, msg string, err error) error {
	l.emit(l.construct(cat, core.ErrorLevel, err, nil, msg), true)
	return err
}

// WrapErr records err at error severity under the default category and
// returns it wrapped with the caller's stack. A nil err is returned as
// nil without recording anything.
func (l *Logger) WrapErr(err error) error {
	if err == nil {
		return nil
	}
	l.emit(l.construct(core.Default, core.ErrorLevel, err, nil, ""), true)
	return errors.WithStack(err)
}

// Warn records a warning-severity event for the category and returns
// err unchanged. err may be nil.
func (l *Logger) Warn(cat core.Category, msg string, err error) error {
	l.emit(l.construct(cat, core.WarnLevel, err, nil, msg), true)
	return err
}

// Info records an info-severity event and echoes it to the console.
func (l *Logger) Info(cat core.Category, parts ...any) {
	l.emit(l.construct(cat, core.InfoLevel, nil, parts, nil), true)
}

// InfoQuiet records an info-severity event without the console echo.
// The global print-all switch still forces the echo.
func (l *Logger) InfoQuiet(cat core.Category, parts ...any) {
	l.emit(l.construct(cat, core.InfoLevel, nil, parts, nil), false)
}

// Debug records a debug-severity event. When the category's verbose
// flag is off and print-all is unset the call is a no-op: no event is
// built at all.
func (l *Logger) Debug(cat core.Category, parts ...any) {
	if !l.Flag(cat) && !l.printAll.Load() {
		return
	}
	l.emit(l.construct(cat, core.DebugLevel, nil, parts, nil), false)
}

// Trace records a trace-severity event under the default category,
// gated the same way Debug is.
func (l *Logger) Trace(parts ...any) {
	if !l.Flag(core.Default) && !l.printAll.Load() {
		return
	}
	l.emit(l.construct(core.Default, core.TraceLevel, nil, parts, nil), false)
}

// Log records an event at an arbitrary severity. Severities below
// InfoLevel are gated by the category's verbose flag and echoed only
// under print-all; InfoLevel and above echo to the console.
func (l *Logger) Log(cat core.Category, sev core.Severity, err error, parts ...any) {
	if sev <= core.DebugLevel && !l.Flag(cat) && !l.printAll.Load() {
		return
	}
	l.emit(l.construct(cat, sev, err, parts, nil), sev >= core.InfoLevel)
}
