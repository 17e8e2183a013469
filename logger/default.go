package logger

import (
	"io"
	"sync"

	"github.com/clust4j/algolog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The process-wide logger: lazy file sink under the default root,
	// echo on stdout.
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Err logs an error event using the default logger and returns err
func Err(cat core.Category, msg string, err error) error {
	return Default().Err(cat, msg, err)
}

// WrapErr logs err using the default logger and returns it wrapped
// with the caller's stack
func WrapErr(err error) error {
	return Default().WrapErr(err)
}

// Warn logs a warning event using the default logger and returns err
func Warn(cat core.Category, msg string, err error) error {
	return Default().Warn(cat, msg, err)
}

// Info logs an info event using the default logger
func Info(cat core.Category, parts ...any) {
	Default().Info(cat, parts...)
}

// InfoQuiet logs an info event using the default logger without the
// console echo
func InfoQuiet(cat core.Category, parts ...any) {
	Default().InfoQuiet(cat, parts...)
}

// Debug logs a debug event using the default logger
func Debug(cat core.Category, parts ...any) {
	Default().Debug(cat, parts...)
}

// Trace logs a trace event using the default logger
func Trace(parts ...any) {
	Default().Trace(parts...)
}

// Log logs an event at an arbitrary severity using the default logger
func Log(cat core.Category, sev core.Severity, err error, parts ...any) {
	Default().Log(cat, sev, err, parts...)
}

// SetFlag enables verbose output for the category on the default logger
func SetFlag(cat core.Category) {
	Default().SetFlag(cat)
}

// UnsetFlag disables verbose output for the category on the default logger
func UnsetFlag(cat core.Category) {
	Default().UnsetFlag(cat)
}

// Flag reports the category's verbose flag on the default logger
func Flag(cat core.Category) bool {
	return Default().Flag(cat)
}

// SetPrintAll switches print-all on the default logger
func SetPrintAll(v bool) {
	Default().SetPrintAll(v)
}

// SetLogLevel sets the sink threshold on the default logger from a
// one-based index
func SetLogLevel(n int) error {
	return Default().SetLogLevel(n)
}

// SetRoot sets the root location on the default logger
func SetRoot(root string) {
	Default().SetRoot(root)
}

// SetProperties sets the sink properties path on the default logger
func SetProperties(path string) {
	Default().SetProperties(path)
}

// Wrap decorates w with console interception bound to the default logger
func Wrap(w io.Writer) *ConsoleWriter {
	return NewConsoleWriter(Default(), w)
}
