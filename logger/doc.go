// Package logger is the public API of algolog. Most users only need
// to import this package.
//
// A Logger dispatches events to a lazily created sink. Until the sink
// exists, records are buffered and replayed into it in order the
// moment it attaches, so nothing logged during startup is lost.
// Records at info severity and above are also echoed to the console
// in a shorter form.
//
// The package initializes a default Logger in init(): file sink under
// the system default root, echo on stdout. The package-level
// functions Info, Err, Debug, etc. delegate to this default instance,
// so simple programs can log without any setup:
//
//	logger.Info(logger.KMeans, "converged after ", iter, " iterations")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithRoot("/var/data").
//	    WithConsole(os.Stderr).
//	    Build()
//
// Debug and Trace are gated per category: when the verbose flag is
// off, the call returns before an event is built. Under allocation
// failure the dispatcher degrades to a single pre-allocated event
// slot, counts what it cannot hold, and reports the loss in-stream
// once pressure clears.
//
// Bridges are provided for log/slog (SlogHandler), zap (ZapCore), and
// the standard library's log package (CaptureStdlog).
package logger
