// Package handler provides the Sink interface and its built-in
// implementations for delivering finished records to their
// destinations.
//
// Sinks are synchronous on purpose: the dispatcher serializes the
// whole logging stream through a single mutual-exclusion domain, and
// an in-order, immediately-durable write is what makes startup replay
// and degradation recovery reason about "written" and "not written"
// reliably. Sink writes are assumed fast and local.
//
// Built-in sinks:
//
//   - LeveledFileSink keeps one rolling file per severity in a single
//     directory. Destinations cascade by severity, so the TRACE file
//     carries the complete stream while the FATAL file carries only
//     the worst of it. Files rotate by size with timestamped backups
//     and bounded retention, and a runtime threshold can silence the
//     quieter severities entirely.
//   - WriterSink sends everything to one io.Writer, typically a
//     console or a test buffer.
//   - MultiSink fans a record out to multiple child sinks.
//
// The destination set is described by SinkConfig, either generated
// with DefaultSinkConfig or loaded from a .properties resource with
// LoadSinkProperties.
package handler
