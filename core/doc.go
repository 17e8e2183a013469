// Package core defines the shared types used across the algolog
// facility.
//
// It provides the Severity and Category enumerations with their
// fixed-width display labels, the Stamp type that renders event times
// as elapsed-since-process-start strings, and the Event type that
// represents a single log occurrence.
//
// Labels are width-stable on purpose: severities render in five
// characters and categories in seven, so that every record header has
// the same visual width and continuation lines can be padded to align
// under the first body character.
//
// Event carries its payload as either an ordered sequence or a single
// value, never both, plus an optional error. Its pending flag is the
// only mutable bit after initialization; the dispatcher uses it to
// decide whether the degradation slot may be reused. Init works
// strictly in place so a pre-allocated Event can be recycled without
// touching the allocator.
package core
