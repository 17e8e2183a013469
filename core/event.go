package core

import (
	"sync/atomic"
)

// Event represents a single log occurrence. Exactly one of Parts and
// Single carries the payload: Parts is an ordered sequence whose
// elements are concatenated with no separator, Single is used
// verbatim. Err optionally attaches a caller-supplied error whose
// trace is rendered after the body.
//
// An Event is immutable once built, with one exception: the pending
// flag, which guards the degradation slot. It starts true at Init and
// is cleared exactly once, after the event has been durably handed to
// the sink or printed.
type Event struct {
	Cat    Category
	Sev    Severity
	When   Stamp
	Parts  []any
	Single any
	Err    error

	pending atomic.Bool
}

// Init fills the event in place and marks it pending. It performs no
// allocation of its own, which the degradation slot depends on: the
// same Event value is reinitialized across drain cycles.
func (e *Event) Init(cat Category, sev Severity, when Stamp, err error, parts []any, single any) {
	e.Cat = cat
	e.Sev = sev
	e.When = when
	e.Err = err
	if parts != nil {
		e.Parts = parts
		e.Single = nil
	} else {
		e.Parts = nil
		e.Single = single
	}
	e.pending.Store(true)
}

// Pending reports whether the event has not yet been durably handed to
// the sink or printed.
func (e *Event) Pending() bool {
	return e.pending.Load()
}

// ClearPending marks the event as durably written. The dispatcher
// calls it at the drain point of each emission.
func (e *Event) ClearPending() {
	e.pending.Store(false)
}
