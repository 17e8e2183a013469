package core

import (
	"fmt"
	"time"
)

// start is the reference instant all elapsed renderings are relative
// to. It is captured once, when the package is initialized.
var start = time.Now()

// Start returns the process-start reference instant.
func Start() time.Time {
	return start
}

// Stamp records the instant an event was constructed. It is immutable
// once created.
type Stamp struct {
	At time.Time
}

// Now captures the current instant.
func Now() Stamp {
	return Stamp{At: time.Now()}
}

// Elapsed returns the time between the process-start reference and the
// stamped instant. Stamps taken before the reference clamp to zero.
func (s Stamp) Elapsed() time.Duration {
	d := s.At.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedString renders the elapsed time in the fixed-width
// HH:MM:SS.mmm form used as the leading column of every record header.
func (s Stamp) ElapsedString() string {
	d := s.Elapsed()
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	ms := (d - sec*time.Second) / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, sec, ms)
}
