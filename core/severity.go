package core

import (
	"github.com/pkg/errors"
)

// Severity represents the importance of a log event. Severities are
// totally ordered from TraceLevel up to FatalLevel.
type Severity int8

const (
	// TraceLevel for very fine-grained diagnostic output
	TraceLevel Severity = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable failures
	FatalLevel
)

// NumSeverities is the number of defined severities.
const NumSeverities = int(FatalLevel) + 1

// severityLabels holds the display form of each severity. Every label
// is exactly five characters wide so that record headers align.
var severityLabels = [NumSeverities]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO ",
	WarnLevel:  "WARN ",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// String returns the canonical name of the severity.
func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Label returns the fixed-width display label used in record headers.
// An out-of-range severity yields the ErrorLevel label, matching the
// dispatcher's fail-loud routing.
func (s Severity) Label() string {
	if !s.Valid() {
		return severityLabels[ErrorLevel]
	}
	return severityLabels[s]
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s >= TraceLevel && s <= FatalLevel
}

// SeverityFromIndex maps the one-based configuration index to a
// Severity: 1 is TraceLevel, 6 is FatalLevel. Any other value is
// rejected.
func SeverityFromIndex(n int) (Severity, error) {
	if n < 1 || n > NumSeverities {
		return 0, errors.Errorf("illegal log level: %d", n)
	}
	return Severity(n - 1), nil
}
