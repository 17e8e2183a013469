package logger

import "github.com/clust4j/algolog/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// Category Re-export type and constants for convenience
type Category = core.Category

const (
	Agglomerative = core.Agglomerative
	Clust4j       = core.Clust4j
	DBSCAN        = core.DBSCAN
	KMedoids      = core.KMedoids
	KMeans        = core.KMeans
	KNN           = core.KNN
	MeanShift     = core.MeanShift
)

// ParseCategory converts a category name to a Category
func ParseCategory(s string) (Category, error) {
	return core.ParseCategory(s)
}

// SeverityFromIndex converts the one-based index used by the log level
// knob to a Severity
func SeverityFromIndex(n int) (Severity, error) {
	return core.SeverityFromIndex(n)
}
