package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Category identifies the subsystem an event originates from. The set
// is closed; verbose-enabled flags for categories are held by the
// Logger, not by the Category values themselves.
type Category uint8

const (
	// Agglomerative for hierarchical agglomerative clustering
	Agglomerative Category = iota
	// Clust4j for the library itself; the reserved default category
	Clust4j
	// DBSCAN for density-based spatial clustering
	DBSCAN
	// KMedoids for k-medoids partitioning
	KMedoids
	// KMeans for k-means partitioning
	KMeans
	// KNN for k-nearest-neighbor search
	KNN
	// MeanShift for mean-shift clustering
	MeanShift
)

// Default is the category used when callers do not name one.
const Default = Clust4j

// NumCategories is the number of defined categories.
const NumCategories = int(MeanShift) + 1

// categoryLabels holds the display form of each category. Every label
// is exactly seven characters wide so that record headers align.
var categoryLabels = [NumCategories]string{
	Agglomerative: "AGGLOM ",
	Clust4j:       "CLUST4J",
	DBSCAN:        "DBSCAN ",
	KMedoids:      "KMEDOID",
	KMeans:        "K-MEANS",
	KNN:           "K-NN   ",
	MeanShift:     "MNSHIFT",
}

// categoryNames holds the canonical configuration name of each category.
var categoryNames = [NumCategories]string{
	Agglomerative: "AGGLOMERATIVE",
	Clust4j:       "CLUST4J",
	DBSCAN:        "DBSCAN",
	KMedoids:      "KMEDOIDS",
	KMeans:        "KMEANS",
	KNN:           "KNN",
	MeanShift:     "MEANSHIFT",
}

// String returns the canonical name of the category.
func (c Category) String() string {
	if !c.Valid() {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

// Label returns the fixed-width display label used in record headers.
func (c Category) Label() string {
	if !c.Valid() {
		return categoryLabels[Default]
	}
	return categoryLabels[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return int(c) < NumCategories
}

// Categories returns all defined categories in declaration order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory maps a case-insensitive canonical name to its
// Category. It is used when reading per-category switches from
// external configuration.
func ParseCategory(name string) (Category, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == upper {
			return Category(i), nil
		}
	}
	return 0, errors.Errorf("unknown log category: %q", name)
}
