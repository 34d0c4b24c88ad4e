package pathfinder

import (
	"math"

	"github.com/arborist/isoweave/kmer"
)

// vertexWeight is the per-vertex quantity the bottleneck aggregation
// minimizes over. K-vertices whose tuple is entirely dummy exons receive
// density during attribution only when a partial path's linear
// extension reaches through the dummy anchors, so they can carry zero
// density; treating that as their weight would force the bottleneck of
// every path through them to zero. Those vertices are excluded from the
// bottleneck instead:
// their weight is +Inf, so they never constrain min().
func vertexWeight(kg *kmer.KGraph, v int32) float64 {
	allDummy := true
	for _, e := range kg.Tuples[v] {
		if !e.IsDummy() {
			allDummy = false
			break
		}
	}
	if allDummy {
		return math.Inf(1)
	}

	return kg.Density[v]
}
