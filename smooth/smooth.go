// Package smooth redistributes boundary density mass accumulated during
// attribution across K's branches and joins, so that conserved flow is
// preserved across the graph while the relative ordering of
// high-density paths is unaffected.
package smooth

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/arborist/isoweave/kmer"
)

// Smooth runs the two-pass forward/reverse density smoothing over kg
// and commits the result into kg.Density. kg.SmoothFwd and kg.SmoothRev
// are read but not cleared; Smooth is their last reader, and downstream
// code must not read those accumulators after this commit.
//
// Both passes iterate kg in a topological order computed once up front,
// and fold over each vertex's neighbours in canonical tuple order, so
// that floating-point summation — which is not associative — is
// deterministic run to run.
func Smooth(ctx context.Context, kg *kmer.KGraph) error {
	order, err := kg.TopoOrder(ctx)
	if err != nil {
		return err
	}

	forwardPass(kg, order)
	reversePass(kg, order)

	for i := range kg.Density {
		kg.Density[i] += kg.SmoothTmp[i]
	}

	return nil
}

// forwardPass propagates kg.SmoothFwd mass from each vertex to its
// successors, proportionally to the pre-smooth density field (read-only
// during the pass), or equally if that field sums to zero.
func forwardPass(kg *kmer.KGraph, order []int32) {
	for _, u := range order {
		s := kg.SmoothFwd[u]
		succ := kg.SortedSucc(u)
		if len(succ) == 0 {
			continue
		}
		distribute(kg, s, succ, kg.SmoothFwd)
	}
}

// reversePass propagates kg.SmoothRev mass from each vertex to its
// predecessors (i.e. forward on the edge-reversed graph).
func reversePass(kg *kmer.KGraph, order []int32) {
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		s := kg.SmoothRev[u]
		pred := kg.SortedPred(u)
		if len(pred) == 0 {
			continue
		}
		distribute(kg, s, pred, kg.SmoothRev)
	}
}

// distribute adds mass s across neighbours, proportionally to their
// current density (or equally if all are zero), accumulating into both
// kg.SmoothTmp and the pass-specific accumulator so further propagation
// downstream sees the smoothed mass too.
func distribute(kg *kmer.KGraph, mass float64, neighbours []int32, accum []float64) {
	densities := make([]float64, len(neighbours))
	for i, v := range neighbours {
		densities[i] = kg.Density[v]
	}
	total := floats.Sum(densities)

	if total == 0 {
		share := mass / float64(len(neighbours))
		for _, v := range neighbours {
			kg.SmoothTmp[v] += share
			accum[v] += share
		}

		return
	}

	for i, v := range neighbours {
		adj := densities[i] / total * mass
		kg.SmoothTmp[v] += adj
		accum[v] += adj
	}
}
