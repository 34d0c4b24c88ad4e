package kmer

import "github.com/twotwotwo/sorts"

// tupleOrder is a sort.Interface over a slice of K-vertex indices,
// ordered by the canonical exon-tuple order of the vertices they name.
// Used wherever the pipeline needs a fixed, reproducible vertex order so
// that floating-point accumulation in smooth and the relaxation order in
// pathfinder do not depend on map iteration order.
//
// Sorted with github.com/twotwotwo/sorts, the same parallel quicksort
// the reference k-mer toolkit in this domain uses for its own sort-heavy
// binary-record passes: MaxProcs governs how many goroutines it uses,
// defaulting to runtime.NumCPU().
type tupleOrder struct {
	kg  *KGraph
	idx []int32
}

func (t tupleOrder) Len() int { return len(t.idx) }

func (t tupleOrder) Less(i, j int) bool {
	a, b := t.kg.Tuples[t.idx[i]], t.kg.Tuples[t.idx[j]]
	for p := 0; p < len(a) && p < len(b); p++ {
		if a[p] != b[p] {
			return a[p].Less(b[p])
		}
	}

	return len(a) < len(b)
}

func (t tupleOrder) Swap(i, j int) { t.idx[i], t.idx[j] = t.idx[j], t.idx[i] }

// sortIndicesByTuple sorts idx in place by canonical tuple order.
func sortIndicesByTuple(kg *KGraph, idx []int32) {
	sorts.Quicksort(tupleOrder{kg: kg, idx: idx})
}

// SortedSucc returns v's out-neighbours in canonical tuple order, so
// callers that fold over them (e.g. smooth.Smooth) accumulate
// floating-point sums in a fixed, reproducible order.
func (k *KGraph) SortedSucc(v int32) []int32 {
	out := append([]int32(nil), k.Succ[v]...)
	sortIndicesByTuple(k, out)

	return out
}

// SortedPred returns v's in-neighbours in canonical tuple order.
func (k *KGraph) SortedPred(v int32) []int32 {
	out := append([]int32(nil), k.Pred[v]...)
	sortIndicesByTuple(k, out)

	return out
}
