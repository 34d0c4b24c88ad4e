package pathfinder

import (
	"github.com/arborist/isoweave/kmer"
)

// candidate is one not-yet-emitted deviation path waiting in the
// candidate heap, keyed by its path bottleneck density and carrying the
// full vertex sequence rather than a single vertex.
type candidate struct {
	path    []int32
	density float64
}

// candidatePQ is a max-heap of whole candidate paths ordered by density
// descending, ties broken by canonical tuple order of the path, so
// popping the next-best candidate is deterministic regardless of push
// order.
type candidatePQ struct {
	kg    *kmer.KGraph
	items []*candidate
}

func (pq *candidatePQ) Len() int { return len(pq.items) }

func (pq *candidatePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.density != b.density {
		return a.density > b.density
	}

	return lessPath(pq.kg, a.path, b.path)
}

func (pq *candidatePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *candidatePQ) Push(x interface{}) { pq.items = append(pq.items, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// lessPath orders two vertex sequences by the lexicographic order of
// the exon tuples they name, falling back to length. Used to break heap
// ties; emitted paths are deduplicated by pathKey.
func lessPath(kg *kmer.KGraph, a, b []int32) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		ta, tb := kg.Tuples[a[i]], kg.Tuples[b[i]]
		for p := 0; p < len(ta) && p < len(tb); p++ {
			if ta[p] != tb[p] {
				return ta[p].Less(tb[p])
			}
		}
		if len(ta) != len(tb) {
			return len(ta) < len(tb)
		}
	}

	return len(a) < len(b)
}

func pathKey(a []int32) string {
	buf := make([]byte, 0, len(a)*4)
	for _, v := range a {
		buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}

	return string(buf)
}
