// Package kmer builds and stores K, the de Bruijn-style overlap graph
// whose vertices are length-k walks in a transcript graph G.
//
// K is stored as dense, index-keyed arrays rather than a hash map of
// heap-allocated tuple keys: Tuples[i] is the i-th k-mer's exon
// sequence, Density/SmoothFwd/SmoothRev/SmoothTmp[i] are its numeric
// accumulators, and Succ/Pred[i] are its neighbour indices. Build interns
// (k-1)-mer keys in transient hash maps to wire the edges; one further
// map, from each k-mer's encoded tuple to its index, is kept for Lookup.
package kmer

import "github.com/arborist/isoweave/core"

// KGraph is the k-mer overlap graph K.
type KGraph struct {
	K int

	// Tuples[i] is the ordered k-tuple of G-vertices the i-th K-vertex
	// represents.
	Tuples [][]core.Exon

	Density   []float64
	SmoothFwd []float64
	SmoothRev []float64
	SmoothTmp []float64

	// Succ[i]/Pred[i] list the indices of i's out-/in-neighbours.
	Succ [][]int32
	Pred [][]int32

	// Source and Sink are the unique in-degree-0 / out-degree-0 vertex
	// indices. Set to -1 until Build locates them.
	Source int32
	Sink   int32

	// index maps an encoded exon tuple to its vertex index. Populated by
	// Build; used by Lookup so attribute.Attribute can find the exact
	// K-vertex for a sliding window or an extrapolation candidate
	// without a linear scan.
	index map[string]int32
}

// Lookup returns the vertex index for the given exon tuple, if present.
func (k *KGraph) Lookup(tuple []core.Exon) (int32, bool) {
	idx, ok := k.index[encodeTuple(tuple)]
	return idx, ok
}

// NumVertices returns |K|.
func (k *KGraph) NumVertices() int {
	return len(k.Tuples)
}

// newKGraph allocates a KGraph with capacity for capHint vertices.
func newKGraph(k int, capHint int) *KGraph {
	return &KGraph{
		K:         k,
		Tuples:    make([][]core.Exon, 0, capHint),
		Density:   make([]float64, 0, capHint),
		SmoothFwd: make([]float64, 0, capHint),
		SmoothRev: make([]float64, 0, capHint),
		SmoothTmp: make([]float64, 0, capHint),
		Succ:      make([][]int32, 0, capHint),
		Pred:      make([][]int32, 0, capHint),
		Source:    -1,
		Sink:      -1,
		index:     make(map[string]int32, capHint),
	}
}

// addVertex appends a new K-vertex for tuple and returns its index.
func (k *KGraph) addVertex(tuple []core.Exon) int32 {
	idx := int32(len(k.Tuples))
	k.Tuples = append(k.Tuples, tuple)
	k.Density = append(k.Density, 0)
	k.SmoothFwd = append(k.SmoothFwd, 0)
	k.SmoothRev = append(k.SmoothRev, 0)
	k.SmoothTmp = append(k.SmoothTmp, 0)
	k.Succ = append(k.Succ, nil)
	k.Pred = append(k.Pred, nil)
	k.index[encodeTuple(tuple)] = idx

	return idx
}

func (k *KGraph) addEdge(u, v int32) {
	k.Succ[u] = append(k.Succ[u], v)
	k.Pred[v] = append(k.Pred[v], u)
}
