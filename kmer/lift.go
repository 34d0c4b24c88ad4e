package kmer

import (
	"encoding/binary"

	"github.com/arborist/isoweave/core"

	"github.com/pkg/errors"
)

// Build lifts g into its k-mer overlap graph K: every length-k walk in g
// becomes a K-vertex, and two K-vertices are joined by a K-edge when one's
// trailing (k-1)-mer equals the other's leading (k-1)-mer and g has an edge
// from the first one's last exon to the second one's last exon.
//
// Vertices are enumerated by an explicit-stack depth-first walk from
// every vertex of g (no recursion, to bound stack growth on deep
// chains). Edges are built without the O(|K|^2) pairwise comparison: a
// (k-1)-mer is used as a transient interning key to group K-vertices by
// shared prefix/suffix, then every (prefix-group, suffix-group) pair
// with equal key is cross-joined into edges.
//
// maxVertices bounds memory: Build returns ErrResourceExhausted as soon
// as the running vertex count would exceed it. A maxVertices of 0 means
// unbounded.
func Build(g *core.Graph, k int, maxVertices int) (*KGraph, error) {
	if k < 1 {
		return nil, ErrKTooSmall
	}

	kg := newKGraph(k, 1024)

	for _, v := range g.Vertices() {
		if err := enumerateWalks(g, kg, v.Exon, k, maxVertices); err != nil {
			return nil, err
		}
	}

	bySuffix := make(map[string][]int32, kg.NumVertices())
	byPrefix := make(map[string][]int32, kg.NumVertices())
	for i, tuple := range kg.Tuples {
		bySuffix[encodeTuple(tuple[1:])] = append(bySuffix[encodeTuple(tuple[1:])], int32(i))
		byPrefix[encodeTuple(tuple[:len(tuple)-1])] = append(byPrefix[encodeTuple(tuple[:len(tuple)-1])], int32(i))
	}
	for key, ends := range bySuffix {
		starts, ok := byPrefix[key]
		if !ok {
			continue
		}
		for _, u := range ends {
			for _, v := range starts {
				// For k >= 2 the shared (k-1)-mer already implies the G-edge
				// between the trailing exons; for k == 1 the overlap is empty,
				// so the edge is checked in g directly.
				if k == 1 {
					linked := false
					for _, n := range g.Successors(kg.Tuples[u][0]) {
						if n == kg.Tuples[v][0] {
							linked = true
							break
						}
					}
					if !linked {
						continue
					}
				}
				kg.addEdge(u, v)
			}
		}
	}

	source, err := uniqueInDegreeZero(kg)
	if err != nil {
		return nil, err
	}
	sink, err := uniqueOutDegreeZero(kg)
	if err != nil {
		return nil, err
	}
	kg.Source = source
	kg.Sink = sink

	return kg, nil
}

// enumerateWalks pushes every length-k forward walk of g starting at
// start onto kg, using an explicit stack rather than recursion.
func enumerateWalks(g *core.Graph, kg *KGraph, start core.Exon, k int, maxVertices int) error {
	type frame struct {
		walk []core.Exon
	}

	stack := []frame{{walk: []core.Exon{start}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(top.walk) == k {
			if maxVertices > 0 && kg.NumVertices()+1 > maxVertices {
				return errors.Wrapf(ErrResourceExhausted, "k=%d maxVertices=%d", k, maxVertices)
			}
			kg.addVertex(top.walk)
			continue
		}

		for _, succ := range g.Successors(top.walk[len(top.walk)-1]) {
			extended := make([]core.Exon, len(top.walk)+1)
			copy(extended, top.walk)
			extended[len(top.walk)] = succ
			stack = append(stack, frame{walk: extended})
		}
	}

	return nil
}

// encodeTuple packs an exon sequence into a comparable string key for
// the transient (k-1)-mer interning maps used during edge construction.
func encodeTuple(exons []core.Exon) string {
	buf := make([]byte, 16*len(exons))
	for i, e := range exons {
		binary.BigEndian.PutUint64(buf[16*i:], uint64(e.Start))
		binary.BigEndian.PutUint64(buf[16*i+8:], uint64(e.End))
	}

	return string(buf)
}

func uniqueInDegreeZero(kg *KGraph) (int32, error) {
	var found int32 = -1
	count := 0
	for i := range kg.Tuples {
		if len(kg.Pred[i]) == 0 {
			found = int32(i)
			count++
		}
	}
	if count != 1 {
		return -1, ErrNoSource
	}

	return found, nil
}

func uniqueOutDegreeZero(kg *KGraph) (int32, error) {
	var found int32 = -1
	count := 0
	for i := range kg.Tuples {
		if len(kg.Succ[i]) == 0 {
			found = int32(i)
			count++
		}
	}
	if count != 1 {
		return -1, ErrNoSink
	}

	return found, nil
}
