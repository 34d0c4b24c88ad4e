package pathfinder

import (
	"container/heap"
	"context"
	"math"

	"github.com/arborist/isoweave/kmer"
)

// FindSuboptimal returns at most maxPaths source-to-sink paths through
// kg, ranked by non-increasing bottleneck density: the first is a best
// (max-bottleneck) path, and every subsequent one is at least
// fractionMajorPath times the first's density, with no path repeated.
//
// fractionMajorPath is clamped into [0, 1] defensively even though
// callers are expected to supply it pre-validated.
func FindSuboptimal(kg *kmer.KGraph, fractionMajorPath float64, maxPaths int) ([]Path, error) {
	if kg.Source < 0 || kg.Sink < 0 {
		return nil, ErrNoSourceSink
	}
	if maxPaths < 1 {
		return nil, ErrInvalidMaxPaths
	}
	if fractionMajorPath < 0 {
		fractionMajorPath = 0
	}
	if fractionMajorPath > 1 {
		fractionMajorPath = 1
	}

	order, err := kg.TopoOrder(context.Background())
	if err != nil {
		return nil, err
	}
	posInOrder := make(map[int32]int, len(order))
	for i, v := range order {
		posInOrder[v] = i
	}

	dist, pred := widestPath(kg, order, posInOrder[kg.Source], kg.Source, nil, nil)
	if math.IsInf(dist[kg.Sink], -1) {
		return nil, ErrUnreachableSink
	}

	first := tracePath(pred, kg.Source, kg.Sink)
	firstDensity := dist[kg.Sink]
	threshold := fractionMajorPath * firstDensity

	accepted := []Path{{Vertices: first, Density: firstDensity}}
	seen := map[string]bool{pathKey(first): true}

	pq := &candidatePQ{kg: kg}
	heap.Init(pq)
	addDeviations(kg, order, posInOrder, accepted, first, pq, seen)

	for len(accepted) < maxPaths {
		if pq.Len() == 0 {
			break
		}

		cand := heap.Pop(pq).(*candidate)
		key := pathKey(cand.path)
		if seen[key] {
			continue
		}
		if cand.density < threshold {
			break
		}

		seen[key] = true
		accepted = append(accepted, Path{Vertices: cand.path, Density: cand.density})
		addDeviations(kg, order, posInOrder, accepted, cand.path, pq, seen)
	}

	return accepted, nil
}

// addDeviations generates every Yen-style deviation of basePath (one per
// spur node) and pushes those not already emitted onto pq. accepted is
// consulted to exclude edges that any already-emitted path sharing the
// same root prefix has already taken, so the same deviation is never
// offered twice from two different base paths.
func addDeviations(
	kg *kmer.KGraph,
	order []int32,
	posInOrder map[int32]int,
	accepted []Path,
	basePath []int32,
	pq *candidatePQ,
	seen map[string]bool,
) {
	for i := 0; i < len(basePath)-1; i++ {
		spurNode := basePath[i]
		rootPrefix := basePath[:i]

		excludeEdges := make(map[edgeKey]bool)
		for _, p := range accepted {
			if len(p.Vertices) <= i || !sliceEqualInt32(p.Vertices[:i], rootPrefix) {
				continue
			}
			excludeEdges[edgeKey{spurNode, p.Vertices[i+1]}] = true
		}

		excludeVertices := make(map[int32]bool, i)
		for _, v := range rootPrefix {
			excludeVertices[v] = true
		}

		dist, pred := widestPath(kg, order, posInOrder[spurNode], spurNode, excludeVertices, excludeEdges)
		if math.IsInf(dist[kg.Sink], -1) {
			continue
		}

		spurPath := tracePath(pred, spurNode, kg.Sink)
		total := make([]int32, 0, i+len(spurPath))
		total = append(total, rootPrefix...)
		total = append(total, spurPath...)

		if seen[pathKey(total)] {
			continue
		}

		density := dist[kg.Sink]
		if i > 0 {
			if rootDensity := pathBottleneck(kg, rootPrefix); rootDensity < density {
				density = rootDensity
			}
		}

		heap.Push(pq, &candidate{path: total, density: density})
	}
}

func sliceEqualInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
