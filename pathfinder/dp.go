package pathfinder

import (
	"math"

	"github.com/arborist/isoweave/kmer"
)

// edgeKey identifies a directed K edge, used to exclude already-taken
// edges during the Yen-style deviation search.
type edgeKey struct{ u, v int32 }

// widestPath runs the widest-path (max-bottleneck) relaxation over
// order[startPos:], seeding dist[start] = vertexWeight(start). Vertices
// and edges named in excludeVertices/excludeEdges are skipped, so the
// same routine serves both the initial full-graph pass and every
// restricted deviation-search pass. Order must already be
// topologically sorted with a fixed tie order (kmer.KGraph.TopoOrder),
// so dist/pred are reproducible run to run.
func widestPath(
	kg *kmer.KGraph,
	order []int32,
	startPos int,
	start int32,
	excludeVertices map[int32]bool,
	excludeEdges map[edgeKey]bool,
) (dist []float64, pred []int32) {
	n := kg.NumVertices()
	dist = make([]float64, n)
	pred = make([]int32, n)
	for i := range dist {
		dist[i] = math.Inf(-1)
		pred[i] = -1
	}
	dist[start] = vertexWeight(kg, start)

	for i := startPos; i < len(order); i++ {
		u := order[i]
		if excludeVertices[u] {
			continue
		}
		if math.IsInf(dist[u], -1) {
			continue
		}

		for _, v := range kg.SortedSucc(u) {
			if excludeVertices[v] {
				continue
			}
			if excludeEdges[edgeKey{u, v}] {
				continue
			}

			w := vertexWeight(kg, v)
			cand := dist[u]
			if w < cand {
				cand = w
			}
			if cand > dist[v] {
				dist[v] = cand
				pred[v] = u
			}
		}
	}

	return dist, pred
}

// tracePath walks pred back from sink to start and returns the path in
// forward order.
func tracePath(pred []int32, start, sink int32) []int32 {
	rev := []int32{sink}
	for rev[len(rev)-1] != start {
		v := pred[rev[len(rev)-1]]
		rev = append(rev, v)
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// pathBottleneck computes the minimum vertexWeight along an explicit
// vertex sequence, used to score root segments during the deviation
// search without re-running the full DP.
func pathBottleneck(kg *kmer.KGraph, path []int32) float64 {
	best := math.Inf(1)
	for _, v := range path {
		w := vertexWeight(kg, v)
		if w < best {
			best = w
		}
	}

	return best
}
