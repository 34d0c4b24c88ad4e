// Package pathfinder enumerates suboptimal source-to-sink paths: given
// K, it returns a ranked, deduplicated list of source-to-sink paths
// whose bottleneck density is within a caller-supplied fraction of the
// best path's. The aggregation (bottleneck) and search strategy
// (widest-path relaxation plus a Yen-style ranked deviation search) are
// this package's own choice among several that would satisfy the same
// four ranking guarantees.
package pathfinder

// Path is one source-to-sink walk in K, identified by its vertex indices
// in traversal order (inclusive of the dummy source/sink vertices), and
// its bottleneck density.
type Path struct {
	Vertices []int32
	Density  float64
}
