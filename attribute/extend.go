package attribute

import "github.com/arborist/isoweave/core"

// extendLinear lengthens a partial path through its unambiguous
// neighbourhood: while the first vertex has exactly one predecessor,
// prepend it; while the last vertex has exactly one successor, append
// it. This avoids spurious over-extrapolation of short evidence before
// binning.
func extendLinear(g *core.Graph, path []core.Exon) []core.Exon {
	out := append([]core.Exon(nil), path...)

	for {
		preds := g.Predecessors(out[0])
		if len(preds) != 1 {
			break
		}
		out = append([]core.Exon{preds[0]}, out...)
	}
	for {
		succs := g.Successors(out[len(out)-1])
		if len(succs) != 1 {
			break
		}
		out = append(out, succs[0])
	}

	return out
}

// extendReverse enumerates every length-`length` walk in g ending
// immediately before seed (i.e. every path of predecessors reaching
// back `length` steps from seed), returned with seed excluded, oldest
// vertex first. Uses an explicit stack, mirroring kmer's walk
// enumeration.
func extendReverse(g *core.Graph, seed core.Exon, length int) [][]core.Exon {
	if length == 0 {
		return [][]core.Exon{{}}
	}

	var out [][]core.Exon
	stack := [][]core.Exon{{seed}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(path) == length+1 {
			out = append(out, append([]core.Exon(nil), path[:len(path)-1]...))
			continue
		}
		for _, pred := range g.Predecessors(path[0]) {
			extended := make([]core.Exon, len(path)+1)
			extended[0] = pred
			copy(extended[1:], path)
			stack = append(stack, extended)
		}
	}

	return out
}

// extendForward enumerates every length-`length` walk in g starting
// immediately after seed, returned with seed excluded.
func extendForward(g *core.Graph, seed core.Exon, length int) [][]core.Exon {
	if length == 0 {
		return [][]core.Exon{{}}
	}

	var out [][]core.Exon
	stack := [][]core.Exon{{seed}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(path) == length+1 {
			out = append(out, append([]core.Exon(nil), path[1:]...))
			continue
		}
		for _, succ := range g.Successors(path[len(path)-1]) {
			extended := make([]core.Exon, len(path)+1)
			copy(extended, path)
			extended[len(path)] = succ
			stack = append(stack, extended)
		}
	}

	return out
}
