// Package reconstruct turns a ranked k-mer path from pathfinder back into
// an ordered, strand-normalized exon list.
package reconstruct

import (
	"github.com/arborist/isoweave/core"
	"github.com/arborist/isoweave/kmer"
)

// Reconstruct unrolls path (a sequence of K-vertex indices) back into the
// exon sequence it names in G, in five steps:
//
//  1. Unroll: the first k-mer contributes all k of its exons; each later
//     k-mer contributes only its last exon.
//  2. Strip dummies: drop every exon AnchorDummies synthesized.
//  3. Expand chains: replace each remaining exon with G's Chain for it.
//  4. Strand-normalize: reverse the sequence for the reverse strand, so a
//     path whose exons run from higher to lower coordinates comes out in
//     increasing-coordinate order (the sequence is reversed, not sorted).
//  5. Merge adjacent: collapse consecutive exons where the previous End
//     equals the next Start.
func Reconstruct(g *core.Graph, strand core.Strand, path []int32, k *kmer.KGraph) ([]core.Exon, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	unrolled := unroll(k, path)
	stripped := stripDummies(unrolled)

	expanded, err := expandChains(g, stripped)
	if err != nil {
		return nil, err
	}

	if strand == core.Reverse {
		reverse(expanded)
	}

	return mergeAdjacent(expanded), nil
}

func unroll(k *kmer.KGraph, path []int32) []core.Exon {
	first := k.Tuples[path[0]]
	out := make([]core.Exon, len(first), len(first)+len(path)-1)
	copy(out, first)

	for i := 1; i < len(path); i++ {
		tuple := k.Tuples[path[i]]
		out = append(out, tuple[len(tuple)-1])
	}

	return out
}

func stripDummies(exons []core.Exon) []core.Exon {
	out := make([]core.Exon, 0, len(exons))
	for _, e := range exons {
		if !e.IsDummy() {
			out = append(out, e)
		}
	}

	return out
}

func expandChains(g *core.Graph, exons []core.Exon) ([]core.Exon, error) {
	out := make([]core.Exon, 0, len(exons))
	for _, e := range exons {
		v := g.Vertex(e)
		if v == nil {
			return nil, ErrMissingVertex
		}
		out = append(out, v.Chain...)
	}

	return out, nil
}

func reverse(exons []core.Exon) {
	for i, j := 0, len(exons)-1; i < j; i, j = i+1, j-1 {
		exons[i], exons[j] = exons[j], exons[i]
	}
}

func mergeAdjacent(exons []core.Exon) []core.Exon {
	if len(exons) == 0 {
		return exons
	}

	out := make([]core.Exon, 0, len(exons))
	out = append(out, exons[0])

	for _, e := range exons[1:] {
		last := &out[len(out)-1]
		if last.End == e.Start {
			last.End = e.End
			continue
		}
		out = append(out, e)
	}

	return out
}
