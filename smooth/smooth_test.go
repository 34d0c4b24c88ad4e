package smooth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist/isoweave/attribute"
	"github.com/arborist/isoweave/core"
	"github.com/arborist/isoweave/kmer"
	"github.com/arborist/isoweave/smooth"
)

// On a linear locus whose single partial path covers the whole of K,
// smoothing leaves K's total density unchanged.
func TestSmoothConservationOnChain(t *testing.T) {
	g := core.NewGraph()
	a, b, c := core.Exon{Start: 0, End: 100}, core.Exon{Start: 100, End: 200}, core.Exon{Start: 200, End: 300}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 100, Density: 0}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: b, Length: 100, Density: 0}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: c, Length: 100, Density: 0}))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	_, _, err := g.AnchorDummies(2)
	require.NoError(t, err)

	kg, err := kmer.Build(g, 2, 0)
	require.NoError(t, err)

	err = attribute.Attribute(g, kg, []attribute.PartialPath{
		{Path: []core.Exon{a, b, c}, Density: 10.0},
	}, 2)
	require.NoError(t, err)

	beforeTotal := 0.0
	for _, d := range kg.Density {
		beforeTotal += d
	}

	err = smooth.Smooth(context.Background(), kg)
	require.NoError(t, err)

	afterTotal := 0.0
	for _, d := range kg.Density {
		afterTotal += d
	}

	// The whole K graph here is one source-to-sink chain and the extended
	// partial path covers all of it, so attribution puts its boundary
	// masses on K's source (smooth_rev) and sink (smooth_fwd). The source
	// has no predecessor and the sink no successor, so neither pass moves
	// any mass and the committed total equals the total before smoothing.
	require.InDelta(t, beforeTotal, afterTotal, 1e-9)
}

func TestSmoothLeavesIsolatedSourceSinkUnchanged(t *testing.T) {
	g := core.NewGraph()
	a := core.Exon{Start: 0, End: 100}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 100, Density: 0}))
	_, _, err := g.AnchorDummies(1)
	require.NoError(t, err)

	kg, err := kmer.Build(g, 1, 0)
	require.NoError(t, err)

	err = smooth.Smooth(context.Background(), kg)
	require.NoError(t, err)

	for _, d := range kg.Density {
		require.InDelta(t, 0.0, d, 1e-9)
	}
}
