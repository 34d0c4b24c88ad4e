package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist/isoweave/core"
)

func linearGraph(t *testing.T) (*core.Graph, core.Exon, core.Exon, core.Exon) {
	t.Helper()
	g := core.NewGraph()
	a, b, c := core.Exon{Start: 0, End: 100}, core.Exon{Start: 100, End: 200}, core.Exon{Start: 200, End: 300}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 100, Density: 10}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: b, Length: 100, Density: 10}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: c, Length: 100, Density: 10}))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	return g, a, b, c
}

func TestAnchorDummiesBasic(t *testing.T) {
	g, a, _, c := linearGraph(t)

	source, sink, err := g.AnchorDummies(2)
	require.NoError(t, err)
	require.Len(t, source, 2)
	require.Len(t, sink, 2)

	// Source block is a linear chain ending with a fan-out to every
	// original in-degree-0 vertex.
	require.Contains(t, g.Successors(source[0]), source[1])
	require.Contains(t, g.Successors(source[1]), a)

	// Sink block is a linear chain starting with a fan-in from every
	// original out-degree-0 vertex.
	require.Contains(t, g.Successors(c), sink[0])
	require.Contains(t, g.Successors(sink[0]), sink[1])

	for _, d := range append(source, sink...) {
		require.True(t, d.IsDummy())
		v := g.Vertex(d)
		require.NotNil(t, v)
		require.Zero(t, v.Length)
		require.Zero(t, v.Density)
	}

	require.NoError(t, g.ValidateDAG(context.Background()))
}

func TestAnchorDummiesMultipleSources(t *testing.T) {
	g := core.NewGraph()
	a := core.Exon{Start: 0, End: 10}
	b := core.Exon{Start: 10, End: 20}
	c := core.Exon{Start: 100, End: 110}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 10, Density: 1}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: b, Length: 10, Density: 1}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: c, Length: 10, Density: 1}))
	// a and c are both TSS candidates (in-degree 0); b is a TES candidate only.
	require.NoError(t, g.AddEdge(a, b))

	source, _, err := g.AnchorDummies(3)
	require.NoError(t, err)
	require.Contains(t, g.Successors(source[2]), a)
	require.Contains(t, g.Successors(source[2]), c)
}

func TestEnsureTSSIDsAssignsDistinctIDs(t *testing.T) {
	g := core.NewGraph()
	a := core.Exon{Start: 0, End: 10}
	b := core.Exon{Start: 10, End: 20}
	c := core.Exon{Start: 100, End: 110}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 10}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: b, Length: 10}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: c, Length: 10}))
	require.NoError(t, g.AddEdge(a, b))

	g.EnsureTSSIDs()

	require.NotZero(t, g.Vertex(a).TSSID)
	require.NotZero(t, g.Vertex(c).TSSID)
	require.NotEqual(t, g.Vertex(a).TSSID, g.Vertex(c).TSSID)
	require.Zero(t, g.Vertex(b).TSSID)
}

func TestEnsureTSSIDsLeavesExistingIDsAlone(t *testing.T) {
	g := core.NewGraph()
	a := core.Exon{Start: 0, End: 10}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 10, TSSID: 42}))

	g.EnsureTSSIDs()

	require.Equal(t, 42, g.Vertex(a).TSSID)
}

func TestValidateDAGDetectsCycle(t *testing.T) {
	g := core.NewGraph()
	a, b := core.Exon{Start: 0, End: 10}, core.Exon{Start: 10, End: 20}
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: a, Length: 10, Density: 1}))
	require.NoError(t, g.AddVertex(&core.Vertex{Exon: b, Length: 10, Density: 1}))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, a))

	require.ErrorIs(t, g.ValidateDAG(context.Background()), core.ErrCycle)
}
