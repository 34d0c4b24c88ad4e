package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborist/isoweave/assemble"
	"github.com/arborist/isoweave/attribute"
	"github.com/arborist/isoweave/core"
)

type AssembleSuite struct {
	suite.Suite
}

// linearGraph builds A -> B -> C, a single unambiguous isoform.
func (s *AssembleSuite) linearGraph() (*core.Graph, core.Exon, core.Exon, core.Exon) {
	g := core.NewGraph()
	a := core.Exon{Start: 0, End: 100}
	b := core.Exon{Start: 150, End: 250}
	c := core.Exon{Start: 300, End: 400}
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: a, Length: 100}))
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: b, Length: 100}))
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: c, Length: 100}))
	s.Require().NoError(g.AddEdge(a, b))
	s.Require().NoError(g.AddEdge(b, c))

	return g, a, b, c
}

// A single linear locus with one partial path produces exactly one
// isoform spanning the whole graph, with a fresh tx_id and the source's
// tss_id.
func (s *AssembleSuite) TestSingleLocusProducesOneIsoform() {
	g, a, b, c := s.linearGraph()
	counter := assemble.NewTxCounter(0)

	out, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, b, c}, Density: 10.0},
	}, 3, 0.5, 5, 0, counter)

	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal([]core.Exon{a, b, c}, out[0].Path)
	s.Equal(uint64(0), out[0].TxID)
	s.NotZero(out[0].TSSID)
}

// Two calls over disjoint graphs sharing one counter never collide on
// tx_id.
func (s *AssembleSuite) TestSharedCounterAllocatesDistinctTxIDs() {
	counter := assemble.NewTxCounter(0)

	g1, a1, b1, c1 := s.linearGraph()
	out1, err := assemble.Assemble(g1, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a1, b1, c1}, Density: 5.0},
	}, 3, 0.5, 5, 0, counter)
	s.Require().NoError(err)

	g2, a2, b2, c2 := s.linearGraph()
	out2, err := assemble.Assemble(g2, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a2, b2, c2}, Density: 5.0},
	}, 3, 0.5, 5, 0, counter)
	s.Require().NoError(err)

	s.Require().Len(out1, 1)
	s.Require().Len(out2, 1)
	s.NotEqual(out1[0].TxID, out2[0].TxID)
}

// EmptyEvidence: empty partial_paths returns an empty list, not an error,
// and never touches G.
func (s *AssembleSuite) TestEmptyEvidenceReturnsEmptyList() {
	g, _, _, _ := s.linearGraph()
	lenBefore := g.Len()
	counter := assemble.NewTxCounter(0)

	out, err := assemble.Assemble(g, core.Forward, nil, 3, 0.5, 5, 0, counter)

	s.Require().NoError(err)
	s.Empty(out)
	s.Equal(lenBefore, g.Len())
}

// InvalidInput: a cyclic G is rejected before any pipeline stage runs.
func (s *AssembleSuite) TestCyclicGraphRejected() {
	g := core.NewGraph()
	a, b := core.Exon{Start: 0, End: 10}, core.Exon{Start: 10, End: 20}
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: a, Length: 10}))
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: b, Length: 10}))
	s.Require().NoError(g.AddEdge(a, b))
	s.Require().NoError(g.AddEdge(b, a))
	counter := assemble.NewTxCounter(0)

	_, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, b}, Density: 1.0},
	}, 3, 0.5, 5, 0, counter)

	s.ErrorIs(err, assemble.ErrInvalidInput)
}

// InvalidInput: a negative density is rejected up front.
func (s *AssembleSuite) TestNegativeDensityRejected() {
	g, a, b, _ := s.linearGraph()
	counter := assemble.NewTxCounter(0)

	_, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, b}, Density: -1},
	}, 3, 0.5, 5, 0, counter)

	s.ErrorIs(err, assemble.ErrInvalidInput)
}

// InvalidInput: a partial path that is not a walk in G is rejected.
func (s *AssembleSuite) TestNonWalkPartialPathRejected() {
	g, a, _, c := s.linearGraph()
	counter := assemble.NewTxCounter(0)

	_, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, c}, Density: 1.0},
	}, 3, 0.5, 5, 0, counter)

	s.ErrorIs(err, assemble.ErrInvalidInput)
}

// ParameterClamped: an out-of-range fraction_major_path and kmax < 2 are
// silently clamped rather than rejected.
func (s *AssembleSuite) TestOutOfRangeParametersAreClamped() {
	g, a, b, c := s.linearGraph()
	counter := assemble.NewTxCounter(0)

	out, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, b, c}, Density: 10.0},
	}, 1, 7.0, 5, 0, counter)

	s.Require().NoError(err)
	s.Require().Len(out, 1)
}

// ResourceExhausted: a tiny vertex cap surfaces the budget error rather
// than returning a partial result.
func (s *AssembleSuite) TestResourceExhaustedSurfaced() {
	g, a, b, c := s.linearGraph()
	counter := assemble.NewTxCounter(0)

	_, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, b, c}, Density: 10.0},
	}, 3, 0.5, 5, 1, counter)

	s.ErrorIs(err, assemble.ErrResourceExhausted)
}

// A branching locus with unequal evidence ranks the higher-density
// branch first and can return both when maxPaths allows.
func (s *AssembleSuite) TestBranchingLocusRanksByDensity() {
	g := core.NewGraph()
	a := core.Exon{Start: 0, End: 100}
	b1 := core.Exon{Start: 100, End: 200}
	b2 := core.Exon{Start: 300, End: 400}
	c := core.Exon{Start: 500, End: 600}
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: a, Length: 100}))
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: b1, Length: 100}))
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: b2, Length: 100}))
	s.Require().NoError(g.AddVertex(&core.Vertex{Exon: c, Length: 100}))
	s.Require().NoError(g.AddEdge(a, b1))
	s.Require().NoError(g.AddEdge(a, b2))
	s.Require().NoError(g.AddEdge(b1, c))
	s.Require().NoError(g.AddEdge(b2, c))
	counter := assemble.NewTxCounter(0)

	out, err := assemble.Assemble(g, core.Forward, []attribute.PartialPath{
		{Path: []core.Exon{a, b1, c}, Density: 20.0},
		{Path: []core.Exon{a, b2, c}, Density: 4.0},
	}, 2, 0.0, 2, 0, counter)

	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.GreaterOrEqual(out[0].Density, out[1].Density)
}

func TestAssembleSuite(t *testing.T) {
	suite.Run(t, new(AssembleSuite))
}
