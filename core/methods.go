package core

import "math"

// AddVertex inserts v into the graph. If a vertex with the same Exon
// already exists this is a no-op and ErrVertexExists is returned so
// callers can distinguish "already present" from "newly added" without
// a separate HasVertex probe.
//
// Validates that real vertices have Length >= 1 and a non-negative,
// non-NaN Density.
//
// Complexity: O(1). Thread-safe: acquires a write lock.
func (g *Graph) AddVertex(v *Vertex) error {
	if math.IsNaN(v.Density) {
		return ErrNaNDensity
	}
	if v.Density < 0 {
		return ErrNegativeDensity
	}
	if !v.Exon.IsDummy() && v.Length < 1 {
		return ErrNegativeLength
	}
	if len(v.Chain) == 0 {
		v.Chain = []Exon{v.Exon}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[v.Exon]; exists {
		return ErrVertexExists
	}
	g.vertices[v.Exon] = v
	g.succ[v.Exon] = make(map[Exon]struct{})
	g.pred[v.Exon] = make(map[Exon]struct{})

	return nil
}

// AddEdge creates an edge from → to. Both endpoints must already exist
// via AddVertex; ErrVertexNotFound is returned otherwise, since (unlike
// the generic graph this module is descended from) G's vertices carry
// required biological attributes that cannot be auto-defaulted.
//
// Complexity: O(1). Thread-safe: acquires a write lock.
func (g *Graph) AddEdge(from, to Exon) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}

	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}

	return nil
}

// HasVertex reports whether e is present in the graph.
// Thread-safe: acquires a read lock.
func (g *Graph) HasVertex(e Exon) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[e]
	return ok
}

// Vertex returns the vertex stored for e, or nil if absent.
// Thread-safe: acquires a read lock.
func (g *Graph) Vertex(e Exon) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[e]
}

// Successors returns the out-neighbours of e in no particular order.
// Returns nil if e is not present.
// Thread-safe: acquires a read lock.
func (g *Graph) Successors(e Exon) []Exon {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.succ[e]
	if !ok {
		return nil
	}
	out := make([]Exon, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}

	return out
}

// Predecessors returns the in-neighbours of e in no particular order.
// Returns nil if e is not present.
// Thread-safe: acquires a read lock.
func (g *Graph) Predecessors(e Exon) []Exon {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.pred[e]
	if !ok {
		return nil
	}
	out := make([]Exon, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}

	return out
}

// InDegree returns the number of distinct predecessors of e.
// Thread-safe: acquires a read lock.
func (g *Graph) InDegree(e Exon) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pred[e])
}

// OutDegree returns the number of distinct successors of e.
// Thread-safe: acquires a read lock.
func (g *Graph) OutDegree(e Exon) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ[e])
}

// Vertices returns every vertex currently in the graph, in no particular
// order. Thread-safe: acquires a read lock.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}

	return out
}

// Len reports the number of vertices in the graph.
// Thread-safe: acquires a read lock.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Sources returns every vertex with in-degree 0 (TSS candidates).
// Thread-safe: acquires a read lock internally per call.
func (g *Graph) Sources() []Exon {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Exon
	for e := range g.vertices {
		if len(g.pred[e]) == 0 {
			out = append(out, e)
		}
	}

	return out
}

// Sinks returns every vertex with out-degree 0 (TES candidates).
// Thread-safe: acquires a read lock internally per call.
func (g *Graph) Sinks() []Exon {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Exon
	for e := range g.vertices {
		if len(g.succ[e]) == 0 {
			out = append(out, e)
		}
	}

	return out
}
