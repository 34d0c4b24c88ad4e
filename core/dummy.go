package core

// AnchorDummies prepends/appends k synthetic source/sink vertices so that
// the lifted k-mer graph has a unique source and sink and every
// source-to-sink path has length >= k.
//
// The source block is a linear chain s_1 -> s_2 -> ... -> s_k; the sink
// block is t_1 -> t_2 -> ... -> t_k. s_k fans out to every pre-existing
// in-degree-0 vertex; every pre-existing out-degree-0 vertex fans in to
// t_1. Dummy vertices carry Length 0, Density 0, and are their own
// single-element Chain (they are always stripped before reconstruction,
// so the chain value is never read).
//
// k must be >= 1. AnchorDummies must be called at most once per graph;
// calling it twice would anchor dummies onto dummies.
//
// Complexity: O(V + k). Thread-safe only insofar as the underlying
// AddVertex/AddEdge/Sources/Sinks calls are; callers must not mutate g
// concurrently with this call.
func (g *Graph) AnchorDummies(k int) (source, sink []Exon, err error) {
	if k < 1 {
		k = 1
	}

	starts := g.Sources()
	ends := g.Sinks()

	source = make([]Exon, k)
	sink = make([]Exon, k)

	// Dummy coordinates are strictly negative and pairwise distinct so
	// they never collide with each other or with a real exon.
	nextID := int64(-1)
	for i := 0; i < k; i++ {
		source[i] = Exon{Start: nextID, End: nextID}
		nextID--
	}
	for i := 0; i < k; i++ {
		sink[i] = Exon{Start: nextID, End: nextID}
		nextID--
	}

	addDummy := func(e Exon) error {
		return g.AddVertex(&Vertex{Exon: e, Chain: []Exon{e}})
	}
	for _, e := range source {
		if err := addDummy(e); err != nil {
			return nil, nil, err
		}
	}
	for _, e := range sink {
		if err := addDummy(e); err != nil {
			return nil, nil, err
		}
	}

	for i := 1; i < k; i++ {
		if err := g.AddEdge(source[i-1], source[i]); err != nil {
			return nil, nil, err
		}
	}
	for i := 1; i < k; i++ {
		if err := g.AddEdge(sink[i-1], sink[i]); err != nil {
			return nil, nil, err
		}
	}

	last := source[k-1]
	for _, n := range starts {
		if err := g.AddEdge(last, n); err != nil {
			return nil, nil, err
		}
	}
	first := sink[0]
	for _, n := range ends {
		if err := g.AddEdge(n, first); err != nil {
			return nil, nil, err
		}
	}

	return source, sink, nil
}
