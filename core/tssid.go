package core

import "sort"

// EnsureTSSIDs assigns a distinct positive tss_id to every in-degree-0
// vertex that does not already carry one (TSSID == 0 means unset). G is
// expected to arrive with tss_id already set on its TSS candidates; this
// exists so a caller that only assigned some of them still gets a
// valid, deterministic id on every source before dummy anchoring fans
// dummies in and those vertices stop being sources.
//
// Must be called before AnchorDummies: once dummies are anchored, the
// original sources gain a predecessor and are no longer identifiable via
// Sources().
func (g *Graph) EnsureTSSIDs() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sources []Exon
	for e := range g.vertices {
		if len(g.pred[e]) == 0 {
			sources = append(sources, e)
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Less(sources[j]) })

	for _, e := range sources {
		v := g.vertices[e]
		if v.TSSID != 0 {
			continue
		}
		g.nextTSSID++
		v.TSSID = g.nextTSSID
	}
}
