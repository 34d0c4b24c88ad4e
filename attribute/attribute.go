package attribute

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/arborist/isoweave/core"
	"github.com/arborist/isoweave/kmer"
)

// Attribute extends, bins, and injects every partial path's density
// into kg. It mutates kg.Density, kg.SmoothFwd and kg.SmoothRev in
// place; kg.SmoothTmp is left untouched (smooth.Smooth owns that
// accumulator).
func Attribute(g *core.Graph, kg *kmer.KGraph, paths []PartialPath, k int) error {
	extended := make([]PartialPath, len(paths))
	for i, p := range paths {
		if len(p.Path) == 0 {
			return ErrEmptyPath
		}
		if math.IsNaN(p.Density) || p.Density < 0 {
			return ErrInvalidDensity
		}
		extended[i] = PartialPath{Path: extendLinear(g, p.Path), Density: p.Density}
	}

	bins := binByLength(extended, k)

	keys := make([]int, 0, len(bins))
	for kbin := range bins {
		keys = append(keys, kbin)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	for _, kbin := range keys {
		bin := bins[kbin]
		sortByDensityAscending(bin)

		// Consume in density-descending order: the bin is sorted
		// ascending, so iterate from the end.
		for i := len(bin) - 1; i >= 0; i-- {
			if err := injectOne(g, kg, bin[i], k); err != nil {
				return err
			}
		}
	}

	return nil
}

// binByLength groups paths by min(len(path), k).
func binByLength(paths []PartialPath, k int) map[int][]PartialPath {
	bins := make(map[int][]PartialPath)
	for _, p := range paths {
		kbin := len(p.Path)
		if kbin > k {
			kbin = k
		}
		bins[kbin] = append(bins[kbin], p)
	}

	return bins
}

func injectOne(g *core.Graph, kg *kmer.KGraph, p PartialPath, k int) error {
	if len(p.Path) >= k {
		return injectSlidingWindow(kg, p, k)
	}

	return injectExtrapolated(g, kg, p, k)
}

// injectSlidingWindow handles the len(p) >= k case: slide a window of
// size k along p, adding d to every window's density, plus boundary
// mass on the first window's smooth_rev and the last window's
// smooth_fwd.
func injectSlidingWindow(kg *kmer.KGraph, p PartialPath, k int) error {
	last := len(p.Path) - k
	for i := 0; i <= last; i++ {
		window := p.Path[i : i+k]
		idx, ok := kg.Lookup(window)
		if !ok {
			return ErrNoCandidates
		}
		kg.Density[idx] += p.Density
		if i == 0 {
			kg.SmoothRev[idx] += p.Density
		}
		if i == last {
			kg.SmoothFwd[idx] += p.Density
		}
	}

	return nil
}

// injectExtrapolated handles the len(p) < k case: extend p in both
// directions to the full candidate k-mer set M, then distribute d
// across M either equally (if M carries no existing density) or
// proportionally to each candidate's existing density.
func injectExtrapolated(g *core.Graph, kg *kmer.KGraph, p PartialPath, k int) error {
	l := k - len(p.Path)
	lRev := (l + 1) / 2
	lFwd := l / 2

	revExt := extendReverse(g, p.Path[0], lRev)
	fwdExt := extendForward(g, p.Path[len(p.Path)-1], lFwd)

	var candidates []int32
	for _, rp := range revExt {
		for _, fp := range fwdExt {
			tuple := make([]core.Exon, 0, k)
			tuple = append(tuple, rp...)
			tuple = append(tuple, p.Path...)
			tuple = append(tuple, fp...)
			idx, ok := kg.Lookup(tuple)
			if !ok {
				return ErrNoCandidates
			}
			candidates = append(candidates, idx)
		}
	}
	if len(candidates) == 0 {
		return ErrNoCandidates
	}
	// g's neighbour lists come in map order; fix the summation order by
	// canonical tuple order.
	sort.Slice(candidates, func(i, j int) bool {
		return lessPath(kg.Tuples[candidates[i]], kg.Tuples[candidates[j]])
	})

	densities := make([]float64, len(candidates))
	for i, idx := range candidates {
		densities[i] = kg.Density[idx]
	}
	total := floats.Sum(densities)

	if total == 0 {
		share := p.Density / float64(len(candidates))
		for _, idx := range candidates {
			kg.Density[idx] += share
			kg.SmoothFwd[idx] += share
			kg.SmoothRev[idx] += share
		}

		return nil
	}

	for i, idx := range candidates {
		adj := densities[i] / total * p.Density
		kg.Density[idx] += adj
		kg.SmoothFwd[idx] += adj
		kg.SmoothRev[idx] += adj
	}

	return nil
}
