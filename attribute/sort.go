package attribute

import (
	"github.com/twotwotwo/sorts"

	"github.com/arborist/isoweave/core"
)

// byDensity is a sort.Interface that orders partial paths ascending by
// density, breaking ties by the path's own lexicographic exon order so
// that the parallel quicksort below — which, unlike sort.Stable, makes
// no stability guarantee — still produces the same bin ordering run to
// run.
type byDensity []PartialPath

func (b byDensity) Len() int { return len(b) }

func (b byDensity) Less(i, j int) bool {
	if b[i].Density != b[j].Density {
		return b[i].Density < b[j].Density
	}
	return lessPath(b[i].Path, b[j].Path)
}

func (b byDensity) Swap(i, j int) { b[i], b[j] = b[j], b[i] }

func lessPath(a, b []core.Exon) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}

	return len(a) < len(b)
}

// sortByDensityAscending sorts paths in place, ascending by density.
func sortByDensityAscending(paths []PartialPath) {
	sorts.Quicksort(byDensity(paths))
}
