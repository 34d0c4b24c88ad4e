// Package attribute projects partial-path read-density evidence onto
// the k-mer overlap graph K: extending paths through unambiguous
// chains, binning them by length, and injecting density in
// density-descending order within each bin — sliding a window for paths
// at least k long, extrapolating via a Cartesian product of graph
// extensions for paths shorter than k.
package attribute

import "github.com/arborist/isoweave/core"

// PartialPath is an observed walk in G with its associated read density.
type PartialPath struct {
	Path    []core.Exon
	Density float64
}
