package assemble

import "github.com/arborist/isoweave/core"

// PathInfo is one enumerated isoform, ready for an external collaborator
// to serialize.
type PathInfo struct {
	Density float64
	TSSID   int
	TxID    uint64
	Path    []core.Exon
}
