package reconstruct

import "errors"

// ErrEmptyPath indicates an empty k-mer path was passed to Reconstruct.
var ErrEmptyPath = errors.New("reconstruct: empty k-mer path")

// ErrMissingVertex indicates a non-dummy exon named by the k-mer path has
// no corresponding vertex in G, which should be impossible since every
// K-vertex is built from G's own vertices.
var ErrMissingVertex = errors.New("reconstruct: exon has no vertex in G")
