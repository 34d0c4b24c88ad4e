package attribute

import "errors"

// ErrInvalidDensity indicates a partial path carried a negative or NaN
// density.
var ErrInvalidDensity = errors.New("attribute: partial path density must be a non-negative, non-NaN number")

// ErrEmptyPath indicates a partial path with no vertices was supplied.
var ErrEmptyPath = errors.New("attribute: partial path must have at least one vertex")

// ErrNoCandidates indicates a sub-k path could not be extrapolated to
// any k-mer (should not occur once core.AnchorDummies has run, since
// dummy anchoring guarantees k-length extensions exist in every
// direction).
var ErrNoCandidates = errors.New("attribute: no k-mer candidates found for sub-k partial path")
