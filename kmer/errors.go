package kmer

import "errors"

// ErrKTooSmall indicates k < 1; the lift requires at least a 1-mer.
var ErrKTooSmall = errors.New("kmer: k must be >= 1")

// ErrResourceExhausted indicates the lift would produce more K-vertices
// than the caller's configured cap.
var ErrResourceExhausted = errors.New("kmer: vertex cap exceeded during lift")

// ErrNoSource indicates the lifted graph does not have exactly one
// in-degree-0 vertex (it has none, or several), which should be
// impossible once core.AnchorDummies has run.
var ErrNoSource = errors.New("kmer: lifted graph has no source vertex")

// ErrNoSink indicates the lifted graph does not have exactly one
// out-degree-0 vertex (it has none, or several).
var ErrNoSink = errors.New("kmer: lifted graph has no sink vertex")
