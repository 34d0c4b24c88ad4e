package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates AddVertex was called twice for the same Exon.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeLength indicates a real (non-dummy) vertex was given a
	// length less than 1.
	ErrNegativeLength = errors.New("core: real vertex must have length >= 1")

	// ErrNegativeDensity indicates a vertex was given a negative density.
	ErrNegativeDensity = errors.New("core: density must be >= 0")

	// ErrNaNDensity indicates a vertex carried a NaN density.
	ErrNaNDensity = errors.New("core: density must not be NaN")

	// ErrCycle indicates the graph contains a cycle and therefore is not
	// the DAG the pipeline requires.
	ErrCycle = errors.New("core: graph contains a cycle")
)
