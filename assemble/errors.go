package assemble

import "errors"

// ErrInvalidInput indicates G is not a DAG, or a partial path/vertex
// carried an invalid density.
var ErrInvalidInput = errors.New("assemble: invalid input")

// ErrResourceExhausted indicates the k-mer lift would exceed the
// caller's configured vertex cap.
var ErrResourceExhausted = errors.New("assemble: resource exhausted during k-mer lift")
