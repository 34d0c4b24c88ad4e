package assemble

import "sync/atomic"

// TxCounter allocates process-wide, monotonically increasing tx_id
// values. It is the only mutable state shared across concurrent
// Assemble calls, and is injected by the caller rather than held as
// package state, so tests and independent pipelines never share
// counters unless they choose to.
type TxCounter struct {
	next atomic.Uint64
}

// NewTxCounter returns a counter whose first allocated id is start; the
// caller's own configuration decides where numbering begins, defaulting
// to 0.
func NewTxCounter(start uint64) *TxCounter {
	c := &TxCounter{}
	c.next.Store(start)

	return c
}

// Next atomically allocates and returns the next tx_id.
func (c *TxCounter) Next() uint64 {
	return c.next.Add(1) - 1
}
