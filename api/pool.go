// File: api/pool.go
//
// Block pooling contracts for fixed-shape numeric buffers.
//
// A pool owns every buffer it hands out. Callers receive borrowed views:
// contents are stale on checkout (never zeroed on reuse), every obtained
// index must be returned exactly once, and a block must not be touched
// after its index has been returned.

package api

import "fmt"

// Shape describes the fixed dimensions shared by every block in a pool.
// Immutable after pool construction.
type Shape []int

// Len returns the number of elements a buffer of this shape holds.
// An empty shape has length zero.
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Valid reports whether every dimension is positive.
func (s Shape) Valid() bool {
	if len(s) == 0 {
		return false
	}
	for _, d := range s {
		if d <= 0 {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// Block is a borrowed handle to one pooled buffer.
type Block interface {
	// Index identifies the block within its pool, in [0, NumBlocks).
	// Pass it to BlockPool.Return when done.
	Index() int

	// Data is the buffer view. Overwrite before reading: contents are
	// whatever the previous holder left behind.
	Data() []float64

	// Shape returns a copy of the pool-wide block shape; mutating it
	// has no effect on the pool.
	Shape() Shape
}

// BlockPool manages a fixed population of equally-shaped buffers.
//
// Get and Return are O(1) outside of threshold-triggered coalescing.
// Implementations are not required to be safe for concurrent use; see
// pool.SharedPool for the mutex-guarded variant.
type BlockPool interface {
	// Get checks out a free block. ok is false on exhaustion (or after
	// Close) — an expected condition, not an error.
	Get() (blk Block, ok bool)

	// Return hands an index back to the pool. Fails with ErrInvalidIndex
	// for indices outside [0, NumBlocks) and ErrPoolClosed after Close.
	// May trigger coalescing as a side effect.
	Return(index int) error

	// Coalesce sorts the free-index list ascending so contiguous free
	// ranges are handed out in order. Bookkeeping only; no buffer data
	// moves.
	Coalesce()

	// Fragmentation reports non-contiguity of the free indices as a
	// percentage in [0, 100].
	Fragmentation() float64

	// Efficiency reports checked-out blocks over total blocks as a
	// percentage in [0, 100].
	Efficiency() float64

	// Reset makes every block available again without touching buffer
	// contents or identity.
	Reset()

	// Stats returns an accounting snapshot.
	Stats() PoolStats

	// Close releases the backing storage. Idempotent.
	Close() error
}

// PoolStats aggregates pool accounting for observability.
type PoolStats struct {
	NumBlocks     int
	InUse         int
	Free          int
	TotalGets     int64
	TotalReturns  int64
	Coalesces     int64
	Efficiency    float64
	Fragmentation float64
}

// ObjectPool provides generic pooling of transient Go objects that need
// no indexed bookkeeping.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}
