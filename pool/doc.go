// Package pool implements fixed-shape block pooling for tight numeric
// simulation loops.
//
// MemoryPool pre-allocates its whole block population once and recycles
// it for the lifetime of the pool, trading a one-time upfront cost for
// zero per-iteration heap allocation. Free indices are tracked in a
// LIFO list with threshold-gated coalescing to keep free ranges
// contiguous. SharedPool adds a mutex for concurrent callers; SyncPool
// covers transient objects with no indexed bookkeeping.
// See memorypool.go, shared.go, objpool.go for implementation details.
package pool
