// File: pool/memorypool.go
//
// Adaptive block pool with threshold-gated coalescing.
//
// Single-threaded by contract: no locking, no blocking operations. Wrap
// in SharedPool (shared.go) when multiple goroutines need the pool.

package pool

import (
	"fmt"
	"slices"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
)

// DefaultCoalesceThreshold is the fragmentation percentage above which
// Return triggers an automatic Coalesce. Coalescing is reactive, not
// proactive: sorting on every return would waste CPU at low
// fragmentation, while an unsorted free list costs iteration locality.
const DefaultCoalesceThreshold = 20.0

// MemoryPool owns a fixed population of equally-shaped float64 buffers
// carved out of one contiguous slab.
//
// Every index is in exactly one of the free list or the allocated set
// at any observable point. Buffers are zero-filled once at construction
// and never zeroed again: a checked-out block carries whatever its
// previous holder wrote.
type MemoryPool struct {
	shape     api.Shape
	numBlocks int

	slab   *slab
	blocks [][]float64

	// available is popped from the tail so Get stays O(1).
	available []int
	allocated map[int]struct{}

	threshold float64
	strict    bool
	closed    bool

	totalGets    int64
	totalReturns int64
	coalesces    int64
}

// Opt configures a MemoryPool at construction.
type Opt func(*MemoryPool)

// CoalesceThreshold sets the fragmentation percentage that triggers
// automatic coalescing on Return. Values of 100 or more effectively
// disable the automatic trigger.
func CoalesceThreshold(pct float64) Opt {
	return func(p *MemoryPool) { p.threshold = pct }
}

// StrictReturns upgrades double returns and returns of never-allocated
// indices from silent no-ops to ErrUnknownIndex failures. The lenient
// default matches the established caller contract; flipping this is an
// explicit opt-in for catching bookkeeping bugs in consumers.
func StrictReturns(strict bool) Opt {
	return func(p *MemoryPool) { p.strict = strict }
}

// New eagerly allocates numBlocks zero-filled buffers of the given
// shape. Construction is the only allocation the pool ever performs;
// long-running loops (optimization runs with thousands of iterations)
// then recycle the same population via Get/Return/Reset.
func New(shape api.Shape, numBlocks int, opts ...Opt) (*MemoryPool, error) {
	if !shape.Valid() {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument,
			"block shape dimensions must be positive").WithContext("shape", shape.String())
	}
	if numBlocks <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument,
			"block count must be positive").WithContext("num_blocks", numBlocks)
	}

	blockLen := shape.Len()
	s, err := allocSlab(numBlocks * blockLen)
	if err != nil {
		return nil, fmt.Errorf("slab allocation: %w", err)
	}

	p := &MemoryPool{
		shape:     slices.Clone(shape),
		numBlocks: numBlocks,
		slab:      s,
		blocks:    make([][]float64, numBlocks),
		available: make([]int, numBlocks),
		allocated: make(map[int]struct{}, numBlocks),
		threshold: DefaultCoalesceThreshold,
	}
	data := s.floats()
	for i := 0; i < numBlocks; i++ {
		p.blocks[i] = data[i*blockLen : (i+1)*blockLen : (i+1)*blockLen]
		p.available[i] = i
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// block is the borrowed handle handed to callers.
type block struct {
	pool  *MemoryPool
	index int
}

func (b *block) Index() int       { return b.index }
func (b *block) Data() []float64  { return b.pool.blocks[b.index] }
func (b *block) Shape() api.Shape { return slices.Clone(b.pool.shape) }

// Get checks out a free block in O(1), popping the most recently freed
// index first. Exhaustion (and a closed pool) report ok=false rather
// than an error; callers fall back to ad-hoc allocation or wait.
func (p *MemoryPool) Get() (api.Block, bool) {
	if p.closed || len(p.available) == 0 {
		return nil, false
	}
	idx := p.available[len(p.available)-1]
	p.available = p.available[:len(p.available)-1]
	p.allocated[idx] = struct{}{}
	p.totalGets++
	return &block{pool: p, index: idx}, true
}

// Return hands index back to the pool.
//
// Out-of-range indices always fail with ErrInvalidIndex, whatever the
// pool state. Returning an index that is not checked out is a no-op
// under the default policy and ErrUnknownIndex under StrictReturns.
// Crossing the fragmentation threshold triggers Coalesce before Return
// comes back.
func (p *MemoryPool) Return(index int) error {
	if index < 0 || index >= p.numBlocks {
		return api.NewError(api.ErrCodeInvalidIndex, api.ErrInvalidIndex,
			"block index out of range").
			WithContext("index", index).
			WithContext("num_blocks", p.numBlocks)
	}
	if p.closed {
		return api.NewError(api.ErrCodePoolClosed, api.ErrPoolClosed,
			"return on closed pool").WithContext("index", index)
	}
	if _, ok := p.allocated[index]; !ok {
		if p.strict {
			return api.NewError(api.ErrCodeUnknownIndex, api.ErrUnknownIndex,
				"block not currently allocated").WithContext("index", index)
		}
		return nil
	}
	delete(p.allocated, index)
	p.available = append(p.available, index)
	p.totalReturns++

	if p.Fragmentation() > p.threshold {
		p.Coalesce()
	}
	return nil
}

// Coalesce sorts the free list ascending. That is the whole
// defragmentation step: no buffer data moves, only bookkeeping order
// changes, so contiguous free ranges are handed out together again.
// O(n log n) in the free count; cheap at typical pool sizes.
func (p *MemoryPool) Coalesce() {
	slices.Sort(p.available)
	p.coalesces++
}

// Fragmentation measures non-contiguity of the currently free indices:
// the count of adjacent sorted pairs differing by more than one,
// normalized by the maximum possible gap count, as a percentage.
// Zero or one free blocks admit no gaps and report 0. The computation
// works on a sorted copy and never mutates the free list.
func (p *MemoryPool) Fragmentation() float64 {
	if len(p.available) <= 1 {
		return 0.0
	}
	sorted := slices.Clone(p.available)
	slices.Sort(sorted)
	gaps := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] > 1 {
			gaps++
		}
	}
	return float64(gaps) / float64(len(sorted)-1) * 100.0
}

// Efficiency reports checked-out blocks over the total population as a
// percentage.
func (p *MemoryPool) Efficiency() float64 {
	return float64(len(p.allocated)) / float64(p.numBlocks) * 100.0
}

// Reset restores the fully-available state without touching buffer
// contents or identity, so the upfront allocation is reused across
// independent runs (between simulation trials, between optimizer
// restarts).
func (p *MemoryPool) Reset() {
	p.available = p.available[:0]
	for i := 0; i < p.numBlocks; i++ {
		p.available = append(p.available, i)
	}
	clear(p.allocated)
}

// NumBlocks returns the fixed population size.
func (p *MemoryPool) NumBlocks() int { return p.numBlocks }

// Shape returns a copy of the pool-wide block shape; the descriptor
// itself stays immutable for the pool's lifetime.
func (p *MemoryPool) Shape() api.Shape { return slices.Clone(p.shape) }

// Stats returns an accounting snapshot.
func (p *MemoryPool) Stats() api.PoolStats {
	return api.PoolStats{
		NumBlocks:     p.numBlocks,
		InUse:         len(p.allocated),
		Free:          len(p.available),
		TotalGets:     p.totalGets,
		TotalReturns:  p.totalReturns,
		Coalesces:     p.coalesces,
		Efficiency:    p.Efficiency(),
		Fragmentation: p.Fragmentation(),
	}
}

// String is a diagnostic one-liner for logs; not a stable format.
func (p *MemoryPool) String() string {
	return fmt.Sprintf("MemoryPool(shape=%s, blocks=%d, allocated=%d, available=%d, efficiency=%.1f%%, fragmentation=%.1f%%)",
		p.shape, p.numBlocks, len(p.allocated), len(p.available),
		p.Efficiency(), p.Fragmentation())
}

// Close releases the backing slab. Idempotent. A closed pool reports
// exhaustion from Get and ErrPoolClosed from Return; blocks still held
// by callers must not be touched after Close.
func (p *MemoryPool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.slab.release()
}

var _ api.BlockPool = (*MemoryPool)(nil)
