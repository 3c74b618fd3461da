// File: pool/shared.go
//
// Mutex-guarded pool for concurrent callers.
//
// One mutex around the whole pool, correctness first: block counts are
// small and contention rare in the originating workloads, so lock-free
// index management buys nothing here.

package pool

import (
	"sync"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
)

// SharedPool wraps a MemoryPool so multiple goroutines can check blocks
// in and out safely. The caller contract is unchanged: returned blocks
// are still borrowed, and two goroutines must not hold the same index.
type SharedPool struct {
	mu sync.Mutex
	p  *MemoryPool
}

// NewShared builds a MemoryPool and wraps it in one step.
func NewShared(shape api.Shape, numBlocks int, opts ...Opt) (*SharedPool, error) {
	p, err := New(shape, numBlocks, opts...)
	if err != nil {
		return nil, err
	}
	return &SharedPool{p: p}, nil
}

// Share wraps an existing pool. The inner pool must not be used
// directly afterwards.
func Share(p *MemoryPool) *SharedPool {
	return &SharedPool{p: p}
}

func (s *SharedPool) Get() (api.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Get()
}

func (s *SharedPool) Return(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Return(index)
}

func (s *SharedPool) Coalesce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Coalesce()
}

func (s *SharedPool) Fragmentation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Fragmentation()
}

func (s *SharedPool) Efficiency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Efficiency()
}

func (s *SharedPool) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reset()
}

func (s *SharedPool) Stats() api.PoolStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Stats()
}

func (s *SharedPool) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Close()
}

func (s *SharedPool) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.String()
}

var _ api.BlockPool = (*SharedPool)(nil)
