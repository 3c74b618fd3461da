// File: pool/objpool.go
//
// Generic object pooling for transient simulation objects (trajectory
// samples, scratch records) that need recycling but not the indexed
// bookkeeping of MemoryPool.

package pool

import (
	"sync"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
)

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ api.ObjectPool[int] = (*SyncPool[int])(nil)
