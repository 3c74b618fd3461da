package pool_test

import (
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
	"github.com/theSadeQ/dip-smc-pso-sub015/pool"
)

func TestSharedPoolConcurrentCheckout(t *testing.T) {
	const (
		numBlocks = 16
		workers   = 8
		rounds    = 2000
	)

	sp, err := pool.NewShared(api.Shape{4}, numBlocks)
	assert.NoError(t, err)
	defer sp.Close()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				blk, ok := sp.Get()
				if !ok {
					continue // exhausted, try again next round
				}
				// Scribble a worker-specific value; if two goroutines
				// ever hold the same index the final check may race
				// under -race.
				blk.Data()[0] = float64(w)
				if err := sp.Return(blk.Index()); err != nil {
					t.Errorf("return: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	st := sp.Stats()
	assert.Equal(t, 0, st.InUse)
	assert.Equal(t, numBlocks, st.Free)
	assert.Equal(t, 0.0, sp.Efficiency())

	// Every index must still be checkoutable exactly once.
	seen := map[int]bool{}
	for i := 0; i < numBlocks; i++ {
		blk, ok := sp.Get()
		assert.True(t, ok)
		assert.False(t, seen[blk.Index()])
		seen[blk.Index()] = true
	}
	_, ok := sp.Get()
	assert.False(t, ok)
}

func TestSharedPoolDelegates(t *testing.T) {
	inner, err := pool.New(api.Shape{2}, 6)
	assert.NoError(t, err)
	sp := pool.Share(inner)
	defer sp.Close()

	blk, ok := sp.Get()
	assert.True(t, ok)
	assert.Equal(t, 2, len(blk.Data()))
	assert.NoError(t, sp.Return(blk.Index()))

	sp.Coalesce()
	sp.Reset()
	assert.Equal(t, 6, sp.Stats().Free)
	assert.Equal(t, 0.0, sp.Fragmentation())
}
