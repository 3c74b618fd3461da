package control_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
	"github.com/theSadeQ/dip-smc-pso-sub015/control"
)

func TestMetricsRegistry(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Set("b", 2)
	mr.Set("a", 1)

	v, ok := mr.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v.(int))

	_, ok = mr.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, mr.Keys())
	assert.False(t, mr.Updated().IsZero())

	snap := mr.Snapshot()
	snap["a"] = 99 // snapshot is a copy
	v, _ = mr.Get("a")
	assert.Equal(t, 1, v.(int))
}

func TestPublishPool(t *testing.T) {
	mr := control.NewMetricsRegistry()
	control.PublishPool(mr, "pool", api.PoolStats{
		NumBlocks:     10,
		InUse:         4,
		Free:          6,
		TotalGets:     7,
		TotalReturns:  3,
		Coalesces:     1,
		Efficiency:    40.0,
		Fragmentation: 20.0,
	})

	v, ok := mr.Get("pool.efficiency")
	assert.True(t, ok)
	assert.Equal(t, 40.0, v.(float64))

	v, ok = mr.Get("pool.in_use")
	assert.True(t, ok)
	assert.Equal(t, 4, v.(int))

	v, ok = mr.Get("pool.coalesces")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(int64))
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })

	out := dp.DumpState()
	assert.Equal(t, 42, out["answer"].(int))
}
