package control_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/theSadeQ/dip-smc-pso-sub015/control"
)

func TestConfigStoreDefaults(t *testing.T) {
	cs := control.NewConfigStore(map[string]any{
		"pool.coalesce_threshold": 20.0,
		"pool.strict_returns":     false,
		"trials":                  100,
	})

	assert.Equal(t, 20.0, cs.Float("pool.coalesce_threshold"))
	assert.Equal(t, 100, cs.Int("trials"))
	assert.False(t, cs.Bool("pool.strict_returns"))

	// Unknown keys degrade to zero values, never panic.
	assert.Equal(t, 0.0, cs.Float("nope"))
	assert.Equal(t, 0, cs.Int("nope"))
	assert.False(t, cs.Bool("nope"))
}

func TestConfigStoreResilientReads(t *testing.T) {
	cs := control.NewConfigStore(map[string]any{"threshold": 20.0})

	// A mistyped update falls back to the registered default.
	cs.Set(map[string]any{"threshold": "oops"})
	assert.Equal(t, 20.0, cs.Float("threshold"))

	// Numeric cross-typing is tolerated.
	cs.Set(map[string]any{"threshold": 35})
	assert.Equal(t, 35.0, cs.Float("threshold"))
}

func TestConfigStoreReloadListeners(t *testing.T) {
	cs := control.NewConfigStore(nil)

	calls := 0
	cs.OnReload(func() { calls++ })
	cs.Set(map[string]any{"a": 1})
	cs.Set(map[string]any{"b": 2})
	assert.Equal(t, 2, calls)

	snap := cs.Snapshot()
	assert.Equal(t, 1, snap["a"].(int))
	assert.Equal(t, 2, snap["b"].(int))
}

func TestPoolOptionsFromStore(t *testing.T) {
	cs := control.NewConfigStore(control.PoolDefaults())
	cs.Set(map[string]any{
		control.KeyCoalesceThreshold: 50.0,
		control.KeyStrictReturns:     true,
	})

	opts := control.PoolOptions(cs)
	assert.Equal(t, 2, len(opts))
}
