// File: control/settings.go
//
// Bridges the configuration store to pool construction options.

package control

import (
	"github.com/theSadeQ/dip-smc-pso-sub015/pool"
)

// Configuration keys understood by PoolOptions.
const (
	KeyCoalesceThreshold = "pool.coalesce_threshold"
	KeyStrictReturns     = "pool.strict_returns"
)

// PoolDefaults returns the default pool tuning, suitable for seeding a
// ConfigStore.
func PoolDefaults() map[string]any {
	return map[string]any{
		KeyCoalesceThreshold: pool.DefaultCoalesceThreshold,
		KeyStrictReturns:     false,
	}
}

// PoolOptions derives pool construction options from the store's
// current values.
func PoolOptions(cs *ConfigStore) []pool.Opt {
	return []pool.Opt{
		pool.CoalesceThreshold(cs.Float(KeyCoalesceThreshold)),
		pool.StrictReturns(cs.Bool(KeyStrictReturns)),
	}
}
