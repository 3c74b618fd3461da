// File: control/metrics.go
//
// Runtime metrics collector for pool monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns a metric value and whether it is registered.
func (mr *MetricsRegistry) Get(key string) (any, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	v, ok := mr.metrics[key]
	return v, ok
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// Snapshot returns the latest metrics.
func (mr *MetricsRegistry) Snapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Keys returns all registered metric keys in sorted order.
func (mr *MetricsRegistry) Keys() []string {
	mr.mu.RLock()
	keys := lo.Keys(mr.metrics)
	mr.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// PublishPool writes one pool stats snapshot into the registry under
// "<name>.<field>" keys.
func PublishPool(mr *MetricsRegistry, name string, st api.PoolStats) {
	mr.Set(fmt.Sprintf("%s.in_use", name), st.InUse)
	mr.Set(fmt.Sprintf("%s.free", name), st.Free)
	mr.Set(fmt.Sprintf("%s.total_gets", name), st.TotalGets)
	mr.Set(fmt.Sprintf("%s.total_returns", name), st.TotalReturns)
	mr.Set(fmt.Sprintf("%s.coalesces", name), st.Coalesces)
	mr.Set(fmt.Sprintf("%s.efficiency", name), st.Efficiency)
	mr.Set(fmt.Sprintf("%s.fragmentation", name), st.Fragmentation)
}
