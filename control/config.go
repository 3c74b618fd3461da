// File: control/config.go
//
// Thread-safe configuration store with defaults, resilient typed reads,
// and reload listener propagation.
//
// Reads never fail: a missing or mistyped key falls back to the
// registered default, so a half-applied runtime update can degrade a
// tuning value but never take the consumer down.

package control

import (
	"sync"
)

// ConfigStore is a dynamic key/value map with atomic snapshot, default
// fallback, and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	defaults  map[string]any
	listeners []func()
}

// NewConfigStore initializes a store holding the given defaults.
func NewConfigStore(defaults map[string]any) *ConfigStore {
	d := make(map[string]any, len(defaults))
	for k, v := range defaults {
		d[k] = v
	}
	return &ConfigStore{
		config:   make(map[string]any),
		defaults: d,
	}
}

// Snapshot returns a copy of the effective configuration: defaults
// overlaid with every applied update.
func (cs *ConfigStore) Snapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.defaults)+len(cs.config))
	for k, v := range cs.defaults {
		out[k] = v
	}
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// Set merges new values and dispatches reload listeners.
func (cs *ConfigStore) Set(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers a listener invoked synchronously after every Set.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// Float reads a float64 key, tolerating int updates and falling back
// to the default (then to zero) when the key is absent or mistyped.
func (cs *ConfigStore) Float(key string) float64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := toFloat(cs.config[key]); ok {
		return v
	}
	if v, ok := toFloat(cs.defaults[key]); ok {
		return v
	}
	return 0
}

// Int reads an integer key with the same fallback rules as Float.
func (cs *ConfigStore) Int(key string) int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := toInt(cs.config[key]); ok {
		return v
	}
	if v, ok := toInt(cs.defaults[key]); ok {
		return v
	}
	return 0
}

// Bool reads a boolean key with default fallback.
func (cs *ConfigStore) Bool(key string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := cs.config[key].(bool); ok {
		return v
	}
	if v, ok := cs.defaults[key].(bool); ok {
		return v
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	}
	return 0, false
}
