// File: control/monitor.go
//
// Periodic pool sampler with bounded snapshot history.
//
// The monitor is a passive observer: it only calls Stats on the pool it
// watches, so a SharedPool can be sampled while simulation goroutines
// keep checking blocks in and out.

package control

import (
	"context"
	"sync"
	"time"

	"github.com/eapache/queue"
	"golang.org/x/time/rate"

	"github.com/theSadeQ/dip-smc-pso-sub015/api"
	"github.com/theSadeQ/dip-smc-pso-sub015/stats"
)

const defaultHistoryDepth = 256

// PoolSnapshot is one timestamped stats sample.
type PoolSnapshot struct {
	Time  time.Time
	Stats api.PoolStats
}

// PoolMonitor samples a BlockPool into a MetricsRegistry, keeping a
// bounded FIFO of recent snapshots and running fragmentation and
// efficiency series. Sampling frequency is capped so a misconfigured
// caller hammering Sample cannot turn monitoring into load.
type PoolMonitor struct {
	name    string
	pool    api.BlockPool
	reg     *MetricsRegistry
	limiter *rate.Limiter

	mu      sync.Mutex
	history *queue.Queue
	depth   int

	frag *stats.Collector
	eff  *stats.Collector
}

// MonitorOpt configures a PoolMonitor.
type MonitorOpt func(*PoolMonitor)

// HistoryDepth bounds the snapshot FIFO (default 256).
func HistoryDepth(n int) MonitorOpt {
	return func(m *PoolMonitor) {
		if n > 0 {
			m.depth = n
		}
	}
}

// SampleLimit caps accepted samples per second (default 100/s).
func SampleLimit(perSecond float64) MonitorOpt {
	return func(m *PoolMonitor) {
		m.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewPoolMonitor creates a monitor publishing under "<name>.*" keys.
func NewPoolMonitor(name string, p api.BlockPool, reg *MetricsRegistry, opts ...MonitorOpt) *PoolMonitor {
	m := &PoolMonitor{
		name:    name,
		pool:    p,
		reg:     reg,
		limiter: rate.NewLimiter(rate.Limit(100), 1),
		history: queue.New(),
		depth:   defaultHistoryDepth,
		frag:    stats.New(),
		eff:     stats.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Sample takes one snapshot now, publishes it, and records it in the
// history. Returns false when the rate cap rejected the sample.
func (m *PoolMonitor) Sample() (PoolSnapshot, bool) {
	if !m.limiter.Allow() {
		return PoolSnapshot{}, false
	}
	snap := PoolSnapshot{Time: time.Now(), Stats: m.pool.Stats()}
	PublishPool(m.reg, m.name, snap.Stats)

	m.mu.Lock()
	m.history.Add(snap)
	for m.history.Length() > m.depth {
		m.history.Remove()
	}
	m.mu.Unlock()

	m.frag.Add(snap.Stats.Fragmentation)
	m.eff.Add(snap.Stats.Efficiency)
	return snap, true
}

// Run samples at the given interval until ctx is cancelled.
func (m *PoolMonitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sample()
		}
	}
}

// History returns the retained snapshots, oldest first.
func (m *PoolMonitor) History() []PoolSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PoolSnapshot, 0, m.history.Length())
	for i := 0; i < m.history.Length(); i++ {
		out = append(out, m.history.Get(i).(PoolSnapshot))
	}
	return out
}

// Series returns the fragmentation and efficiency statistics
// accumulated over all accepted samples.
func (m *PoolMonitor) Series() (frag, eff *stats.Stats) {
	return m.frag.Stats(), m.eff.Stats()
}
