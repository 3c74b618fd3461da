// Package stats implements incremental series statistics for pool
// telemetry (fragmentation and efficiency traces sampled over a run).
package stats

import (
	"math"
	"sync"
)

// Collector incrementally accumulates count, min, max, average,
// variance, and standard deviation via Add, using Welford's online
// algorithm so long monitoring runs never hold the series in memory.
// Reference: https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Welford's_online_algorithm
type Collector struct {
	mu    sync.Mutex
	count float64
	min   float64
	max   float64
	mean  float64
	m2    float64
}

// New returns a new statistics collector.
func New() *Collector {
	return &Collector{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

// Add accumulates x into the collected statistics.
func (c *Collector) Add(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count += 1.0
	if x < c.min {
		c.min = x
	}
	if x > c.max {
		c.max = x
	}
	delta := x - c.mean
	c.mean += delta / c.count
	c.m2 += delta * (x - c.mean)
}

// Reset discards everything accumulated so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.min = math.Inf(1)
	c.max = math.Inf(-1)
	c.mean = 0
	c.m2 = 0
}

// Stats is a processed snapshot of a Collector.
type Stats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
}

// Stats processes the collected statistics and returns them.
// An empty collector reports NaN for the moment-based fields.
func (c *Collector) Stats() *Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	avg := c.mean
	if c.count == 0 {
		avg = math.NaN()
	}
	v := c.m2 / c.count
	return &Stats{
		Count:  int(c.count),
		Min:    c.min,
		Max:    c.max,
		Avg:    avg,
		Var:    v,
		StdDev: math.Sqrt(v),
	}
}
