package stats_test

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/theSadeQ/dip-smc-pso-sub015/stats"
)

func TestCollector(t *testing.T) {
	c := stats.New()
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		c.Add(x)
	}

	st := c.Stats()
	assert.Equal(t, 8, st.Count)
	assert.Equal(t, 2.0, st.Min)
	assert.Equal(t, 9.0, st.Max)
	assert.Equal(t, 5.0, st.Avg)
	assert.True(t, math.Abs(st.Var-4.0) < 1e-12)
	assert.True(t, math.Abs(st.StdDev-2.0) < 1e-12)
}

func TestCollectorEmpty(t *testing.T) {
	st := stats.New().Stats()
	assert.Equal(t, 0, st.Count)
	assert.True(t, math.IsNaN(st.Avg))
}

func TestCollectorReset(t *testing.T) {
	c := stats.New()
	c.Add(10)
	c.Reset()
	assert.Equal(t, 0, c.Stats().Count)

	c.Add(3)
	st := c.Stats()
	assert.Equal(t, 1, st.Count)
	assert.Equal(t, 3.0, st.Min)
	assert.Equal(t, 3.0, st.Max)
	assert.Equal(t, 3.0, st.Avg)
}
