// Package telemetry collects frame-time statistics over tick windows and
// writes them to structured CSV output.
package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes one window of tick durations.
type WindowStats struct {
	WindowEnd   int32   `csv:"window_end"`
	Ticks       int     `csv:"ticks"`
	MeanMS      float64 `csv:"mean_ms"`
	P50MS       float64 `csv:"p50_ms"`
	P95MS       float64 `csv:"p95_ms"`
	MaxMS       float64 `csv:"max_ms"`
	TicksPerSec float64 `csv:"ticks_per_sec"`
}

// Collector accumulates per-tick durations until a window fills.
type Collector struct {
	windowTicks int
	samples     []float64 // milliseconds
	windowStart time.Time
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: windowTicks,
		samples:     make([]float64, 0, windowTicks),
	}
}

// Record adds one tick duration.
func (c *Collector) Record(d time.Duration) {
	if len(c.samples) == 0 {
		c.windowStart = time.Now()
	}
	c.samples = append(c.samples, float64(d)/float64(time.Millisecond))
}

// Ready reports whether a full window is buffered.
func (c *Collector) Ready() bool {
	return len(c.samples) >= c.windowTicks
}

// Flush computes the window summary and starts a new window. Flushing an
// empty window returns zero stats.
func (c *Collector) Flush(windowEnd int32) WindowStats {
	if len(c.samples) == 0 {
		return WindowStats{WindowEnd: windowEnd}
	}

	sorted := append([]float64(nil), c.samples...)
	sort.Float64s(sorted)

	elapsed := time.Since(c.windowStart).Seconds()
	ticksPerSec := 0.0
	if elapsed > 0 {
		ticksPerSec = float64(len(sorted)) / elapsed
	}

	stats := WindowStats{
		WindowEnd:   windowEnd,
		Ticks:       len(sorted),
		MeanMS:      stat.Mean(sorted, nil),
		P50MS:       stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95MS:       stat.Quantile(0.95, stat.Empirical, sorted, nil),
		MaxMS:       sorted[len(sorted)-1],
		TicksPerSec: ticksPerSec,
	}

	c.samples = c.samples[:0]
	return stats
}
