package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(5)

	for i := 0; i < 4; i++ {
		c.Record(time.Millisecond)
		if c.Ready() {
			t.Fatalf("collector ready after %d of 5 samples", i+1)
		}
	}
	c.Record(time.Millisecond)
	if !c.Ready() {
		t.Fatal("collector not ready after full window")
	}

	stats := c.Flush(100)
	if stats.Ticks != 5 {
		t.Errorf("ticks = %d, want 5", stats.Ticks)
	}
	if stats.WindowEnd != 100 {
		t.Errorf("window end = %d, want 100", stats.WindowEnd)
	}
	if c.Ready() {
		t.Error("collector still ready after flush")
	}
}

func TestCollectorStats(t *testing.T) {
	c := NewCollector(10)

	// 1ms..10ms
	for i := 1; i <= 10; i++ {
		c.Record(time.Duration(i) * time.Millisecond)
	}

	stats := c.Flush(10)
	if math.Abs(stats.MeanMS-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", stats.MeanMS)
	}
	if stats.MaxMS != 10 {
		t.Errorf("max = %v, want 10", stats.MaxMS)
	}
	if stats.P50MS < 5 || stats.P50MS > 6 {
		t.Errorf("p50 = %v, want within [5, 6]", stats.P50MS)
	}
	if stats.P95MS < 9 || stats.P95MS > 10 {
		t.Errorf("p95 = %v, want within [9, 10]", stats.P95MS)
	}
	if stats.TicksPerSec <= 0 {
		t.Errorf("ticks/sec = %v, want positive", stats.TicksPerSec)
	}
}

func TestCollectorEmptyFlush(t *testing.T) {
	c := NewCollector(10)

	stats := c.Flush(7)
	if stats.Ticks != 0 || stats.MeanMS != 0 || stats.MaxMS != 0 {
		t.Errorf("empty flush produced non-zero stats: %+v", stats)
	}
}

func TestNilOutputManager(t *testing.T) {
	var om *OutputManager

	// Disabled output must be a safe no-op throughout.
	if err := om.WriteFrames(WindowStats{}); err != nil {
		t.Errorf("nil WriteFrames returned error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close returned error: %v", err)
	}
}

func TestOutputManagerWritesFrames(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteFrames(WindowStats{WindowEnd: 300, Ticks: 300, MeanMS: 1.2}); err != nil {
		t.Fatalf("first WriteFrames: %v", err)
	}
	if err := om.WriteFrames(WindowStats{WindowEnd: 600, Ticks: 300, MeanMS: 1.3}); err != nil {
		t.Fatalf("second WriteFrames: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
