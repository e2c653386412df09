package systems

import (
	"math"
	"testing"
)

func TestFlowLookupTotal(t *testing.T) {
	f := NewFlowField(24, 42, 0.18, 0.012, 0.35)

	// Every position in the unit square must yield a defined vector.
	const steps = 50
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			x := float64(i) / steps
			y := float64(j) / steps
			fx, fy := f.Lookup(x, y, 17)
			if math.IsNaN(fx) || math.IsNaN(fy) || math.IsInf(fx, 0) || math.IsInf(fy, 0) {
				t.Fatalf("Lookup(%v, %v) = (%v, %v), want finite", x, y, fx, fy)
			}
		}
	}
}

func TestFlowLookupOutOfBounds(t *testing.T) {
	f := NewFlowField(16, 7, 0.2, 0.01, 0.3)

	tests := []struct {
		name string
		x, y float64
	}{
		{"left of grid", -0.5, 0.5},
		{"right of grid", 1.5, 0.5},
		{"above grid", 0.5, -2},
		{"below grid", 0.5, 3},
		{"far corner", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, fy := f.Lookup(tt.x, tt.y, 0)
			if fx != 0 || fy != 0 {
				t.Errorf("Lookup(%v, %v) = (%v, %v), want zero vector", tt.x, tt.y, fx, fy)
			}
		})
	}
}

func TestFlowLookupDeterministic(t *testing.T) {
	a := NewFlowField(24, 99, 0.18, 0.012, 0.35)
	b := NewFlowField(24, 99, 0.18, 0.012, 0.35)

	ax, ay := a.Lookup(0.37, 0.81, 123)
	bx, by := b.Lookup(0.37, 0.81, 123)
	if ax != bx || ay != by {
		t.Errorf("same seed gave different vectors: (%v, %v) vs (%v, %v)", ax, ay, bx, by)
	}
}

func TestFlowBreathes(t *testing.T) {
	f := NewFlowField(24, 5, 0.18, 0.012, 0.35)

	x0, y0 := f.Lookup(0.5, 0.5, 0)
	x1, y1 := f.Lookup(0.5, 0.5, 200)
	if x0 == x1 && y0 == y1 {
		t.Error("flow vector did not change over time; breathing perturbation missing")
	}

	// Magnitude stays bounded by the cell strength regardless of tick.
	for tick := int32(0); tick < 1000; tick += 37 {
		fx, fy := f.Lookup(0.5, 0.5, tick)
		if mag := math.Hypot(fx, fy); mag > 1.0+1e-9 {
			t.Fatalf("flow magnitude %v at tick %d exceeds max cell strength", mag, tick)
		}
	}
}

func TestNoiseValueRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := NoiseValue(float64(i)*0.173, float64(i)*0.091, float64(i)*0.037)
		if v < 0 || v >= 1 {
			t.Fatalf("NoiseValue out of [0, 1): %v", v)
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	if NoiseValue(1.5, 2.5, 3.5) != NoiseValue(1.5, 2.5, 3.5) {
		t.Error("NoiseValue is not deterministic")
	}
	if NoiseSigned(0.2, 0.4, 0.6) != NoiseValue(0.2, 0.4, 0.6)*2-1 {
		t.Error("NoiseSigned does not match remapped NoiseValue")
	}
}
