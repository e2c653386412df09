package systems

import (
	"math"
	"testing"
)

func TestSpeedTargetBounds(t *testing.T) {
	tests := []struct {
		name    string
		scroll  float64
		pointer float64
	}{
		{"zero input", 0, 0},
		{"small scroll", 0.05, 0},
		{"small pointer", 0, 0.1},
		{"combined", 0.3, 0.2},
		{"large burst", 10, 10},
		{"negative scroll", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpeedTracker(0.08, 0.02, 3, 4)
			s.Observe(tt.scroll, tt.pointer)
			if s.Target() < 1 || s.Target() > 5 {
				t.Errorf("target = %v, want within [1, 5]", s.Target())
			}
		})
	}
}

func TestSpeedDecayToOne(t *testing.T) {
	s := NewSpeedTracker(0.08, 0.02, 3, 4)

	// Elevated live multiplier with the target already back at rest
	s.live = 3.0

	// Zero velocity input sustained for 100 ticks
	for i := 0; i < 100; i++ {
		s.Observe(0, 0)
		s.Step()
	}

	if math.Abs(s.Value()-1.0) > 0.01 {
		t.Errorf("live multiplier = %v after 100 idle ticks, want within 0.01 of 1.0", s.Value())
	}
}

func TestSpeedRampUp(t *testing.T) {
	s := NewSpeedTracker(0.08, 0.02, 3, 4)

	// A burst of activity should raise the target immediately and pull the
	// live value up within a few ticks.
	s.Observe(0, 2.0)
	if s.Target() != 5 {
		t.Errorf("target after large burst = %v, want capped at 5", s.Target())
	}

	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Value() <= 1.5 {
		t.Errorf("live multiplier = %v after ramp, want > 1.5", s.Value())
	}
}

func TestSpeedNeverBelowOne(t *testing.T) {
	s := NewSpeedTracker(0.08, 0.02, 3, 4)

	for i := 0; i < 500; i++ {
		if i%50 == 0 {
			s.Observe(0, 1.2)
		} else {
			s.Observe(0, 0)
		}
		s.Step()
		if s.Value() < 1.0-1e-9 {
			t.Fatalf("live multiplier dropped below 1 at tick %d: %v", i, s.Value())
		}
	}
}

func TestSmoothedConverges(t *testing.T) {
	s := NewSmoothed(0, 0.08)
	s.Target = 10

	for i := 0; i < 200; i++ {
		s.Step()
	}
	if math.Abs(s.Value-10) > 0.01 {
		t.Errorf("smoothed value = %v, want within 0.01 of 10", s.Value)
	}
}
