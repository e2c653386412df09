package systems

import "math"

// SpeedTracker derives a global animation speed multiplier from recent
// scroll and pointer movement. Activity ramps the multiplier up quickly
// (the live value chases a raised target) while the target itself decays
// slowly back toward 1, so bursts of input produce a fast attack and a
// long release.
type SpeedTracker struct {
	live   float64
	target float64

	rampRate  float64 // live -> target approach per tick
	decayRate float64 // target -> 1 decay per tick
	gain      float64 // velocity to target gain
	cap       float64 // max target excess over 1
}

// NewSpeedTracker creates a tracker at rest (multiplier 1).
func NewSpeedTracker(rampRate, decayRate, gain, cap float64) *SpeedTracker {
	return &SpeedTracker{
		live:      1,
		target:    1,
		rampRate:  rampRate,
		decayRate: decayRate,
		gain:      gain,
		cap:       cap,
	}
}

// Observe feeds one tick's input velocities (normalized per-tick deltas).
// The target is raise-only here; decay happens in Step.
func (s *SpeedTracker) Observe(scrollDelta, pointerDelta float64) {
	combined := math.Abs(scrollDelta) + math.Abs(pointerDelta)
	candidate := 1 + math.Min(combined*s.gain, s.cap)
	if candidate > s.target {
		s.target = candidate
	}
}

// Step advances the two-stage filter by one tick.
func (s *SpeedTracker) Step() {
	s.target += (1 - s.target) * s.decayRate
	s.live += (s.target - s.live) * s.rampRate
}

// Value returns the live multiplier. Always >= 1 given the target floor.
func (s *SpeedTracker) Value() float64 {
	return s.live
}

// Target returns the current target multiplier, in [1, 1+cap].
func (s *SpeedTracker) Target() float64 {
	return s.target
}
