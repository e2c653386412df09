package systems

// Smoothed is an exponential-approach filter: each Step moves the current
// value a fixed fraction of the way toward the target. Used for pointer
// smoothing and the speed multiplier instead of ad hoc current/target pairs.
type Smoothed struct {
	Value  float64
	Target float64
	Rate   float64
}

// NewSmoothed creates a filter at rest on the initial value.
func NewSmoothed(initial, rate float64) Smoothed {
	return Smoothed{Value: initial, Target: initial, Rate: rate}
}

// Step advances the filter by one tick.
func (s *Smoothed) Step() {
	s.Value += (s.Target - s.Value) * s.Rate
}

// SmoothedPoint smooths a 2D position toward a target written asynchronously
// (pointer events land on Target*, the render tick reads Value*). One-tick
// staleness is acceptable.
type SmoothedPoint struct {
	X Smoothed
	Y Smoothed
}

// NewSmoothedPoint creates a point filter at rest on (x, y).
func NewSmoothedPoint(x, y, rate float64) SmoothedPoint {
	return SmoothedPoint{
		X: NewSmoothed(x, rate),
		Y: NewSmoothed(y, rate),
	}
}

// SetTarget updates the target position.
func (p *SmoothedPoint) SetTarget(x, y float64) {
	p.X.Target = x
	p.Y.Target = y
}

// Step advances both axes.
func (p *SmoothedPoint) Step() {
	p.X.Step()
	p.Y.Step()
}
