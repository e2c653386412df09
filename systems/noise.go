// Package systems implements the motion model behind the background effects:
// noise, flow fields, smoothing, speed tracking, and per-effect particle state.
package systems

import "math"

// Hash noise coefficients. The rendered motion is defined by this exact
// formula; changing coefficients changes the look, not just the quality.
const (
	hashAX = 12.9898
	hashAY = 78.233
	hashAT = 0.719
	hashAS = 43758.5453

	hashBX = 39.3468
	hashBT = 11.135
	hashBS = 2473.1393

	hashCY = 27.1717
	hashCT = 7.151
	hashCS = 9631.2471
)

// NoiseValue returns deterministic pseudo-noise in [0, 1) from a sinusoidal
// hash of (x, y, t): a sum of scaled sine terms with the fractional part
// taken. Not gradient noise; cheap, stateless, and fully determined by its
// inputs.
func NoiseValue(x, y, t float64) float64 {
	s := math.Sin(x*hashAX+y*hashAY+t*hashAT)*hashAS +
		math.Sin(x*hashBX+t*hashBT)*hashBS +
		math.Sin(y*hashCY+t*hashCT)*hashCS
	return s - math.Floor(s)
}

// NoiseSigned returns the hash noise remapped to [-1, 1).
func NoiseSigned(x, y, t float64) float64 {
	return NoiseValue(x, y, t)*2 - 1
}

// NoiseDrift returns a smooth low-frequency drift term in [-1, 1]. Unlike
// NoiseValue it keeps the raw sine sum, so it is continuous in all inputs.
func NoiseDrift(x, y, t float64) float64 {
	return (math.Sin(x*1.7+t*0.31) +
		math.Sin(y*2.3+t*0.23) +
		math.Sin((x+y)*0.9+t*0.41)) / 3
}
