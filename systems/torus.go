package systems

import (
	"math"
	"math/rand"

	"github.com/spillwave/backdrop/components"
)

// twoPi for angular wrapping.
const twoPi = math.Pi * 2

// WalkerParams are the behavioral constants of torus walkers.
type WalkerParams struct {
	RouteInterval int32   // ticks between direction changes
	RouteTurn     float64 // max random turn per re-route, radians
	BaseStep      float64 // base angular speed per tick
}

// MorphedRadii returns the torus radii at a tick. Both radii breathe on
// offset sine waves so the surface slowly changes shape without any stored
// morph state.
func MorphedRadii(tick int32, major, minor, morphAmp, morphFreq float64) (R, r float64) {
	t := float64(tick) * morphFreq
	R = major * (1 + morphAmp*math.Sin(t))
	r = minor * (1 + morphAmp*math.Sin(t*1.7+1.3))
	return R, r
}

// TorusPoint maps surface angles (u around the ring, v around the tube) to
// a 3D point with the torus centered on the origin.
func TorusPoint(u, v, major, minor float64) (x, y, z float64) {
	cu, su := math.Cos(u), math.Sin(u)
	cv, sv := math.Cos(v), math.Sin(v)

	x = (major + minor*cv) * cu
	y = (major + minor*cv) * su
	z = minor * sv
	return x, y, z
}

// SpawnWalker initializes a walker at a random surface position with a
// random initial direction.
func SpawnWalker(rng *rand.Rand, params WalkerParams) (components.Surface, components.Glow, components.Route) {
	heading := rng.Float64() * twoPi
	step := params.BaseStep * (0.6 + rng.Float64()*0.8)

	surf := components.Surface{
		U:  float32(rng.Float64() * twoPi),
		V:  float32(rng.Float64() * twoPi),
		DU: float32(math.Cos(heading) * step),
		DV: float32(math.Sin(heading) * step * 2), // tube angle advances faster
	}
	glow := components.Glow{
		BaseAlpha: float32(0.35 + rng.Float64()*0.4),
		Phase:     float32(rng.Float64() * twoPi),
		Hue:       float32(190 + rng.Float64()*70),
		Size:      float32(1.2 + rng.Float64()*1.6),
	}
	route := components.Route{
		Cooldown: int32(rng.Intn(int(params.RouteInterval) + 1)),
	}
	return surf, glow, route
}

// AdvanceWalker moves a walker along its direction, scaled by the speed
// multiplier, and applies a bounded random turn whenever the route cooldown
// expires. Angles wrap to [0, 2Pi).
func AdvanceWalker(s *components.Surface, route *components.Route, rng *rand.Rand, params WalkerParams, speedMult float64) {
	s.U = wrapAngle(s.U + s.DU*float32(speedMult))
	s.V = wrapAngle(s.V + s.DV*float32(speedMult))

	route.Cooldown--
	if route.Cooldown > 0 {
		return
	}
	route.Cooldown = params.RouteInterval + int32(rng.Intn(int(params.RouteInterval)/2+1))

	// Rotate the direction vector by a bounded random turn.
	turn := (rng.Float64()*2 - 1) * params.RouteTurn
	cos, sin := math.Cos(turn), math.Sin(turn)
	du := float64(s.DU)
	dv := float64(s.DV)
	s.DU = float32(du*cos - dv*sin)
	s.DV = float32(du*sin + dv*cos)
}

// PulseWalker recomputes a walker's brightness from the shared alpha pulse.
func PulseWalker(g *components.Glow, tick int32, pulseFreq, speedMult float64) {
	pulse := 0.6 + 0.4*math.Sin(float64(tick)*pulseFreq+float64(g.Phase))
	alpha := float64(g.BaseAlpha) * pulse * (1 + (speedMult-1)*0.5)
	if alpha > 1 {
		alpha = 1
	}
	g.Alpha = float32(alpha)
}

// wrapAngle wraps to [0, 2Pi).
func wrapAngle(a float32) float32 {
	const span = float32(twoPi)
	for a >= span {
		a -= span
	}
	for a < 0 {
		a += span
	}
	return a
}
