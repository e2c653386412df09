package systems

import (
	"math"
	"math/rand"
)

// Overscan wrap band for normalized particle coordinates. Wrapping across
// a margin instead of clamping at the viewport edge avoids visible popping.
const (
	WrapLo   = -0.1
	WrapHi   = 1.1
	wrapSpan = WrapHi - WrapLo
)

// Particle is one drifting point of the field effect. Base position and the
// per-particle constants are fixed at creation; X, Y, Alpha and Hue are
// recomputed every tick.
type Particle struct {
	BaseX, BaseY float64
	X, Y         float64

	Size        float64
	BaseAlpha   float64
	BaseHue     float64
	Phase       float64
	SpeedFactor float64
	NoiseOffset float64

	// Accumulated flow displacement
	flowX, flowY float64

	// Derived per frame
	Alpha float64
	Hue   float64
}

// FieldParams are the behavioral constants of the drift-particle field.
type FieldParams struct {
	NoiseScale     float64
	NoiseStrength  float64
	DriftStrength  float64
	FlowStrength   float64
	AlphaPulseFreq float64
}

// ParticleField holds a fixed-size set of drift particles in normalized
// space. The slice length never changes after creation; Rebuild replaces
// the population wholesale (the resize path).
type ParticleField struct {
	Particles []Particle

	flow   *FlowField
	params FieldParams
	seed   int64
}

// NewParticleField creates count particles seeded deterministically.
func NewParticleField(count int, flow *FlowField, seed int64, params FieldParams) *ParticleField {
	f := &ParticleField{
		flow:   flow,
		params: params,
		seed:   seed,
	}
	f.Rebuild(count)
	return f
}

// Rebuild recreates the particle population. Reseeding from the stored seed
// makes rebuilds with equal counts reproduce the same particles, which keeps
// resize idempotent.
func (f *ParticleField) Rebuild(count int) {
	if count < 0 {
		count = 0
	}
	rng := rand.New(rand.NewSource(f.seed))

	f.Particles = make([]Particle, count)
	for i := range f.Particles {
		p := &f.Particles[i]
		p.BaseX = rng.Float64()
		p.BaseY = rng.Float64()
		p.X = p.BaseX
		p.Y = p.BaseY
		p.Size = 0.8 + rng.Float64()*1.8
		p.BaseAlpha = 0.25 + rng.Float64()*0.45
		p.BaseHue = 200 + rng.Float64()*60
		p.Phase = rng.Float64() * math.Pi * 2
		p.SpeedFactor = 0.6 + rng.Float64()*0.8
		p.NoiseOffset = rng.Float64() * 100
	}
}

// Update advances every particle by one tick. Each motion contribution is
// scaled by the current speed multiplier; faster motion also brightens the
// pulse so activity reads visually.
func (f *ParticleField) Update(tick int32, speedMult float64) {
	t := float64(tick)

	for i := range f.Particles {
		p := &f.Particles[i]

		nt := t * 0.01 * p.SpeedFactor

		nx := NoiseSigned(p.BaseX*f.params.NoiseScale+p.NoiseOffset, p.BaseY*f.params.NoiseScale, nt) * f.params.NoiseStrength
		ny := NoiseSigned(p.BaseY*f.params.NoiseScale+p.NoiseOffset, p.BaseX*f.params.NoiseScale, nt+37.2) * f.params.NoiseStrength

		dx := NoiseDrift(p.BaseX, p.BaseY, nt) * f.params.DriftStrength
		dy := NoiseDrift(p.BaseY, p.BaseX, nt+11.8) * f.params.DriftStrength

		// Flow displacement accumulates; lookup falls back to zero outside
		// the unit square, so particles in the overscan margin just coast.
		fx, fy := f.flow.Lookup(p.X, p.Y, tick)
		p.flowX += fx * f.params.FlowStrength * speedMult
		p.flowY += fy * f.params.FlowStrength * speedMult

		p.X = wrapBand(p.BaseX + (nx+dx)*speedMult + p.flowX)
		p.Y = wrapBand(p.BaseY + (ny+dy)*speedMult + p.flowY)

		pulse := 0.6 + 0.4*math.Sin(t*f.params.AlphaPulseFreq+p.Phase)
		alpha := p.BaseAlpha * pulse * (1 + (speedMult-1)*0.5)
		if alpha > 1 {
			alpha = 1
		}
		p.Alpha = alpha

		p.Hue = p.BaseHue + 18*math.Sin(t*0.001+p.Phase)
	}
}

// wrapBand wraps a normalized coordinate into [WrapLo, WrapHi).
func wrapBand(v float64) float64 {
	v = math.Mod(v-WrapLo, wrapSpan)
	if v < 0 {
		v += wrapSpan
	}
	return v + WrapLo
}
