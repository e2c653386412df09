package engine

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/config"
	"github.com/spillwave/backdrop/renderer"
	"github.com/spillwave/backdrop/systems"
	"github.com/spillwave/backdrop/ui"
)

// FieldEffect is the drift-particle background: particles wander on layered
// noise plus a coherent flow field, in normalized space with an overscan
// wrap band.
type FieldEffect struct {
	cfg      *config.Config
	headless bool

	flow     *systems.FlowField
	field    *systems.ParticleField
	render   *renderer.FieldRenderer
	backdrop *renderer.Backdrop
	view     renderer.Viewport

	logicalW int
	bg       rl.Color
}

// NewFieldEffect builds the effect. The flow field is generated once from
// the seed; only the particle population responds to resizes.
func NewFieldEffect(cfg *config.Config, seed int64, headless bool) *FieldEffect {
	flow := systems.NewFlowField(
		cfg.Field.FlowGridSize,
		seed,
		cfg.Field.FlowFrequency,
		cfg.Field.FlowBreatheSpeed,
		cfg.Field.FlowBreatheAmount,
	)
	params := systems.FieldParams{
		NoiseScale:     cfg.Field.NoiseScale,
		NoiseStrength:  cfg.Field.NoiseStrength,
		DriftStrength:  cfg.Field.DriftStrength,
		FlowStrength:   cfg.Field.FlowStrength,
		AlphaPulseFreq: cfg.Field.AlphaPulseFreq,
	}
	bg := cfg.Field.BackgroundColor

	return &FieldEffect{
		cfg:      cfg,
		headless: headless,
		flow:     flow,
		field:    systems.NewParticleField(cfg.ScaledParticleCount(cfg.Screen.Width), flow, seed, params),
		render:   renderer.NewFieldRenderer(),
		logicalW: cfg.Screen.Width,
		bg:       rl.NewColor(bg.R, bg.G, bg.B, 255),
	}
}

// Name returns the effect name.
func (e *FieldEffect) Name() string {
	return "field"
}

// Init builds GPU resources. Shader failure degrades to the unshaded
// backdrop instead of disabling the effect.
func (e *FieldEffect) Init() error {
	if e.headless {
		return nil
	}
	if !rl.IsWindowReady() {
		return renderer.ErrContextUnavailable
	}

	backdrop, err := renderer.NewBackdrop(e.cfg.Field.ParticleColor)
	if err != nil {
		if errors.Is(err, renderer.ErrContextUnavailable) {
			return err
		}
		slog.Warn("shader_compile_failed", "effect", e.Name(), "error", err)
	} else {
		e.backdrop = backdrop
	}
	return nil
}

// Step advances every particle.
func (e *FieldEffect) Step(fc FrameContext) {
	e.field.Update(fc.Tick, fc.Speed)
}

// Draw renders the backdrop glow, then the particles additively.
func (e *FieldEffect) Draw(fc FrameContext) {
	rl.ClearBackground(e.bg)
	e.backdrop.Draw(fc.Tick, e.view)
	e.render.Draw(e.view, e.field.Particles)
}

// Resize adjusts the particle population across the mobile breakpoint. The
// field itself is resolution-independent.
func (e *FieldEffect) Resize(logicalW, logicalH int, pixelRatio float64) {
	e.view = renderer.NewViewport(logicalW, logicalH, pixelRatio, e.cfg.Screen.MaxPixelRatio)
	e.logicalW = logicalW

	want := e.cfg.ScaledParticleCount(logicalW)
	if want != len(e.field.Particles) {
		e.field.Rebuild(want)
	}
}

// Unload releases GPU resources.
func (e *FieldEffect) Unload() {
	e.backdrop.Unload()
}

// DrawControls exposes the particle count on the overlay panel.
func (e *FieldEffect) DrawControls(p *ui.Panel) {
	count := int(p.Slider("Particles", float32(len(e.field.Particles)), 0, 1000))
	if count != len(e.field.Particles) {
		e.field.Rebuild(count)
	}
}
