package engine

import (
	"errors"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/spillwave/backdrop/components"
	"github.com/spillwave/backdrop/config"
	"github.com/spillwave/backdrop/geometry"
	"github.com/spillwave/backdrop/renderer"
	"github.com/spillwave/backdrop/systems"
	"github.com/spillwave/backdrop/ui"
)

// trailTickSpacing is how many ticks of walker motion separate consecutive
// trail samples.
const trailTickSpacing = 3

// TorusEffect is the wireframe-torus background: a rotating wire torus with
// glowing walkers routed across its surface, each dragging an additive trail.
// Walker state lives in the ECS; geometry buffers are plain slices reused
// every frame.
type TorusEffect struct {
	cfg      *config.Config
	headless bool
	rng      *rand.Rand

	world    *ecs.World
	mapper   *ecs.Map3[components.Surface, components.Glow, components.Route]
	filter   ecs.Filter3[components.Surface, components.Glow, components.Route]
	entities []ecs.Entity

	params systems.WalkerParams

	mesh   *geometry.WireMesh
	heads  []geometry.TrailHead
	trails []float32
	rot    renderer.Rotation

	render   *renderer.TorusRenderer
	backdrop *renderer.Backdrop
	view     renderer.Viewport

	bg rl.Color
}

// NewTorusEffect builds the effect and spawns the initial walker population.
func NewTorusEffect(cfg *config.Config, seed int64, headless bool) *TorusEffect {
	world := ecs.NewWorld()
	bg := cfg.Torus.BackgroundColor

	e := &TorusEffect{
		cfg:      cfg,
		headless: headless,
		rng:      rand.New(rand.NewSource(seed)),
		world:    world,
		mapper:   ecs.NewMap3[components.Surface, components.Glow, components.Route](world),
		filter:   *ecs.NewFilter3[components.Surface, components.Glow, components.Route](world),
		params: systems.WalkerParams{
			RouteInterval: int32(cfg.Torus.RouteInterval),
			RouteTurn:     cfg.Torus.RouteTurn,
			BaseStep:      cfg.Torus.RotationSpeed * 4,
		},
		mesh:   geometry.WireTorus(cfg.Torus.Rings, cfg.Torus.Tubes, cfg.Torus.MajorRadius, cfg.Torus.MinorRadius),
		render: renderer.NewTorusRenderer(cfg.Torus.WireColor, cfg.Torus.PulseColor),
		bg:     rl.NewColor(bg.R, bg.G, bg.B, 255),
	}

	e.setWalkerCount(cfg.ScaledWalkerCount(cfg.Screen.Width))
	return e
}

// Name returns the effect name.
func (e *TorusEffect) Name() string {
	return "torus"
}

// Init builds GPU resources, degrading to the unshaded backdrop on shader
// failure.
func (e *TorusEffect) Init() error {
	if e.headless {
		return nil
	}
	if !rl.IsWindowReady() {
		return renderer.ErrContextUnavailable
	}

	backdrop, err := renderer.NewBackdrop(e.cfg.Torus.PulseColor)
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

// Step advances the rotation, every walker, and rebuilds the trail buffer.
func (e *TorusEffect) Step(fc FrameContext) {
	// Pointer offset from screen center biases the rotation.
	biasX := fc.PointerX*2 - 1
	biasY := fc.PointerY*2 - 1
	e.rot.Advance(e.cfg.Torus.RotationSpeed, fc.Speed, biasX, biasY, e.cfg.Torus.MouseBias)

	e.heads = e.heads[:0]

	query := e.filter.Query()
	for query.Next() {
		surf, glow, route := query.Get()

		systems.AdvanceWalker(surf, route, e.rng, e.params, fc.Speed)
		systems.PulseWalker(glow, fc.Tick, e.cfg.Field.AlphaPulseFreq, fc.Speed)

		e.heads = append(e.heads, geometry.TrailHead{
			U: surf.U, V: surf.V,
			DU: surf.DU, DV: surf.DV,
			Alpha: glow.Alpha,
			Size:  glow.Size,
		})
	}

	// Trails follow the morphing radii; the static wireframe keeps the base
	// shape and is rebuilt only on resize.
	major, minor := systems.MorphedRadii(
		fc.Tick,
		e.cfg.Torus.MajorRadius,
		e.cfg.Torus.MinorRadius,
		e.cfg.Torus.MorphAmp,
		e.cfg.Torus.MorphFreq,
	)
	e.trails = geometry.BuildTrails(
		e.trails,
		e.heads,
		e.cfg.Torus.TrailLength,
		trailTickSpacing,
		float32(major),
		float32(minor),
	)
}

// Draw renders the backdrop glow, the wireframe, and the trails.
func (e *TorusEffect) Draw(fc FrameContext) {
	rl.ClearBackground(e.bg)
	e.backdrop.Draw(fc.Tick, e.view)
	e.render.Draw(e.view, e.rot.Matrix(), e.mesh, e.trails)
}

// Resize rescales the viewport and adjusts the walker population across the
// mobile breakpoint.
func (e *TorusEffect) Resize(logicalW, logicalH int, pixelRatio float64) {
	e.view = renderer.NewViewport(logicalW, logicalH, pixelRatio, e.cfg.Screen.MaxPixelRatio)
	e.setWalkerCount(e.cfg.ScaledWalkerCount(logicalW))
}

// setWalkerCount grows or shrinks the walker population to the target.
func (e *TorusEffect) setWalkerCount(want int) {
	if want < 0 {
		want = 0
	}
	for len(e.entities) < want {
		surf, glow, route := systems.SpawnWalker(e.rng, e.params)
		e.entities = append(e.entities, e.mapper.NewEntity(&surf, &glow, &route))
	}
	for len(e.entities) > want {
		last := len(e.entities) - 1
		e.world.RemoveEntity(e.entities[last])
		e.entities = e.entities[:last]
	}
}

// Unload releases GPU resources.
func (e *TorusEffect) Unload() {
	e.backdrop.Unload()
}

// DrawControls exposes a scatter button on the overlay panel.
func (e *TorusEffect) DrawControls(p *ui.Panel) {
	if p.Button("Scatter walkers") {
		count := len(e.entities)
		e.setWalkerCount(0)
		e.setWalkerCount(count)
	}
}
