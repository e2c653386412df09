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

// TopologyEffect is the point-grid background: a jittered grid of slowly
// wandering points connected by distance-faded lines.
type TopologyEffect struct {
	cfg      *config.Config
	headless bool

	grid     *systems.TopologyGrid
	render   *renderer.TopologyRenderer
	backdrop *renderer.Backdrop
	view     renderer.Viewport

	bg rl.Color
}

// NewTopologyEffect builds the effect for the configured screen size.
func NewTopologyEffect(cfg *config.Config, seed int64, headless bool) *TopologyEffect {
	params := systems.TopologyParams{
		Spacing:      cfg.Topology.Spacing,
		MaxDistance:  cfg.Topology.MaxDistance,
		MaxPoints:    cfg.Topology.MaxPoints,
		Jitter:       cfg.Topology.Jitter,
		WanderSpeed:  cfg.Topology.WanderSpeed,
		WanderRadius: cfg.Topology.WanderRadius,
	}
	bg := cfg.Topology.BackgroundColor

	return &TopologyEffect{
		cfg:      cfg,
		headless: headless,
		grid: systems.NewTopologyGrid(
			float64(cfg.Screen.Width),
			float64(cfg.Screen.Height),
			params,
			seed,
		),
		render: renderer.NewTopologyRenderer(cfg.Topology.PointColor, cfg.Topology.ShowPoints),
		bg:     rl.NewColor(bg.R, bg.G, bg.B, 255),
	}
}

// Name returns the effect name.
func (e *TopologyEffect) Name() string {
	return "topology"
}

// Init builds GPU resources. A missing render context is fatal for the
// effect; a failed shader build only degrades it to the unshaded backdrop.
func (e *TopologyEffect) Init() error {
	if e.headless {
		return nil
	}
	if !rl.IsWindowReady() {
		return renderer.ErrContextUnavailable
	}

	backdrop, err := renderer.NewBackdrop(e.cfg.Topology.PointColor)
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

// Step advances the point wander.
func (e *TopologyEffect) Step(fc FrameContext) {
	e.grid.Update(fc.Tick, fc.Speed)
}

// Draw renders the backdrop glow, then connections and points.
func (e *TopologyEffect) Draw(fc FrameContext) {
	rl.ClearBackground(e.bg)
	e.backdrop.Draw(fc.Tick, e.view)
	e.render.Draw(e.view, e.grid)
}

// Resize rebuilds the grid for new logical dimensions.
func (e *TopologyEffect) Resize(logicalW, logicalH int, pixelRatio float64) {
	e.view = renderer.NewViewport(logicalW, logicalH, pixelRatio, e.cfg.Screen.MaxPixelRatio)
	e.grid.Resize(float64(logicalW), float64(logicalH))
}

// Unload releases GPU resources.
func (e *TopologyEffect) Unload() {
	e.backdrop.Unload()
}

// DrawControls exposes the point toggle on the overlay panel.
func (e *TopologyEffect) DrawControls(p *ui.Panel) {
	e.render.SetShowPoints(p.Checkbox("Show points", e.render.ShowPoints()))
}
