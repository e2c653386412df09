package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/config"
	"github.com/spillwave/backdrop/systems"
)

// TopologyRenderer draws the point-and-line effect. Point positions are in
// pixels already; only the pixel ratio scaling applies here.
type TopologyRenderer struct {
	pointColor rl.Color
	showPoints bool
}

// NewTopologyRenderer creates a topology renderer.
func NewTopologyRenderer(pointColor config.RGB, showPoints bool) *TopologyRenderer {
	return &TopologyRenderer{
		pointColor: rl.NewColor(pointColor.R, pointColor.G, pointColor.B, 255),
		showPoints: showPoints,
	}
}

// SetShowPoints toggles point rendering (connections always draw).
func (r *TopologyRenderer) SetShowPoints(show bool) {
	r.showPoints = show
}

// ShowPoints reports whether points are drawn.
func (r *TopologyRenderer) ShowPoints() bool {
	return r.showPoints
}

// Draw renders connections with distance-faded alpha, then the points.
func (r *TopologyRenderer) Draw(view Viewport, grid *systems.TopologyGrid) {
	maxDist := grid.MaxDistance()
	pr := view.PixelRatio

	for _, c := range grid.Connections() {
		a := &grid.Points[c.A]
		b := &grid.Points[c.B]

		fade := 1 - c.Dist/maxDist
		color := r.pointColor
		color.A = uint8(fade * 0.6 * 255)

		rl.DrawLineEx(
			rl.Vector2{X: float32(a.X) * pr, Y: float32(a.Y) * pr},
			rl.Vector2{X: float32(b.X) * pr, Y: float32(b.Y) * pr},
			pr,
			color,
		)
	}

	if !r.showPoints {
		return
	}
	for i := range grid.Points {
		p := &grid.Points[i]
		rl.DrawCircleV(
			rl.Vector2{X: float32(p.X) * pr, Y: float32(p.Y) * pr},
			2.5*pr,
			r.pointColor,
		)
	}
}
