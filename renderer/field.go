package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/systems"
)

// FieldRenderer draws the drift-particle field with additive blending.
type FieldRenderer struct{}

// NewFieldRenderer creates a field renderer.
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Draw renders all particles. Positions come in normalized space including
// the overscan margin; offscreen particles are cheap enough to just draw.
func (r *FieldRenderer) Draw(view Viewport, particles []systems.Particle) {
	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range particles {
		p := &particles[i]
		if p.Alpha < 0.01 {
			continue
		}

		color := rl.ColorFromHSV(float32(p.Hue), 0.45, 1.0)
		color.A = uint8(p.Alpha * 255)

		rl.DrawCircleV(view.ToScreen(p.X, p.Y), float32(p.Size)*view.PixelRatio, color)
	}

	rl.EndBlendMode()
}
