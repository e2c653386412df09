package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/config"
)

// Backdrop draws the fullscreen glow shader behind an effect. A nil
// Backdrop is valid and draws nothing, which is the degraded mode when the
// shader failed to build.
type Backdrop struct {
	program *Program
	tint    [3]float32
}

// NewBackdrop builds the glow program tinted toward the effect's color.
func NewBackdrop(tint config.RGB) (*Backdrop, error) {
	program, err := NewProgram("backdrop-glow", "", glowFS, "time", "resolution", "tint")
	if err != nil {
		return nil, err
	}

	b := &Backdrop{
		program: program,
		tint: [3]float32{
			float32(tint.R) / 255,
			float32(tint.G) / 255,
			float32(tint.B) / 255,
		},
	}
	return b, nil
}

// Draw renders the glow over the full viewport.
func (b *Backdrop) Draw(tick int32, view Viewport) {
	if b == nil {
		return
	}

	b.program.SetFloat("time", float32(tick)*0.01)
	b.program.SetVec2("resolution", view.W, view.H)
	b.program.SetVec3("tint", b.tint[0], b.tint[1], b.tint[2])

	b.program.Begin()
	rl.DrawRectangle(0, 0, int32(view.W), int32(view.H), rl.White)
	b.program.End()
}

// Unload releases the glow program.
func (b *Backdrop) Unload() {
	if b != nil {
		b.program.Unload()
	}
}
