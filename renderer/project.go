package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewport maps normalized effect coordinates to physical pixels. The
// pixel ratio is capped so high-density displays do not blow up buffer
// sizes; size-dependent structures are regenerated whenever it changes.
type Viewport struct {
	W, H       float32 // physical pixels
	PixelRatio float32
}

// NewViewport derives physical dimensions from a logical size and a device
// pixel ratio capped at maxRatio.
func NewViewport(logicalW, logicalH int, pixelRatio, maxRatio float64) Viewport {
	if pixelRatio > maxRatio {
		pixelRatio = maxRatio
	}
	if pixelRatio < 1 {
		pixelRatio = 1
	}
	return Viewport{
		W:          float32(logicalW) * float32(pixelRatio),
		H:          float32(logicalH) * float32(pixelRatio),
		PixelRatio: float32(pixelRatio),
	}
}

// ToScreen maps a normalized position (the particle space, including its
// overscan margin) to pixels.
func (v Viewport) ToScreen(nx, ny float64) rl.Vector2 {
	return rl.Vector2{
		X: float32(nx) * v.W,
		Y: float32(ny) * v.H,
	}
}

// viewScale is the normalized-to-pixel factor for the 3D projection.
func (v Viewport) viewScale() float32 {
	s := v.W
	if v.H < s {
		s = v.H
	}
	return s / 2
}

// Rotation accumulates the torus orientation. Angles advance every tick
// proportionally to the speed multiplier plus a pointer-driven bias.
type Rotation struct {
	X, Y float64
}

// Advance adds one tick of rotation. biasX/biasY come from the smoothed
// pointer offset from screen center, in [-1, 1].
func (r *Rotation) Advance(base, speedMult, biasX, biasY, biasStrength float64) {
	r.X += base*0.7*speedMult + biasY*base*biasStrength
	r.Y += base*speedMult + biasX*base*biasStrength
}

// Matrix freezes the rotation's trig terms for one frame, so projecting a
// few thousand vertices costs no further trig.
func (r Rotation) Matrix() RotationMatrix {
	sx, cx := math.Sincos(r.X)
	sy, cy := math.Sincos(r.Y)
	return RotationMatrix{
		sx: float32(sx), cx: float32(cx),
		sy: float32(sy), cy: float32(cy),
	}
}

// RotationMatrix is the per-frame rotation, X axis then Y axis.
type RotationMatrix struct {
	sx, cx, sy, cy float32
}

// Apply rotates a point.
func (m RotationMatrix) Apply(x, y, z float32) (float32, float32, float32) {
	// Rotate about X
	y, z = y*m.cx-z*m.sx, y*m.sx+z*m.cx
	// Rotate about Y
	x, z = x*m.cy+z*m.sy, -x*m.sy+z*m.cy
	return x, y, z
}

// focal is the perspective distance of the virtual camera in normalized
// units. Points never reach it: the torus fits well inside the unit sphere.
const focal = 2.6

// Project maps a rotated 3D point to screen pixels with a simple
// perspective divide. depth is in (0, 1], larger meaning closer.
func (v Viewport) Project(x, y, z float32) (pos rl.Vector2, depth float32) {
	persp := focal / (focal - z)
	scale := v.viewScale()

	pos = rl.Vector2{
		X: v.W/2 + x*persp*scale,
		Y: v.H/2 + y*persp*scale,
	}
	depth = persp / (focal / (focal - 1))
	return pos, depth
}
