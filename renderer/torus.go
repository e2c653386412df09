package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/config"
	"github.com/spillwave/backdrop/geometry"
)

// TorusRenderer draws the wireframe torus and the walker pulse trails.
// Projected vertices are cached in scratch buffers reused every frame.
type TorusRenderer struct {
	wireColor  rl.Color
	pulseColor rl.Color

	// Scratch: projected mesh vertices and their depths
	projected []rl.Vector2
	depths    []float32
}

// NewTorusRenderer creates a torus renderer.
func NewTorusRenderer(wire, pulse config.RGB) *TorusRenderer {
	return &TorusRenderer{
		wireColor:  rl.NewColor(wire.R, wire.G, wire.B, 255),
		pulseColor: rl.NewColor(pulse.R, pulse.G, pulse.B, 255),
	}
}

// Draw projects the mesh once, draws the wireframe depth-faded, then the
// trail samples with additive blending.
func (r *TorusRenderer) Draw(view Viewport, rot RotationMatrix, mesh *geometry.WireMesh, trails []float32) {
	n := mesh.VertexCount()
	if cap(r.projected) < n {
		r.projected = make([]rl.Vector2, n)
		r.depths = make([]float32, n)
	}
	r.projected = r.projected[:n]
	r.depths = r.depths[:n]

	for i := 0; i < n; i++ {
		x, y, z := rot.Apply(mesh.Vertices[i*3], mesh.Vertices[i*3+1], mesh.Vertices[i*3+2])
		r.projected[i], r.depths[i] = view.Project(x, y, z)
	}

	// Wireframe: far lines fade out so the back of the torus reads as depth.
	for i := 0; i+1 < len(mesh.Lines); i += 2 {
		a := mesh.Lines[i]
		b := mesh.Lines[i+1]

		depth := (r.depths[a] + r.depths[b]) * 0.5
		color := r.wireColor
		color.A = uint8(clamp01(depth*depth) * 160)

		rl.DrawLineEx(r.projected[a], r.projected[b], view.PixelRatio, color)
	}

	// Pulse trails on top, additive.
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := 0; i+geometry.TrailComponents <= len(trails); i += geometry.TrailComponents {
		x, y, z := rot.Apply(trails[i], trails[i+1], trails[i+2])
		pos, depth := view.Project(x, y, z)

		alpha := trails[i+3] * clamp01(depth)
		if alpha < 0.01 {
			continue
		}

		color := r.pulseColor
		color.A = uint8(alpha * 255)
		rl.DrawCircleV(pos, trails[i+4]*depth*view.PixelRatio, color)
	}
	rl.EndBlendMode()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
