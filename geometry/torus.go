// Package geometry builds the static torus wireframe and the per-frame
// attribute arrays consumed by the renderer. Builders are pure: static
// meshes are rebuilt only on resize or shape change, per-frame arrays are
// regenerated every tick into reused buffers.
package geometry

import "github.com/spillwave/backdrop/systems"

// WireMesh is a wireframe torus: packed vertex positions plus line index
// pairs. Uploaded once per shape (immutable usage); only Rebuild touches it.
type WireMesh struct {
	Vertices []float32 // x, y, z triples, Rings*Tubes vertices
	Lines    []int32   // index pairs, 2 per line segment
	Rings    int
	Tubes    int
}

// WireTorus sweeps both torus angles over [0, 2Pi) on a rings x tubes grid
// and connects every vertex to its ring neighbor and its tube neighbor,
// producing a closed wireframe rather than a filled surface.
func WireTorus(rings, tubes int, major, minor float64) *WireMesh {
	if rings < 3 {
		rings = 3
	}
	if tubes < 3 {
		tubes = 3
	}

	m := &WireMesh{
		Vertices: make([]float32, 0, rings*tubes*3),
		Lines:    make([]int32, 0, rings*tubes*4),
		Rings:    rings,
		Tubes:    tubes,
	}

	for ring := 0; ring < rings; ring++ {
		u := float64(ring) / float64(rings) * 2 * 3.141592653589793
		for tube := 0; tube < tubes; tube++ {
			v := float64(tube) / float64(tubes) * 2 * 3.141592653589793
			x, y, z := systems.TorusPoint(u, v, major, minor)
			m.Vertices = append(m.Vertices, float32(x), float32(y), float32(z))
		}
	}

	for ring := 0; ring < rings; ring++ {
		for tube := 0; tube < tubes; tube++ {
			idx := int32(ring*tubes + tube)
			ringNeighbor := int32(((ring+1)%rings)*tubes + tube)
			tubeNeighbor := int32(ring*tubes + (tube+1)%tubes)
			m.Lines = append(m.Lines, idx, ringNeighbor, idx, tubeNeighbor)
		}
	}

	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *WireMesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// LineCount returns the number of line segments.
func (m *WireMesh) LineCount() int {
	return len(m.Lines) / 2
}
