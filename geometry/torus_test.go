package geometry

import (
	"math"
	"testing"
)

func TestWireTorusCounts(t *testing.T) {
	tests := []struct {
		name         string
		rings, tubes int
	}{
		{"default shape", 36, 18},
		{"minimal", 3, 3},
		{"asymmetric", 8, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := WireTorus(tt.rings, tt.tubes, 0.62, 0.26)

			if got, want := m.VertexCount(), tt.rings*tt.tubes; got != want {
				t.Errorf("vertex count = %d, want %d", got, want)
			}
			if got, want := len(m.Vertices), tt.rings*tt.tubes*3; got != want {
				t.Errorf("vertex array length = %d, want %d", got, want)
			}
			// One ring edge and one tube edge per vertex
			if got, want := m.LineCount(), tt.rings*tt.tubes*2; got != want {
				t.Errorf("line count = %d, want %d", got, want)
			}
		})
	}
}

func TestWireTorusIndicesInRange(t *testing.T) {
	m := WireTorus(12, 8, 0.62, 0.26)

	n := int32(m.VertexCount())
	for i, idx := range m.Lines {
		if idx < 0 || idx >= n {
			t.Fatalf("line index %d at position %d out of range [0, %d)", idx, i, n)
		}
	}
}

func TestWireTorusOnSurface(t *testing.T) {
	const major, minor = 0.62, 0.26
	m := WireTorus(16, 12, major, minor)

	// Every vertex must satisfy the torus surface equation:
	// (sqrt(x^2+y^2) - R)^2 + z^2 = r^2
	for i := 0; i < m.VertexCount(); i++ {
		x := float64(m.Vertices[i*3])
		y := float64(m.Vertices[i*3+1])
		z := float64(m.Vertices[i*3+2])

		d := math.Hypot(x, y) - major
		if got := math.Sqrt(d*d + z*z); math.Abs(got-minor) > 1e-5 {
			t.Fatalf("vertex %d off surface: distance to tube center = %v, want %v", i, got, minor)
		}
	}
}

func TestWireTorusClampsDegenerate(t *testing.T) {
	m := WireTorus(1, 0, 0.62, 0.26)
	if m.Rings < 3 || m.Tubes < 3 {
		t.Errorf("degenerate segment counts not clamped: %dx%d", m.Rings, m.Tubes)
	}
}
