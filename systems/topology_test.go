package systems

import "testing"

func testTopologyParams() TopologyParams {
	return TopologyParams{
		Spacing:      120,
		MaxDistance:  150,
		MaxPoints:    0,
		Jitter:       0.4,
		WanderSpeed:  0.004,
		WanderRadius: 18,
	}
}

func TestTopologyGridLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantCols      int
		wantRows      int
	}{
		{"300x300 at spacing 120", 300, 300, 4, 4},
		{"exact multiple", 240, 240, 3, 3},
		{"wide viewport", 1280, 720, 12, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTopologyGrid(tt.width, tt.height, testTopologyParams(), 1)
			if g.Cols != tt.wantCols || g.Rows != tt.wantRows {
				t.Errorf("grid = %dx%d, want %dx%d", g.Cols, g.Rows, tt.wantCols, tt.wantRows)
			}
			if len(g.Points) != tt.wantCols*tt.wantRows {
				t.Errorf("point count = %d, want %d", len(g.Points), tt.wantCols*tt.wantRows)
			}
		})
	}
}

func TestTopologyMaxPointsCap(t *testing.T) {
	params := testTopologyParams()
	params.MaxPoints = 10

	g := NewTopologyGrid(1280, 720, params, 1)
	if len(g.Points) != 10 {
		t.Errorf("point count = %d, want capped at 10", len(g.Points))
	}
}

func TestTopologyResizeIdempotent(t *testing.T) {
	g := NewTopologyGrid(300, 300, testTopologyParams(), 5)

	first := make([]TopologyPoint, len(g.Points))
	copy(first, g.Points)

	g.Resize(300, 300)
	g.Resize(300, 300)

	if len(g.Points) != len(first) {
		t.Fatalf("point count changed on no-op resize: %d vs %d", len(g.Points), len(first))
	}
	for i := range g.Points {
		if g.Points[i] != first[i] {
			t.Fatalf("point %d changed on no-op resize", i)
		}
	}
}

func TestTopologyResizeRebuilds(t *testing.T) {
	g := NewTopologyGrid(300, 300, testTopologyParams(), 5)
	g.Resize(600, 300)

	if g.Cols != 6 {
		t.Errorf("cols after resize = %d, want 6", g.Cols)
	}
	if len(g.Points) != g.Cols*g.Rows {
		t.Errorf("point count = %d, want %d", len(g.Points), g.Cols*g.Rows)
	}
}

func TestTopologyConnectionsWithinMax(t *testing.T) {
	g := NewTopologyGrid(300, 300, testTopologyParams(), 9)
	g.Update(37, 1.0)

	conns := g.Connections()
	if len(conns) == 0 {
		t.Fatal("expected some connections on a 300x300 grid with spacing 120")
	}
	for _, c := range conns {
		if c.Dist > g.MaxDistance() {
			t.Errorf("connection %d-%d at distance %v exceeds max %v", c.A, c.B, c.Dist, g.MaxDistance())
		}
		if c.A >= c.B {
			t.Errorf("connection pair (%d, %d) not ordered", c.A, c.B)
		}
	}
}
