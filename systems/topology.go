package systems

import (
	"math"
	"math/rand"
)

// TopologyPoint is one node of the point-and-line effect. The anchor is the
// jittered grid position; the live position wanders slowly around it.
type TopologyPoint struct {
	AnchorX, AnchorY float64
	X, Y             float64
	Phase            float64
	Wander           float64 // per-point wander amplitude in pixels
}

// TopologyConnection is an undirected pair of points within reach.
type TopologyConnection struct {
	A, B int
	Dist float64
}

// TopologyParams are the construction parameters of the grid.
type TopologyParams struct {
	Spacing      float64
	MaxDistance  float64
	MaxPoints    int
	Jitter       float64 // anchor jitter as fraction of spacing
	WanderSpeed  float64
	WanderRadius float64
}

// TopologyGrid is the point grid of the topology effect. It is rebuilt
// wholesale on resize and never changes size between resizes.
type TopologyGrid struct {
	Points     []TopologyPoint
	Cols, Rows int

	width, height float64
	params        TopologyParams
	seed          int64
}

// NewTopologyGrid builds the grid for the given pixel dimensions.
func NewTopologyGrid(width, height float64, params TopologyParams, seed int64) *TopologyGrid {
	g := &TopologyGrid{
		params: params,
		seed:   seed,
	}
	g.rebuild(width, height)
	return g
}

// Resize rebuilds the grid for new dimensions. Unchanged dimensions are a
// no-op, so repeated resizes produce identical geometry.
func (g *TopologyGrid) Resize(width, height float64) {
	if width == g.width && height == g.height {
		return
	}
	g.rebuild(width, height)
}

// rebuild lays out ceil(w/spacing)+1 columns by ceil(h/spacing)+1 rows of
// anchors, jittered deterministically from the stored seed.
func (g *TopologyGrid) rebuild(width, height float64) {
	g.width = width
	g.height = height

	g.Cols = int(math.Ceil(width/g.params.Spacing)) + 1
	g.Rows = int(math.Ceil(height/g.params.Spacing)) + 1

	count := g.Cols * g.Rows
	if g.params.MaxPoints > 0 && count > g.params.MaxPoints {
		count = g.params.MaxPoints
	}

	rng := rand.New(rand.NewSource(g.seed))
	jitter := g.params.Spacing * g.params.Jitter

	g.Points = make([]TopologyPoint, count)
	for i := range g.Points {
		col := i % g.Cols
		row := i / g.Cols

		p := &g.Points[i]
		p.AnchorX = float64(col)*g.params.Spacing + (rng.Float64()*2-1)*jitter
		p.AnchorY = float64(row)*g.params.Spacing + (rng.Float64()*2-1)*jitter
		p.X = p.AnchorX
		p.Y = p.AnchorY
		p.Phase = rng.Float64() * math.Pi * 2
		p.Wander = g.params.WanderRadius * (0.5 + rng.Float64()*0.5)
	}
}

// Update advances the slow sinusoidal wander of every point.
func (g *TopologyGrid) Update(tick int32, speedMult float64) {
	t := float64(tick) * g.params.WanderSpeed * speedMult

	for i := range g.Points {
		p := &g.Points[i]
		p.X = p.AnchorX + math.Cos(t+p.Phase)*p.Wander
		p.Y = p.AnchorY + math.Sin(t*1.3+p.Phase)*p.Wander
	}
}

// Connections returns all unordered point pairs within MaxDistance. The
// result is rebuilt every call; callers draw it immediately.
func (g *TopologyGrid) Connections() []TopologyConnection {
	maxSq := g.params.MaxDistance * g.params.MaxDistance

	var conns []TopologyConnection
	for i := 0; i < len(g.Points); i++ {
		for j := i + 1; j < len(g.Points); j++ {
			dx := g.Points[i].X - g.Points[j].X
			dy := g.Points[i].Y - g.Points[j].Y
			dSq := dx*dx + dy*dy
			if dSq > maxSq {
				continue
			}
			conns = append(conns, TopologyConnection{
				A:    i,
				B:    j,
				Dist: math.Sqrt(dSq),
			})
		}
	}
	return conns
}

// MaxDistance returns the connection cutoff, for alpha falloff in the renderer.
func (g *TopologyGrid) MaxDistance() float64 {
	return g.params.MaxDistance
}
