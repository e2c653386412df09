package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// FlowCell is one direction vector of the flow field grid.
type FlowCell struct {
	Angle    float64
	Strength float64
}

// FlowField is a fixed grid of direction vectors biasing particle motion.
// Cells are generated once from coherent noise and are read-only afterwards;
// the only time variation is a stateless per-lookup angle perturbation that
// makes the field appear to breathe.
type FlowField struct {
	gridSize      int
	cells         []FlowCell
	breatheSpeed  float64
	breatheAmount float64
}

// NewFlowField builds a gridSize x gridSize field. Cell angles and strengths
// come from opensimplex noise sampled at frequency over cell coordinates, so
// neighboring cells point in coherent directions.
func NewFlowField(gridSize int, seed int64, frequency, breatheSpeed, breatheAmount float64) *FlowField {
	if gridSize < 2 {
		gridSize = 2
	}

	noise := opensimplex.New(seed)

	f := &FlowField{
		gridSize:      gridSize,
		cells:         make([]FlowCell, gridSize*gridSize),
		breatheSpeed:  breatheSpeed,
		breatheAmount: breatheAmount,
	}

	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			fx := float64(x) * frequency
			fy := float64(y) * frequency
			// Separate noise planes for angle and strength
			angle := noise.Eval3(fx, fy, 0) * math.Pi * 2
			strength := (noise.Eval3(fx, fy, 100) + 1) * 0.5
			f.cells[y*gridSize+x] = FlowCell{Angle: angle, Strength: strength}
		}
	}

	return f
}

// GridSize returns the field's edge length in cells.
func (f *FlowField) GridSize() int {
	return f.gridSize
}

// Lookup returns the flow vector for a normalized position at a given tick.
// Positions mapping outside the grid return the zero vector, so the lookup
// is total over any finite input.
func (f *FlowField) Lookup(x, y float64, tick int32) (fx, fy float64) {
	cx := int(math.Floor(x * float64(f.gridSize-1)))
	cy := int(math.Floor(y * float64(f.gridSize-1)))
	if cx < 0 || cx >= f.gridSize || cy < 0 || cy >= f.gridSize {
		return 0, 0
	}

	idx := cy*f.gridSize + cx
	cell := f.cells[idx]

	// Time-perturbed angle keyed on the cell index; no per-frame state.
	angle := cell.Angle + math.Sin(float64(tick)*f.breatheSpeed+float64(idx)*0.5)*f.breatheAmount

	return math.Cos(angle) * cell.Strength, math.Sin(angle) * cell.Strength
}
