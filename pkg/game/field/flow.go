// Package field derives the auxiliary scalar fields over a generated
// grid: the pressure-driven flow field and the distance-to-solid
// transform.
package field

import (
	"arke/pkg/engine/world"
)

// Flow is the advection cue for one cell.
type Flow struct {
	Direction world.Direction
	Speed     float64
}

// FlowField holds the per-cell flow cues. Solid cells carry (None, 0).
type FlowField struct {
	width  int
	height int
	cells  []Flow
}

// At returns the flow at the given position. Out-of-bounds reads return
// (None, 0).
func (f *FlowField) At(x, y int) Flow {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Flow{}
	}
	return f.cells[y*f.width+x]
}

// ForEach iterates over all flow cells in row-major order.
func (f *FlowField) ForEach(fn func(x, y int, flow Flow)) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			fn(x, y, f.cells[y*f.width+x])
		}
	}
}

// Equal reports whether two flow fields are identical.
func (f *FlowField) Equal(other *FlowField) bool {
	if other == nil || f.width != other.width || f.height != other.height {
		return false
	}
	for i, c := range f.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Solver tuning. The pressure field is a cheap relaxation proxy for a
// rightward advection bias, not a fluid solution.
const (
	relaxIterations = 50
	inletPressure   = 1.0
	outletPressure  = 0.0
	initialPressure = 0.5
	speedScale      = 40.0
	fastFlowFactor  = 2.5
	speedCapFactor  = 3.0
)

// SolveFlow relaxes a pressure field over the grid with a fixed-count
// Jacobi iteration and converts the local gradients into per-cell
// direction and speed cues. Column 0 is held at pressure 1 and column
// width-1 at pressure 0; the two boundary columns participate as
// relaxation neighbors even though the border ring is solid, otherwise
// the border would insulate the interior from the boundary condition.
func SolveFlow(grid *world.Grid, baseSpeed float64) *FlowField {
	w, h := grid.Width(), grid.Height()
	pressure := initPressure(grid)
	next := make([]float64, len(pressure))

	for it := 0; it < relaxIterations; it++ {
		copy(next, pressure)
		for y := 0; y < h; y++ {
			for x := 1; x < w-1; x++ {
				if grid.Tile(x, y) == world.Solid {
					continue
				}
				sum, count := 0.0, 0
				for _, dir := range world.CardinalDirections() {
					dx, dy := dir.Delta()
					nx, ny := x+dx, y+dy
					if !participates(grid, nx, ny) {
						continue
					}
					sum += pressure[ny*w+nx]
					count++
				}
				if count > 0 {
					next[y*w+x] = sum / float64(count)
				}
			}
		}
		pressure, next = next, pressure
	}

	field := &FlowField{width: w, height: h, cells: make([]Flow, w*h)}
	speedCap := speedCapFactor * baseSpeed
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			kind := grid.Tile(x, y)
			if kind == world.Solid {
				continue
			}
			dir, drop := steepestDrop(grid, pressure, x, y)
			if dir == world.None {
				continue
			}
			speed := drop * baseSpeed * speedScale
			if kind == world.FastFlow {
				speed *= fastFlowFactor
			}
			if speed > speedCap {
				speed = speedCap
			}
			field.cells[y*w+x] = Flow{Direction: dir, Speed: speed}
		}
	}
	return field
}

// initPressure seeds the field: fixed values on the boundary columns,
// a neutral mid value everywhere else.
func initPressure(grid *world.Grid) []float64 {
	w, h := grid.Width(), grid.Height()
	pressure := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch x {
			case 0:
				pressure[y*w+x] = inletPressure
			case w - 1:
				pressure[y*w+x] = outletPressure
			default:
				pressure[y*w+x] = initialPressure
			}
		}
	}
	return pressure
}

// participates reports whether a neighbor contributes to the relaxation
// average: non-solid cells and the fixed boundary columns do, interior
// solid cells do not.
func participates(grid *world.Grid, x, y int) bool {
	if !grid.IsValidPosition(x, y) {
		return false
	}
	if x == 0 || x == grid.Width()-1 {
		return true
	}
	return grid.Tile(x, y) != world.Solid
}

// steepestDrop returns the direction of the largest strictly positive
// pressure drop among the non-solid neighbors, evaluated in the fixed
// priority order. Ties keep the earlier direction.
func steepestDrop(grid *world.Grid, pressure []float64, x, y int) (world.Direction, float64) {
	w := grid.Width()
	own := pressure[y*w+x]
	best := world.None
	bestDrop := 0.0
	for _, dir := range world.FlowPriority() {
		dx, dy := dir.Delta()
		nx, ny := x+dx, y+dy
		if !grid.IsValidPosition(nx, ny) || grid.Tile(nx, ny) == world.Solid {
			continue
		}
		drop := own - pressure[ny*w+nx]
		if drop > bestDrop {
			best = dir
			bestDrop = drop
		}
	}
	return best, bestDrop
}
