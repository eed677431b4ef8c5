package field

import (
	"arke/pkg/engine/world"
)

// DistanceField holds the 4-connected graph distance from every cell to
// the nearest solid cell. Solid cells are exactly 0. Cells unreachable
// from any solid cell keep the width*height sentinel; with a solid
// border that does not occur, but the transform does not assume it.
type DistanceField struct {
	width  int
	height int
	cells  []int
}

// At returns the distance at the given position, or 0 out of bounds
// (out-of-bounds reads behave like the solid surroundings).
func (d *DistanceField) At(x, y int) int {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0
	}
	return d.cells[y*d.width+x]
}

// ForEach iterates over all distances in row-major order.
func (d *DistanceField) ForEach(fn func(x, y, dist int)) {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			fn(x, y, d.cells[y*d.width+x])
		}
	}
}

// Equal reports whether two distance fields are identical.
func (d *DistanceField) Equal(other *DistanceField) bool {
	if other == nil || d.width != other.width || d.height != other.height {
		return false
	}
	for i, v := range d.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// ComputeDistance runs a multi-source BFS seeded from every solid cell,
// expanding over all cells (not only walkable ones) and monotonically
// relaxing each neighbor.
func ComputeDistance(grid *world.Grid) *DistanceField {
	w, h := grid.Width(), grid.Height()
	sentinel := w * h
	d := &DistanceField{width: w, height: h, cells: make([]int, w*h)}

	queue := make([]world.Position, 0, w*h)
	for i := range d.cells {
		d.cells[i] = sentinel
	}
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		if kind == world.Solid {
			d.cells[y*w+x] = 0
			queue = append(queue, world.Position{X: x, Y: y})
		}
	})

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		base := d.cells[current.Y*w+current.X]
		for _, dir := range world.CardinalDirections() {
			n := current.Step(dir)
			if !grid.IsValidPosition(n.X, n.Y) {
				continue
			}
			if d.cells[n.Y*w+n.X] > base+1 {
				d.cells[n.Y*w+n.X] = base + 1
				queue = append(queue, n)
			}
		}
	}
	return d
}
