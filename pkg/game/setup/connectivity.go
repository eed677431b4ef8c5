// Package setup runs the post-generation passes that make a generated
// grid playable: connectivity repair and boundary/inlet/outlet placement.
package setup

import (
	"github.com/zyedidia/generic/mapset"

	"arke/pkg/engine/world"
)

// RepairConnectivity guarantees that every walkable cell is reachable
// from the start cell under 4-connectivity. Stranded cells are marched
// toward the start, converting blocking cells to Pore along the way.
// Returns the start cell it anchored on and the number of converted cells.
//
// This is the safety-critical pass: a failure here produces levels with
// unreachable regions.
func RepairConnectivity(grid *world.Grid) (world.Position, int) {
	start, converted := findOrCarveStart(grid)

	reachable := reachableFrom(grid, start)
	for _, p := range strandedCells(grid, reachable) {
		if reachable.Has(p) {
			continue // connected by an earlier march
		}
		converted += marchToward(grid, p, start, reachable)
	}

	// The outlet scan needs a walkable, reachable cell near the right
	// edge; force-carve the vertical midline inward if there is none.
	reachable = reachableFrom(grid, start)
	if !rightEdgeReachable(grid, reachable) {
		converted += carveMidlineFromRight(grid, start, reachable)
	}

	// Anything the midline carve left dangling gets one more march pass.
	reachable = reachableFrom(grid, start)
	for _, p := range strandedCells(grid, reachable) {
		if reachable.Has(p) {
			continue
		}
		converted += marchToward(grid, p, start, reachable)
	}

	return start, converted
}

// Reachable returns the set of positions reachable from start via
// 4-connected walkable steps. Start itself is included only if walkable.
func Reachable(grid *world.Grid, start world.Position) mapset.Set[world.Position] {
	return reachableFrom(grid, start)
}

// findOrCarveStart picks the first walkable cell scanning row-major
// within the left third of the grid, or carves one at (2, height/2).
func findOrCarveStart(grid *world.Grid) (world.Position, int) {
	third := grid.Width() / 3
	if third < 2 {
		third = 2
	}
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < third; x++ {
			if grid.Tile(x, y).IsWalkable() {
				return world.Position{X: x, Y: y}, 0
			}
		}
	}
	carved := world.Position{X: 2, Y: grid.Height() / 2}
	grid.SetTile(carved.X, carved.Y, world.Pore)
	return carved, 1
}

func reachableFrom(grid *world.Grid, start world.Position) mapset.Set[world.Position] {
	visited := mapset.New[world.Position]()
	if !grid.TileAt(start).IsWalkable() {
		return visited
	}
	queue := []world.Position{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dir := range world.CardinalDirections() {
			n := current.Step(dir)
			if grid.TileAt(n).IsWalkable() && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// strandedCells lists walkable cells outside the reachable set, in
// row-major order so repair stays deterministic.
func strandedCells(grid *world.Grid, reachable mapset.Set[world.Position]) []world.Position {
	var stranded []world.Position
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		p := world.Position{X: x, Y: y}
		if kind.IsWalkable() && !reachable.Has(p) {
			stranded = append(stranded, p)
		}
	})
	return stranded
}

// marchToward steps from p toward start, one cell at a time along the
// axis with the greater remaining offset (ties go to the x axis),
// clamped to the interior. Blocking cells en route become Pore. The
// march keeps its own path set so that the stop check only tests cells
// that were reachable before the march began; the whole path merges
// into the reachable set once the march stops. The step budget bounds
// the loop on pathological layouts.
func marchToward(grid *world.Grid, p, start world.Position, reachable mapset.Set[world.Position]) int {
	converted := 0
	x, y := p.X, p.Y
	path := mapset.New[world.Position]()
	path.Put(p)

	limit := grid.Width() + grid.Height()
	for step := 0; step < limit; step++ {
		if x == start.X && y == start.Y {
			break
		}
		if reachable.Has(world.Position{X: x, Y: y}) {
			break
		}
		dx := start.X - x
		dy := start.Y - y
		if abs(dx) >= abs(dy) {
			x += sign(dx)
		} else {
			y += sign(dy)
		}
		x, y = clampInterior(grid, x, y)

		if !grid.Tile(x, y).IsWalkable() {
			grid.SetTile(x, y, world.Pore)
			converted++
		}
		path.Put(world.Position{X: x, Y: y})
	}
	path.Each(func(p world.Position) {
		reachable.Put(p)
	})
	return converted
}

func rightEdgeReachable(grid *world.Grid, reachable mapset.Set[world.Position]) bool {
	x := grid.Width() - 2
	for y := 1; y < grid.Height()-1; y++ {
		p := world.Position{X: x, Y: y}
		if grid.TileAt(p).IsWalkable() && reachable.Has(p) {
			return true
		}
	}
	return false
}

// carveMidlineFromRight carves Pore along the vertical midline from the
// right edge inward until the carve touches the reachable set, then
// marches the carved run's end toward start as a fallback if it never
// did.
func carveMidlineFromRight(grid *world.Grid, start world.Position, reachable mapset.Set[world.Position]) int {
	converted := 0
	y := grid.Height() / 2
	endX := 1
	for x := grid.Width() - 2; x >= 1; x-- {
		p := world.Position{X: x, Y: y}
		if !grid.TileAt(p).IsWalkable() {
			grid.SetTile(p.X, p.Y, world.Pore)
			converted++
		}
		endX = x
		if touchesSet(p, reachable) {
			return converted
		}
	}
	return converted + marchToward(grid, world.Position{X: endX, Y: y}, start, reachable)
}

// touchesSet reports whether p or one of its cardinal neighbors is in
// the set.
func touchesSet(p world.Position, set mapset.Set[world.Position]) bool {
	if set.Has(p) {
		return true
	}
	for _, dir := range world.CardinalDirections() {
		if set.Has(p.Step(dir)) {
			return true
		}
	}
	return false
}

func clampInterior(grid *world.Grid, x, y int) (int, int) {
	if x < 1 {
		x = 1
	}
	if x > grid.Width()-2 {
		x = grid.Width() - 2
	}
	if y < 1 {
		y = 1
	}
	if y > grid.Height()-2 {
		y = grid.Height() - 2
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
