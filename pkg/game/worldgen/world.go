// Package worldgen assembles a playable World from a level definition:
// terrain generation, toxic veins, connectivity repair, boundary and
// inlet/outlet placement, flow solve, and the distance transform, in
// that fixed order.
package worldgen

import (
	"fmt"
	"sort"

	"arke/pkg/engine/world"
	"arke/pkg/game/field"
	"arke/pkg/game/level"
)

// World is the aggregate snapshot a level session plays on. It is
// immutable after generation with one exception: colony placement may
// convert a walkable cell to Biofilm via PlaceBiofilm.
type World struct {
	grid     *world.Grid
	flow     *field.FlowField
	distance *field.DistanceField
	def      level.Definition
	inlet    world.Position
	outlet   world.Position
}

// Definition returns the level definition this world was generated from.
func (w *World) Definition() level.Definition {
	return w.def
}

// Environment returns the biome index of this world.
func (w *World) Environment() int {
	return w.def.Environment
}

// Width returns the grid width.
func (w *World) Width() int {
	return w.grid.Width()
}

// Height returns the grid height.
func (w *World) Height() int {
	return w.grid.Height()
}

// Tile returns the tile kind at the given position; out of bounds reads
// return Solid.
func (w *World) Tile(x, y int) world.TileKind {
	return w.grid.Tile(x, y)
}

// Flow returns the flow cue at the given position; out of bounds reads
// return (None, 0).
func (w *World) Flow(x, y int) field.Flow {
	return w.flow.At(x, y)
}

// Distance returns the distance to the nearest solid cell; out of
// bounds reads return 0.
func (w *World) Distance(x, y int) int {
	return w.distance.At(x, y)
}

// FindStartPosition returns the cell entities spawn at: the inlet.
func (w *World) FindStartPosition() world.Position {
	return w.inlet
}

// FindExitPosition returns the level's exit cell: the outlet.
func (w *World) FindExitPosition() world.Position {
	return w.outlet
}

// AdjacentPores returns the cardinal neighbors of a position that are
// open pore space (Pore, FastFlow or Inlet).
func (w *World) AdjacentPores(x, y int) []world.Position {
	var pores []world.Position
	for _, dir := range world.CardinalDirections() {
		n := world.Position{X: x, Y: y}.Step(dir)
		switch w.grid.TileAt(n) {
		case world.Pore, world.FastFlow, world.Inlet:
			pores = append(pores, n)
		}
	}
	return pores
}

// PlaceBiofilm converts a walkable cell to Biofilm. This is the single
// mutation the entity layer may apply after generation; because the
// target was already walkable it cannot disconnect the grid. Returns
// false (and leaves the world untouched) for solid, toxic or
// out-of-bounds targets.
func (w *World) PlaceBiofilm(x, y int) bool {
	if !w.grid.Tile(x, y).IsWalkable() {
		return false
	}
	return w.grid.SetTile(x, y, world.Biofilm)
}

// Porosity returns the fraction of non-solid cells in the grid.
func (w *World) Porosity() float64 {
	return w.grid.Porosity()
}

// MostOpenCells returns up to n walkable positions ordered from most to
// least open (largest distance to any solid wall first). Gameplay uses
// it to bias colony placement toward open pore bodies. Ties break in
// row-major order so the result is deterministic.
func (w *World) MostOpenCells(n int) []world.Position {
	var open []world.Position
	w.grid.ForEachTile(func(x, y int, kind world.TileKind) {
		if kind.IsWalkable() {
			open = append(open, world.Position{X: x, Y: y})
		}
	})
	sort.SliceStable(open, func(i, j int) bool {
		return w.distance.At(open[i].X, open[i].Y) > w.distance.At(open[j].X, open[j].Y)
	})
	if n < len(open) {
		open = open[:n]
	}
	return open
}

// Grid exposes the underlying grid for rendering collaborators. Callers
// must treat it as read-only.
func (w *World) Grid() *world.Grid {
	return w.grid
}

// Validate checks the world for invariant violations and returns an
// error description, or an empty string if valid.
func (w *World) Validate() string {
	g := w.grid
	for x := 0; x < g.Width(); x++ {
		if g.Tile(x, 0) != world.Solid || g.Tile(x, g.Height()-1) != world.Solid {
			return fmt.Sprintf("border is not solid in column %d", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if g.Tile(0, y) != world.Solid || g.Tile(g.Width()-1, y) != world.Solid {
			return fmt.Sprintf("border is not solid in row %d", y)
		}
	}

	inlets := g.CountTiles(func(k world.TileKind) bool { return k == world.Inlet })
	outlets := g.CountTiles(func(k world.TileKind) bool { return k == world.Outlet })
	if inlets != 1 || outlets != 1 {
		return fmt.Sprintf("expected exactly one inlet and one outlet, have %d and %d", inlets, outlets)
	}

	if unreached := w.unreachableWalkable(); unreached > 0 {
		return fmt.Sprintf("%d walkable cells unreachable from the inlet", unreached)
	}
	return ""
}

// unreachableWalkable counts walkable cells not reachable from the
// inlet via 4-connected walkable steps.
func (w *World) unreachableWalkable() int {
	g := w.grid
	visited := make(map[world.Position]bool)
	queue := []world.Position{w.inlet}
	visited[w.inlet] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dir := range world.CardinalDirections() {
			n := current.Step(dir)
			if g.TileAt(n).IsWalkable() && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	total := g.CountTiles(world.TileKind.IsWalkable)
	return total - len(visited)
}
