package setup

import (
	"arke/pkg/engine/world"
)

// EnforceBoundary forces the outermost ring of rows and columns to
// Solid. Generators only write the playable interior, so this is
// normally a no-op kept for safety.
func EnforceBoundary(grid *world.Grid) {
	for x := 0; x < grid.Width(); x++ {
		grid.SetTile(x, 0, world.Solid)
		grid.SetTile(x, grid.Height()-1, world.Solid)
	}
	for y := 0; y < grid.Height(); y++ {
		grid.SetTile(0, y, world.Solid)
		grid.SetTile(grid.Width()-1, y, world.Solid)
	}
}

// PlaceInletOutlet marks the flow entry and exit cells: the first
// walkable cell scanning columns left-to-right becomes the Inlet, the
// first scanning right-to-left becomes the Outlet. Must run after
// RepairConnectivity so both are reachable. Returns the two positions
// and whether both were found.
func PlaceInletOutlet(grid *world.Grid) (inlet, outlet world.Position, ok bool) {
	inlet, foundIn := scanColumns(grid, 1, grid.Width()-2, 1, world.Position{})
	if foundIn {
		grid.SetTile(inlet.X, inlet.Y, world.Inlet)
	}
	outlet, foundOut := scanColumns(grid, grid.Width()-2, 1, -1, inlet)
	if foundOut {
		grid.SetTile(outlet.X, outlet.Y, world.Outlet)
	}
	return inlet, outlet, foundIn && foundOut
}

// scanColumns walks columns from fromX to toX (inclusive) stepping by
// stride, returning the first walkable interior cell that is not the
// skip position.
func scanColumns(grid *world.Grid, fromX, toX, stride int, skip world.Position) (world.Position, bool) {
	for x := fromX; x != toX+stride; x += stride {
		for y := 1; y < grid.Height()-1; y++ {
			p := world.Position{X: x, Y: y}
			if p == skip {
				continue
			}
			if grid.TileAt(p).IsWalkable() {
				return p, true
			}
		}
	}
	return world.Position{}, false
}
