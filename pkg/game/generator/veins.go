package generator

import (
	"arke/pkg/engine/rng"
	"arke/pkg/engine/world"
	"arke/pkg/game/level"
)

// Vein tuning constants.
const (
	minVeins      = 3
	maxVeins      = 6
	minVeinLength = 8
	maxVeinLength = 20
	wobbleChance  = 0.35
)

// PaintVeins overlays toxic seep veins on a generated grid: a handful of
// wobbling polylines that poison the pores they cross. Only Pore cells are
// converted, so solid grains and fast channels keep their classification.
// Levels without a toxic fraction are left untouched.
func PaintVeins(def level.Definition, grid *world.Grid, r *rng.RNG) {
	if def.ToxicFraction <= 0 {
		return
	}

	veins := minVeins + int(def.ToxicFraction*12)
	if veins > maxVeins {
		veins = maxVeins
	}

	w, h := grid.Width(), grid.Height()
	for v := 0; v < veins; v++ {
		length := r.IntRange(minVeinLength, maxVeinLength)
		width := r.IntRange(1, 2)
		dirs := world.CardinalDirections()
		dir := dirs[r.IntRange(0, len(dirs)-1)]
		lateral := perpendicular(dir)

		x := r.IntRange(1, w-2)
		y := r.IntRange(1, h-2)

		for step := 0; step < length; step++ {
			paintVeinCell(grid, x, y)
			if width > 1 {
				lx, ly := lateral.Delta()
				paintVeinCell(grid, x+lx, y+ly)
			}

			if r.Chance(wobbleChance) {
				lx, ly := lateral.Delta()
				if r.Chance(0.5) {
					lx, ly = -lx, -ly
				}
				x, y = clampInterior(grid, x+lx, y+ly)
			}

			dx, dy := dir.Delta()
			x, y = clampInterior(grid, x+dx, y+dy)
		}
	}
}

func paintVeinCell(grid *world.Grid, x, y int) {
	if grid.Tile(x, y) == world.Pore {
		grid.SetTile(x, y, world.Toxic)
	}
}

// perpendicular returns a lateral direction for a vein heading.
func perpendicular(d world.Direction) world.Direction {
	switch d {
	case world.Right, world.Left:
		return world.Down
	default:
		return world.Right
	}
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
