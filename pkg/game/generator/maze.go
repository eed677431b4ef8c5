package generator

import (
	"arke/pkg/engine/rng"
	"arke/pkg/engine/world"
	"arke/pkg/game/level"
)

// widenChance is the fraction of carved passage cells the widening pass
// bulges outward by one cell, so the sediment is not all single-tile
// corridors.
const widenChance = 0.30

// MazeGenerator produces the tight labyrinth of the deep-sediment biome
// with a recursive-backtracker carve on a half-resolution grid mapped
// back to full resolution.
type MazeGenerator struct{}

// Name returns the name of this generator.
func (g *MazeGenerator) Name() string {
	return "Backtracker Maze"
}

type coarseCell struct {
	x int
	y int
}

// Generate carves a perfect maze, then randomly widens a share of the
// passages.
func (g *MazeGenerator) Generate(def level.Definition, grid *world.Grid, r *rng.RNG) {
	grid.FillInterior(world.Solid)

	// Coarse cell (cx,cy) maps to full-resolution (2cx+1, 2cy+1); the
	// odd offset keeps every carve inside the playable interior.
	cw := (grid.Width() - 1) / 2
	ch := (grid.Height() - 1) / 2
	if cw < 1 || ch < 1 {
		return
	}

	visited := make([]bool, cw*ch)
	stack := []coarseCell{{0, 0}}
	visited[0] = true
	grid.SetTile(1, 1, world.Pore)

	deltas := [4]coarseCell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []coarseCell
		for _, d := range deltas {
			n := coarseCell{cur.x + d.x, cur.y + d.y}
			if n.x < 0 || n.x >= cw || n.y < 0 || n.y >= ch {
				continue
			}
			if !visited[n.y*cw+n.x] {
				options = append(options, n)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := options[r.IntRange(0, len(options)-1)]
		visited[next.y*cw+next.x] = true

		// Carve the wall between the two cells and the cell itself.
		grid.SetTile(2*cur.x+1+(next.x-cur.x), 2*cur.y+1+(next.y-cur.y), world.Pore)
		grid.SetTile(2*next.x+1, 2*next.y+1, world.Pore)

		stack = append(stack, next)
	}

	g.widenPassages(grid, r)
}

// widenPassages bulges a fraction of the carved cells by one cell in a
// random cardinal direction. Candidates are snapshotted first so a widened
// cell cannot cascade into further widening within the same pass.
func (g *MazeGenerator) widenPassages(grid *world.Grid, r *rng.RNG) {
	var carved []world.Position
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		if kind == world.Pore {
			carved = append(carved, world.Position{X: x, Y: y})
		}
	})

	dirs := world.CardinalDirections()
	for _, p := range carved {
		if !r.Chance(widenChance) {
			continue
		}
		n := p.Step(dirs[r.IntRange(0, len(dirs)-1)])
		if grid.IsPlayablePosition(n.X, n.Y) {
			grid.SetTile(n.X, n.Y, world.Pore)
		}
	}
}
