// Package generator contains the terrain-shaping algorithms that produce
// the initial Solid/Pore layout of a level. Generators fill only the
// playable interior, never guarantee connectivity (that is the repair
// pass's job), and terminate in loops bounded by grid area.
package generator

import (
	"arke/pkg/engine/rng"
	"arke/pkg/engine/world"
	"arke/pkg/game/level"
)

// Generator is an interface for terrain generation algorithms.
type Generator interface {
	Generate(def level.Definition, grid *world.Grid, r *rng.RNG)
	Name() string
}

// Available generators
var (
	DiskPacking = &DiskPackingGenerator{}
	Maze        = &MazeGenerator{}
	Highway     = &HighwayGenerator{}
)

// ForEnvironment selects the terrain generator for an environment index.
// The soil and seep biomes share the open disk-packed structure; the
// permafrost and hydrothermal biomes share the fast-channel structure.
func ForEnvironment(env int) Generator {
	switch env {
	case level.DeepSediment:
		return Maze
	case level.PermafrostEdge, level.HydrothermalRealm:
		return Highway
	default:
		return DiskPacking
	}
}

// stampDisk writes kind into every playable cell within radius of the
// center, using the squared-distance test so disks stay round.
func stampDisk(grid *world.Grid, cx, cy, radius int, kind world.TileKind) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if grid.IsPlayablePosition(x, y) {
				grid.SetTile(x, y, kind)
			}
		}
	}
}
