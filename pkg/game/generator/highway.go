package generator

import (
	"math"

	"arke/pkg/engine/rng"
	"arke/pkg/engine/world"
	"arke/pkg/game/level"
)

// Fast-channel tuning constants.
const (
	minBands      = 3
	maxBands      = 5
	minBandWidth  = 2
	maxBandWidth  = 4
	minChambers   = 3
	maxChambers   = 6
	flowWindow    = 2 // vertical half-window for FastFlow reclassification
	flowNeighbors = 4 // pore neighbors in the window required for FastFlow
)

// HighwayGenerator produces the fast-channel biomes: a few sinusoidal
// horizontal highways joined by vertical connectors and round chambers,
// with the densest channel cells reclassified as FastFlow.
type HighwayGenerator struct{}

// Name returns the name of this generator.
func (g *HighwayGenerator) Name() string {
	return "Flow Highway"
}

// Generate carves the highways into an all-solid interior.
func (g *HighwayGenerator) Generate(def level.Definition, grid *world.Grid, r *rng.RNG) {
	grid.FillInterior(world.Solid)

	w, h := grid.Width(), grid.Height()
	bands := r.IntRange(minBands, maxBands)

	for b := 0; b < bands; b++ {
		baseY := (h * (b + 1)) / (bands + 1)
		bandWidth := r.IntRange(minBandWidth, maxBandWidth)
		amplitude := r.FloatRange(1, 3)
		frequency := r.FloatRange(0.15, 0.35)
		phase := r.FloatRange(0, 2*math.Pi)

		for x := 1; x <= w-2; x++ {
			wobble := amplitude * math.Sin(float64(x)*frequency+phase)
			top := baseY + int(math.Round(wobble))
			for dy := 0; dy < bandWidth; dy++ {
				if grid.IsPlayablePosition(x, top+dy) {
					grid.SetTile(x, top+dy, world.Pore)
				}
			}
		}
	}

	// Vertical connector segments between random columns.
	connectors := bands + r.IntRange(0, 2)
	for i := 0; i < connectors; i++ {
		x := r.IntRange(2, w-3)
		y1 := r.IntRange(1, h-2)
		y2 := r.IntRange(1, h-2)
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			grid.SetTile(x, y, world.Pore)
		}
	}

	// Round chambers as side pockets.
	chambers := r.IntRange(minChambers, maxChambers)
	for i := 0; i < chambers; i++ {
		cx := r.IntRange(2, w-3)
		cy := r.IntRange(2, h-3)
		stampDisk(grid, cx, cy, r.IntRange(2, 4), world.Pore)
	}

	g.markFastFlow(grid)
}

// markFastFlow reclassifies pore cells whose vertical window of five cells
// is entirely open. Density in the column is a cheap proxy separating main
// channels from side pockets. The scan snapshots candidates first so a
// reclassified cell does not skew its neighbors' counts.
func (g *HighwayGenerator) markFastFlow(grid *world.Grid) {
	var fast []world.Position
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		if kind != world.Pore {
			return
		}
		open := 0
		for dy := -flowWindow; dy <= flowWindow; dy++ {
			if dy == 0 {
				continue
			}
			if grid.Tile(x, y+dy) == world.Pore {
				open++
			}
		}
		if open >= flowNeighbors {
			fast = append(fast, world.Position{X: x, Y: y})
		}
	})
	for _, p := range fast {
		grid.SetTile(p.X, p.Y, world.FastFlow)
	}
}
