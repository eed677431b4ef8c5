package generator

import (
	"arke/pkg/engine/rng"
	"arke/pkg/engine/world"
	"arke/pkg/game/level"
)

// diskCalibration converts the solid-area target into a stamp count.
// Stamped disks overlap heavily, so the count is a calibration, not an
// exact porosity guarantee.
const diskCalibration = 6

// DiskPackingGenerator produces an open, sandy pore structure by stamping
// solid circular grains into an all-pore field.
type DiskPackingGenerator struct{}

// Name returns the name of this generator.
func (g *DiskPackingGenerator) Name() string {
	return "Disk Packing"
}

// Generate fills the playable interior with pores, then stamps random
// solid grains until the stamp budget derived from the target porosity
// is spent.
func (g *DiskPackingGenerator) Generate(def level.Definition, grid *world.Grid, r *rng.RNG) {
	grid.FillInterior(world.Pore)

	w, h := grid.Width(), grid.Height()
	stamps := int(float64(w*h) * (1 - def.TargetPorosity) / diskCalibration)
	for i := 0; i < stamps; i++ {
		cx := r.IntRange(1, w-2)
		cy := r.IntRange(1, h-2)
		radius := r.IntRange(def.GrainMin, def.GrainMax)
		stampDisk(grid, cx, cy, radius, world.Solid)
	}
}
