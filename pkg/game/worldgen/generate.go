package worldgen

import (
	"arke/pkg/engine/rng"
	"arke/pkg/engine/world"
	"arke/pkg/game/field"
	"arke/pkg/game/generator"
	"arke/pkg/game/level"
	"arke/pkg/game/setup"
	"arke/pkg/logger"
)

// Generate builds the world for a level definition. The pipeline is
// synchronous and runs to completion within the call; the seed is
// derived from the definition, so the same level always regenerates an
// identical world. Panics if the result violates a playability
// invariant — generation is designed to always succeed, so a violation
// is a logic defect, not a runtime condition.
func Generate(def level.Definition) *World {
	seed := rng.SeedFor(def.Environment, def.ColonyGoal, def.Width, def.Height)
	r := rng.New(seed)
	grid := world.NewGrid(def.Width, def.Height)

	gen := generator.ForEnvironment(def.Environment)
	logger.Log.WithFields(map[string]interface{}{
		"level":       def.Number,
		"environment": level.EnvironmentByIndex(def.Environment).Name,
		"generator":   gen.Name(),
		"size":        [2]int{def.Width, def.Height},
		"seed":        seed,
	}).Debug("generating terrain")
	gen.Generate(def, grid, r)
	generator.PaintVeins(def, grid, r)

	start, converted := setup.RepairConnectivity(grid)
	setup.EnforceBoundary(grid)
	inlet, outlet, placed := setup.PlaceInletOutlet(grid)

	flow := field.SolveFlow(grid, def.BaseFlowSpeed)
	distance := field.ComputeDistance(grid)

	w := &World{
		grid:     grid,
		flow:     flow,
		distance: distance,
		def:      def,
		inlet:    inlet,
		outlet:   outlet,
	}

	logger.Log.WithFields(map[string]interface{}{
		"level":    def.Number,
		"start":    start,
		"inlet":    inlet,
		"outlet":   outlet,
		"repaired": converted,
		"porosity": grid.Porosity(),
	}).Debug("world generated")

	if !placed {
		panic("generated invalid world: inlet/outlet placement failed")
	}
	if msg := w.Validate(); msg != "" {
		panic("generated invalid world: " + msg)
	}
	return w
}
