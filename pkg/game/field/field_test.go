// Package field tests the flow solver and the distance transform on
// crafted grids with known analytic answers.
package field

import (
	"math"
	"testing"

	"arke/pkg/engine/world"
)

// openGrid builds a width x height grid with a solid border and an
// all-pore interior.
func openGrid(width, height int) *world.Grid {
	g := world.NewGrid(width, height)
	g.FillInterior(world.Pore)
	return g
}

func TestFlowStraightCorridor(t *testing.T) {
	// A 10x3 corridor: one open row between solid walls. The pressure
	// profile relaxes to a near-linear ramp, so every interior cell
	// except the rightmost column must point Right at the capped speed
	// (the raw gradient speed exceeds the 3x cap here).
	const baseSpeed = 0.6
	grid := openGrid(10, 3)
	flow := SolveFlow(grid, baseSpeed)

	capSpeed := speedCapFactor * baseSpeed
	for x := 1; x <= 7; x++ {
		f := flow.At(x, 1)
		if f.Direction != world.Right {
			t.Errorf("corridor cell (%d,1) direction = %v, want Right", x, f.Direction)
		}
		if math.Abs(f.Speed-capSpeed) > 1e-9 {
			t.Errorf("corridor cell (%d,1) speed = %v, want capped %v", x, f.Speed, capSpeed)
		}
	}
	// The rightmost interior column borders the solid outlet wall, so a
	// near-zero gradient (or no direction at all) is acceptable there.
	if f := flow.At(8, 1); f.Direction != world.Right && f.Direction != world.None {
		t.Errorf("outlet-adjacent cell direction = %v", f.Direction)
	}
}

func TestFlowSolidCellsAreInert(t *testing.T) {
	grid := openGrid(12, 8)
	grid.SetTile(5, 4, world.Solid)
	flow := SolveFlow(grid, 1.0)
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		if kind != world.Solid {
			return
		}
		if f := flow.At(x, y); f.Direction != world.None || f.Speed != 0 {
			t.Errorf("solid cell (%d,%d) has flow %+v", x, y, f)
		}
	})
}

func TestFlowSpeedBounds(t *testing.T) {
	const baseSpeed = 0.8
	grid := openGrid(20, 12)
	grid.SetTile(6, 5, world.FastFlow)
	grid.SetTile(7, 5, world.FastFlow)
	flow := SolveFlow(grid, baseSpeed)

	cap := speedCapFactor * baseSpeed
	flow.ForEach(func(x, y int, f Flow) {
		if f.Speed < 0 {
			t.Errorf("cell (%d,%d) has negative speed %v", x, y, f.Speed)
		}
		if f.Speed > cap+1e-9 {
			t.Errorf("cell (%d,%d) speed %v exceeds cap %v", x, y, f.Speed, cap)
		}
		if f.Direction == world.None && f.Speed > 0 {
			t.Errorf("cell (%d,%d) has speed %v with no direction", x, y, f.Speed)
		}
	})
}

func TestFlowOutOfBounds(t *testing.T) {
	flow := SolveFlow(openGrid(6, 6), 1.0)
	for _, p := range []world.Position{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 6, Y: 0}, {X: 0, Y: 6}} {
		if f := flow.At(p.X, p.Y); f.Direction != world.None || f.Speed != 0 {
			t.Errorf("At(%d,%d) = %+v, want zero flow out of bounds", p.X, p.Y, f)
		}
	}
}

func TestFlowDeterministic(t *testing.T) {
	a := SolveFlow(openGrid(15, 10), 0.7)
	b := SolveFlow(openGrid(15, 10), 0.7)
	if !a.Equal(b) {
		t.Error("SolveFlow is not deterministic for identical grids")
	}
}

func TestDistanceTrivialFiveByFive(t *testing.T) {
	d := ComputeDistance(openGrid(5, 5))
	grid := openGrid(5, 5)
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		got := d.At(x, y)
		if kind == world.Solid {
			if got != 0 {
				t.Errorf("solid cell (%d,%d) distance = %d, want 0", x, y, got)
			}
			return
		}
		// BFS graph distance: cells adjacent to the border wall sit at
		// 1, the single center cell at 2.
		want := 1
		if x == 2 && y == 2 {
			want = 2
		}
		if got != want {
			t.Errorf("interior cell (%d,%d) distance = %d, want %d on a 5x5", x, y, got, want)
		}
	})
}

func TestDistanceZeroIffSolid(t *testing.T) {
	grid := openGrid(16, 10)
	grid.SetTile(7, 4, world.Solid)
	grid.SetTile(8, 4, world.Toxic)
	d := ComputeDistance(grid)
	grid.ForEachTile(func(x, y int, kind world.TileKind) {
		dist := d.At(x, y)
		if (dist == 0) != (kind == world.Solid) {
			t.Errorf("cell (%d,%d) kind %v has distance %d", x, y, kind, dist)
		}
	})
}

func TestDistanceGrowsTowardCenter(t *testing.T) {
	d := ComputeDistance(openGrid(11, 11))
	if got := d.At(5, 5); got != 5 {
		t.Errorf("center distance = %d, want 5", got)
	}
	if got := d.At(1, 5); got != 1 {
		t.Errorf("wall-adjacent distance = %d, want 1", got)
	}
}

func TestDistanceOutOfBounds(t *testing.T) {
	d := ComputeDistance(openGrid(6, 6))
	if got := d.At(-3, 2); got != 0 {
		t.Errorf("out-of-bounds distance = %d, want 0", got)
	}
}
