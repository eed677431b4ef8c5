// Package worldgen tests the full pipeline against the campaign table:
// connectivity, border and inlet/outlet invariants, flow bounds,
// distance correctness and byte-identical regeneration.
package worldgen

import (
	"testing"

	"arke/pkg/engine/world"
	"arke/pkg/game/level"
)

func generateAll(t *testing.T) []*World {
	t.Helper()
	worlds := make([]*World, 0, level.Count())
	for _, def := range level.All() {
		worlds = append(worlds, Generate(def))
	}
	return worlds
}

func TestGenerateAllLevelsValid(t *testing.T) {
	for _, w := range generateAll(t) {
		if msg := w.Validate(); msg != "" {
			t.Errorf("level %d: %s", w.Definition().Number, msg)
		}
	}
}

func TestBorderInvariant(t *testing.T) {
	for _, w := range generateAll(t) {
		for x := 0; x < w.Width(); x++ {
			if w.Tile(x, 0) != world.Solid || w.Tile(x, w.Height()-1) != world.Solid {
				t.Fatalf("level %d: open border tile in column %d", w.Definition().Number, x)
			}
		}
		for y := 0; y < w.Height(); y++ {
			if w.Tile(0, y) != world.Solid || w.Tile(w.Width()-1, y) != world.Solid {
				t.Fatalf("level %d: open border tile in row %d", w.Definition().Number, y)
			}
		}
	}
}

func TestWalkableCellsFormOneComponent(t *testing.T) {
	for _, w := range generateAll(t) {
		// BFS from the inlet must visit every walkable cell.
		visited := map[world.Position]bool{w.FindStartPosition(): true}
		queue := []world.Position{w.FindStartPosition()}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, dir := range world.CardinalDirections() {
				n := current.Step(dir)
				if w.Tile(n.X, n.Y).IsWalkable() && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		total := 0
		w.Grid().ForEachTile(func(x, y int, kind world.TileKind) {
			if kind.IsWalkable() {
				total++
			}
		})
		if len(visited) != total {
			t.Errorf("level %d: %d of %d walkable cells reachable from inlet",
				w.Definition().Number, len(visited), total)
		}
	}
}

func TestInletAndOutletExist(t *testing.T) {
	for _, w := range generateAll(t) {
		inlet := w.FindStartPosition()
		outlet := w.FindExitPosition()
		if w.Tile(inlet.X, inlet.Y) != world.Inlet {
			t.Errorf("level %d: start tile = %v", w.Definition().Number, w.Tile(inlet.X, inlet.Y))
		}
		if w.Tile(outlet.X, outlet.Y) != world.Outlet {
			t.Errorf("level %d: exit tile = %v", w.Definition().Number, w.Tile(outlet.X, outlet.Y))
		}
		if inlet == outlet {
			t.Errorf("level %d: inlet and outlet coincide", w.Definition().Number)
		}
	}
}

func TestFlowFieldBounds(t *testing.T) {
	for _, w := range generateAll(t) {
		cap := 3 * w.Definition().BaseFlowSpeed
		for y := 0; y < w.Height(); y++ {
			for x := 0; x < w.Width(); x++ {
				f := w.Flow(x, y)
				if f.Speed < 0 || f.Speed > cap+1e-9 {
					t.Fatalf("level %d: speed %v at (%d,%d) outside [0, %v]",
						w.Definition().Number, f.Speed, x, y, cap)
				}
				if f.Direction == world.None && f.Speed > 0 {
					t.Fatalf("level %d: positive speed with no direction at (%d,%d)",
						w.Definition().Number, x, y)
				}
				if w.Tile(x, y) == world.Solid && (f.Direction != world.None || f.Speed != 0) {
					t.Fatalf("level %d: solid cell (%d,%d) carries flow", w.Definition().Number, x, y)
				}
			}
		}
	}
}

func TestDistanceZeroExactlyOnSolid(t *testing.T) {
	for _, w := range generateAll(t) {
		for y := 0; y < w.Height(); y++ {
			for x := 0; x < w.Width(); x++ {
				zero := w.Distance(x, y) == 0
				solid := w.Tile(x, y) == world.Solid
				if zero != solid {
					t.Fatalf("level %d: distance %d on %v at (%d,%d)",
						w.Definition().Number, w.Distance(x, y), w.Tile(x, y), x, y)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, def := range level.All() {
		a := Generate(def)
		b := Generate(def)
		if !a.Grid().Equal(b.Grid()) {
			t.Errorf("level %d: tile grids differ between runs", def.Number)
			continue
		}
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				if a.Flow(x, y) != b.Flow(x, y) {
					t.Fatalf("level %d: flow differs at (%d,%d)", def.Number, x, y)
				}
				if a.Distance(x, y) != b.Distance(x, y) {
					t.Fatalf("level %d: distance differs at (%d,%d)", def.Number, x, y)
				}
			}
		}
	}
}

func TestToxicLevelsHaveToxicCells(t *testing.T) {
	for _, w := range generateAll(t) {
		def := w.Definition()
		toxic := 0
		w.Grid().ForEachTile(func(x, y int, kind world.TileKind) {
			if kind == world.Toxic {
				toxic++
			}
		})
		if def.ToxicFraction > 0 && toxic == 0 {
			t.Errorf("level %d has toxic fraction %v but no toxic cells", def.Number, def.ToxicFraction)
		}
		if def.ToxicFraction == 0 && toxic > 0 {
			t.Errorf("level %d has %d toxic cells but no toxic fraction", def.Number, toxic)
		}
	}
}

func TestPlaceBiofilm(t *testing.T) {
	def, _ := level.ByNumber(1)
	w := Generate(def)

	start := w.FindStartPosition()
	pores := w.AdjacentPores(start.X, start.Y)
	if len(pores) == 0 {
		t.Fatal("inlet has no adjacent pores")
	}
	target := pores[0]
	if !w.PlaceBiofilm(target.X, target.Y) {
		t.Fatalf("PlaceBiofilm refused walkable cell %+v", target)
	}
	if w.Tile(target.X, target.Y) != world.Biofilm {
		t.Errorf("tile after placement = %v", w.Tile(target.X, target.Y))
	}
	if msg := w.Validate(); msg != "" {
		t.Errorf("biofilm placement broke an invariant: %s", msg)
	}

	if w.PlaceBiofilm(0, 0) {
		t.Error("PlaceBiofilm accepted a solid border cell")
	}
	if w.PlaceBiofilm(-5, 3) {
		t.Error("PlaceBiofilm accepted an out-of-bounds cell")
	}
}

func TestMostOpenCells(t *testing.T) {
	def, _ := level.ByNumber(1)
	w := Generate(def)

	open := w.MostOpenCells(5)
	if len(open) == 0 {
		t.Fatal("MostOpenCells returned nothing")
	}
	if len(open) > 5 {
		t.Fatalf("MostOpenCells(5) returned %d cells", len(open))
	}
	for i := 1; i < len(open); i++ {
		prev := w.Distance(open[i-1].X, open[i-1].Y)
		cur := w.Distance(open[i].X, open[i].Y)
		if cur > prev {
			t.Errorf("MostOpenCells not sorted: distance %d before %d", prev, cur)
		}
	}
	for _, p := range open {
		if !w.Tile(p.X, p.Y).IsWalkable() {
			t.Errorf("MostOpenCells returned non-walkable %+v", p)
		}
	}
}

func TestAdjacentPoresExcludesBlockedKinds(t *testing.T) {
	def, _ := level.ByNumber(5) // has toxic cells
	w := Generate(def)
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			for _, p := range w.AdjacentPores(x, y) {
				switch w.Tile(p.X, p.Y) {
				case world.Pore, world.FastFlow, world.Inlet:
				default:
					t.Fatalf("AdjacentPores(%d,%d) returned %v at %+v", x, y, w.Tile(p.X, p.Y), p)
				}
			}
		}
	}
}
