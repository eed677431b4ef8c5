package world

// Position identifies a cell by its grid coordinates.
type Position struct {
	X int
	Y int
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid represents the porous-medium map with encapsulated tile storage.
// Tiles are stored row-major in a flat slice.
type Grid struct {
	width  int
	height int
	tiles  []TileKind
}

// NewGrid creates a grid of the given dimensions with every tile Solid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]TileKind, width*height),
	}
	g.Fill(Solid)
	return g
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds.
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the playable area
// (not on the perimeter). This ensures a 1-cell solid border around the
// entire map.
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid.
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// Tile returns the kind at the given position. Out-of-bounds reads
// return Solid so callers can treat the world as walled on all sides.
func (g *Grid) Tile(x, y int) TileKind {
	if !g.IsValidPosition(x, y) {
		return Solid
	}
	return g.tiles[y*g.width+x]
}

// TileAt returns the kind at the given position.
func (g *Grid) TileAt(p Position) TileKind {
	return g.Tile(p.X, p.Y)
}

// SetTile writes the kind at the given position. Out-of-bounds writes are
// a no-op; the return value reports whether the write happened.
func (g *Grid) SetTile(x, y int, kind TileKind) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[y*g.width+x] = kind
	return true
}

// Fill sets every tile to the given kind.
func (g *Grid) Fill(kind TileKind) {
	for i := range g.tiles {
		g.tiles[i] = kind
	}
}

// FillInterior sets every playable (non-perimeter) tile to the given kind.
func (g *Grid) FillInterior(kind TileKind) {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			g.tiles[y*g.width+x] = kind
		}
	}
}

// ForEachTile iterates over all tiles in row-major order.
func (g *Grid) ForEachTile(fn func(x, y int, kind TileKind)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}

// CountTiles returns how many tiles match the predicate.
func (g *Grid) CountTiles(match func(TileKind) bool) int {
	n := 0
	for _, k := range g.tiles {
		if match(k) {
			n++
		}
	}
	return n
}

// Porosity returns the fraction of non-solid tiles in the grid.
func (g *Grid) Porosity() float64 {
	open := g.CountTiles(func(k TileKind) bool { return k != Solid })
	return float64(open) / float64(len(g.tiles))
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		tiles:  make([]TileKind, len(g.tiles)),
	}
	copy(c.tiles, g.tiles)
	return c
}

// Equal reports whether two grids have identical dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, k := range g.tiles {
		if other.tiles[i] != k {
			return false
		}
	}
	return true
}
