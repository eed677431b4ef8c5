// Package world provides generic 2D tile-grid primitives.
// These are engine-level constructs usable by any grid-based game.
package world

// TileKind classifies a single cell of the porous medium.
type TileKind uint8

// Tile classifications
const (
	Void TileKind = iota
	Solid
	Pore
	Biofilm
	Toxic
	FastFlow
	Inlet
	Outlet
)

// IsWalkable reports whether a game entity may occupy a tile of this kind.
func (k TileKind) IsWalkable() bool {
	switch k {
	case Pore, FastFlow, Inlet, Outlet, Biofilm:
		return true
	default:
		return false
	}
}

// String returns the name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case Void:
		return "Void"
	case Solid:
		return "Solid"
	case Pore:
		return "Pore"
	case Biofilm:
		return "Biofilm"
	case Toxic:
		return "Toxic"
	case FastFlow:
		return "FastFlow"
	case Inlet:
		return "Inlet"
	case Outlet:
		return "Outlet"
	default:
		return "Unknown"
	}
}
