package world

// Direction represents a cardinal movement or flow direction.
// None marks cells with no dominant pressure gradient.
type Direction int

// Direction constants
const (
	None Direction = iota
	Right
	Down
	Left
	Up
)

// FlowPriority returns the directions in the fixed order the flow solver
// evaluates pressure drops. Changing the order changes tie-breaking and
// therefore the generated flow fields.
func FlowPriority() []Direction {
	return []Direction{Right, Left, Down, Up}
}

// CardinalDirections returns all four movement directions for iteration.
func CardinalDirections() []Direction {
	return []Direction{Right, Down, Left, Up}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the defined values.
func (d Direction) IsValid() bool {
	return d >= None && d <= Up
}

// Opposite returns the opposite direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Down:
		return Up
	case Up:
		return Down
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	default:
		return 0, 0
	}
}
