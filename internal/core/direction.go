package core

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in clockwise order starting from up.
var Directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Opposite returns the reverse direction. Opposite is its own inverse.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Step returns the coordinates one square away from c in direction d.
func (d Direction) Step(c Coords) Coords {
	switch d {
	case DirUp:
		return Coords{Row: c.Row - 1, Col: c.Col}
	case DirRight:
		return Coords{Row: c.Row, Col: c.Col + 1}
	case DirDown:
		return Coords{Row: c.Row + 1, Col: c.Col}
	case DirLeft:
		return Coords{Row: c.Row, Col: c.Col - 1}
	}
	return c
}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// DirectionBetween returns the direction leading from a to b.
// The boolean is false unless the two coordinates are grid-adjacent.
func DirectionBetween(a, b Coords) (Direction, bool) {
	for _, d := range Directions {
		if d.Step(a) == b {
			return d, true
		}
	}
	return DirUp, false
}
