// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell identifies a board square. Cells are numbered 1..N*N in row-major order.
type Cell int

// NoCell is the zero Cell. It never names a square on the board.
const NoCell Cell = 0

// Coords is a (row, col) position. It may lie outside the board.
type Coords struct {
	Row, Col int
}

// Grid is an N×N board. It is immutable and safe to copy.
type Grid struct {
	N int
}

// NewGrid creates a square grid with side n.
func NewGrid(n int) Grid {
	return Grid{N: n}
}

// Cells returns the number of squares on the board.
func (g Grid) Cells() int {
	return g.N * g.N
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c Coords) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.N && c.Col < g.N
}

// CellAt converts in-bounds coordinates to a cell identifier.
// The result is meaningless for coordinates outside the board.
func (g Grid) CellAt(c Coords) Cell {
	return Cell(c.Row*g.N + c.Col + 1)
}

// CoordsOf converts a cell identifier back to coordinates.
func (g Grid) CoordsOf(cell Cell) Coords {
	i := int(cell) - 1
	return Coords{Row: i / g.N, Col: i % g.N}
}

// Valid reports whether cell names a square on this board.
func (g Grid) Valid(cell Cell) bool {
	return cell >= 1 && int(cell) <= g.Cells()
}

// Adjacent reports whether a and b are at Manhattan distance 1.
func Adjacent(a, b Coords) bool {
	return Abs(a.Row-b.Row)+Abs(a.Col-b.Col) == 1
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
