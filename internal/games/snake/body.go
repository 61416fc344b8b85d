package snake

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Segment is one square of the snake.
type Segment struct {
	Coords core.Coords
	Cell   core.Cell
}

// Body is the snake: an ordered sequence of segments from tail (index 0) to
// head (index Len()-1), stored in a ring buffer so that both ends can grow
// and shrink in O(1). Body also tracks the set of cells it occupies.
//
// Callers keep the body free of duplicates and keep neighbouring segments
// grid-adjacent; Body does not check either.
type Body struct {
	buf   []Segment
	tail  int // buf index of the tail segment
	n     int
	cells mapset.Set[core.Cell]
}

// NewBody creates a body of length 1.
func NewBody(start Segment) *Body {
	b := &Body{
		buf:   make([]Segment, 16),
		cells: mapset.New[core.Cell](),
	}
	b.buf[0] = start
	b.n = 1
	b.cells.Put(start.Cell)
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// At returns the i-th segment counted from the tail.
func (b *Body) At(i int) Segment {
	return b.buf[b.index(i)]
}

// Head returns the leading segment.
func (b *Body) Head() Segment {
	return b.At(b.n - 1)
}

// Tail returns the trailing segment. It equals Head when Len is 1.
func (b *Body) Tail() Segment {
	return b.At(0)
}

// Has reports whether the body covers cell.
func (b *Body) Has(cell core.Cell) bool {
	return b.cells.Has(cell)
}

// Occupies is an alias of Has that reads better at call sites.
func (b *Body) Occupies(cell core.Cell) bool {
	return b.cells.Has(cell)
}

// GrowHead adds s in front of the current head.
func (b *Body) GrowHead(s Segment) {
	b.reserve()
	b.buf[b.index(b.n)] = s
	b.n++
	b.cells.Put(s.Cell)
}

// ReleaseTail drops the tail segment. A body of length 1 is left unchanged:
// its tail is its head.
func (b *Body) ReleaseTail() {
	if b.n <= 1 {
		return
	}
	old := b.buf[b.tail]
	b.tail = (b.tail + 1) % len(b.buf)
	b.n--
	b.cells.Remove(old.Cell)
}

// GrowTail adds s behind the current tail; s becomes the new tail.
func (b *Body) GrowTail(s Segment) {
	b.reserve()
	b.tail = (b.tail - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.tail] = s
	b.n++
	b.cells.Put(s.Cell)
}

// Reverse flips the body end for end: the head becomes the tail.
func (b *Body) Reverse() {
	for i, j := 0, b.n-1; i < j; i, j = i+1, j-1 {
		bi, bj := b.index(i), b.index(j)
		b.buf[bi], b.buf[bj] = b.buf[bj], b.buf[bi]
	}
}

// Segments returns a copy of the segments from tail to head.
func (b *Body) Segments() []Segment {
	out := make([]Segment, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Cells returns the occupied cells from tail to head.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, b.n)
	for i := range out {
		out[i] = b.At(i).Cell
	}
	return out
}

func (b *Body) index(i int) int {
	return (b.tail + i) % len(b.buf)
}

// reserve makes room for one more segment, unrolling the ring so the tail
// sits at index 0.
func (b *Body) reserve() {
	if b.n < len(b.buf) {
		return
	}
	grown := make([]Segment, 2*len(b.buf))
	for i := 0; i < b.n; i++ {
		grown[i] = b.At(i)
	}
	b.buf = grown
	b.tail = 0
}
