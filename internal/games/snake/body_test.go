package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// bodyOf builds a body from coordinates listed tail first.
func bodyOf(g core.Grid, coords ...core.Coords) *Body {
	b := NewBody(Segment{Coords: coords[0], Cell: g.CellAt(coords[0])})
	for _, c := range coords[1:] {
		b.GrowHead(Segment{Coords: c, Cell: g.CellAt(c)})
	}
	return b
}

// checkBody verifies that the body has no repeated cells, that consecutive
// segments are adjacent and that the occupancy set matches the segments.
func checkBody(t *testing.T, g core.Grid, b *Body) {
	t.Helper()

	seen := make(map[core.Cell]bool, b.Len())
	segs := b.Segments()
	for i, s := range segs {
		if !g.InBounds(s.Coords) {
			t.Fatalf("segment %d out of bounds: %+v", i, s.Coords)
		}
		if g.CellAt(s.Coords) != s.Cell {
			t.Fatalf("segment %d cell %d does not match coords %+v", i, s.Cell, s.Coords)
		}
		if seen[s.Cell] {
			t.Fatalf("cell %d appears twice in body %v", s.Cell, b.Cells())
		}
		seen[s.Cell] = true
		if !b.Has(s.Cell) {
			t.Fatalf("occupancy set is missing cell %d", s.Cell)
		}
		if i > 0 && !core.Adjacent(segs[i-1].Coords, s.Coords) {
			t.Fatalf("segments %d and %d are not adjacent: %+v %+v", i-1, i, segs[i-1].Coords, s.Coords)
		}
	}
	if b.cells.Size() != b.Len() {
		t.Fatalf("occupancy set has %d cells, body has %d segments", b.cells.Size(), b.Len())
	}
}

func TestBodySingleSegment(t *testing.T) {
	g := core.NewGrid(15)
	b := bodyOf(g, core.Coords{Row: 5, Col: 5})

	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if b.Head() != b.Tail() {
		t.Error("head and tail should coincide for a single segment")
	}

	b.ReleaseTail()
	if b.Len() != 1 || !b.Has(81) {
		t.Errorf("ReleaseTail on length 1 should be a no-op, got %v", b.Cells())
	}
}

func TestBodyMoveAndGrow(t *testing.T) {
	g := core.NewGrid(15)
	b := bodyOf(g, core.Coords{Row: 5, Col: 5}, core.Coords{Row: 5, Col: 6})

	// Move right once.
	next := core.Coords{Row: 5, Col: 7}
	b.GrowHead(Segment{Coords: next, Cell: g.CellAt(next)})
	b.ReleaseTail()

	if got, want := b.Cells(), []core.Cell{82, 83}; !slices.Equal(got, want) {
		t.Errorf("Cells = %v, want %v", got, want)
	}
	if b.Has(81) {
		t.Error("released tail cell should no longer be occupied")
	}

	back := core.Coords{Row: 5, Col: 5}
	b.GrowTail(Segment{Coords: back, Cell: g.CellAt(back)})
	if got, want := b.Cells(), []core.Cell{81, 82, 83}; !slices.Equal(got, want) {
		t.Errorf("Cells after GrowTail = %v, want %v", got, want)
	}
	checkBody(t, g, b)
}

func TestBodyReverse(t *testing.T) {
	g := core.NewGrid(15)
	b := bodyOf(g,
		core.Coords{Row: 1, Col: 1},
		core.Coords{Row: 1, Col: 2},
		core.Coords{Row: 2, Col: 2},
		core.Coords{Row: 3, Col: 2},
	)
	before := b.Cells()

	b.Reverse()

	after := b.Cells()
	slices.Reverse(after)
	if !slices.Equal(before, after) {
		t.Errorf("Reverse produced %v from %v", b.Cells(), before)
	}
	if b.Head().Coords != (core.Coords{Row: 1, Col: 1}) {
		t.Errorf("head after reverse = %+v, want (1,1)", b.Head().Coords)
	}
	checkBody(t, g, b)
}

func TestBodyRingGrowth(t *testing.T) {
	g := core.NewGrid(40)
	b := bodyOf(g, core.Coords{Row: 0, Col: 0})

	// Slide right a few times so the ring's tail index moves off zero,
	// then grow well past the initial capacity from both ends.
	for col := 1; col <= 5; col++ {
		c := core.Coords{Row: 0, Col: col}
		b.GrowHead(Segment{Coords: c, Cell: g.CellAt(c)})
		b.ReleaseTail()
	}
	for col := 6; col < 30; col++ {
		c := core.Coords{Row: 0, Col: col}
		b.GrowHead(Segment{Coords: c, Cell: g.CellAt(c)})
	}
	for row := 1; row < 10; row++ {
		c := core.Coords{Row: row, Col: 5}
		b.GrowTail(Segment{Coords: c, Cell: g.CellAt(c)})
	}

	if b.Len() != 34 {
		t.Fatalf("Len = %d, want 34", b.Len())
	}
	if b.Tail().Coords != (core.Coords{Row: 9, Col: 5}) {
		t.Errorf("tail = %+v, want (9,5)", b.Tail().Coords)
	}
	if b.Head().Coords != (core.Coords{Row: 0, Col: 29}) {
		t.Errorf("head = %+v, want (0,29)", b.Head().Coords)
	}
	checkBody(t, g, b)
}
