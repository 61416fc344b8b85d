package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellKind is what a board square shows.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindSnake
	KindHead
	KindFood
	KindReversingFood
	KindObstacle
)

// KindAt classifies a cell. The snake is drawn over food, food over
// obstacles.
func (s *GameState) KindAt(cell core.Cell) CellKind {
	switch {
	case s.Body.Has(cell):
		if cell == s.Body.Head().Cell {
			return KindHead
		}
		return KindSnake
	case cell == s.Food.Cell:
		if s.Food.Reverses {
			return KindReversingFood
		}
		return KindFood
	case s.Obstacles.Has(cell):
		return KindObstacle
	}
	return KindEmpty
}

type glyph struct {
	left, right rune
	color       core.Color
}

var glyphs = map[CellKind]glyph{
	KindEmpty:         {' ', ' ', core.ColorDefault},
	KindSnake:         {'▓', '▓', core.ColorGreen},
	KindHead:          {'█', '█', core.ColorBrightGreen},
	KindFood:          {'(', ')', core.ColorRed},
	KindReversingFood: {'<', '>', core.ColorMagenta},
	KindObstacle:      {'#', '#', core.ColorGray},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.RequiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderBoard(dst)

	switch {
	case g.state.GameOver:
		best := fmt.Sprintf("Highest Score: %d", g.keeper.Best())
		if g.newBest {
			best += " (new!)"
		}
		g.renderOverlay(dst,
			"Game Over",
			fmt.Sprintf("Score: %d", g.state.Score),
			best,
			"",
			"R: New Game   B: Exit",
		)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Level %d %s | Score: %d  Best: %d",
		g.state.Level.ID, g.state.Level.Name, g.state.Score, g.keeper.Best())
	dst.DrawColoredText(0, 0, hud, core.ColorBrightWhite)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorDarkGray)
	}
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin(dst *core.Screen) (x, y int) {
	w, _ := g.RequiredSize()
	return (dst.Width() - w) / 2, hudHeight
}

// renderBoard draws the frame and every cell.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.engine.Grid()
	w, h := g.RequiredSize()
	ox, oy := g.boardOrigin(dst)
	dst.DrawBox(ox, oy, w, h-hudHeight, core.ColorWhite)

	for cell := core.Cell(1); int(cell) <= grid.Cells(); cell++ {
		c := grid.CoordsOf(cell)
		gl := glyphs[g.state.KindAt(cell)]
		x := ox + 1 + 2*c.Col
		y := oy + 1 + c.Row
		dst.SetColored(x, y, gl.left, gl.color)
		dst.SetColored(x+1, y, gl.right, gl.color)
	}
}

// renderOverlay draws a centered box with the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l)
	}
}
