package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilefade/engine"
	"github.com/lixenwraith/tilefade/grid"
	"github.com/lixenwraith/tilefade/status"
)

// Selector outline runes
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

// TerminalRenderer draws the grid, selector and status bar onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Layout returns the layout used by the last frame
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// Render draws one frame and shows it
// The layout is recomputed from the screen size each frame
func (r *TerminalRenderer) Render(ctx *engine.GameContext) {
	g := ctx.Grid
	width, height := r.screen.Size()
	r.layout = NewLayout(width, height, g.Rows(), g.Columns(), g.TileSize())

	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	for _, tile := range g.Tiles() {
		r.drawTile(tile, width, height)
	}
	r.drawSelector(g.Selector(), width, height)
	r.drawStatusBar(ctx, width, height)

	r.screen.Show()
}

// drawTile fills the tile block minus a one-cell gutter on the right and bottom
func (r *TerminalRenderer) drawTile(tile grid.Renderable, width, height int) {
	x0, y0 := r.layout.Cell(tile.Position())
	w := max(r.layout.CellW-1, 1)
	h := r.layout.CellH
	if h > 1 {
		h--
	}

	style := tcell.StyleDefault.Background(FadeColor(tile.Opacity()))
	limit := StatusRow(height)
	for y := y0; y < y0+h && y < limit; y++ {
		for x := x0; x < x0+w && x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawSelector outlines one tile block at the selector's position
// Existing cell backgrounds are kept
func (r *TerminalRenderer) drawSelector(sel grid.Renderable, width, height int) {
	x0, y0 := r.layout.Cell(sel.Position())
	x1 := x0 + r.layout.CellW - 1
	y1 := y0 + r.layout.CellH - 1
	if r.layout.CellH == 1 {
		// Single-row tiles: bracket the tile instead of boxing it
		r.putFg(x0, y0, '[', width, height)
		r.putFg(x1, y0, ']', width, height)
		return
	}

	for x := x0 + 1; x < x1; x++ {
		r.putFg(x, y0, boxHorizontal, width, height)
		r.putFg(x, y1, boxHorizontal, width, height)
	}
	for y := y0 + 1; y < y1; y++ {
		r.putFg(x0, y, boxVertical, width, height)
		r.putFg(x1, y, boxVertical, width, height)
	}
	r.putFg(x0, y0, boxTopLeft, width, height)
	r.putFg(x1, y0, boxTopRight, width, height)
	r.putFg(x0, y1, boxBottomLeft, width, height)
	r.putFg(x1, y1, boxBottomRight, width, height)
}

func (r *TerminalRenderer) putFg(x, y int, ch rune, width, height int) {
	if x < 0 || y < 0 || x >= width || y >= StatusRow(height) {
		return
	}
	_, _, style, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, ch, nil, style.Foreground(RgbSelector).Bold(true))
}

func (r *TerminalRenderer) drawStatusBar(ctx *engine.GameContext, width, height int) {
	y := StatusRow(height)
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := status.Summary(ctx.Status)
	x := r.drawText(1, y, text, style, width)

	var flags []string
	if ctx.IsPaused.Load() {
		flags = append(flags, "PAUSED")
	}
	if ctx.IsMuted.Load() {
		flags = append(flags, "MUTED")
	}
	if len(flags) > 0 {
		r.drawText(x+2, y, strings.Join(flags, " "), style.Foreground(RgbStatusAlert).Bold(true), width)
	}
}

// drawText writes s from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style, width int) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
