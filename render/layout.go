package render

import (
	"math"

	"github.com/lixenwraith/tilefade/vmath"
)

const (
	statusBarHeight = 1
	minTileHeight   = 1
	tileAspect      = 2 // terminal cells are about twice as tall as wide
)

// Layout maps grid space onto terminal cells
// A tile is CellW x CellH cells, centred in the area above the status bar
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int
	TileSize         float64
}

// NewLayout fits a rows x columns grid into a width x height screen
func NewLayout(width, height, rows, columns int, tileSize float64) Layout {
	area := max(height-statusBarHeight, 0)

	cellH := 0
	if rows > 0 && columns > 0 {
		cellH = min(area/rows, width/(columns*tileAspect))
	}
	cellH = max(cellH, minTileHeight)
	cellW := cellH * tileAspect

	return Layout{
		OriginX:  max((width-columns*cellW)/2, 0),
		OriginY:  max((area-rows*cellH)/2, 0),
		CellW:    cellW,
		CellH:    cellH,
		TileSize: tileSize,
	}
}

// Cell maps a grid-space point to the nearest terminal cell
func (l Layout) Cell(p vmath.Vec2F) (x, y int) {
	if l.TileSize <= 0 {
		return l.OriginX, l.OriginY
	}
	x = l.OriginX + int(math.Round(p.X/l.TileSize*float64(l.CellW)))
	y = l.OriginY + int(math.Round(p.Y/l.TileSize*float64(l.CellH)))
	return x, y
}

// StatusRow is the screen row of the status bar
func StatusRow(height int) int {
	return height - statusBarHeight
}
