package gui

import (
	"github.com/lixenwraith/tilefade/engine"
	"github.com/lixenwraith/tilefade/vmath"
)

// hudHeight reserves pixels for the status line
const hudHeight = 20

// Geometry maps grid space onto window pixels
type Geometry struct {
	OriginX, OriginY float64
	TilePx           float64 // tile edge in pixels
	scale            float64 // pixels per grid unit
}

// NewGeometry fits the grid into a width x height window, centred above the HUD
func NewGeometry(width, height, rows, columns int, tileSize float64) Geometry {
	area := float64(max(height-hudHeight, 0))
	px := engine.FitTileSize(float64(width), area, rows, columns)
	if px <= 0 || tileSize <= 0 {
		return Geometry{}
	}
	return Geometry{
		OriginX: (float64(width) - px*float64(columns)) / 2,
		OriginY: (area - px*float64(rows)) / 2,
		TilePx:  px,
		scale:   px / tileSize,
	}
}

// Point maps a grid-space point to pixels
func (g Geometry) Point(p vmath.Vec2F) (x, y float64) {
	return g.OriginX + p.X*g.scale, g.OriginY + p.Y*g.scale
}
