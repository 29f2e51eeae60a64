package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/tilefade/engine"
	"github.com/lixenwraith/tilefade/status"
)

const (
	tileGap     = 2 // pixels between tiles
	strokeWidth = 3
)

// Game adapts a GameContext to ebiten.Game
type Game struct {
	ctx      *engine.GameContext
	bindings []keyBinding
	geometry Geometry
}

// NewGame creates an ebiten frontend for ctx
func NewGame(ctx *engine.GameContext) *Game {
	return &Game{ctx: ctx, bindings: defaultBindings}
}

// Update applies just-pressed keys then advances one frame
func (g *Game) Update() error {
	for _, intent := range pressedIntents(g.bindings, inpututil.IsKeyJustPressed) {
		if !g.ctx.Apply(intent) {
			return ebiten.Termination
		}
	}
	g.ctx.Tick()
	return nil
}

// Draw renders tiles with their opacity, the selector outline and the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	grid := g.ctx.Grid
	geo := g.geometry
	size := float32(geo.TilePx)

	for _, tile := range grid.Tiles() {
		x, y := geo.Point(tile.Position())
		vector.DrawFilledRect(screen,
			float32(x)+tileGap, float32(y)+tileGap, size-2*tileGap, size-2*tileGap,
			withOpacity(colorTile, tile.Opacity()), false)
	}

	x, y := geo.Point(grid.Selector().Position())
	vector.StrokeRect(screen, float32(x), float32(y), size, size, strokeWidth,
		withOpacity(colorSelector, 1), false)

	hud := status.Summary(g.ctx.Status)
	if g.ctx.IsPaused.Load() {
		hud += "  PAUSED"
	}
	h := screen.Bounds().Dy()
	text.Draw(screen, hud, basicfont.Face7x13, 4, h-6, colorHUD)
}

// Layout uses the window size as the logical screen and refits the grid
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ctx.Width || outsideHeight != g.ctx.Height {
		g.ctx.Resize(outsideWidth, outsideHeight)
		grid := g.ctx.Grid
		g.geometry = NewGeometry(outsideWidth, outsideHeight, grid.Rows(), grid.Columns(), grid.TileSize())
	}
	return outsideWidth, outsideHeight
}
