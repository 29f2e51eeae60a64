package grid

import (
	"fmt"

	"github.com/lixenwraith/tilefade/vmath"
)

// Grid is the aggregate root: dimensions, tiles, selection, selector and both queues
type Grid struct {
	rows     int
	columns  int
	tileSize float64

	// 1-indexed; 0 after an out-of-range Select
	selectedRow    int
	selectedColumn int

	tiles    []Renderable
	selector Renderable

	moveQueue   []MoveEvent
	currentMove *MoveEvent

	destroyQueue []DestroyEvent
	destroyed    map[int]struct{} // append-only dedup guard
}

// TileFactory creates the Renderable for a tile at its grid-space origin
type TileFactory func(index int, origin vmath.Vec2F) Renderable

// Option configures a Grid during New
type Option func(*options)

type options struct {
	tileFactory TileFactory
	selector    Renderable
}

// WithTileFactory overrides the default Sprite tiles
func WithTileFactory(f TileFactory) Option {
	return func(o *options) { o.tileFactory = f }
}

// WithSelector overrides the default Sprite selector
// The selector keeps whatever position it already has
func WithSelector(r Renderable) Option {
	return func(o *options) { o.selector = r }
}

// New creates a grid with fixed dimensions and tile size and selects (1,1)
func New(rows, columns int, tileSize float64, opts ...Option) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	if !(tileSize > 0) {
		return nil, fmt.Errorf("%w: tile size %v", ErrInvalidDimensions, tileSize)
	}

	o := options{
		tileFactory: func(_ int, origin vmath.Vec2F) Renderable { return NewSprite(origin) },
	}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:      rows,
		columns:   columns,
		tileSize:  tileSize,
		tiles:     make([]Renderable, 0, rows*columns),
		destroyed: make(map[int]struct{}),
	}

	for r := 1; r <= rows; r++ {
		for c := 1; c <= columns; c++ {
			g.tiles = append(g.tiles, o.tileFactory(len(g.tiles), g.TileOrigin(r, c)))
		}
	}

	if o.selector != nil {
		g.selector = o.selector
	} else {
		g.selector = NewSprite(g.TileOrigin(1, 1))
	}

	g.Select(1, 1)
	return g, nil
}

func (g *Grid) Rows() int           { return g.rows }
func (g *Grid) Columns() int        { return g.columns }
func (g *Grid) TileSize() float64   { return g.tileSize }
func (g *Grid) SelectedRow() int    { return g.selectedRow }
func (g *Grid) SelectedColumn() int { return g.selectedColumn }
func (g *Grid) Selector() Renderable {
	return g.selector
}

// TileCount returns rows*columns
func (g *Grid) TileCount() int {
	return len(g.tiles)
}

// Tile returns the tile at linear index i, nil when out of range
func (g *Grid) Tile(i int) Renderable {
	if i < 0 || i >= len(g.tiles) {
		return nil
	}
	return g.tiles[i]
}

// Tiles returns a copy of the tile slice in row-major order
func (g *Grid) Tiles() []Renderable {
	out := make([]Renderable, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// TileOrigin returns the top-left corner of tile (row, column) in grid space
func (g *Grid) TileOrigin(row, column int) vmath.Vec2F {
	return vmath.Vec2F{
		X: float64(column-1) * g.tileSize,
		Y: float64(row-1) * g.tileSize,
	}
}
