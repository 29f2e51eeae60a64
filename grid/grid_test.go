package grid

import (
	"errors"
	"testing"

	"github.com/lixenwraith/tilefade/vmath"
)

// recordingSprite tracks every opacity write
type recordingSprite struct {
	Sprite
	writes []float64
}

func (r *recordingSprite) SetOpacity(alpha float64) {
	r.writes = append(r.writes, alpha)
	r.Sprite.SetOpacity(alpha)
}

func mustGrid(t *testing.T, rows, columns int, tileSize float64, opts ...Option) *Grid {
	t.Helper()
	g, err := New(rows, columns, tileSize, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d, %v) failed: %v", rows, columns, tileSize, err)
	}
	return g
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		columns  int
		tileSize float64
	}{
		{"zero rows", 0, 3, 10},
		{"negative columns", 3, -1, 10},
		{"zero tile size", 3, 3, 0},
		{"negative tile size", 3, 3, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.columns, tt.tileSize)
			if g != nil {
				t.Error("Expected nil grid")
			}
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestNewLayout(t *testing.T) {
	g := mustGrid(t, 7, 9, 50)

	if g.TileCount() != 63 {
		t.Fatalf("Expected 63 tiles, got %d", g.TileCount())
	}
	if g.SelectedRow() != 1 || g.SelectedColumn() != 1 {
		t.Errorf("Expected initial selection (1,1), got (%d,%d)", g.SelectedRow(), g.SelectedColumn())
	}
	if g.SelectedIndex() != 0 {
		t.Errorf("Expected initial index 0, got %d", g.SelectedIndex())
	}

	// Row-major placement
	tile := g.Tile(g.LinearIndex(2, 3))
	if got := tile.Position(); got != (vmath.Vec2F{X: 100, Y: 50}) {
		t.Errorf("Expected tile (2,3) at {100 50}, got %+v", got)
	}
	if tile.Opacity() != 1 {
		t.Errorf("Expected tiles to start opaque, got %v", tile.Opacity())
	}
	if got := g.Selector().Position(); got != (vmath.Vec2F{}) {
		t.Errorf("Expected selector at origin, got %+v", got)
	}
	if g.Tile(-1) != nil || g.Tile(63) != nil {
		t.Error("Expected nil for out-of-range tiles")
	}
}

func TestNewOptions(t *testing.T) {
	var created []int
	sel := &Sprite{Pos: vmath.Vec2F{X: -7, Y: 3}}

	g := mustGrid(t, 2, 2, 10,
		WithTileFactory(func(index int, origin vmath.Vec2F) Renderable {
			created = append(created, index)
			return &recordingSprite{Sprite: Sprite{Pos: origin, Alpha: 0.5}}
		}),
		WithSelector(sel),
	)

	if len(created) != 4 {
		t.Fatalf("Expected factory called 4 times, got %d", len(created))
	}
	for i, idx := range created {
		if idx != i {
			t.Errorf("Expected factory index %d, got %d", i, idx)
		}
	}
	if g.Selector() != sel {
		t.Error("Expected injected selector")
	}
	if sel.Pos != (vmath.Vec2F{X: -7, Y: 3}) {
		t.Errorf("Injected selector must keep its position, got %+v", sel.Pos)
	}
}

func TestTilesReturnsCopy(t *testing.T) {
	g := mustGrid(t, 2, 2, 10)
	tiles := g.Tiles()
	tiles[0] = nil
	if g.Tile(0) == nil {
		t.Error("Mutating Tiles() result must not affect the grid")
	}
}
