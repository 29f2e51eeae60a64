package grid

import "github.com/lixenwraith/tilefade/vmath"

// Renderable is the drawing-side object the grid mutates
// Tiles only receive opacity writes, the selector only position writes
type Renderable interface {
	Position() vmath.Vec2F
	SetPosition(vmath.Vec2F)
	Opacity() float64
	SetOpacity(float64)
}

// Sprite is a plain value-holding Renderable
// Renderers read it back each frame
type Sprite struct {
	Pos   vmath.Vec2F
	Alpha float64
}

// NewSprite creates a fully opaque sprite at pos
func NewSprite(pos vmath.Vec2F) *Sprite {
	return &Sprite{Pos: pos, Alpha: 1}
}

func (s *Sprite) Position() vmath.Vec2F       { return s.Pos }
func (s *Sprite) SetPosition(pos vmath.Vec2F) { s.Pos = pos }
func (s *Sprite) Opacity() float64            { return s.Alpha }
func (s *Sprite) SetOpacity(alpha float64)    { s.Alpha = alpha }
