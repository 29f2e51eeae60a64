package grid

import "github.com/lixenwraith/tilefade/vmath"

// Direction of a selector move
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// directionTable maps a direction to the axis it moves on and its sign
var directionTable = [...]struct {
	axis vmath.Axis
	sign float64
}{
	Up:    {vmath.AxisY, -1},
	Down:  {vmath.AxisY, 1},
	Left:  {vmath.AxisX, -1},
	Right: {vmath.AxisX, 1},
}

// Vector returns the axis and sign for d; ok is false for unknown directions
func (d Direction) Vector() (axis vmath.Axis, sign float64, ok bool) {
	if int(d) >= len(directionTable) {
		return vmath.AxisX, 0, false
	}
	e := directionTable[d]
	return e.axis, e.sign, true
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// MoveEvent is one continuous translation of the selector along one axis
type MoveEvent struct {
	Direction Direction
	Remaining float64 // distance left, mutated toward 0
	Speed     float64 // distance per unit of deltaTime
}

// DestroyEvent is one tile's opacity decay
type DestroyEvent struct {
	TileIndex int
	Remaining float64 // opacity left, mutated toward <= 0
	FadeRate  float64 // opacity per unit of deltaTime
}

// Done reports whether the fade has reached zero
func (e DestroyEvent) Done() bool {
	return e.Remaining <= 0
}
