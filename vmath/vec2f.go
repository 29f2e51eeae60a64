package vmath

import "math"

// Axis selects one component of a 2D vector
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Vec2F is a float64 2D vector in grid space
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

// Get returns the component on axis
func (v Vec2F) Get(a Axis) float64 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

// With returns a copy with the component on axis replaced
func (v Vec2F) With(a Axis, val float64) Vec2F {
	if a == AxisY {
		v.Y = val
	} else {
		v.X = val
	}
	return v
}

// Offset returns a copy with delta added on axis
func (v Vec2F) Offset(a Axis, delta float64) Vec2F {
	return v.With(a, v.Get(a)+delta)
}

// Round returns integer components rounded half away from zero
func (v Vec2F) Round() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
