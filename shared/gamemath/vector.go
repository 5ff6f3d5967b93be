package gamemath

import "math"

// Vector is a 2D world-space vector.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance between two points.
func (v Vector) DistanceTo(o Vector) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Perp returns the vector rotated 90 degrees counterclockwise.
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Normalized returns the unit vector. Near-zero vectors fall back to +X so
// callers never see NaN.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l < Epsilon {
		return Vector{X: 1}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Lerp moves a fraction t of the way from v to o.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Forward returns the unit heading vector for an angle in degrees.
func Forward(deg float64) Vector {
	rad := deg * math.Pi / 180
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Rotate rotates v counterclockwise by deg degrees.
func (v Vector) Rotate(deg float64) Vector {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Vector{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
