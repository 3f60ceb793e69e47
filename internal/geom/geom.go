// Package geom provides world-space geometry for the simulation.
// Coordinates are float64 with the origin at the world center and +Y
// pointing up; the platform layer is responsible for projecting these
// onto terminal cells.
package geom

import "math"

// Vec2 is a two-dimensional vector or point in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp returns the linear interpolation between v and o at t in [0, 1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns the unit vector pointing at the given angle in radians,
// measured counterclockwise from the +X axis.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Rect is an axis-aligned rectangle in world space. Min is the bottom-left
// corner and Max the top-right; a valid Rect has Min.X < Max.X and
// Min.Y < Max.Y.
type Rect struct {
	Min, Max Vec2
}

// FromCenter builds the rectangle centered on c whose half-size on each
// axis is given by extents.
func FromCenter(c, extents Vec2) Rect {
	return Rect{
		Min: Vec2{X: c.X - extents.X, Y: c.Y - extents.Y},
		Max: Vec2{X: c.X + extents.X, Y: c.Y + extents.Y},
	}
}

// Width returns the horizontal size of r.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical size of r.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Extents returns the half-size of r on each axis.
func (r Rect) Extents() Vec2 {
	return Vec2{X: r.Width() / 2, Y: r.Height() / 2}
}

// Contains returns true if the point p lies inside r. Points on the
// minimum edges count as inside, points on the maximum edges do not.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersects returns true if r and o overlap. Touching edges do not count
// as an overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.Min.X >= o.Max.X || o.Min.X >= r.Max.X {
		return false
	}
	if r.Min.Y >= o.Max.Y || o.Min.Y >= r.Max.Y {
		return false
	}
	return true
}

// Valid reports whether r has positive area.
func (r Rect) Valid() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
