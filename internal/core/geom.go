// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned rectangle on the terminal grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a 2D point or velocity in playfield units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polar returns a vector of length mag pointing at angle.
func Polar(angle, mag float64) Vec {
	return Vec{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Box is an axis-aligned rectangle in playfield units, anchored at its top-left corner.
type Box struct {
	Pos  Vec
	W, H float64
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.Pos.X + b.W/2, Y: b.Pos.Y + b.H/2}
}

// OverlapsCentered reports whether a box of half-extents (halfW, halfH)
// centered on c overlaps b. Touching edges do not overlap.
func (b Box) OverlapsCentered(c Vec, halfW, halfH float64) bool {
	return c.X+halfW > b.Pos.X &&
		c.X-halfW < b.Pos.X+b.W &&
		c.Y+halfH > b.Pos.Y &&
		c.Y-halfH < b.Pos.Y+b.H
}

// Contains reports whether the point lies inside b (right and bottom edges exclusive).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.Pos.X && p.X < b.Pos.X+b.W && p.Y >= b.Pos.Y && p.Y < b.Pos.Y+b.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
