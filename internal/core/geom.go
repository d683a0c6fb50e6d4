// Package core provides fundamental types shared by the simulation and its
// hosts. It has no external dependencies (especially no Bubble Tea) so the
// engine stays pure and testable.
package core

import "math"

// Vec is a point or displacement in world pixels.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is a square or rectangular bounding box in world pixels.
// X and Y are the top-left corner; the box covers [X, X+W) x [Y, Y+H).
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt builds a size x size box whose top-left corner is p.
func BoxAt(p Vec, size float64) Box {
	return Box{X: p.X, Y: p.Y, W: size, H: size}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two half-open boxes overlap.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Corners returns the four corners of the box: top-left, top-right,
// bottom-left, bottom-right. The right and bottom corners are the largest
// coordinates still inside the exclusive edges, so a box ending exactly on a
// tile boundary does not reach into the next tile.
func (b Box) Corners() [4]Vec {
	r := math.Nextafter(b.X+b.W, b.X)
	d := math.Nextafter(b.Y+b.H, b.Y)
	return [4]Vec{
		{X: b.X, Y: b.Y},
		{X: r, Y: b.Y},
		{X: b.X, Y: d},
		{X: r, Y: d},
	}
}

// Rect represents an integer axis-aligned rectangle on the character grid.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
