// Package core provides fundamental types and utilities for the solitaire
// platform. It contains no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// Vec2 is a point or displacement in normalized screen-fraction units:
// (0,0) is the top-left corner and (1,1) the bottom-right one.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Lerp interpolates linearly from a to b; t=0 yields a, t=1 yields b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// RectF is an axis-aligned box in normalized units.
type RectF struct {
	Pos  Vec2 // Top-left corner
	W, H float64
}

// Contains reports whether p lies inside the box. The right and bottom
// edges are exclusive, matching Rect.
func (r RectF) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.W &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.H
}

// Cells converts the box to screen cells for a w by h character grid.
func (r RectF) Cells(w, h int) Rect {
	x0 := int(math.Floor(r.Pos.X * float64(w)))
	y0 := int(math.Floor(r.Pos.Y * float64(h)))
	x1 := int(math.Floor((r.Pos.X + r.W) * float64(w)))
	y1 := int(math.Floor((r.Pos.Y + r.H) * float64(h)))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
