package strata

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in logical pixels, stored as its
// minimum and maximum corners. The zero value is the empty rectangle at
// the origin.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectLTRB creates a rectangle from its left, top, right and bottom edges.
func RectLTRB(l, t, r, b float64) Rect {
	return Rect{MinX: l, MinY: t, MaxX: r, MaxY: b}
}

// RectXYWH creates a rectangle from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// EverythingRect returns the largest representable rectangle. Preroll uses
// it as the neutral element when intersecting clip bounds.
func EverythingRect() Rect {
	return Rect{
		MinX: -math.MaxFloat64 / 2, MinY: -math.MaxFloat64 / 2,
		MaxX: math.MaxFloat64 / 2, MaxY: math.MaxFloat64 / 2,
	}
}

// Width returns the horizontal extent. Negative for malformed rectangles.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent. Negative for malformed rectangles.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Contains reports whether p lies inside the rectangle. Points on the
// min edges are inside, points on the max edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// ContainsRect reports whether s lies entirely within r. An empty s is
// contained by anything.
func (r Rect) ContainsRect(s Rect) bool {
	if s.IsEmpty() {
		return true
	}
	return s.MinX >= r.MinX && s.MinY >= r.MinY && s.MaxX <= r.MaxX && s.MaxY <= r.MaxY
}

// Overlaps reports whether r and s share any area.
func (r Rect) Overlaps(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return r.MinX < s.MaxX && s.MinX < r.MaxX && r.MinY < s.MaxY && s.MinY < r.MaxY
}

// Union returns the smallest rectangle enclosing both r and s. Empty
// inputs are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Intersect returns the overlap of r and s. Disjoint rectangles produce
// the zero (empty) rectangle.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		MinX: math.Max(r.MinX, s.MinX),
		MinY: math.Max(r.MinY, s.MinY),
		MaxX: math.Min(r.MaxX, s.MaxX),
		MaxY: math.Min(r.MaxY, s.MaxY),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Inflate returns the rectangle grown outward by d on every side.
// Negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Scale returns the rectangle with all edges multiplied by k.
func (r Rect) Scale(k float64) Rect {
	return Rect{MinX: r.MinX * k, MinY: r.MinY * k, MaxX: r.MaxX * k, MaxY: r.MaxY * k}
}

// RoundOut returns the smallest integer rectangle covering r.
func (r Rect) RoundOut() image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.MinX)), int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY)),
	)
}

// Corners returns the four corners in clockwise order starting from the
// top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
