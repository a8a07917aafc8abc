package strata

import "math"

// Radius is an elliptical corner radius.
type Radius struct {
	X, Y float64
}

// CircularRadius returns a circular radius of r.
func CircularRadius(r float64) Radius {
	return Radius{X: r, Y: r}
}

// IsZero reports whether the radius is sharp (no rounding).
func (r Radius) IsZero() bool {
	return r.X <= 0 || r.Y <= 0
}

// RRect is a rectangle with independently rounded corners.
type RRect struct {
	Rect
	TL, TR, BR, BL Radius
}

// RRectUniform creates a rounded rectangle with the same circular radius
// on every corner.
func RRectUniform(r Rect, radius float64) RRect {
	rad := CircularRadius(radius)
	return RRect{Rect: r, TL: rad, TR: rad, BR: rad, BL: rad}.Normalized()
}

// RRectCorners creates a rounded rectangle with per-corner radii.
func RRectCorners(r Rect, tl, tr, br, bl Radius) RRect {
	return RRect{Rect: r, TL: tl, TR: tr, BR: br, BL: bl}.Normalized()
}

// Outer returns the bounding rectangle of the rounded rectangle.
func (rr RRect) Outer() Rect { return rr.Rect }

// IsRect reports whether every corner is sharp.
func (rr RRect) IsRect() bool {
	return rr.TL.IsZero() && rr.TR.IsZero() && rr.BR.IsZero() && rr.BL.IsZero()
}

// Normalized scales all radii down proportionally so that adjacent radii
// never sum to more than the side they share, matching the usual
// rounded-rect well-formedness rule. Radii are also clamped at zero.
func (rr RRect) Normalized() RRect {
	out := rr
	clamp := func(r *Radius) {
		if r.X < 0 {
			r.X = 0
		}
		if r.Y < 0 {
			r.Y = 0
		}
	}
	clamp(&out.TL)
	clamp(&out.TR)
	clamp(&out.BR)
	clamp(&out.BL)

	w := out.Width()
	h := out.Height()
	if w <= 0 || h <= 0 {
		return out
	}
	scale := 1.0
	check := func(sum, side float64) {
		if sum > side {
			if s := side / sum; s < scale {
				scale = s
			}
		}
	}
	check(out.TL.X+out.TR.X, w)
	check(out.BL.X+out.BR.X, w)
	check(out.TL.Y+out.BL.Y, h)
	check(out.TR.Y+out.BR.Y, h)
	if scale < 1.0 {
		out.TL.X *= scale
		out.TL.Y *= scale
		out.TR.X *= scale
		out.TR.Y *= scale
		out.BR.X *= scale
		out.BR.Y *= scale
		out.BL.X *= scale
		out.BL.Y *= scale
	}
	return out
}

// Inset returns the rounded rectangle shrunk inward by d on every side,
// with each radius reduced to match. A donut hole is built by insetting
// the outer contour. Radii bottom out at zero rather than inverting.
func (rr RRect) Inset(d float64) RRect {
	shrink := func(r Radius) Radius {
		return Radius{X: math.Max(0, r.X-d), Y: math.Max(0, r.Y-d)}
	}
	out := RRect{
		Rect: Rect{
			MinX: rr.MinX + d, MinY: rr.MinY + d,
			MaxX: rr.MaxX - d, MaxY: rr.MaxY - d,
		},
		TL: shrink(rr.TL), TR: shrink(rr.TR), BR: shrink(rr.BR), BL: shrink(rr.BL),
	}
	if out.MinX > out.MaxX {
		mid := (rr.MinX + rr.MaxX) / 2
		out.MinX, out.MaxX = mid, mid
	}
	if out.MinY > out.MaxY {
		mid := (rr.MinY + rr.MaxY) / 2
		out.MinY, out.MaxY = mid, mid
	}
	return out.Normalized()
}

// Offset returns the rounded rectangle translated by (dx, dy).
func (rr RRect) Offset(dx, dy float64) RRect {
	out := rr
	out.Rect = rr.Rect.Offset(dx, dy)
	return out
}

// ContainsPoint reports whether p lies inside the rounded rectangle,
// accounting for the elliptical corners.
func (rr RRect) ContainsPoint(p Point) bool {
	if !rr.Rect.Contains(p) {
		return false
	}
	inCorner := func(cx, cy float64, r Radius) bool {
		if r.IsZero() {
			return true
		}
		dx := (p.X - cx) / r.X
		dy := (p.Y - cy) / r.Y
		return dx*dx+dy*dy <= 1
	}
	switch {
	case p.X < rr.MinX+rr.TL.X && p.Y < rr.MinY+rr.TL.Y:
		return inCorner(rr.MinX+rr.TL.X, rr.MinY+rr.TL.Y, rr.TL)
	case p.X > rr.MaxX-rr.TR.X && p.Y < rr.MinY+rr.TR.Y:
		return inCorner(rr.MaxX-rr.TR.X, rr.MinY+rr.TR.Y, rr.TR)
	case p.X > rr.MaxX-rr.BR.X && p.Y > rr.MaxY-rr.BR.Y:
		return inCorner(rr.MaxX-rr.BR.X, rr.MaxY-rr.BR.Y, rr.BR)
	case p.X < rr.MinX+rr.BL.X && p.Y > rr.MaxY-rr.BL.Y:
		return inCorner(rr.MinX+rr.BL.X, rr.MaxY-rr.BL.Y, rr.BL)
	}
	return true
}
