package strata

import "math"

// PathElement is one verb of a path. Backends type-switch over the
// closed set below when flattening or serializing.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo extends the subpath with a straight segment.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo extends the subpath with a quadratic Bezier segment.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo extends the subpath with a cubic Bezier segment.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close joins the subpath back to its starting point.
type Close struct{}

func (Close) isPathElement() {}

// kappa is the magic constant for approximating quarter circles with
// cubic Beziers: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Path represents a vector path. Contours added by the Add* helpers use
// a fixed winding order (clockwise on a y-down raster) so that a
// reverse-wound inner contour cuts a hole under the non-zero fill rule.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
	bounds   Rect
	boundsOK bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.boundsOK = false
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.boundsOK = false
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
	p.boundsOK = false
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
	p.boundsOK = false
}

// ClosePath closes the current subpath by drawing a line to the start
// point.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.boundsOK = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with all points transformed.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.Apply(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.Apply(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.Apply(e.Control)
			pt := m.Apply(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.Apply(e.Control1)
			ctrl2 := m.Apply(e.Control2)
			pt := m.Apply(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.ClosePath()
		}
	}
	return result
}

// Bounds returns the axis-aligned hull of all control points. The hull
// can be slightly looser than the exact curve extent; preroll only needs
// a conservative cover. The result is cached until the path mutates.
func (p *Path) Bounds() Rect {
	if p.boundsOK {
		return p.bounds
	}
	first := true
	var b Rect
	add := func(pt Point) {
		if first {
			b = Rect{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y}
			first = false
			return
		}
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	p.bounds = b
	p.boundsOK = true
	return b
}

// AddRect adds a rectangle contour in clockwise order.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.MinX, r.MinY)
	p.LineTo(r.MaxX, r.MinY)
	p.LineTo(r.MaxX, r.MaxY)
	p.LineTo(r.MinX, r.MaxY)
	p.ClosePath()
}

// AddOval adds an ellipse inscribed in r, built from four cubic
// segments, in clockwise order.
func (p *Path) AddOval(r Rect) {
	cx := (r.MinX + r.MaxX) / 2
	cy := (r.MinY + r.MaxY) / 2
	rx := r.Width() / 2
	ry := r.Height() / 2
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.ClosePath()
}

// AddCircle adds a circle contour in clockwise order.
func (p *Path) AddCircle(center Point, radius float64) {
	p.AddOval(Rect{
		MinX: center.X - radius, MinY: center.Y - radius,
		MaxX: center.X + radius, MaxY: center.Y + radius,
	})
}

// AddRRect adds a rounded rectangle contour in clockwise order.
func (p *Path) AddRRect(rr RRect) {
	rr = rr.Normalized()
	l, t, r, b := rr.MinX, rr.MinY, rr.MaxX, rr.MaxY

	p.MoveTo(l+rr.TL.X, t)
	p.LineTo(r-rr.TR.X, t)
	p.CubicTo(r-rr.TR.X*(1-kappa), t, r, t+rr.TR.Y*(1-kappa), r, t+rr.TR.Y)
	p.LineTo(r, b-rr.BR.Y)
	p.CubicTo(r, b-rr.BR.Y*(1-kappa), r-rr.BR.X*(1-kappa), b, r-rr.BR.X, b)
	p.LineTo(l+rr.BL.X, b)
	p.CubicTo(l+rr.BL.X*(1-kappa), b, l, b-rr.BL.Y*(1-kappa), l, b-rr.BL.Y)
	p.LineTo(l, t+rr.TL.Y)
	p.CubicTo(l, t+rr.TL.Y*(1-kappa), l+rr.TL.X*(1-kappa), t, l+rr.TL.X, t)
	p.ClosePath()
}

// AddRRectReversed adds a rounded rectangle contour in counter-clockwise
// order. Combined with a clockwise outer contour under the non-zero fill
// rule this cuts the inner shape out, which is how double rounded rects
// (donuts) are drawn.
func (p *Path) AddRRectReversed(rr RRect) {
	rr = rr.Normalized()
	l, t, r, b := rr.MinX, rr.MinY, rr.MaxX, rr.MaxY

	p.MoveTo(l+rr.TL.X, t)
	p.CubicTo(l+rr.TL.X*(1-kappa), t, l, t+rr.TL.Y*(1-kappa), l, t+rr.TL.Y)
	p.LineTo(l, b-rr.BL.Y)
	p.CubicTo(l, b-rr.BL.Y*(1-kappa), l+rr.BL.X*(1-kappa), b, l+rr.BL.X, b)
	p.LineTo(r-rr.BR.X, b)
	p.CubicTo(r-rr.BR.X*(1-kappa), b, r, b-rr.BR.Y*(1-kappa), r, b-rr.BR.Y)
	p.LineTo(r, t+rr.TR.Y)
	p.CubicTo(r, t+rr.TR.Y*(1-kappa), r-rr.TR.X*(1-kappa), t, r-rr.TR.X, t)
	p.ClosePath()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.bounds = p.bounds
	result.boundsOK = p.boundsOK
	return result
}
