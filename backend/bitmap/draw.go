package bitmap

import (
	strata "github.com/strata-gl/strata"
)

// DrawLine draws a stroked segment between p1 and p2. A line has no
// interior, so fill-style paints stroke as well.
func (c *Canvas) DrawLine(p1, p2 strata.Point, paint *strata.Paint) error {
	p := strata.NewPath()
	p.MoveTo(p1.X, p1.Y)
	p.LineTo(p2.X, p2.Y)
	sp := paint.Clone()
	sp.Style = strata.PaintStroke
	return c.paintPath(p, sp)
}

// DrawRect draws a rectangle.
func (c *Canvas) DrawRect(r strata.Rect, paint *strata.Paint) error {
	if r.IsEmpty() {
		return nil
	}
	p := strata.NewPath()
	p.AddRect(r)
	return c.paintPath(p, paint)
}

// DrawRRect draws a rounded rectangle.
func (c *Canvas) DrawRRect(rr strata.RRect, paint *strata.Paint) error {
	if rr.Outer().IsEmpty() {
		return nil
	}
	p := strata.NewPath()
	p.AddRRect(rr.Normalized())
	return c.paintPath(p, paint)
}

// DrawDRRect draws the area between outer and inner. The inner contour
// winds opposite the outer one, so their coverage cancels and the fill
// leaves the ring. Stroke-style paints outline both contours.
func (c *Canvas) DrawDRRect(outer, inner strata.RRect, paint *strata.Paint) error {
	if outer.Outer().IsEmpty() {
		return nil
	}
	p := strata.NewPath()
	p.AddRRect(outer.Normalized())
	if !inner.Outer().IsEmpty() {
		p.AddRRectReversed(inner.Normalized())
	}
	return c.paintPath(p, paint)
}

// DrawOval draws an ellipse inscribed in r.
func (c *Canvas) DrawOval(r strata.Rect, paint *strata.Paint) error {
	if r.IsEmpty() {
		return nil
	}
	p := strata.NewPath()
	p.AddOval(r)
	return c.paintPath(p, paint)
}

// DrawCircle draws a circle.
func (c *Canvas) DrawCircle(center strata.Point, radius float64, paint *strata.Paint) error {
	if radius <= 0 {
		return nil
	}
	p := strata.NewPath()
	p.AddCircle(center, radius)
	return c.paintPath(p, paint)
}

// DrawPath draws a path.
func (c *Canvas) DrawPath(path *strata.Path, paint *strata.Paint) error {
	return c.paintPath(path, paint)
}
