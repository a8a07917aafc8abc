package bitmap

import (
	"math"

	strata "github.com/strata-gl/strata"
)

// strokeOutline builds a fillable outline tracing the stroke of p.
// Every piece, segment quads, join wedges and caps, is emitted with
// clockwise winding, so overlapping pieces saturate instead of
// cancelling under the rasterizer's winding rule. A zero line width
// strokes as a hairline.
func strokeOutline(p *strata.Path, paint *strata.Paint) *strata.Path {
	half := paint.LineWidth / 2
	if half <= 0 {
		half = 0.5
	}
	out := strata.NewPath()
	for _, ct := range flattenPath(p) {
		strokeContour(out, ct, half, paint)
	}
	return out
}

func strokeContour(out *strata.Path, ct contour, half float64, paint *strata.Paint) {
	pts := ct.pts
	n := len(pts)
	if n < 2 {
		return
	}
	segs := n - 1
	if ct.closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		addSegmentQuad(out, pts[i], pts[(i+1)%n], half)
	}
	for i := 1; i < n-1; i++ {
		addJoin(out, pts[i-1], pts[i], pts[i+1], half, paint)
	}
	if ct.closed {
		addJoin(out, pts[n-2], pts[n-1], pts[0], half, paint)
		addJoin(out, pts[n-1], pts[0], pts[1], half, paint)
	} else {
		addCap(out, pts[1], pts[0], half, paint.LineCap)
		addCap(out, pts[n-2], pts[n-1], half, paint.LineCap)
	}
}

// addSegmentQuad emits the rectangle swept by the half-width pen along
// ab. Building it from the left normal keeps the quad clockwise no
// matter which way the segment points.
func addSegmentQuad(out *strata.Path, a, b strata.Point, half float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := strata.Pt(d.Y*half/l, -d.X*half/l)
	out.MoveTo(a.X+n.X, a.Y+n.Y)
	out.LineTo(b.X+n.X, b.Y+n.Y)
	out.LineTo(b.X-n.X, b.Y-n.Y)
	out.LineTo(a.X-n.X, a.Y-n.Y)
	out.ClosePath()
}

// addJoin fills the wedge left open on the outer side of the turn at
// vertex b, where the incoming segment arrives along ab and the
// outgoing one leaves along bc.
func addJoin(out *strata.Path, a, b, c strata.Point, half float64, paint *strata.Paint) {
	d1 := b.Sub(a)
	d2 := c.Sub(b)
	l1 := d1.Length()
	l2 := d2.Length()
	if l1 == 0 || l2 == 0 {
		return
	}
	cross := d1.Cross(d2)

	if paint.LineJoin == strata.LineJoinRound {
		if cross != 0 || d1.X*d2.X+d1.Y*d2.Y < 0 {
			out.AddCircle(b, half)
		}
		return
	}
	if cross == 0 {
		return
	}

	// The outer side is the left of travel for a clockwise turn and
	// the right for a counter-clockwise one.
	var n1, n2 strata.Point
	if cross > 0 {
		n1 = strata.Pt(d1.Y*half/l1, -d1.X*half/l1)
		n2 = strata.Pt(d2.Y*half/l2, -d2.X*half/l2)
	} else {
		n1 = strata.Pt(-d1.Y*half/l1, d1.X*half/l1)
		n2 = strata.Pt(-d2.Y*half/l2, d2.X*half/l2)
	}
	if n1.Cross(n2) < 0 {
		n1, n2 = n2, n1
	}
	p1 := b.Add(n1)
	p2 := b.Add(n2)

	if paint.LineJoin == strata.LineJoinMiter {
		u := n1.Add(n2)
		uu := u.X*u.X + u.Y*u.Y
		if uu > 1e-12 {
			// Miter length over half-width is 2*half/|u|.
			if 2*half <= paint.MiterLimit*math.Sqrt(uu) {
				scale := 2 * half * half / uu
				tip := b.Add(strata.Pt(u.X*scale, u.Y*scale))
				out.MoveTo(b.X, b.Y)
				out.LineTo(p1.X, p1.Y)
				out.LineTo(tip.X, tip.Y)
				out.LineTo(p2.X, p2.Y)
				out.ClosePath()
				return
			}
		}
	}

	out.MoveTo(b.X, b.Y)
	out.LineTo(p1.X, p1.Y)
	out.LineTo(p2.X, p2.Y)
	out.ClosePath()
}

// addCap extends the stroke past endpoint e, with the segment arriving
// from prev.
func addCap(out *strata.Path, prev, e strata.Point, half float64, cap strata.LineCap) {
	switch cap {
	case strata.LineCapRound:
		out.AddCircle(e, half)
	case strata.LineCapSquare:
		d := e.Sub(prev)
		l := d.Length()
		if l == 0 {
			return
		}
		ext := strata.Pt(e.X+d.X*half/l, e.Y+d.Y*half/l)
		addSegmentQuad(out, e, ext, half)
	}
}
