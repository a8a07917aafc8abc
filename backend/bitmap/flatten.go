package bitmap

import (
	"math"

	strata "github.com/strata-gl/strata"
)

// contour is a flattened polyline in user space. A closed contour does
// not repeat its first point; the closing segment is implied.
type contour struct {
	pts    []strata.Point
	closed bool
}

// Fixed flattening steps are fine for stroke outlines: the outline's
// edges get anti-aliased coverage regardless, and stroked curves in UI
// scenes are short.
const (
	quadSteps  = 12
	cubicSteps = 16
)

// flattenPath converts a path to polyline contours for stroking.
func flattenPath(p *strata.Path) []contour {
	var out []contour
	var cur []strata.Point

	flush := func(closed bool) {
		if closed && len(cur) >= 2 && samePoint(cur[0], cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) >= 2 {
			out = append(out, contour{pts: cur, closed: closed})
		}
		cur = nil
	}

	for _, e := range p.Elements() {
		switch el := e.(type) {
		case strata.MoveTo:
			flush(false)
			cur = appendPoint(cur, el.Point)
		case strata.LineTo:
			cur = appendPoint(cur, el.Point)
		case strata.QuadTo:
			last := lastPoint(cur)
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				cur = appendPoint(cur, quadPoint(last, el.Control, el.Point, t))
			}
		case strata.CubicTo:
			last := lastPoint(cur)
			for i := 1; i <= cubicSteps; i++ {
				t := float64(i) / cubicSteps
				cur = appendPoint(cur, cubicPoint(last, el.Control1, el.Control2, el.Point, t))
			}
		case strata.Close:
			var start strata.Point
			if len(cur) > 0 {
				start = cur[0]
			}
			flush(true)
			// A segment after Close continues from the closed
			// contour's start point.
			cur = appendPoint(cur, start)
		}
	}
	flush(false)
	return out
}

// appendPoint appends p, dropping it when it coincides with the last
// point. Zero-length segments have no usable normal.
func appendPoint(pts []strata.Point, p strata.Point) []strata.Point {
	if n := len(pts); n > 0 && samePoint(pts[n-1], p) {
		return pts
	}
	return append(pts, p)
}

func lastPoint(pts []strata.Point) strata.Point {
	if len(pts) == 0 {
		return strata.Point{}
	}
	return pts[len(pts)-1]
}

func samePoint(a, b strata.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func quadPoint(p0, c, p1 strata.Point, t float64) strata.Point {
	u := 1 - t
	return strata.Pt(
		u*u*p0.X+2*u*t*c.X+t*t*p1.X,
		u*u*p0.Y+2*u*t*c.Y+t*t*p1.Y,
	)
}

func cubicPoint(p0, c1, c2, p1 strata.Point, t float64) strata.Point {
	u := 1 - t
	return strata.Pt(
		u*u*u*p0.X+3*u*u*t*c1.X+3*u*t*t*c2.X+t*t*t*p1.X,
		u*u*u*p0.Y+3*u*u*t*c1.Y+3*u*t*t*c2.Y+t*t*t*p1.Y,
	)
}
