package strata

import "testing"

// TestRRectNormalized tests the well-formedness rule: adjacent radii
// are scaled down proportionally when they would overlap.
func TestRRectNormalized(t *testing.T) {
	// A 100x40 rect with radius 40 everywhere: the vertical sums reach
	// 80 on a 40 side, so every radius halves.
	rr := RRectUniform(RectXYWH(0, 0, 100, 40), 40)
	want := CircularRadius(20)
	for _, c := range []struct {
		name string
		got  Radius
	}{{"TL", rr.TL}, {"TR", rr.TR}, {"BR", rr.BR}, {"BL", rr.BL}} {
		if c.got != want {
			t.Errorf("%s radius = %v, want %v", c.name, c.got, want)
		}
	}
}

// TestRRectNormalizedClampsNegative tests that negative radii flatten
// to sharp corners instead of inverting.
func TestRRectNormalizedClampsNegative(t *testing.T) {
	rr := RRectCorners(RectXYWH(0, 0, 50, 50),
		Radius{X: -5, Y: 10}, CircularRadius(8), CircularRadius(-3), Radius{})
	if rr.TL != (Radius{X: 0, Y: 10}) {
		t.Errorf("TL = %v, want negative X clamped to 0", rr.TL)
	}
	if !rr.TL.IsZero() {
		t.Error("clamped TL should count as sharp")
	}
	if !rr.BR.IsZero() || rr.BR != (Radius{}) {
		t.Errorf("BR = %v, want fully clamped", rr.BR)
	}
}

// TestRRectIsRect tests sharp-corner detection.
func TestRRectIsRect(t *testing.T) {
	if !RRectUniform(RectXYWH(0, 0, 10, 10), 0).IsRect() {
		t.Error("zero-radius RRect should be a plain rect")
	}
	if RRectUniform(RectXYWH(0, 0, 10, 10), 2).IsRect() {
		t.Error("rounded RRect misreported as a plain rect")
	}
}

// TestRRectInset tests inward shrinking of both contour and radii.
func TestRRectInset(t *testing.T) {
	rr := RRectUniform(RectXYWH(0, 0, 100, 60), 20).Inset(5)
	if got, want := rr.Outer(), RectLTRB(5, 5, 95, 55); got != want {
		t.Errorf("Inset outer = %v, want %v", got, want)
	}
	if got := rr.TL; got != CircularRadius(15) {
		t.Errorf("Inset TL = %v, want radius 15", got)
	}
}

// TestRRectInsetCollapse tests that over-insetting collapses to the
// midline instead of producing an inverted rectangle.
func TestRRectInsetCollapse(t *testing.T) {
	rr := RRectUniform(RectXYWH(0, 0, 100, 60), 10).Inset(40)
	if got, want := rr.Outer(), RectLTRB(40, 30, 60, 30); got != want {
		t.Errorf("collapsed outer = %v, want %v", got, want)
	}
	if !rr.Outer().IsEmpty() {
		t.Error("collapsed RRect should be empty")
	}
	if !rr.IsRect() {
		t.Error("collapsed RRect should have sharp corners")
	}
}

// TestRRectContainsPoint tests the elliptical corner cut.
func TestRRectContainsPoint(t *testing.T) {
	rr := RRectUniform(RectXYWH(0, 0, 100, 100), 20)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(50, 50), true},
		{"edge midpoint", Pt(2, 50), true},
		{"inside corner arc", Pt(10, 10), true},
		{"outside corner arc", Pt(2, 2), false},
		{"outside bounds", Pt(100, 50), false},
		{"bottom-right cut", Pt(98, 98), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rr.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestRRectOffset tests that translation moves the contour but keeps
// the radii.
func TestRRectOffset(t *testing.T) {
	rr := RRectUniform(RectXYWH(0, 0, 40, 40), 8).Offset(10, -5)
	if got, want := rr.Outer(), RectLTRB(10, -5, 50, 35); got != want {
		t.Errorf("Offset outer = %v, want %v", got, want)
	}
	if rr.TL != CircularRadius(8) {
		t.Errorf("Offset TL = %v, want radius 8 preserved", rr.TL)
	}
}
