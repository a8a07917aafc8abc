package strata

import "testing"

// TestShadowOffset tests that shadows fall down and to the right of the
// occluder, proportionally to elevation.
func TestShadowOffset(t *testing.T) {
	if got := ShadowOffset(6); got != Pt(2, 4) {
		t.Errorf("ShadowOffset(6) = %v, want (2, 4)", got)
	}
	if got := ShadowOffset(3); got != Pt(1, 2) {
		t.Errorf("ShadowOffset(3) = %v, want (1, 2)", got)
	}
	if got := ShadowOffset(0); !got.IsZero() {
		t.Errorf("ShadowOffset(0) = %v, want zero", got)
	}
	if got := ShadowOffset(-5); !got.IsZero() {
		t.Errorf("ShadowOffset(-5) = %v, want zero", got)
	}
}

// TestShadowBlurRadius tests the penumbra model: the larger axis sets
// the softness, scaled by elevation.
func TestShadowBlurRadius(t *testing.T) {
	wide := RectXYWH(0, 0, 800, 100)
	if got := ShadowBlurRadius(wide, 3); got != 6 {
		t.Errorf("blur for wide occluder = %v, want 6", got)
	}
	tall := RectXYWH(0, 0, 100, 800)
	if got := ShadowBlurRadius(tall, 3); got != 6 {
		t.Errorf("blur for tall occluder = %v, want 6", got)
	}
	if got := ShadowBlurRadius(wide, 6); got != 12 {
		t.Errorf("blur at doubled elevation = %v, want 12", got)
	}
	if got := ShadowBlurRadius(wide, 0); got != 0 {
		t.Errorf("blur at zero elevation = %v, want 0", got)
	}
}

// TestShadowBounds tests the conservative occluder-plus-shadow cover.
func TestShadowBounds(t *testing.T) {
	shape := RectXYWH(0, 0, 800, 100)
	got := ShadowBounds(shape, 3)
	// Offset (1, 2), blur 6: the cast shadow spans (-5,-4)-(807,108) and
	// the union keeps the occluder's own top-left corner.
	want := RectLTRB(-5, -4, 807, 108)
	if got != want {
		t.Errorf("ShadowBounds = %v, want %v", got, want)
	}
	if !got.ContainsRect(shape) {
		t.Error("ShadowBounds must cover the occluder itself")
	}
}

// TestShadowBoundsDegenerate tests the flat and empty cases.
func TestShadowBoundsDegenerate(t *testing.T) {
	shape := RectXYWH(10, 10, 50, 50)
	if got := ShadowBounds(shape, 0); got != shape {
		t.Errorf("ShadowBounds at elevation 0 = %v, want shape unchanged", got)
	}
	if got := ShadowBounds(Rect{}, 8); got != (Rect{}) {
		t.Errorf("ShadowBounds of empty shape = %v, want empty", got)
	}
}
