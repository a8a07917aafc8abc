package scene

import (
	"math"
	"testing"

	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/picture"
)

// fillPicture records a single filled rectangle so the resulting
// picture's bounds are exactly r.
func fillPicture(t *testing.T, r strata.Rect) *picture.Picture {
	t.Helper()
	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 1000, 1000))
	if err := rec.Canvas().DrawRect(r, strata.NewPaint()); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}
	return rec.Finish()
}

// rectNear compares rectangles allowing for floating-point fuzz from
// transform projection.
func rectNear(a, b strata.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.MinX-b.MinX) < eps && math.Abs(a.MinY-b.MinY) < eps &&
		math.Abs(a.MaxX-b.MaxX) < eps && math.Abs(a.MaxY-b.MaxY) < eps
}

// preroll runs a cacheless bounds pass over a single layer.
func prerollLayer(l Layer) {
	l.preroll(&PrerollContext{}, strata.MatrixIdentity())
}

// TestContainerBounds tests that a container's bounds are the union of
// its children's bounds.
func TestContainerBounds(t *testing.T) {
	t.Run("union of children", func(t *testing.T) {
		c := NewContainerLayer()
		c.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(0, 0, 10, 10)), strata.Point{}, false, false))
		c.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(5, 5, 15, 15)), strata.Point{}, false, false))
		prerollLayer(c)

		if want := strata.RectXYWH(0, 0, 20, 20); c.PaintBounds() != want {
			t.Errorf("PaintBounds = %v, want %v", c.PaintBounds(), want)
		}
		if !c.NeedsPainting() {
			t.Error("container with content reports NeedsPainting false")
		}
	})

	t.Run("empty container", func(t *testing.T) {
		c := NewContainerLayer()
		prerollLayer(c)
		if !c.PaintBounds().IsEmpty() {
			t.Errorf("empty container bounds = %v, want empty", c.PaintBounds())
		}
		if c.NeedsPainting() {
			t.Error("empty container reports NeedsPainting true")
		}
	})

	t.Run("empty children ignored", func(t *testing.T) {
		c := NewContainerLayer()
		c.Add(NewContainerLayer())
		c.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(3, 4, 5, 6)), strata.Point{}, false, false))
		prerollLayer(c)
		if want := strata.RectXYWH(3, 4, 5, 6); c.PaintBounds() != want {
			t.Errorf("PaintBounds = %v, want %v", c.PaintBounds(), want)
		}
	})
}

// TestPictureLayerBounds tests that a picture leaf's bounds are the
// picture's content bounds shifted by the paint offset.
func TestPictureLayerBounds(t *testing.T) {
	l := NewPictureLayer(fillPicture(t, strata.RectXYWH(10, 10, 20, 20)), strata.Pt(7, 3), false, false)
	prerollLayer(l)
	if want := strata.RectXYWH(17, 13, 20, 20); l.PaintBounds() != want {
		t.Errorf("PaintBounds = %v, want %v", l.PaintBounds(), want)
	}
}

// TestClipRectBounds tests clip layers intersecting their children's
// union, including the disjoint case that prunes the subtree.
func TestClipRectBounds(t *testing.T) {
	tests := []struct {
		name  string
		clip  strata.Rect
		child strata.Rect
		want  strata.Rect
		paint bool
	}{
		{
			name:  "child inside clip",
			clip:  strata.RectXYWH(0, 0, 100, 100),
			child: strata.RectXYWH(10, 10, 20, 20),
			want:  strata.RectXYWH(10, 10, 20, 20),
			paint: true,
		},
		{
			name:  "partial overlap",
			clip:  strata.RectXYWH(0, 0, 15, 15),
			child: strata.RectXYWH(10, 10, 10, 10),
			want:  strata.RectLTRB(10, 10, 15, 15),
			paint: true,
		},
		{
			name:  "disjoint clip",
			clip:  strata.RectXYWH(0, 0, 5, 5),
			child: strata.RectXYWH(10, 10, 10, 10),
			want:  strata.Rect{},
			paint: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewClipRectLayer(tt.clip)
			l.Add(NewPictureLayer(fillPicture(t, tt.child), strata.Point{}, false, false))
			prerollLayer(l)

			if !rectNear(l.PaintBounds(), tt.want) {
				t.Errorf("PaintBounds = %v, want %v", l.PaintBounds(), tt.want)
			}
			if l.NeedsPainting() != tt.paint {
				t.Errorf("NeedsPainting = %v, want %v", l.NeedsPainting(), tt.paint)
			}
		})
	}
}

// TestClipRRectBounds tests that a rounded clip bounds against its
// outer rectangle.
func TestClipRRectBounds(t *testing.T) {
	l := NewClipRRectLayer(strata.RRectUniform(strata.RectXYWH(0, 0, 20, 20), 5))
	l.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(10, 10, 30, 30)), strata.Point{}, false, false))
	prerollLayer(l)
	if want := strata.RectLTRB(10, 10, 20, 20); l.PaintBounds() != want {
		t.Errorf("PaintBounds = %v, want %v", l.PaintBounds(), want)
	}
}

// TestClipPathBounds tests that a path clip bounds against the path's
// bounding box.
func TestClipPathBounds(t *testing.T) {
	p := strata.NewPath()
	p.AddCircle(strata.Pt(10, 10), 10)
	l := NewClipPathLayer(p)
	l.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(5, 5, 100, 100)), strata.Point{}, false, false))
	prerollLayer(l)
	if want := strata.RectLTRB(5, 5, 20, 20); l.PaintBounds() != want {
		t.Errorf("PaintBounds = %v, want %v", l.PaintBounds(), want)
	}
}

// TestTransformLayerBounds tests that transform layers project their
// children's union through the transform.
func TestTransformLayerBounds(t *testing.T) {
	child := strata.RectXYWH(10, 10, 10, 10)
	tests := []struct {
		name string
		m    strata.Matrix
		want strata.Rect
	}{
		{"translate", strata.MatrixTranslate2D(5, 5), strata.RectXYWH(15, 15, 10, 10)},
		{"scale", strata.MatrixScale2D(2, 2), strata.RectXYWH(20, 20, 20, 20)},
		{"rotate quarter turn", strata.MatrixRotate2D(math.Pi / 2), strata.RectLTRB(-20, 10, -10, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTransformLayer(tt.m)
			l.Add(NewPictureLayer(fillPicture(t, child), strata.Point{}, false, false))
			prerollLayer(l)
			if !rectNear(l.PaintBounds(), tt.want) {
				t.Errorf("PaintBounds = %v, want %v", l.PaintBounds(), tt.want)
			}
		})
	}
}

// TestOpacityLayerBounds tests that an opacity layer shifts its
// children's union by its offset.
func TestOpacityLayerBounds(t *testing.T) {
	l := NewOpacityLayer(128, strata.Pt(5, 5))
	l.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(0, 0, 10, 10)), strata.Point{}, false, false))
	prerollLayer(l)
	if want := strata.RectXYWH(5, 5, 10, 10); l.PaintBounds() != want {
		t.Errorf("PaintBounds = %v, want %v", l.PaintBounds(), want)
	}
}

// TestPhysicalShapeBounds tests that elevation extends a shape's
// bounds by its shadow while zero elevation leaves them untouched.
func TestPhysicalShapeBounds(t *testing.T) {
	shape := strata.NewPath()
	shape.AddRect(strata.RectXYWH(10, 10, 40, 40))

	flat := NewPhysicalShapeLayer(shape, 0, strata.RGB(200, 200, 200), strata.Black)
	prerollLayer(flat)
	if want := strata.RectXYWH(10, 10, 40, 40); flat.PaintBounds() != want {
		t.Errorf("flat PaintBounds = %v, want %v", flat.PaintBounds(), want)
	}

	raised := NewPhysicalShapeLayer(shape, 4, strata.RGB(200, 200, 200), strata.Black)
	prerollLayer(raised)
	got := raised.PaintBounds()
	if !got.ContainsRect(flat.PaintBounds()) {
		t.Errorf("raised bounds %v do not contain the shape %v", got, flat.PaintBounds())
	}
	if got == flat.PaintBounds() {
		t.Error("elevation did not extend the bounds")
	}
	// The light sits up and to the left, so the shadow falls down-right.
	if got.MaxX <= 50 || got.MaxY <= 50 {
		t.Errorf("shadow did not extend down-right: %v", got)
	}
}

// TestPhysicalShapePaint tests the paint order of an elevated shape:
// shadow, fill, then children clipped to the outline.
func TestPhysicalShapePaint(t *testing.T) {
	shape := strata.NewPath()
	shape.AddRect(strata.RectXYWH(0, 0, 50, 50))
	l := NewPhysicalShapeLayer(shape, 2, strata.RGB(240, 240, 240), strata.Black)
	l.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(5, 5, 10, 10)), strata.Point{}, false, false))
	prerollLayer(l)

	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 200, 200))
	if err := l.paint(&PaintContext{Canvas: rec.Canvas()}); err != nil {
		t.Fatalf("paint: %v", err)
	}
	pic := rec.Finish()

	// Shadow, shape fill, and the child's one rectangle.
	if pic.OpCount() != 3 {
		t.Errorf("OpCount = %d, want 3", pic.OpCount())
	}
}

// TestPaintBalancesState tests that a full paint pass leaves the
// canvas save stack and transform exactly as it found them.
func TestPaintBalancesState(t *testing.T) {
	b := NewBuilder()
	b.PushOffset(10, 10)
	b.PushClipRect(strata.RectXYWH(0, 0, 100, 100))
	b.PushOpacity(128, strata.Pt(2, 2))
	b.AddPicture(fillPicture(t, strata.RectXYWH(0, 0, 10, 10)), strata.Pt(1, 1), false, false)
	tree := b.Build(strata.Size{Width: 200, Height: 200})

	tree.Preroll(nil)

	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 200, 200))
	c := rec.Canvas()
	if err := tree.Paint(&PaintContext{Canvas: c}); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if c.SaveCount() != 0 {
		t.Errorf("SaveCount after paint = %d, want 0", c.SaveCount())
	}
	if !c.CurrentTransform().IsIdentity() {
		t.Errorf("transform after paint = %v, want identity", c.CurrentTransform())
	}
}

// TestDisjointClipSkipsPaint tests that a subtree pruned by preroll
// never touches the canvas.
func TestDisjointClipSkipsPaint(t *testing.T) {
	clip := NewClipRectLayer(strata.RectXYWH(0, 0, 5, 5))
	clip.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(10, 10, 10, 10)), strata.Point{}, false, false))
	tree := NewLayerTree(clip, strata.Size{Width: 100, Height: 100})
	tree.Preroll(nil)

	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 100, 100))
	if err := tree.Paint(&PaintContext{Canvas: rec.Canvas()}); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if got := rec.Finish().OpCount(); got != 0 {
		t.Errorf("pruned subtree recorded %d draws, want 0", got)
	}
}

// TestAlphaCanvasScaling tests the alpha arithmetic of the opacity
// wrapper, including nesting.
func TestAlphaCanvasScaling(t *testing.T) {
	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 100, 100))
	a := &alphaCanvas{Canvas: rec.Canvas(), alpha: 128}

	p := strata.NewPaint()
	p.Color = strata.RGBA(255, 0, 0, 200)
	q := a.scaled(p)
	if want := uint8(100); q.Color.A != want {
		t.Errorf("scaled alpha = %d, want %d", q.Color.A, want)
	}
	if p.Color.A != 200 {
		t.Errorf("scaling mutated the caller's paint: alpha now %d", p.Color.A)
	}

	nested := &alphaCanvas{Canvas: a, alpha: 128}
	// Two half-alpha layers compose to roughly a quarter.
	r := nested.scaled(a.scaled(p))
	if r.Color.A > 52 || r.Color.A < 48 {
		t.Errorf("nested scaled alpha = %d, want about 50", r.Color.A)
	}
}

// TestOpacityZeroSkipsChildren tests that a fully transparent layer
// paints nothing at all.
func TestOpacityZeroSkipsChildren(t *testing.T) {
	l := NewOpacityLayer(0, strata.Point{})
	l.Add(NewPictureLayer(fillPicture(t, strata.RectXYWH(0, 0, 10, 10)), strata.Point{}, false, false))
	prerollLayer(l)

	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 100, 100))
	if err := l.paint(&PaintContext{Canvas: rec.Canvas()}); err != nil {
		t.Fatalf("paint: %v", err)
	}
	if got := rec.Finish().OpCount(); got != 0 {
		t.Errorf("invisible layer recorded %d draws, want 0", got)
	}
}
