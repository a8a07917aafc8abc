package bitmap

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/ruler"
)

func textManager(t *testing.T) *ruler.Manager {
	t.Helper()
	reg := ruler.NewFontRegistry()
	if err := reg.Register("Go", goregular.TTF); err != nil {
		t.Fatalf("failed to register test font: %v", err)
	}
	return ruler.NewManager(reg)
}

func laidOutParagraph(t *testing.T, m *ruler.Manager, text string, col color.NRGBA, width float64) *ruler.Paragraph {
	t.Helper()
	b := ruler.NewParagraphBuilder(ruler.Style{FontSize: 16})
	b.SetColor(col)
	b.AddText(text)
	p := b.Build()
	if err := p.Layout(m, ruler.NewConstraints(width)); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	return p
}

func TestDrawParagraphNotLaidOut(t *testing.T) {
	c := newTestCanvas(50, 20, 1)
	b := ruler.NewParagraphBuilder(ruler.Style{})
	b.AddText("hi")
	err := c.DrawParagraph(b.Build(), strata.Pt(0, 0))
	if !errors.Is(err, ruler.ErrNotLaidOut) {
		t.Errorf("DrawParagraph() = %v, want ErrNotLaidOut", err)
	}
	if n := paintedCount(c); n != 0 {
		t.Errorf("painted %d pixels, want 0", n)
	}
}

func TestDrawParagraphPaintsGlyphs(t *testing.T) {
	m := textManager(t)
	c := newTestCanvas(120, 40, 1)
	p := laidOutParagraph(t, m, "Hello", color.NRGBA{A: 0xff}, 120)
	if err := c.DrawParagraph(p, strata.Pt(5, 5)); err != nil {
		t.Fatalf("DrawParagraph failed: %v", err)
	}
	if n := paintedCount(c); n < 20 {
		t.Errorf("painted %d pixels, want a visible word", n)
	}
}

// TestDrawParagraphColor tests that glyphs take the paragraph's color.
func TestDrawParagraphColor(t *testing.T) {
	m := textManager(t)
	c := newTestCanvas(120, 40, 1)
	p := laidOutParagraph(t, m, "Hello", color.NRGBA{R: 0xff, A: 0xff}, 120)
	if err := c.DrawParagraph(p, strata.Pt(5, 5)); err != nil {
		t.Fatalf("DrawParagraph failed: %v", err)
	}

	img := c.Raster().Image()
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A > 128 {
				if px.G != 0 || px.B != 0 || px.R == 0 {
					t.Fatalf("glyph pixel at (%d,%d) = %v, want a red hue", x, y, px)
				}
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no strongly covered glyph pixel found")
	}
}

// TestDrawParagraphRespectsClip tests that glyphs never escape the
// clip rect.
func TestDrawParagraphRespectsClip(t *testing.T) {
	m := textManager(t)
	c := newTestCanvas(120, 40, 1)
	if err := c.ClipRect(strata.RectLTRB(0, 0, 30, 40)); err != nil {
		t.Fatalf("ClipRect failed: %v", err)
	}
	p := laidOutParagraph(t, m, "HHHHHHHHHHHH", color.NRGBA{A: 0xff}, 400)
	if err := c.DrawParagraph(p, strata.Pt(5, 5)); err != nil {
		t.Fatalf("DrawParagraph failed: %v", err)
	}

	img := c.Raster().Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := 30; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("glyph pixel at (%d,%d) escaped the clip", x, y)
			}
		}
	}
	if n := paintedCount(c); n == 0 {
		t.Error("expected glyphs inside the clip")
	}
}

// TestDrawParagraphScalesWithRatio tests that a higher device pixel
// ratio rasterizes larger glyphs.
func TestDrawParagraphScalesWithRatio(t *testing.T) {
	m := textManager(t)
	p := laidOutParagraph(t, m, "Hello", color.NRGBA{A: 0xff}, 120)

	small := newTestCanvas(120, 40, 1)
	if err := small.DrawParagraph(p, strata.Pt(5, 5)); err != nil {
		t.Fatalf("DrawParagraph failed: %v", err)
	}
	big := newTestCanvas(120, 40, 2)
	if err := big.DrawParagraph(p, strata.Pt(5, 5)); err != nil {
		t.Fatalf("DrawParagraph failed: %v", err)
	}

	if paintedCount(big) <= paintedCount(small) {
		t.Errorf("painted %d pixels at ratio 2, want more than %d at ratio 1",
			paintedCount(big), paintedCount(small))
	}
}

// TestDrawParagraphRotated tests the scratch-layer path for transforms
// the face cannot express.
func TestDrawParagraphRotated(t *testing.T) {
	m := textManager(t)
	c := newTestCanvas(60, 60, 1)
	c.Translate(30, 30)
	c.Rotate(math.Pi / 2)
	c.Translate(-30, -30)
	p := laidOutParagraph(t, m, "Hi", color.NRGBA{A: 0xff}, 120)
	if err := c.DrawParagraph(p, strata.Pt(10, 20)); err != nil {
		t.Fatalf("DrawParagraph failed: %v", err)
	}
	if n := paintedCount(c); n == 0 {
		t.Error("expected rotated glyphs to paint")
	}
}
