package bitmap

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/ruler"
)

// faceCache caches opentype faces per font and device pixel size.
// Faces carry hinting state, so reusing one across frames saves
// re-rasterizing every glyph.
type faceCache struct {
	faces map[faceKey]font.Face
}

type faceKey struct {
	src  *opentype.Font
	size float64
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[faceKey]font.Face)}
}

func (fc *faceCache) face(f *opentype.Font, size float64) (font.Face, error) {
	key := faceKey{src: f, size: size}
	if fa, ok := fc.faces[key]; ok {
		return fa, nil
	}
	fa, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fc.faces[key] = fa
	return fa, nil
}

// DrawParagraph draws a laid-out paragraph with its top-left corner at
// the given point. Axis-aligned uniform scales draw straight into the
// raster with a face sized for the device scale; rotated, sheared or
// mask-clipped draws render the paragraph into a scratch layer first
// and map the layer through the full transform.
func (c *Canvas) DrawParagraph(para *ruler.Paragraph, at strata.Point) error {
	if para == nil {
		return nil
	}
	if !para.LaidOut() {
		return ruler.ErrNotLaidOut
	}
	src, err := para.Source()
	if err != nil {
		return err
	}
	clip := c.clip()
	if clip.empty {
		return nil
	}
	dev := c.deviceTransform()
	a, b, _, d, e, _, ok := dev.Affine2D()
	if ok && b == 0 && d == 0 && a == e && a > 0 && clip.mask == nil {
		return c.drawParagraphDirect(para, src, at, a, clip)
	}
	return c.drawParagraphLayer(para, src, at, clip)
}

func (c *Canvas) drawParagraphDirect(para *ruler.Paragraph, src *ruler.FontSource, at strata.Point, scale float64, clip clipState) error {
	style := para.Style()
	face, err := c.faces.face(src.RasterFont(), style.FontSize*scale)
	if err != nil {
		return err
	}
	dev := c.deviceTransform()
	d := font.Drawer{
		Dst:  c.raster.img.SubImage(clip.rect).(*image.RGBA),
		Src:  image.NewUniform(para.Color()),
		Face: face,
	}
	for _, line := range para.Lines() {
		if line.Text == "" {
			continue
		}
		origin := dev.Apply(strata.Pt(at.X+line.X, at.Y+line.Baseline))
		d.Dot = fixed.Point26_6{X: floatFixed(origin.X), Y: floatFixed(origin.Y)}
		drawLineText(&d, line.Text, style, scale)
	}
	return nil
}

func (c *Canvas) drawParagraphLayer(para *ruler.Paragraph, src *ruler.FontSource, at strata.Point, clip clipState) error {
	dev := c.deviceTransform()
	a, b, _, d, e, _, ok := dev.Affine2D()
	if !ok {
		a, b, _, d, e, _ = affineApprox(dev)
	}
	scale := math.Max(math.Hypot(a, d), math.Hypot(b, e))
	if scale <= 0 {
		return nil
	}
	if scale > 8 {
		scale = 8
	}
	style := para.Style()
	face, err := c.faces.face(src.RasterFont(), style.FontSize*scale)
	if err != nil {
		return err
	}

	// Pad the layer so ascenders and glyph overhang outside the
	// paragraph box survive.
	pad := int(math.Ceil(style.FontSize*scale*0.5)) + 1
	w := int(math.Ceil(para.Width()*scale)) + 2*pad
	h := int(math.Ceil(para.Height()*scale)) + 2*pad
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	dr := font.Drawer{Dst: layer, Src: image.NewUniform(para.Color()), Face: face}
	for _, line := range para.Lines() {
		if line.Text == "" {
			continue
		}
		dr.Dot = fixed.Point26_6{
			X: floatFixed(line.X*scale) + fixed.I(pad),
			Y: floatFixed(line.Baseline*scale) + fixed.I(pad),
		}
		drawLineText(&dr, line.Text, style, scale)
	}

	// Layer pixel (0,0) sits at the paragraph corner minus the pad.
	m := dev.
		Mul(strata.MatrixTranslate2D(at.X-float64(pad)/scale, at.Y-float64(pad)/scale)).
		Mul(strata.MatrixScale2D(1/scale, 1/scale))
	la, lb, lc, ld, le, lf, ok2 := m.Affine2D()
	if !ok2 {
		la, lb, lc, ld, le, lf = affineApprox(m)
	}
	target := c.raster.img.SubImage(clip.rect).(*image.RGBA)
	opts := &draw.Options{}
	if clip.mask != nil {
		opts.DstMask = clip.mask
	}
	draw.ApproxBiLinear.Transform(target, f64.Aff3{la, lb, lc, ld, le, lf}, layer, layer.Bounds(), draw.Over, opts)
	return nil
}

// drawLineText draws one line, adding the style's letter and word
// spacing between glyphs the same way measurement does. Spacing breaks
// kerning pairs across the gap, which measurement accepts too.
func drawLineText(d *font.Drawer, text string, style ruler.Style, scale float64) {
	if style.LetterSpacing == 0 && style.WordSpacing == 0 {
		d.DrawString(text)
		return
	}
	letter := floatFixed(style.LetterSpacing * scale)
	word := floatFixed(style.WordSpacing * scale)
	for _, r := range text {
		d.DrawString(string(r))
		d.Dot.X += letter
		if r == ' ' {
			d.Dot.X += word
		}
	}
}

func floatFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
