package bitmap

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/internal/filter"
)

// paintPath fills or strokes a user-space path according to paint.
func (c *Canvas) paintPath(p *strata.Path, paint *strata.Paint) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	if paint == nil {
		paint = strata.NewPaint()
	}
	if paint.Style == strata.PaintStroke {
		return c.fillUserPath(strokeOutline(p, paint), paint)
	}
	return c.fillUserPath(p, paint)
}

// fillUserPath maps the path to device space, rasterizes its coverage
// and composites the paint color through the current clip.
func (c *Canvas) fillUserPath(p *strata.Path, paint *strata.Paint) error {
	if p.IsEmpty() {
		return nil
	}
	if paint.Color.IsTransparent() && paint.BlendMode != strata.BlendClear {
		return nil
	}
	clip := c.clip()
	if clip.empty {
		return nil
	}
	devPath := p.Transform(c.deviceTransform())

	pad := 1
	sigma := 0.0
	if paint.MaskBlur > 0 {
		sigma = paint.MaskBlur * c.raster.dpr
		pad += filter.KernelRadius(sigma)
	}
	rect := devPath.Bounds().RoundOut().Inset(-pad).Intersect(clip.rect)
	if rect.Empty() {
		return nil
	}

	mask := c.rasterizeMask(devPath, rect)
	if !paint.AntiAlias {
		thresholdAlpha(mask)
	}
	if sigma > 0 {
		filter.BlurAlpha(mask, sigma)
	}
	if clip.mask != nil {
		intersectAlpha(mask, clip.mask)
	}
	return c.compositeMask(mask, paint.Color, paint.BlendMode)
}

// rasterizeMask renders the device-space path's coverage into an alpha
// mask positioned over rect. Overlapping same-direction contours
// saturate and opposite-direction contours cancel, which is what donut
// fills and stroke outlines rely on.
func (c *Canvas) rasterizeMask(p *strata.Path, rect image.Rectangle) *image.Alpha {
	w, h := rect.Dx(), rect.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	c.rz.Reset(w, h)
	c.rz.DrawOp = draw.Src
	feedPath(&c.rz, p, strata.Pt(float64(rect.Min.X), float64(rect.Min.Y)))
	c.rz.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(rect.Min)
	return mask
}

// feedPath walks the path into the rasterizer, offset so rect's origin
// lands at (0,0). Contours left open are closed implicitly by the
// rasterizer.
func feedPath(z *vector.Rasterizer, p *strata.Path, off strata.Point) {
	for _, e := range p.Elements() {
		switch el := e.(type) {
		case strata.MoveTo:
			z.MoveTo(float32(el.Point.X-off.X), float32(el.Point.Y-off.Y))
		case strata.LineTo:
			z.LineTo(float32(el.Point.X-off.X), float32(el.Point.Y-off.Y))
		case strata.QuadTo:
			z.QuadTo(
				float32(el.Control.X-off.X), float32(el.Control.Y-off.Y),
				float32(el.Point.X-off.X), float32(el.Point.Y-off.Y),
			)
		case strata.CubicTo:
			z.CubeTo(
				float32(el.Control1.X-off.X), float32(el.Control1.Y-off.Y),
				float32(el.Control2.X-off.X), float32(el.Control2.Y-off.Y),
				float32(el.Point.X-off.X), float32(el.Point.Y-off.Y),
			)
		case strata.Close:
			z.ClosePath()
		}
	}
}

// thresholdAlpha snaps anti-aliased coverage to hard 0 or 255 edges.
func thresholdAlpha(m *image.Alpha) {
	for i := range m.Pix {
		if m.Pix[i] >= 0x80 {
			m.Pix[i] = 0xff
		} else {
			m.Pix[i] = 0
		}
	}
}

// intersectAlpha multiplies dst's coverage by clip's coverage over
// dst's rect. Pixels outside clip's rect clear to zero.
func intersectAlpha(dst, clip *image.Alpha) {
	b := dst.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := dst.Pix[di]; a != 0 {
				var cov uint32
				if (image.Point{X: x, Y: y}).In(clip.Rect) {
					cov = uint32(clip.Pix[clip.PixOffset(x, y)])
				}
				dst.Pix[di] = uint8(uint32(a) * cov / 0xff)
			}
			di++
		}
	}
}
