package bitmap

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	strata "github.com/strata-gl/strata"
)

// DrawImage draws img with its top-left corner at the given point,
// unscaled in user space.
func (c *Canvas) DrawImage(img image.Image, at strata.Point, paint *strata.Paint) error {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	src := strata.RectXYWH(0, 0, float64(b.Dx()), float64(b.Dy()))
	dst := strata.RectXYWH(at.X, at.Y, float64(b.Dx()), float64(b.Dy()))
	return c.DrawImageRect(img, src, dst, paint)
}

// DrawImageRect draws the src region of img, in pixel coordinates
// relative to the image's top-left corner, scaled into the dst
// rectangle in user space. Untransformed one-to-one draws copy pixels
// exactly; everything else resamples, bilinear by default and nearest
// neighbor when the paint disables anti-aliasing. The paint color's
// alpha scales the image's opacity.
func (c *Canvas) DrawImageRect(img image.Image, src, dst strata.Rect, paint *strata.Paint) error {
	if img == nil || src.IsEmpty() || dst.IsEmpty() {
		return nil
	}
	if paint == nil {
		paint = strata.NewPaint()
	}
	if paint.Color.A == 0 && paint.BlendMode != strata.BlendClear {
		return nil
	}
	clip := c.clip()
	if clip.empty {
		return nil
	}

	b := img.Bounds()
	srcR := image.Rect(
		b.Min.X+int(math.Floor(src.MinX)),
		b.Min.Y+int(math.Floor(src.MinY)),
		b.Min.X+int(math.Ceil(src.MaxX)),
		b.Min.Y+int(math.Ceil(src.MaxY)),
	).Intersect(b)
	if srcR.Empty() {
		return nil
	}

	dev := c.deviceTransform()
	direct := clip.mask == nil && paint.BlendMode == strata.BlendSrcOver

	if direct && paint.Color.A == 0xff {
		if r, ok := exactCopyRect(dev, dst, srcR); ok {
			cr := r.Intersect(clip.rect)
			if cr.Empty() {
				return nil
			}
			sp := srcR.Min.Add(cr.Min.Sub(r.Min))
			draw.Draw(c.raster.img, cr, img, sp, draw.Over)
			return nil
		}
	}

	// Map source pixels through the destination rect placement and the
	// device transform in one affine step.
	m := dev.
		Mul(strata.MatrixTranslate2D(dst.MinX, dst.MinY)).
		Mul(strata.MatrixScale2D(dst.Width()/float64(srcR.Dx()), dst.Height()/float64(srcR.Dy()))).
		Mul(strata.MatrixTranslate2D(-float64(srcR.Min.X), -float64(srcR.Min.Y)))
	a, bb, cc, dd, ee, ff, ok := m.Affine2D()
	if !ok {
		a, bb, cc, dd, ee, ff = affineApprox(m)
	}
	aff := f64.Aff3{a, bb, cc, dd, ee, ff}

	var interp draw.Interpolator = draw.ApproxBiLinear
	if !paint.AntiAlias {
		interp = draw.NearestNeighbor
	}

	if direct {
		target := c.raster.img.SubImage(clip.rect).(*image.RGBA)
		opts := &draw.Options{}
		if paint.Color.A != 0xff {
			opts.SrcMask = image.NewUniform(color.Alpha{A: paint.Color.A})
		}
		interp.Transform(target, aff, img, srcR, draw.Over, opts)
		return nil
	}

	// Exotic blends and masked clips stage the transformed image in a
	// scratch layer and blend it per pixel.
	affected := dev.MapRect(dst).RoundOut().Inset(-1).Intersect(clip.rect)
	if affected.Empty() {
		return nil
	}
	layer := image.NewRGBA(affected)
	interp.Transform(layer, aff, img, srcR, draw.Over, nil)
	return c.compositeLayer(layer, clip, paint.BlendMode, paint.Color.A)
}

// exactCopyRect reports whether mapping dst through dev is a pixel
// grid aligned one-to-one placement of srcR, and returns the device
// rectangle.
func exactCopyRect(dev strata.Matrix, dst strata.Rect, srcR image.Rectangle) (image.Rectangle, bool) {
	a, b, _, d, e, _, ok := dev.Affine2D()
	if !ok || b != 0 || d != 0 || a <= 0 || e <= 0 {
		return image.Rectangle{}, false
	}
	mapped := dev.MapRect(dst)
	r := image.Rect(
		iround(mapped.MinX), iround(mapped.MinY),
		iround(mapped.MaxX), iround(mapped.MaxY),
	)
	const eps = 1e-6
	if math.Abs(mapped.MinX-float64(r.Min.X)) > eps ||
		math.Abs(mapped.MinY-float64(r.Min.Y)) > eps ||
		math.Abs(mapped.MaxX-float64(r.Max.X)) > eps ||
		math.Abs(mapped.MaxY-float64(r.Max.Y)) > eps {
		return image.Rectangle{}, false
	}
	if r.Dx() != srcR.Dx() || r.Dy() != srcR.Dy() {
		return image.Rectangle{}, false
	}
	return r, true
}

// affineApprox projects a matrix to its 2D affine part, dropping
// perspective terms.
func affineApprox(m strata.Matrix) (a, b, c, d, e, f float64) {
	return m[0], m[1], m[3], m[4], m[5], m[7]
}
