package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	strata "github.com/strata-gl/strata"
)

// Clear replaces every pixel with col, ignoring transform and clip.
func (c *Canvas) Clear(col strata.Color) error {
	draw.Draw(c.raster.img, c.raster.img.Bounds(), image.NewUniform(col.Premul()), image.Point{}, draw.Src)
	return nil
}

// DrawColor fills the current clip with col using the given blend
// mode.
func (c *Canvas) DrawColor(col strata.Color, mode strata.BlendMode) error {
	clip := c.clip()
	if clip.empty {
		return nil
	}
	if clip.mask == nil {
		switch mode {
		case strata.BlendSrcOver:
			draw.Draw(c.raster.img, clip.rect, image.NewUniform(col.Premul()), image.Point{}, draw.Over)
			return nil
		case strata.BlendSrc:
			draw.Draw(c.raster.img, clip.rect, image.NewUniform(col.Premul()), image.Point{}, draw.Src)
			return nil
		}
	}
	mask := clip.mask
	if mask == nil {
		mask = opaqueMask(clip.rect)
	}
	return c.compositeMask(mask, col, mode)
}

// compositeMask blends col into the raster wherever mask has coverage.
// SrcOver rides the optimized DrawMask path; the remaining modes run a
// per-pixel loop with coverage folded in as interpolation toward the
// untouched destination.
func (c *Canvas) compositeMask(mask *image.Alpha, col strata.Color, mode strata.BlendMode) error {
	dst := c.raster.img
	r := mask.Rect.Intersect(dst.Bounds())
	if r.Empty() {
		return nil
	}
	s := col.Premul()
	if mode == strata.BlendSrcOver {
		draw.DrawMask(dst, r, image.NewUniform(s), image.Point{}, mask, r.Min, draw.Over)
		return nil
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			if cov := mask.Pix[mi]; cov != 0 {
				i := dst.PixOffset(x, y)
				blendPixel(dst.Pix[i:i+4:i+4], s, mode, cov)
			}
			mi++
		}
	}
	return nil
}

// blendPixel combines the premultiplied source color with one
// destination pixel under mode and writes the result, interpolated by
// coverage so partially covered edge pixels transition smoothly.
func blendPixel(d []uint8, s color.RGBA, mode strata.BlendMode, cov uint8) {
	dr, dg, db, da := uint32(d[0]), uint32(d[1]), uint32(d[2]), uint32(d[3])
	sr, sg, sb, sa := uint32(s.R), uint32(s.G), uint32(s.B), uint32(s.A)

	var rr, rg, rb, ra uint32
	switch mode {
	case strata.BlendSrc:
		rr, rg, rb, ra = sr, sg, sb, sa
	case strata.BlendClear:
		// stays zero
	case strata.BlendDstOver:
		rr = dr + sr*(0xff-da)/0xff
		rg = dg + sg*(0xff-da)/0xff
		rb = db + sb*(0xff-da)/0xff
		ra = da + sa*(0xff-da)/0xff
	case strata.BlendMultiply:
		rr = (sr*dr + sr*(0xff-da) + dr*(0xff-sa)) / 0xff
		rg = (sg*dg + sg*(0xff-da) + dg*(0xff-sa)) / 0xff
		rb = (sb*db + sb*(0xff-da) + db*(0xff-sa)) / 0xff
		ra = (sa*da + sa*(0xff-da) + da*(0xff-sa)) / 0xff
	default:
		rr = sr + dr*(0xff-sa)/0xff
		rg = sg + dg*(0xff-sa)/0xff
		rb = sb + db*(0xff-sa)/0xff
		ra = sa + da*(0xff-sa)/0xff
	}

	if cov != 0xff {
		cv := uint32(cov)
		inv := 0xff - cv
		rr = (rr*cv + dr*inv) / 0xff
		rg = (rg*cv + dg*inv) / 0xff
		rb = (rb*cv + db*inv) / 0xff
		ra = (ra*cv + da*inv) / 0xff
	}
	d[0], d[1], d[2], d[3] = uint8(rr), uint8(rg), uint8(rb), uint8(ra)
}

// compositeLayer blends a premultiplied scratch layer onto the raster
// through the clip, scaling the layer by alpha. Fully transparent
// layer pixels leave the destination untouched.
func (c *Canvas) compositeLayer(layer *image.RGBA, clip clipState, mode strata.BlendMode, alpha uint8) error {
	dst := c.raster.img
	r := layer.Rect.Intersect(clip.rect).Intersect(dst.Bounds())
	if r.Empty() {
		return nil
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		li := layer.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			px := layer.Pix[li : li+4 : li+4]
			li += 4
			if px[0] == 0 && px[1] == 0 && px[2] == 0 && px[3] == 0 {
				continue
			}
			s := color.RGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
			if alpha != 0xff {
				a := uint32(alpha)
				s.R = uint8(uint32(s.R) * a / 0xff)
				s.G = uint8(uint32(s.G) * a / 0xff)
				s.B = uint8(uint32(s.B) * a / 0xff)
				s.A = uint8(uint32(s.A) * a / 0xff)
			}
			cov := uint8(0xff)
			if clip.mask != nil {
				cov = 0
				if (image.Point{X: x, Y: y}).In(clip.mask.Rect) {
					cov = clip.mask.Pix[clip.mask.PixOffset(x, y)]
				}
				if cov == 0 {
					continue
				}
			}
			i := dst.PixOffset(x, y)
			blendPixel(dst.Pix[i:i+4:i+4], s, mode, cov)
		}
	}
	return nil
}

// opaqueMask returns a full-coverage mask over r.
func opaqueMask(r image.Rectangle) *image.Alpha {
	m := image.NewAlpha(r)
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	return m
}
