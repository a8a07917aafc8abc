package strata

import "image/color"

// Color is a non-premultiplied sRGB color with 8-bit channels, the
// representation frame content arrives in and the raster backend
// composites with.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA creates a color from RGBA components. Alpha is straight, not
// premultiplied.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA converts to the standard non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Premul returns the color with channels premultiplied by alpha, the
// form image/draw sources expect.
func (c Color) Premul() color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xff),
		G: uint8(uint32(c.G) * a / 0xff),
		B: uint8(uint32(c.B) * a / 0xff),
		A: c.A,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// MulAlpha returns the color with its alpha scaled by a/255. Opacity
// layers modulate child paints this way.
func (c Color) MulAlpha(a uint8) Color {
	c.A = uint8(uint32(c.A) * uint32(a) / 0xff)
	return c
}

// IsOpaque reports whether the color is fully opaque.
func (c Color) IsOpaque() bool { return c.A == 0xff }

// IsTransparent reports whether the color contributes nothing.
func (c Color) IsTransparent() bool { return c.A == 0 }

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(0xff, 0xff, 0xff)
	Red         = RGB(0xff, 0, 0)
	Green       = RGB(0, 0xff, 0)
	Blue        = RGB(0, 0, 0xff)
)
