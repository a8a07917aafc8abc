package bitmap

import (
	"image"
	"math"

	strata "github.com/strata-gl/strata"
)

// Raster is the pixel buffer a bitmap canvas renders into. Pixels are
// premultiplied RGBA at device resolution: a raster for a 100x50
// logical size at a device pixel ratio of 2 holds 200x100 pixels.
type Raster struct {
	img  *image.RGBA
	size strata.Size
	dpr  float64
}

// NewRaster allocates a transparent raster for the given logical size
// and device pixel ratio. Device dimensions round up so the buffer
// covers the full logical area; degenerate sizes still allocate a 1x1
// buffer so a canvas over the raster always has somewhere to draw.
func NewRaster(size strata.Size, dpr float64) *Raster {
	if dpr <= 0 {
		dpr = 1
	}
	w := int(math.Ceil(size.Width * dpr))
	h := int(math.Ceil(size.Height * dpr))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		size: size,
		dpr:  dpr,
	}
}

// Size returns the logical size the raster was allocated for.
func (r *Raster) Size() strata.Size { return r.size }

// DevicePixelRatio returns the ratio of device pixels to logical
// pixels.
func (r *Raster) DevicePixelRatio() float64 { return r.dpr }

// Bounds returns the device-pixel bounds of the buffer.
func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

// Image returns the backing image. The canvas draws into it in place,
// so callers that hand the image elsewhere while drawing continues
// must copy it first.
func (r *Raster) Image() *image.RGBA { return r.img }
