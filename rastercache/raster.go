package rastercache

import (
	"image"

	"github.com/strata-gl/strata"
)

// CachedRaster is a picture rasterized at a specific transform and
// device pixel ratio. It is immutable after construction; replacing a
// stale raster means populating a new one.
type CachedRaster struct {
	img          *image.RGBA
	deviceBounds strata.Rect
	dpr          float64
}

// NewCachedRaster wraps a rasterized image. deviceBounds is the region
// of device space the pixels cover; dpr is the device pixel ratio the
// raster was produced under.
func NewCachedRaster(img *image.RGBA, deviceBounds strata.Rect, dpr float64) *CachedRaster {
	return &CachedRaster{img: img, deviceBounds: deviceBounds, dpr: dpr}
}

// Image returns the backing pixels.
func (r *CachedRaster) Image() *image.RGBA { return r.img }

// DeviceBounds returns the device-space region the raster covers.
func (r *CachedRaster) DeviceBounds() strata.Rect { return r.deviceBounds }

// DevicePixelRatio returns the ratio the raster was produced under.
func (r *CachedRaster) DevicePixelRatio() float64 { return r.dpr }

// IsReusable reports whether the raster still matches the surface
// resolution. A false answer means the cache should have been cleared.
func (r *CachedRaster) IsReusable(dpr float64) bool { return r.dpr == dpr }

// Draw composites the raster onto the canvas. The pixels already carry
// the picture's transform, so drawing resets to the identity and
// places them at the recorded device position. The destination is in
// logical units; the canvas's own pixel-ratio scale maps it back onto
// the device grid one-to-one.
func (r *CachedRaster) Draw(c strata.Canvas) error {
	if r.img == nil {
		return nil
	}
	c.Save()
	c.SetTransform(strata.MatrixIdentity())

	b := r.img.Bounds()
	src := strata.RectXYWH(0, 0, float64(b.Dx()), float64(b.Dy()))
	dst := strata.RectXYWH(
		r.deviceBounds.MinX/r.dpr,
		r.deviceBounds.MinY/r.dpr,
		r.deviceBounds.Width()/r.dpr,
		r.deviceBounds.Height()/r.dpr,
	)
	err := c.DrawImageRect(r.img, src, dst, nil)
	if rerr := c.Restore(); err == nil {
		err = rerr
	}
	return err
}

func (r *CachedRaster) sizeBytes() int64 {
	if r.img == nil {
		return 0
	}
	b := r.img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * bytesPerPixel
}
