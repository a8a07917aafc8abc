package bitmap

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	strata "github.com/strata-gl/strata"
)

// Canvas rasterizes canvas operations into a Raster. It embeds the
// shared save stack for transform and clip bookkeeping and resolves
// the clip stack to device state lazily, keeping the resolution cached
// until the stack changes.
//
// The current transform is logical; the raster's device pixel ratio is
// applied when geometry is rasterized. Frames rendered at different
// ratios therefore need different rasters, which IsReusable reports.
type Canvas struct {
	strata.SaveStack

	raster *Raster

	clipValid bool
	clipped   clipState

	rz    vector.Rasterizer
	faces *faceCache
}

var _ strata.Canvas = (*Canvas)(nil)

// clipState is the clip stack resolved to device space. rect is the
// device bound of the clip intersected with the raster; mask, when not
// nil, carries per-pixel coverage over rect for clips a rectangle
// cannot express.
type clipState struct {
	empty bool
	rect  image.Rectangle
	mask  *image.Alpha
}

// NewCanvas returns a canvas drawing into raster.
func NewCanvas(raster *Raster) *Canvas {
	return &Canvas{
		SaveStack: strata.NewSaveStack(),
		raster:    raster,
		faces:     newFaceCache(),
	}
}

// Size returns the logical size of the drawing area.
func (c *Canvas) Size() strata.Size { return c.raster.Size() }

// Raster returns the pixel buffer the canvas draws into.
func (c *Canvas) Raster() *Raster { return c.raster }

// IsReusable reports whether the canvas can serve a frame at the given
// device pixel ratio. A raster allocated at one ratio cannot render a
// frame at another.
func (c *Canvas) IsReusable(dpr float64) bool {
	return c.raster.dpr == dpr
}

// Restore pops the most recent save frame. When the pop drops clip
// entries the cached clip resolution drops with it.
func (c *Canvas) Restore() error {
	before := len(c.SaveStack.Clips())
	if err := c.SaveStack.Restore(); err != nil {
		return err
	}
	if len(c.SaveStack.Clips()) != before {
		c.clipValid = false
	}
	return nil
}

// Reset drops all save frames, clips and transforms along with the
// cached clip resolution. The raster's pixels are untouched.
func (c *Canvas) Reset() {
	c.SaveStack.Reset()
	c.clipValid = false
}

// ClipRect intersects the clip with a rectangle in local coordinates.
func (c *Canvas) ClipRect(r strata.Rect) error {
	if err := c.SaveStack.ClipRect(r); err != nil {
		return err
	}
	c.clipValid = false
	return nil
}

// ClipRRect intersects the clip with a rounded rectangle in local
// coordinates.
func (c *Canvas) ClipRRect(rr strata.RRect) error {
	if err := c.SaveStack.ClipRRect(rr); err != nil {
		return err
	}
	c.clipValid = false
	return nil
}

// ClipPath intersects the clip with a path in local coordinates.
func (c *Canvas) ClipPath(path *strata.Path) error {
	if err := c.SaveStack.ClipPath(path); err != nil {
		return err
	}
	c.clipValid = false
	return nil
}

// toDevice lifts a logical transform to device pixels.
func (c *Canvas) toDevice(m strata.Matrix) strata.Matrix {
	if c.raster.dpr == 1 {
		return m
	}
	return strata.MatrixScale2D(c.raster.dpr, c.raster.dpr).Mul(m)
}

// deviceTransform returns the transform from user space to device
// pixels.
func (c *Canvas) deviceTransform() strata.Matrix {
	return c.toDevice(c.CurrentTransform())
}

// clip returns the resolved clip, reusing the cached resolution while
// the clip stack is unchanged.
func (c *Canvas) clip() clipState {
	if !c.clipValid {
		c.clipped = c.resolveClip()
		c.clipValid = true
	}
	return c.clipped
}

// resolveClip walks the clip stack once. Axis-aligned rectangles fold
// into the device rect; every other shape rasterizes to coverage and
// the coverages multiply into a single mask.
func (c *Canvas) resolveClip() clipState {
	entries := c.SaveStack.Clips()
	st := clipState{rect: c.raster.Bounds()}
	if len(entries) == 0 {
		return st
	}

	// First pass narrows the device rect, so mask allocation in the
	// second pass covers only the surviving region.
	shaped := entries[:0:0]
	for _, e := range entries {
		dev := c.toDevice(e.Transform)
		if r, ok := rectangularClip(e, dev); ok {
			st.rect = st.rect.Intersect(r)
		} else {
			st.rect = st.rect.Intersect(dev.MapRect(e.LocalBounds()).RoundOut())
			shaped = append(shaped, e)
		}
		if st.rect.Empty() {
			return clipState{empty: true}
		}
	}

	for _, e := range shaped {
		mask := c.rasterizeClipEntry(e, st.rect)
		if st.mask == nil {
			st.mask = mask
		} else {
			intersectAlpha(st.mask, mask)
		}
	}
	return st
}

// rectangularClip reports whether the entry resolves to an axis-aligned
// device rectangle, and returns it. Edges round to the nearest pixel
// so rect clips stay crisp.
func rectangularClip(e strata.ClipEntry, dev strata.Matrix) (image.Rectangle, bool) {
	var r strata.Rect
	switch e.Kind {
	case strata.ClipKindRect:
		r = e.Rect
	case strata.ClipKindRRect:
		if !e.RRect.IsRect() {
			return image.Rectangle{}, false
		}
		r = e.RRect.Outer()
	default:
		return image.Rectangle{}, false
	}
	_, b, _, d, _, _, ok := dev.Affine2D()
	if !ok || b != 0 || d != 0 {
		return image.Rectangle{}, false
	}
	mapped := dev.MapRect(r)
	return image.Rect(
		iround(mapped.MinX), iround(mapped.MinY),
		iround(mapped.MaxX), iround(mapped.MaxY),
	), true
}

// rasterizeClipEntry renders one clip entry's coverage over rect.
func (c *Canvas) rasterizeClipEntry(e strata.ClipEntry, rect image.Rectangle) *image.Alpha {
	p := strata.NewPath()
	switch e.Kind {
	case strata.ClipKindRect:
		p.AddRect(e.Rect)
	case strata.ClipKindRRect:
		p.AddRRect(e.RRect.Normalized())
	default:
		p = e.Path
	}
	dev := c.toDevice(e.Transform)
	return c.rasterizeMask(p.Transform(dev), rect)
}

func iround(v float64) int {
	return int(math.Floor(v + 0.5))
}
