package scene

import (
	"github.com/strata-gl/strata"
)

// ClipRectLayer clips its children to an axis-aligned rectangle.
type ClipRectLayer struct {
	ContainerLayer
	clip strata.Rect
}

var _ Layer = (*ClipRectLayer)(nil)

// NewClipRectLayer creates a layer clipping to r, in the layer's own
// coordinate space.
func NewClipRectLayer(r strata.Rect) *ClipRectLayer {
	return &ClipRectLayer{clip: r}
}

// ClipRect returns the clip rectangle.
func (l *ClipRectLayer) ClipRect() strata.Rect {
	return l.clip
}

func (l *ClipRectLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	// Children that fall entirely outside the clip leave the bounds
	// empty, which prunes the whole subtree from the paint pass.
	l.bounds = l.prerollChildren(ctx, m).Intersect(l.clip)
}

func (l *ClipRectLayer) paint(ctx *PaintContext) error {
	c := ctx.Canvas
	c.Save()
	err := c.ClipRect(l.clip)
	if err == nil {
		err = l.paintChildren(ctx)
	}
	if rerr := c.Restore(); err == nil {
		err = rerr
	}
	return err
}

// ClipRRectLayer clips its children to a rounded rectangle.
type ClipRRectLayer struct {
	ContainerLayer
	clip strata.RRect
}

var _ Layer = (*ClipRRectLayer)(nil)

// NewClipRRectLayer creates a layer clipping to rr, in the layer's own
// coordinate space.
func NewClipRRectLayer(rr strata.RRect) *ClipRRectLayer {
	return &ClipRRectLayer{clip: rr.Normalized()}
}

// ClipRRect returns the clip shape.
func (l *ClipRRectLayer) ClipRRect() strata.RRect {
	return l.clip
}

func (l *ClipRRectLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	// The outer rectangle over-approximates rounded corners, which is
	// acceptable for bounds; the paint-time clip is exact.
	l.bounds = l.prerollChildren(ctx, m).Intersect(l.clip.Outer())
}

func (l *ClipRRectLayer) paint(ctx *PaintContext) error {
	c := ctx.Canvas
	c.Save()
	err := c.ClipRRect(l.clip)
	if err == nil {
		err = l.paintChildren(ctx)
	}
	if rerr := c.Restore(); err == nil {
		err = rerr
	}
	return err
}

// ClipPathLayer clips its children to an arbitrary path. Backends
// without path clipping reject the paint pass with an unsupported
// operation error.
type ClipPathLayer struct {
	ContainerLayer
	clip *strata.Path
}

var _ Layer = (*ClipPathLayer)(nil)

// NewClipPathLayer creates a layer clipping to path. The path is
// cloned; later mutation of the argument does not affect the layer.
func NewClipPathLayer(path *strata.Path) *ClipPathLayer {
	return &ClipPathLayer{clip: path.Clone()}
}

// ClipPath returns the clip path.
func (l *ClipPathLayer) ClipPath() *strata.Path {
	return l.clip
}

func (l *ClipPathLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	l.bounds = l.prerollChildren(ctx, m).Intersect(l.clip.Bounds())
}

func (l *ClipPathLayer) paint(ctx *PaintContext) error {
	c := ctx.Canvas
	c.Save()
	err := c.ClipPath(l.clip)
	if err == nil {
		err = l.paintChildren(ctx)
	}
	if rerr := c.Restore(); err == nil {
		err = rerr
	}
	return err
}
