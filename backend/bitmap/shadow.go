package bitmap

import (
	strata "github.com/strata-gl/strata"
)

// DrawShadow paints the shadow an elevated occluder casts. The shape's
// silhouette shifts away from the light, blurs through the mask blur
// pipeline and fills with the shadow color. A transparent occluder
// lets the shadow show through it, so that branch halves the alpha to
// keep the visible overlap from doubling up.
func (c *Canvas) DrawShadow(path *strata.Path, col strata.Color, elevation float64, transparentOccluder bool) error {
	if path == nil || path.IsEmpty() || elevation <= 0 {
		return nil
	}
	shape := path.Bounds()
	if shape.IsEmpty() {
		return nil
	}
	off := strata.ShadowOffset(elevation)
	blur := strata.ShadowBlurRadius(shape, elevation)

	paint := strata.NewPaint()
	paint.Color = col
	if transparentOccluder {
		paint.Color = col.MulAlpha(0x80)
	}
	// One third of the blur radius keeps the kernel's reach inside the
	// declared shadow bounds, whose inflation is the full radius.
	paint.MaskBlur = blur / 3
	return c.paintPath(path.Transform(strata.MatrixTranslate2D(off.X, off.Y)), paint)
}
