package strata

import (
	"image"

	"github.com/strata-gl/strata/ruler"
)

// Canvas is the drawing surface the paint pass targets. Two concrete
// backends exist: backend/bitmap renders into a pixel buffer, and
// backend/dom builds a structural node tree. Pictures replay onto a
// Canvas, and the picture recorder is itself a Canvas.
//
// State operations (save, restore, transform) cannot fail and return
// nothing, except Restore which reports unbalanced calls. Draw and clip
// operations return an error; backends that cannot express a primitive
// return *UnsupportedOpError rather than approximating, and the paint
// pass aborts the frame on the first error.
//
// Canvases are not safe for concurrent use.
type Canvas interface {
	// Size returns the logical size of the drawing area.
	Size() Size

	// Save pushes the current transform and clip onto the state stack.
	Save()

	// Restore pops the most recent Save. Restoring with no matching
	// Save returns ErrUnbalancedRestore and leaves the state unchanged.
	Restore() error

	// SaveCount returns the number of unmatched Save calls.
	SaveCount() int

	// Translate post-multiplies the current transform by a translation.
	Translate(dx, dy float64)

	// Scale post-multiplies the current transform by a scale.
	Scale(sx, sy float64)

	// Rotate post-multiplies the current transform by a rotation in
	// radians.
	Rotate(radians float64)

	// Concat post-multiplies the current transform by m.
	Concat(m Matrix)

	// SetTransform replaces the current transform.
	SetTransform(m Matrix)

	// CurrentTransform returns the accumulated transform.
	CurrentTransform() Matrix

	// ClipRect intersects the clip with a rectangle in local
	// coordinates.
	ClipRect(r Rect) error

	// ClipRRect intersects the clip with a rounded rectangle in local
	// coordinates.
	ClipRRect(rr RRect) error

	// ClipPath intersects the clip with a path in local coordinates.
	ClipPath(path *Path) error

	// ClipBounds returns a conservative device-space bound of the
	// current clip, or EverythingRect when unclipped.
	ClipBounds() Rect

	// Clear replaces the whole surface with c, ignoring transform and
	// clip.
	Clear(c Color) error

	// DrawColor fills the current clip with c using the given blend
	// mode.
	DrawColor(c Color, mode BlendMode) error

	// DrawLine draws a stroked line segment between two points.
	DrawLine(p1, p2 Point, paint *Paint) error

	// DrawRect draws a rectangle.
	DrawRect(r Rect, paint *Paint) error

	// DrawRRect draws a rounded rectangle.
	DrawRRect(rr RRect, paint *Paint) error

	// DrawDRRect draws the area between an outer and an inner rounded
	// rectangle, the donut shape, by winding the inner contour in
	// reverse.
	DrawDRRect(outer, inner RRect, paint *Paint) error

	// DrawOval draws an ellipse inscribed in r.
	DrawOval(r Rect, paint *Paint) error

	// DrawCircle draws a circle.
	DrawCircle(center Point, radius float64, paint *Paint) error

	// DrawPath draws a path.
	DrawPath(path *Path, paint *Paint) error

	// DrawImage draws an image with its top-left corner at the given
	// point.
	DrawImage(img image.Image, at Point, paint *Paint) error

	// DrawImageRect draws the src sub-region of an image scaled into
	// the dst rectangle.
	DrawImageRect(img image.Image, src, dst Rect, paint *Paint) error

	// DrawParagraph draws a laid-out text block with its top-left
	// corner at the given point.
	DrawParagraph(para *ruler.Paragraph, at Point) error

	// DrawShadow draws the shadow cast by an elevated occluder shape.
	// When transparentOccluder is false the shadow may be drawn with a
	// fast silhouette; when true the backend must blur explicitly, since
	// the shadow shows through the occluder.
	DrawShadow(path *Path, c Color, elevation float64, transparentOccluder bool) error
}
