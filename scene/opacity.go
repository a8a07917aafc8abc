package scene

import (
	"image"

	"github.com/strata-gl/strata"
)

// OpacityLayer paints its children modulated by a single alpha, after
// an optional positioning offset.
type OpacityLayer struct {
	ContainerLayer
	alpha  uint8
	offset strata.Point
}

var _ Layer = (*OpacityLayer)(nil)

// NewOpacityLayer creates a layer drawing its children at the given
// alpha, 0 fully transparent through 255 fully opaque.
func NewOpacityLayer(alpha uint8, offset strata.Point) *OpacityLayer {
	return &OpacityLayer{alpha: alpha, offset: offset}
}

// Alpha returns the layer's opacity.
func (l *OpacityLayer) Alpha() uint8 { return l.alpha }

func (l *OpacityLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	child := m.PreTranslate(l.offset.X, l.offset.Y)
	l.bounds = l.prerollChildren(ctx, child).Offset(l.offset.X, l.offset.Y)
}

func (l *OpacityLayer) paint(ctx *PaintContext) error {
	if l.alpha == 0 {
		return nil
	}
	outer := ctx.Canvas
	outer.Save()
	if l.offset != (strata.Point{}) {
		outer.Translate(l.offset.X, l.offset.Y)
	}
	if l.alpha < 0xff {
		ctx.Canvas = &alphaCanvas{Canvas: outer, alpha: l.alpha}
	}
	err := l.paintChildren(ctx)
	ctx.Canvas = outer
	if rerr := outer.Restore(); err == nil {
		err = rerr
	}
	return err
}

// alphaCanvas scales the alpha of every paint passing through it. All
// state handling forwards to the wrapped canvas untouched, so nesting
// two wrappers multiplies their alphas. Paragraph text keeps the color
// baked into its style.
type alphaCanvas struct {
	strata.Canvas
	alpha uint8
}

func (a *alphaCanvas) scaled(p *strata.Paint) *strata.Paint {
	q := p.Clone()
	q.Color = q.Color.MulAlpha(a.alpha)
	return q
}

func (a *alphaCanvas) DrawColor(c strata.Color, mode strata.BlendMode) error {
	return a.Canvas.DrawColor(c.MulAlpha(a.alpha), mode)
}

func (a *alphaCanvas) DrawLine(p1, p2 strata.Point, paint *strata.Paint) error {
	return a.Canvas.DrawLine(p1, p2, a.scaled(paint))
}

func (a *alphaCanvas) DrawRect(r strata.Rect, paint *strata.Paint) error {
	return a.Canvas.DrawRect(r, a.scaled(paint))
}

func (a *alphaCanvas) DrawRRect(rr strata.RRect, paint *strata.Paint) error {
	return a.Canvas.DrawRRect(rr, a.scaled(paint))
}

func (a *alphaCanvas) DrawDRRect(outer, inner strata.RRect, paint *strata.Paint) error {
	return a.Canvas.DrawDRRect(outer, inner, a.scaled(paint))
}

func (a *alphaCanvas) DrawOval(r strata.Rect, paint *strata.Paint) error {
	return a.Canvas.DrawOval(r, a.scaled(paint))
}

func (a *alphaCanvas) DrawCircle(center strata.Point, radius float64, paint *strata.Paint) error {
	return a.Canvas.DrawCircle(center, radius, a.scaled(paint))
}

func (a *alphaCanvas) DrawPath(path *strata.Path, paint *strata.Paint) error {
	return a.Canvas.DrawPath(path, a.scaled(paint))
}

func (a *alphaCanvas) DrawImage(img image.Image, at strata.Point, paint *strata.Paint) error {
	return a.Canvas.DrawImage(img, at, a.scaled(paint))
}

func (a *alphaCanvas) DrawImageRect(img image.Image, src, dst strata.Rect, paint *strata.Paint) error {
	return a.Canvas.DrawImageRect(img, src, dst, a.scaled(paint))
}

func (a *alphaCanvas) DrawShadow(path *strata.Path, c strata.Color, elevation float64, transparentOccluder bool) error {
	return a.Canvas.DrawShadow(path, c.MulAlpha(a.alpha), elevation, transparentOccluder)
}
