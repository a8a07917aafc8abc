package picture

import (
	"image"

	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/ruler"
)

// op is a single recorded canvas operation. replay applies it to a
// target canvas; approxSize estimates its retained memory for the
// picture's byte accounting.
type op interface {
	replay(c strata.Canvas) error
	approxSize() int
}

// opBaseSize is the bookkeeping cost charged to every operation on top
// of its payload.
const opBaseSize = 48

type saveOp struct{}

func (saveOp) replay(c strata.Canvas) error { c.Save(); return nil }
func (saveOp) approxSize() int              { return opBaseSize }

type restoreOp struct{}

func (restoreOp) replay(c strata.Canvas) error { return c.Restore() }
func (restoreOp) approxSize() int              { return opBaseSize }

type translateOp struct {
	dx, dy float64
}

func (o translateOp) replay(c strata.Canvas) error { c.Translate(o.dx, o.dy); return nil }
func (translateOp) approxSize() int                { return opBaseSize }

type scaleOp struct {
	sx, sy float64
}

func (o scaleOp) replay(c strata.Canvas) error { c.Scale(o.sx, o.sy); return nil }
func (scaleOp) approxSize() int                { return opBaseSize }

type rotateOp struct {
	radians float64
}

func (o rotateOp) replay(c strata.Canvas) error { c.Rotate(o.radians); return nil }
func (rotateOp) approxSize() int                { return opBaseSize }

type concatOp struct {
	m strata.Matrix
}

func (o concatOp) replay(c strata.Canvas) error { c.Concat(o.m); return nil }
func (concatOp) approxSize() int                { return opBaseSize + 128 }

type setTransformOp struct {
	m strata.Matrix
}

func (o setTransformOp) replay(c strata.Canvas) error { c.SetTransform(o.m); return nil }
func (setTransformOp) approxSize() int                { return opBaseSize + 128 }

type clipRectOp struct {
	rect strata.Rect
}

func (o clipRectOp) replay(c strata.Canvas) error { return c.ClipRect(o.rect) }
func (clipRectOp) approxSize() int                { return opBaseSize + 32 }

type clipRRectOp struct {
	rrect strata.RRect
}

func (o clipRRectOp) replay(c strata.Canvas) error { return c.ClipRRect(o.rrect) }
func (clipRRectOp) approxSize() int                { return opBaseSize + 96 }

type clipPathOp struct {
	path *strata.Path
}

func (o clipPathOp) replay(c strata.Canvas) error { return c.ClipPath(o.path) }
func (o clipPathOp) approxSize() int              { return opBaseSize + pathSize(o.path) }

type clearOp struct {
	color strata.Color
}

func (o clearOp) replay(c strata.Canvas) error { return c.Clear(o.color) }
func (clearOp) approxSize() int                { return opBaseSize }

type drawColorOp struct {
	color strata.Color
	mode  strata.BlendMode
}

func (o drawColorOp) replay(c strata.Canvas) error { return c.DrawColor(o.color, o.mode) }
func (drawColorOp) approxSize() int                { return opBaseSize }

type drawLineOp struct {
	p1, p2 strata.Point
	paint  strata.Paint
}

func (o drawLineOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawLine(o.p1, o.p2, &p)
}
func (drawLineOp) approxSize() int { return opBaseSize + 96 }

type drawRectOp struct {
	rect  strata.Rect
	paint strata.Paint
}

func (o drawRectOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawRect(o.rect, &p)
}
func (drawRectOp) approxSize() int { return opBaseSize + 96 }

type drawRRectOp struct {
	rrect strata.RRect
	paint strata.Paint
}

func (o drawRRectOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawRRect(o.rrect, &p)
}
func (drawRRectOp) approxSize() int { return opBaseSize + 160 }

type drawDRRectOp struct {
	outer, inner strata.RRect
	paint        strata.Paint
}

func (o drawDRRectOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawDRRect(o.outer, o.inner, &p)
}
func (drawDRRectOp) approxSize() int { return opBaseSize + 256 }

type drawOvalOp struct {
	rect  strata.Rect
	paint strata.Paint
}

func (o drawOvalOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawOval(o.rect, &p)
}
func (drawOvalOp) approxSize() int { return opBaseSize + 96 }

type drawCircleOp struct {
	center strata.Point
	radius float64
	paint  strata.Paint
}

func (o drawCircleOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawCircle(o.center, o.radius, &p)
}
func (drawCircleOp) approxSize() int { return opBaseSize + 96 }

type drawPathOp struct {
	path  *strata.Path
	paint strata.Paint
}

func (o drawPathOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawPath(o.path, &p)
}
func (o drawPathOp) approxSize() int { return opBaseSize + 64 + pathSize(o.path) }

type drawImageOp struct {
	img   image.Image
	at    strata.Point
	paint strata.Paint
}

func (o drawImageOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawImage(o.img, o.at, &p)
}
func (o drawImageOp) approxSize() int { return opBaseSize + 64 + imageSize(o.img) }

type drawImageRectOp struct {
	img      image.Image
	src, dst strata.Rect
	paint    strata.Paint
}

func (o drawImageRectOp) replay(c strata.Canvas) error {
	p := o.paint
	return c.DrawImageRect(o.img, o.src, o.dst, &p)
}
func (o drawImageRectOp) approxSize() int { return opBaseSize + 128 + imageSize(o.img) }

type drawParagraphOp struct {
	para *ruler.Paragraph
	at   strata.Point
}

func (o drawParagraphOp) replay(c strata.Canvas) error {
	return c.DrawParagraph(o.para, o.at)
}
func (o drawParagraphOp) approxSize() int { return opBaseSize + 2*len(o.para.Text()) }

type drawShadowOp struct {
	path                *strata.Path
	color               strata.Color
	elevation           float64
	transparentOccluder bool
}

func (o drawShadowOp) replay(c strata.Canvas) error {
	return c.DrawShadow(o.path, o.color, o.elevation, o.transparentOccluder)
}
func (o drawShadowOp) approxSize() int { return opBaseSize + 32 + pathSize(o.path) }

func pathSize(p *strata.Path) int {
	if p == nil {
		return 0
	}
	return 40 * len(p.Elements())
}

func imageSize(img image.Image) int {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	return b.Dx() * b.Dy() * 4
}
