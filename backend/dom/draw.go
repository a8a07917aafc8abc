package dom

import (
	"fmt"
	"image"
	"math"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/ruler"
)

func atan2Deg(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// Clear replaces the whole tree with a surface-filling background.
func (c *Canvas) Clear(col strata.Color) error {
	c.root.Children = nil
	c.stack = c.stack[:1]
	c.frames = c.frames[:0]
	c.setRootBackground(col)
	return nil
}

func (c *Canvas) setRootBackground(col strata.Color) {
	for i, p := range c.root.Style {
		if p.Name == "background-color" {
			c.root.Style[i].Value = cssColor(col)
			return
		}
	}
	c.root.AddStyle("background-color", cssColor(col))
}

// DrawColor fills the current clip with a color block.
func (c *Canvas) DrawColor(col strata.Color, mode strata.BlendMode) error {
	if mode != strata.BlendSrcOver && mode != strata.BlendSrc {
		return unsupported("DrawColor with blend mode " + mode.String())
	}
	n := &Node{Tag: "div", Style: rectStyles(strata.RectXYWH(0, 0, c.size.Width, c.size.Height))}
	n.AddStyle("background-color", cssColor(col))
	c.attach(n)
	return nil
}

// DrawLine draws a rotated block along the segment. Only the default
// butt cap has a structural equivalent.
func (c *Canvas) DrawLine(p1, p2 strata.Point, paint *strata.Paint) error {
	if err := checkPaint("DrawLine", paint); err != nil {
		return err
	}
	if paint != nil && paint.LineCap != strata.LineCapButt {
		return unsupported("DrawLine with cap " + paint.LineCap.String())
	}
	paint = paint.Clone()
	width := paint.LineWidth
	if width <= 0 {
		width = 1
	}
	d := p2.Sub(p1)
	length := d.Length()
	if length == 0 {
		return nil
	}
	n := &Node{Tag: "div", Style: rectStyles(strata.RectXYWH(p1.X, p1.Y-width/2, length, width))}
	n.AddStyle("background-color", cssColor(paint.Color))
	angle := atan2Deg(d.Y, d.X)
	if angle != 0 {
		n.AddStyle("transform", fmt.Sprintf("rotate(%gdeg)", angle))
		n.AddStyle("transform-origin", "0 50%")
	}
	c.emit(n)
	return nil
}

// DrawRect draws a styled block.
func (c *Canvas) DrawRect(r strata.Rect, paint *strata.Paint) error {
	if err := checkPaint("DrawRect", paint); err != nil {
		return err
	}
	c.emit(shapeNode(r, paint, ""))
	return nil
}

// DrawRRect draws a styled block with border radii.
func (c *Canvas) DrawRRect(rr strata.RRect, paint *strata.Paint) error {
	if err := checkPaint("DrawRRect", paint); err != nil {
		return err
	}
	c.emit(shapeNode(rr.Outer(), paint, borderRadius(rr)))
	return nil
}

// DrawDRRect has no structural equivalent; the donut's hole would need
// a composited mask.
func (c *Canvas) DrawDRRect(outer, inner strata.RRect, paint *strata.Paint) error {
	return unsupported("DrawDRRect")
}

// DrawOval draws a fully rounded block. Only fills are supported; a
// stroked ellipse ring has no single-block equivalent.
func (c *Canvas) DrawOval(r strata.Rect, paint *strata.Paint) error {
	if err := checkPaint("DrawOval", paint); err != nil {
		return err
	}
	if paint != nil && paint.Style == strata.PaintStroke {
		return unsupported("DrawOval with stroke paint")
	}
	c.emit(shapeNode(r, paint, "50%"))
	return nil
}

// DrawCircle draws a circle.
func (c *Canvas) DrawCircle(center strata.Point, radius float64, paint *strata.Paint) error {
	return c.DrawOval(strata.RectLTRB(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius), paint)
}

// DrawPath has no structural equivalent.
func (c *Canvas) DrawPath(path *strata.Path, paint *strata.Paint) error {
	return unsupported("DrawPath")
}

// shapeNode builds a block node for a filled or stroked shape. Strokes
// center on the shape edge, so the node inflates by half the line
// width and carries the stroke as a border.
func shapeNode(r strata.Rect, paint *strata.Paint, radius string) *Node {
	paint = paint.Clone()
	if paint.Style == strata.PaintStroke {
		half := paint.LineWidth / 2
		n := &Node{Tag: "div", Style: rectStyles(r.Inflate(half))}
		n.AddStyle("border", fmt.Sprintf("%s solid %s", px(paint.LineWidth), cssColor(paint.Color)))
		if radius != "" {
			n.AddStyle("border-radius", radius)
		}
		return n
	}
	n := &Node{Tag: "div", Style: rectStyles(r)}
	n.AddStyle("background-color", cssColor(paint.Color))
	if radius != "" {
		n.AddStyle("border-radius", radius)
	}
	return n
}

// DrawImage places an image node at the given point.
func (c *Canvas) DrawImage(img image.Image, at strata.Point, paint *strata.Paint) error {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	return c.DrawImageRect(img,
		strata.RectXYWH(0, 0, float64(b.Dx()), float64(b.Dy())),
		strata.RectXYWH(at.X, at.Y, float64(b.Dx()), float64(b.Dy())),
		paint)
}

// DrawImageRect places an image node with src mapped onto dst.
func (c *Canvas) DrawImageRect(img image.Image, src, dst strata.Rect, paint *strata.Paint) error {
	if img == nil {
		return nil
	}
	if err := checkPaint("DrawImageRect", paint); err != nil {
		return err
	}
	if src.IsEmpty() || dst.IsEmpty() {
		return nil
	}
	b := img.Bounds()
	n := imageNode(src, dst, float64(b.Dx()), float64(b.Dy()))
	if paint != nil && paint.Color.A != 0xff {
		n.AddStyle("opacity", fmt.Sprintf("%.3g", float64(paint.Color.A)/255))
	}
	c.emit(n)
	return nil
}

// imageNode maps the src rect of a w by h image onto dst. A cropped
// source nests a scaled image inside an overflow-hidden block so the
// visible region is exactly src.
func imageNode(src, dst strata.Rect, w, h float64) *Node {
	if src.MinX == 0 && src.MinY == 0 && src.Width() == w && src.Height() == h {
		return &Node{Tag: "img", Style: rectStyles(dst)}
	}
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	inner := &Node{Tag: "img", Style: []StyleProp{
		{Name: "position", Value: "absolute"},
		{Name: "left", Value: px(-src.MinX * sx)},
		{Name: "top", Value: px(-src.MinY * sy)},
		{Name: "width", Value: px(w * sx)},
		{Name: "height", Value: px(h * sy)},
	}}
	outer := &Node{Tag: "div", Style: rectStyles(dst), Children: []*Node{inner}}
	outer.AddStyle("overflow", "hidden")
	return outer
}

// DrawParagraph places a text node styled with the paragraph's font.
func (c *Canvas) DrawParagraph(para *ruler.Paragraph, at strata.Point) error {
	if para == nil {
		return nil
	}
	if !para.LaidOut() {
		return ruler.ErrNotLaidOut
	}
	style := para.Style()
	src, err := para.Source()
	if err != nil {
		return err
	}
	n := &Node{Tag: "p", Text: para.Text(), Style: []StyleProp{
		{Name: "position", Value: "absolute"},
		{Name: "left", Value: px(at.X)},
		{Name: "top", Value: px(at.Y)},
		{Name: "width", Value: px(para.Width())},
	}}
	n.AddStyle("font-family", src.Family())
	n.AddStyle("font-size", px(style.FontSize))
	col := para.Color()
	n.AddStyle("color", cssColor(strata.RGBA(col.R, col.G, col.B, col.A)))
	c.emit(n)
	return nil
}

// DrawShadow draws the occluder's shadow as a box-shadow block. A
// shadow that must show through a transparent occluder needs explicit
// blur compositing, which the structural backend cannot do.
func (c *Canvas) DrawShadow(path *strata.Path, col strata.Color, elevation float64, transparentOccluder bool) error {
	if transparentOccluder {
		return unsupported("DrawShadow with transparent occluder")
	}
	if path == nil || path.IsEmpty() || elevation <= 0 {
		return nil
	}
	shape := path.Bounds()
	if shape.IsEmpty() {
		return nil
	}
	off := strata.ShadowOffset(elevation)
	blur := strata.ShadowBlurRadius(shape, elevation)
	n := &Node{Tag: "div", Style: rectStyles(shape)}
	n.AddStyle("box-shadow", fmt.Sprintf("%s %s %s %s", px(off.X), px(off.Y), px(blur), cssColor(col)))
	c.emit(n)
	return nil
}
