package dom

import (
	"fmt"
	"io"

	strata "github.com/strata-gl/strata"
)

// Canvas implements strata.Canvas by appending structural nodes to a
// tree. Clip groups open nested containers that later draws land in;
// Restore closes every container the matching Save's clips opened.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	strata.SaveStack

	size   strata.Size
	root   *Node
	stack  []*Node
	frames []int
}

var _ strata.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas building a tree for a drawing area of the
// given logical size.
func NewCanvas(size strata.Size) *Canvas {
	root := &Node{Tag: "div", Style: []StyleProp{
		{Name: "position", Value: "relative"},
		{Name: "width", Value: px(size.Width)},
		{Name: "height", Value: px(size.Height)},
		{Name: "overflow", Value: "hidden"},
	}}
	return &Canvas{
		SaveStack: strata.NewSaveStack(),
		size:      size,
		root:      root,
		stack:     []*Node{root},
	}
}

// Size returns the logical size of the drawing area.
func (c *Canvas) Size() strata.Size { return c.size }

// Root returns the tree built so far.
func (c *Canvas) Root() *Node { return c.root }

// Render writes the tree as indented markup.
func (c *Canvas) Render(w io.Writer) error {
	return c.root.Render(w)
}

// Save pushes the transform, clip and container state.
func (c *Canvas) Save() {
	c.SaveStack.Save()
	c.frames = append(c.frames, len(c.stack))
}

// Restore pops to the matching Save, closing any clip containers it
// opened.
func (c *Canvas) Restore() error {
	if err := c.SaveStack.Restore(); err != nil {
		return err
	}
	if n := len(c.frames); n > 0 {
		c.stack = c.stack[:c.frames[n-1]]
		c.frames = c.frames[:n-1]
	}
	return nil
}

// Reset restores the initial state: no saves, no clips, identity
// transform, every container closed. The built tree stays in place.
func (c *Canvas) Reset() {
	c.SaveStack.Reset()
	c.stack = c.stack[:1]
	c.frames = c.frames[:0]
}

// ClipRect intersects the clip with a rectangle and opens an
// overflow-hidden group that subsequent draws nest inside.
func (c *Canvas) ClipRect(r strata.Rect) error {
	if err := c.SaveStack.ClipRect(r); err != nil {
		return err
	}
	c.openClip(r, "")
	return nil
}

// ClipRRect intersects the clip with a rounded rectangle.
func (c *Canvas) ClipRRect(rr strata.RRect) error {
	if err := c.SaveStack.ClipRRect(rr); err != nil {
		return err
	}
	c.openClip(rr.Outer(), borderRadius(rr))
	return nil
}

// ClipPath has no structural equivalent.
func (c *Canvas) ClipPath(path *strata.Path) error {
	return unsupported("ClipPath")
}

func (c *Canvas) openClip(r strata.Rect, radius string) {
	g := &Node{Tag: "div", Style: rectStyles(r)}
	g.AddStyle("overflow", "hidden")
	if radius != "" {
		g.AddStyle("border-radius", radius)
	}
	wrapped := c.wrapTransform(g)
	c.attach(wrapped)
	c.stack = append(c.stack, g)
}

// attach appends a node to the innermost open container.
func (c *Canvas) attach(n *Node) {
	parent := c.stack[len(c.stack)-1]
	parent.Children = append(parent.Children, n)
}

// emit places a drawn node under the current transform and container.
func (c *Canvas) emit(n *Node) {
	c.attach(c.wrapTransform(n))
}

// wrapTransform wraps a node in a transform group when the current
// transform is not identity. Pure translations use a translate style,
// everything else a full matrix3d.
func (c *Canvas) wrapTransform(n *Node) *Node {
	m := c.CurrentTransform()
	if m.IsIdentity() {
		return n
	}
	g := &Node{Tag: "div", Children: []*Node{n}}
	if m.Is2DTranslation() {
		g.AddStyle("transform", fmt.Sprintf("translate(%gpx, %gpx)", m[3], m[7]))
	} else {
		g.AddStyle("transform", matrix3D(m))
		g.AddStyle("transform-origin", "0 0")
	}
	return g
}

func unsupported(op string) error {
	return &strata.UnsupportedOpError{Backend: "dom", Op: op}
}

// checkPaint rejects paint features the structural backend cannot
// express on any primitive.
func checkPaint(op string, paint *strata.Paint) error {
	if paint == nil {
		return nil
	}
	if paint.BlendMode != strata.BlendSrcOver {
		return unsupported(op + " with blend mode " + paint.BlendMode.String())
	}
	if paint.MaskBlur > 0 {
		return unsupported(op + " with mask blur")
	}
	return nil
}
