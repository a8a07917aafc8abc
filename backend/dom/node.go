package dom

import (
	"fmt"
	"html"
	"io"
	"strings"

	strata "github.com/strata-gl/strata"
)

// StyleProp is one style declaration on a node. Props keep insertion
// order so serialized output is stable.
type StyleProp struct {
	Name  string
	Value string
}

// Node is one element of the structural tree.
type Node struct {
	Tag      string
	Text     string
	Style    []StyleProp
	Children []*Node
}

// AddStyle appends a style declaration.
func (n *Node) AddStyle(name, value string) {
	n.Style = append(n.Style, StyleProp{Name: name, Value: value})
}

// StyleValue returns the value of the named style, or "" when unset.
func (n *Node) StyleValue(name string) string {
	for _, p := range n.Style {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Render writes the subtree as indented HTML-ish markup.
func (n *Node) Render(w io.Writer) error {
	var sb strings.Builder
	n.write(&sb, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func (n *Node) write(sb *strings.Builder, depth int) {
	pad := strings.Repeat("  ", depth)
	sb.WriteString(pad)
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	if len(n.Style) > 0 {
		sb.WriteString(` style="`)
		for i, p := range n.Style {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(p.Name)
			sb.WriteByte(':')
			sb.WriteString(p.Value)
		}
		sb.WriteByte('"')
	}
	if n.Text == "" && len(n.Children) == 0 {
		sb.WriteString("/>\n")
		return
	}
	sb.WriteString(">")
	if n.Text != "" {
		sb.WriteString(html.EscapeString(n.Text))
	}
	if len(n.Children) > 0 {
		sb.WriteByte('\n')
		for _, child := range n.Children {
			child.write(sb, depth+1)
		}
		sb.WriteString(pad)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">\n")
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}

// cssColor formats a color as a CSS color value.
func cssColor(c strata.Color) string {
	if c.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

// matrix3D formats a transform in CSS column-major order.
func matrix3D(m strata.Matrix) string {
	var sb strings.Builder
	sb.WriteString("matrix3d(")
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if col != 0 || row != 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%g", m[row*4+col])
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// rectStyles returns absolute placement styles for a local-space rect.
func rectStyles(r strata.Rect) []StyleProp {
	return []StyleProp{
		{Name: "position", Value: "absolute"},
		{Name: "left", Value: px(r.MinX)},
		{Name: "top", Value: px(r.MinY)},
		{Name: "width", Value: px(r.Width())},
		{Name: "height", Value: px(r.Height())},
	}
}

// borderRadius formats a rounded rect's corner radii. Uniform circular
// corners collapse to a single value.
func borderRadius(rr strata.RRect) string {
	n := rr.Normalized()
	tl, tr, br, bl := n.TL, n.TR, n.BR, n.BL
	uniform := tl == tr && tr == br && br == bl && tl.X == tl.Y
	if uniform {
		return px(tl.X)
	}
	return fmt.Sprintf("%s %s %s %s / %s %s %s %s",
		px(tl.X), px(tr.X), px(br.X), px(bl.X),
		px(tl.Y), px(tr.Y), px(br.Y), px(bl.Y))
}
