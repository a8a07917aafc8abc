package dom

import (
	"strings"
	"testing"

	strata "github.com/strata-gl/strata"
)

func TestNodeRenderEmpty(t *testing.T) {
	n := &Node{Tag: "div"}
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := sb.String(), "<div/>\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNodeRenderStylesAndChildren(t *testing.T) {
	n := &Node{Tag: "div"}
	n.AddStyle("position", "absolute")
	n.AddStyle("left", "4px")
	n.Children = append(n.Children, &Node{Tag: "p", Text: "hi"})

	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<div style=\"position:absolute;left:4px\">\n  <p>hi</p>\n</div>\n"
	if got := sb.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNodeRenderEscapesText(t *testing.T) {
	n := &Node{Tag: "p", Text: "a < b & c"}
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := sb.String()
	if strings.Contains(got, "a < b") {
		t.Errorf("Render() = %q, text not escaped", got)
	}
	if !strings.Contains(got, "a &lt; b &amp; c") {
		t.Errorf("Render() = %q, want escaped text", got)
	}
}

func TestStyleValue(t *testing.T) {
	n := &Node{Tag: "div"}
	n.AddStyle("width", "10px")
	if got, want := n.StyleValue("width"), "10px"; got != want {
		t.Errorf("StyleValue(width) = %q, want %q", got, want)
	}
	if got := n.StyleValue("height"); got != "" {
		t.Errorf("StyleValue(height) = %q, want empty", got)
	}
}

func TestCSSColor(t *testing.T) {
	tests := []struct {
		name string
		col  strata.Color
		want string
	}{
		{"opaque", strata.RGBA(255, 0, 0, 255), "rgb(255,0,0)"},
		{"translucent", strata.RGBA(0, 128, 0, 51), "rgba(0,128,0,0.2)"},
		{"transparent", strata.RGBA(0, 0, 0, 0), "rgba(0,0,0,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cssColor(tt.col); got != tt.want {
				t.Errorf("cssColor(%v) = %q, want %q", tt.col, got, tt.want)
			}
		})
	}
}

func TestMatrix3DTranslation(t *testing.T) {
	m := strata.MatrixTranslate2D(10, 20)
	want := "matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,10,20,0,1)"
	if got := matrix3D(m); got != want {
		t.Errorf("matrix3D() = %q, want %q", got, want)
	}
}

func TestMatrix3DScale(t *testing.T) {
	m := strata.MatrixScale2D(2, 3)
	want := "matrix3d(2,0,0,0,0,3,0,0,0,0,1,0,0,0,0,1)"
	if got := matrix3D(m); got != want {
		t.Errorf("matrix3D() = %q, want %q", got, want)
	}
}

func TestBorderRadius(t *testing.T) {
	r := strata.RectXYWH(0, 0, 40, 40)
	tests := []struct {
		name string
		rr   strata.RRect
		want string
	}{
		{
			"uniform circular",
			strata.RRectUniform(r, 8),
			"8px",
		},
		{
			"mixed corners",
			strata.RRectCorners(r,
				strata.Radius{X: 4, Y: 4}, strata.Radius{X: 8, Y: 8},
				strata.Radius{X: 4, Y: 4}, strata.Radius{X: 8, Y: 8}),
			"4px 8px 4px 8px / 4px 8px 4px 8px",
		},
		{
			"elliptical",
			strata.RRectCorners(r,
				strata.Radius{X: 6, Y: 3}, strata.Radius{X: 6, Y: 3},
				strata.Radius{X: 6, Y: 3}, strata.Radius{X: 6, Y: 3}),
			"6px 6px 6px 6px / 3px 3px 3px 3px",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := borderRadius(tt.rr); got != tt.want {
				t.Errorf("borderRadius() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPx(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{10, "10px"},
		{10.5, "10.5px"},
		{0, "0px"},
	}
	for _, tt := range tests {
		if got := px(tt.v); got != tt.want {
			t.Errorf("px(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
