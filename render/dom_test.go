// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"strings"
	"testing"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/backend/dom"
	"github.com/strata-gl/strata/picture"
	"github.com/strata-gl/strata/scene"
)

// solidPicture records a single fill of r in the given color.
func solidPicture(t *testing.T, r strata.Rect, col strata.Color) *picture.Picture {
	t.Helper()
	rec := picture.NewRecorder(r)
	c := rec.Canvas()
	paint := strata.NewPaint()
	paint.Color = col
	if err := c.DrawRect(r, paint); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}
	return rec.Finish()
}

// TestDrawToDOMNil tests that nil arguments are refused.
func TestDrawToDOMNil(t *testing.T) {
	canvas := dom.NewCanvas(strata.Size{Width: 100, Height: 50})
	if err := DrawToDOM(nil, canvas); !errors.Is(err, ErrNilTree) {
		t.Errorf("DrawToDOM(nil tree) = %v, want ErrNilTree", err)
	}
	tree := scene.NewLayerTree(nil, strata.Size{Width: 100, Height: 50})
	if err := DrawToDOM(tree, nil); !errors.Is(err, ErrNilCanvas) {
		t.Errorf("DrawToDOM(nil canvas) = %v, want ErrNilCanvas", err)
	}
}

// TestDrawToDOMEmitsMarkup tests that a painted frame renders as
// positioned element markup.
func TestDrawToDOMEmitsMarkup(t *testing.T) {
	canvas := dom.NewCanvas(strata.Size{Width: 100, Height: 50})
	pic := solidPicture(t, strata.RectXYWH(10, 10, 30, 20), strata.Color{R: 255, A: 255})
	b := scene.NewBuilder()
	b.AddPicture(pic, strata.Point{}, false, false)
	tree := b.Build(strata.Size{Width: 100, Height: 50})

	if err := DrawToDOM(tree, canvas); err != nil {
		t.Fatalf("DrawToDOM: %v", err)
	}
	var sb strings.Builder
	if err := canvas.Render(&sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		"overflow:hidden",
		"background-color:rgb(255,0,0)",
		"left:10px",
		"width:30px",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markup missing %q:\n%s", want, out)
		}
	}
}

// TestDrawToDOMClipPathUnsupported tests that a path clip in the tree
// fails the structural frame with an unsupported operation error.
func TestDrawToDOMClipPathUnsupported(t *testing.T) {
	canvas := dom.NewCanvas(strata.Size{Width: 100, Height: 50})
	clip := strata.NewPath()
	clip.AddRect(strata.RectXYWH(0, 0, 40, 40))

	b := scene.NewBuilder()
	b.PushClipPath(clip)
	b.AddPicture(solidPicture(t, strata.RectXYWH(5, 5, 10, 10), strata.Color{R: 255, A: 255}), strata.Point{}, false, false)
	tree := b.Build(strata.Size{Width: 100, Height: 50})

	err := DrawToDOM(tree, canvas)
	var uerr *strata.UnsupportedOpError
	if !errors.As(err, &uerr) {
		t.Fatalf("DrawToDOM = %v, want an unsupported op error", err)
	}
	if uerr.Backend != "dom" {
		t.Errorf("Backend = %q, want dom", uerr.Backend)
	}
}

// TestDrawToDOMReplacesPreviousFrame tests that each frame starts from
// a clean canvas instead of stacking on the last one.
func TestDrawToDOMReplacesPreviousFrame(t *testing.T) {
	size := strata.Size{Width: 100, Height: 50}
	canvas := dom.NewCanvas(size)
	drawOne := func(col strata.Color) string {
		t.Helper()
		pic := solidPicture(t, strata.RectXYWH(0, 0, 20, 20), col)
		b := scene.NewBuilder()
		b.AddPicture(pic, strata.Point{}, false, false)
		if err := DrawToDOM(b.Build(size), canvas); err != nil {
			t.Fatalf("DrawToDOM: %v", err)
		}
		var sb strings.Builder
		if err := canvas.Render(&sb); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return sb.String()
	}

	drawOne(strata.Color{R: 255, A: 255})
	out := drawOne(strata.Color{B: 255, A: 255})
	if strings.Contains(out, "rgb(255,0,0)") {
		t.Error("previous frame's content survived the redraw")
	}
	if !strings.Contains(out, "rgb(0,0,255)") {
		t.Errorf("new frame's content missing:\n%s", out)
	}
}
