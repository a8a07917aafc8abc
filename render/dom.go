// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/backend/dom"
	"github.com/strata-gl/strata/scene"
)

// DrawToDOM renders one frame of tree as a structural element tree on
// canvas. The previous frame's elements are dropped first, so the
// canvas always holds exactly the latest frame.
//
// Structural frames run without a raster cache. A cached raster
// composites under an identity transform at fixed device coordinates,
// but element nodes position relative to their nearest clip container,
// so device-space placement has no meaning inside the tree. Replaying
// pictures as elements every frame is the cheap path here anyway.
func DrawToDOM(tree *scene.LayerTree, canvas *dom.Canvas) error {
	if tree == nil {
		return ErrNilTree
	}
	if canvas == nil {
		return ErrNilCanvas
	}
	canvas.Reset()
	if err := canvas.Clear(strata.Color{}); err != nil {
		return err
	}
	tree.Preroll(&scene.PrerollContext{})
	return tree.Paint(&scene.PaintContext{Canvas: canvas})
}
