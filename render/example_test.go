// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"
	"os"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/backend/dom"
	"github.com/strata-gl/strata/picture"
	"github.com/strata-gl/strata/render"
	"github.com/strata-gl/strata/scene"
	"github.com/strata-gl/strata/surface"
)

// ExampleRasterizer renders one frame into an image surface.
func ExampleRasterizer() {
	// A 200x100 logical surface on a high-density display.
	surf := surface.NewImageSurface(strata.Size{Width: 200, Height: 100}, 2)
	defer surf.Close()

	r, err := render.NewRasterizer(surf)
	if err != nil {
		fmt.Println("rasterizer:", err)
		return
	}

	// Record the frame's content.
	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 200, 100))
	paint := strata.NewPaint()
	paint.Color = strata.RGBA(30, 144, 255, 255)
	_ = rec.Canvas().DrawRect(strata.RectXYWH(20, 20, 60, 40), paint)
	pic := rec.Finish()

	// Compose and draw.
	b := scene.NewBuilder()
	b.AddPicture(pic, strata.Point{}, false, false)
	if err := r.CompositeFrame(b, strata.Size{Width: 200, Height: 100}); err != nil {
		fmt.Println("draw:", err)
		return
	}

	front := surf.Front()
	fmt.Printf("presented %dx%d device pixels\n", front.Bounds().Dx(), front.Bounds().Dy())
	// Output: presented 400x200 device pixels
}

// ExampleRasterizer_caching draws the same complex picture on two
// consecutive frames; the second frame is served from the raster cache.
func ExampleRasterizer_caching() {
	surf := surface.NewImageSurface(strata.Size{Width: 300, Height: 200}, 1)
	defer surf.Close()

	r, err := render.NewRasterizer(surf)
	if err != nil {
		fmt.Println("rasterizer:", err)
		return
	}

	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 120, 90))
	paint := strata.NewPaint()
	paint.Color = strata.RGBA(220, 20, 60, 255)
	for i := 0; i < 6; i++ {
		_ = rec.Canvas().DrawRect(strata.RectXYWH(float64(i*20), 10, 16, 70), paint)
	}
	pic := rec.Finish()

	for frame := 0; frame < 2; frame++ {
		b := scene.NewBuilder()
		b.AddPicture(pic, strata.Pt(40, 30), true, false)
		if err := r.CompositeFrame(b, strata.Size{Width: 300, Height: 200}); err != nil {
			fmt.Println("draw:", err)
			return
		}
	}

	stats := r.Stats()
	fmt.Printf("cached rasters: %d\n", stats.Entries)
	fmt.Printf("hits: %d misses: %d\n", stats.Hits, stats.Misses)
	// Output:
	// cached rasters: 1
	// hits: 1 misses: 1
}

// ExampleDrawToDOM renders a clipped frame as structural markup.
func ExampleDrawToDOM() {
	canvas := dom.NewCanvas(strata.Size{Width: 100, Height: 50})

	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 100, 50))
	paint := strata.NewPaint()
	paint.Color = strata.RGBA(255, 0, 0, 255)
	_ = rec.Canvas().DrawRect(strata.RectXYWH(10, 10, 30, 20), paint)
	pic := rec.Finish()

	b := scene.NewBuilder()
	b.PushClipRect(strata.RectXYWH(0, 0, 60, 40))
	b.AddPicture(pic, strata.Point{}, false, false)
	tree := b.Build(strata.Size{Width: 100, Height: 50})

	if err := render.DrawToDOM(tree, canvas); err != nil {
		fmt.Println("draw:", err)
		return
	}
	_ = canvas.Render(os.Stdout)
	// Output:
	// <div style="position:relative;width:100px;height:50px;overflow:hidden;background-color:rgba(0,0,0,0)">
	//   <div style="position:absolute;left:0px;top:0px;width:60px;height:40px;overflow:hidden">
	//     <div style="position:absolute;left:10px;top:10px;width:30px;height:20px;background-color:rgb(255,0,0)"/>
	//   </div>
	// </div>
}
