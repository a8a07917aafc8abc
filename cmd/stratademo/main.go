// Command stratademo composes a layered frame with the strata
// compositor, rasterizes it a few times so the raster cache warms up,
// and writes the presented frame as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"os"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/backend/dom"
	"github.com/strata-gl/strata/picture"
	"github.com/strata-gl/strata/render"
	"github.com/strata-gl/strata/scene"
	"github.com/strata-gl/strata/surface"
)

func main() {
	var (
		width  = flag.Int("width", 800, "logical width")
		height = flag.Int("height", 600, "logical height")
		ratio  = flag.Float64("ratio", 1, "device pixel ratio")
		frames = flag.Int("frames", 3, "frames to draw before saving")
		output = flag.String("output", "demo.png", "output file")
		markup = flag.String("dom", "", "also write the frame as structural markup to this file")
	)
	flag.Parse()

	size := strata.Size{Width: float64(*width), Height: float64(*height)}
	surf, err := surface.New(surface.Options{Size: size, DevicePixelRatio: *ratio})
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	defer surf.Close()

	r, err := render.NewRasterizer(surf)
	if err != nil {
		log.Fatalf("Failed to create rasterizer: %v", err)
	}

	background := recordBackground(size)
	badge := recordBadge()
	star := recordStar()

	for i := 0; i < *frames; i++ {
		tree := composeFrame(background, badge, star, size, false)
		if err := r.Draw(tree); err != nil {
			log.Fatalf("Frame %d failed: %v", i+1, err)
		}
	}
	stats := r.Stats()
	log.Printf("Drew %d frames: %d cached rasters, %d hits, %d misses",
		*frames, stats.Entries, stats.Hits, stats.Misses)

	img, ok := surf.(*surface.ImageSurface)
	if !ok {
		log.Fatalf("Backend %T has no frame readback", surf)
	}
	if err := savePNG(*output, img.Front()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d device pixels)",
		*output, img.Front().Bounds().Dx(), img.Front().Bounds().Dy())

	if *markup != "" {
		if err := writeMarkup(*markup, background, badge, star, size); err != nil {
			log.Fatalf("Failed to write markup: %v", err)
		}
		log.Printf("Markup saved to %s", *markup)
	}
}

// composeFrame assembles the frame's layer tree. The badge is hinted
// complex so the raster cache serves it from the second frame on. The
// structural variant leaves out the star: arbitrary path fills have no
// element equivalent.
func composeFrame(background, badge, star *picture.Picture, size strata.Size, structural bool) *scene.LayerTree {
	b := scene.NewBuilder()
	b.AddPicture(background, strata.Point{}, false, false)

	// Badge clipped to a rounded card.
	b.PushClipRRect(strata.RRectUniform(strata.RectXYWH(40, 40, 300, 260), 24))
	b.AddPicture(badge, strata.Pt(60, 60), true, false)
	b.Pop()

	// The same badge again, translucent, on the right.
	b.PushOpacity(160, strata.Pt(size.Width-320, 60))
	b.AddPicture(badge, strata.Point{}, true, false)
	b.Pop()

	if !structural {
		b.PushTransform(strata.MatrixTranslate2D(size.Width/2, size.Height-160).
			Mul(strata.MatrixRotate2D(math.Pi / 12)))
		b.AddPicture(star, strata.Point{}, false, false)
		b.Pop()
	}
	return b.Build(size)
}

// recordBackground paints horizontal gradient bands across the frame.
func recordBackground(size strata.Size) *picture.Picture {
	rec := picture.NewRecorder(strata.RectXYWH(0, 0, size.Width, size.Height))
	c := rec.Canvas()
	paint := strata.NewPaint()
	steps := 64
	bandH := size.Height / float64(steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		paint.Color = strata.RGB(uint8(25+t*80), uint8(50+t*60), uint8(100+t*50))
		_ = c.DrawRect(strata.RectXYWH(0, float64(i)*bandH, size.Width, bandH+1), paint)
	}
	return rec.Finish()
}

// recordBadge draws the overlapping-circle badge reused on every frame.
func recordBadge() *picture.Picture {
	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 260, 220))
	c := rec.Canvas()
	paint := strata.NewPaint()
	paint.Color = strata.RGBA(255, 80, 80, 210)
	_ = c.DrawCircle(strata.Pt(100, 90), 60, paint)
	paint.Color = strata.RGBA(80, 255, 80, 210)
	_ = c.DrawCircle(strata.Pt(150, 90), 60, paint)
	paint.Color = strata.RGBA(80, 80, 255, 210)
	_ = c.DrawCircle(strata.Pt(125, 135), 60, paint)
	paint.Color = strata.White
	paint.Style = strata.PaintStroke
	paint.LineWidth = 3
	_ = c.DrawRRect(strata.RRectUniform(strata.RectXYWH(20, 10, 220, 190), 18), paint)
	return rec.Finish()
}

// recordStar fills a five-point star through the path pipeline.
func recordStar() *picture.Picture {
	rec := picture.NewRecorder(strata.RectXYWH(-70, -70, 140, 140))
	c := rec.Canvas()
	p := strata.NewPath()
	for i := 0; i < 10; i++ {
		angle := float64(i) * math.Pi / 5
		radius := 60.0
		if i%2 == 1 {
			radius = 28.0
		}
		x := radius * math.Cos(angle-math.Pi/2)
		y := radius * math.Sin(angle-math.Pi/2)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.ClosePath()
	paint := strata.NewPaint()
	paint.Color = strata.RGB(255, 214, 64)
	_ = c.DrawPath(p, paint)
	return rec.Finish()
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMarkup(path string, background, badge, star *picture.Picture, size strata.Size) error {
	canvas := dom.NewCanvas(size)
	tree := composeFrame(background, badge, star, size, true)
	if err := render.DrawToDOM(tree, canvas); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
