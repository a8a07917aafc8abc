package scene

import (
	"log/slog"

	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/internal/logging"
	"github.com/strata-gl/strata/picture"
)

// PictureLayer is the leaf carrying recorded drawing commands. During
// preroll it registers itself as a raster-cache candidate under the
// transform accumulated at its position; during paint it draws either
// the cached raster or, on a miss, the vector replay, and uses the
// replayed frame to populate the cache for the next one.
type PictureLayer struct {
	pic        *picture.Picture
	offset     strata.Point
	isComplex  bool
	willChange bool
	bounds     strata.Rect
}

var _ Layer = (*PictureLayer)(nil)

// NewPictureLayer creates a leaf drawing pic at offset. isComplex
// hints that the picture is expensive to replay; willChange hints that
// its content is animating. Either hint makes the picture a caching
// candidate immediately, without waiting for it to repeat.
func NewPictureLayer(pic *picture.Picture, offset strata.Point, isComplex, willChange bool) *PictureLayer {
	return &PictureLayer{pic: pic, offset: offset, isComplex: isComplex, willChange: willChange}
}

// Picture returns the recorded content.
func (l *PictureLayer) Picture() *picture.Picture { return l.pic }

// Offset returns the position the picture paints at.
func (l *PictureLayer) Offset() strata.Point { return l.offset }

// PaintBounds returns the rectangle the layer may draw into, in its
// parent's coordinate space.
func (l *PictureLayer) PaintBounds() strata.Rect {
	return l.bounds
}

// NeedsPainting reports whether the layer has anything to draw.
func (l *PictureLayer) NeedsPainting() bool {
	return !l.bounds.IsEmpty()
}

func (l *PictureLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	if l.pic == nil {
		l.bounds = strata.Rect{}
		return
	}
	l.bounds = l.pic.Bounds().Offset(l.offset.X, l.offset.Y)
	if ctx.Cache != nil {
		// The key transform must match what the canvas will report at
		// paint time, offset translation included.
		key := m.PreTranslate(l.offset.X, l.offset.Y)
		ctx.Cache.Prepare(l.pic, key, l.isComplex, l.willChange)
	}
}

func (l *PictureLayer) paint(ctx *PaintContext) error {
	c := ctx.Canvas
	translated := l.offset != (strata.Point{})
	if translated {
		c.Save()
		c.Translate(l.offset.X, l.offset.Y)
	}
	err := l.paintPicture(ctx)
	if translated {
		if rerr := c.Restore(); err == nil {
			err = rerr
		}
	}
	return err
}

func (l *PictureLayer) paintPicture(ctx *PaintContext) error {
	m := ctx.Canvas.CurrentTransform()
	if ctx.Cache != nil {
		if raster, ok := ctx.Cache.Get(l.pic.ID(), m); ok {
			return raster.Draw(ctx.Canvas)
		}
	}

	if err := l.pic.Playback(ctx.Canvas); err != nil {
		return err
	}

	if ctx.Cache != nil && ctx.Rasterize != nil && ctx.Cache.ShouldPopulate(l.pic, m) {
		raster, err := ctx.Rasterize(l.pic, m)
		if err != nil {
			// The frame already painted by replay; a failed cache fill
			// costs a future speedup, not correctness.
			logging.Get().Warn("picture rasterization failed",
				slog.Uint64("picture", l.pic.ID()),
				slog.Any("error", err))
			return nil
		}
		ctx.Cache.Populate(l.pic, m, raster)
	}
	return nil
}
