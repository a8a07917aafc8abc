package picture

import (
	"image"

	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/ruler"
)

// Recorder opens a recording bounded by a cull rectangle and seals it
// into a Picture. A Recorder records exactly one picture; after Finish
// the canvas rejects further drawing and repeated Finish calls return
// the same picture.
type Recorder struct {
	canvas *RecordingCanvas
	pic    *Picture
}

// NewRecorder starts a recording. Draws outside cull are retained in
// the display list but never count toward the picture bounds.
func NewRecorder(cull strata.Rect) *Recorder {
	return &Recorder{canvas: &RecordingCanvas{
		stack: strata.NewSaveStack(),
		cull:  cull,
		ops:   make([]op, 0, 64),
	}}
}

// Canvas returns the canvas to draw the recording into.
func (r *Recorder) Canvas() *RecordingCanvas { return r.canvas }

// Finish seals the recording and returns the immutable picture.
func (r *Recorder) Finish() *Picture {
	if r.pic != nil {
		return r.pic
	}
	rc := r.canvas
	rc.finished = true
	r.pic = &Picture{
		id:     nextID.Add(1),
		cull:   rc.cull,
		bounds: rc.bounds.Intersect(rc.cull),
		ops:    rc.ops,
		draws:  rc.draws,
		bytes:  rc.bytes,
	}
	return r.pic
}

// RecordingCanvas captures canvas calls as operations. It maintains a
// real transform and clip stack so recorded state queries behave like a
// live canvas and so draw bounds accumulate in device space under the
// clip that was active at record time.
type RecordingCanvas struct {
	stack    strata.SaveStack
	cull     strata.Rect
	ops      []op
	bounds   strata.Rect
	draws    int
	bytes    int
	finished bool
}

var _ strata.Canvas = (*RecordingCanvas)(nil)

// Size returns the size of the cull rectangle.
func (rc *RecordingCanvas) Size() strata.Size { return rc.cull.Size() }

func (rc *RecordingCanvas) Save() {
	if rc.finished {
		return
	}
	rc.stack.Save()
	rc.record(saveOp{})
}

func (rc *RecordingCanvas) Restore() error {
	if rc.finished {
		return ErrRecordingFinished
	}
	if err := rc.stack.Restore(); err != nil {
		return err
	}
	rc.record(restoreOp{})
	return nil
}

func (rc *RecordingCanvas) SaveCount() int { return rc.stack.SaveCount() }

func (rc *RecordingCanvas) Translate(dx, dy float64) {
	if rc.finished {
		return
	}
	rc.stack.Translate(dx, dy)
	rc.record(translateOp{dx: dx, dy: dy})
}

func (rc *RecordingCanvas) Scale(sx, sy float64) {
	if rc.finished {
		return
	}
	rc.stack.Scale(sx, sy)
	rc.record(scaleOp{sx: sx, sy: sy})
}

func (rc *RecordingCanvas) Rotate(radians float64) {
	if rc.finished {
		return
	}
	rc.stack.Rotate(radians)
	rc.record(rotateOp{radians: radians})
}

func (rc *RecordingCanvas) Concat(m strata.Matrix) {
	if rc.finished {
		return
	}
	rc.stack.Concat(m)
	rc.record(concatOp{m: m})
}

func (rc *RecordingCanvas) SetTransform(m strata.Matrix) {
	if rc.finished {
		return
	}
	rc.stack.SetTransform(m)
	rc.record(setTransformOp{m: m})
}

func (rc *RecordingCanvas) CurrentTransform() strata.Matrix {
	return rc.stack.CurrentTransform()
}

func (rc *RecordingCanvas) ClipRect(r strata.Rect) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	if err := rc.stack.ClipRect(r); err != nil {
		return err
	}
	rc.record(clipRectOp{rect: r})
	return nil
}

func (rc *RecordingCanvas) ClipRRect(rr strata.RRect) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	if err := rc.stack.ClipRRect(rr); err != nil {
		return err
	}
	rc.record(clipRRectOp{rrect: rr})
	return nil
}

func (rc *RecordingCanvas) ClipPath(path *strata.Path) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	clone := path.Clone()
	if err := rc.stack.ClipPath(clone); err != nil {
		return err
	}
	rc.record(clipPathOp{path: clone})
	return nil
}

func (rc *RecordingCanvas) ClipBounds() strata.Rect { return rc.stack.ClipBounds() }

func (rc *RecordingCanvas) Clear(c strata.Color) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	rc.recordDraw(clearOp{color: c})
	// Clear ignores transform and clip and covers the whole surface.
	rc.bounds = rc.bounds.Union(rc.cull)
	return nil
}

func (rc *RecordingCanvas) DrawColor(c strata.Color, mode strata.BlendMode) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	rc.recordDraw(drawColorOp{color: c, mode: mode})
	rc.bounds = rc.bounds.Union(rc.stack.ClipBounds().Intersect(rc.cull))
	return nil
}

func (rc *RecordingCanvas) DrawLine(p1, p2 strata.Point, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawLineOp{p1: p1, p2: p2, paint: p})
	local := strata.RectLTRB(
		min(p1.X, p2.X), min(p1.Y, p2.Y),
		max(p1.X, p2.X), max(p1.Y, p2.Y),
	)
	// A line has no interior; the stroke width always applies.
	local = local.Inflate(p.LineWidth / 2)
	if p.MaskBlur > 0 {
		local = local.Inflate(3 * p.MaskBlur)
	}
	rc.addBounds(local)
	return nil
}

func (rc *RecordingCanvas) DrawRect(r strata.Rect, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawRectOp{rect: r, paint: p})
	rc.addBounds(paintBounds(r, &p))
	return nil
}

func (rc *RecordingCanvas) DrawRRect(rr strata.RRect, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawRRectOp{rrect: rr, paint: p})
	rc.addBounds(paintBounds(rr.Rect, &p))
	return nil
}

func (rc *RecordingCanvas) DrawDRRect(outer, inner strata.RRect, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawDRRectOp{outer: outer, inner: inner, paint: p})
	rc.addBounds(paintBounds(outer.Rect, &p))
	return nil
}

func (rc *RecordingCanvas) DrawOval(r strata.Rect, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawOvalOp{rect: r, paint: p})
	rc.addBounds(paintBounds(r, &p))
	return nil
}

func (rc *RecordingCanvas) DrawCircle(center strata.Point, radius float64, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawCircleOp{center: center, radius: radius, paint: p})
	local := strata.RectXYWH(center.X-radius, center.Y-radius, 2*radius, 2*radius)
	rc.addBounds(paintBounds(local, &p))
	return nil
}

func (rc *RecordingCanvas) DrawPath(path *strata.Path, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	clone := path.Clone()
	rc.recordDraw(drawPathOp{path: clone, paint: p})
	rc.addBounds(paintBounds(clone.Bounds(), &p))
	return nil
}

func (rc *RecordingCanvas) DrawImage(img image.Image, at strata.Point, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawImageOp{img: img, at: at, paint: p})
	b := img.Bounds()
	local := strata.RectXYWH(at.X, at.Y, float64(b.Dx()), float64(b.Dy()))
	rc.addBounds(local)
	return nil
}

func (rc *RecordingCanvas) DrawImageRect(img image.Image, src, dst strata.Rect, paint *strata.Paint) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	p := *paint.Clone()
	rc.recordDraw(drawImageRectOp{img: img, src: src, dst: dst, paint: p})
	rc.addBounds(dst)
	return nil
}

func (rc *RecordingCanvas) DrawParagraph(para *ruler.Paragraph, at strata.Point) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	if !para.LaidOut() {
		return ruler.ErrNotLaidOut
	}
	rc.recordDraw(drawParagraphOp{para: para, at: at})
	local := strata.RectXYWH(at.X, at.Y, para.Width(), para.Height())
	rc.addBounds(local)
	return nil
}

func (rc *RecordingCanvas) DrawShadow(path *strata.Path, c strata.Color, elevation float64, transparentOccluder bool) error {
	if rc.finished {
		return ErrRecordingFinished
	}
	clone := path.Clone()
	rc.recordDraw(drawShadowOp{
		path:                clone,
		color:               c,
		elevation:           elevation,
		transparentOccluder: transparentOccluder,
	})
	rc.addBounds(strata.ShadowBounds(clone.Bounds(), elevation))
	return nil
}

// record appends a state operation.
func (rc *RecordingCanvas) record(o op) {
	rc.ops = append(rc.ops, o)
	rc.bytes += o.approxSize()
}

// recordDraw appends an operation that paints.
func (rc *RecordingCanvas) recordDraw(o op) {
	rc.record(o)
	rc.draws++
}

// addBounds folds the local-space bounds of a draw into the picture
// bounds, through the current transform and under the current clip.
func (rc *RecordingCanvas) addBounds(local strata.Rect) {
	device := rc.stack.CurrentTransform().MapRect(local)
	device = device.Intersect(rc.stack.ClipBounds()).Intersect(rc.cull)
	rc.bounds = rc.bounds.Union(device)
}

// paintBounds widens a shape's bounds for stroke width and mask blur.
func paintBounds(local strata.Rect, p *strata.Paint) strata.Rect {
	r := local
	if w := strokeHalfWidth(p); w > 0 {
		r = r.Inflate(w)
	}
	if p.MaskBlur > 0 {
		r = r.Inflate(3 * p.MaskBlur)
	}
	return r
}

func strokeHalfWidth(p *strata.Paint) float64 {
	if p.Style != strata.PaintStroke {
		return 0
	}
	return p.LineWidth / 2
}
