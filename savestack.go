package strata

// ClipKind identifies the shape of a clip entry.
type ClipKind uint8

const (
	// ClipKindRect clips to an axis-aligned rectangle.
	ClipKindRect ClipKind = iota
	// ClipKindRRect clips to a rounded rectangle.
	ClipKindRRect
	// ClipKindPath clips to an arbitrary path.
	ClipKindPath
)

// ClipEntry is one clip pushed onto the stack. The transform in effect
// when the clip was pushed is captured with it, so the entry can be
// resolved to device space later regardless of how the transform has
// changed since.
type ClipEntry struct {
	Kind      ClipKind
	Rect      Rect
	RRect     RRect
	Path      *Path
	Transform Matrix
}

// LocalBounds returns the clip shape's bounds in the coordinates it was
// pushed in.
func (e ClipEntry) LocalBounds() Rect {
	switch e.Kind {
	case ClipKindRect:
		return e.Rect
	case ClipKindRRect:
		return e.RRect.Outer()
	default:
		return e.Path.Bounds()
	}
}

// DeviceBounds returns a conservative device-space bound of the clip
// shape.
func (e ClipEntry) DeviceBounds() Rect {
	return e.Transform.MapRect(e.LocalBounds())
}

type saveFrame struct {
	transform Matrix
	clipDepth int
}

// SaveStack tracks the transform, clip stack and save frames shared by
// every canvas backend. Backends embed it and override the clip and
// restore methods when they keep derived state (the bitmap backend's
// coverage mask) that must follow the stack.
type SaveStack struct {
	transform Matrix
	clips     []ClipEntry
	frames    []saveFrame
}

// NewSaveStack returns a stack with an identity transform and no clips.
func NewSaveStack() SaveStack {
	return SaveStack{transform: MatrixIdentity()}
}

// Save pushes the current transform and clip depth.
func (s *SaveStack) Save() {
	s.frames = append(s.frames, saveFrame{transform: s.transform, clipDepth: len(s.clips)})
}

// Restore pops the most recent Save, restoring the transform and
// truncating clips pushed since. Returns ErrUnbalancedRestore when the
// stack is already at its base.
func (s *SaveStack) Restore() error {
	if len(s.frames) == 0 {
		return ErrUnbalancedRestore
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.transform = f.transform
	s.clips = s.clips[:f.clipDepth]
	return nil
}

// SaveCount returns the number of unmatched Save calls.
func (s *SaveStack) SaveCount() int {
	return len(s.frames)
}

// Translate post-multiplies the current transform by a translation.
func (s *SaveStack) Translate(dx, dy float64) {
	s.transform = s.transform.Mul(MatrixTranslate2D(dx, dy))
}

// Scale post-multiplies the current transform by a scale.
func (s *SaveStack) Scale(sx, sy float64) {
	s.transform = s.transform.Mul(MatrixScale2D(sx, sy))
}

// Rotate post-multiplies the current transform by a rotation in radians.
func (s *SaveStack) Rotate(radians float64) {
	s.transform = s.transform.Mul(MatrixRotate2D(radians))
}

// Concat post-multiplies the current transform by m.
func (s *SaveStack) Concat(m Matrix) {
	s.transform = s.transform.Mul(m)
}

// SetTransform replaces the current transform.
func (s *SaveStack) SetTransform(m Matrix) {
	s.transform = m
}

// CurrentTransform returns the accumulated transform.
func (s *SaveStack) CurrentTransform() Matrix {
	return s.transform
}

// ClipRect intersects the clip with a rectangle in local coordinates.
func (s *SaveStack) ClipRect(r Rect) error {
	s.clips = append(s.clips, ClipEntry{Kind: ClipKindRect, Rect: r, Transform: s.transform})
	return nil
}

// ClipRRect intersects the clip with a rounded rectangle in local
// coordinates.
func (s *SaveStack) ClipRRect(rr RRect) error {
	s.clips = append(s.clips, ClipEntry{Kind: ClipKindRRect, RRect: rr, Transform: s.transform})
	return nil
}

// ClipPath intersects the clip with a path in local coordinates. The
// path is cloned; later mutation of the argument does not affect the
// clip.
func (s *SaveStack) ClipPath(path *Path) error {
	s.clips = append(s.clips, ClipEntry{Kind: ClipKindPath, Path: path.Clone(), Transform: s.transform})
	return nil
}

// Clips returns the active clip entries, innermost last. The slice is
// shared; callers must not mutate it.
func (s *SaveStack) Clips() []ClipEntry {
	return s.clips
}

// ClipBounds returns a conservative device-space bound of the current
// clip: the intersection of the device hulls of every active entry, or
// EverythingRect when unclipped.
func (s *SaveStack) ClipBounds() Rect {
	bounds := EverythingRect()
	for _, e := range s.clips {
		bounds = bounds.Intersect(e.DeviceBounds())
	}
	return bounds
}

// Reset returns the stack to its initial state.
func (s *SaveStack) Reset() {
	s.transform = MatrixIdentity()
	s.clips = s.clips[:0]
	s.frames = s.frames[:0]
}
