package strata

import (
	"errors"
	"testing"
)

// TestSaveStackSaveRestore tests that Restore rewinds both the
// transform and clips pushed since the matching Save.
func TestSaveStackSaveRestore(t *testing.T) {
	s := NewSaveStack()
	s.Translate(10, 20)
	outer := s.CurrentTransform()

	s.Save()
	s.Scale(2, 2)
	if err := s.ClipRect(RectXYWH(0, 0, 50, 50)); err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if got := len(s.Clips()); got != 1 {
		t.Fatalf("clip count inside save = %d, want 1", got)
	}
	if got := s.SaveCount(); got != 1 {
		t.Fatalf("SaveCount = %d, want 1", got)
	}

	if err := s.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := s.CurrentTransform(); got != outer {
		t.Errorf("transform after restore = %v, want %v", got, outer)
	}
	if got := len(s.Clips()); got != 0 {
		t.Errorf("clip count after restore = %d, want 0", got)
	}
	if got := s.SaveCount(); got != 0 {
		t.Errorf("SaveCount after restore = %d, want 0", got)
	}
}

// TestSaveStackRestoreKeepsOuterClips tests that restoring only drops
// clips pushed inside the frame.
func TestSaveStackRestoreKeepsOuterClips(t *testing.T) {
	s := NewSaveStack()
	if err := s.ClipRect(RectXYWH(0, 0, 100, 100)); err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	s.Save()
	if err := s.ClipRect(RectXYWH(10, 10, 20, 20)); err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if err := s.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := len(s.Clips()); got != 1 {
		t.Fatalf("clip count = %d, want outer clip kept", got)
	}
	if got := s.Clips()[0].Rect; got != RectXYWH(0, 0, 100, 100) {
		t.Errorf("surviving clip = %v, want the outer one", got)
	}
}

// TestSaveStackUnbalancedRestore tests the base-of-stack error.
func TestSaveStackUnbalancedRestore(t *testing.T) {
	s := NewSaveStack()
	if err := s.Restore(); !errors.Is(err, ErrUnbalancedRestore) {
		t.Errorf("Restore at base = %v, want ErrUnbalancedRestore", err)
	}
	// The stack stays usable afterwards.
	s.Save()
	if err := s.Restore(); err != nil {
		t.Errorf("Restore after balanced Save = %v, want nil", err)
	}
}

// TestSaveStackClipBounds tests that clip entries capture the transform
// at push time and intersect in device space.
func TestSaveStackClipBounds(t *testing.T) {
	s := NewSaveStack()
	s.Translate(100, 0)
	if err := s.ClipRect(RectXYWH(0, 0, 50, 50)); err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	// Changing the transform afterwards must not move the pushed clip.
	s.Translate(-100, 0)
	if err := s.ClipRect(RectXYWH(120, 10, 50, 50)); err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if got, want := s.ClipBounds(), RectLTRB(120, 10, 150, 50); got != want {
		t.Errorf("ClipBounds = %v, want %v", got, want)
	}
}

// TestSaveStackClipBoundsUnclipped tests the neutral element.
func TestSaveStackClipBoundsUnclipped(t *testing.T) {
	s := NewSaveStack()
	if got := s.ClipBounds(); got != EverythingRect() {
		t.Errorf("ClipBounds without clips = %v, want everything", got)
	}
}

// TestSaveStackClipPathClones tests that mutating a path after pushing
// it does not move the clip.
func TestSaveStackClipPathClones(t *testing.T) {
	p := NewPath()
	p.AddRect(RectXYWH(0, 0, 10, 10))
	s := NewSaveStack()
	if err := s.ClipPath(p); err != nil {
		t.Fatalf("ClipPath: %v", err)
	}
	p.AddRect(RectXYWH(0, 0, 500, 500))
	if got, want := s.ClipBounds(), RectLTRB(0, 0, 10, 10); got != want {
		t.Errorf("ClipBounds after mutating source path = %v, want %v", got, want)
	}
}

// TestSaveStackTransformOps tests post-multiplication order of the
// convenience mutators.
func TestSaveStackTransformOps(t *testing.T) {
	s := NewSaveStack()
	s.Translate(10, 0)
	s.Scale(2, 2)
	// Post-multiplied: the scale applies in the translated space.
	if got := s.CurrentTransform().Apply(Pt(1, 1)); got != Pt(12, 2) {
		t.Errorf("translate then scale maps (1,1) to %v, want (12, 2)", got)
	}

	s.SetTransform(MatrixIdentity())
	s.Concat(MatrixTranslate2D(5, 5))
	if got := s.CurrentTransform(); got != MatrixTranslate2D(5, 5) {
		t.Errorf("Concat on identity = %v, want plain translation", got)
	}
}

// TestSaveStackReset tests the return to initial state.
func TestSaveStackReset(t *testing.T) {
	s := NewSaveStack()
	s.Save()
	s.Translate(3, 3)
	if err := s.ClipRect(RectXYWH(0, 0, 5, 5)); err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	s.Reset()
	if got := s.CurrentTransform(); !got.IsIdentity() {
		t.Errorf("transform after Reset = %v, want identity", got)
	}
	if got := len(s.Clips()); got != 0 {
		t.Errorf("clip count after Reset = %d, want 0", got)
	}
	if got := s.SaveCount(); got != 0 {
		t.Errorf("SaveCount after Reset = %d, want 0", got)
	}
}
