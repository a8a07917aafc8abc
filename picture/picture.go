package picture

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/strata-gl/strata"
)

// ErrRecordingFinished is returned when drawing into a recording after
// Finish has sealed it.
var ErrRecordingFinished = errors.New("picture: recording already finished")

// nextID hands out process-unique picture identities. Identity, not
// content, is what caches key on: re-recording the same drawing yields
// a new picture with a new identity.
var nextID atomic.Uint64

// Picture is an immutable display list. It is cheap to hold, replayable
// any number of times, and safe to share between frames once finished.
type Picture struct {
	id     uint64
	cull   strata.Rect
	bounds strata.Rect
	ops    []op
	draws  int
	bytes  int
}

// ID returns the picture's process-unique identity.
func (p *Picture) ID() uint64 { return p.id }

// CullRect returns the bounds the recording was opened with.
func (p *Picture) CullRect() strata.Rect { return p.cull }

// Bounds returns the accumulated bounds of the recorded draws,
// intersected with the cull rectangle. Replaying outside these bounds
// draws nothing.
func (p *Picture) Bounds() strata.Rect { return p.bounds }

// OpCount returns the number of draw operations. State and clip
// operations are not counted; the count approximates how much work a
// replay performs.
func (p *Picture) OpCount() int { return p.draws }

// ApproxBytes estimates the retained size of the display list,
// including referenced paths and images.
func (p *Picture) ApproxBytes() int { return p.bytes }

// Playback replays the display list onto c in recording order. The
// first failing operation aborts the replay and its error is returned.
func (p *Picture) Playback(c strata.Canvas) error {
	for i, o := range p.ops {
		if err := o.replay(c); err != nil {
			return fmt.Errorf("picture %d: op %d: %w", p.id, i, err)
		}
	}
	return nil
}
