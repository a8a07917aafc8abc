// Package picture records drawing operations into immutable, replayable
// display lists.
//
// A Recorder hands out a RecordingCanvas that implements strata.Canvas.
// Drawing into it captures typed operation structs instead of touching
// pixels; Finish seals the recording into a Picture. Pictures replay
// onto any Canvas backend with Playback and carry the metadata the
// compositor keys on: a process-unique identity, conservative paint
// bounds, an operation count and an approximate byte cost.
//
// Recording tracks the full transform and clip stack, so the bounds of
// every draw are accumulated in device space, clipped, and intersected
// with the cull rectangle given to the Recorder. Paints are copied at
// record time and paths are cloned, so mutating them afterwards does
// not alter the recording.
package picture
