// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/gputypes"

	strata "github.com/strata-gl/strata"
)

// ImageSurface is a CPU presentation target. Presented frames are
// copied into a retained front buffer the host can read back at any
// time, so the rasterizer is free to keep drawing into its own buffer.
//
// Example:
//
//	s := surface.NewImageSurface(strata.Size{Width: 800, Height: 600}, 2)
//	defer s.Close()
//
//	// ... render and present a frame ...
//
//	img := s.Front() // 1600x1200 pixels at ratio 2
type ImageSurface struct {
	size   strata.Size
	dpr    float64
	front  *image.RGBA
	closed bool
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates an image surface with the given logical size
// and device pixel ratio. A ratio of zero or less defaults to one.
func NewImageSurface(size strata.Size, dpr float64) *ImageSurface {
	if dpr <= 0 {
		dpr = 1
	}
	return &ImageSurface{size: size, dpr: dpr}
}

// LogicalSize returns the drawing area in logical pixels.
func (s *ImageSurface) LogicalSize() strata.Size {
	return s.size
}

// DevicePixelRatio returns physical pixels per logical pixel.
func (s *ImageSurface) DevicePixelRatio() float64 {
	return s.dpr
}

// SetDevicePixelRatio applies a ratio change signaled by the host.
// Frames presented afterwards render at the new density; the retained
// front buffer keeps the old one until then.
func (s *ImageSurface) SetDevicePixelRatio(dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	s.dpr = dpr
}

// Resize applies a logical size change signaled by the host.
func (s *ImageSurface) Resize(size strata.Size) {
	s.size = size
}

// Format returns RGBA8Unorm; frames stay plain RGBA pixel buffers.
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Present copies the frame into the front buffer.
func (s *ImageSurface) Present(frame *image.RGBA) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if frame == nil {
		return ErrNilFrame
	}
	b := frame.Bounds()
	if s.front == nil || s.front.Bounds() != b {
		s.front = image.NewRGBA(b)
	}
	copy(s.front.Pix, frame.Pix)
	return nil
}

// Front returns the last presented frame, or nil before the first
// present. The returned image is owned by the surface; callers must
// not mutate it.
func (s *ImageSurface) Front() *image.RGBA {
	return s.front
}

// Close releases the retained frame. Idempotent.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.front = nil
	return nil
}
