// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gputypes"

	strata "github.com/strata-gl/strata"
)

// ErrSurfaceClosed is returned when presenting to a closed surface.
var ErrSurfaceClosed = errors.New("surface: closed")

// ErrNilFrame is returned when presenting a nil frame.
var ErrNilFrame = errors.New("surface: present of nil frame")

// Surface is a presentation target for rendered frames.
//
// A surface reports the logical size and device pixel ratio of the
// area the host embeds and accepts one finished frame per Present
// call. The frame's pixel dimensions are the logical size multiplied
// by the device pixel ratio.
//
// Surfaces are not safe for concurrent use. Each surface belongs to a
// single goroutine, the same one driving the rasterizer.
type Surface interface {
	// LogicalSize returns the drawing area in logical pixels.
	LogicalSize() strata.Size

	// DevicePixelRatio returns physical pixels per logical pixel.
	DevicePixelRatio() float64

	// Format returns the pixel format presented frames end up in.
	Format() gputypes.TextureFormat

	// Present hands a finished frame to the surface. The surface must
	// not retain the image beyond the call; it copies what it keeps.
	Present(frame *image.RGBA) error

	// Close releases the surface. Close is idempotent; presenting
	// after Close returns ErrSurfaceClosed.
	Close() error
}
