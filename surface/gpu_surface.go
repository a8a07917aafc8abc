// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gputypes"

	strata "github.com/strata-gl/strata"
)

// FramePresenter is the interface GPU integrations implement to accept
// finished frames. The presenter owns the texture upload and swap,
// typically against the device a DeviceHandle exposes; this module
// never touches a GPU API itself.
type FramePresenter interface {
	// PresentFrame uploads and presents one finished frame.
	PresentFrame(frame *image.RGBA) error

	// Format returns the texture format frames are converted to.
	Format() gputypes.TextureFormat

	// Close releases presenter resources.
	Close() error
}

// GPUSurface presents frames through a host-provided FramePresenter.
//
// Rasterization still happens on the CPU; only the final frame crosses
// the GPU boundary. This keeps GPU libraries out of the core while
// hosts with swapchains keep a first-class presentation path:
//
//	presenter := app.NewSwapchainPresenter(window)
//	s, err := surface.NewGPUSurface(size, dpr, app.DeviceHandle(), presenter)
type GPUSurface struct {
	size      strata.Size
	dpr       float64
	device    DeviceHandle
	presenter FramePresenter
	closed    bool
}

var _ Surface = (*GPUSurface)(nil)

// NewGPUSurface creates a surface presenting through the given
// presenter. A nil presenter is an error; a nil device falls back to
// NullDeviceHandle. A ratio of zero or less defaults to one.
func NewGPUSurface(size strata.Size, dpr float64, device DeviceHandle, presenter FramePresenter) (*GPUSurface, error) {
	if presenter == nil {
		return nil, errors.New("surface: FramePresenter cannot be nil")
	}
	if dpr <= 0 {
		dpr = 1
	}
	if device == nil {
		device = NullDeviceHandle{}
	}
	return &GPUSurface{
		size:      size,
		dpr:       dpr,
		device:    device,
		presenter: presenter,
	}, nil
}

// LogicalSize returns the drawing area in logical pixels.
func (s *GPUSurface) LogicalSize() strata.Size {
	return s.size
}

// DevicePixelRatio returns physical pixels per logical pixel.
func (s *GPUSurface) DevicePixelRatio() float64 {
	return s.dpr
}

// SetDevicePixelRatio applies a ratio change signaled by the host.
func (s *GPUSurface) SetDevicePixelRatio(dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	s.dpr = dpr
}

// Resize applies a logical size change signaled by the host.
func (s *GPUSurface) Resize(size strata.Size) {
	s.size = size
}

// Format returns the presenter's texture format.
func (s *GPUSurface) Format() gputypes.TextureFormat {
	if s.closed {
		return gputypes.TextureFormatUndefined
	}
	return s.presenter.Format()
}

// Present forwards the frame to the presenter.
func (s *GPUSurface) Present(frame *image.RGBA) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if frame == nil {
		return ErrNilFrame
	}
	return s.presenter.PresentFrame(frame)
}

// Device returns the host device handle.
func (s *GPUSurface) Device() DeviceHandle {
	return s.device
}

// Close closes the presenter. Idempotent.
func (s *GPUSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.presenter.Close()
}
