// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host implements DeviceHandle (or passes one through from its GPU
// framework) and hands it to a GPU surface. The library RECEIVES the
// device from the host, it does not create one: rasterization stays on
// the CPU and the handle only travels to the FramePresenter that
// uploads frames.
//
// Example implementation on a host with a shared context:
//
//	type contextDeviceHandle struct {
//	    ctx *app.Context
//	}
//
//	func (h *contextDeviceHandle) Device() gpucontext.Device {
//	    return h.ctx.Device()
//	}
//
//	func (h *contextDeviceHandle) Queue() gpucontext.Queue {
//	    return h.ctx.Queue()
//	}
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, so host code
// already integrated with the gpucontext ecosystem needs no adapter.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device behind it. Used
// for CPU-only presentation where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
