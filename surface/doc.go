// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides presentation targets for rendered frames.
//
// A Surface is the seam between the rasterizer and the host embedding:
// it owns the logical size and device pixel ratio of the embedded
// drawing area and accepts finished frames. Surfaces never draw;
// backends rasterize into their own buffers and hand the result to
// Present.
//
// # Surface types
//
//   - ImageSurface: CPU target retaining the last presented frame for
//     host readback.
//   - GPUSurface: forwards frames to a host-provided FramePresenter.
//     The GPU libraries stay on the host side of the seam; this module
//     only carries the gpucontext device handle through.
//
// # Registry
//
// Hosts with multiple presentation paths register them by name and
// priority and let the registry pick the best available one:
//
//	surface.Register("swapchain", 100, swapchainFactory, swapchainAvailable)
//
//	s, err := surface.New(surface.Options{
//		Size:             strata.Size{Width: 800, Height: 600},
//		DevicePixelRatio: 2,
//	})
//
// The built-in "image" backend is always registered, so New never
// fails on a bare system.
//
// # Device pixel ratio
//
// The ratio is a host signal. Hosts call SetDevicePixelRatio when the
// window moves between displays; the rasterizer reads the value each
// frame and rebuilds its buffers when it changes.
package surface
