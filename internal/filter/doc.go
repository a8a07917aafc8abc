// Package filter blurs coverage masks for the bitmap backend.
//
// The backend rasterizes shapes into 8-bit alpha masks before
// compositing; a paint with a mask blur, which is how elevation shadows
// are drawn, runs its mask through the separable Gaussian pass here
// first. Kernels are cached because consecutive frames blur with the
// same handful of sigmas.
package filter
