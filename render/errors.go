// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrNilSurface is returned by NewRasterizer when no surface to
	// present to is given.
	ErrNilSurface = errors.New("render: surface cannot be nil")

	// ErrNilTree is returned by Draw and DrawToDOM for a nil tree.
	ErrNilTree = errors.New("render: nil layer tree")

	// ErrNilCanvas is returned by DrawToDOM for a nil canvas.
	ErrNilCanvas = errors.New("render: nil canvas")

	// ErrNilBuilder is returned by CompositeFrame for a nil builder.
	ErrNilBuilder = errors.New("render: nil builder")
)
