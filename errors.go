package strata

import (
	"errors"
	"fmt"
)

// ErrUnbalancedRestore is returned by Canvas.Restore when there is no
// matching Save.
var ErrUnbalancedRestore = errors.New("strata: restore without matching save")

// UnsupportedOpError reports a canvas primitive the backend cannot
// express. Structural backends implement only a subset of the canvas
// surface; routing an unsupported primitive to one is a bug in layer
// assignment, so it fails the frame loudly instead of degrading
// silently.
type UnsupportedOpError struct {
	Backend string // backend name, e.g. "dom"
	Op      string // operation name, e.g. "ClipPath"
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("%s canvas: %s not supported", e.Backend, e.Op)
}
