package ruler

import "errors"

var (
	// ErrEmptyFontData is returned when registering a font with no bytes.
	ErrEmptyFontData = errors.New("ruler: empty font data")

	// ErrUnknownFamily is returned when a style names a font family that
	// has not been registered.
	ErrUnknownFamily = errors.New("ruler: font family not registered")

	// ErrNoFonts is returned when measuring before any font has been
	// registered.
	ErrNoFonts = errors.New("ruler: no fonts registered")

	// ErrRulerDisposed is returned when using a ruler after Dispose.
	ErrRulerDisposed = errors.New("ruler: ruler has been disposed")

	// ErrMeasurementInProgress is returned by WillMeasure when a
	// measurement cycle is already active. Rulers run one cycle at a
	// time.
	ErrMeasurementInProgress = errors.New("ruler: measurement cycle already in progress")

	// ErrNoMeasurement is returned by DidMeasure when no cycle is
	// active.
	ErrNoMeasurement = errors.New("ruler: DidMeasure without WillMeasure")

	// ErrDisposeDuringMeasurement is returned by Dispose when called
	// mid-cycle. The ruler stays usable; the caller must end the cycle
	// first.
	ErrDisposeDuringMeasurement = errors.New("ruler: dispose during active measurement cycle")

	// ErrNotLaidOut is returned when drawing a paragraph that has not
	// had Layout called on it.
	ErrNotLaidOut = errors.New("ruler: paragraph not laid out")

	// ErrManagerDisposed is returned when requesting rulers from a
	// disposed manager.
	ErrManagerDisposed = errors.New("ruler: manager has been disposed")
)
