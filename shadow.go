package strata

// Elevation shadows follow a single overhead light model: a disc light
// of radius lightRadius sits lightHeight above the surface, offset
// toward the upper left, so shadows fall down and to the right and
// grow softer with elevation.
const (
	lightHeight  = 600.0
	lightRadius  = 800.0
	lightOffsetX = -200.0
	lightOffsetY = -400.0
)

// ShadowOffset returns how far the shadow of an occluder at the given
// elevation shifts from the occluder itself.
func ShadowOffset(elevation float64) Point {
	if elevation <= 0 {
		return Point{}
	}
	return Point{
		X: -lightOffsetX * elevation / lightHeight,
		Y: -lightOffsetY * elevation / lightHeight,
	}
}

// ShadowBlurRadius returns the penumbra width for an occluder with the
// given local bounds at the given elevation. Wider occluders cast
// softer edges under a finite light.
func ShadowBlurRadius(shape Rect, elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	tx := (lightRadius + shape.Width()*0.5) / lightHeight
	ty := (lightRadius + shape.Height()*0.5) / lightHeight
	if ty > tx {
		tx = ty
	}
	return elevation * tx
}

// ShadowBounds returns a conservative local-space bound covering both
// the occluder and the shadow it casts. An empty occluder casts
// nothing.
func ShadowBounds(shape Rect, elevation float64) Rect {
	if elevation <= 0 || shape.IsEmpty() {
		return shape
	}
	off := ShadowOffset(elevation)
	blur := ShadowBlurRadius(shape, elevation)
	return shape.Union(shape.Offset(off.X, off.Y).Inflate(blur))
}
