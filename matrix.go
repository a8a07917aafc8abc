package strata

import (
	"fmt"
	"math"
)

// Matrix is a 4x4 transformation matrix in row-major order. Points
// transform as column vectors: p' = M * (x, y, 0, 1).
//
// Matrix is a plain comparable array so it can key maps directly; the
// raster cache relies on exact value equality of all 16 elements, with
// no epsilon tolerance.
type Matrix [16]float64

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixTranslate2D returns a matrix translating by (dx, dy).
func MatrixTranslate2D(dx, dy float64) Matrix {
	m := MatrixIdentity()
	m[3] = dx
	m[7] = dy
	return m
}

// MatrixScale2D returns a matrix scaling by (sx, sy) about the origin.
func MatrixScale2D(sx, sy float64) Matrix {
	m := MatrixIdentity()
	m[0] = sx
	m[5] = sy
	return m
}

// MatrixRotate2D returns a matrix rotating by angle radians about the
// origin. Positive angles rotate from +X toward +Y, clockwise on a
// y-down raster.
func MatrixRotate2D(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	m := MatrixIdentity()
	m[0] = cos
	m[1] = -sin
	m[4] = sin
	m[5] = cos
	return m
}

// MatrixFromAffine builds a 4x4 matrix from 2D affine coefficients:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
func MatrixFromAffine(a, b, c, d, e, f float64) Matrix {
	m := MatrixIdentity()
	m[0] = a
	m[1] = b
	m[3] = c
	m[4] = d
	m[5] = e
	m[7] = f
	return m
}

// Mul returns the product m*o. When transforming points, o applies
// first: m.Mul(o).Apply(p) == m.Apply(o.Apply(p)).
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * o[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// PreTranslate returns m with a translation applied before it, the usual
// step when descending into a child positioned at an offset.
func (m Matrix) PreTranslate(dx, dy float64) Matrix {
	return m.Mul(MatrixTranslate2D(dx, dy))
}

// Apply transforms a point, performing the perspective divide when the
// resulting w is not 1.
func (m Matrix) Apply(p Point) Point {
	x := m[0]*p.X + m[1]*p.Y + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[7]
	w := m[12]*p.X + m[13]*p.Y + m[15]
	if w != 1 && w != 0 {
		x /= w
		y /= w
	}
	return Point{X: x, Y: y}
}

// MapRect transforms the rectangle and returns the axis-aligned hull of
// its four projected corners. Empty rectangles map to the empty
// rectangle.
func (m Matrix) MapRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	corners := r.Corners()
	p0 := m.Apply(corners[0])
	out := Rect{MinX: p0.X, MinY: p0.Y, MaxX: p0.X, MaxY: p0.Y}
	for _, c := range corners[1:] {
		p := m.Apply(c)
		out.MinX = math.Min(out.MinX, p.X)
		out.MinY = math.Min(out.MinY, p.Y)
		out.MaxX = math.Max(out.MaxX, p.X)
		out.MaxY = math.Max(out.MaxY, p.Y)
	}
	return out
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == MatrixIdentity()
}

// Is2DTranslation reports whether m is a pure 2D translation, the fast
// path where cached rasters stay pixel-exact under movement.
func (m Matrix) Is2DTranslation() bool {
	id := MatrixIdentity()
	for i, v := range m {
		if i == 3 || i == 7 {
			continue
		}
		if v != id[i] {
			return false
		}
	}
	return true
}

// Affine2D extracts 2D affine coefficients with the mapping
// x' = a*x + b*y + c, y' = d*x + e*y + f. ok is false when the matrix
// mixes in Z or carries perspective and cannot be expressed in 2D.
func (m Matrix) Affine2D() (a, b, c, d, e, f float64, ok bool) {
	if m[2] != 0 || m[6] != 0 ||
		m[8] != 0 || m[9] != 0 || m[10] != 1 || m[11] != 0 ||
		m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		return 0, 0, 0, 0, 0, 0, false
	}
	return m[0], m[1], m[3], m[4], m[5], m[7], true
}

// Invert returns the inverse of m. ok is false when the matrix is
// singular (|det| below 1e-10), in which case the identity is returned.
func (m Matrix) Invert() (Matrix, bool) {
	var inv Matrix

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if math.Abs(det) < 1e-10 {
		return MatrixIdentity(), false
	}
	for i := range inv {
		inv[i] /= det
	}
	return inv, true
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	return fmt.Sprintf("Matrix[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
