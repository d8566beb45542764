// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3x3 matrix in column-major order, used for 2D
// homogeneous transforms. Elements 6 and 7 hold the translation.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3Translate2D returns a Matrix3 2D matrix with given translations
func Matrix3Translate2D(x, y float32) Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// Matrix3Scale2D returns a Matrix3 2D matrix with given scaling factors
func Matrix3Scale2D(x, y float32) Matrix3 {
	return Matrix3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Matrix3Rotate2D returns a Matrix3 2D matrix with given rotation, specified
// in radians. Positive angles rotate counter-clockwise from +X towards +Y.
func Matrix3Rotate2D(angle float32) Matrix3 {
	s, c := Sincos(angle)
	return Matrix3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Matrix3Projection2D returns the matrix mapping pixel coordinates in a
// viewport of the given size to clip space, with the pixel origin at the
// top-left corner (Y pointing down) and clip space Y pointing up.
func Matrix3Projection2D(width, height float32) Matrix3 {
	return MulAll3(
		Matrix3Scale2D(2/width, 2/height),
		Matrix3Translate2D(-1, -1),
		Matrix3Scale2D(1, -1),
	)
}

// Mul returns this matrix times other: the result applies other first
// and then this matrix.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			r[col*3+row] = m[row]*other[col*3] + m[3+row]*other[col*3+1] + m[6+row]*other[col*3+2]
		}
	}
	return r
}

// MulAll3 returns the product of the given matrices such that they are
// applied to a vector in list order: ms[n-1] * ... * ms[1] * ms[0].
// An empty list returns the identity.
func MulAll3(ms ...Matrix3) Matrix3 {
	if len(ms) == 0 {
		return Identity3()
	}
	r := ms[0]
	for _, m := range ms[1:] {
		r = m.Mul(r)
	}
	return r
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of this matrix, or [ErrSingular]
// if the determinant is not bounded away from zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	// adjugate of the stored layout; inverse commutes with transpose,
	// so the result is in the same layout.
	a, b, c := float64(m[0]), float64(m[1]), float64(m[2])
	d, e, f := float64(m[3]), float64(m[4]), float64(m[5])
	g, h, i := float64(m[6]), float64(m[7]), float64(m[8])

	c00 := e*i - f*h
	c01 := f*g - d*i
	c02 := d*h - e*g
	det := a*c00 + b*c01 + c*c02
	if singular(det, m[:], 3) {
		return Matrix3{}, ErrSingular
	}
	id := 1 / det
	return Matrix3{
		float32(c00 * id), float32((c*h - b*i) * id), float32((b*f - c*e) * id),
		float32(c01 * id), float32((a*i - c*g) * id), float32((c*d - a*f) * id),
		float32(c02 * id), float32((b*g - a*h) * id), float32((a*e - b*d) * id),
	}, nil
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// MulVector3 returns the given vector multiplied by this matrix.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		m[0]*v.X + m[3]*v.Y + m[6],
		m[1]*v.X + m[4]*v.Y + m[7],
	}
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		m[0]*v.X + m[3]*v.Y,
		m[1]*v.X + m[4]*v.Y,
	}
}

// ApproxEqual returns whether every element differs from other by no more than tol.
func (m Matrix3) ApproxEqual(other Matrix3, tol float32) bool {
	for i := range m {
		if !ApproxEqual(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// Float32s returns the elements as a slice in column-major order,
// suitable for a mat3 uniform upload.
func (m Matrix3) Float32s() []float32 {
	s := make([]float32, 9)
	copy(s, m[:])
	return s
}

// String returns the matrix laid out in rows.
func (m Matrix3) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, "[%10.4f %10.4f %10.4f]\n", m[row], m[3+row], m[6+row])
	}
	return sb.String()
}
