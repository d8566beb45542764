// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 matrix in column-major order, used for 3D
// homogeneous transforms. Elements 12, 13 and 14 hold the translation.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3D returns a translation matrix.
func Translate3D(x, y, z float32) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale3D returns a scaling matrix.
func Scale3D(x, y, z float32) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX3D returns a rotation about the X axis, in radians,
// turning +Y towards +Z.
func RotateX3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY3D returns a rotation about the Y axis, in radians,
// turning +Z towards +X.
func RotateY3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ3D returns a rotation about the Z axis, in radians,
// turning +X towards +Y.
func RotateZ3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection for a symmetric frustum.
// fovy is the vertical field of view in radians. Camera space looks
// down -Z and near, far are positive distances.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	f := Tan(Pi*0.5 - 0.5*fovy)
	rangeInv := 1 / (near - far)
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) * rangeInv, -1,
		0, 0, near * far * rangeInv * 2, 0,
	}
}

// Frustum returns an off-axis perspective projection for the frustum
// whose near plane spans [left, right] x [bottom, top].
func Frustum(left, right, bottom, top, near, far float32) Matrix4 {
	rml, tmb, fmn := right-left, top-bottom, far-near
	return Matrix4{
		2 * near / rml, 0, 0, 0,
		0, 2 * near / tmb, 0, 0,
		(right + left) / rml, (top + bottom) / tmb, -(far + near) / fmn, -1,
		0, 0, -(2 * far * near) / fmn, 0,
	}
}

// Orthographic returns an orthographic projection of the given box.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	rml, tmb, fmn := right-left, top-bottom, far-near
	return Matrix4{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, -2 / fmn, 0,
		-(right + left) / rml, -(top + bottom) / tmb, -(far + near) / fmn, 1,
	}
}

// LookAt returns the camera-to-world matrix of a camera at eye
// looking at target, with +Y as the up direction.
// Its inverse is the view matrix.
func LookAt(target, eye Vector3) (Matrix4, error) {
	return LookAtUp(target, eye, Vec3(0, 1, 0))
}

// LookAtUp returns the camera-to-world matrix of a camera at eye
// looking at target. The columns are the camera X, Y and Z axes
// followed by the eye position; the camera looks down its -Z axis.
// It returns [ErrDegenerate] if eye and target coincide or the
// view direction is parallel to up.
func LookAtUp(target, eye, up Vector3) (Matrix4, error) {
	z := eye.Sub(target).Normal()
	if z.IsNil() {
		return Identity4(), ErrDegenerate
	}
	x := up.Cross(z).Normal()
	if x.IsNil() {
		return Identity4(), ErrDegenerate
	}
	y := z.Cross(x)
	return Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		eye.X, eye.Y, eye.Z, 1,
	}, nil
}

// Mul returns this matrix times other: the result applies other first
// and then this matrix.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		b0, b1, b2, b3 := other[col*4], other[col*4+1], other[col*4+2], other[col*4+3]
		for row := 0; row < 4; row++ {
			r[col*4+row] = m[row]*b0 + m[4+row]*b1 + m[8+row]*b2 + m[12+row]*b3
		}
	}
	return r
}

// MulAll4 returns the product of the given matrices such that they are
// applied to a vector in list order: ms[n-1] * ... * ms[1] * ms[0].
// An empty list returns the identity.
func MulAll4(ms ...Matrix4) Matrix4 {
	if len(ms) == 0 {
		return Identity4()
	}
	r := ms[0]
	for _, m := range ms[1:] {
		r = m.Mul(r)
	}
	return r
}

// cofactors returns the 2x2 minors of the upper and lower column
// pairs, in float64, shared by Determinant and Inverse.
func (m Matrix4) cofactors() (a [16]float64, b [12]float64) {
	for i := range m {
		a[i] = float64(m[i])
	}
	b[0] = a[0]*a[5] - a[1]*a[4]
	b[1] = a[0]*a[6] - a[2]*a[4]
	b[2] = a[0]*a[7] - a[3]*a[4]
	b[3] = a[1]*a[6] - a[2]*a[5]
	b[4] = a[1]*a[7] - a[3]*a[5]
	b[5] = a[2]*a[7] - a[3]*a[6]
	b[6] = a[8]*a[13] - a[9]*a[12]
	b[7] = a[8]*a[14] - a[10]*a[12]
	b[8] = a[8]*a[15] - a[11]*a[12]
	b[9] = a[9]*a[14] - a[10]*a[13]
	b[10] = a[9]*a[15] - a[11]*a[13]
	b[11] = a[10]*a[15] - a[11]*a[14]
	return
}

func determinant(b *[12]float64) float64 {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix4) Determinant() float32 {
	_, b := m.cofactors()
	return float32(determinant(&b))
}

// Inverse returns the inverse of this matrix by cofactor expansion,
// or [ErrSingular] if the determinant is not bounded away from zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	a, b := m.cofactors()
	det := determinant(&b)
	if singular(det, m[:], 4) {
		return Matrix4{}, ErrSingular
	}
	id := 1 / det
	r := [16]float64{
		a[5]*b[11] - a[6]*b[10] + a[7]*b[9],
		a[2]*b[10] - a[1]*b[11] - a[3]*b[9],
		a[13]*b[5] - a[14]*b[4] + a[15]*b[3],
		a[10]*b[4] - a[9]*b[5] - a[11]*b[3],
		a[6]*b[8] - a[4]*b[11] - a[7]*b[7],
		a[0]*b[11] - a[2]*b[8] + a[3]*b[7],
		a[14]*b[2] - a[12]*b[5] - a[15]*b[1],
		a[8]*b[5] - a[10]*b[2] + a[11]*b[1],
		a[4]*b[10] - a[5]*b[8] + a[7]*b[6],
		a[1]*b[8] - a[0]*b[10] - a[3]*b[6],
		a[12]*b[4] - a[13]*b[2] + a[15]*b[0],
		a[9]*b[2] - a[8]*b[4] - a[11]*b[0],
		a[5]*b[7] - a[4]*b[9] - a[6]*b[6],
		a[0]*b[9] - a[1]*b[7] + a[2]*b[6],
		a[13]*b[1] - a[12]*b[3] - a[14]*b[0],
		a[8]*b[3] - a[9]*b[1] + a[10]*b[0],
	}
	var inv Matrix4
	for i := range r {
		inv[i] = float32(r[i] * id)
	}
	return inv, nil
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Upper3 returns the upper-left 3x3 linear part of this matrix,
// equivalent to mat3(m) in a shader.
func (m Matrix4) Upper3() Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// NormalMatrix returns the inverse transpose of the upper-left 3x3,
// which transforms surface normals consistently under non-uniform scale.
func (m Matrix4) NormalMatrix() (Matrix3, error) {
	inv, err := m.Upper3().Inverse()
	if err != nil {
		return Identity3(), err
	}
	return inv.Transpose(), nil
}

// MulVector4 returns the given vector multiplied by this matrix.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms the given point (w = 1), ignoring the resulting w.
func (m Matrix4) MulPoint(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// MulDirection transforms the given direction (w = 0), so translation
// does not apply.
func (m Matrix4) MulDirection(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// Project transforms the given point (w = 1) and applies the
// perspective divide, returning normalized device coordinates.
func (m Matrix4) Project(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).PerspDiv()
}

// Position returns the translation part of this matrix.
func (m Matrix4) Position() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// ApproxEqual returns whether every element differs from other by no more than tol.
func (m Matrix4) ApproxEqual(other Matrix4, tol float32) bool {
	for i := range m {
		if !ApproxEqual(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// IsFinite returns whether every element is neither NaN nor infinite.
func (m Matrix4) IsFinite() bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// Float32s returns the elements as a slice in column-major order,
// suitable for a mat4 uniform upload.
func (m Matrix4) Float32s() []float32 {
	s := make([]float32, 16)
	copy(s, m[:])
	return s
}

// String returns the matrix laid out in rows.
func (m Matrix4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "[%10.4f %10.4f %10.4f %10.4f]\n", m[row], m[4+row], m[8+row], m[12+row])
	}
	return sb.String()
}
