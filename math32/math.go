// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix package for
// building 2D and 3D transform chains. Matrices are stored in
// column-major order and transform column vectors (M*v), which is
// the layout expected by GL style shaders and uniform uploads.
package math32

import (
	"cmp"
	"math"

	"cogentcore.org/xform/base/errors"
	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// SingularTol is the ratio of the determinant magnitude to the product
// of the column lengths, which bounds it, below which a matrix is treated
// as singular by Inverse. Being relative, it does not depend on the
// overall scale of the matrix.
const SingularTol = 1e-7

// NormalTol is the vector length at or below which Normal returns
// the zero vector instead of dividing.
const NormalTol = 1e-4

var (
	// ErrSingular is returned when inverting a matrix whose
	// determinant is not bounded away from zero.
	ErrSingular = errors.New("math32: matrix is singular")

	// ErrDegenerate is returned when a camera basis cannot be built,
	// because the eye is on the target or the view direction is
	// parallel to the up vector.
	ErrDegenerate = errors.New("math32: degenerate camera basis")
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// ApproxEqual returns whether a and b differ by no more than tol.
func ApproxEqual(a, b, tol float32) bool {
	return Abs(a-b) <= tol
}

// singular returns whether det, the determinant of the n x n column-major
// matrix m, is negligible relative to the product of its column lengths.
func singular(det float64, m []float32, n int) bool {
	bound := 1.0
	for c := range n {
		var sum float64
		for _, v := range m[c*n : c*n+n] {
			sum += float64(v) * float64(v)
		}
		bound *= math.Sqrt(sum)
	}
	return math.Abs(det) <= SingularTol*bound
}
