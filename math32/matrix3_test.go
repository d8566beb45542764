// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/xform/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

const standardTol = float32(1.0e-6)

func TestMatrix3(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity3().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity3().MulVector2AsPoint(vy))
	assert.Equal(t, vxy, Identity3().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Matrix3Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, v0, Matrix3Translate2D(1, 1).MulVector2AsVector(v0))

	assert.Equal(t, vxy.MulScalar(2), Matrix3Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Matrix3Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))  // left
	tolAssertEqualVector(t, standardTol, vx, Matrix3Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy)) // right
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Matrix3Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Matrix3Rotate2D(DegToRad(-45)).MulVector2AsPoint(vy))

	inv, err := Matrix3Rotate2D(DegToRad(-90)).Inverse()
	require.NoError(t, err)
	tolAssertEqualVector(t, standardTol, vy, inv.MulVector2AsPoint(vx))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// Mul order is the reverse of the logical order:
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), Matrix3Translate2D(1, 1).Mul(Matrix3Rotate2D(DegToRad(90))).Mul(Matrix3Scale2D(2, 2)).MulVector2AsPoint(vx))
	// while MulAll3 takes them in logical order:
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), MulAll3(Matrix3Scale2D(2, 2), Matrix3Rotate2D(DegToRad(90)), Matrix3Translate2D(1, 1)).MulVector2AsPoint(vx))
}

func TestMulAll3Edges(t *testing.T) {
	assert.Equal(t, Identity3(), MulAll3())
	m := Matrix3Translate2D(3, 4)
	assert.Equal(t, m, MulAll3(m))
}

func TestMatrix3Projection2D(t *testing.T) {
	p := Matrix3Projection2D(640, 480)
	tolAssertEqualVector(t, standardTol, Vec2(-1, 1), p.MulVector2AsPoint(Vec2(0, 0)))
	tolAssertEqualVector(t, standardTol, Vec2(1, -1), p.MulVector2AsPoint(Vec2(640, 480)))
	tolAssertEqualVector(t, standardTol, Vec2(0, 0), p.MulVector2AsPoint(Vec2(320, 240)))
}

func TestMatrix3Inverse(t *testing.T) {
	ms := []Matrix3{
		Identity3(),
		Matrix3Translate2D(-20, 35),
		Matrix3Scale2D(2, 0.5),
		MulAll3(Matrix3Scale2D(3, 2), Matrix3Rotate2D(0.7), Matrix3Translate2D(10, -4)),
	}
	for i, m := range ms {
		inv, err := m.Inverse()
		require.NoError(t, err, i)
		assert.True(t, m.Mul(inv).ApproxEqual(Identity3(), 1e-5), "m * inv(m) = identity: %d\n%v", i, m.Mul(inv))
		assert.True(t, inv.Mul(m).ApproxEqual(Identity3(), 1e-5), "inv(m) * m = identity: %d", i)
	}

	_, err := Matrix3Scale2D(0, 1).Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	_, err = Matrix3{}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)

	small := Matrix3Scale2D(1e-5, 1e-5)
	inv, err := small.Inverse()
	require.NoError(t, err)
	tolassert.EqualTol(t, 1e5, inv[0], 1)
	tolassert.EqualTol(t, 1e5, inv[4], 1)
}

func TestMatrix3Determinant(t *testing.T) {
	tolassert.EqualTol(t, 6, Matrix3Scale2D(2, 3).Determinant(), standardTol)
	tolassert.EqualTol(t, 1, Matrix3Rotate2D(1.2).Determinant(), 1e-6)
	tolassert.EqualTol(t, 1, Matrix3Translate2D(5, 6).Determinant(), standardTol)
}

func TestMatrix3Transpose(t *testing.T) {
	m := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, Matrix3{1, 4, 7, 2, 5, 8, 3, 6, 9}, m.Transpose())
	assert.Equal(t, m, m.Transpose().Transpose())
}

func TestMatrix3Float32s(t *testing.T) {
	m := Matrix3Translate2D(7, 8)
	s := m.Float32s()
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 7, 8, 1}, s)
	s[0] = 5
	assert.Equal(t, float32(1), m[0])
}
