// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/xform/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.True(t, Vec2(0.6, 0.8).ApproxEqual(v.Normal(), standardTol))
	assert.Equal(t, Vector2{}, Vec2(1e-5, 0).Normal())
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, Vec2(13, 14), v.MulMatrix3AsPoint(Matrix3Translate2D(10, 10)))
	assert.True(t, v.ApproxEqual(Vec2(3.0001, 3.9999), 1e-3))
	assert.False(t, v.ApproxEqual(Vec2(3.1, 4), 1e-3))
}

func TestVector3(t *testing.T) {
	x, y, z := Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, float32(0), x.Dot(y))

	v := Vec3(2, 3, 6)
	assert.Equal(t, float32(7), v.Length())
	tolassert.EqualTol(t, 1, v.Normal().Length(), standardTol)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, Vec3(-2, -3, -6), v.Negate())
	assert.Equal(t, Vec3(1, 1.5, 3), Vector3{}.Lerp(v, 0.5))

	s := make([]float32, 5)
	v.ToSlice(s, 1)
	assert.Equal(t, []float32{0, 2, 3, 6, 0}, s)
	assert.Equal(t, v, Vector3FromSlice(s, 1))
	assert.Equal(t, "(2, 3, 6)", v.String())
}

func TestVector4(t *testing.T) {
	v := Vec4(2, 4, 6, 2)
	assert.Equal(t, Vec3(1, 2, 3), v.PerspDiv())
	assert.Equal(t, Vec3(2, 4, 6), v.Vector3())
	assert.Equal(t, Vec4(1, 2, 3, 1), Vector4FromVector3(Vec3(1, 2, 3), 1))
	assert.Equal(t, float32(60), v.Dot(v))
	assert.Equal(t, Vec4(12, 4, 6, 2), v.MulMatrix4(Translate3D(5, 0, 0)))
}

func TestAngles(t *testing.T) {
	tolassert.EqualTol(t, Pi, DegToRad(180), standardTol)
	tolassert.EqualTol(t, 90, RadToDeg(Pi/2), 1e-5)
	tolassert.EqualTol(t, 1, Sin(Pi/2), standardTol)
	tolassert.EqualTol(t, -1, Cos(Pi), standardTol)
	tolassert.EqualTol(t, 1, Tan(Pi/4), 1e-6)
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, float32(0), Clamp[float32](-1, 0, 1))
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(Sqrt(-1)))
}
