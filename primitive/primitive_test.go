// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"testing"

	"cogentcore.org/xform/base/tolassert"
	"cogentcore.org/xform/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanes(t *testing.T) {
	assert.Equal(t, []float32{
		1, 2, 5,
		1, 6, 5,
		4, 2, 5,
		1, 6, 5,
		4, 6, 5,
		4, 2, 5,
	}, XYPlane(1, 2, 5, 3, 4, true))
	for _, vs := range [][]float32{
		XYPlane(0, 0, 0, 1, 1, false),
		ZYPlane(0, 0, 0, 1, 1, true),
		ZYPlane(0, 0, 0, 1, 1, false),
		XZPlane(0, 0, 0, 1, 1, true),
		XZPlane(0, 0, 0, 1, 1, false),
	} {
		assert.Len(t, vs, 18)
	}
}

func TestFaceNormals(t *testing.T) {
	ns := FaceNormals(XYPlane(0, 0, 0, 1, 1, true))
	require.Len(t, ns, 18)
	for i := 0; i < 18; i += 3 {
		assert.Equal(t, math32.Vec3(0, 0, -1), math32.Vector3FromSlice(ns, i))
	}
	ns = FaceNormals([]float32{0, 0, 0, 1, 1, 1, 2, 2, 2})
	assert.Equal(t, make([]float32, 9), ns)
}

func TestCubeGeometry(t *testing.T) {
	c := NewCube(math32.Vec3(10, 20, 30), 50, 40, 30)
	require.Len(t, c.Vertices, 36*3)
	require.Len(t, c.Colors, 36*4)
	require.Len(t, c.Normals, 36*3)
	assert.Equal(t, 36, c.NumVertices())
	assert.Equal(t, math32.Identity4(), c.Matrix)

	outward := []math32.Vector3{
		math32.Vec3(0, 0, -1),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(-1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, -1, 0),
	}
	half := math32.Vec3(25, 20, 15)
	for face, n := range outward {
		for v := range VerticesPerFace {
			i := face*VerticesPerFace + v
			assert.True(t, n.ApproxEqual(math32.Vector3FromSlice(c.Normals, i*3), 1e-6), "face %d vertex %d", face, v)

			p := math32.Vector3FromSlice(c.Vertices, i*3).Sub(c.Pos)
			// every vertex is a corner, and on the side of its face
			assert.Equal(t, half, math32.Vec3(math32.Abs(p.X), math32.Abs(p.Y), math32.Abs(p.Z)))
			assert.Greater(t, p.Dot(n), float32(0))

			fc := FaceColors[face]
			assert.Equal(t, []uint8{fc.R, fc.G, fc.B, fc.A}, c.Colors[i*4:i*4+4])
		}
	}

	fs := c.ColorsFloat()
	assert.Equal(t, []float32{1, 0, 0, 1}, fs[:4])

	c.Width = 10
	c.Update()
	assert.Len(t, c.Vertices, 36*3)
	assert.Equal(t, float32(5), math32.Abs(c.Vertices[0]-c.Pos.X))
}

func TestCubeTransforms(t *testing.T) {
	c := NewCube(math32.Vec3(100, 0, 0), 50, 50, 50)
	assert.Equal(t, math32.Identity4(), c.CalcTransformMatrix())

	c.SetRotateZ(90, -1)
	m := c.CalcTransformMatrix()
	// the cube's own position is fixed under its rotation
	tolassert.EqualTolSlice(t, []float32{100, 0, 0}, vec(m.MulPoint(c.Pos)), 1e-4)
	tolassert.EqualTolSlice(t, []float32{100, 10, 0}, vec(m.MulPoint(math32.Vec3(110, 0, 0))), 1e-4)

	c.SetTranslate(0, 0, -5, -1)
	require.Len(t, c.Transforms, 2)
	m = c.CalcTransformMatrix()
	tolassert.EqualTolSlice(t, []float32{100, 10, -5}, vec(m.MulPoint(math32.Vec3(110, 0, 0))), 1e-4)

	// replacing by index
	c.SetRotateZ(0, 0)
	require.Len(t, c.Transforms, 2)
	m = c.CalcTransformMatrix()
	tolassert.EqualTolSlice(t, []float32{110, 0, -5}, vec(m.MulPoint(math32.Vec3(110, 0, 0))), 1e-4)

	// an index past the end appends
	c.SetRotateX(90, 7)
	assert.Len(t, c.Transforms, 3)
	c.SetRotateY(90, -1)
	assert.Len(t, c.Transforms, 4)

	c.ClearTransform()
	assert.Empty(t, c.Transforms)
	assert.NotEqual(t, math32.Identity4(), c.Matrix)
	assert.Equal(t, math32.Identity4(), c.CalcTransformMatrix())
}

func TestCubeRotateXY(t *testing.T) {
	c := NewCube(math32.Vec3(0, 10, 0), 2, 2, 2)
	c.SetRotateX(90, -1)
	m := c.CalcTransformMatrix()
	tolassert.EqualTolSlice(t, []float32{0, 10, 1}, vec(m.MulPoint(math32.Vec3(0, 11, 0))), 1e-5)

	c.ClearTransform()
	c.SetRotateY(90, -1)
	m = c.CalcTransformMatrix()
	tolassert.EqualTolSlice(t, []float32{1, 10, 0}, vec(m.MulPoint(math32.Vec3(0, 10, 1))), 1e-5)
}

func vec(v math32.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}

func TestSprite(t *testing.T) {
	s := &Sprite{X: 0, Y: 100, Width: 50, Height: 50}
	assert.Equal(t, []float32{0, 100, 50, 100, 0, 150, 0, 150, 50, 100, 50, 150}, s.Rectangle())
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 1}, s.TexCoords())
}

func TestBatch(t *testing.T) {
	a := NewCube(math32.Vec3(0, 0, 0), 1, 1, 1)
	b := NewCube(math32.Vec3(5, 0, 0), 1, 1, 1)
	bt := NewBatch(a, b)
	assert.Equal(t, 72, bt.NumVertices())
	assert.Equal(t, []Range{{0, 36}, {36, 36}}, bt.Ranges)
	assert.Len(t, bt.Colors, 72*4)
	assert.Len(t, bt.Normals, 72*3)
	assert.Equal(t, b.Vertices, bt.Vertices[36*3:])
}
