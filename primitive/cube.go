// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"image/color"

	"cogentcore.org/xform/math32"
)

// FaceColors are the colors of the six cube faces, in face order:
// front (-Z), right (+X), back (+Z), left (-X), top (+Y), bottom (-Y).
var FaceColors = [6]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{0, 255, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
}

// Cube is an axis aligned box centered on Pos, together with a list of
// model transforms that are combined into Matrix for drawing.
type Cube struct {
	Pos    math32.Vector3
	Width  float32
	Height float32
	Depth  float32

	// Vertices are the 36 triangle vertices, 3 floats each,
	// in model coordinates. They are recomputed in full by Update.
	Vertices []float32

	// Colors are the RGBA8 per-vertex colors, 4 bytes each.
	Colors []uint8

	// Normals are the outward flat per-vertex normals, 3 floats each.
	Normals []float32

	// Transforms are applied to the vertices in list order.
	Transforms []math32.Matrix4

	// Matrix is the model matrix computed by CalcTransformMatrix.
	Matrix math32.Matrix4
}

// NewCube returns a new cube centered on pos with the given size,
// with its geometry computed and an identity model matrix.
func NewCube(pos math32.Vector3, width, height, depth float32) *Cube {
	c := &Cube{Pos: pos, Width: width, Height: height, Depth: depth, Matrix: math32.Identity4()}
	c.Update()
	return c
}

// Update recomputes the vertices, colors and normals from the
// position and size.
func (c *Cube) Update() {
	hw, hh, hd := c.Width/2, c.Height/2, c.Depth/2
	x, y, z := c.Pos.X, c.Pos.Y, c.Pos.Z
	faces := [6][]float32{
		XYPlane(x-hw, y-hh, z-hd, c.Width, c.Height, true),
		ZYPlane(x+hw, y-hh, z-hd, c.Height, c.Depth, true),
		XYPlane(x-hw, y-hh, z+hd, c.Width, c.Height, false),
		ZYPlane(x-hw, y-hh, z-hd, c.Height, c.Depth, false),
		XZPlane(x-hw, y+hh, z-hd, c.Width, c.Depth, true),
		XZPlane(x-hw, y-hh, z-hd, c.Width, c.Depth, false),
	}
	c.Vertices = c.Vertices[:0]
	c.Colors = c.Colors[:0]
	for i, f := range faces {
		c.Vertices = append(c.Vertices, f...)
		fc := FaceColors[i]
		for range VerticesPerFace {
			c.Colors = append(c.Colors, fc.R, fc.G, fc.B, fc.A)
		}
	}
	c.Normals = FaceNormals(c.Vertices)
}

// NumVertices returns the number of vertices drawn for the cube.
func (c *Cube) NumVertices() int {
	return len(c.Vertices) / 3
}

// ColorsFloat returns the colors as floats in the 0-1 range.
func (c *Cube) ColorsFloat() []float32 {
	fs := make([]float32, len(c.Colors))
	for i, v := range c.Colors {
		fs[i] = float32(v) / 255
	}
	return fs
}

// setTransform replaces the transform at index, or appends it when
// index is negative or past the end of the list.
func (c *Cube) setTransform(m math32.Matrix4, index int) {
	if index >= 0 && index < len(c.Transforms) {
		c.Transforms[index] = m
		return
	}
	c.Transforms = append(c.Transforms, m)
}

// aboutCenter returns the given rotation applied about the cube's position.
func (c *Cube) aboutCenter(rot math32.Matrix4) math32.Matrix4 {
	return math32.MulAll4(
		math32.Translate3D(-c.Pos.X, -c.Pos.Y, -c.Pos.Z),
		rot,
		math32.Translate3D(c.Pos.X, c.Pos.Y, c.Pos.Z),
	)
}

// SetRotateZ sets a rotation by deg degrees about the Z axis through
// the cube's position. A negative index appends the transform,
// otherwise it replaces the transform at that index.
func (c *Cube) SetRotateZ(deg float32, index int) {
	c.setTransform(c.aboutCenter(math32.RotateZ3D(math32.DegToRad(deg))), index)
}

// SetRotateX sets a rotation by deg degrees about the X axis through
// the cube's position, like [Cube.SetRotateZ].
func (c *Cube) SetRotateX(deg float32, index int) {
	c.setTransform(c.aboutCenter(math32.RotateX3D(math32.DegToRad(deg))), index)
}

// SetRotateY sets a rotation by deg degrees about the Y axis through
// the cube's position, like [Cube.SetRotateZ].
func (c *Cube) SetRotateY(deg float32, index int) {
	c.setTransform(c.aboutCenter(math32.RotateY3D(math32.DegToRad(deg))), index)
}

// SetTranslate sets a translation, like [Cube.SetRotateZ].
func (c *Cube) SetTranslate(x, y, z float32, index int) {
	c.setTransform(math32.Translate3D(x, y, z), index)
}

// ClearTransform removes all transforms. Matrix is unchanged
// until the next CalcTransformMatrix.
func (c *Cube) ClearTransform() {
	c.Transforms = c.Transforms[:0]
}

// CalcTransformMatrix sets Matrix to the combination of the
// transforms, the identity when there are none, and returns it.
func (c *Cube) CalcTransformMatrix() math32.Matrix4 {
	c.Matrix = math32.MulAll4(c.Transforms...)
	return c.Matrix
}
