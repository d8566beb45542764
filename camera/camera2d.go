// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera builds the view and projection matrices for the 2D
// sprite camera and the 3D perspective camera.
package camera

import "cogentcore.org/xform/math32"

// Camera2D is a camera over a 2D pixel space of the given size, with
// the pixel origin at the top left. Its Matrix maps pixel coordinates
// to clip space.
type Camera2D struct {
	Width  float32
	Height float32

	// Pos is the camera position in pixels.
	Pos math32.Vector2

	// Rotation is the camera rotation in degrees about the viewport center.
	Rotation float32

	// Scale is the zoom factor.
	Scale math32.Vector2

	// Matrix is the pixel to clip space matrix computed by Update.
	Matrix math32.Matrix3
}

// NewCamera2D returns a new unrotated, unscaled [Camera2D] at the origin.
func NewCamera2D(width, height float32) *Camera2D {
	c := &Camera2D{Width: width, Height: height, Scale: math32.Vec2(1, 1)}
	c.Update()
	return c
}

// SetTransform sets the position, rotation in degrees and scale,
// and returns the updated matrix.
func (c *Camera2D) SetTransform(pos math32.Vector2, deg float32, scale math32.Vector2) math32.Matrix3 {
	c.Pos = pos
	c.Rotation = deg
	c.Scale = scale
	return c.Update()
}

// Update recomputes Matrix from the camera fields and returns it.
// Moving the camera moves the scene the other way, so the translation
// and rotation are done in a flipped frame.
func (c *Camera2D) Update() math32.Matrix3 {
	hw, hh := c.Width/2, c.Height/2
	c.Matrix = math32.MulAll3(
		math32.Matrix3Scale2D(-1, -1),
		math32.Matrix3Translate2D(c.Pos.X, c.Pos.Y),
		math32.Matrix3Translate2D(hw, hh),
		math32.Matrix3Rotate2D(math32.DegToRad(c.Rotation)),
		math32.Matrix3Translate2D(-hw, -hh),
		math32.Matrix3Scale2D(-1, -1),
		math32.Matrix3Scale2D(c.Scale.X, c.Scale.Y),
		math32.Matrix3Projection2D(c.Width, c.Height),
	)
	return c.Matrix
}

// Project returns the clip space position of the given pixel position.
func (c *Camera2D) Project(p math32.Vector2) math32.Vector2 {
	return c.Matrix.MulVector2AsPoint(p)
}

// Uniform2D is the per-uniform variant of the 2D camera, which applies
// translation, scale and rotation directly instead of through a matrix.
type Uniform2D struct {
	Translation math32.Vector2

	// Rotation is the (cos, sin) of the rotation angle.
	Rotation math32.Vector2

	Scale math32.Vector2
}

// NewUniform2D returns a new identity [Uniform2D].
func NewUniform2D() *Uniform2D {
	return &Uniform2D{Rotation: math32.Vec2(1, 0), Scale: math32.Vec2(1, 1)}
}

// SetRotation sets the rotation from the given angle in degrees.
func (u *Uniform2D) SetRotation(deg float32) {
	s, c := math32.Sincos(math32.DegToRad(deg))
	u.Rotation = math32.Vec2(c, s)
}

// Apply returns the clip space position of the pixel position p in a
// viewport of the given resolution: translate, scale, rotate, then
// convert to clip space with Y flipped.
func (u *Uniform2D) Apply(p, resolution math32.Vector2) math32.Vector2 {
	t := p.Add(u.Translation).Mul(u.Scale)
	c, s := u.Rotation.X, u.Rotation.Y
	r := math32.Vec2(c*t.X+s*t.Y, -s*t.X+c*t.Y)
	return PixelToClip(r, resolution, true)
}

// PixelToClip converts the pixel position p in a viewport of the given
// resolution to clip space, optionally flipping Y so that the pixel
// origin is at the top left.
func PixelToClip(p, resolution math32.Vector2, flipY bool) math32.Vector2 {
	clip := p.Div(resolution).MulScalar(2).AddScalar(-1)
	if flipY {
		clip.Y = -clip.Y
	}
	return clip
}
