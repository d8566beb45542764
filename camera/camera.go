// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/math32"
)

// ErrZeroScale is returned by [Camera.SetTransform] for a scale
// with a zero component, which cannot be inverted.
var ErrZeroScale = errors.New("camera: scale has a zero component")

// Camera is a perspective camera. Its Matrix maps world coordinates
// to clip space and is the product of Projection and View.
type Camera struct {
	Width  float32
	Height float32

	// FOV is the vertical field of view in radians.
	FOV float32

	// Near and Far are the positive distances of the clip planes.
	Near float32
	Far  float32

	// Pos is the eye position in world coordinates.
	Pos math32.Vector3

	// View is the world to camera matrix.
	View math32.Matrix4

	// Projection is the camera to clip space matrix.
	Projection math32.Matrix4

	// Matrix is Projection * View.
	Matrix math32.Matrix4
}

// New returns a new [Camera] for a viewport of the given size,
// with a 50 degree field of view and clip planes at 1 and 2000.
func New(width, height float32) *Camera {
	c := &Camera{Width: width, Height: height, FOV: math32.DegToRad(50), Near: 1, Far: 2000}
	c.View = math32.Identity4()
	c.UpdateProjection()
	return c
}

// Aspect returns the viewport aspect ratio, width / height.
func (c *Camera) Aspect() float32 {
	return c.Width / c.Height
}

// UpdateProjection recomputes Projection and Matrix from the
// viewport and lens fields, and returns Matrix.
func (c *Camera) UpdateProjection() math32.Matrix4 {
	c.Projection = math32.Perspective(c.FOV, c.Aspect(), c.Near, c.Far)
	c.Matrix = c.Projection.Mul(c.View)
	return c.Matrix
}

// SetTransform positions the camera at pos with the given rotation in
// degrees about each axis and zoom scale. The view moves the world by
// -pos, undoes the rotation in X, Y, Z order and applies the inverse
// scale.
func (c *Camera) SetTransform(pos, rotDeg, scale math32.Vector3) error {
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return fmt.Errorf("SetTransform %v: %w", scale, ErrZeroScale)
	}
	c.Pos = pos
	c.View = math32.MulAll4(
		math32.Translate3D(-pos.X, -pos.Y, -pos.Z),
		math32.RotateX3D(-math32.DegToRad(rotDeg.X)),
		math32.RotateY3D(-math32.DegToRad(rotDeg.Y)),
		math32.RotateZ3D(-math32.DegToRad(rotDeg.Z)),
		math32.Scale3D(1/scale.X, 1/scale.Y, 1/scale.Z),
	)
	c.UpdateProjection()
	return nil
}

// SetLookAt positions the camera at eye looking at target, with +Y up.
// The camera is unchanged if the view is degenerate.
func (c *Camera) SetLookAt(target, eye math32.Vector3) error {
	m, err := math32.LookAt(target, eye)
	if err != nil {
		return fmt.Errorf("SetLookAt %v -> %v: %w", eye, target, err)
	}
	view, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("SetLookAt %v -> %v: %w", eye, target, err)
	}
	c.Pos = eye
	c.View = view
	c.UpdateProjection()
	return nil
}

// Project returns the normalized device coordinates of the given
// world position.
func (c *Camera) Project(p math32.Vector3) math32.Vector3 {
	return c.Matrix.Project(p)
}

// Orbit returns the position at angle deg on the horizontal circle of
// the given radius around center, raised by height. Angle 0 is on +X
// and positive angles turn towards -Z.
func Orbit(center math32.Vector3, radius, deg, height float32) math32.Vector3 {
	s, c := math32.Sincos(math32.DegToRad(deg))
	return math32.Vec3(center.X+radius*c, center.Y+height, center.Z-radius*s)
}
