// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shade provides lighting models evaluated on the CPU for each
// surface point: a spot light with a soft edge and specular highlight,
// and a simple directional light.
package shade

import "cogentcore.org/xform/math32"

// Model is a lighting model that shades a surface point.
type Model interface {
	// Shade returns the lit color of a surface point with the given
	// base color and world space normal, seen from viewPos.
	Shade(color math32.Vector4, normal, worldPos, viewPos math32.Vector3) math32.Vector4
}

// Spot is a spot light at Position shining along Direction.
// Points whose direction from the light is within the cone given by
// InnerLimit and OuterLimit (as cosines) fade between unlit and fully lit.
type Spot struct {
	Position  math32.Vector3
	Direction math32.Vector3

	// InnerLimit and OuterLimit are the cosines at which the light
	// starts and reaches full strength.
	InnerLimit float32
	OuterLimit float32

	// Shininess is the specular exponent.
	Shininess float32
}

// NewSpot returns the spot light of the lit cube scene: above the
// origin, pointing down.
func NewSpot() *Spot {
	return &Spot{
		Position:   math32.Vec3(0, 100, 0),
		Direction:  math32.Vec3(0, -1, 0),
		InnerLimit: 0.5,
		OuterLimit: 0.9,
		Shininess:  30,
	}
}

// Factor returns how strongly the light reaches the given
// normalized surface to light direction, in the 0-1 range.
func (s *Spot) Factor(surfaceToLight math32.Vector3) float32 {
	eff := surfaceToLight.Dot(s.Direction.Normal().Negate())
	span := s.OuterLimit - s.InnerLimit
	if span == 0 {
		if eff >= s.OuterLimit {
			return 1
		}
		return 0
	}
	return math32.Clamp((eff-s.InnerLimit)/span, 0, 1)
}

// Shade implements [Model]. The diffuse term scales the color and the
// specular term is added to it; alpha is unchanged. Negative terms,
// from surfaces facing away from the light, are clamped to zero.
func (s *Spot) Shade(color math32.Vector4, normal, worldPos, viewPos math32.Vector3) math32.Vector4 {
	n := normal.Normal()
	toLight := s.Position.Sub(worldPos)
	toView := viewPos.Sub(worldPos)
	l := toLight.Normal()
	half := toLight.Add(toView).Normal()
	in := s.Factor(l)

	// clamped before the specular term is added, unlike rgb*light+specular,
	// which darkens when N.L < 0 < N.H
	diffuse := in * max(n.Dot(l), 0)
	var specular float32
	if nh := n.Dot(half); nh > 0 {
		specular = in * math32.Pow(nh, s.Shininess)
	}
	return litColor(color, diffuse, specular)
}

// Directional is a light from infinitely far away along Direction,
// with a constant Ambient term so that unlit faces stay visible.
type Directional struct {
	Direction math32.Vector3
	Ambient   float32
}

// Shade implements [Model] with Lambert diffuse lighting.
func (d *Directional) Shade(color math32.Vector4, normal, worldPos, viewPos math32.Vector3) math32.Vector4 {
	l := d.Direction.Normal().Negate()
	diffuse := max(normal.Normal().Dot(l), 0)
	return litColor(color, math32.Clamp(d.Ambient+(1-d.Ambient)*diffuse, 0, 1), 0)
}

func litColor(c math32.Vector4, diffuse, specular float32) math32.Vector4 {
	return math32.Vec4(
		math32.Clamp(c.X*diffuse+specular, 0, 1),
		math32.Clamp(c.Y*diffuse+specular, 0, 1),
		math32.Clamp(c.Z*diffuse+specular, 0, 1),
		c.W,
	)
}

// Normals returns the given model space normals (3 floats each)
// transformed to world space by the normal matrix of model, which
// keeps them perpendicular to their surfaces under non-uniform scale.
func Normals(model math32.Matrix4, normals []float32) ([]float32, error) {
	nm, err := model.NormalMatrix()
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(normals))
	for i := 0; i+2 < len(normals); i += 3 {
		nm.MulVector3(math32.Vector3FromSlice(normals, i)).Normal().ToSlice(out, i)
	}
	return out, nil
}
