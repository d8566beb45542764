// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/xform/camera"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/primitive"
	"cogentcore.org/xform/raster"
	"cogentcore.org/xform/shade"
	"github.com/jinzhu/copier"
)

// Frame is a scene advanced to one frame of its animation,
// with its geometry and camera ready to render.
type Frame struct {

	// Index is the frame number.
	Index int

	// Scene is a copy of the scene with the cube rotations, the orbit
	// angle and the look-at target advanced to this frame.
	Scene *Scene

	// Cubes are the cubes with their model matrices computed.
	Cubes []*primitive.Cube

	Camera *camera.Camera

	// Light is the lighting model, or nil for flat colors.
	Light shade.Model
}

// Frame returns frame n of the animation. The scene itself is not changed.
func (s *Scene) Frame(n int) (*Frame, error) {
	if n < 0 {
		return nil, fmt.Errorf("scene: negative frame %d", n)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := copier.CopyWithOption(sc, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("scene: copying for frame %d: %w", n, err)
	}
	f := &Frame{Index: n, Scene: sc}
	fn := float32(n)

	for i := range sc.Cubes {
		c := &sc.Cubes[i]
		c.Rotation = c.Rotation.Add(c.Spin.MulScalar(fn))
		pc := primitive.NewCube(c.Pos, c.Width, c.Height, c.Depth)
		if c.Rotation.X != 0 {
			pc.SetRotateX(c.Rotation.X, -1)
		}
		if c.Rotation.Y != 0 {
			pc.SetRotateY(c.Rotation.Y, -1)
		}
		if c.Rotation.Z != 0 {
			pc.SetRotateZ(c.Rotation.Z, -1)
		}
		pc.CalcTransformMatrix()
		f.Cubes = append(f.Cubes, pc)
	}

	if err := f.setCamera(); err != nil {
		return nil, fmt.Errorf("scene: frame %d: %w", n, err)
	}

	if l := sc.Light; l != nil {
		switch l.Kind {
		case LightSpot:
			f.Light = &shade.Spot{Position: l.Position, Direction: l.Direction,
				InnerLimit: l.InnerLimit, OuterLimit: l.OuterLimit, Shininess: l.Shininess}
		case LightDirectional:
			f.Light = &shade.Directional{Direction: l.Direction, Ambient: l.Ambient}
		}
	}
	return f, nil
}

func (f *Frame) setCamera() error {
	sc := f.Scene
	sp := &sc.Camera
	cam := camera.New(float32(sc.Width), float32(sc.Height))
	cam.FOV = math32.DegToRad(sp.FOV)
	cam.Near, cam.Far = sp.Near, sp.Far
	cam.UpdateProjection()
	f.Camera = cam

	switch sp.Mode {
	case ModeOrbit:
		o := sc.Orbit
		o.Angle += o.Speed * float32(f.Index)
		pos := camera.Orbit(o.Center, o.Radius, o.Angle, o.Height)
		rot := sp.Rotation
		rot.Y += o.Angle + 90
		return cam.SetTransform(pos, rot, sp.Scale)
	case ModeLookAt:
		if idx := sp.TargetCube; idx >= 0 {
			if sp.TargetPeriod > 0 {
				idx = (idx + f.Index/sp.TargetPeriod) % len(sc.Cubes)
			}
			sp.TargetCube = idx
			sp.Target = sc.Cubes[idx].Pos
		}
		return cam.SetLookAt(sp.Target, sp.Eye)
	}
	return cam.SetTransform(sp.Pos, sp.Rotation, sp.Scale)
}

// Render draws the frame, lighting the cubes when there is a light.
// The cubes share one vertex batch and are drawn by their ranges in it,
// each with its own model matrix.
func (f *Frame) Render() (*image.RGBA, error) {
	r := raster.New(f.Scene.Width, f.Scene.Height)
	bg := f.Scene.Background
	r.Clear(color.RGBA{bg[0], bg[1], bg[2], bg[3]})
	b := primitive.NewBatch(f.Cubes...)
	colors := raster.Colors(b.Colors)
	for i, rg := range b.Ranges {
		model := f.Cubes[i].Matrix
		start, end := rg.Offset, rg.Offset+rg.Count
		positions := b.Vertices[start*3 : end*3]
		var err error
		if f.Light != nil {
			err = r.DrawTrianglesShaded(positions, b.Normals[start*3:end*3], colors[start:end],
				model, f.Camera.Matrix, f.Light, f.Camera.Pos, true)
		} else {
			err = r.DrawTriangles(positions, colors[start:end], f.Camera.Matrix.Mul(model), true)
		}
		if err != nil {
			return nil, fmt.Errorf("scene: drawing cube %d: %w", i, err)
		}
	}
	return r.Image(), nil
}

// Render renders frame n. When supersample is more than 1 the frame is
// rendered at that multiple of the scene size and then reduced.
func (s *Scene) Render(n, supersample int) (*image.RGBA, error) {
	big := s
	if supersample > 1 {
		big = &Scene{}
		*big = *s
		big.Width *= supersample
		big.Height *= supersample
	}
	f, err := big.Frame(n)
	if err != nil {
		return nil, err
	}
	img, err := f.Render()
	if err != nil {
		return nil, err
	}
	if supersample > 1 {
		img = raster.Downsample(img, s.Width, s.Height)
	}
	return img, nil
}
