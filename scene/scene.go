// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides declarative cube scenes that are loaded from
// TOML, YAML or JSON files, animated frame by frame, and rendered with
// the software rasterizer.
package scene

import (
	"fmt"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/math32"
)

// Camera modes.
const (
	// ModeTransform places the camera with Pos, Rotation and Scale.
	ModeTransform = "transform"

	// ModeOrbit moves the camera around the scene's Orbit, turning it
	// to keep facing the orbit center.
	ModeOrbit = "orbit"

	// ModeLookAt points the camera from Eye at Target, or at one of the cubes.
	ModeLookAt = "lookat"
)

// Scene is a set of cubes seen through a camera, optionally lit.
type Scene struct {

	// Width and Height are the size of the rendered image in pixels.
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`

	// Background is the RGBA8 clear color.
	Background [4]uint8 `json:"background" toml:"background" yaml:"background"`

	Camera Camera `json:"camera" toml:"camera" yaml:"camera"`

	Cubes []Cube `json:"cubes" toml:"cubes" yaml:"cubes"`

	// Light lights the cubes; without one they are drawn in flat color.
	Light *Light `json:"light,omitempty" toml:"light,omitempty" yaml:"light,omitempty"`

	// Orbit is the camera path in [ModeOrbit].
	Orbit *Orbit `json:"orbit,omitempty" toml:"orbit,omitempty" yaml:"orbit,omitempty"`

	// Frames is the number of frames in a full animation.
	Frames int `json:"frames" toml:"frames" yaml:"frames"`
}

// Camera configures the scene camera.
type Camera struct {

	// Mode is one of [ModeTransform], [ModeOrbit] or [ModeLookAt].
	Mode string `json:"mode" toml:"mode" yaml:"mode"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `json:"fov" toml:"fov" yaml:"fov"`

	Near float32 `json:"near" toml:"near" yaml:"near"`
	Far  float32 `json:"far" toml:"far" yaml:"far"`

	// Pos, Rotation (degrees) and Scale place the camera in [ModeTransform].
	// In [ModeOrbit], Rotation is added to the orbit heading.
	Pos      math32.Vector3 `json:"pos" toml:"pos" yaml:"pos"`
	Rotation math32.Vector3 `json:"rotation" toml:"rotation" yaml:"rotation"`
	Scale    math32.Vector3 `json:"scale" toml:"scale" yaml:"scale"`

	// Eye is the camera position in [ModeLookAt].
	Eye math32.Vector3 `json:"eye" toml:"eye" yaml:"eye"`

	// Target is the point looked at when TargetCube is negative.
	Target math32.Vector3 `json:"target" toml:"target" yaml:"target"`

	// TargetCube is the index of the cube to look at.
	TargetCube int `json:"targetCube" toml:"targetCube" yaml:"targetCube"`

	// TargetPeriod, when positive, is the number of frames to look at each
	// cube before moving on to the next one, starting from TargetCube.
	TargetPeriod int `json:"targetPeriod" toml:"targetPeriod" yaml:"targetPeriod"`
}

// Cube is a box in the scene, spinning about its center.
type Cube struct {
	Pos    math32.Vector3 `json:"pos" toml:"pos" yaml:"pos"`
	Width  float32        `json:"width" toml:"width" yaml:"width"`
	Height float32        `json:"height" toml:"height" yaml:"height"`
	Depth  float32        `json:"depth" toml:"depth" yaml:"depth"`

	// Rotation is the rotation about the X, Y and Z axes in degrees.
	Rotation math32.Vector3 `json:"rotation" toml:"rotation" yaml:"rotation"`

	// Spin is added to Rotation every frame.
	Spin math32.Vector3 `json:"spin" toml:"spin" yaml:"spin"`
}

// Light kinds.
const (
	LightSpot        = "spot"
	LightDirectional = "directional"
)

// Light configures the lighting model.
type Light struct {

	// Kind is [LightSpot] or [LightDirectional].
	Kind string `json:"kind" toml:"kind" yaml:"kind"`

	Position  math32.Vector3 `json:"position" toml:"position" yaml:"position"`
	Direction math32.Vector3 `json:"direction" toml:"direction" yaml:"direction"`

	// InnerLimit and OuterLimit are the cosines of the spot edge.
	InnerLimit float32 `json:"innerLimit" toml:"innerLimit" yaml:"innerLimit"`
	OuterLimit float32 `json:"outerLimit" toml:"outerLimit" yaml:"outerLimit"`
	Shininess  float32 `json:"shininess" toml:"shininess" yaml:"shininess"`

	// Ambient is the minimum brightness of a directional light.
	Ambient float32 `json:"ambient" toml:"ambient" yaml:"ambient"`
}

// Orbit is a circular camera path around Center, at Height above it.
type Orbit struct {
	Center math32.Vector3 `json:"center" toml:"center" yaml:"center"`
	Radius float32        `json:"radius" toml:"radius" yaml:"radius"`
	Height float32        `json:"height" toml:"height" yaml:"height"`

	// Angle is the starting angle in degrees and Speed is added to it every frame.
	Angle float32 `json:"angle" toml:"angle" yaml:"angle"`
	Speed float32 `json:"speed" toml:"speed" yaml:"speed"`
}

// Default returns the four cube scene: the cubes spin about their
// Z axes while the camera looks at each in turn from above.
func Default() *Scene {
	s := &Scene{
		Width:      800,
		Height:     600,
		Background: [4]uint8{0, 0, 0, 255},
		Camera: Camera{
			Mode:         ModeLookAt,
			FOV:          50,
			Near:         1,
			Far:          2000,
			Scale:        math32.Vec3(1, 1, 1),
			Eye:          math32.Vec3(500, 500, 0),
			TargetPeriod: 100,
		},
		Orbit: &Orbit{
			Radius: 500,
			Height: 300,
			Speed:  0.5,
		},
		Frames: 400,
	}
	for i, p := range []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(0, 0, -300), math32.Vec3(-150, 0, -150), math32.Vec3(150, 0, -150),
	} {
		// each cube is one degree ahead of the one before it
		s.Cubes = append(s.Cubes, Cube{
			Pos: p, Width: 50, Height: 50, Depth: 50,
			Rotation: math32.Vec3(0, 0, float32(i)),
			Spin:     math32.Vec3(0, 0, 4),
		})
	}
	return s
}

// DefaultLit returns a single flat box under a spot light.
func DefaultLit() *Scene {
	return &Scene{
		Width:      800,
		Height:     600,
		Background: [4]uint8{0, 0, 0, 255},
		Camera: Camera{
			Mode:  ModeLookAt,
			FOV:   50,
			Near:  1,
			Far:   2000,
			Scale: math32.Vec3(1, 1, 1),
			Eye:   math32.Vec3(500, 500, 0),
		},
		Cubes: []Cube{{Width: 250, Height: 50, Depth: 250}},
		Light: &Light{
			Kind:       LightSpot,
			Position:   math32.Vec3(0, 100, 0),
			Direction:  math32.Vec3(0, -1, 0),
			InnerLimit: 0.5,
			OuterLimit: 0.9,
			Shininess:  30,
		},
		Frames: 1,
	}
}

// Validate returns an error describing every invalid setting.
func (s *Scene) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", s.Width, s.Height))
	}
	c := &s.Camera
	switch c.Mode {
	case ModeTransform, ModeLookAt:
	case ModeOrbit:
		if s.Orbit == nil {
			errs = append(errs, errors.New("orbit camera mode needs an orbit"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown camera mode %q", c.Mode))
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("field of view %g must be between 0 and 180 degrees", c.FOV))
	}
	if c.Near <= 0 || c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("clip planes near %g and far %g must satisfy 0 < near < far", c.Near, c.Far))
	}
	if c.Mode == ModeLookAt && c.TargetCube >= len(s.Cubes) {
		errs = append(errs, fmt.Errorf("target cube %d out of range with %d cubes", c.TargetCube, len(s.Cubes)))
	}
	if s.Light != nil && s.Light.Kind != LightSpot && s.Light.Kind != LightDirectional {
		errs = append(errs, fmt.Errorf("unknown light kind %q", s.Light.Kind))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}
	return nil
}
