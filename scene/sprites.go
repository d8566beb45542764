// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/iox/imagex"
	"cogentcore.org/xform/camera"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/primitive"
	"cogentcore.org/xform/raster"
)

// 2D camera modes of a [Sprites] scene.
const (
	// ModePixel converts pixel positions directly to clip space.
	ModePixel = "pixel"

	// ModeUniform translates by Pos, scales, and then rotates pixel
	// positions about the pixel origin before converting them.
	ModeUniform = "uniform"

	// ModeMatrix transforms pixel positions by the 2D camera matrix,
	// so that moving the camera by Pos moves the sprites the other way.
	ModeMatrix = "matrix"
)

// Sprites is a 2D scene of textured rectangles in pixel coordinates,
// with the origin at the top left of the image.
type Sprites struct {
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`

	// Background is the RGBA8 clear color.
	Background [4]uint8 `json:"background" toml:"background" yaml:"background"`

	// Texture is the image file drawn on every sprite, relative to the
	// current directory. The [DefaultTexture] is used when it is empty.
	Texture string `json:"texture,omitempty" toml:"texture,omitempty" yaml:"texture,omitempty"`

	Camera View2D `json:"camera" toml:"camera" yaml:"camera"`

	Sprites []Sprite `json:"sprites" toml:"sprites" yaml:"sprites"`

	// Frames is the number of frames in a full animation.
	Frames int `json:"frames" toml:"frames" yaml:"frames"`
}

// View2D configures the camera of a [Sprites] scene.
type View2D struct {

	// Mode is one of [ModePixel], [ModeUniform] or [ModeMatrix].
	Mode string `json:"mode" toml:"mode" yaml:"mode"`

	// Pos is the sprite translation in [ModeUniform]
	// and the camera position in [ModeMatrix].
	Pos math32.Vector2 `json:"pos" toml:"pos" yaml:"pos"`

	// Rotation is in degrees.
	Rotation float32        `json:"rotation" toml:"rotation" yaml:"rotation"`
	Scale    math32.Vector2 `json:"scale" toml:"scale" yaml:"scale"`
}

// Sprite is a textured rectangle with its top left corner at X, Y.
type Sprite struct {
	X      float32 `json:"x" toml:"x" yaml:"x"`
	Y      float32 `json:"y" toml:"y" yaml:"y"`
	Width  float32 `json:"width" toml:"width" yaml:"width"`
	Height float32 `json:"height" toml:"height" yaml:"height"`

	// Velocity is added to the position every frame.
	Velocity math32.Vector2 `json:"velocity" toml:"velocity" yaml:"velocity"`

	// Wrap, for each positive component, is the coordinate past which
	// the position returns to 0.
	Wrap math32.Vector2 `json:"wrap" toml:"wrap" yaml:"wrap"`
}

// DefaultSprites returns the built-in sprite scene: two sprites seen
// through a moved and rotated matrix camera, on a transparent background.
func DefaultSprites() *Sprites {
	return &Sprites{
		Width:  400,
		Height: 300,
		Camera: View2D{
			Mode:     ModeMatrix,
			Pos:      math32.Vec2(-20, -20),
			Rotation: 20,
			Scale:    math32.Vec2(1, 1),
		},
		Sprites: []Sprite{
			{Width: 100, Height: 100},
			{Y: 100, Width: 50, Height: 50},
		},
		Frames: 1,
	}
}

// DefaultTexture returns the built-in texture: one red and one blue texel
// side by side.
func DefaultTexture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})
	return img
}

// Validate returns an error describing everything wrong with the scene.
func (s *Sprites) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", s.Width, s.Height))
	}
	c := &s.Camera
	switch c.Mode {
	case ModePixel:
	case ModeUniform, ModeMatrix:
		if c.Scale.X == 0 || c.Scale.Y == 0 {
			errs = append(errs, fmt.Errorf("camera scale %v must not be zero", c.Scale))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown 2D camera mode %q", c.Mode))
	}
	for i, sp := range s.Sprites {
		if sp.Width <= 0 || sp.Height <= 0 {
			errs = append(errs, fmt.Errorf("sprite %d size %gx%g must be positive", i, sp.Width, sp.Height))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid sprite scene: %w", err)
	}
	return nil
}

// LoadTexture opens the Texture file, or returns the [DefaultTexture].
func (s *Sprites) LoadTexture() (image.Image, error) {
	if s.Texture == "" {
		return DefaultTexture(), nil
	}
	img, _, err := imagex.Open(s.Texture)
	if err != nil {
		return nil, fmt.Errorf("scene: sprite texture: %w", err)
	}
	return img, nil
}

// Position returns the top left corner of the sprite at frame n.
func (sp *Sprite) Position(n int) math32.Vector2 {
	p := math32.Vec2(sp.X, sp.Y)
	if sp.Velocity == (math32.Vector2{}) {
		return p
	}
	for range n {
		p = p.Add(sp.Velocity)
		if sp.Wrap.X > 0 && p.X > sp.Wrap.X {
			p.X = 0
		}
		if sp.Wrap.Y > 0 && p.Y > sp.Wrap.Y {
			p.Y = 0
		}
	}
	return p
}

// projector returns the function that maps pixel positions
// to clip space for the camera mode.
func (s *Sprites) projector() func(p math32.Vector2) math32.Vector2 {
	res := math32.Vec2(float32(s.Width), float32(s.Height))
	v := &s.Camera
	switch v.Mode {
	case ModeUniform:
		u := camera.NewUniform2D()
		u.Translation = v.Pos
		u.Scale = v.Scale
		u.SetRotation(v.Rotation)
		return func(p math32.Vector2) math32.Vector2 { return u.Apply(p, res) }
	case ModeMatrix:
		c := camera.NewCamera2D(res.X, res.Y)
		c.SetTransform(v.Pos, v.Rotation, v.Scale)
		return c.Project
	}
	return func(p math32.Vector2) math32.Vector2 { return camera.PixelToClip(p, res, true) }
}

// Render draws frame n of the scene with every sprite showing tex.
// Later sprites are drawn over earlier ones.
func (s *Sprites) Render(n int, tex image.Image) (*image.RGBA, error) {
	if n < 0 {
		return nil, fmt.Errorf("scene: negative frame %d", n)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	project := s.projector()
	r := raster.New(s.Width, s.Height)
	bg := s.Background
	r.Clear(color.RGBA{bg[0], bg[1], bg[2], bg[3]})
	for i := range s.Sprites {
		sp := &s.Sprites[i]
		p := sp.Position(n)
		ps := primitive.Sprite{X: p.X, Y: p.Y, Width: sp.Width, Height: sp.Height}
		rect := ps.Rectangle()
		// nearer for each later sprite, so that it passes the depth test
		z := -float32(i) / float32(len(s.Sprites))
		positions := make([]float32, 0, len(rect)/2*3)
		for j := 0; j < len(rect); j += 2 {
			c := project(math32.Vec2(rect[j], rect[j+1]))
			positions = append(positions, c.X, c.Y, z)
		}
		if err := r.DrawTrianglesTextured(positions, ps.TexCoords(), tex, math32.Identity4(), false); err != nil {
			return nil, fmt.Errorf("scene: drawing sprite %d: %w", i, err)
		}
	}
	return r.Image(), nil
}
