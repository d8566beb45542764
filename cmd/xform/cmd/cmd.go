// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the xform tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/iox/imagex"
	"cogentcore.org/xform/config"
	"cogentcore.org/xform/effect"
	"cogentcore.org/xform/scene"
	"github.com/muesli/termenv"
)

// Scene returns the configured scene, or the built-in one,
// with the configured size overrides applied.
func Scene(c *config.Config) (*scene.Scene, error) {
	s := scene.Default()
	if c.Scene != "" {
		var err error
		s, err = scene.Open(c.Scene)
		if err != nil {
			return nil, err
		}
	}
	resize(c, s)
	return s, nil
}

func resize(c *config.Config, s *scene.Scene) {
	if c.Width > 0 {
		s.Width = c.Width
	}
	if c.Height > 0 {
		s.Height = c.Height
	}
}

// Render renders one frame of the scene to the output file.
func Render(c *config.Config) error {
	s, err := Scene(c)
	if err != nil {
		return err
	}
	img, err := s.Render(c.Frame, c.Supersample)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("rendered", "frame", c.Frame, "file", c.Output)
	return nil
}

// Sprites returns the configured sprite scene, or the built-in one,
// with the configured size and texture overrides applied.
func Sprites(c *config.Config) (*scene.Sprites, error) {
	s := scene.DefaultSprites()
	if c.Scene != "" {
		var err error
		s, err = scene.OpenSprites(c.Scene)
		if err != nil {
			return nil, err
		}
	}
	if c.Width > 0 {
		s.Width = c.Width
	}
	if c.Height > 0 {
		s.Height = c.Height
	}
	if c.Texture != "" {
		s.Texture = c.Texture
	}
	return s, nil
}

// Sprite renders one frame of the sprite scene to the output file.
func Sprite(c *config.Config) error {
	s, err := Sprites(c)
	if err != nil {
		return err
	}
	tex, err := s.LoadTexture()
	if err != nil {
		return err
	}
	img, err := s.Render(c.Frame, tex)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("rendered sprites", "frame", c.Frame, "file", c.Output)
	return nil
}

// Frames renders consecutive frames of the scene, starting at the
// configured frame, to numbered PNG files in the output directory.
func Frames(c *config.Config) error {
	s, err := Scene(c)
	if err != nil {
		return err
	}
	n := c.Frames
	if n <= 0 {
		n = s.Frames
	}
	if n <= 0 {
		return errors.New("frames: no frame count in the config or the scene")
	}
	if err := os.MkdirAll(c.OutputDir, 0750); err != nil {
		return err
	}
	for i := range n {
		img, err := s.Render(c.Frame+i, c.Supersample)
		if err != nil {
			return err
		}
		fn := filepath.Join(c.OutputDir, fmt.Sprintf("frame%04d.png", i))
		if err := imagex.Save(img, fn); err != nil {
			return err
		}
		slog.Debug("rendered", "frame", c.Frame+i, "file", fn)
	}
	slog.Info("rendered frames", "count", n, "dir", c.OutputDir)
	return nil
}

// Matrix prints the camera matrices and the model and
// model-view-projection matrix of every cube for the frame.
func Matrix(c *config.Config, w io.Writer) error {
	s, err := Scene(c)
	if err != nil {
		return err
	}
	f, err := s.Frame(c.Frame)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	title := func(format string, args ...any) {
		fmt.Fprintln(w, out.String(fmt.Sprintf(format, args...)).Bold().Foreground(out.Color("6")))
	}
	title("frame %d", f.Index)
	fmt.Fprintf(w, "camera position %v\n", f.Camera.Pos)
	title("view")
	fmt.Fprint(w, f.Camera.View)
	title("projection")
	fmt.Fprint(w, f.Camera.Projection)
	title("view-projection")
	fmt.Fprint(w, f.Camera.Matrix)
	for i, cube := range f.Cubes {
		title("cube %d model", i)
		fmt.Fprint(w, cube.Matrix)
		title("cube %d model-view-projection", i)
		fmt.Fprint(w, f.Camera.Matrix.Mul(cube.Matrix))
	}
	return nil
}

// Effects applies the configured effect chain to the image in the
// input file and saves it to the output file, resized when a size
// is configured.
func Effects(c *config.Config, in, out string) error {
	names := c.Effects
	if len(names) == 0 {
		names = effect.DefaultChain
	}
	img, _, err := imagex.Open(in)
	if err != nil {
		return err
	}
	res, err := effect.Chain(img, names...)
	if err != nil {
		return err
	}
	if c.Width > 0 && c.Height > 0 {
		res = effect.Resize(res, c.Width, c.Height)
	}
	if err := imagex.Save(res, out); err != nil {
		return err
	}
	slog.Info("applied effects", "effects", names, "file", out)
	return nil
}

// Watch renders the scene file to the output file, and again each
// time the scene file changes, until ctx is done.
func Watch(ctx context.Context, c *config.Config) error {
	if c.Scene == "" {
		return errors.New("watch: no scene file given")
	}
	return scene.Watch(ctx, c.Scene, func(s *scene.Scene) {
		resize(c, s)
		img, err := s.Render(c.Frame, c.Supersample)
		if errors.Log(err) != nil {
			return
		}
		if errors.Log(imagex.Save(img, c.Output)) == nil {
			slog.Info("rendered", "file", c.Output)
		}
	})
}
