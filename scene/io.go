// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/xform/base/iox"
	"cogentcore.org/xform/base/iox/jsonx"
	"cogentcore.org/xform/base/iox/tomlx"
	"cogentcore.org/xform/base/iox/yamlx"
)

// Format is a scene file format.
type Format string

// The supported scene file formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromFilename returns the format for the extension of the given filename.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("scene: unsupported file extension for %q (must be .toml, .yaml, .yml or .json)", filename)
}

func (f Format) decoder() iox.DecoderFunc {
	switch f {
	case YAML:
		return yamlx.NewDecoder
	case JSON:
		return jsonx.NewDecoder
	}
	return tomlx.NewDecoder
}

func (f Format) encoder() iox.EncoderFunc {
	switch f {
	case YAML:
		return yamlx.NewEncoder
	case JSON:
		return jsonx.NewEncoder
	}
	return tomlx.NewEncoder
}

// base returns the scene that files are decoded onto: the [Default]
// settings without any cubes, so that the file lists all of the cubes.
func base() *Scene {
	s := Default()
	s.Cubes = nil
	return s
}

// validator is a scene that can check itself after decoding.
type validator interface {
	Validate() error
}

func validated[T validator](v T) (T, error) {
	if err := v.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// decodeFile decodes the file onto v, in the format given by its extension.
func decodeFile(v any, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	return iox.Open(v, filename, f.decoder())
}

// decodeFS is like decodeFile, reading from fsys.
func decodeFS(v any, fsys fs.FS, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	return iox.OpenFS(v, fsys, filename, f.decoder())
}

// encodeFile encodes v to the file, in the format given by its extension.
func encodeFile(v any, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	return iox.Save(v, filename, f.encoder())
}

// Open opens the scene in the given file, in the format given by its
// extension. Settings missing from the file keep their [Default] values,
// except for the cubes.
func Open(filename string) (*Scene, error) {
	s := base()
	if err := decodeFile(s, filename); err != nil {
		return nil, err
	}
	return validated(s)
}

// OpenFS is like [Open] but opens the file from the given filesystem.
func OpenFS(fsys fs.FS, filename string) (*Scene, error) {
	s := base()
	if err := decodeFS(s, fsys, filename); err != nil {
		return nil, err
	}
	return validated(s)
}

// Read reads a scene in the given format, like [Open].
func Read(r io.Reader, f Format) (*Scene, error) {
	s := base()
	if err := iox.Read(s, r, f.decoder()); err != nil {
		return nil, err
	}
	return validated(s)
}

// Save saves the scene to the given file, in the format given by its extension.
func (s *Scene) Save(filename string) error {
	return encodeFile(s, filename)
}

// Write writes the scene in the given format.
func (s *Scene) Write(w io.Writer, f Format) error {
	return iox.Write(s, w, f.encoder())
}

// baseSprites is the sprite scene that files are decoded onto:
// the [DefaultSprites] settings without any sprites.
func baseSprites() *Sprites {
	s := DefaultSprites()
	s.Sprites = nil
	return s
}

// OpenSprites opens the sprite scene in the given file, like [Open].
// Settings missing from the file keep their [DefaultSprites] values,
// except for the sprites.
func OpenSprites(filename string) (*Sprites, error) {
	s := baseSprites()
	if err := decodeFile(s, filename); err != nil {
		return nil, err
	}
	return validated(s)
}

// ReadSprites reads a sprite scene in the given format, like [OpenSprites].
func ReadSprites(r io.Reader, f Format) (*Sprites, error) {
	s := baseSprites()
	if err := iox.Read(s, r, f.decoder()); err != nil {
		return nil, err
	}
	return validated(s)
}

// Save saves the sprite scene to the given file, in the format given
// by its extension.
func (s *Sprites) Save(filename string) error {
	return encodeFile(s, filename)
}
