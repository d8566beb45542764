// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the xform tool:
// the settings struct with its defaults, and loading it from TOML
// files that can include other files.
package config

import (
	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/reflectx"
)

// Config is the configuration of the xform tool. Values come from
// the `default:` tags, then the config file, then command line flags.
type Config struct {

	// Includes are other config files to load before this one,
	// so that settings here override the included ones.
	Includes []string `toml:"includes"`

	// Scene is the scene file to use; the built-in scene when empty.
	Scene string `toml:"scene"`

	// Output is the image file to render to.
	Output string `toml:"output" default:"xform.png"`

	// OutputDir is the directory for animation frames.
	OutputDir string `toml:"outputDir" default:"frames"`

	// Frame is the animation frame to render.
	Frame int `toml:"frame"`

	// Frames is the number of frames to render; the scene's count when 0.
	Frames int `toml:"frames"`

	// Supersample renders at this multiple of the size and reduces the result.
	Supersample int `toml:"supersample" default:"1"`

	// Width and Height override the scene size when positive.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Texture is the image drawn on the sprites by the sprite command,
	// overriding the sprite scene's texture when set.
	Texture string `toml:"texture"`

	// Effects are the kernels applied by the effects command.
	Effects []string `toml:"effects" default:"gaussianBlur,emboss,gaussianBlur,unsharpen"`

	Log Log `toml:"log"`
}

// Log configures the logging level.
type Log struct {

	// Verbose logs informational messages.
	Verbose bool `toml:"verbose"`

	// VeryVerbose logs debugging messages.
	VeryVerbose bool `toml:"veryVerbose"`

	// Quiet logs only errors.
	Quiet bool `toml:"quiet"`
}

// IncludesPtr implements [Includer].
func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// New returns a new config with its default values.
func New() *Config {
	c := &Config{}
	setDefaults(c)
	return c
}

// setDefaults sets the fields of c from their `default:` tags,
// logging any malformed tag.
func setDefaults(c *Config) error {
	return errors.Log(reflectx.SetFromDefaultTags(c))
}
