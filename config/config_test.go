// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, "xform.png", c.Output)
	assert.Equal(t, "frames", c.OutputDir)
	assert.Equal(t, 1, c.Supersample)
	assert.Equal(t, []string{"gaussianBlur", "emboss", "gaussianBlur", "unsharpen"}, c.Effects)
	assert.Equal(t, 0, c.Frame)
	assert.False(t, c.Log.Verbose)
	assert.Empty(t, c.Texture)

	// defaults overwrite tagged fields only
	c.Output, c.Frame = "other.png", 3
	require.NoError(t, setDefaults(c))
	assert.Equal(t, "xform.png", c.Output)
	assert.Equal(t, 3, c.Frame)
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0644))
	}
	return dir
}

func TestOpen(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"xform.toml": `
includes = ["render.toml"]
output = "main.png"
`,
		"render.toml": `
includes = ["base.toml"]
output = "render.png"
supersample = 4
`,
		"base.toml": `
supersample = 2
frames = 30
width = 320
`,
	})
	c := New()
	require.NoError(t, Open(c, "xform.toml", []string{dir}))
	assert.Equal(t, "main.png", c.Output)
	assert.Equal(t, 4, c.Supersample)
	assert.Equal(t, 30, c.Frames)
	assert.Equal(t, 320, c.Width)
	assert.Equal(t, "frames", c.OutputDir)
	assert.Equal(t, []string{"render.toml", "base.toml"}, c.Includes)
}

func TestOpenErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"missing.toml": `includes = ["nothere.toml"]`,
		"unknown.toml": `colour = "red"`,
		"loop.toml":    `includes = ["loop.toml"]`,
	})
	paths := []string{dir}
	assert.ErrorContains(t, Open(New(), "none.toml", paths), "no files found")
	assert.ErrorContains(t, Open(New(), "missing.toml", paths), "nothere.toml")
	assert.Error(t, Open(New(), "unknown.toml", paths))
	assert.ErrorContains(t, Open(New(), "loop.toml", paths), "nested")
}

func TestFindFileOnPaths(t *testing.T) {
	a := writeFiles(t, map[string]string{"a.toml": ""})
	b := writeFiles(t, map[string]string{"a.toml": "", "b.toml": ""})
	assert.Equal(t, []string{filepath.Join(a, "a.toml"), filepath.Join(b, "a.toml")}, FindFileOnPaths([]string{a, b}, "a.toml"))
	assert.Equal(t, []string{filepath.Join(b, "b.toml")}, FindFileOnPaths([]string{a, b}, "b.toml"))
	assert.Empty(t, FindFileOnPaths([]string{a}, "c.toml"))
	abs := filepath.Join(b, "b.toml")
	assert.Equal(t, []string{abs}, FindFileOnPaths(nil, abs))
}
