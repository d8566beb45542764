// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, f := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".tiff": TIFF, "bmp": BMP, ".webp": WebP, "gif": GIF} {
		got, err := ExtToFormat(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, f, got, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "TIFF", TIFF.String())
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{200, 10, 20, 255})
	dir := t.TempDir()
	for _, ext := range []string{"png", "bmp", "tiff"} {
		fn := filepath.Join(dir, "frame."+ext)
		require.NoError(t, Save(img, fn))
		got, f, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, ext, map[Formats]string{PNG: "png", BMP: "bmp", TIFF: "tiff"}[f])
		assert.Equal(t, img.Bounds(), got.Bounds())
		assert.Equal(t, color.RGBA{200, 10, 20, 255}, color.RGBAModel.Convert(got.At(1, 2)))
	}
	assert.Error(t, Save(img, filepath.Join(dir, "frame.webp")))
}

func TestReadNotImage(t *testing.T) {
	_, f, err := Read(strings.NewReader("%PDF-1.4\n%some document"))
	assert.ErrorContains(t, err, "application/pdf")
	assert.Equal(t, None, f)

	_, _, err = Read(strings.NewReader("plain text"))
	assert.Error(t, err)
}

// recordT records the errors reported through [TestingT].
type recordT struct {
	errs []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	update := UpdateTestImages
	t.Cleanup(func() { UpdateTestImages = update })
	UpdateTestImages = false
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	rt := &recordT{}
	Assert(rt, img, "blank")
	assert.Len(t, rt.errs, 1, "a missing expected image fails")
	assert.NoFileExists(t, filepath.Join("testdata", "blank.png"))
	assert.FileExists(t, filepath.Join("testdata", "blank.fail.png"))

	rt = &recordT{}
	UpdateTestImages = true
	Assert(rt, img, "blank")
	UpdateTestImages = false
	assert.Empty(t, rt.errs)
	assert.FileExists(t, filepath.Join("testdata", "blank.png"))
	assert.NoFileExists(t, filepath.Join("testdata", "blank.fail.png"))

	Assert(rt, img, "blank")
	assert.Empty(t, rt.errs)

	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	Assert(rt, img, "blank")
	assert.Len(t, rt.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "blank.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "blank.diff.png"))
}
