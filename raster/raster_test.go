// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"cogentcore.org/xform/base/iox/imagex"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/shade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = math32.Vec4(1, 0, 0, 1)
	green = math32.Vec4(0, 1, 0, 1)
	blue  = math32.Vec4(0, 0, 1, 1)
	grey  = color.RGBA{50, 50, 50, 255}
)

func solid(c math32.Vector4, n int) []math32.Vector4 {
	cs := make([]math32.Vector4, n)
	for i := range cs {
		cs[i] = c
	}
	return cs
}

// fullScreen is a counter-clockwise triangle covering all of
// device space at depth z.
func fullScreen(z float32) []float32 {
	return []float32{-1, -1, z, 3, -1, z, -1, 3, z}
}

func TestClear(t *testing.T) {
	r := New(4, 3)
	assert.Equal(t, image.Rect(0, 0, 4, 3), r.Image().Bounds())
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(1, 1))
	r.Clear(grey)
	assert.Equal(t, grey, r.Image().RGBAAt(3, 2))
}

func TestDrawTriangle(t *testing.T) {
	r := New(10, 10)
	r.Clear(grey)
	tri := []float32{-1, -1, 0, 1, -1, 0, -1, 1, 0}
	require.NoError(t, r.DrawTriangles(tri, solid(red, 3), math32.Identity4(), true))
	// the triangle covers the lower left half of the image
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, r.Image().RGBAAt(1, 8))
	assert.Equal(t, grey, r.Image().RGBAAt(8, 1))
}

func TestCull(t *testing.T) {
	cw := []float32{-1, -1, 0, -1, 1, 0, 1, -1, 0}
	r := New(10, 10)
	require.NoError(t, r.DrawTriangles(cw, solid(red, 3), math32.Identity4(), true))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(1, 8))

	require.NoError(t, r.DrawTriangles(cw, solid(red, 3), math32.Identity4(), false))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, r.Image().RGBAAt(1, 8))
}

func TestDepth(t *testing.T) {
	for _, nearFirst := range []bool{true, false} {
		r := New(8, 8)
		near := func() { require.NoError(t, r.DrawTriangles(fullScreen(-0.5), solid(blue, 3), math32.Identity4(), true)) }
		far := func() { require.NoError(t, r.DrawTriangles(fullScreen(0.5), solid(red, 3), math32.Identity4(), true)) }
		if nearFirst {
			near()
			far()
		} else {
			far()
			near()
		}
		assert.Equal(t, color.RGBA{0, 0, 255, 255}, r.Image().RGBAAt(4, 4), "near first: %v", nearFirst)
	}

	// outside the clip volume
	r := New(8, 8)
	require.NoError(t, r.DrawTriangles(fullScreen(1.5), solid(red, 3), math32.Identity4(), true))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(4, 4))
}

func TestBehindEye(t *testing.T) {
	mvp := math32.Identity4()
	mvp[15] = -1
	r := New(8, 8)
	require.NoError(t, r.DrawTriangles(fullScreen(0), solid(red, 3), mvp, false))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(4, 4))
}

func TestInterpolate(t *testing.T) {
	r := New(10, 10)
	require.NoError(t, r.DrawTriangles(fullScreen(0), []math32.Vector4{red, green, blue}, math32.Identity4(), true))
	// pixel (4, 4) is at device (-0.1, 0.1)
	got := r.Image().RGBAAt(4, 4)
	assert.True(t, imagex.CompareColors(color.RGBA{128, 57, 70, 255}, got, 1), "%v", got)
}

func TestPerspective(t *testing.T) {
	c := float32(300)
	// a green square facing the camera
	sq := []float32{
		-c, -c, -500, c, -c, -500, c, c, -500,
		-c, -c, -500, c, c, -500, -c, c, -500,
	}
	mvp := math32.Perspective(math32.DegToRad(90), 1, 1, 2000)
	r := New(20, 20)
	require.NoError(t, r.DrawTriangles(sq, solid(green, 6), mvp, true))
	// 300 at distance 500 with a 90 degree field of view spans 60% of the view
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, r.Image().RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, r.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(17, 17))
}

func TestDrawErrors(t *testing.T) {
	r := New(4, 4)
	assert.Error(t, r.DrawTriangles([]float32{0, 0, 0}, solid(red, 1), math32.Identity4(), true))
	assert.Error(t, r.DrawTriangles(fullScreen(0), solid(red, 2), math32.Identity4(), true))
}

func TestWritePNG(t *testing.T) {
	r := New(3, 2)
	r.Clear(grey)
	var b bytes.Buffer
	require.NoError(t, r.WritePNG(&b))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestColors(t *testing.T) {
	cs := Colors([]uint8{255, 0, 0, 255, 0, 255, 255, 0})
	assert.Equal(t, []math32.Vector4{red, math32.Vec4(0, 1, 1, 0)}, cs)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, ToRGBA(red))
	assert.Equal(t, color.RGBA{255, 0, 128, 255}, ToRGBA(math32.Vec4(2, -1, 0.5, 1)))
}

func TestToRGBAPremultiplied(t *testing.T) {
	assert.Equal(t, color.RGBA{128, 64, 0, 128}, ToRGBA(math32.Vec4(1, 0.5, 0, 0.5)))
	assert.Equal(t, color.RGBA{}, ToRGBA(math32.Vec4(1, 1, 1, 0)))

	// a half transparent triangle reads back as the same straight color
	r := New(4, 4)
	require.NoError(t, r.DrawTriangles(fullScreen(0), solid(math32.Vec4(1, 0, 0, 0.5), 3), math32.Identity4(), true))
	nc := color.NRGBAModel.Convert(r.Image().At(1, 1)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, nc)
}

// quad is two counter-clockwise triangles covering device space at
// z = 0, with normals facing the viewer and texture coordinates
// putting the top left of the texture at the top left of the image.
var quad = struct{ positions, normals, uvs []float32 }{
	positions: []float32{-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, -1, 0, 1, 1, 0, -1, 1, 0},
	normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
	uvs:       []float32{0, 1, 1, 1, 1, 0, 0, 1, 1, 0, 0, 0},
}

func TestDrawShaded(t *testing.T) {
	// a spot light close to the quad lights its center but none of its corners
	spot := &shade.Spot{
		Position:   math32.Vec3(0, 0, 0.5),
		Direction:  math32.Vec3(0, 0, -1),
		InnerLimit: 0.5,
		OuterLimit: 0.9,
		Shininess:  30,
	}
	id := math32.Identity4()
	viewPos := math32.Vec3(0, 0, 5)
	for i := range 6 {
		c := spot.Shade(red, math32.Vec3(0, 0, 1), math32.Vector3FromSlice(quad.positions, i*3), viewPos)
		assert.Equal(t, math32.Vec4(0, 0, 0, 1), c, "corner %d", i)
	}

	r := New(10, 10)
	r.Clear(grey)
	require.NoError(t, r.DrawTrianglesShaded(quad.positions, quad.normals, solid(red, 6), id, id, spot, viewPos, true))
	center := r.Image().RGBAAt(5, 5)
	assert.Equal(t, uint8(255), center.R)
	assert.Greater(t, center.G, uint8(200))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, r.Image().RGBAAt(0, 0))

	// moving the quad away from the light through the model matrix
	// brings the corners into the cone
	r.Clear(grey)
	require.NoError(t, r.DrawTrianglesShaded(quad.positions, quad.normals, solid(red, 6), math32.Translate3D(0, 0, -0.9), id, spot, viewPos, true))
	assert.Greater(t, r.Image().RGBAAt(0, 0).R, uint8(0))

	assert.Error(t, r.DrawTrianglesShaded(quad.positions, quad.normals[:9], solid(red, 6), id, id, spot, viewPos, true))
	assert.ErrorIs(t, r.DrawTrianglesShaded(quad.positions, quad.normals, solid(red, 6), math32.Matrix4{}, id, spot, viewPos, true), math32.ErrSingular)
}

func redBlue() *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})
	return tex
}

func TestSample(t *testing.T) {
	tex := redBlue()
	assert.Equal(t, red, Sample(tex, math32.Vec2(0.25, 0.5)))
	assert.Equal(t, blue, Sample(tex, math32.Vec2(0.5, 0.5)))
	assert.Equal(t, blue, Sample(tex, math32.Vec2(0.75, 0.5)))
	// clamped to the edge
	assert.Equal(t, red, Sample(tex, math32.Vec2(-1, 2)))
	assert.Equal(t, blue, Sample(tex, math32.Vec2(5, -3)))
	// bounds not at the origin
	assert.Equal(t, blue, Sample(tex.SubImage(image.Rect(1, 0, 2, 1)), math32.Vec2(0, 0)))
}

func TestDrawTextured(t *testing.T) {
	r := New(10, 10)
	require.NoError(t, r.DrawTrianglesTextured(quad.positions, quad.uvs, redBlue(), math32.Identity4(), false))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, r.Image().RGBAAt(2, 5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, r.Image().RGBAAt(7, 5))

	assert.Error(t, r.DrawTrianglesTextured(quad.positions, quad.uvs[:4], redBlue(), math32.Identity4(), false))
	assert.Error(t, r.DrawTrianglesTextured(quad.positions, quad.uvs, image.NewNRGBA(image.Rectangle{}), math32.Identity4(), false))
}

func TestDownsample(t *testing.T) {
	r := New(8, 8)
	r.Clear(grey)
	d := Downsample(r.Image(), 4, 4)
	assert.Equal(t, image.Rect(0, 0, 4, 4), d.Bounds())
	assert.True(t, imagex.CompareColors(grey, d.RGBAAt(2, 2), 1))
}
