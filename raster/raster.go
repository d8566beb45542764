// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a small software rasterizer that draws
// triangles through a model-view-projection matrix into an image, with
// a depth buffer and back-face culling, following the conventions of a
// GL draw call. Pixels are colored from interpolated vertex colors, by
// a lighting model, or from a texture.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/iox/imagex"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/shade"
	"golang.org/x/image/draw"
)

// Rasterizer draws triangles into an RGBA image with a depth buffer.
type Rasterizer struct {
	Width  int
	Height int

	img   *image.RGBA
	depth []float32
}

// New returns a new rasterizer with the given size in pixels,
// cleared to transparent black.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
	}
	r.Clear(color.RGBA{})
	return r
}

// Clear fills the image with the given color and resets the depth buffer.
func (r *Rasterizer) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	for i := range r.depth {
		r.depth[i] = math.MaxFloat32
	}
}

// Image returns the rendered image. It is owned by the rasterizer
// and changes with subsequent draws.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// WritePNG encodes the rendered image as PNG to w.
func (r *Rasterizer) WritePNG(w io.Writer) error {
	return imagex.Write(r.img, w, imagex.PNG)
}

// Save saves the rendered image to the given file, in the
// format given by its extension.
func (r *Rasterizer) Save(filename string) error {
	return imagex.Save(r.img, filename)
}

// attributes are the vertex values interpolated across a triangle.
type attributes struct {
	color  math32.Vector4
	world  math32.Vector3
	normal math32.Vector3
	uv     math32.Vector2
}

// blend returns the weighted sum of three sets of attributes,
// whose weights add up to one.
func blend(a, b, c *attributes, wa, wb, wc float32) attributes {
	return attributes{
		color:  a.color.MulScalar(wa).Add(b.color.MulScalar(wb)).Add(c.color.MulScalar(wc)),
		world:  a.world.MulScalar(wa).Add(b.world.MulScalar(wb)).Add(c.world.MulScalar(wc)),
		normal: a.normal.MulScalar(wa).Add(b.normal.MulScalar(wb)).Add(c.normal.MulScalar(wc)),
		uv:     a.uv.MulScalar(wa).Add(b.uv.MulScalar(wb)).Add(c.uv.MulScalar(wc)),
	}
}

// fragment returns the color of a pixel from its interpolated attributes.
type fragment func(a *attributes) math32.Vector4

func flat(a *attributes) math32.Vector4 { return a.color }

// vertex is a vertex after the perspective divide, in screen pixels.
type vertex struct {
	x, y, z float32
	invW    float32
	attr    attributes
}

func checkPositions(positions []float32) (int, error) {
	if len(positions)%9 != 0 {
		return 0, fmt.Errorf("raster: %d position values is not a whole number of triangles", len(positions))
	}
	return len(positions) / 3, nil
}

// DrawTriangles draws the triangle list given by positions (3 floats
// per vertex, 3 vertices per triangle) with one color per vertex,
// transformed by mvp into clip space. Triangles with a vertex at or
// behind the eye (w <= 0) are skipped, and when cull is set so are
// triangles that wind clockwise in normalized device coordinates.
// Fragments pass the depth test when nearer than what was drawn
// before, and fragments outside the near and far planes are dropped.
func (r *Rasterizer) DrawTriangles(positions []float32, colors []math32.Vector4, mvp math32.Matrix4, cull bool) error {
	n, err := checkPositions(positions)
	if err != nil {
		return err
	}
	if len(colors) < n {
		return fmt.Errorf("raster: %d colors for %d vertices", len(colors), n)
	}
	r.draw(n, mvp, func(i int) (math32.Vector3, attributes) {
		return math32.Vector3FromSlice(positions, i*3), attributes{color: colors[i]}
	}, flat, cull)
	return nil
}

// DrawTrianglesShaded is like [Rasterizer.DrawTriangles], but lights
// every pixel with m as seen from viewPos. The positions and normals
// (3 floats per vertex) are in model space, placed in the world by
// model and then projected by viewProj. World positions and normals
// are interpolated across each triangle, so a light that misses all of
// its corners can still light its interior.
func (r *Rasterizer) DrawTrianglesShaded(positions, normals []float32, colors []math32.Vector4, model, viewProj math32.Matrix4, m shade.Model, viewPos math32.Vector3, cull bool) error {
	n, err := checkPositions(positions)
	if err != nil {
		return err
	}
	if len(colors) < n {
		return fmt.Errorf("raster: %d colors for %d vertices", len(colors), n)
	}
	if len(normals) < len(positions) {
		return fmt.Errorf("raster: %d normal values for %d vertices", len(normals), n)
	}
	wn, err := shade.Normals(model, normals[:len(positions)])
	if err != nil {
		return err
	}
	r.draw(n, viewProj.Mul(model), func(i int) (math32.Vector3, attributes) {
		p := math32.Vector3FromSlice(positions, i*3)
		return p, attributes{
			color:  colors[i],
			world:  model.MulPoint(p),
			normal: math32.Vector3FromSlice(wn, i*3),
		}
	}, func(a *attributes) math32.Vector4 {
		return m.Shade(a.color, a.normal, a.world, viewPos)
	}, cull)
	return nil
}

// DrawTrianglesTextured is like [Rasterizer.DrawTriangles], but colors
// every pixel from tex at the texture coordinates interpolated from uvs
// (2 floats per vertex), as given by [Sample].
func (r *Rasterizer) DrawTrianglesTextured(positions, uvs []float32, tex image.Image, mvp math32.Matrix4, cull bool) error {
	n, err := checkPositions(positions)
	if err != nil {
		return err
	}
	if len(uvs) < n*2 {
		return fmt.Errorf("raster: %d texture coordinate values for %d vertices", len(uvs), n)
	}
	if tex.Bounds().Empty() {
		return errors.New("raster: empty texture")
	}
	r.draw(n, mvp, func(i int) (math32.Vector3, attributes) {
		return math32.Vector3FromSlice(positions, i*3), attributes{uv: math32.Vec2(uvs[i*2], uvs[i*2+1])}
	}, func(a *attributes) math32.Vector4 {
		return Sample(tex, a.uv)
	}, cull)
	return nil
}

// Sample returns the color of the texel of img nearest to the texture
// coordinates uv, where (0, 0) is the top left corner of the image and
// (1, 1) its bottom right. Coordinates outside that range are clamped
// to the edge.
func Sample(img image.Image, uv math32.Vector2) math32.Vector4 {
	b := img.Bounds()
	texel := func(t float32, n int) int {
		return min(max(int(math32.Floor(t*float32(n))), 0), n-1)
	}
	c := color.NRGBAModel.Convert(img.At(b.Min.X+texel(uv.X, b.Dx()), b.Min.Y+texel(uv.Y, b.Dy()))).(color.NRGBA)
	return math32.Vec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

// draw transforms the n vertices given by vert through mvp and fills
// the resulting triangles, coloring their pixels with frag.
func (r *Rasterizer) draw(n int, mvp math32.Matrix4, vert func(i int) (math32.Vector3, attributes), frag fragment, cull bool) {
	var tri [3]vertex
	for i := 0; i < n; i += 3 {
		visible := true
		for j := range 3 {
			p, attr := vert(i + j)
			clip := mvp.MulVector4(math32.Vector4FromVector3(p, 1))
			if clip.W <= 0 {
				visible = false
				break
			}
			ndc := clip.PerspDiv()
			tri[j] = vertex{
				x:    (ndc.X + 1) / 2 * float32(r.Width),
				y:    (1 - ndc.Y) / 2 * float32(r.Height),
				z:    ndc.Z,
				invW: 1 / clip.W,
				attr: attr,
			}
		}
		if !visible {
			continue
		}
		r.fill(&tri, frag, cull)
	}
}

// edge returns twice the signed area of the triangle a, b, (x, y)
// in screen coordinates.
func edge(a, b *vertex, x, y float32) float32 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

func (r *Rasterizer) fill(t *[3]vertex, frag fragment, cull bool) {
	a, b, c := &t[0], &t[1], &t[2]
	// screen Y points down, so counter-clockwise triangles
	// in device coordinates have a negative area here.
	area := edge(a, b, c.x, c.y)
	if area == 0 || (cull && area > 0) {
		return
	}
	x0 := max(int(math32.Floor(min(a.x, b.x, c.x))), 0)
	x1 := min(int(math32.Ceil(max(a.x, b.x, c.x))), r.Width-1)
	y0 := max(int(math32.Floor(min(a.y, b.y, c.y))), 0)
	y1 := min(int(math32.Ceil(max(a.y, b.y, c.y))), r.Height-1)

	for y := y0; y <= y1; y++ {
		py := float32(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.z + w1*b.z + w2*c.z
			if z < -1 || z > 1 {
				continue
			}
			di := y*r.Width + x
			if z >= r.depth[di] {
				continue
			}
			r.depth[di] = z
			// perspective correct interpolation
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*c.invW
			s := p0 + p1 + p2
			attr := blend(&a.attr, &b.attr, &c.attr, p0/s, p1/s, p2/s)
			r.img.SetRGBA(x, y, ToRGBA(frag(&attr)))
		}
	}
}

// ToRGBA converts a straight alpha color with components in the 0-1
// range to the alpha premultiplied RGBA8 of [image.RGBA], clamping out
// of range components.
func ToRGBA(c math32.Vector4) color.RGBA {
	a := math32.Clamp(c.W, 0, 1)
	cv := func(v float32) uint8 {
		return uint8(math32.Clamp(v, 0, 1)*a*255 + 0.5)
	}
	return color.RGBA{cv(c.X), cv(c.Y), cv(c.Z), uint8(a*255 + 0.5)}
}

// Colors converts RGBA8 vertex colors, 4 bytes per vertex,
// to colors with components in the 0-1 range.
func Colors(rgba []uint8) []math32.Vector4 {
	cs := make([]math32.Vector4, len(rgba)/4)
	for i := range cs {
		o := i * 4
		cs[i] = math32.Vec4(float32(rgba[o])/255, float32(rgba[o+1])/255, float32(rgba[o+2])/255, float32(rgba[o+3])/255)
	}
	return cs
}

// Downsample returns the given image scaled to the given size with
// bilinear filtering, for reducing an image rendered at a multiple of
// its final size.
func Downsample(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
