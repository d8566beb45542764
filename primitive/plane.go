// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitive provides the geometry value objects that are drawn
// by the renderer: axis aligned planes, cubes and textured sprites, as
// flat float32 vertex arrays of whole triangles.
package primitive

import "cogentcore.org/xform/math32"

// VerticesPerFace is the number of vertices in one rectangular face,
// which is drawn as two triangles.
const VerticesPerFace = 6

// XYPlane returns the two triangles of the rectangle in the XY plane at
// depth z spanning [x1, x1+width] x [y1, y1+height], as 18 floats.
// A front face winds counter-clockwise when seen from -Z, and a back
// face when seen from +Z.
func XYPlane(x1, y1, z, width, height float32, front bool) []float32 {
	x2 := x1 + width
	y2 := y1 + height
	if front {
		return []float32{
			x1, y1, z,
			x1, y2, z,
			x2, y1, z,
			x1, y2, z,
			x2, y2, z,
			x2, y1, z,
		}
	}
	return []float32{
		x1, y2, z,
		x1, y1, z,
		x2, y1, z,
		x2, y2, z,
		x1, y2, z,
		x2, y1, z,
	}
}

// ZYPlane returns the two triangles of the rectangle in the ZY plane at
// x spanning [y1, y1+height] x [z1, z1+depth], as 18 floats.
// A front face winds counter-clockwise when seen from +X, and a back
// face when seen from -X.
func ZYPlane(x, y1, z1, height, depth float32, front bool) []float32 {
	y2 := y1 + height
	z2 := z1 + depth
	if front {
		return []float32{
			x, y1, z1,
			x, y2, z1,
			x, y1, z2,
			x, y2, z1,
			x, y2, z2,
			x, y1, z2,
		}
	}
	return []float32{
		x, y1, z1,
		x, y1, z2,
		x, y2, z1,
		x, y2, z1,
		x, y1, z2,
		x, y2, z2,
	}
}

// XZPlane returns the two triangles of the rectangle in the XZ plane at
// height y spanning [x1, x1+width] x [z1, z1+depth], as 18 floats.
// A front face winds counter-clockwise when seen from +Y, and a back
// face when seen from -Y.
func XZPlane(x1, y, z1, width, depth float32, front bool) []float32 {
	x2 := x1 + width
	z2 := z1 + depth
	if front {
		return []float32{
			x1, y, z1,
			x1, y, z2,
			x2, y, z1,
			x1, y, z2,
			x2, y, z2,
			x2, y, z1,
		}
	}
	return []float32{
		x1, y, z1,
		x2, y, z1,
		x1, y, z2,
		x1, y, z2,
		x2, y, z1,
		x2, y, z2,
	}
}

// FaceNormals returns flat per-vertex normals for the given triangle
// vertices (3 floats per vertex), computed from each triangle's winding
// so that a counter-clockwise triangle's normal points towards the viewer.
// A degenerate triangle gets zero normals.
func FaceNormals(vertices []float32) []float32 {
	n := len(vertices) / 9
	normals := make([]float32, 0, n*9)
	for t := range n {
		v0 := math32.Vector3FromSlice(vertices, t*9)
		v1 := math32.Vector3FromSlice(vertices, t*9+3)
		v2 := math32.Vector3FromSlice(vertices, t*9+6)
		nv := v1.Sub(v0).Cross(v2.Sub(v0)).Normal()
		for range 3 {
			normals = append(normals, nv.X, nv.Y, nv.Z)
		}
	}
	return normals
}
