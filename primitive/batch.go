// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

// Range is the range of vertices drawn for one primitive in a [Batch].
type Range struct {
	Offset int
	Count  int
}

// Batch concatenates the geometry of several cubes into shared
// vertex arrays, recording each cube's draw range.
type Batch struct {
	Vertices []float32
	Colors   []uint8
	Normals  []float32
	Ranges   []Range
}

// NewBatch returns a batch containing the given cubes, in order.
func NewBatch(cubes ...*Cube) *Batch {
	b := &Batch{}
	for _, c := range cubes {
		b.Add(c)
	}
	return b
}

// Add appends the cube's geometry to the batch.
func (b *Batch) Add(c *Cube) {
	offset := len(b.Vertices) / 3
	b.Vertices = append(b.Vertices, c.Vertices...)
	b.Colors = append(b.Colors, c.Colors...)
	b.Normals = append(b.Normals, c.Normals...)
	b.Ranges = append(b.Ranges, Range{Offset: offset, Count: c.NumVertices()})
}

// NumVertices returns the total number of vertices in the batch.
func (b *Batch) NumVertices() int {
	return len(b.Vertices) / 3
}
