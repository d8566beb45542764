// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

// Sprite is a textured rectangle in 2D pixel coordinates,
// with its top left corner at X, Y.
type Sprite struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Rectangle returns the sprite's two triangles as 12 floats,
// 2 per vertex.
func (s *Sprite) Rectangle() []float32 {
	x1, y1 := s.X, s.Y
	x2, y2 := s.X+s.Width, s.Y+s.Height
	return []float32{
		x1, y1,
		x2, y1,
		x1, y2,
		x1, y2,
		x2, y1,
		x2, y2,
	}
}

// TexCoords returns the texture coordinates matching [Sprite.Rectangle],
// mapping the whole texture onto the sprite.
func (s *Sprite) TexCoords() []float32 {
	return []float32{
		0, 0,
		1, 0,
		0, 1,
		0, 1,
		1, 0,
		1, 1,
	}
}
