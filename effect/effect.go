// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package effect applies chains of 3x3 convolution kernels to images,
// each pass reading the output of the one before it.
package effect

import (
	"fmt"
	"image"
	"slices"

	"cogentcore.org/xform/base/errors"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/transform"
)

// ErrUnknownKernel is returned for a kernel name that is not registered.
var ErrUnknownKernel = errors.New("effect: unknown kernel")

// Kernel is a named 3x3 convolution kernel. Values are in row order,
// starting at the pixel up and to the left of the center.
type Kernel struct {
	Name   string
	Values [9]float32
}

// Weight returns the sum of the values, which the convolution is
// divided by to preserve brightness, or 1 if the sum is not positive.
func (k Kernel) Weight() float32 {
	var w float32
	for _, v := range k.Values {
		w += v
	}
	if w <= 0 {
		return 1
	}
	return w
}

// Matrix returns the kernel divided by its weight as a convolution matrix.
func (k Kernel) Matrix() *convolution.Kernel {
	m := convolution.NewKernel(3, 3)
	w := float64(k.Weight())
	for i, v := range k.Values {
		m.Matrix[i] = float64(v) / w
	}
	return m
}

// Kernels are the registered kernels, by name.
var Kernels = map[string]Kernel{}

// AddKernel registers the given kernel, replacing any with the same name.
func AddKernel(k Kernel) {
	Kernels[k.Name] = k
}

func init() {
	for _, k := range []Kernel{
		{"normal", [9]float32{
			0, 0, 0,
			0, 1, 0,
			0, 0, 0}},
		{"gaussianBlur", [9]float32{
			0.045, 0.122, 0.045,
			0.122, 0.332, 0.122,
			0.045, 0.122, 0.045}},
		{"unsharpen", [9]float32{
			-1, -1, -1,
			-1, 9, -1,
			-1, -1, -1}},
		{"emboss", [9]float32{
			-2, -1, 0,
			-1, 1, 1,
			0, 1, 2}},
		{"boxBlur", [9]float32{
			1, 1, 1,
			1, 1, 1,
			1, 1, 1}},
		{"edgeDetect", [9]float32{
			-1, -1, -1,
			-1, 8, -1,
			-1, -1, -1}},
		{"sharpen", [9]float32{
			0, -1, 0,
			-1, 5, -1,
			0, -1, 0}},
	} {
		AddKernel(k)
	}
}

// DefaultChain is the chain of effects applied when none are given.
var DefaultChain = []string{"gaussianBlur", "emboss", "gaussianBlur", "unsharpen"}

// Lookup returns the registered kernel with the given name.
func Lookup(name string) (Kernel, error) {
	k, ok := Kernels[name]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return k, nil
}

// Names returns the sorted names of the registered kernels.
func Names() []string {
	ns := make([]string, 0, len(Kernels))
	for n := range Kernels {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Apply returns the given image convolved with the kernel. Pixels
// outside the image are taken from the nearest edge, and the result
// is fully opaque.
func Apply(img image.Image, k Kernel) *image.RGBA {
	dst := convolution.Convolve(img, k.Matrix(), &convolution.Options{KeepAlpha: true})
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	return dst
}

// Chain applies the named kernels to the image in order, followed by
// a final normal pass. All names are checked before any work is done.
func Chain(img image.Image, names ...string) (*image.RGBA, error) {
	ks := make([]Kernel, 0, len(names)+1)
	for _, n := range names {
		k, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}
	ks = append(ks, Kernels["normal"])
	cur := img
	var dst *image.RGBA
	for _, k := range ks {
		dst = Apply(cur, k)
		cur = dst
	}
	return dst, nil
}

// Resize returns the image resized to the given size
// with linear filtering.
func Resize(img image.Image, width, height int) *image.RGBA {
	return transform.Resize(img, width, height, transform.Linear)
}
