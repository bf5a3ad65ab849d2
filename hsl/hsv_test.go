// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLToHSV(t *testing.T) {
	h, s, v := HSLToHSV(0, 1, 0.5)
	assert.Equal(t, float32(0), h)
	assert.Equal(t, float32(1), s)
	assert.Equal(t, float32(1), v)

	// v = 0 defines saturation as 0
	h, s, v = HSLToHSV(50, 1, 0)
	assert.Equal(t, float32(50), h)
	assert.Equal(t, float32(0), s)
	assert.Equal(t, float32(0), v)

	h, s, l := HSVToHSL(HSLToHSV(213, 0.7, 0.3))
	assert.InDelta(t, 213, h, 1e-4)
	assert.InDelta(t, 0.7, s, 1e-4)
	assert.InDelta(t, 0.3, l, 1e-4)

	h, s, v = RGBToHSV(1, 0, 0)
	assert.Equal(t, float32(0), h)
	assert.Equal(t, float32(1), s)
	assert.Equal(t, float32(1), v)

	h, s, v = RGBToHSV(0.5, 0.5, 0.5)
	assert.Equal(t, float32(0), h)
	assert.Equal(t, float32(0), s)
	assert.Equal(t, float32(0.5), v)

	r, g, b := HSVToRGB(RGBToHSV(0.8, 0.3, 0.6))
	assert.InDelta(t, 0.8, r, 1e-5)
	assert.InDelta(t, 0.3, g, 1e-5)
	assert.InDelta(t, 0.6, b, 1e-5)
}

func TestHSV(t *testing.T) {
	assert.Equal(t, HSV{100, 0.87, 0.56, 1}, NewHSV(100, 0.87, 0.56))

	want := color.RGBA{204, 114, 67, 243}
	have := HSVFromColor(want)
	assert.InDelta(t, 20.583939, have.H, 1e-3)
	assert.InDelta(t, 0.9529412, have.A, 1e-4)
	assert.Equal(t, want, have.AsRGBA())
	assert.Equal(t, have, HSVModel.Convert(have))

	r, g, b, a := have.RGBA()
	assert.InDelta(t, 0xcccc, float32(r), 2)
	assert.InDelta(t, 0x7272, float32(g), 2)
	assert.InDelta(t, 0x4343, float32(b), 2)
	assert.InDelta(t, 0xf3f3, float32(a), 2)

	set := HSV{}
	set.SetColor(want)
	assert.Equal(t, have, set)

	assert.Equal(t, "hsv(86, 0.54, 0.97)", NewHSV(86, 0.54, 0.97).String())
}
