// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLABToLCH(t *testing.T) {
	l, c, h := LABToLCH(50, 0, 30)
	assert.Equal(t, float32(50), l)
	assert.InDelta(t, 30, c, 1e-4)
	assert.InDelta(t, 90, h, 1e-4)

	_, _, h = LABToLCH(50, -30, 0)
	assert.InDelta(t, 180, h, 1e-4)
	_, _, h = LABToLCH(50, 0, -30)
	assert.InDelta(t, 270, h, 1e-4)

	// a chroma that rounds to zero pins the hue to 0
	_, c, h = LABToLCH(50, 0, 0)
	assert.Equal(t, float32(0), c)
	assert.Equal(t, float32(0), h)
	_, _, h = LABToLCH(50, 0.00004, -0.00001)
	assert.Equal(t, float32(0), h)

	l, a, b := LCHToLAB(50, 30, 90)
	assert.Equal(t, float32(50), l)
	assert.InDelta(t, 0, a, 1e-4)
	assert.InDelta(t, 30, b, 1e-4)

	l, c, h = LABToLCH(LCHToLAB(61.2, 41.4, 123.5))
	assert.InDelta(t, 61.2, l, 1e-4)
	assert.InDelta(t, 41.4, c, 1e-3)
	assert.InDelta(t, 123.5, h, 1e-3)
}

func TestLCH(t *testing.T) {
	assert.Equal(t, LCH{50, 30, 120, 1}, NewLCH(50, 30, 120))

	want := color.RGBA{30, 120, 200, 255}
	lc := LCHFromColor(want)
	assert.Equal(t, want, lc.AsRGBA())
	assert.Equal(t, lc, LCHModel.Convert(lc))
	assert.Equal(t, lc, LCHModel.Convert(want))

	lb := lc.AsLab()
	assert.Equal(t, lb.L, lc.L)
	assert.Equal(t, want, lb.AsRGBA())

	have := LCH{}
	have.SetColor(want)
	assert.Equal(t, lc, have)

	got := NewLCH(1.23456, 2.34567, 3.45678).Rounded(2)
	assert.InDelta(t, 1.23, got.L, 1e-5)
	assert.InDelta(t, 2.35, got.C, 1e-5)
	assert.InDelta(t, 3.46, got.H, 1e-5)

	assert.Equal(t, "lch(50, 30, 120)", NewLCH(50, 30, 120).String())
}
