// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ultraviolet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinHueDistance(t *testing.T) {
	assert.Equal(t, float32(20), MinHueDistance(350, 10))
	assert.Equal(t, float32(-20), MinHueDistance(10, 350))
	assert.Equal(t, float32(40), MinHueDistance(40, 80))
	assert.Equal(t, float32(-180), MinHueDistance(0, 180))
	assert.Equal(t, float32(0), MinHueDistance(120, 120))
}

func TestMix(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	// gamma-encoded RGB lands on mid gray
	c, err := Mix(white, black, 0.5, RGB)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, c)

	// linear-light mixing gives a perceptually lighter midpoint
	c, err = Mix(white, black, 0.5, LinearRGB)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{180, 180, 180, 255}, c)

	// Lab mixing lands on L* = 50
	c, err = Mix(white, black, 0.5, LAB)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{119, 119, 119, 255}, c)

	c, err = Mix(white, black, 0, RGB)
	assert.NoError(t, err)
	assert.Equal(t, white, c)
	c, err = Mix(white, black, 1, RGB)
	assert.NoError(t, err)
	assert.Equal(t, black, c)

	_, err = Mix(white, black, 1.5, RGB)
	assert.ErrorIs(t, err, ErrMixRatio)
	_, err = Mix(white, black, -0.1, RGB)
	assert.ErrorIs(t, err, ErrMixRatio)

	c, err = MixRGB(white, black, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, c)
}

func TestMixIdentity(t *testing.T) {
	c := color.RGBA{30, 120, 200, 255}
	for s := Spaces(0); s < SpacesN; s++ {
		got, err := Mix(c, c, 0.5, s)
		assert.NoError(t, err)
		assert.Equal(t, c, got, s.String())
	}
}

func TestMixHue(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	// red (h=0) to blue (h=240) travels the short arc through magenta
	c, err := Mix(red, blue, 0.5, HSL)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, c)

	// hues that straddle the 0/360 boundary stay near red
	c1, _ := Convert(color.RGBA{255, 0, 43, 255}, HSL)  // h = 350
	c2, _ := Convert(color.RGBA{255, 43, 0, 255}, HSL)  // h = 10
	c, err = Mix(c1, c2, 0.5, HSL)
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Less(t, c.B, uint8(30))
}

func TestMixAlpha(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	clear := color.RGBA{}
	c, err := Mix(red, clear, 0.5, RGB)
	assert.NoError(t, err)
	assert.Equal(t, uint8(128), c.A)
}
