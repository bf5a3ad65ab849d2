// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temperature

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRGB(t *testing.T) {
	// candle light: fully red, no blue yet
	c, err := ToRGB(1000)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 68, 0, 255}, c)

	// past the crossover the blue channel saturates instead
	c, err = ToRGB(20000)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.B)
	assert.InDelta(t, 171, float32(c.R), 1)
	assert.InDelta(t, 198, float32(c.G), 1)

	// near daylight every channel is close to full
	c, err = ToRGB(6600)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(255), c.B)
	assert.Greater(t, c.G, uint8(240))

	_, err = ToRGB(-1)
	assert.Error(t, err)
	_, err = ToRGB(MaxKelvin + 1)
	assert.Error(t, err)
	assert.Panics(t, func() { MustToRGB(-1) })
}

func TestToRGBMonotonic(t *testing.T) {
	// warmth decreases with temperature: the blue/red ratio never drops
	prev := float32(-1)
	for k := float32(1000); k <= 30000; k += 500 {
		c := MustToRGB(k)
		ratio := float32(c.B) / float32(c.R)
		assert.GreaterOrEqual(t, ratio, prev, "at %g K", k)
		prev = ratio
	}
}

func TestFromColor(t *testing.T) {
	for _, k := range []float32{2000, 3500, 6500} {
		got := FromColor(MustToRGB(k))
		assert.InDelta(t, k, got, 25, "%g K", k)
	}
	// channels flatten out at high temperatures, so the
	// recovered value is correspondingly coarser
	assert.InDelta(t, 10000, FromColor(MustToRGB(10000)), 150)

	// fully warm colors pin the search to its lower bound
	assert.InDelta(t, 1000, FromColor(color.RGBA{255, 68, 0, 255}), 2)
}
