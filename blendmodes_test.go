// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ultraviolet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendModeNames(t *testing.T) {
	assert.Equal(t, "multiply", Multiply.String())
	assert.Equal(t, "dodge", Dodge.String())
	assert.Equal(t, "BlendModes(99)", BlendModes(99).String())

	for bm := BlendModes(0); bm < BlendModesN; bm++ {
		var got BlendModes
		assert.NoError(t, got.SetString(bm.String()))
		assert.Equal(t, bm, got)
	}
	var bm BlendModes
	assert.Error(t, bm.SetString("subtract"))
}

func TestBlend(t *testing.T) {
	c1 := MustFromHex("#4cbbfc")
	c2 := MustFromHex("#eeee22")

	tests := map[BlendModes]color.RGBA{
		Multiply: {71, 175, 34, 255},
		Darken:   {76, 187, 34, 255},
		Lighten:  {238, 238, 252, 255},
		Screen:   {243, 250, 252, 255},
		Overlay:  {231, 246, 67, 255},
		Burn:     {198, 232, 31, 255},
		Dodge:    {255, 255, 255, 255},
	}
	for mode, want := range tests {
		have, err := Blend(mode, c1, c2)
		assert.NoError(t, err, mode.String())
		assert.Equal(t, want, have, mode.String())
	}

	_, err := Blend(BlendModes(99), c1, c2)
	assert.Error(t, err)
}

func TestBlendEdges(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	// burn of a black base stays black; dodge of a white base stays white
	c, err := Blend(Burn, black, white)
	assert.NoError(t, err)
	assert.Equal(t, black, c)
	c, err = Blend(Dodge, white, black)
	assert.NoError(t, err)
	assert.Equal(t, white, c)

	// multiplying by white is the identity
	c, err = Blend(Multiply, color.RGBA{30, 120, 200, 255}, white)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{30, 120, 200, 255}, c)

	// the first color's alpha is kept
	c, err = Blend(Multiply, color.RGBA{128, 0, 0, 128}, white)
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c)
}
