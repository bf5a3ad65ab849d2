// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ultraviolet

import (
	"fmt"
	"image/color"
)

// BlendModes are the classic per-channel blend-mode functions.
// Each mode operates on the R, G, and B channels independently;
// the alpha of the first color is kept.
type BlendModes int32

const (
	// Multiply multiplies the channels, always darkening.
	Multiply BlendModes = iota

	// Darken keeps the darker of each channel pair.
	Darken

	// Lighten keeps the lighter of each channel pair.
	Lighten

	// Screen inverts, multiplies, and inverts again, always
	// lightening.
	Screen

	// Overlay multiplies dark regions and screens light ones,
	// branching on whether the second color's channel is below 128.
	Overlay

	// Burn darkens the first color to reflect the second.
	Burn

	// Dodge brightens the first color to reflect the second.
	Dodge

	// BlendModesN is the number of valid blend modes.
	BlendModesN
)

var blendModeNames = []string{"multiply", "darken", "lighten", "screen", "overlay", "burn", "dodge"}

// String returns the lowercase name of the blend mode.
func (bm BlendModes) String() string {
	if bm < 0 || bm >= BlendModesN {
		return fmt.Sprintf("BlendModes(%d)", int32(bm))
	}
	return blendModeNames[bm]
}

// SetString sets the blend mode from its lowercase name, returning an
// error if the name is not recognized.
func (bm *BlendModes) SetString(name string) error {
	for i, nm := range blendModeNames {
		if nm == name {
			*bm = BlendModes(i)
			return nil
		}
	}
	return fmt.Errorf("ultraviolet.BlendModes.SetString: unknown blend mode: %q", name)
}

// Blend combines two colors with the given blend mode, applying the
// mode to each of the R, G, and B channel pairs independently and
// keeping the first color's alpha. It returns an error for an unknown
// mode.
func Blend(mode BlendModes, c1, c2 color.Color) (color.RGBA, error) {
	if mode < 0 || mode >= BlendModesN {
		return color.RGBA{}, fmt.Errorf("ultraviolet.Blend: unknown blend mode: %d", int32(mode))
	}
	r1, g1, b1, a1 := nrgba(c1)
	r2, g2, b2, _ := nrgba(c2)
	return fromNRGBA(
		float32(blendChannel(mode, r1*255, r2*255))/255,
		float32(blendChannel(mode, g1*255, g2*255))/255,
		float32(blendChannel(mode, b1*255, b2*255))/255,
		a1,
	), nil
}

// blendChannel applies the mode to one channel pair; a is the first
// (base) color's channel and b the second's, both 0-255.
func blendChannel(mode BlendModes, a, b float32) uint8 {
	switch mode {
	case Multiply:
		return clampByte(a * b / 255)
	case Darken:
		if a < b {
			return clampByte(a)
		}
		return clampByte(b)
	case Lighten:
		if a > b {
			return clampByte(a)
		}
		return clampByte(b)
	case Screen:
		return clampByte(255 - (255-a)*(255-b)/255)
	case Overlay:
		if b < 128 {
			return clampByte(2 * a * b / 255)
		}
		return clampByte(255 - 2*(255-a)*(255-b)/255)
	case Burn:
		if a == 0 {
			return 0
		}
		return clampByte(255 * (1 - (1-b/255)/(a/255)))
	case Dodge:
		// a divide-by-zero here means the base channel is already
		// at full intensity
		if a == 255 {
			return 255
		}
		return clampByte(255 * b / (255 - a))
	}
	return 0
}
