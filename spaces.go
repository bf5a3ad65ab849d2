// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ultraviolet converts colors between sRGB, HSL, HSV, CIE Lab,
// LCH, OKLab, and OKLCH, parses and formats hex / CSS / named colors,
// and mixes, averages, and blends colors in any of those spaces.
// The subpackages hold the per-space math ([cie], [oklab], [hsl]),
// black-body temperature mapping ([temperature]), color scales
// ([scale]), and ColorBrewer palettes ([palette]).
//
// Everything is a pure function over immutable values; the library has
// no shared mutable state and is safe for concurrent use.
package ultraviolet

import (
	"errors"
	"fmt"
)

// Spaces are the color spaces in which colors can be represented,
// mixed, and averaged.
type Spaces int32

const (
	// RGB is gamma-corrected sRGB with byte channels, the canonical
	// representation all other spaces convert to and from.
	RGB Spaces = iota

	// LinearRGB is sRGB with de-companded (physically linear)
	// channels. As a representation it is identical to RGB; as a
	// mixing space it avoids the gray "dead zone" artifact of
	// averaging gamma-encoded bytes.
	LinearRGB

	// HSL is the hue, saturation, lightness cylindrical space.
	HSL

	// HSV is the hue, saturation, value cylindrical space.
	HSV

	// LAB is CIE L*a*b* relative to D65.
	LAB

	// LCH is CIE L*a*b* in polar (chroma, hue) form.
	LCH

	// OKLAB is the OKLab perceptually uniform space (D65 only).
	OKLAB

	// OKLCH is OKLab in polar (chroma, hue) form.
	OKLCH

	// SpacesN is the number of valid color spaces.
	SpacesN
)

var spaceNames = []string{"rgb", "lrgb", "hsl", "hsv", "lab", "lch", "oklab", "oklch"}

// ErrUnknownSpace is returned for color-space identifiers outside the
// supported set.
var ErrUnknownSpace = errors.New("unknown color space")

// String returns the lowercase name of the space ("rgb", "lrgb", ...).
func (s Spaces) String() string {
	if s < 0 || s >= SpacesN {
		return fmt.Sprintf("Spaces(%d)", int32(s))
	}
	return spaceNames[s]
}

// SetString sets the space from its lowercase name, returning an
// error if the name is not recognized.
func (s *Spaces) SetString(name string) error {
	for i, nm := range spaceNames {
		if nm == name {
			*s = Spaces(i)
			return nil
		}
	}
	return fmt.Errorf("ultraviolet.Spaces.SetString: %w: %q", ErrUnknownSpace, name)
}

// Valid reports whether the space is one of the supported set.
func (s Spaces) Valid() bool {
	return s >= 0 && s < SpacesN
}

// hueChannel returns the index of the angular (hue) channel of the
// space within its [Coords] vector, or -1 if the space has none.
func hueChannel(s Spaces) int {
	switch s {
	case HSL, HSV:
		return 0
	case LCH, OKLCH:
		return 2
	}
	return -1
}
