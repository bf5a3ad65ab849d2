// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the CIE color spaces: XYZ tristimulus values
// with chromatic adaptation between standard reference illuminants,
// sRGB companding to and from linear light, and the L*a*b* and LCH
// perceptual spaces derived from XYZ.
package cie

import (
	"errors"
	"fmt"
)

// Illuminant is a standard CIE reference illuminant, identifying the
// tristimulus values treated as white. Lab conversions are only
// well-defined relative to an illuminant; [D65] (average daylight,
// the sRGB reference) is the default everywhere.
type Illuminant int32

const (
	// D65 is average daylight at 6504 K, the sRGB reference white.
	D65 Illuminant = iota

	// D50 is horizon daylight at 5003 K, used in printing.
	D50

	// D55 is mid-morning / mid-afternoon daylight.
	D55

	// A is incandescent tungsten light.
	A

	// B is direct sunlight at noon (deprecated by the CIE, kept for
	// compatibility with older data sets).
	B

	// C is average north-sky daylight (also deprecated).
	C

	// E is the equal-energy illuminant.
	E

	// F2 is cool white fluorescent.
	F2

	// F7 is a broad-band daylight fluorescent simulator.
	F7

	// F11 is a narrow tri-band fluorescent.
	F11

	// ICC is the profile connection space white of the ICC
	// specification (D50 with the ICC's rounding).
	ICC

	// IlluminantsN is the number of valid illuminants.
	IlluminantsN
)

var illuminantNames = []string{"d65", "d50", "d55", "a", "b", "c", "e", "f2", "f7", "f11", "icc"}

// String returns the lowercase name of the illuminant ("d65", "f2", ...).
func (il Illuminant) String() string {
	if il < 0 || il >= IlluminantsN {
		return fmt.Sprintf("Illuminant(%d)", int32(il))
	}
	return illuminantNames[il]
}

// SetString sets the illuminant from its lowercase name,
// returning an error if the name is not recognized.
func (il *Illuminant) SetString(name string) error {
	for i, nm := range illuminantNames {
		if nm == name {
			*il = Illuminant(i)
			return nil
		}
	}
	return fmt.Errorf("cie.Illuminant.SetString: %w: %q", ErrUnknownIlluminant, name)
}

// ErrUnknownIlluminant is returned for illuminant ids outside the
// standard set.
var ErrUnknownIlluminant = errors.New("unknown reference illuminant")

// whites holds the X and Z tristimulus values of each illuminant for
// the CIE 1931 2° observer, normalized so that Y = 1.
// Never mutated after init.
var whites = [IlluminantsN][2]float32{
	D65: {0.95047, 1.08883},
	D50: {0.96422, 0.82521},
	D55: {0.95682, 0.92149},
	A:   {1.09850, 0.35585},
	B:   {0.99072, 0.85223},
	C:   {0.98074, 1.18232},
	E:   {1.00000, 1.00000},
	F2:  {0.99186, 0.67393},
	F7:  {0.95041, 1.08747},
	F11: {1.00962, 0.64350},
	ICC: {0.96422, 0.82521},
}

// White returns the X and Z tristimulus values of the given reference
// illuminant (Y is always 1). It returns an error for illuminants
// outside the standard set; it never silently substitutes a default.
func White(il Illuminant) (x, z float32, err error) {
	if il < 0 || il >= IlluminantsN {
		return 0, 0, fmt.Errorf("cie.White: %w: %d", ErrUnknownIlluminant, int32(il))
	}
	w := whites[il]
	return w[0], w[1], nil
}
