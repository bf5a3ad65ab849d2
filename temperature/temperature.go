// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package temperature approximates the color of a black-body radiator
// at a given temperature in Kelvin, and recovers the approximate
// temperature of a color. The forward mapping is the empirical
// piecewise-log regression of Tanner Helland as refined by Neil
// Bartlett; it is not algebraically invertible, so the inverse is a
// bisection search on the blue/red channel ratio.
package temperature

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// MaxKelvin is the upper bound of the forward mapping's valid input.
const MaxKelvin = 30000

// Bisection bounds and interval tolerance of [FromColor]. The 0.4 K
// epsilon is an empirical constant; changing it changes the byte-level
// results, so it is preserved exactly.
const (
	minSearch = 1000
	maxSearch = 40000
	searchEps = 0.4
)

// ToRGB returns the approximate sRGB color of a black body at the
// given temperature in Kelvin. Temperatures outside [0, MaxKelvin]
// are an error.
func ToRGB(kelvin float32) (color.RGBA, error) {
	if kelvin < 0 || kelvin > MaxKelvin {
		return color.RGBA{}, fmt.Errorf("temperature.ToRGB: %g K outside [0, %d]", kelvin, MaxKelvin)
	}
	return rgb(kelvin), nil
}

// MustToRGB is like [ToRGB] but panics on out-of-range input.
func MustToRGB(kelvin float32) color.RGBA {
	c, err := ToRGB(kelvin)
	if err != nil {
		panic("temperature.MustToRGB: " + err.Error())
	}
	return c
}

// rgb computes the regression without range validation; the inverse
// search probes up to maxSearch K.
func rgb(kelvin float32) color.RGBA {
	t := kelvin / 100
	var r, g, b float32
	if t < 66 {
		r = 255
		g = 99.4708025861*math32.Log(t) - 161.1195681661
		if t <= 19 {
			b = 0
		} else {
			b = 138.5177312231*math32.Log(t-10) - 305.0447927307
		}
	} else {
		r = 329.698727446 * math32.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math32.Pow(t-60, -0.0755148492)
		b = 255
	}
	return color.RGBA{clampByte(r), clampByte(g), clampByte(b), 255}
}

// FromColor returns the black-body temperature in Kelvin whose color
// best matches the given color, by bisecting on the blue/red channel
// ratio over [1000, 40000] K. The search halves the interval each
// step, so it terminates after a bounded number of iterations.
func FromColor(c color.Color) float32 {
	r, _, b, _ := c.RGBA()
	ratio := float32(b) / float32(r)
	lo, hi := float32(minSearch), float32(maxSearch)
	mid := (lo + hi) / 2
	for hi-lo > searchEps {
		mid = (lo + hi) / 2
		probe := rgb(mid)
		if float32(probe.B)/float32(probe.R) >= ratio {
			hi = mid
		} else {
			lo = mid
		}
	}
	return math32.Round(mid)
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
