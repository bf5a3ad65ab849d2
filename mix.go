// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ultraviolet

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// ErrMixRatio is returned when a mix ratio falls outside [0, 1].
var ErrMixRatio = errors.New("mix ratio outside [0, 1]")

// MinHueDistance finds the minimum angular distance between two hues.
// A positive number means add to a to get to b; a negative number
// means subtract. The shortest arc may cross the 0/360 boundary.
func MinHueDistance(a, b float32) float32 {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := b - (a + 360)
	d1a := math32.Abs(d1)
	d2a := math32.Abs(d2)
	d3a := math32.Abs(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}

// Mix interpolates between two colors in the given space. A ratio of
// 0 returns the first color, 1 the second. Hue channels travel the
// shortest arc; LinearRGB channels interpolate in the squared
// (linear-light) domain; alpha always interpolates linearly. A ratio
// outside [0, 1] is an error.
func Mix(c1, c2 color.Color, ratio float32, space Spaces) (color.RGBA, error) {
	if ratio < 0 || ratio > 1 {
		return color.RGBA{}, fmt.Errorf("ultraviolet.Mix: %w: %g", ErrMixRatio, ratio)
	}
	v1, err := Coords(c1, space)
	if err != nil {
		return color.RGBA{}, err
	}
	v2, err := Coords(c2, space)
	if err != nil {
		return color.RGBA{}, err
	}
	hue := hueChannel(space)
	var v [4]float32
	for i := 0; i < 3; i++ {
		switch {
		case i == hue:
			h := v1[i] + ratio*MinHueDistance(v1[i], v2[i])
			h = math32.Mod(h, 360)
			if h < 0 {
				h += 360
			}
			v[i] = h
		case space == LinearRGB:
			v[i] = math32.Sqrt((1-ratio)*v1[i]*v1[i] + ratio*v2[i]*v2[i])
		default:
			v[i] = v1[i] + ratio*(v2[i]-v1[i])
		}
	}
	v[3] = v1[3] + ratio*(v2[3]-v1[3])
	return FromCoords(space, v)
}

// MixRGB mixes two colors in gamma-corrected RGB, the common case.
func MixRGB(c1, c2 color.Color, ratio float32) (color.RGBA, error) {
	return Mix(c1, c2, ratio, RGB)
}
