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

// Averaging errors.
var (
	ErrNoColors      = errors.New("no colors given")
	ErrWeightsLength = errors.New("weights length does not match colors length")
)

// Average returns the weighted per-channel average of the given
// colors in the given space. A nil weights slice means equal weights;
// otherwise there must be exactly one weight per color. Hue channels
// accumulate as weighted unit vectors and are recombined with atan2,
// so hues near the 0/360 boundary average correctly. LinearRGB
// averages in the squared (linear-light) domain, which avoids the
// gray dead-zone artifact of naive sRGB averaging. Alpha is always a
// plain weighted mean.
func Average(colors []color.Color, space Spaces, weights []float32) (color.RGBA, error) {
	if len(colors) == 0 {
		return color.RGBA{}, fmt.Errorf("ultraviolet.Average: %w", ErrNoColors)
	}
	if weights != nil && len(weights) != len(colors) {
		return color.RGBA{}, fmt.Errorf("ultraviolet.Average: %w: %d weights for %d colors",
			ErrWeightsLength, len(weights), len(colors))
	}
	wsum := float32(0)
	for i := range colors {
		if weights == nil {
			wsum++
		} else {
			if weights[i] < 0 {
				return color.RGBA{}, fmt.Errorf("ultraviolet.Average: negative weight %g", weights[i])
			}
			wsum += weights[i]
		}
	}
	if wsum == 0 {
		return color.RGBA{}, errors.New("ultraviolet.Average: weights sum to zero")
	}

	hue := hueChannel(space)
	var sum [4]float32
	var hsin, hcos float32
	for i, c := range colors {
		v, err := Coords(c, space)
		if err != nil {
			return color.RGBA{}, err
		}
		w := float32(1)
		if weights != nil {
			w = weights[i]
		}
		w /= wsum
		for j := 0; j < 3; j++ {
			switch {
			case j == hue:
				hr := v[j] * math32.Pi / 180
				hcos += w * math32.Cos(hr)
				hsin += w * math32.Sin(hr)
			case space == LinearRGB:
				sum[j] += w * v[j] * v[j]
			default:
				sum[j] += w * v[j]
			}
		}
		sum[3] += w * v[3]
	}
	if space == LinearRGB {
		for j := 0; j < 3; j++ {
			sum[j] = math32.Sqrt(sum[j])
		}
	}
	if hue >= 0 {
		h := math32.Atan2(hsin, hcos) * 180 / math32.Pi
		if h < 0 {
			h += 360
		}
		sum[hue] = h
	}
	return FromCoords(space, sum)
}
