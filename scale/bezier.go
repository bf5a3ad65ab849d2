// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/dcrck/ultraviolet"
	"github.com/dcrck/ultraviolet/cie"
	"github.com/dcrck/ultraviolet/oklab"
)

// bezier evaluates the degree-n Bernstein blend of all the scale's
// colors at position t, independently per Lab-like channel:
//
//	sum of C(n,i) * (1-t)^(n-i) * t^i * channel_i
//
// The binomial coefficients are precomputed at construction. The
// space is LAB or OKLAB, enforced by [New].
func (s *Scale) bezier(t float32) color.RGBA {
	n := len(s.colors) - 1
	var ch [4]float32
	for i, ctrl := range s.controls {
		w := s.binomials[i] * math32.Pow(1-t, float32(n-i)) * math32.Pow(t, float32(i))
		for j := range ch {
			ch[j] += w * ctrl[j]
		}
	}
	if s.space == ultraviolet.OKLAB {
		return oklab.OKLab{L: ch[0], A: ch[1], B: ch[2], Alpha: ch[3]}.AsRGBA()
	}
	return cie.Lab{L: ch[0], A: ch[1], B: ch[2], Alpha: ch[3]}.AsRGBA()
}

// bezierControls converts the scale's colors to their Lab-like
// control channels once, at construction.
func bezierControls(colors []color.RGBA, space ultraviolet.Spaces) [][4]float32 {
	ctrls := make([][4]float32, len(colors))
	for i, c := range colors {
		if space == ultraviolet.OKLAB {
			ok := oklab.FromColor(c)
			ctrls[i] = [4]float32{ok.L, ok.A, ok.B, ok.Alpha}
		} else {
			lb := cie.LABFromColor(c)
			ctrls[i] = [4]float32{lb.L, lb.A, lb.B, lb.Alpha}
		}
	}
	return ctrls
}
