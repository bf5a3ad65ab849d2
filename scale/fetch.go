// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/dcrck/ultraviolet"
	"github.com/dcrck/ultraviolet/cie"
)

// Lightness-correction bisection constants. Empirical; changing them
// changes byte-level results, so they are preserved exactly.
const (
	correctIters = 20
	correctTol   = 0.01
)

// At returns the color for the given domain value. Values outside the
// domain clamp to the nearest end; they never extrapolate or error.
// The only runtime error source is a custom interpolation function.
func (s *Scale) At(x float32) (color.RGBA, error) {
	t := s.classify(x)
	t = s.mapDomain(t)
	if s.correct && s.fn == nil && len(s.colors) > 1 {
		var err error
		t, err = s.correctLightness(t)
		if err != nil {
			return color.RGBA{}, err
		}
	}
	if s.gamma != 1 {
		t = math32.Pow(t, s.gamma)
	}
	t = s.padding[0] + t*(1-s.padding[0]-s.padding[1])
	t = clamp01(t)
	return s.color(t)
}

// AtOr is like [At] but substitutes the given default color instead
// of returning an error.
func (s *Scale) AtOr(x float32, def color.Color) color.RGBA {
	c, err := s.At(x)
	if err != nil {
		return ultraviolet.AsRGBA(def)
	}
	return c
}

// Take returns n colors evenly sampled across the scale's domain,
// including both ends.
func (s *Scale) Take(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	d0, dn := s.domain[0], s.domain[len(s.domain)-1]
	cs := make([]color.RGBA, n)
	if n == 1 {
		cs[0] = s.AtOr(d0+(dn-d0)/2, color.RGBA{})
		return cs
	}
	for i := range cs {
		cs[i] = s.AtOr(d0+(dn-d0)*float32(i)/float32(n-1), color.RGBA{})
	}
	return cs
}

// TakeAt returns the colors at each of the given domain values.
func (s *Scale) TakeAt(xs []float32) ([]color.RGBA, error) {
	cs := make([]color.RGBA, len(xs))
	for i, x := range xs {
		c, err := s.At(x)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}

// classify maps a raw domain value to a normalized 0-1 position.
// With class breakpoints set, the value snaps to its bucket's
// position, producing a stepped scale; otherwise this is a plain
// normalization against the domain extremes. A degenerate domain
// (min == max) resolves to the max side.
func (s *Scale) classify(x float32) float32 {
	if len(s.breaks) > 2 {
		bins := len(s.breaks) - 1
		i := bins - 1
		for ; i > 0; i-- {
			if s.breaks[i] <= x {
				break
			}
		}
		return float32(i) / float32(bins-1)
	}
	d0, dn := s.domain[0], s.domain[len(s.domain)-1]
	if dn == d0 {
		return 1
	}
	return (x - d0) / (dn - d0)
}

// mapDomain redistributes the normalized position piecewise when the
// domain has intermediate breakpoints that do not position colors
// directly: the normalized domain breakpoints are matched against
// evenly spaced ones and the position is interpolated between the two
// sets. Positions at or beyond the ends clamp directly.
func (s *Scale) mapDomain(t float32) float32 {
	nd := len(s.domain)
	if nd <= 2 || nd == len(s.colors) {
		return t
	}
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	d0, dn := s.domain[0], s.domain[nd-1]
	if dn == d0 {
		return t
	}
	for i := 0; i < nd-1; i++ {
		lo := (s.domain[i] - d0) / (dn - d0)
		hi := (s.domain[i+1] - d0) / (dn - d0)
		if t < lo || t > hi {
			continue
		}
		elo := float32(i) / float32(nd-1)
		ehi := float32(i+1) / float32(nd-1)
		if hi == lo {
			return ehi
		}
		return elo + (ehi-elo)*(t-lo)/(hi-lo)
	}
	return t
}

// correctLightness bisects on the interpolation parameter until the
// interpolated color's Lab lightness matches the lightness linearly
// interpolated between the endpoint colors, compensating for the
// perceptual nonlinearity of the interpolation space.
func (s *Scale) correctLightness(t float32) (float32, error) {
	target := s.l0 + (s.l1-s.l0)*t
	t0, t1, t2 := float32(0), float32(1), t
	for i := 0; i < correctIters; i++ {
		c, err := s.color(t2)
		if err != nil {
			return 0, err
		}
		diff := labLightness(c) - target
		if math32.Abs(diff) < correctTol {
			break
		}
		if s.l0 > s.l1 {
			diff = -diff
		}
		if diff < 0 {
			t0 = t2
			t2 = (t2 + t1) / 2
		} else {
			t1 = t2
			t2 = (t2 + t0) / 2
		}
	}
	return t2, nil
}

// color interpolates at a fully normalized position in [0, 1].
func (s *Scale) color(t float32) (color.RGBA, error) {
	if s.fn != nil {
		c, err := s.fn(t)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("scale: custom interpolation: %w", err)
		}
		return ultraviolet.AsRGBA(c), nil
	}
	if len(s.colors) == 1 {
		return s.colors[0], nil
	}
	if s.interp == Bezier {
		return s.bezier(t), nil
	}
	last := len(s.positions) - 1
	if t <= s.positions[0] {
		return s.colors[0], nil
	}
	if t >= s.positions[last] {
		return s.colors[last], nil
	}
	i := 0
	for i < last && t > s.positions[i+1] {
		i++
	}
	span := s.positions[i+1] - s.positions[i]
	if span == 0 {
		return s.colors[i+1], nil
	}
	w := (t - s.positions[i]) / span
	return ultraviolet.Mix(s.colors[i], s.colors[i+1], w, s.space)
}

// labLightness reads the Lab lightness of an alpha-premultiplied
// color, un-premultiplying first.
func labLightness(c color.RGBA) float32 {
	if c.A == 0 {
		return 0
	}
	fa := float32(c.A) / 255
	l, _, _ := cie.SRGBToLAB(float32(c.R)/255/fa, float32(c.G)/255/fa, float32(c.B)/255/fa)
	return l
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
