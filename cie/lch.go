// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// LABToLCH re-expresses the a*, b* opponent channels in polar form:
// chroma is the magnitude and hue the angle in degrees, normalized to
// [0, 360). A chroma that rounds to zero at 4 decimal digits forces
// the hue to 0, so grays never carry meaningless hue noise.
func LABToLCH(l, a, b float32) (ll, c, h float32) {
	c = math32.Hypot(a, b)
	if Round(c, 4) == 0 {
		return l, c, 0
	}
	h = math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// LCHToLAB converts the polar chroma and hue back to cartesian a*, b*.
func LCHToLAB(l, c, h float32) (ll, a, b float32) {
	hr := h * math32.Pi / 180
	return l, c * math32.Cos(hr), c * math32.Sin(hr)
}

// LCH is a CIE L*a*b* color in cylindrical form, relative to D65.
// L is lightness 0-100, C is chroma (>= 0), and H is the hue angle in
// degrees [0, 360). Alpha is 0-1, not premultiplied.
type LCH struct {
	L, C, H float32

	// Alpha is the 0-1 opacity of the color.
	Alpha float32
}

// NewLCH returns a fully opaque LCH color with the given channels.
func NewLCH(l, c, h float32) LCH {
	return LCH{l, c, h, 1}
}

// LCHFromColor constructs an LCH value from any [color.Color].
func LCHFromColor(c color.Color) LCH {
	lc := LCH{}
	lc.SetUint32(c.RGBA())
	return lc
}

// LCHModel is the standard [color.Model] that converts colors to LCH.
var LCHModel = color.ModelFunc(lchModel)

func lchModel(c color.Color) color.Color {
	if lc, ok := c.(LCH); ok {
		return lc
	}
	return LCHFromColor(c)
}

// AsLab returns the color in cartesian Lab form.
func (lc LCH) AsLab() Lab {
	l, a, b := LCHToLAB(lc.L, lc.C, lc.H)
	return Lab{l, a, b, lc.Alpha}
}

// RGBA implements the color.Color interface,
// premultiplying the RGB components by alpha.
func (lc LCH) RGBA() (r, g, b, a uint32) {
	return lc.AsLab().RGBA()
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (lc LCH) AsRGBA() color.RGBA {
	return lc.AsLab().AsRGBA()
}

// SetUint32 sets the LCH channels from alpha-premultiplied uint32
// channels in range 0-0xffff.
func (lc *LCH) SetUint32(r, g, b, a uint32) {
	lb := Lab{}
	lb.SetUint32(r, g, b, a)
	lc.L, lc.C, lc.H = LABToLCH(lb.L, lb.A, lb.B)
	lc.Alpha = lb.Alpha
}

// SetColor sets the LCH channels from the given color.
func (lc *LCH) SetColor(c color.Color) {
	lc.SetUint32(c.RGBA())
}

// Rounded returns the color with L, C, and H rounded to the given
// number of decimal digits (negative digits disable rounding).
func (lc LCH) Rounded(digits int) LCH {
	return LCH{Round(lc.L, digits), Round(lc.C, digits), Round(lc.H, digits), lc.Alpha}
}

func (lc LCH) String() string {
	return fmt.Sprintf("lch(%g, %g, %g)", lc.L, lc.C, lc.H)
}
