// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/dcrck/ultraviolet/cie"
)

// OKLabToOKLCH converts the opponent channels to polar chroma and
// hue. The same degenerate-hue rule as CIE LCH applies: a chroma that
// rounds to zero at 4 decimal digits forces the hue to 0.
func OKLabToOKLCH(l, a, b float32) (ll, c, h float32) {
	c = math32.Hypot(a, b)
	if cie.Round(c, 4) == 0 {
		return l, c, 0
	}
	h = math32.Atan2(b, a) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// OKLCHToOKLab converts polar chroma and hue back to the cartesian
// opponent channels.
func OKLCHToOKLab(l, c, h float32) (ll, a, b float32) {
	hr := h * math32.Pi / 180
	return l, c * math32.Cos(hr), c * math32.Sin(hr)
}

// OKLCH is an OKLab color in cylindrical form. L is lightness 0-1,
// C is chroma (>= 0), and H is the hue angle in degrees [0, 360).
// Alpha is 0-1, not premultiplied.
type OKLCH struct {
	L, C, H float32

	// Alpha is the 0-1 opacity of the color.
	Alpha float32
}

// NewLCH returns a fully opaque OKLCH color with the given channels.
func NewLCH(l, c, h float32) OKLCH {
	return OKLCH{l, c, h, 1}
}

// LCHFromColor constructs an OKLCH value from any [color.Color].
func LCHFromColor(c color.Color) OKLCH {
	lc := OKLCH{}
	lc.SetUint32(c.RGBA())
	return lc
}

// LCHModel is the standard [color.Model] that converts colors to OKLCH.
var LCHModel = color.ModelFunc(lchModel)

func lchModel(c color.Color) color.Color {
	if lc, ok := c.(OKLCH); ok {
		return lc
	}
	return LCHFromColor(c)
}

// AsOKLab returns the color in cartesian OKLab form.
func (lc OKLCH) AsOKLab() OKLab {
	l, a, b := OKLCHToOKLab(lc.L, lc.C, lc.H)
	return OKLab{l, a, b, lc.Alpha}
}

// RGBA implements the color.Color interface,
// premultiplying the RGB components by alpha.
func (lc OKLCH) RGBA() (r, g, b, a uint32) {
	return lc.AsOKLab().RGBA()
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (lc OKLCH) AsRGBA() color.RGBA {
	return lc.AsOKLab().AsRGBA()
}

// SetUint32 sets the OKLCH channels from alpha-premultiplied uint32
// channels in range 0-0xffff.
func (lc *OKLCH) SetUint32(r, g, b, a uint32) {
	ok := OKLab{}
	ok.SetUint32(r, g, b, a)
	lc.L, lc.C, lc.H = OKLabToOKLCH(ok.L, ok.A, ok.B)
	lc.Alpha = ok.Alpha
}

// SetColor sets the OKLCH channels from the given color.
func (lc *OKLCH) SetColor(c color.Color) {
	lc.SetUint32(c.RGBA())
}

// Rounded returns the color with L, C, and H rounded to the given
// number of decimal digits (negative digits disable rounding).
func (lc OKLCH) Rounded(digits int) OKLCH {
	return OKLCH{cie.Round(lc.L, digits), cie.Round(lc.C, digits), cie.Round(lc.H, digits), lc.Alpha}
}

func (lc OKLCH) String() string {
	return fmt.Sprintf("oklch(%g, %g, %g)", lc.L, lc.C, lc.H)
}
