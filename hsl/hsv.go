// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// HSLToHSV converts HSL channels to HSV through the closed-form
// identity v = l + s*min(l, 1-l). The hue is shared. At v = 0 the
// HSV saturation is defined as 0.
func HSLToHSV(h, s, l float32) (hh, sv, v float32) {
	v = l + s*math32.Min(l, 1-l)
	if v == 0 {
		return h, 0, 0
	}
	return h, 2 * (1 - l/v), v
}

// HSVToHSL is the inverse of [HSLToHSV]: l = v*(1 - s/2), with
// saturation 0 at the l = 0 and l = 1 degeneracies.
func HSVToHSL(h, sv, v float32) (hh, s, l float32) {
	l = v * (1 - sv/2)
	if l == 0 || l == 1 {
		return h, 0, l
	}
	return h, (v - l) / math32.Min(l, 1-l), l
}

// RGBToHSV converts 0-1 normalized sRGB values to HSV channels.
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	return HSLToHSV(RGBToHSL(r, g, b))
}

// HSVToRGB converts HSV channels to 0-1 normalized sRGB values.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	return HSLToRGB(HSVToHSL(h, s, v))
}

// HSV is a hue, saturation, value color. H is the hue angle in
// degrees [0, 360); S and V are 0-1. A is the 0-1 alpha, not
// premultiplied.
type HSV struct {
	H, S, V float32

	// A is the 0-1 opacity of the color.
	A float32
}

// NewHSV returns a fully opaque HSV color with the given channels.
func NewHSV(h, s, v float32) HSV {
	return HSV{h, s, v, 1}
}

// HSVFromColor constructs an HSV value from any [color.Color].
func HSVFromColor(c color.Color) HSV {
	h := HSV{}
	h.SetUint32(c.RGBA())
	return h
}

// HSVModel is the standard [color.Model] that converts colors to HSV.
var HSVModel = color.ModelFunc(hsvModel)

func hsvModel(c color.Color) color.Color {
	if h, ok := c.(HSV); ok {
		return h
	}
	return HSVFromColor(c)
}

// RGBA implements the color.Color interface,
// premultiplying the RGB components by alpha.
func (h HSV) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HSVToRGB(h.H, h.S, h.V)
	return uint32(fr*h.A*65535 + 0.5), uint32(fg*h.A*65535 + 0.5),
		uint32(fb*h.A*65535 + 0.5), uint32(h.A*65535 + 0.5)
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (h HSV) AsRGBA() color.RGBA {
	fr, fg, fb := HSVToRGB(h.H, h.S, h.V)
	return color.RGBA{
		uint8(fr*h.A*255 + 0.5),
		uint8(fg*h.A*255 + 0.5),
		uint8(fb*h.A*255 + 0.5),
		uint8(h.A*255 + 0.5),
	}
}

// SetUint32 sets the HSV channels from alpha-premultiplied uint32
// channels in range 0-0xffff.
func (h *HSV) SetUint32(r, g, b, a uint32) {
	hl := HSL{}
	hl.SetUint32(r, g, b, a)
	h.H, h.S, h.V = HSLToHSV(hl.H, hl.S, hl.L)
	h.A = hl.A
}

// SetColor sets the HSV channels from the given color.
func (h *HSV) SetColor(c color.Color) {
	h.SetUint32(c.RGBA())
}

func (h HSV) String() string {
	return fmt.Sprintf("hsv(%g, %g, %g)", h.H, h.S, h.V)
}
