// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl implements the HSL and HSV cylindrical color spaces,
// computed directly from sRGB with no XYZ intermediate. HSV is derived
// from HSL through a closed-form identity, so one conversion path
// serves both spaces.
package hsl

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// HSL is a hue, saturation, lightness color. H is the hue angle in
// degrees [0, 360); S and L are 0-1. A is the 0-1 alpha, not
// premultiplied.
type HSL struct {

	// H is the hue angle in degrees, wrapping mod 360.
	H float32

	// S is the saturation, 0-1; 0 means achromatic.
	S float32

	// L is the lightness, 0-1.
	L float32

	// A is the 0-1 opacity of the color.
	A float32
}

// New returns a fully opaque HSL color with the given channels.
func New(h, s, l float32) HSL {
	return HSL{h, s, l, 1}
}

// FromColor constructs an HSL value from any [color.Color].
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetUint32(c.RGBA())
	return h
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface,
// premultiplying the RGB components by alpha.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HSLToRGB(h.H, h.S, h.L)
	return uint32(fr*h.A*65535 + 0.5), uint32(fg*h.A*65535 + 0.5),
		uint32(fb*h.A*65535 + 0.5), uint32(h.A*65535 + 0.5)
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := HSLToRGB(h.H, h.S, h.L)
	return color.RGBA{
		uint8(fr*h.A*255 + 0.5),
		uint8(fg*h.A*255 + 0.5),
		uint8(fb*h.A*255 + 0.5),
		uint8(h.A*255 + 0.5),
	}
}

// SetUint32 sets the HSL channels from alpha-premultiplied uint32
// channels in range 0-0xffff.
func (h *HSL) SetUint32(r, g, b, a uint32) {
	fa := float32(a) / 65535
	if fa == 0 {
		h.H, h.S, h.L, h.A = 0, 0, 0, 0
		return
	}
	fr := float32(r) / 65535 / fa
	fg := float32(g) / 65535 / fa
	fb := float32(b) / 65535 / fa
	h.H, h.S, h.L = RGBToHSL(fr, fg, fb)
	h.A = fa
}

// SetColor sets the HSL channels from the given color.
func (h *HSL) SetColor(c color.Color) {
	h.SetUint32(c.RGBA())
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// RGBToHSL converts 0-1 normalized sRGB values to HSL channels using
// the max / min / delta formulation. Achromatic colors get hue and
// saturation 0.
func RGBToHSL(r, g, b float32) (h, s, l float32) {
	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	s = d / (1 - math32.Abs(2*l-1))
	switch max {
	case r:
		h = math32.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, l
}

// HSLToRGB converts HSL channels to 0-1 normalized sRGB values.
// The hue is wrapped mod 360 first.
func HSLToRGB(h, s, l float32) (r, g, b float32) {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math32.Abs(2*l-1)) * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := l - c/2
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
