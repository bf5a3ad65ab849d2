// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the OKLab perceptually uniform color space
// and its cylindrical form OKLCH. OKLab is defined against D65 only:
// linear sRGB is taken through a fixed LMS cone-response matrix, each
// cone signal is cube-rooted, and a second fixed matrix produces the
// lightness and opponent channels.
package oklab

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/dcrck/ultraviolet/cie"
)

// LinearToOKLab converts linear sRGB values to OKLab channels.
// l is lightness 0-1; a and b are the opponent channels, roughly ±0.4.
func LinearToOKLab(rl, gl, bl float32) (l, a, b float32) {
	lm := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	mm := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	sm := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	lp := math32.Cbrt(lm)
	mp := math32.Cbrt(mm)
	sp := math32.Cbrt(sm)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	b = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// OKLabToLinear converts OKLab channels back to linear sRGB.
// Out-of-gamut results are not clamped.
func OKLabToLinear(l, a, b float32) (rl, gl, bl float32) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lm := lp * lp * lp
	mm := mp * mp * mp
	sm := sp * sp * sp

	rl = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	gl = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	bl = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return
}

// SRGBToOKLab converts 0-1 normalized gamma-corrected sRGB values to
// OKLab.
func SRGBToOKLab(r, g, b float32) (l, a, bb float32) {
	return LinearToOKLab(cie.SRGBToLinear(r, g, b))
}

// OKLabToSRGB converts OKLab channels to 0-1 normalized
// gamma-corrected sRGB. Out-of-gamut results are not clamped.
func OKLabToSRGB(l, a, bb float32) (r, g, b float32) {
	return cie.SRGBFromLinear(OKLabToLinear(l, a, bb))
}

// OKLab is a color in the OKLab space. L is lightness 0-1; A and B
// are the opponent channels. Alpha is 0-1, not premultiplied.
type OKLab struct {
	L, A, B float32

	// Alpha is the 0-1 opacity of the color.
	Alpha float32
}

// New returns a fully opaque OKLab color with the given channels.
func New(l, a, b float32) OKLab {
	return OKLab{l, a, b, 1}
}

// FromColor constructs an OKLab value from any [color.Color].
func FromColor(c color.Color) OKLab {
	ok := OKLab{}
	ok.SetUint32(c.RGBA())
	return ok
}

// Model is the standard [color.Model] that converts colors to OKLab.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if ok, o := c.(OKLab); o {
		return ok
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface,
// premultiplying the RGB components by alpha.
func (ok OKLab) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := OKLabToSRGB(ok.L, ok.A, ok.B)
	return cie.SRGBFloatToUint32(fr, fg, fb, ok.Alpha)
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA],
// clamping each channel to the byte range.
func (ok OKLab) AsRGBA() color.RGBA {
	fr, fg, fb := OKLabToSRGB(ok.L, ok.A, ok.B)
	r, g, b, a := cie.SRGBFloatToUint8(fr, fg, fb, ok.Alpha)
	return color.RGBA{r, g, b, a}
}

// SetUint32 sets the OKLab channels from alpha-premultiplied uint32
// channels in range 0-0xffff.
func (ok *OKLab) SetUint32(r, g, b, a uint32) {
	fr, fg, fb, fa := cie.SRGBUint32ToFloat(r, g, b, a)
	ok.L, ok.A, ok.B = SRGBToOKLab(fr, fg, fb)
	ok.Alpha = fa
}

// SetColor sets the OKLab channels from the given color.
func (ok *OKLab) SetColor(c color.Color) {
	ok.SetUint32(c.RGBA())
}

// Rounded returns the color with each channel rounded to the given
// number of decimal digits (negative digits disable rounding).
func (ok OKLab) Rounded(digits int) OKLab {
	return OKLab{cie.Round(ok.L, digits), cie.Round(ok.A, digits), cie.Round(ok.B, digits), ok.Alpha}
}

func (ok OKLab) String() string {
	return fmt.Sprintf("oklab(%g, %g, %g)", ok.L, ok.A, ok.B)
}
