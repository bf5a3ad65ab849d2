// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Constants of the CIE 1976 L* nonlinearity: labE is (6/29)^3, the
// ratio below which the function is a linear ramp, and labKappa is
// (29/3)^3, the slope of that ramp.
const (
	labE     = 216.0 / 24389.0
	labKappa = 24389.0 / 27.0
)

// LABCompress is the nonlinear f(t) function of the CIE L*a*b*
// transform: cube root above the (6/29)^3 threshold, linear ramp below.
func LABCompress(t float32) float32 {
	if t > labE {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the algebraic inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	if t := ft * ft * ft; t > labE {
		return t
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts XYZ tristimulus values to L*a*b* relative to the
// D65 reference white.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	w := whites[D65]
	return XYZToLABWhite(x, y, z, w[0], w[1])
}

// XYZToLABWhite converts XYZ tristimulus values to L*a*b* relative to
// a reference white with the given X and Z values (Y = 1).
func XYZToLABWhite(x, y, z, wx, wz float32) (l, a, b float32) {
	fx := LABCompress(x / wx)
	fy := LABCompress(y)
	fz := LABCompress(z / wz)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* to XYZ tristimulus values relative to the
// D65 reference white.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	w := whites[D65]
	return LABToXYZWhite(l, a, b, w[0], w[1])
}

// LABToXYZWhite converts L*a*b* to XYZ tristimulus values relative to
// a reference white with the given X and Z values (Y = 1).
func LABToXYZWhite(l, a, b, wx, wz float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * wx
	y = LABUncompress(fy)
	z = LABUncompress(fz) * wz
	return
}

// LToY converts an L* value (0-100) to an XYZ Y (luminance) value.
func LToY(l float32) float32 {
	return LABUncompress((l+16)/116) * 100
}

// YToL converts an XYZ Y (luminance) value to L* (0-100).
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}

// SRGBToLAB converts 0-1 normalized gamma-corrected sRGB values to
// L*a*b* relative to D65.
func SRGBToLAB(r, g, b float32) (l, la, lb float32) {
	x, y, z := SRGBToXYZ(r, g, b)
	return XYZToLAB(x, y, z)
}

// LABToSRGB converts L*a*b* (D65) to 0-1 normalized gamma-corrected
// sRGB. Out-of-gamut results are not clamped.
func LABToSRGB(l, la, lb float32) (r, g, b float32) {
	x, y, z := LABToXYZ(l, la, lb)
	return XYZToSRGB(x, y, z)
}

// SRGBToLABIll converts sRGB to L*a*b* relative to an arbitrary
// reference illuminant, Bradford-adapting the tristimulus values from
// the sRGB D65 frame first. It returns an error for an unknown
// illuminant.
func SRGBToLABIll(r, g, b float32, il Illuminant) (l, la, lb float32, err error) {
	wx, wz, err := White(il)
	if err != nil {
		return 0, 0, 0, err
	}
	x, y, z := SRGBToXYZ(r, g, b)
	x, y, z, err = AdaptXYZ(x, y, z, D65, il)
	if err != nil {
		return 0, 0, 0, err
	}
	l, la, lb = XYZToLABWhite(x, y, z, wx, wz)
	return l, la, lb, nil
}

// LABToSRGBIll converts L*a*b* relative to an arbitrary reference
// illuminant back to sRGB, Bradford-adapting into the D65 frame.
// It returns an error for an unknown illuminant.
func LABToSRGBIll(l, la, lb float32, il Illuminant) (r, g, b float32, err error) {
	wx, wz, err := White(il)
	if err != nil {
		return 0, 0, 0, err
	}
	x, y, z := LABToXYZWhite(l, la, lb, wx, wz)
	x, y, z, err = AdaptXYZ(x, y, z, il, D65)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = XYZToSRGB(x, y, z)
	return r, g, b, nil
}

// Lab is a CIE L*a*b* color relative to the D65 reference white.
// L is lightness 0-100; A and B are the green-red and blue-yellow
// opponent channels, practically within ±160. Alpha is 0-1 and is not
// premultiplied.
type Lab struct {
	L, A, B float32

	// Alpha is the 0-1 opacity of the color.
	Alpha float32
}

// NewLab returns a fully opaque L*a*b* color with the given channels.
func NewLab(l, a, b float32) Lab {
	return Lab{l, a, b, 1}
}

// LABFromColor constructs a Lab value from any [color.Color].
func LABFromColor(c color.Color) Lab {
	lb := Lab{}
	lb.SetUint32(c.RGBA())
	return lb
}

// LabModel is the standard [color.Model] that converts colors to Lab.
var LabModel = color.ModelFunc(labModel)

func labModel(c color.Color) color.Color {
	if lb, ok := c.(Lab); ok {
		return lb
	}
	return LABFromColor(c)
}

// RGBA implements the color.Color interface,
// premultiplying the RGB components by alpha.
func (lb Lab) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := LABToSRGB(lb.L, lb.A, lb.B)
	return SRGBFloatToUint32(fr, fg, fb, lb.Alpha)
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA],
// clamping each channel to the byte range.
func (lb Lab) AsRGBA() color.RGBA {
	fr, fg, fb := LABToSRGB(lb.L, lb.A, lb.B)
	r, g, b, a := SRGBFloatToUint8(fr, fg, fb, lb.Alpha)
	return color.RGBA{r, g, b, a}
}

// SetUint32 sets the Lab channels from alpha-premultiplied uint32
// channels in range 0-0xffff.
func (lb *Lab) SetUint32(r, g, b, a uint32) {
	fr, fg, fb, fa := SRGBUint32ToFloat(r, g, b, a)
	lb.L, lb.A, lb.B = SRGBToLAB(fr, fg, fb)
	lb.Alpha = fa
}

// SetColor sets the Lab channels from the given color.
func (lb *Lab) SetColor(c color.Color) {
	lb.SetUint32(c.RGBA())
}

// Rounded returns the color with each Lab channel rounded to the
// given number of decimal digits (negative digits disable rounding).
// Alpha is untouched.
func (lb Lab) Rounded(digits int) Lab {
	return Lab{Round(lb.L, digits), Round(lb.A, digits), Round(lb.B, digits), lb.Alpha}
}

func (lb Lab) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)", lb.L, lb.A, lb.B)
}
