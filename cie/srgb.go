// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts a gamma-corrected sRGB component in range
// 0-1 to linear light, using the sRGB piecewise companding curve
// (linear below 0.04045, power 2.4 above). The sign is preserved so
// that out-of-gamut negative intermediates survive a round trip.
func SRGBToLinearComp(v float32) float32 {
	sign := float32(1)
	if v < 0 {
		sign = -1
		v = -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light component to a
// gamma-corrected sRGB component in range 0-1 (gamma 1/2.4 above the
// linear threshold of 0.0031308). The sign is preserved.
func SRGBFromLinearComp(v float32) float32 {
	sign := float32(1)
	if v < 0 {
		sign = -1
		v = -v
	}
	if v <= 0.0031308 {
		return sign * v * 12.92
	}
	return sign * (1.055*math32.Pow(v, 1.0/2.4) - 0.055)
}

// SRGBToLinear converts 0-1 normalized gamma-corrected sRGB values
// to linear light.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear-light values to 0-1 normalized
// gamma-corrected sRGB.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBLinToXYZ converts linear sRGB values to XYZ tristimulus values
// relative to the sRGB D65 primaries.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToSRGBLin converts XYZ tristimulus values (D65) to linear sRGB.
// Out-of-gamut results are not clamped here.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl = -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// SRGBToXYZ converts 0-1 normalized gamma-corrected sRGB values to
// XYZ relative to D65.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts XYZ (D65) to 0-1 normalized gamma-corrected sRGB.
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}

// SRGBUint8ToFloat converts alpha-premultiplied uint8 channels to
// normalized non-premultiplied floats.
func SRGBUint8ToFloat(r, g, b, a uint8) (fr, fg, fb, fa float32) {
	fa = float32(a) / 255
	if fa == 0 {
		return 0, 0, 0, 0
	}
	fr = float32(r) / 255 / fa
	fg = float32(g) / 255 / fa
	fb = float32(b) / 255 / fa
	return
}

// SRGBFloatToUint8 converts normalized non-premultiplied float
// channels to alpha-premultiplied uint8, clamping each channel.
func SRGBFloatToUint8(fr, fg, fb, fa float32) (r, g, b, a uint8) {
	r = uint8(clamp01(fr*fa)*255 + 0.5)
	g = uint8(clamp01(fg*fa)*255 + 0.5)
	b = uint8(clamp01(fb*fa)*255 + 0.5)
	a = uint8(clamp01(fa)*255 + 0.5)
	return
}

// SRGBFloatToUint32 converts normalized non-premultiplied float
// channels to alpha-premultiplied uint32 in range 0-0xffff, as
// required by the color.Color interface.
func SRGBFloatToUint32(fr, fg, fb, fa float32) (r, g, b, a uint32) {
	r = uint32(clamp01(fr*fa)*65535 + 0.5)
	g = uint32(clamp01(fg*fa)*65535 + 0.5)
	b = uint32(clamp01(fb*fa)*65535 + 0.5)
	a = uint32(clamp01(fa)*65535 + 0.5)
	return
}

// SRGBUint32ToFloat converts alpha-premultiplied uint32 channels in
// range 0-0xffff to normalized non-premultiplied floats.
func SRGBUint32ToFloat(r, g, b, a uint32) (fr, fg, fb, fa float32) {
	fa = float32(a) / 65535
	if fa == 0 {
		return 0, 0, 0, 0
	}
	fr = float32(r) / 65535 / fa
	fg = float32(g) / 65535 / fa
	fb = float32(b) / 65535 / fa
	return
}

// Round rounds v to the given number of decimal digits.
// Negative digits disable rounding.
func Round(v float32, digits int) float32 {
	if digits < 0 {
		return v
	}
	p := math32.Pow(10, float32(digits))
	return math32.Round(v*p) / p
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
