// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ultraviolet

import (
	"fmt"
	"image/color"

	"github.com/dcrck/ultraviolet/cie"
	"github.com/dcrck/ultraviolet/hsl"
	"github.com/dcrck/ultraviolet/oklab"
)

// Convert returns the given color represented in the given space:
// [color.RGBA] for RGB and LinearRGB, [hsl.HSL], [hsl.HSV],
// [cie.Lab], [cie.LCH], [oklab.OKLab], or [oklab.OKLCH]. It returns
// an error for an unknown space.
func Convert(c color.Color, space Spaces) (color.Color, error) {
	switch space {
	case RGB, LinearRGB:
		return AsRGBA(c), nil
	case HSL:
		return hsl.FromColor(c), nil
	case HSV:
		return hsl.HSVFromColor(c), nil
	case LAB:
		return cie.LABFromColor(c), nil
	case LCH:
		return cie.LCHFromColor(c), nil
	case OKLAB:
		return oklab.FromColor(c), nil
	case OKLCH:
		return oklab.LCHFromColor(c), nil
	}
	return nil, fmt.Errorf("ultraviolet.Convert: %w: %d", ErrUnknownSpace, int32(space))
}

// Coords returns the channel vector of the color in the given space,
// with alpha as the last element. RGB channels are 0-255; LinearRGB
// channels are 0-1 normalized sRGB (squared-domain combination is the
// caller's concern); all other spaces use their native channel ranges.
func Coords(c color.Color, space Spaces) ([4]float32, error) {
	fr, fg, fb, fa := nrgba(c)
	switch space {
	case RGB:
		return [4]float32{fr * 255, fg * 255, fb * 255, fa}, nil
	case LinearRGB:
		return [4]float32{fr, fg, fb, fa}, nil
	case HSL:
		h, s, l := hsl.RGBToHSL(fr, fg, fb)
		return [4]float32{h, s, l, fa}, nil
	case HSV:
		h, s, v := hsl.RGBToHSV(fr, fg, fb)
		return [4]float32{h, s, v, fa}, nil
	case LAB:
		l, la, lb := cie.SRGBToLAB(fr, fg, fb)
		return [4]float32{l, la, lb, fa}, nil
	case LCH:
		l, ch, h := cie.LABToLCH(cie.SRGBToLAB(fr, fg, fb))
		return [4]float32{l, ch, h, fa}, nil
	case OKLAB:
		l, la, lb := oklab.SRGBToOKLab(fr, fg, fb)
		return [4]float32{l, la, lb, fa}, nil
	case OKLCH:
		l, ch, h := oklab.OKLabToOKLCH(oklab.SRGBToOKLab(fr, fg, fb))
		return [4]float32{l, ch, h, fa}, nil
	}
	return [4]float32{}, fmt.Errorf("ultraviolet.Coords: %w: %d", ErrUnknownSpace, int32(space))
}

// FromCoords reconstructs a color from a channel vector produced by
// [Coords], clamping each sRGB channel to the byte range.
func FromCoords(space Spaces, v [4]float32) (color.RGBA, error) {
	var fr, fg, fb float32
	switch space {
	case RGB:
		fr, fg, fb = v[0]/255, v[1]/255, v[2]/255
	case LinearRGB:
		fr, fg, fb = v[0], v[1], v[2]
	case HSL:
		fr, fg, fb = hsl.HSLToRGB(v[0], v[1], v[2])
	case HSV:
		fr, fg, fb = hsl.HSVToRGB(v[0], v[1], v[2])
	case LAB:
		fr, fg, fb = cie.LABToSRGB(v[0], v[1], v[2])
	case LCH:
		fr, fg, fb = cie.LABToSRGB(cie.LCHToLAB(v[0], v[1], v[2]))
	case OKLAB:
		fr, fg, fb = oklab.OKLabToSRGB(v[0], v[1], v[2])
	case OKLCH:
		fr, fg, fb = oklab.OKLabToSRGB(oklab.OKLCHToOKLab(v[0], v[1], v[2]))
	default:
		return color.RGBA{}, fmt.Errorf("ultraviolet.FromCoords: %w: %d", ErrUnknownSpace, int32(space))
	}
	return fromNRGBA(fr, fg, fb, v[3]), nil
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
