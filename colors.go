// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ultraviolet

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/dcrck/ultraviolet/hsl"
)

// ErrInvalidColor is returned for color tokens that parse as neither
// a hex string, a named color, nor a CSS functional form.
var ErrInvalidColor = errors.New("invalid color")

// Transparent is the fully transparent color.
var Transparent = color.RGBA{}

// AsRGBA returns the given color as an alpha-premultiplied
// [color.RGBA], like all color.RGBA values in this library.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	switch c := c.(type) {
	case color.RGBA:
		return c
	case interface{ AsRGBA() color.RGBA }:
		return c.AsRGBA()
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// nrgba returns the color's normalized non-premultiplied channels.
func nrgba(c color.Color) (fr, fg, fb, fa float32) {
	r := AsRGBA(c)
	fa = float32(r.A) / 255
	if fa == 0 {
		return 0, 0, 0, 0
	}
	fr = float32(r.R) / 255 / fa
	fg = float32(r.G) / 255 / fa
	fb = float32(r.B) / 255 / fa
	return
}

// fromNRGBA re-premultiplies normalized non-premultiplied channels,
// clamping each to the byte range.
func fromNRGBA(fr, fg, fb, fa float32) color.RGBA {
	if fa < 0 {
		fa = 0
	} else if fa > 1 {
		fa = 1
	}
	return color.RGBA{
		clampByte(fr * fa * 255),
		clampByte(fg * fa * 255),
		clampByte(fb * fa * 255),
		clampByte(fa * 255),
	}
}

// WithAF32 returns the given color with the alpha set to the given
// 0-1 value, preserving the underlying color channels.
func WithAF32(c color.Color, a float32) color.RGBA {
	fr, fg, fb, _ := nrgba(c)
	return fromNRGBA(fr, fg, fb, a)
}

// ApplyOpacity returns the given color with its alpha multiplied by
// the given 0-1 opacity.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	fr, fg, fb, fa := nrgba(c)
	return fromNRGBA(fr, fg, fb, fa*opacity)
}

// FromName returns the color with the given CSS / SVG 1.1 name.
// It returns an error if the name is not found; see [MustFromName]
// for a version that panics instead.
func FromName(name string) (color.RGBA, error) {
	lname := strings.ToLower(name)
	// CSS Color 4 addition, absent from the SVG 1.1 table
	if lname == "rebeccapurple" {
		return color.RGBA{102, 51, 153, 255}, nil
	}
	c, ok := colornames.Map[lname]
	if !ok {
		return color.RGBA{}, fmt.Errorf("ultraviolet.FromName: %w: name not found: %q", ErrInvalidColor, name)
	}
	return c, nil
}

// MustFromName is like [FromName] but panics if the name is not found.
func MustFromName(name string) color.RGBA {
	c, err := FromName(name)
	if err != nil {
		panic("ultraviolet.MustFromName: " + err.Error())
	}
	return c
}

// FromHex parses a hex color string with 3, 4, 6, or 8 hex digits and
// an optional leading '#', returning the resulting color. The 4- and
// 8-digit forms carry alpha.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	n := 0
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		n++
	case 4:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		n++
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("ultraviolet.FromHex: %w: bad length: %q", ErrInvalidColor, hex)
	}
	if err != nil || n < 4 {
		return color.RGBA{}, fmt.Errorf("ultraviolet.FromHex: %w: %q", ErrInvalidColor, hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex is like [FromHex] but panics on a malformed string.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("ultraviolet.MustFromHex: " + err.Error())
	}
	return c
}

// FromString returns a color parsed from the given string: a hex
// value (with or without '#'), a CSS color name, "transparent", or an
// rgb(r, g, b) / rgba(r, g, b, a) functional form. The base color is
// only used by the relative forms lighten-PCT, darken-PCT,
// saturate-PCT, desaturate-PCT, and inverse, which transform it.
func FromString(str string, base color.Color) (color.RGBA, error) {
	if len(str) == 0 {
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		val := strings.TrimRight(lstr[5:], ")")
		var r, g, b int
		var a float32
		n, err := fmt.Sscanf(strings.ReplaceAll(val, ",", " "), "%d %d %d %g", &r, &g, &b, &a)
		if err != nil || n < 4 {
			return color.RGBA{}, fmt.Errorf("ultraviolet.FromString: %w: %q", ErrInvalidColor, str)
		}
		return WithAF32(color.RGBA{uint8(r), uint8(g), uint8(b), 255}, a), nil
	case strings.HasPrefix(lstr, "rgb("):
		val := strings.TrimRight(lstr[4:], ")")
		var r, g, b int
		n, err := fmt.Sscanf(strings.ReplaceAll(val, ",", " "), "%d %d %d", &r, &g, &b)
		if err != nil || n < 3 {
			return color.RGBA{}, fmt.Errorf("ultraviolet.FromString: %w: %q", ErrInvalidColor, str)
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
	}
	if hidx := strings.Index(lstr, "-"); hidx > 0 {
		cmd := lstr[:hidx]
		pct64, perr := strconv.ParseFloat(lstr[hidx+1:], 32)
		switch cmd {
		case "lighten", "darken", "saturate", "desaturate":
			if perr != nil {
				return color.RGBA{}, fmt.Errorf("ultraviolet.FromString: error getting percent from %q: %w", lstr[hidx+1:], perr)
			}
			if base == nil {
				return color.RGBA{}, fmt.Errorf("ultraviolet.FromString: base color required for %q", cmd)
			}
			pct := float32(pct64)
			switch cmd {
			case "lighten":
				return hsl.Lighten(base, pct), nil
			case "darken":
				return hsl.Darken(base, pct), nil
			case "saturate":
				return hsl.Saturate(base, pct), nil
			case "desaturate":
				return hsl.Desaturate(base, pct), nil
			}
		}
	}
	switch lstr {
	case "transparent", "none":
		return Transparent, nil
	case "inverse":
		if base == nil {
			return color.RGBA{}, errors.New("ultraviolet.FromString: base color required for inverse")
		}
		return Inverse(base), nil
	}
	if c, err := FromName(lstr); err == nil {
		return c, nil
	}
	switch len(lstr) {
	case 3, 4, 6, 8:
		if c, err := FromHex(lstr); err == nil {
			return c, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("ultraviolet.FromString: %w: %q", ErrInvalidColor, str)
}

// MustFromString is like [FromString] but panics on any error.
func MustFromString(str string, base color.Color) color.RGBA {
	c, err := FromString(str, base)
	if err != nil {
		panic("ultraviolet.MustFromString: " + err.Error())
	}
	return c
}

// LogFromString is like [FromString] but logs any error and returns
// the zero color.
func LogFromString(str string, base color.Color) color.RGBA {
	c, err := FromString(str, base)
	if err != nil {
		log.Println("error: ultraviolet.LogFromString: " + err.Error())
	}
	return c
}

// FromAny returns a color from the given value, which may be a
// string (parsed with [FromString]) or any [color.Color].
func FromAny(val any, base color.Color) (color.RGBA, error) {
	switch v := val.(type) {
	case string:
		return FromString(v, base)
	case color.Color:
		return AsRGBA(v), nil
	default:
		return color.RGBA{}, fmt.Errorf("ultraviolet.FromAny: could not set color from value %v of type %T", val, val)
	}
}

// AsHex returns the color as a lowercase hex string #rrggbb, with an
// aa suffix only when the alpha is not fully opaque.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}

// AsCSS returns the color in the modern CSS functional form
// rgb(r g b), with a " / a" alpha suffix only when the alpha is not
// fully opaque.
func AsCSS(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("rgb(%d %d %d)", r.R, r.G, r.B)
	}
	a := strconv.FormatFloat(float64(r.A)/255, 'g', 3, 32)
	return fmt.Sprintf("rgb(%d %d %d / %s)", r.R, r.G, r.B, a)
}

// Inverse returns the inverse of the given color (255 - each
// component), leaving the alpha channel unchanged.
func Inverse(c color.Color) color.RGBA {
	r := AsRGBA(c)
	return color.RGBA{255 - r.R, 255 - r.G, 255 - r.B, r.A}
}
