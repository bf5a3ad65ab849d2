// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcrck/ultraviolet"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func mustAt(t *testing.T, s *Scale, x float32) color.RGBA {
	t.Helper()
	c, err := s.At(x)
	require.NoError(t, err)
	return c
}

func TestScale(t *testing.T) {
	s, err := New([]color.Color{white, black}, nil)
	require.NoError(t, err)

	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, black, mustAt(t, s, 1))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mustAt(t, s, 0.5))

	// out-of-domain values clamp, never extrapolate
	assert.Equal(t, white, mustAt(t, s, -5))
	assert.Equal(t, black, mustAt(t, s, 5))

	assert.Equal(t, ultraviolet.RGB, s.Space())
	assert.Equal(t, []float32{0, 1}, s.Domain())
	assert.Equal(t, []color.RGBA{white, black}, s.Colors())

	// the returned slices are copies
	s.Colors()[0] = red
	assert.Equal(t, white, s.Colors()[0])
}

func TestScaleSpace(t *testing.T) {
	// Lab interpolation places the midpoint at L* = 50
	s, err := New([]color.Color{white, black}, &Options{Space: ultraviolet.LAB})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{119, 119, 119, 255}, mustAt(t, s, 0.5))

	_, err = New([]color.Color{white, black}, &Options{Space: ultraviolet.Spaces(99)})
	assert.ErrorIs(t, err, ultraviolet.ErrUnknownSpace)
}

func TestScaleSingleColor(t *testing.T) {
	s, err := New([]color.Color{red}, nil)
	require.NoError(t, err)
	assert.Equal(t, red, mustAt(t, s, 0))
	assert.Equal(t, red, mustAt(t, s, 0.7))
	assert.Empty(t, cmp.Diff([]color.RGBA{red, red, red}, s.Take(3)))
}

func TestScaleDomain(t *testing.T) {
	s, err := New([]color.Color{white, black}, &Options{Domain: []float32{0, 100}})
	require.NoError(t, err)
	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mustAt(t, s, 50))
	assert.Equal(t, black, mustAt(t, s, 100))

	// one domain value per color positions the colors directly
	s, err = New([]color.Color{white, red, black}, &Options{Domain: []float32{0, 10, 100}})
	require.NoError(t, err)
	assert.Equal(t, red, mustAt(t, s, 10))
	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, black, mustAt(t, s, 100))

	// intermediate values with a mismatched count redistribute emphasis
	s, err = New([]color.Color{white, black}, &Options{Domain: []float32{0, 25, 100}})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mustAt(t, s, 25))

	// a degenerate domain resolves to its end color
	s, err = New([]color.Color{white, black}, &Options{Domain: []float32{1, 1}})
	require.NoError(t, err)
	assert.Equal(t, black, mustAt(t, s, 1))

	_, err = New([]color.Color{white, black}, &Options{Domain: []float32{1, 0}})
	assert.ErrorIs(t, err, ErrDomain)
	_, err = New([]color.Color{white, black}, &Options{Domain: []float32{1}})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestScalePadding(t *testing.T) {
	s, err := New([]color.Color{white, black}, &Options{Padding: [2]float32{0.25, 0.25}})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{191, 191, 191, 255}, mustAt(t, s, 0))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mustAt(t, s, 0.5))
	assert.Equal(t, color.RGBA{64, 64, 64, 255}, mustAt(t, s, 1))
}

func TestScaleGamma(t *testing.T) {
	s, err := New([]color.Color{white, black}, &Options{Gamma: 2})
	require.NoError(t, err)
	// gamma 2 squares the position: 0.5 -> 0.25
	assert.Equal(t, color.RGBA{191, 191, 191, 255}, mustAt(t, s, 0.5))
	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, black, mustAt(t, s, 1))

	_, err = New([]color.Color{white, black}, &Options{Gamma: -1})
	assert.ErrorIs(t, err, ErrGamma)
}

func TestScaleClasses(t *testing.T) {
	s, err := New([]color.Color{white, black}, &Options{Classes: 4})
	require.NoError(t, err)
	// four classes snap to positions 0, 1/3, 2/3, 1
	assert.Equal(t, white, mustAt(t, s, 0.1))
	assert.Equal(t, color.RGBA{170, 170, 170, 255}, mustAt(t, s, 0.3))
	assert.Equal(t, color.RGBA{85, 85, 85, 255}, mustAt(t, s, 0.6))
	assert.Equal(t, black, mustAt(t, s, 0.9))
	assert.Equal(t, black, mustAt(t, s, 1))

	// the same value everywhere within one class
	assert.Equal(t, mustAt(t, s, 0.26), mustAt(t, s, 0.49))

	s, err = New([]color.Color{white, black}, &Options{Breaks: []float32{0, 0.5, 1}})
	require.NoError(t, err)
	assert.Equal(t, white, mustAt(t, s, 0.2))
	assert.Equal(t, black, mustAt(t, s, 0.7))

	_, err = New([]color.Color{white, black}, &Options{Classes: 2})
	assert.ErrorIs(t, err, ErrClasses)
	_, err = New([]color.Color{white, black}, &Options{Breaks: []float32{1, 0}})
	assert.ErrorIs(t, err, ErrBreaks)
	_, err = New([]color.Color{white, black}, &Options{Classes: 3, Breaks: []float32{0, 1}})
	assert.Error(t, err)
}

func TestScaleCorrectLightness(t *testing.T) {
	s, err := New([]color.Color{white, black}, &Options{CorrectLightness: true})
	require.NoError(t, err)

	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, black, mustAt(t, s, 1))

	// the corrected midpoint sits at L* = 50 even in RGB space
	c := mustAt(t, s, 0.5)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
	assert.InDelta(t, 118.5, float32(c.R), 1)

	// dark-to-light works through the direction flip
	s, err = New([]color.Color{black, white}, &Options{CorrectLightness: true})
	require.NoError(t, err)
	c = mustAt(t, s, 0.5)
	assert.InDelta(t, 118.5, float32(c.R), 1)
}

func TestScaleTake(t *testing.T) {
	s, err := New([]color.Color{white, black}, nil)
	require.NoError(t, err)

	want := []color.RGBA{white, {128, 128, 128, 255}, black}
	assert.Empty(t, cmp.Diff(want, s.Take(3)))

	// a single sample takes the domain midpoint
	assert.Empty(t, cmp.Diff([]color.RGBA{{128, 128, 128, 255}}, s.Take(1)))
	assert.Nil(t, s.Take(0))

	got, err := s.TakeAt([]float32{0, 0.5, 1})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScaleFunc(t *testing.T) {
	s, err := New([]color.Color{white}, &Options{
		Func: func(x float32) (color.Color, error) {
			if x > 0.9 {
				return nil, errors.New("out of range")
			}
			return color.RGBA{uint8(x * 255), 0, 0, 255}, nil
		},
	})
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{127, 0, 0, 255}, mustAt(t, s, 0.5))

	_, err = s.At(1)
	assert.Error(t, err)
	assert.Equal(t, red, s.AtOr(1, red))
}

func TestScaleBezier(t *testing.T) {
	s, err := New([]color.Color{white, black}, &Options{Interpolation: Bezier})
	require.NoError(t, err)
	// the space defaults to Lab, so the midpoint lands on L* = 50
	assert.Equal(t, ultraviolet.LAB, s.Space())
	assert.Equal(t, color.RGBA{119, 119, 119, 255}, mustAt(t, s, 0.5))
	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, black, mustAt(t, s, 1))

	s, err = New([]color.Color{white, red, black}, &Options{
		Interpolation: Bezier, Space: ultraviolet.OKLAB,
	})
	require.NoError(t, err)
	assert.Equal(t, white, mustAt(t, s, 0))
	assert.Equal(t, black, mustAt(t, s, 1))
	// the midpoint draws half its weight from the middle control color
	mid := mustAt(t, s, 0.5)
	assert.Greater(t, mid.R, mid.B)

	_, err = New([]color.Color{white, black}, &Options{
		Interpolation: Bezier, Space: ultraviolet.HSL,
	})
	assert.ErrorIs(t, err, ErrBezierSpace)

	_, err = New([]color.Color{white, black}, &Options{Interpolation: Interpolations(9)})
	assert.Error(t, err)
}

func TestScaleErrors(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNoColors)
	_, err = New([]color.Color{}, nil)
	assert.ErrorIs(t, err, ErrNoColors)
	_, err = New([]color.Color{white, nil}, nil)
	assert.Error(t, err)
}

func TestInterpolationsString(t *testing.T) {
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "bezier", Bezier.String())
	assert.Equal(t, "Interpolations(9)", Interpolations(9).String())
}
