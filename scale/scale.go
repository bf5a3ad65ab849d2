// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale builds color scales: mappings from a numeric domain
// to colors, with support for non-uniform domains, discrete classes,
// gamma correction, padding, perceptual lightness correction, and
// linear, Bezier, or custom interpolation in any color space.
//
// A [Scale] is immutable once constructed; all validation and
// position derivation happens in [New], and queries are pure reads,
// so a single scale can be queried from many goroutines.
package scale

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/dcrck/ultraviolet"
)

// Interpolations are the strategies for interpolating between the
// scale's colors.
type Interpolations int32

const (
	// Linear mixes the two colors bracketing the query position.
	Linear Interpolations = iota

	// Bezier blends all of the scale's colors at once with a
	// Bernstein (de Casteljau) polynomial over a Lab-like space.
	Bezier

	// InterpolationsN is the number of valid interpolations.
	InterpolationsN
)

var interpolationNames = []string{"linear", "bezier"}

// String returns the lowercase name of the interpolation.
func (in Interpolations) String() string {
	if in < 0 || in >= InterpolationsN {
		return fmt.Sprintf("Interpolations(%d)", int32(in))
	}
	return interpolationNames[in]
}

// Func is a custom interpolation function: it receives the normalized
// position in [0, 1] and returns the color there.
type Func func(x float32) (color.Color, error)

// Construction errors.
var (
	ErrNoColors    = errors.New("scale needs at least one color")
	ErrDomain      = errors.New("domain must be monotonically non-decreasing with at least 2 values")
	ErrGamma       = errors.New("gamma must be positive")
	ErrClasses     = errors.New("classes must be 0 or greater than 2")
	ErrBreaks      = errors.New("class breakpoints must be monotonically non-decreasing with at least 2 values")
	ErrBezierSpace = errors.New("bezier interpolation requires the lab or oklab space")
)

// Options configure a [Scale]. The zero value gives a linear RGB
// scale over the domain [0, 1].
type Options struct {

	// Space is the color space in which colors are interpolated.
	// For Bezier interpolation it must be LAB or OKLAB; leaving it
	// at the RGB zero value with Bezier selects LAB.
	Space ultraviolet.Spaces

	// Domain is the usable input range. Its first and last values
	// are the extremes; when its length equals the color count the
	// intermediate values position each color, and otherwise any
	// intermediate values redistribute emphasis piecewise across
	// the gradient. Defaults to [0, 1].
	Domain []float32

	// Padding cuts the given fractions off the left and right ends
	// of the gradient, the way CSS gradients can be inset.
	Padding [2]float32

	// Gamma raises the normalized position to the given exponent;
	// values above 1 emphasize the low end. 0 means 1 (identity).
	Gamma float32

	// CorrectLightness adjusts query positions so that lightness
	// varies linearly from the first color to the last, bisecting
	// against the actual interpolated lightness. Best combined with
	// a Lab-like space.
	CorrectLightness bool

	// Classes discretizes the scale into this many constant-color
	// classes. 0 means continuous; values of 1 or 2 are an error.
	Classes int

	// Breaks discretizes the scale at explicit breakpoints instead
	// of the equal-width bins of Classes. Mutually exclusive with
	// Classes.
	Breaks []float32

	// Interpolation selects the interpolation strategy.
	Interpolation Interpolations

	// Func, when set, replaces the interpolation entirely: the
	// scale calls it with the normalized position.
	Func Func
}

// Scale maps values from a numeric domain to colors. Construct with
// [New]; query with [At], [AtOr], and [Take].
type Scale struct {
	colors    []color.RGBA
	space     ultraviolet.Spaces
	domain    []float32
	padding   [2]float32
	gamma     float32
	correct   bool
	breaks    []float32
	interp    Interpolations
	fn        Func
	positions []float32
	binomials []float32
	controls  [][4]float32
	l0, l1    float32
}

// New returns a validated scale over the given colors. No
// partially-valid scale ever escapes: any invalid option combination
// is reported here, and queries afterwards cannot fail except through
// a custom interpolation function.
func New(colors []color.Color, opts *Options) (*Scale, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("scale.New: %w", ErrNoColors)
	}
	s := &Scale{
		space:   opts.Space,
		padding: opts.Padding,
		gamma:   opts.Gamma,
		correct: opts.CorrectLightness,
		interp:  opts.Interpolation,
		fn:      opts.Func,
	}
	s.colors = make([]color.RGBA, len(colors))
	for i, c := range colors {
		if c == nil {
			return nil, fmt.Errorf("scale.New: color %d is nil", i)
		}
		s.colors[i] = ultraviolet.AsRGBA(c)
	}
	if !s.space.Valid() {
		return nil, fmt.Errorf("scale.New: %w: %d", ultraviolet.ErrUnknownSpace, int32(s.space))
	}
	if s.gamma == 0 {
		s.gamma = 1
	}
	if s.gamma < 0 {
		return nil, fmt.Errorf("scale.New: %w: %g", ErrGamma, opts.Gamma)
	}

	s.domain = opts.Domain
	if s.domain == nil {
		s.domain = []float32{0, 1}
	}
	if len(s.domain) < 2 || !monotonic(s.domain) {
		return nil, fmt.Errorf("scale.New: %w: %v", ErrDomain, opts.Domain)
	}

	if opts.Classes != 0 && opts.Breaks != nil {
		return nil, errors.New("scale.New: Classes and Breaks are mutually exclusive")
	}
	switch {
	case opts.Breaks != nil:
		if len(opts.Breaks) < 2 || !monotonic(opts.Breaks) {
			return nil, fmt.Errorf("scale.New: %w: %v", ErrBreaks, opts.Breaks)
		}
		s.breaks = opts.Breaks
	case opts.Classes != 0:
		if opts.Classes <= 2 {
			return nil, fmt.Errorf("scale.New: %w: %d", ErrClasses, opts.Classes)
		}
		s.breaks = evenBreaks(s.domain[0], s.domain[len(s.domain)-1], opts.Classes)
	}

	if s.interp < 0 || s.interp >= InterpolationsN {
		return nil, fmt.Errorf("scale.New: unknown interpolation: %d", int32(s.interp))
	}
	if s.interp == Bezier && s.fn == nil {
		// the RGB zero value means the space was simply not set
		if s.space == ultraviolet.RGB {
			s.space = ultraviolet.LAB
		}
		if s.space != ultraviolet.LAB && s.space != ultraviolet.OKLAB {
			return nil, fmt.Errorf("scale.New: %w: got %v", ErrBezierSpace, opts.Space)
		}
		s.binomials = pascalRow(len(s.colors) - 1)
		s.controls = bezierControls(s.colors, s.space)
	}

	s.positions = positions(s.colors, s.domain)
	if s.correct {
		s.l0 = labLightness(s.colors[0])
		s.l1 = labLightness(s.colors[len(s.colors)-1])
	}
	return s, nil
}

// Colors returns a copy of the scale's colors.
func (s *Scale) Colors() []color.RGBA {
	cs := make([]color.RGBA, len(s.colors))
	copy(cs, s.colors)
	return cs
}

// Domain returns a copy of the scale's domain.
func (s *Scale) Domain() []float32 {
	d := make([]float32, len(s.domain))
	copy(d, s.domain)
	return d
}

// Space returns the space the scale interpolates in.
func (s *Scale) Space() ultraviolet.Spaces {
	return s.space
}

// positions derives the normalized 0-1 position of each color: the
// normalized domain values when the domain has exactly one value per
// color and is non-degenerate, and even spacing otherwise.
func positions(colors []color.RGBA, domain []float32) []float32 {
	n := len(colors)
	pos := make([]float32, n)
	if n == 1 {
		return pos
	}
	d0, dn := domain[0], domain[len(domain)-1]
	if len(domain) == n && dn != d0 {
		for i, d := range domain {
			pos[i] = (d - d0) / (dn - d0)
		}
		return pos
	}
	for i := range pos {
		pos[i] = float32(i) / float32(n-1)
	}
	return pos
}

// evenBreaks returns classes+1 equal-width breakpoints over [lo, hi].
func evenBreaks(lo, hi float32, classes int) []float32 {
	bs := make([]float32, classes+1)
	for i := range bs {
		bs[i] = lo + (hi-lo)*float32(i)/float32(classes)
	}
	return bs
}

// pascalRow returns row n of Pascal's triangle: the binomial
// coefficients C(n, 0) .. C(n, n).
func pascalRow(n int) []float32 {
	row := make([]float32, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		row[i] = row[i-1] * float32(n-i+1) / float32(i)
	}
	return row
}

func monotonic(vs []float32) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i] < vs[i-1] {
			return false
		}
	}
	return true
}
