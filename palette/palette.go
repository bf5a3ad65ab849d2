// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the ColorBrewer palettes as color lists of
// any size. The palette data is an embedded TOML document parsed once
// at init; sizes other than the stored master list are resampled
// through a color scale.
package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dcrck/ultraviolet"
	"github.com/dcrck/ultraviolet/scale"
)

// ErrNotFound is returned for unknown palette names.
var ErrNotFound = errors.New("palette not found")

//go:embed brewer.toml
var brewerTOML []byte

// palettes maps lowercase palette names to their master color lists.
// Built once at init, read-only afterwards.
var palettes = func() map[string][]color.RGBA {
	var raw map[string][]string
	if err := toml.Unmarshal(brewerTOML, &raw); err != nil {
		panic("palette: bad embedded brewer.toml: " + err.Error())
	}
	ps := make(map[string][]color.RGBA, len(raw))
	for name, hexes := range raw {
		cs := make([]color.RGBA, len(hexes))
		for i, h := range hexes {
			c, err := ultraviolet.FromHex(h)
			if err != nil {
				panic("palette: bad embedded color " + h + " in " + name)
			}
			cs[i] = c
		}
		ps[name] = cs
	}
	return ps
}()

// Names returns the sorted names of all available palettes.
func Names() []string {
	ns := make([]string, 0, len(palettes))
	for n := range palettes {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Load returns count colors from the named palette (names are
// case-insensitive). A count of 0 or less returns the palette's
// master list. Counts that differ from the master list's length are
// resampled evenly through a color scale. Unknown names return
// [ErrNotFound].
func Load(name string, count int) ([]color.RGBA, error) {
	master, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("palette.Load: %w: %q", ErrNotFound, name)
	}
	if count <= 0 || count == len(master) {
		cs := make([]color.RGBA, len(master))
		copy(cs, master)
		return cs, nil
	}
	cs := make([]color.Color, len(master))
	for i, c := range master {
		cs[i] = c
	}
	sc, err := scale.New(cs, nil)
	if err != nil {
		return nil, err
	}
	return sc.Take(count), nil
}
