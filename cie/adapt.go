// Copyright (c) 2024, The Ultraviolet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Bradford cone-response matrix and its inverse, used for chromatic
// adaptation between reference illuminants. Process-wide constants,
// never mutated.
var (
	bradford = [3][3]float32{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	bradfordInv = [3][3]float32{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

func mulMat3(m [3][3]float32, x, y, z float32) (float32, float32, float32) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// AdaptXYZ transforms XYZ tristimulus values from the reference frame
// of one illuminant to another using the Bradford method: both white
// points are taken into cone-response space, the color is scaled by
// the per-cone ratio of the destination to the source white, and
// transformed back. It returns an error if either illuminant is
// unknown. Adapting between identical illuminants is the identity.
func AdaptXYZ(x, y, z float32, from, to Illuminant) (xa, ya, za float32, err error) {
	if from == to {
		return x, y, z, nil
	}
	sx, sz, err := White(from)
	if err != nil {
		return 0, 0, 0, err
	}
	dx, dz, err := White(to)
	if err != nil {
		return 0, 0, 0, err
	}
	sl, sm, ss := mulMat3(bradford, sx, 1, sz)
	dl, dm, ds := mulMat3(bradford, dx, 1, dz)
	l, m, s := mulMat3(bradford, x, y, z)
	l *= dl / sl
	m *= dm / sm
	s *= ds / ss
	xa, ya, za = mulMat3(bradfordInv, l, m, s)
	return xa, ya, za, nil
}
