// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import "sort"

// maxCutsPerAxis bounds the number of derivative roots considered per
// axis: a quadratic derivative is linear (at most 1 root) and a cubic
// derivative is quadratic (at most 2 roots).
const maxCutsPerAxis = 2

// maxCutCount is the total number of cut slots per curve, two axes times
// maxCutsPerAxis.
const maxCutCount = 2 * maxCutsPerAxis

// Cut marks a parameter value at which one component's derivative
// vanishes, splitting the curve into x/y-monotone pieces.
type Cut struct {
	T    float64
	Axis int
}

// computeCuts returns the (up to four) cuts of c, padded with t=1 and
// sorted ascending by t. Unused axis/degree combinations contribute no
// roots, so a line has all four cuts at t=1 and is a single monotone
// piece. Derivative roots outside [0,1] are dropped, so every cut lies
// in [0,1].
func computeCuts(c Curve, tol float64) [maxCutCount]Cut {
	var cuts [maxCutCount]Cut

	for axis := 0; axis < 2; axis++ {
		base := axis * maxCutsPerAxis
		cuts[base+0] = Cut{T: 1, Axis: axis}
		cuts[base+1] = Cut{T: 1, Axis: axis}

		roots := c.derivativeRoots(axis, tol)
		n := 0
		for _, r := range roots {
			if n >= maxCutsPerAxis {
				break
			}
			if r < 0 || r > 1 {
				continue
			}
			cuts[base+n].T = r
			n++
		}
	}

	sort.SliceStable(cuts[:], func(i, j int) bool {
		return cuts[i].T < cuts[j].T
	})

	return cuts
}
