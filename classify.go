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

import "math"

// windingSignTolerance is the band around dy=0 within which a fragment's
// chord is treated as horizontal and contributes no winding (§9 open
// question: kept distinct from defaultTolerance, the geometry-kernel
// tolerance, rather than unified with it).
const windingSignTolerance = 1e-4

// classifyFragments fills in the WindingSign, OutMask and SampleMask
// fields of each fragment in frags, given the originating curves. Each
// fragment's chord runs from curve(t0) to curve(t1), where t1 is the
// following fragment's t0 if it shares the same curve index, or 1
// otherwise — i.e. the chord spans exactly the part of the monotone piece
// that lies in this pixel.
func classifyFragments(curves []Curve, frags []BoundaryFragment) {
	for i := range frags {
		f := &frags[i]

		t1 := 1.0
		if i+1 < len(frags) && frags[i+1].CurveIndex == f.CurveIndex {
			t1 = frags[i+1].T0
		}

		curve := curves[f.CurveIndex]
		p0 := curve.Evaluate(f.T0)
		p1 := curve.Evaluate(t1)

		pixel := Point{X: float64(f.X), Y: float64(f.Y)}
		c0 := p0.Sub(pixel)
		c1 := p1.Sub(pixel)

		f.WindingSign = windingSign(p1.Y - p0.Y)
		f.OutMask = segmentsIntersect(c0, c1, Point{0, 0.5}, Point{1, 0.5})
		f.SampleMask = segmentsIntersect(c0, c1, Point{0, 0.5}, Point{0.5, 0.5})
	}
}

// windingSign implements the §4.4 winding_sign = sign(dy) rule with a
// tolerance band around zero: a chord whose y-extent is within
// windingSignTolerance of flat is treated as horizontal and contributes
// no winding, per spec.md's "horizontal pieces contribute 0" (§4.4, §9).
func windingSign(dy float64) int {
	switch {
	case dy > windingSignTolerance:
		return 1
	case dy < -windingSignTolerance:
		return -1
	default:
		return 0
	}
}

// segmentsIntersect reports whether the segment a0-a1 intersects the ray
// segment b0-b1, using 2x2 matrix inversion as in the reference
// implementation: the system [a1-a0 | b0-b1] * t = b0-a0 is solved for
// t = (t_a, t_b). The endpoints a0, a1 are first put in (y, x) order so
// the result does not depend on the curve's direction. The segments
// intersect iff t_a lies in [0,1] (with a small tolerance to make the
// test robust near the endpoints) and t_b lies in the half-open [0,1),
// so a chord crossing the ray exactly at a pixel's right edge is counted
// only in the pixel to the right.
func segmentsIntersect(a0, a1, b0, b1 Point) bool {
	if a1.Y < a0.Y || (a1.Y == a0.Y && a1.X < a0.X) {
		a0, a1 = a1, a0
	}
	col0 := a1.Sub(a0)
	col1 := b0.Sub(b1)

	det := col0.X*col1.Y - col0.Y*col1.X
	if math.Abs(det) < defaultTolerance {
		return false
	}

	rhs := b0.Sub(a0)
	invDet := 1 / det
	tA := invDet * (col1.Y*rhs.X - col1.X*rhs.Y)
	tB := invDet * (-col0.Y*rhs.X + col0.X*rhs.Y)

	return inInterval(tA, 0, 1) && tB >= 0 && tB < 1
}

// inInterval reports whether x lies in [a,b], widened by the geometry
// tolerance to absorb numerical noise at segment endpoints.
func inInterval(x, a, b float64) bool {
	return x > a-defaultTolerance && x < b+defaultTolerance
}
