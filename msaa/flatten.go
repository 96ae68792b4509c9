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

package msaa

import (
	"fmt"
	"math"

	"seehuhn.de/go/raster"
)

// DefaultPrecision is the default flattening precision, in device pixels:
// 1/sqrt(16*pi) ≈ 0.141, matching the reference implementation's default.
var DefaultPrecision = 1 / math.Sqrt(16*math.Pi)

// flattenTolerance returns the squared sagitta threshold used by
// quadraticFlatEnough/cubicFlatEnough for the given precision: the
// reference implementation uses 16*precision^2 for both degrees.
func flattenTolerance(precision float64) float64 {
	return 16 * precision * precision
}

// Flatten subdivides every curve in curves into line [Segment]s whose
// sagitta (mid-curve deviation from the chord) is below the threshold
// implied by precision (device pixels); lines pass through unsplit.
// Quadratics and cubics are recursively bisected at t=0.5 until flat
// enough, mirroring original_source/msaa/src/main.cpp's flatten.
func Flatten(curves []raster.Curve, precision float64) []Segment {
	tol := flattenTolerance(precision)

	var segments []Segment
	for _, c := range curves {
		flattenCurve(c, tol, &segments)
	}
	return segments
}

func flattenCurve(c raster.Curve, tol float64, out *[]Segment) {
	switch c.Degree {
	case 1:
		*out = append(*out, NewSegment(c.Points[0], c.Points[1]))
	case 2:
		flattenQuadratic(c.Points[0], c.Points[1], c.Points[2], tol, out)
	case 3:
		flattenCubic(c.Points[0], c.Points[1], c.Points[2], c.Points[3], tol, out)
	default:
		panic(fmt.Sprintf("msaa: curve has invalid degree %d", c.Degree))
	}
}

func lerp(a, b raster.Point, t float64) raster.Point {
	return raster.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// quadraticFlatEnough implements the reference implementation's
// is_flat_enough for a degree-2 Bézier: |2*p1 - p0 - p2|², i.e. four
// times the squared deviation of the control point from the chord's
// midpoint, compared against tol.
func quadraticFlatEnough(p0, p1, p2 raster.Point, tol float64) bool {
	ex := 2*p1.X - p0.X - p2.X
	ey := 2*p1.Y - p0.Y - p2.Y
	return ex*ex+ey*ey <= tol
}

func flattenQuadratic(p0, p1, p2 raster.Point, tol float64, out *[]Segment) {
	if quadraticFlatEnough(p0, p1, p2, tol) {
		*out = append(*out, NewSegment(p0, p2))
		return
	}

	l1 := lerp(p0, p1, 0.5)
	l2 := lerp(p1, p2, 0.5)
	mid := lerp(l1, l2, 0.5)

	flattenQuadratic(p0, l1, mid, tol, out)
	flattenQuadratic(mid, l2, p2, tol, out)
}

// cubicFlatEnough implements the reference implementation's
// is_flat_enough for a degree-3 Bézier: with u = 3*p1 - 2*p0 - p3 and
// v = 3*p2 - 2*p3 - p0, it sums the per-axis maxima max(ux², vx²) +
// max(uy², vy²) and compares that against tol.
func cubicFlatEnough(p0, p1, p2, p3 raster.Point, tol float64) bool {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - 2*p3.X - p0.X
	vy := 3*p2.Y - 2*p3.Y - p0.Y

	errX := math.Max(ux*ux, vx*vx)
	errY := math.Max(uy*uy, vy*vy)
	return errX+errY <= tol
}

func flattenCubic(p0, p1, p2, p3 raster.Point, tol float64, out *[]Segment) {
	if cubicFlatEnough(p0, p1, p2, p3, tol) {
		*out = append(*out, NewSegment(p0, p3))
		return
	}

	l10 := lerp(p0, p1, 0.5)
	l11 := lerp(p1, p2, 0.5)
	l12 := lerp(p2, p3, 0.5)
	l20 := lerp(l10, l11, 0.5)
	l21 := lerp(l11, l12, 0.5)
	mid := lerp(l20, l21, 0.5)

	flattenCubic(p0, l10, l20, mid, tol, out)
	flattenCubic(mid, l21, l12, p3, tol, out)
}
