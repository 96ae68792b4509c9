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

// newtonIterations is the number of Newton-Raphson steps used to find the
// grid-crossing parameter on cubic monotone pieces. The interval is
// guaranteed monotone and of bounded length, so a fixed iteration count
// converges in practice.
const newtonIterations = 8

// noCrossing is the sentinel "no crossing in this interval" value used by
// walkMonotonePiece's findNextT; it sorts after every admissible parameter
// in [0,1].
const noCrossing = 2.0

// walkCurve appends one BoundaryFragment per pixel touched by curve to
// *frags, following §4.3: the curve is split at its cuts into monotone
// pieces, and each piece is walked pixel by pixel by repeatedly finding
// the parameter at which it next crosses an integer gridline.
func walkCurve(curve Curve, curveIndex int, tol float64, frags *[]BoundaryFragment) {
	cuts := computeCuts(curve, tol)

	cutCursor := 0
	for cutCursor < maxCutCount && cuts[cutCursor].T <= tol {
		cutCursor++
	}

	cutT0 := 0.0
	for cutT0 < 1 {
		cutT1 := 1.0
		if cutCursor < maxCutCount && cuts[cutCursor].T < 1-tol {
			cutT1 = cuts[cutCursor].T
			cutCursor++
		}

		walkMonotonePiece(curve, curveIndex, cutT0, cutT1, tol, frags)

		cutT0 = cutT1
	}
}

// walkMonotonePiece walks the part of curve over [cutT0, cutT1], a
// parameter interval on which both components are monotone, and appends
// one fragment per pixel it touches.
func walkMonotonePiece(curve Curve, curveIndex int, cutT0, cutT1, tol float64, frags *[]BoundaryFragment) {
	p0 := curve.Evaluate(cutT0)
	p1 := curve.Evaluate(cutT1)

	firstX, firstY := p0.Floor()
	lastX, lastY := p1.Floor()

	stepX := sign(p1.X - p0.X)
	stepY := sign(p1.Y - p0.Y)

	stepsRemaining := [2]int{abs(lastX - firstX), abs(lastY - firstY)}
	cursor := [2]int{firstX, firstY}
	step := [2]int{stepX, stepY}

	fragCount := stepsRemaining[0] + stepsRemaining[1] + 1

	// findNextT finds the parameter, clamped into [cutT0,cutT1] or
	// noCrossing if outside that range by more than tol, at which curve
	// crosses the next integer gridline on the given axis. cutT0 is
	// captured by reference via the enclosing t0 variable below, since it
	// advances as the walk proceeds.
	t0 := cutT0
	findNextT := func(axis int) float64 {
		gridOffset := 0.5 - 0.5*float64(step[axis])
		nextPos := float64(cursor[axis]) + gridOffset + float64(step[axis])

		clampT := func(t float64) float64 {
			if t < t0-tol {
				return noCrossing
			}
			if t > cutT1+tol {
				return noCrossing
			}
			return math.Min(math.Max(t, t0), cutT1)
		}

		var tMin float64
		switch curve.Degree {
		case 1:
			p := curve.componentPoly(axis)
			roots := findRootsLinear(p.a[0]-nextPos, p.a[1], tol)
			tMin = clampOrNoCrossing(roots, clampT)

		case 2:
			p := curve.componentPoly(axis)
			roots := findRootsQuadratic(p.a[0]-nextPos, p.a[1], p.a[2], tol)
			tMin = minClamped(roots, clampT)

		case 3:
			p := curve.componentPoly(axis)
			a0, a1, a2, a3 := p.a[0]-nextPos, p.a[1], p.a[2], p.a[3]
			d0, d1, d2 := a1, 2*a2, 3*a3

			t := 0.5 * (t0 + cutT1)
			for range newtonIterations {
				num := ((a3*t+a2)*t+a1)*t + a0
				den := d2*t + d1
				den = den*t + d0
				t -= num / den
			}
			tMin = clampT(t)
		}

		if tMin > 1 {
			if tMin <= 1+tol {
				tMin = 1
			} else {
				tMin = noCrossing
			}
		}
		return tMin
	}

	nextT := [2]float64{findNextT(0), findNextT(1)}

	for range fragCount {
		minAxis := 0
		if nextT[1] < nextT[0] {
			minAxis = 1
		}
		stepT := nextT[minAxis]

		*frags = append(*frags, BoundaryFragment{
			X: cursor[0], Y: cursor[1],
			T0:         t0,
			CurveIndex: curveIndex,
		})

		if stepsRemaining[minAxis] > 0 {
			cursor[minAxis] += step[minAxis]
			stepsRemaining[minAxis]--

			t0 = stepT
			nextT[minAxis] = findNextT(minAxis)
		} else {
			nextT[minAxis] = noCrossing
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// clampOrNoCrossing applies clampT to the single root of a linear
// polynomial, or returns noCrossing if there is none.
func clampOrNoCrossing(roots []float64, clampT func(float64) float64) float64 {
	if len(roots) == 0 {
		return noCrossing
	}
	return clampT(roots[0])
}

// minClamped returns the smallest clamped root, or noCrossing if there
// are none.
func minClamped(roots []float64, clampT func(float64) float64) float64 {
	if len(roots) == 0 {
		return noCrossing
	}
	m := clampT(roots[0])
	for _, r := range roots[1:] {
		if c := clampT(r); c < m {
			m = c
		}
	}
	return m
}
