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

// poly is a power-basis polynomial a[0] + a[1]*t + a[2]*t^2 + a[3]*t^3,
// stored with the coefficients for the unused high-degree terms set to
// zero. deg is the polynomial's degree, so a[0..deg] are the significant
// coefficients (degree 0..3 covers the constant through cubic case that
// appear as curve components or their derivatives).
type poly struct {
	a   [4]float64
	deg int
}

// eval evaluates the polynomial at t using Horner's rule.
func (p poly) eval(t float64) float64 {
	v := p.a[p.deg]
	for i := p.deg - 1; i >= 0; i-- {
		v = v*t + p.a[i]
	}
	return v
}

// derive returns the derivative of p, a polynomial of degree deg-1 (the
// zero polynomial if deg == 0).
func (p poly) derive() poly {
	if p.deg == 0 {
		return poly{}
	}
	var d poly
	d.deg = p.deg - 1
	for i := 1; i <= p.deg; i++ {
		d.a[i-1] = float64(i) * p.a[i]
	}
	return d
}

// defaultTolerance is the caller-supplied tolerance used by geometry code
// throughout this package (§4.1 of the design notes) when no more specific
// tolerance applies.
const defaultTolerance = 1e-6

// findRootsLinear finds the roots of a1*t + a0. If |a1| <= tol the
// polynomial is treated as non-vanishing and no roots are returned.
func findRootsLinear(a0, a1, tol float64) []float64 {
	if math.Abs(a1) <= tol {
		return nil
	}
	return []float64{-a0 / a1}
}

// findRootsQuadratic finds the roots of a2*t^2 + a1*t + a0 in ascending
// order. If |a2| <= tol it falls back to the linear case. A discriminant
// below tol^2 collapses to a single double root at the vertex.
func findRootsQuadratic(a0, a1, a2, tol float64) []float64 {
	if math.Abs(a2) <= tol {
		return findRootsLinear(a0, a1, tol)
	}

	p := a1 / a2
	q := a0 / a2
	mid := -p / 2
	disc := mid*mid - q

	if disc < tol*tol {
		return []float64{mid}
	}

	s := math.Sqrt(disc)
	return []float64{mid - s, mid + s}
}

// findRoots finds the roots of p in ascending order using the closed forms
// above, dispatching on the polynomial's effective degree. It covers
// degrees 0 to 2 only: for a cubic, a[3] is ignored and the roots
// returned are those of the quadratic a[0..2].
func (p poly) findRoots(tol float64) []float64 {
	switch p.deg {
	case 0:
		return nil
	case 1:
		return findRootsLinear(p.a[0], p.a[1], tol)
	default:
		return findRootsQuadratic(p.a[0], p.a[1], p.a[2], tol)
	}
}
