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

import "fmt"

// Curve is a Bézier curve of degree 1 (line), 2 (quadratic), or 3 (cubic),
// represented by its control points. Only Points[:Degree+1] are
// significant.
//
// A degree-0 curve is never admissible input; the zero value of Curve is
// not valid.
type Curve struct {
	Degree int
	Points [4]Point
}

// Line returns a degree-1 curve (a straight line segment).
func Line(p0, p1 Point) Curve {
	return Curve{Degree: 1, Points: [4]Point{p0, p1}}
}

// Quadratic returns a degree-2 Bézier curve.
func Quadratic(p0, p1, p2 Point) Curve {
	return Curve{Degree: 2, Points: [4]Point{p0, p1, p2}}
}

// Cubic returns a degree-3 Bézier curve.
func Cubic(p0, p1, p2, p3 Point) Curve {
	return Curve{Degree: 3, Points: [4]Point{p0, p1, p2, p3}}
}

// Valid reports whether c has an admissible degree and only finite
// control points.
func (c Curve) Valid() bool {
	if c.Degree < 1 || c.Degree > 3 {
		return false
	}
	for i := 0; i <= c.Degree; i++ {
		if !c.Points[i].Finite() {
			return false
		}
	}
	return true
}

// Start returns the curve's first control point.
func (c Curve) Start() Point { return c.Points[0] }

// End returns the curve's last control point.
func (c Curve) End() Point { return c.Points[c.Degree] }

// Evaluate evaluates c at parameter t: by linear interpolation for a
// line, and by the de Casteljau recurrence for degrees 2 and 3.
func (c Curve) Evaluate(t float64) Point {
	switch c.Degree {
	case 1:
		p0, p1 := c.Points[0], c.Points[1]
		return Point{
			X: p0.X + (p1.X-p0.X)*t,
			Y: p0.Y + (p1.Y-p0.Y)*t,
		}
	case 2:
		return evaluateCasteljau2(c.Points[0], c.Points[1], c.Points[2], t)
	case 3:
		return evaluateCasteljau3(c.Points[0], c.Points[1], c.Points[2], c.Points[3], t)
	default:
		panic(fmt.Sprintf("raster: curve has invalid degree %d", c.Degree))
	}
}

// evaluateCasteljau2 evaluates a quadratic Bézier by repeated linear
// interpolation (de Casteljau's algorithm).
func evaluateCasteljau2(p0, p1, p2 Point, t float64) Point {
	q0 := lerpPoint(p0, p1, t)
	q1 := lerpPoint(p1, p2, t)
	return lerpPoint(q0, q1, t)
}

// evaluateCasteljau3 evaluates a cubic Bézier by repeated linear
// interpolation.
func evaluateCasteljau3(p0, p1, p2, p3 Point, t float64) Point {
	q0 := lerpPoint(p0, p1, t)
	q1 := lerpPoint(p1, p2, t)
	q2 := lerpPoint(p2, p3, t)
	r0 := lerpPoint(q0, q1, t)
	r1 := lerpPoint(q1, q2, t)
	return lerpPoint(r0, r1, t)
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Reverse returns c with its parametrization reversed (t -> 1-t).
func (c Curve) Reverse() Curve {
	r := Curve{Degree: c.Degree}
	for i := 0; i <= c.Degree; i++ {
		r.Points[i] = c.Points[c.Degree-i]
	}
	return r
}

// Split splits a cubic curve at parameter t into two cubics using De
// Casteljau's construction. It panics if c is not a cubic.
func (c Curve) Split(t float64) (left, right Curve) {
	if c.Degree != 3 {
		panic("raster: Split is only defined for cubic curves")
	}
	p0, p1, p2, p3 := c.Points[0], c.Points[1], c.Points[2], c.Points[3]

	q0 := lerpPoint(p0, p1, t)
	q1 := lerpPoint(p1, p2, t)
	q2 := lerpPoint(p2, p3, t)
	r0 := lerpPoint(q0, q1, t)
	r1 := lerpPoint(q1, q2, t)
	s := lerpPoint(r0, r1, t)

	left = Cubic(p0, q0, r0, s)
	right = Cubic(s, r1, q2, p3)
	return left, right
}

// componentPoly returns the power-basis polynomial of the given axis
// (0 for x, 1 for y) of c.
func (c Curve) componentPoly(axis int) poly {
	switch c.Degree {
	case 1:
		v0 := c.Points[0].Component(axis)
		v1 := c.Points[1].Component(axis)
		return poly{a: [4]float64{v0, v1 - v0}, deg: 1}
	case 2:
		v0 := c.Points[0].Component(axis)
		v1 := c.Points[1].Component(axis)
		v2 := c.Points[2].Component(axis)
		return poly{
			a:   [4]float64{v0, 2*v1 - 2*v0, v0 - 2*v1 + v2},
			deg: 2,
		}
	case 3:
		v0 := c.Points[0].Component(axis)
		v1 := c.Points[1].Component(axis)
		v2 := c.Points[2].Component(axis)
		v3 := c.Points[3].Component(axis)
		return poly{
			a: [4]float64{
				v0,
				3*v1 - 3*v0,
				3*v0 - 6*v1 + 3*v2,
				-v0 + 3*v1 - 3*v2 + v3,
			},
			deg: 3,
		}
	default:
		panic(fmt.Sprintf("raster: curve has invalid degree %d", c.Degree))
	}
}

// derivativeRoots returns the roots in (conceptually) [0,1] of the
// derivative of c's axis-th component, using the closed forms specific to
// each degree (matching the reference implementation's
// find_derivative_roots_bezier_{2,3} rather than a generic derive-then-
// find-roots path).
func (c Curve) derivativeRoots(axis int, tol float64) []float64 {
	switch c.Degree {
	case 1:
		return nil
	case 2:
		v0 := c.Points[0].Component(axis)
		v1 := c.Points[1].Component(axis)
		v2 := c.Points[2].Component(axis)
		a1 := (v0 - v1) + (v2 - v1)
		a0 := v1 - v0
		return findRootsLinear(a0, a1, tol)
	case 3:
		v0 := c.Points[0].Component(axis)
		v1 := c.Points[1].Component(axis)
		v2 := c.Points[2].Component(axis)
		v3 := c.Points[3].Component(axis)
		a2 := 3*(v1-v2) + (v3 - v0)
		a1 := 2 * ((v0 - v1) + (v2 - v1))
		a0 := v1 - v0
		return findRootsQuadratic(a0, a1, a2, tol)
	default:
		panic(fmt.Sprintf("raster: curve has invalid degree %d", c.Degree))
	}
}
