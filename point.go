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

// Point is a 2D coordinate in the pixel-aligned coordinate system: integer
// coordinates lie on pixel corners, and pixel (x, y) occupies the half-open
// square [x, x+1) × [y, y+1) with center (x+0.5, y+0.5).
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized returns p scaled to unit length. The zero vector is returned
// unchanged.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// RotatedCW returns p rotated 90 degrees clockwise in a y-down coordinate
// system, i.e. (x, y) -> (-y, x).
func (p Point) RotatedCW() Point {
	return Point{-p.Y, p.X}
}

// Component returns the axis-th coordinate (0 for x, 1 for y).
func (p Point) Component(axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// Finite reports whether both coordinates of p are finite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Floor returns the pixel containing p, i.e. (floor(p.X), floor(p.Y)).
func (p Point) Floor() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// sign returns -1, 0, or +1 according to the sign of x, with no tolerance.
func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
