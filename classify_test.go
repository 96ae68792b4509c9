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

import "testing"

// TestWindingSign checks §4.4's winding_sign = sign(dy) rule, including
// the windingSignTolerance band within which a chord is treated as
// horizontal and contributes no winding.
func TestWindingSign(t *testing.T) {
	cases := []struct {
		name string
		dy   float64
		want int
	}{
		{"clearly upward", 1.0, 1},
		{"clearly downward", -1.0, -1},
		{"exactly horizontal", 0, 0},
		{"within tolerance, positive", windingSignTolerance / 2, 0},
		{"within tolerance, negative", -windingSignTolerance / 2, 0},
		{"just past tolerance, positive", windingSignTolerance * 2, 1},
		{"just past tolerance, negative", -windingSignTolerance * 2, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := windingSign(c.dy)
			if got != c.want {
				t.Errorf("windingSign(%v) = %d, want %d", c.dy, got, c.want)
			}
		})
	}
}

// TestClassifyFragmentsNearHorizontalChordContributesNoWinding checks
// that a fragment whose chord's y-extent lies within windingSignTolerance
// of flat (but outside the geometry kernel's tighter defaultTolerance) is
// classified with WindingSign == 0, per spec.md's "horizontal pieces
// contribute 0."
func TestClassifyFragmentsNearHorizontalChordContributesNoWinding(t *testing.T) {
	dy := windingSignTolerance / 2
	curves := []Curve{
		Line(Point{X: 0, Y: 0.4}, Point{X: 1, Y: 0.4 + dy}),
	}
	frags := []BoundaryFragment{
		{X: 0, Y: 0, T0: 0, CurveIndex: 0},
	}

	classifyFragments(curves, frags)

	if frags[0].WindingSign != 0 {
		t.Fatalf("WindingSign = %d, want 0 for a near-horizontal chord (dy=%v)", frags[0].WindingSign, dy)
	}
}
