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

// TestCutsAreSortedAndPadded checks property P1: the four cut values are
// non-decreasing and lie in [0,1] (with unused slots at exactly 1).
func TestCutsAreSortedAndPadded(t *testing.T) {
	curves := []Curve{
		Line(Point{0, 0}, Point{10, 0}),
		Quadratic(Point{20, 10}, Point{23.5, 15}, Point{30, 10}),
		Cubic(Point{37.5, 15}, Point{28, 30}, Point{10, 22}, Point{10, 10}),
	}

	for ci, c := range curves {
		cuts := computeCuts(c, defaultTolerance)
		for i := 1; i < len(cuts); i++ {
			if cuts[i].T < cuts[i-1].T {
				t.Fatalf("curve %d: cuts not sorted: %+v", ci, cuts)
			}
		}
		for i, cut := range cuts {
			if cut.T < 0 || cut.T > 1 {
				t.Fatalf("curve %d: cut %d out of range: %v", ci, i, cut.T)
			}
		}
	}
}

// TestLineHasNoInteriorCuts checks that a degree-1 curve has all four cut
// slots pinned at t=1 (no derivative roots exist for a line).
func TestLineHasNoInteriorCuts(t *testing.T) {
	c := Line(Point{0, 0}, Point{10, 0})
	cuts := computeCuts(c, defaultTolerance)
	for i, cut := range cuts {
		if cut.T != 1 {
			t.Fatalf("cut %d = %v, want 1", i, cut.T)
		}
	}
}

// TestQuadraticArcHasOneYExtremum exercises scenario 2: a quadratic arc
// whose control points are monotone in x but form an apex in y has a
// single interior cut, a y-extremum near t=0.5.
func TestQuadraticArcHasOneYExtremum(t *testing.T) {
	c := Quadratic(Point{20, 10}, Point{23.5, 15}, Point{30, 10})
	cuts := computeCuts(c, defaultTolerance)

	var interior int
	for _, cut := range cuts {
		if cut.T >= 1 {
			continue
		}
		interior++
		if cut.Axis != 1 {
			t.Fatalf("unexpected interior cut on axis %d", cut.Axis)
		}
		if diff := cut.T - 0.5; diff < -0.05 || diff > 0.05 {
			t.Fatalf("y-extremum at t=%v, want near 0.5", cut.T)
		}
	}
	if interior != 1 {
		t.Fatalf("got %d interior cuts, want 1", interior)
	}
}
