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

// TestQuadraticArcTouchesContiguousXRange covers scenario 2: the walker's
// x-projection for the arc is the contiguous range [20, 29].
func TestQuadraticArcTouchesContiguousXRange(t *testing.T) {
	c := Quadratic(Point{20, 10}, Point{23.5, 15}, Point{30, 10})

	var frags []BoundaryFragment
	walkCurve(c, 0, defaultTolerance, &frags)

	seen := map[int]bool{}
	for _, f := range frags {
		seen[f.X] = true
	}
	for x := 20; x <= 29; x++ {
		if !seen[x] {
			t.Fatalf("missing fragment at x=%d", x)
		}
	}
	if len(seen) != 10 {
		t.Fatalf("touched %d distinct x values, want 10 (20..29)", len(seen))
	}
}

// TestCubicArcWalkConverges covers scenario 3: walking a cubic monotone
// piece must terminate with every grid-crossing parameter resolved to
// within 1e-4, i.e. it must produce at least one fragment and the curve
// point at every fragment's entry parameter must lie in that fragment's
// pixel. A piece that enters a pixel through its right or top edge does
// so at x == X+1 or y == Y+1, so the pixel is taken as its closed square
// widened by 1e-4.
func TestCubicArcWalkConverges(t *testing.T) {
	c := Cubic(Point{37.5, 15}, Point{28, 30}, Point{10, 22}, Point{10, 10})

	var frags []BoundaryFragment
	walkCurve(c, 0, defaultTolerance, &frags)

	if len(frags) == 0 {
		t.Fatal("no fragments produced for cubic arc")
	}

	const eps = 1e-4
	for _, f := range frags {
		p := c.Evaluate(f.T0)
		x, y := float64(f.X), float64(f.Y)
		if p.X < x-eps || p.X > x+1+eps || p.Y < y-eps || p.Y > y+1+eps {
			t.Fatalf("fragment at t0=%v has position (%d,%d), but curve(t0) = %v lies outside that pixel",
				f.T0, f.X, f.Y, p)
		}
	}
}

// TestPixelCoverageCompleteness checks property P2 for a simple monotone
// line: the number of fragments equals
// |floor(p1)-floor(p0)|.x + .y + 1, and the end pixels are both visited.
func TestPixelCoverageCompleteness(t *testing.T) {
	c := Line(Point{0, 0}, Point{3, 2})

	var frags []BoundaryFragment
	walkCurve(c, 0, defaultTolerance, &frags)

	if got, want := len(frags), 3+2+1; got != want {
		t.Fatalf("got %d fragments, want %d", got, want)
	}

	first, last := frags[0], frags[len(frags)-1]
	if first.X != 0 || first.Y != 0 {
		t.Fatalf("first fragment at (%d,%d), want (0,0)", first.X, first.Y)
	}
	if last.X != 3 || last.Y != 2 {
		t.Fatalf("last fragment at (%d,%d), want (3,2)", last.X, last.Y)
	}
}
