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
	"math"
	"testing"

	"seehuhn.de/go/raster"
)

// TestFlattenLinePassesThrough checks that a degree-1 curve produces
// exactly one segment with unchanged endpoints.
func TestFlattenLinePassesThrough(t *testing.T) {
	c := raster.Line(raster.Point{X: 0, Y: 0}, raster.Point{X: 10, Y: 4})
	segs := Flatten([]raster.Curve{c}, DefaultPrecision)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	got := segs[0]
	want := NewSegment(raster.Point{X: 0, Y: 0}, raster.Point{X: 10, Y: 4})
	if got != want {
		t.Fatalf("segment = %+v, want %+v", got, want)
	}
}

// TestFlattenQuadraticStaysWithinTolerance checks that every generated
// segment's chord stays within precision of the original curve, sampled
// at each segment's midpoint parameter via direct re-evaluation of the
// quadratic.
func TestFlattenQuadraticStaysWithinTolerance(t *testing.T) {
	p0 := raster.Point{X: 0, Y: 0}
	p1 := raster.Point{X: 50, Y: 100}
	p2 := raster.Point{X: 100, Y: 0}
	c := raster.Quadratic(p0, p1, p2)

	precision := 0.05
	segs := Flatten([]raster.Curve{c}, precision)
	if len(segs) < 2 {
		t.Fatalf("expected subdivision for a sharp arc, got %d segment(s)", len(segs))
	}

	for i, s := range segs {
		mid := raster.Point{X: (s.P0.X + s.P1.X) / 2, Y: (s.P0.Y + s.P1.Y) / 2}
		dx := s.P1.X - s.P0.X
		dy := s.P1.Y - s.P0.Y
		length := math.Hypot(dx, dy)
		if length > 0 && length < 1e-9 {
			t.Fatalf("segment %d is degenerate: %+v", i, s)
		}
		// x(t) = 100t on this curve, so the chord midpoint's x gives the
		// segment's midpoint parameter directly.
		want := c.Evaluate(mid.X / 100)
		if d := math.Hypot(want.X-mid.X, want.Y-mid.Y); d > precision+1e-9 {
			t.Fatalf("segment %d: chord midpoint %v is %g from the curve, want <= %g", i, mid, d, precision)
		}
	}
}

// TestFlattenCubicFinerPrecisionNeverCoarsens checks that a finer
// precision threshold (0.05 instead of 1.0) never produces fewer segments
// for the same curve —
// a weak but meaningful monotonicity property of the subdivision.
func TestFlattenCubicFinerPrecisionNeverCoarsens(t *testing.T) {
	c := raster.Cubic(
		raster.Point{X: 0, Y: 0},
		raster.Point{X: 0, Y: 100},
		raster.Point{X: 100, Y: -100},
		raster.Point{X: 100, Y: 0},
	)

	coarse := Flatten([]raster.Curve{c}, 1.0)
	fine := Flatten([]raster.Curve{c}, 0.05)

	if len(fine) < len(coarse) {
		t.Fatalf("finer precision produced fewer segments: %d < %d", len(fine), len(coarse))
	}
}

// TestFlattenInvalidDegreePanics checks that a malformed curve (degree 0
// or >3) panics rather than silently producing wrong output.
func TestFlattenInvalidDegreePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an invalid curve degree")
		}
	}()
	Flatten([]raster.Curve{{Degree: 0}}, DefaultPrecision)
}
