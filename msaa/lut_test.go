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
	"testing"

	"seehuhn.de/go/raster"
)

// TestLutSampleMaskMatchesCount checks that SampleMask has exactly
// SampleCount low bits set.
func TestLutSampleMaskMatchesCount(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32} {
		lut := NewLut(n)
		want := maskEndingAt(n)
		if lut.SampleMask() != want {
			t.Errorf("sampleCount %d: SampleMask() = %#x, want %#x", n, lut.SampleMask(), want)
		}
	}
}

// TestLutFetchFarInsideIsFullyCovered checks that a half-plane whose
// boundary is far outside the sample pattern, on the sample side,
// reports full coverage.
func TestLutFetchFarInsideIsFullyCovered(t *testing.T) {
	lut := NewLut(8)
	mask := lut.Fetch(raster.Point{X: 0, Y: 1}, -lut.Range())
	if mask&lut.SampleMask() != lut.SampleMask() {
		t.Fatalf("Fetch deep inside = %#x, want all %d bits set", mask, lut.SampleCount())
	}
}

// TestLutFetchFarOutsideIsEmpty checks that a half-plane whose boundary
// is far outside the sample pattern, on the non-sample side, reports no
// coverage.
func TestLutFetchFarOutsideIsEmpty(t *testing.T) {
	lut := NewLut(8)
	mask := lut.Fetch(raster.Point{X: 0, Y: 1}, lut.Range())
	if mask&lut.SampleMask() != 0 {
		t.Fatalf("Fetch deep outside = %#x, want 0", mask&lut.SampleMask())
	}
}

// TestLutFetchReflectionIsSelfConsistent checks scenario 6: fetching a
// half-plane and its point reflection (n,a) -> (-n,-a) must disagree on
// every valid sample bit, since a sample can't be on both sides of the
// same line. Fetch's flip branch returns a full bitwise complement, so
// the XOR must be masked down to the valid sample bits before comparing.
func TestLutFetchReflectionIsSelfConsistent(t *testing.T) {
	lut := NewLut(16)
	cases := []struct {
		n raster.Point
		a float64
	}{
		{raster.Point{X: 0, Y: 1}, 0.1},
		{raster.Point{X: 1, Y: 0}, -0.2},
		{raster.Point{X: 0.6, Y: 0.8}, 0.05},
	}
	for _, c := range cases {
		m1 := lut.Fetch(c.n, c.a)
		m2 := lut.Fetch(raster.Point{X: -c.n.X, Y: -c.n.Y}, -c.a)
		got := (m1 ^ m2) & lut.SampleMask()
		if got != lut.SampleMask() {
			t.Errorf("Fetch(%v,%v) xor its reflection = %#x & mask, want %#x",
				c.n, c.a, got, lut.SampleMask())
		}
	}
}

// TestLutFetchYLeftMatchesFetchPoint01 checks that FetchYLeft(n, y) is
// exactly FetchPoint01(n, (0, y)).
func TestLutFetchYLeftMatchesFetchPoint01(t *testing.T) {
	lut := NewLut(4)
	n := raster.Point{X: 0, Y: 1}
	for _, y := range []float64{0.1, 0.5, 0.9} {
		got := lut.FetchYLeft(n, y)
		want := lut.FetchPoint01(n, raster.Point{X: 0, Y: y})
		if got != want {
			t.Errorf("FetchYLeft(%v) = %#x, want %#x", y, got, want)
		}
	}
}

// TestStandardSamplePositionsPanicsOnUnknownCount checks that an
// unsupported sample count panics rather than silently returning a
// mismatched table.
func TestStandardSamplePositionsPanicsOnUnknownCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unsupported sample count")
		}
	}()
	StandardSamplePositions(3)
}
