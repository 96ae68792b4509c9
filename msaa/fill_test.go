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
	"errors"
	"testing"
)

// TestFillOpaqueFullRunBroadcasts checks that a fully-covered multi-pixel
// run fills every sample of every pixel it spans.
func TestFillOpaqueFullRunBroadcasts(t *testing.T) {
	img := NewImage(4, 1, 4)
	color := PackRGBA(1, 0, 0, 1)
	runs := []SampleRun{{X: 0, Y: 0, Length: 3, Mask: maskEndingAt(4)}}

	if err := FillOpaque(img, runs, color); err != nil {
		t.Fatalf("FillOpaque: %v", err)
	}
	for x := 0; x < 3; x++ {
		first := img.firstSample(x, 0)
		for s := 0; s < 4; s++ {
			if img.Samples[first+s] != color {
				t.Fatalf("pixel %d sample %d = %#x, want %#x", x, s, img.Samples[first+s], color)
			}
		}
	}
	first := img.firstSample(3, 0)
	for s := 0; s < 4; s++ {
		if img.Samples[first+s] != 0 {
			t.Fatalf("pixel 3 (outside the run) sample %d = %#x, want 0", s, img.Samples[first+s])
		}
	}
}

// TestFillOpaquePartialSinglePixelMasksSamples checks that a partial
// single-pixel run only overwrites the samples its mask selects.
func TestFillOpaquePartialSinglePixelMasksSamples(t *testing.T) {
	img := NewImage(1, 1, 4)
	color := PackRGBA(0, 1, 0, 1)
	runs := []SampleRun{{X: 0, Y: 0, Length: 1, Mask: 0b0101}}

	if err := FillOpaque(img, runs, color); err != nil {
		t.Fatalf("FillOpaque: %v", err)
	}
	want := []uint32{color, 0, color, 0}
	for s, w := range want {
		if img.Samples[s] != w {
			t.Errorf("sample %d = %#x, want %#x", s, img.Samples[s], w)
		}
	}
}

// TestFillOpaquePartialMultiPixelRunErrors checks that a partially
// covered run spanning more than one pixel is rejected rather than
// silently misapplied (the reference implementation has the same gap).
func TestFillOpaquePartialMultiPixelRunErrors(t *testing.T) {
	img := NewImage(4, 1, 4)
	runs := []SampleRun{{X: 0, Y: 0, Length: 2, Mask: 0b0011}}

	err := FillOpaque(img, runs, PackRGBA(1, 1, 1, 1))
	if !errors.Is(err, ErrUnsupportedPartialRun) {
		t.Fatalf("err = %v, want ErrUnsupportedPartialRun", err)
	}
}

// TestFillOpaqueEmptyMaskIsNoOp checks that a run with no covered
// samples leaves the image untouched.
func TestFillOpaqueEmptyMaskIsNoOp(t *testing.T) {
	img := NewImage(1, 1, 4)
	runs := []SampleRun{{X: 0, Y: 0, Length: 1, Mask: 0}}

	if err := FillOpaque(img, runs, PackRGBA(1, 1, 1, 1)); err != nil {
		t.Fatalf("FillOpaque: %v", err)
	}
	for s, v := range img.Samples {
		if v != 0 {
			t.Fatalf("sample %d = %#x, want 0", s, v)
		}
	}
}

// TestFillOpaqueDropsOutOfBoundsRuns checks that runs wholly or partly
// outside the image are silently dropped (or clipped to their in-bounds
// part) instead of panicking, matching the reference implementation's
// clamp-and-skip handling of run.position.
func TestFillOpaqueDropsOutOfBoundsRuns(t *testing.T) {
	img := NewImage(4, 4, 4)
	color := PackRGBA(1, 1, 1, 1)
	full := maskEndingAt(4)

	runs := []SampleRun{
		{X: -2, Y: 0, Length: 2, Mask: full},  // entirely left of the image
		{X: 2, Y: -1, Length: 2, Mask: full},  // entirely above the image
		{X: 2, Y: 5, Length: 2, Mask: full},   // entirely below the image
		{X: 10, Y: 0, Length: 1, Mask: full},  // entirely right of the image
		{X: -2, Y: 1, Length: 4, Mask: full},  // straddles the left edge
	}

	if err := FillOpaque(img, runs, color); err != nil {
		t.Fatalf("FillOpaque: %v", err)
	}

	for x := 0; x < 2; x++ {
		first := img.firstSample(x, 1)
		for s := 0; s < 4; s++ {
			if img.Samples[first+s] != color {
				t.Errorf("pixel (%d,1) sample %d = %#x, want %#x (clipped run)", x, s, img.Samples[first+s], color)
			}
		}
	}

	for y := 0; y < 4; y++ {
		if y == 1 {
			continue
		}
		for x := 0; x < 4; x++ {
			first := img.firstSample(x, y)
			for s := 0; s < 4; s++ {
				if img.Samples[first+s] != 0 {
					t.Errorf("pixel (%d,%d) sample %d = %#x, want 0 (out-of-bounds run dropped)", x, y, s, img.Samples[first+s])
				}
			}
		}
	}
}
