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

import "errors"

// ErrUnsupportedPartialRun is returned by [FillOpaque] for a run that
// spans more than one pixel but does not cover every sample: a single
// mask cannot describe per-pixel variation within a multi-pixel span, so
// this case would need a wider run representation. The reference
// implementation hits the same limit (original_source/msaa/src/msaa.cpp's
// fill_opaque throws "Unimplemented" here); a caller that produces runs
// wider than one pixel must split them at every partial-coverage pixel
// before boundary rasterization, which [Engine.Rasterize] already does.
var ErrUnsupportedPartialRun = errors.New("msaa: FillOpaque: partial-coverage run wider than one pixel")

// FillOpaque paints color into img wherever runs says coverage is
// non-zero: fully-covered runs are broadcast across every sample of
// every pixel in the run, and partial single-pixel runs replace only the
// samples whose mask bit is set. It is the Go port of
// original_source/msaa/src/msaa.cpp's fill_opaque.
//
// A run (or the in-bounds part of one) that falls outside img's bounds
// is silently dropped rather than causing an out-of-range panic, mirroring
// the reference implementation's clamp-and-skip handling of run.position
// (spec.md's "Fill/resolve silently drop out-of-bounds writes").
func FillOpaque(img *Image, runs []SampleRun, color uint32) error {
	full := maskEndingAt(img.SamplesPerPixel)

	for _, run := range runs {
		if run.Y < 0 || run.Y >= img.Height {
			continue
		}
		xBegin := clampInt(run.X, 0, img.Width)
		xEnd := clampInt(run.X+run.Length, 0, img.Width)
		length := xEnd - xBegin
		if length <= 0 {
			continue
		}

		switch {
		case run.Mask&full == full:
			for i := 0; i < length; i++ {
				first := img.firstSample(xBegin+i, run.Y)
				for s := 0; s < img.SamplesPerPixel; s++ {
					img.Samples[first+s] = color
				}
			}
		case run.Mask&full == 0:
			// nothing covered
		case run.Length != 1:
			return ErrUnsupportedPartialRun
		default:
			// Clamping a length-1 run can only keep it or drop it
			// entirely (handled by the length <= 0 check above), so
			// xBegin is still the run's original, in-bounds pixel.
			first := img.firstSample(xBegin, run.Y)
			for s := 0; s < img.SamplesPerPixel; s++ {
				if run.Mask&(1<<uint(s)) != 0 {
					img.Samples[first+s] = color
				}
			}
		}
	}

	return nil
}
