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

import "fmt"

// Resolve averages each pixel's samples in src into a single RGBA value
// and writes the result, packed as BGRA, into dst. dst must already be
// sized width x height x 1 sample; src's SamplesPerPixel may be anything
// supported by [NewLut]. When unpremultiply is true, color channels are
// divided by alpha (left as they are when alpha is at or below 1e-6, to
// avoid division blow-up), converting premultiplied-alpha samples to straight alpha before
// packing. This is the Go port of original_source/msaa/src/msaa.cpp's
// resolve.
func Resolve(dst, src *Image, unpremultiply bool) error {
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("msaa: Resolve: dst is %dx%d, src is %dx%d",
			dst.Width, dst.Height, src.Width, src.Height)
	}
	if dst.SamplesPerPixel != 1 {
		return fmt.Errorf("msaa: Resolve: dst must have 1 sample per pixel, has %d", dst.SamplesPerPixel)
	}

	n := src.SamplesPerPixel
	if n <= 0 {
		return fmt.Errorf("msaa: Resolve: src has no samples per pixel")
	}
	inv := 1 / float64(n)

	for py := 0; py < src.Height; py++ {
		for px := 0; px < src.Width; px++ {
			var r, g, b, a float64
			first := src.firstSample(px, py)
			for s := 0; s < n; s++ {
				sr, sg, sb, sa := UnpackRGBA(src.Samples[first+s])
				r += sr
				g += sg
				b += sb
				a += sa
			}
			r *= inv
			g *= inv
			b *= inv
			a *= inv

			if unpremultiply && a > 1e-6 {
				r /= a
				g /= a
				b /= a
			}

			dst.Samples[dst.firstSample(px, py)] = PackBGRA(r, g, b, a)
		}
	}

	return nil
}
