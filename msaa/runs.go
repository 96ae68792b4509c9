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

// SampleRun is a horizontal extent of Length pixels starting at (X, Y)
// that all share one per-sample coverage Mask (one bit per subsample).
// A Mask with exactly the low SampleCount bits set (see [Lut.SampleMask])
// encodes a fully covered run; [Engine.Rasterize] never produces runs
// that straddle a scanline boundary.
type SampleRun struct {
	X, Y   int
	Length int
	Mask   uint32
}
