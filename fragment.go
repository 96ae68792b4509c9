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

// BoundaryFragment is a single-pixel record produced when a monotone
// curve piece enters that pixel.
type BoundaryFragment struct {
	X, Y       int     // integer pixel position
	T0         float64 // curve parameter at which the piece entered this pixel
	CurveIndex int     // index into the input curve slice

	WindingSign int  // +1 if the piece moves in +y across the pixel, -1 for -y, 0 if horizontal within windingSignTolerance
	OutMask     bool // does the (0,0.5)-(1,0.5) ray hit the piece?
	SampleMask  bool // does the (0,0.5)-(0.5,0.5) ray hit the piece?
}
