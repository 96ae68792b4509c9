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

import "seehuhn.de/go/raster"

// Segment is a line between two points in the pixel-aligned coordinate
// system, canonicalized so that P0 is the bottom endpoint (lower Y, ties
// broken by lower X for horizontal segments) and P1 is the top endpoint.
//
// WindingSign records the direction of the *original*, pre-canonicalization
// segment: for a horizontal segment -1 if it went rightward and +1 if it
// went leftward; for any other segment +1 if it went upward (ascending)
// and -1 if it went downward; 0 for a degenerate (zero-length) segment. LeftIsBottom reports whether P0 (the
// bottom point) is also the leftmost of the two points; this, together
// with Horizontal/Vertical, drives the vertical-ray contribution in
// [Engine.Rasterize].
type Segment struct {
	P0, P1 raster.Point

	WindingSign  int8
	LeftIsBottom bool
	Horizontal   bool
	Vertical     bool
}

// NewSegment canonicalizes the line from a to b into a [Segment]. This is
// the Go counterpart of the reference implementation's Segment_Info
// constructor (original_source/msaa/src/rasterizer.cpp): a segment with
// y0 == y1 is stored with P0.X <= P1.X and WindingSign == -1 if it ran
// rightward, +1 if it ran leftward, 0 if it has zero length (rightward
// motion carries negative winding in this convention); every other
// segment is stored bottom-to-top (P0.Y <= P1.Y) with WindingSign == +1
// if it originally ran upward, -1 if it originally ran downward.
func NewSegment(a, b raster.Point) Segment {
	horizontal := a.Y == b.Y
	vertical := a.X == b.X

	s := Segment{Horizontal: horizontal, Vertical: vertical, LeftIsBottom: true}

	switch {
	case horizontal:
		switch {
		case a.X < b.X:
			s.P0, s.P1 = a, b
			s.WindingSign = -1
		case a.X > b.X:
			s.P0, s.P1 = b, a
			s.WindingSign = 1
		default:
			s.P0, s.P1 = a, b
			s.WindingSign = 0
		}
	case a.Y < b.Y:
		s.P0, s.P1 = a, b
		s.WindingSign = 1
		s.LeftIsBottom = a.X <= b.X
	default: // a.Y > b.Y
		s.P0, s.P1 = b, a
		s.WindingSign = -1
		s.LeftIsBottom = b.X <= a.X
	}

	return s
}

// YMin returns the Y coordinate of the bottom endpoint.
func (s Segment) YMin() float64 { return s.P0.Y }

// YMax returns the Y coordinate of the top endpoint.
func (s Segment) YMax() float64 { return s.P1.Y }

// LeftPoint returns whichever endpoint has the smaller X coordinate.
func (s Segment) LeftPoint() raster.Point {
	if s.LeftIsBottom {
		return s.P0
	}
	return s.P1
}

// RightPoint returns whichever endpoint has the larger X coordinate.
func (s Segment) RightPoint() raster.Point {
	if s.LeftIsBottom {
		return s.P1
	}
	return s.P0
}
