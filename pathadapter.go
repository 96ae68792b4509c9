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

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// CurvesFromPath converts a seehuhn.de/go/geom path into the tagged-degree
// curve list Rasterize expects. Each subpath is closed with an implicit
// line back to its start point if it was not already closed explicitly,
// since the non-zero winding rule requires closed contours to balance
// (§3, §8 P3); an already-closed subpath (current point equal to its
// start) contributes no extra segment.
func CurvesFromPath(p *path.Data) []Curve {
	var curves []Curve

	var current, start vec.Vec2
	var haveSubpath bool

	closeSubpath := func() {
		if haveSubpath && current != start {
			curves = append(curves, Line(vecToPoint(current), vecToPoint(start)))
		}
		haveSubpath = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[coordIdx]
			start = current
			haveSubpath = true
			coordIdx++

		case path.CmdLineTo:
			next := p.Coords[coordIdx]
			curves = append(curves, Line(vecToPoint(current), vecToPoint(next)))
			current = next
			coordIdx++

		case path.CmdQuadTo:
			c1, next := p.Coords[coordIdx], p.Coords[coordIdx+1]
			curves = append(curves, Quadratic(vecToPoint(current), vecToPoint(c1), vecToPoint(next)))
			current = next
			coordIdx += 2

		case path.CmdCubeTo:
			c1, c2, next := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			curves = append(curves, Cubic(vecToPoint(current), vecToPoint(c1), vecToPoint(c2), vecToPoint(next)))
			current = next
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
			current = start
		}
	}
	closeSubpath()

	return curves
}

func vecToPoint(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}
