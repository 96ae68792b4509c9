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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster"
)

// TestCase defines a single rasterization test. The geometry is authored
// as a path.Data value (the same fluent builder the rest of the
// seehuhn.de/go ecosystem uses) and converted to the curve list the
// rasterizer consumes via Curves.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   *path.Data    // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // the operation the rasterizer performs
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Curves converts the test case's path into the curve list expected by
// raster.Rasterizer.Rasterize, applying CTM if it is set.
func (tc TestCase) Curves() []raster.Curve {
	curves := raster.CurvesFromPath(tc.Path)
	if tc.CTM == (matrix.Matrix{}) {
		return curves
	}
	m := tc.CTM
	for i, c := range curves {
		for j := 0; j <= c.Degree; j++ {
			p := c.Points[j]
			c.Points[j] = raster.Point{
				X: m[0]*p.X + m[2]*p.Y + m[4],
				Y: m[1]*p.X + m[3]*p.Y + m[5],
			}
		}
		curves[i] = c
	}
	return curves
}

// Operation is the rasterization operation to apply to the path. The core
// rasterizer only ever fills under the non-zero winding rule; Operation
// exists so test cases can describe intent (and so a future stroke-to-fill
// preprocessing stage has somewhere to attach) without every case needing
// to repeat the same zero-field struct literal.
type Operation interface {
	isOperation()
}

// Fill specifies a non-zero-winding fill operation.
type Fill struct{}

func (Fill) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
