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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestCurvesFromPathClosesImplicitly(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 10, Y: 20})
	// deliberately no Close() call

	curves := CurvesFromPath(p)
	if len(curves) != 4 {
		t.Fatalf("got %d curves, want 4 (3 explicit + 1 implicit closing edge)", len(curves))
	}

	last := curves[3]
	if last.Degree != 1 {
		t.Fatalf("closing edge has degree %d, want 1", last.Degree)
	}
	if last.Start() != (Point{10, 20}) || last.End() != (Point{10, 10}) {
		t.Fatalf("closing edge is %v -> %v, want (10,20) -> (10,10)", last.Start(), last.End())
	}
}

func TestCurvesFromPathHonorsExplicitClose(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		Close()

	curves := CurvesFromPath(p)
	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3", len(curves))
	}
}

func TestCurvesFromPathQuadAndCube(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 10, Y: 0}).
		CubeTo(vec.Vec2{X: 12, Y: 0}, vec.Vec2{X: 12, Y: 10}, vec.Vec2{X: 0, Y: 10}).
		Close()

	curves := CurvesFromPath(p)
	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3 (quad, cubic, closing line)", len(curves))
	}
	if curves[0].Degree != 2 {
		t.Fatalf("first curve has degree %d, want 2", curves[0].Degree)
	}
	if curves[1].Degree != 3 {
		t.Fatalf("second curve has degree %d, want 3", curves[1].Degree)
	}
}
