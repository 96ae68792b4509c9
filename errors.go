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
	"errors"
	"fmt"
)

// ErrNoCurves is returned by Rasterize when called with an empty curve
// list.
var ErrNoCurves = errors.New("raster: no curves given")

// InvalidCurveError reports that a curve passed to Rasterize violates an
// input invariant: its degree is not in {1,2,3}, or one of its control
// points is not finite. Rasterize fails synchronously and commits no
// partial output when this occurs.
type InvalidCurveError struct {
	Index  int // index into the curves slice
	Degree int // the offending degree, or -1 if the problem is a non-finite point
}

func (e *InvalidCurveError) Error() string {
	if e.Degree < 0 {
		return fmt.Sprintf("raster: curve %d has a non-finite control point", e.Index)
	}
	return fmt.Sprintf("raster: curve %d has invalid degree %d (must be 1, 2, or 3)", e.Index, e.Degree)
}

// validateCurves checks the input invariants from §7: every curve must
// have degree 1, 2, or 3 and only finite control points.
func validateCurves(curves []Curve) error {
	for i, c := range curves {
		if c.Degree < 1 || c.Degree > 3 {
			return &InvalidCurveError{Index: i, Degree: c.Degree}
		}
		for j := 0; j <= c.Degree; j++ {
			if !c.Points[j].Finite() {
				return &InvalidCurveError{Index: i, Degree: -1}
			}
		}
	}
	return nil
}
