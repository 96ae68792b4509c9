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

// Rasterizer converts a list of Bézier curves into filled spans and
// partially covered boundary pixels using the non-zero winding rule.
// Create one instance and reuse it for multiple calls to Rasterize:
// internal buffers grow as needed but never shrink, so steady-state use
// makes no allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Tolerance is the numerical tolerance used by the curve walker:
	// root finding and cut ordering. The fragment classifier's
	// ray/segment intersection always uses the fixed default 1e-6.
	// Must be positive. The default, matching the reference
	// implementation, is 1e-6.
	Tolerance float64

	// OnProblemLine, if non-nil, is called during Rasterize whenever a
	// scanline's accumulated winding number fails to return to zero by
	// the scanline's end — normally the sign of a curve list that does
	// not form closed contours (§7). The reference implementation logs
	// this condition as a "problem line" and proceeds without retrying;
	// so does Rasterize. OnProblemLine is purely diagnostic: it cannot
	// change the spans or pixels already reported for that scanline.
	OnProblemLine func(y int, leftoverWinding int)

	// fragments is the scratch buffer of boundary fragments, reused
	// across calls by truncating its length to zero.
	fragments []BoundaryFragment
}

// NewRasterizer returns a Rasterizer with the default tolerance.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{Tolerance: defaultTolerance}
}

// Rasterize walks every curve in curves, classifies the resulting
// boundary fragments, and resolves them into spans and pixels under the
// non-zero winding rule (§4.3-§4.5). onSpan(x0, x1, y) is called for each
// maximal horizontal run of fully covered pixels, with x1 exclusive;
// onPixel(x, y) is called for each partially covered boundary pixel. Both
// callbacks may be nil.
//
// Rasterize returns an *InvalidCurveError if any curve has a degree
// outside {1,2,3} or a non-finite control point, and ErrNoCurves if
// curves is empty. On error, neither callback is invoked.
func (r *Rasterizer) Rasterize(curves []Curve, onSpan func(x0, x1, y int), onPixel func(x, y int)) error {
	if len(curves) == 0 {
		return ErrNoCurves
	}
	if err := validateCurves(curves); err != nil {
		return err
	}

	tol := r.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}

	r.fragments = r.fragments[:0]
	for i, c := range curves {
		walkCurve(c, i, tol, &r.fragments)
	}

	classifyFragments(curves, r.fragments)

	if onSpan == nil {
		onSpan = func(int, int, int) {}
	}
	if onPixel == nil {
		onPixel = func(int, int) {}
	}
	resolveFragments(r.fragments, onSpan, onPixel, r.OnProblemLine)

	return nil
}
