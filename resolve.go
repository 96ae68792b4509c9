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
	"cmp"
	"slices"
)

// resolveFragments sorts frags by (y, x) in place and walks them,
// accumulating winding numbers per §4.5. onSpan(x0, x1, y) is called for
// each maximal solid run with x1 exclusive; onPixel(x, y) is called for
// each partially covered boundary pixel. onProblemLine, if non-nil, is
// called with the scanline's y and its leftover winding number whenever a
// scanline ends with non-zero winding — the reference implementation logs
// this as a "problem line" and proceeds; it signals a path that was not
// closed, not a fatal condition (§7, §10).
//
// Sorting requires that frags is owned by the caller for the duration of
// the call; rasterize's fragment buffer is reused across calls but always
// fully repopulated before resolveFragments runs, so reordering it here is
// safe.
func resolveFragments(frags []BoundaryFragment, onSpan func(x0, x1, y int), onPixel func(x, y int), onProblemLine func(y, winding int)) {
	slices.SortFunc(frags, func(a, b BoundaryFragment) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	var scanWinding, scanLine, scanX int
	haveLine := false

	i := 0
	for i < len(frags) {
		pos := frags[i]

		if pos.Y != scanLine || !haveLine {
			if haveLine && scanWinding != 0 && onProblemLine != nil {
				onProblemLine(scanLine, scanWinding)
			}
			// A closed path balances winding to zero by the end of every
			// scanline; an unclosed path may not (§7), but the next
			// scanline always restarts at zero regardless.
			scanWinding = 0
			scanLine = pos.Y
			scanX = 0
			haveLine = true
		} else if pos.X > scanX && scanWinding != 0 {
			onSpan(scanX, pos.X, scanLine)
		}

		var deltaOut, deltaSample int
		for i < len(frags) && frags[i].Y == pos.Y && frags[i].X == pos.X {
			f := frags[i]
			deltaOut += f.WindingSign * boolToInt(f.OutMask)
			deltaSample += f.WindingSign * boolToInt(f.SampleMask)
			i++
		}

		if scanWinding+deltaSample != 0 {
			onPixel(pos.X, pos.Y)
		}

		scanWinding += deltaOut
		scanX = pos.X + 1
	}

	if haveLine && scanWinding != 0 && onProblemLine != nil {
		onProblemLine(scanLine, scanWinding)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
