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

// Package raster rasterizes Bézier paths using a scanline boundary-fragment
// algorithm.
//
// The rasterizer walks each curve cell by cell along the integer pixel
// grid, finding the curve parameter at which it crosses each grid line,
// and emits one boundary fragment per touched pixel. A second pass sorts
// the fragments by (y, x) and accumulates winding numbers to produce
// filled spans and partially covered boundary pixels under the non-zero
// winding rule.
//
// The [raster/msaa] subpackage implements an alternative, analytic MSAA
// coverage engine that operates on already-flattened line segments and
// produces per-sample coverage masks via a precomputed half-plane lookup
// table.
package raster
