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

// Package msaa implements an analytic multi-sample coverage engine for
// already-flattened line segments.
//
// Unlike the parent package's boundary-fragment scanline rasterizer,
// this engine computes, for every boundary pixel, a per-sample coverage
// bitmask by looking up precomputed half-plane coverage masks in a [Lut]
// and accumulating winding contributions in parallel across samples. The
// result is a stream of [SampleRun] values which [FillOpaque] can use to
// paint an [Image], and which [Resolve] can later downsample to a single
// RGBA/BGRA pixel per destination position.
//
// Curves must be flattened into line segments with [Flatten] before
// calling [Engine.Rasterize]; this package has no Bézier evaluator of its
// own and relies on the parent package's [raster.Curve] only as the input
// type for flattening.
package msaa
