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

import (
	"fmt"
	"math"

	"seehuhn.de/go/raster"
)

// MaxSampleCount is the largest sample count a Lut can hold: each entry
// is a 32-bit mask, one bit per sample.
const MaxSampleCount = 32

// DefaultResolution is the default side length of a Lut's square table.
const DefaultResolution = 128

// DefaultRange is the default half-width, in pixel units, of the
// signed-distance values a Lut can index: sqrt(2)/2.
var DefaultRange = math.Sqrt2 / 2

// Standard D3D-style multisample positions, in 1/16-pixel units relative
// to the pixel center, for 2/4/8/16/32 samples. Transcribed from
// original_source/msaa/src/msaa.cpp's samples_x2/x4/x8/x16/x32 tables.
var (
	samplePositions2 = []raster.Point{
		{X: -4, Y: -4}, {X: 4, Y: 4},
	}
	samplePositions4 = []raster.Point{
		{X: -2, Y: -6}, {X: 7, Y: -2}, {X: -6, Y: 2}, {X: 2, Y: 6},
	}
	samplePositions8 = []raster.Point{
		{X: 7, Y: -7}, {X: -3, Y: -5}, {X: 1, Y: -3}, {X: -7, Y: -1},
		{X: 5, Y: 1}, {X: -1, Y: 3}, {X: -5, Y: 5}, {X: 3, Y: 7},
	}
	samplePositions16 = []raster.Point{
		{X: -7, Y: -8}, {X: 0, Y: -7}, {X: -4, Y: -6}, {X: 3, Y: -5},
		{X: 7, Y: -4}, {X: -1, Y: -3}, {X: -5, Y: -2}, {X: 4, Y: -1},
		{X: -8, Y: 0}, {X: 1, Y: 1}, {X: -3, Y: 2}, {X: 5, Y: 3},
		{X: -6, Y: 4}, {X: 2, Y: 5}, {X: -2, Y: 6}, {X: 6, Y: 7},
	}
	samplePositions32 = []raster.Point{
		{X: -4, Y: -7}, {X: 5, Y: -7}, {X: 1, Y: -6}, {X: -7, Y: -5},
		{X: -3, Y: -5}, {X: 6, Y: -5}, {X: 5, Y: -4}, {X: -1, Y: -4},
		{X: 4, Y: -4}, {X: 2, Y: -3}, {X: -2, Y: -2}, {X: 7, Y: -2},
		{X: -6, Y: -1}, {X: 1, Y: -1}, {X: 3, Y: -1}, {X: -4, Y: 0},
		{X: -7, Y: 1}, {X: 2, Y: 1}, {X: -1, Y: 2}, {X: 6, Y: 2},
		{X: -6, Y: 3}, {X: -3, Y: 3}, {X: 0, Y: 4}, {X: 4, Y: 4},
		{X: 2, Y: 5}, {X: 7, Y: 5}, {X: -7, Y: 6}, {X: -3, Y: 6},
		{X: 5, Y: 6}, {X: -5, Y: 7}, {X: -1, Y: 7}, {X: 3, Y: 7},
	}
)

// StandardSamplePositions returns the fixed sample-position table for the
// given sample count (2, 4, 8, 16, or 32), in 1/16-pixel units relative to
// the pixel center. It panics for any other count.
func StandardSamplePositions(sampleCount int) []raster.Point {
	switch sampleCount {
	case 2:
		return samplePositions2
	case 4:
		return samplePositions4
	case 8:
		return samplePositions8
	case 16:
		return samplePositions16
	case 32:
		return samplePositions32
	default:
		panic(fmt.Sprintf("msaa: no standard sample positions for count %d", sampleCount))
	}
}

// maskEndingAt returns a mask with the low n bits set (all 32 bits for
// n >= 32).
func maskEndingAt(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n) - 1
}

// Lut is a square table of 32-bit half-plane coverage masks, indexed by a
// quantized (normal, signed-distance) pair: entry (x,y) encodes, for the
// half-plane through the table's corresponding normal direction and
// offset, which of the sample positions lie on its positive side. See
// SPEC_FULL.md §5.6 and original_source/msaa/src/msaa.cpp.
type Lut struct {
	table      []uint32
	samples    []raster.Point // raw 1/16-pixel-unit offsets
	resolution int
	sampleMask uint32

	resolutionF float64
	invRange    float64
	minA        float64
	lutRange    float64
}

// SampleCount returns the number of subsample positions this Lut encodes.
func (l *Lut) SampleCount() int { return len(l.samples) }

// Resolution returns the side length of the table.
func (l *Lut) Resolution() int { return l.resolution }

// Range returns the half-width, in pixel units, of signed distances this
// Lut can index; beyond it, coverage saturates to all-or-nothing.
func (l *Lut) Range() float64 { return l.lutRange }

// SampleMask returns a mask with exactly the low SampleCount bits set,
// the valid-bits mask every fetched coverage mask should be ANDed with.
func (l *Lut) SampleMask() uint32 { return l.sampleMask }

// NewLut builds a Lut for the given standard sample count (2, 4, 8, 16,
// or 32) using [DefaultResolution] and [DefaultRange].
func NewLut(sampleCount int) *Lut {
	return NewLutFrom(StandardSamplePositions(sampleCount), DefaultResolution, DefaultRange)
}

// NewLutFrom builds a Lut from an explicit sample-position table (in
// 1/16-pixel units relative to the pixel center), a table resolution, and
// a signed-distance range. It panics if len(positions) exceeds
// [MaxSampleCount].
func NewLutFrom(positions []raster.Point, resolution int, lutRange float64) *Lut {
	sampleCount := len(positions)
	if sampleCount > MaxSampleCount {
		panic(fmt.Sprintf("msaa: sample count %d exceeds MaxSampleCount", sampleCount))
	}

	l := &Lut{
		table:       make([]uint32, resolution*resolution),
		samples:     append([]raster.Point(nil), positions...),
		resolution:  resolution,
		lutRange:    lutRange,
		resolutionF: float64(resolution),
		invRange:    1 / lutRange,
		minA:        1 / float64(resolution) * lutRange,
		sampleMask:  maskEndingAt(sampleCount),
	}

	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			texCoord := raster.Point{
				X: (float64(x) + 0.5) / l.resolutionF,
				Y: (float64(y) + 0.5) / l.resolutionF,
			}
			p := raster.Point{X: 2 * (texCoord.X - 0.5), Y: 2 * (texCoord.Y - 0.5)}
			n := p.Normalized()
			a := (1 - n.Dot(p)) * lutRange

			var mask uint32
			for i, sp := range l.samples {
				sample := raster.Point{X: sp.X / 16, Y: sp.Y / 16}
				if n.Dot(sample) > a {
					mask |= 1 << uint(i)
				}
			}
			l.table[y*resolution+x] = mask
		}
	}

	return l
}

// Fetch returns the coverage mask of the half-plane { x : n·x >= a },
// where a is a signed distance in pixel units from the sample-pattern
// center and n is a unit normal. Fetch reflects (n, a) to (-n, -a) when a
// < 0 and inverts the result, then clamps a into [minA, Range()] before
// indexing the table — so the mask saturates to all-covered or
// none-covered once |a| exceeds the table's range rather than indexing
// out of bounds.
func (l *Lut) Fetch(n raster.Point, a float64) uint32 {
	flip := false
	if a < 0 {
		a = -a
		n = raster.Point{X: -n.X, Y: -n.Y}
		flip = true
	}
	a = clampFloat(a, l.minA, l.lutRange)

	p := n.Mul(1 - a*l.invRange)
	texCoord := raster.Point{X: 0.5*p.X + 0.5, Y: 0.5*p.Y + 0.5}

	x := int(texCoord.X * l.resolutionF)
	y := int(texCoord.Y * l.resolutionF)
	x = clampInt(x, 0, l.resolution-1)
	y = clampInt(y, 0, l.resolution-1)

	mask := l.table[y*l.resolution+x]
	if flip {
		return ^mask
	}
	return mask
}

// FetchPoint01 returns Fetch(n, n·(point - (0.5, 0.5))): the coverage
// mask of the half-plane through point with normal n, where point is
// given in pixel-local coordinates (the pixel occupies [0,1)x[0,1)).
func (l *Lut) FetchPoint01(n, point raster.Point) uint32 {
	r := raster.Point{X: point.X - 0.5, Y: point.Y - 0.5}
	return l.Fetch(n, n.Dot(r))
}

// FetchYLeft returns FetchPoint01(n, (0, yLeft)): the coverage mask of
// the half-plane through the pixel's left edge at height yLeft, with
// normal n.
func (l *Lut) FetchYLeft(n raster.Point, yLeft float64) uint32 {
	return l.FetchPoint01(n, raster.Point{X: 0, Y: yLeft})
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
