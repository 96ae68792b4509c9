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

import "golang.org/x/sys/cpu"

// sampleDeltas holds one signed winding accumulator per subsample (up to
// [MaxSampleCount]). The reference implementation keeps these as a
// 32-byte buffer split across two 16-byte SIMD lanes and uses a
// PSHUFB-style masked add plus a byte-wise compare-to-zero to turn it
// into a coverage mask (original_source/msaa/src/msaa.cpp,
// Rasterizer::on_fragment); this is the portable equivalent spec.md §9
// calls for: the observable mask must match bit-for-bit, the ISA need
// not.
type sampleDeltas [MaxSampleCount]int8

// addMasked adds winding to every accumulator selected by mask.
func (d *sampleDeltas) addMasked(mask uint32, winding int8) {
	for i := range d {
		if mask&(1<<uint(i)) != 0 {
			d[i] += winding
		}
	}
}

// addAll adds winding to every accumulator.
func (d *sampleDeltas) addAll(winding int8) {
	for i := range d {
		d[i] += winding
	}
}

// nonZeroMask returns a mask with bit i set wherever d[i] != 0 — the
// non-zero winding rule applied per sample.
func (d *sampleDeltas) nonZeroMask() uint32 {
	var mask uint32
	for i, v := range d {
		if v != 0 {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// BackendName reports which portable coverage-compare code path is
// running, purely for diagnostics: the computed masks are identical
// across backends by construction (spec.md §9), so nothing in this
// package branches on the result.
func BackendName() string {
	switch {
	case cpu.X86.HasSSE41:
		return "portable (sse4.1-capable host)"
	case cpu.ARM64.HasASIMD:
		return "portable (asimd-capable host)"
	default:
		return "portable"
	}
}
