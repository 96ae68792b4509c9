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
	"math"
	"sort"

	"seehuhn.de/go/raster"
)

// noPosition marks a scanline/fragment cursor that has not yet been
// assigned a pixel coordinate.
const noPosition = math.MaxInt32

// scanSegment is one Segment's intersection with the current scanline,
// clipped to the scanline's [y, y+1) band and stored in x-order: left is
// whichever endpoint of the clip has the smaller X, right the other.
// Which of the two is the segment's bottom or top is fixed for the
// segment's lifetime by Segment.LeftIsBottom.
type scanSegment struct {
	left, right raster.Point

	// yMidFragment is floor(X) of the point where the segment crosses
	// the scanline's mid-height horizontal ray (y = scanline + 0.5), or
	// noPosition if it does not cross that ray within this scanline.
	yMidFragment int

	leftLeqYMid, rightLeqYMid bool
}

// fragSegment is one Segment's intersection with the current fragment
// (pixel column), again clipped and stored in x-order.
type fragSegment struct {
	left, right raster.Point
}

// Engine is a reusable analytic MSAA coverage rasterizer. It walks a set
// of canonicalized [Segment]s scanline by scanline and, within each
// scanline, fragment (pixel) by fragment, emitting one [SampleRun] per
// pixel that straddles a boundary and one run per fully-covered interior
// span; uncovered spans produce no run. This is the Go port of the generic
// advance_scanline/advance_fragment engine in
// original_source/msaa/src/rasterizer.{hpp,cpp}, specialized with the
// MSAA-specific on_fragment logic from original_source/msaa/src/msaa.cpp.
//
// The zero value is ready to use. An Engine retains its scratch buffers
// across calls to [Engine.Rasterize], so reusing one Engine for many
// paths avoids repeated allocation.
type Engine struct {
	lut     *Lut
	infos   []Segment
	normals []raster.Point

	scanWinding int8
	sampleRuns  []SampleRun

	scan struct {
		segments   []scanSegment
		actives    []int
		infoCursor int
		position   int
		nextPos    int
	}

	frag struct {
		segments         []fragSegment
		actives          []int
		scanActiveCursor int
		position         int
		nextPos          int
		nextSegmentPos   int
	}
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine { return &Engine{} }

// Backend reports which portable coverage-compare code path this host
// runs (see [BackendName]), for logging/diagnostics only: it has no
// effect on the masks [Engine.Rasterize] produces.
func (e *Engine) Backend() string { return BackendName() }

// rotateCW returns v rotated 90 degrees clockwise in the reference
// implementation's convention, rotated_cw(v) = (v.y, -v.x); this is the
// opposite sign from [raster.Point.RotatedCW] and is kept local rather
// than reused, so a future change to that method can't silently flip
// every normal this engine fetches from the Lut.
func rotateCW(v raster.Point) raster.Point {
	return raster.Point{X: v.Y, Y: -v.X}
}

func floorToInt(v float64) int { return int(math.Floor(v)) }

// getIntersection clips the segment p0->p1 against the boundary
// p.Component(axis) == target, where limit is how far the segment extends
// in that axis, returning p1 unchanged when the segment does not reach
// past target (limit <= target), and otherwise the point on
// the segment where that axis equals target, with the other axis
// linearly interpolated and clamped to the p0..p1 range.
func getIntersection(axis int, limit, target float64, p0, p1 raster.Point) raster.Point {
	if limit <= target {
		return p1
	}
	a := p0.Component(axis)
	b := p1.Component(axis)
	t := (target - a) / (b - a)
	t = clampFloat(t, 0, 1)

	other0 := p0.Component(1 - axis)
	other1 := p1.Component(1 - axis)
	value := other0 + (other1-other0)*t

	if axis == 0 {
		return raster.Point{X: target, Y: value}
	}
	return raster.Point{X: value, Y: target}
}

// Rasterize computes the multisample coverage of the region bounded by
// segments (non-zero winding rule) and returns the boundary/solid-span
// [SampleRun]s describing it, using lut to turn per-edge signed
// distances into per-sample masks.
func (e *Engine) Rasterize(segments []Segment, lut *Lut) []SampleRun {
	e.init(segments, lut)
	for e.advanceScanline() {
		for e.advanceFragment() {
		}
	}
	return e.sampleRuns
}

func (e *Engine) init(segments []Segment, lut *Lut) {
	e.lut = lut
	e.infos = append(e.infos[:0], segments...)
	sort.SliceStable(e.infos, func(i, j int) bool {
		return e.infos[i].YMin() < e.infos[j].YMin()
	})
	n := len(e.infos)

	if cap(e.normals) < n {
		e.normals = make([]raster.Point, n)
	} else {
		e.normals = e.normals[:n]
	}
	for i, info := range e.infos {
		delta := raster.Point{X: info.P1.X - info.P0.X, Y: info.P1.Y - info.P0.Y}
		e.normals[i] = rotateCW(delta).Normalized()
	}

	e.scanWinding = 0
	e.sampleRuns = e.sampleRuns[:0]

	if cap(e.scan.segments) < n {
		e.scan.segments = make([]scanSegment, n)
	} else {
		e.scan.segments = e.scan.segments[:n]
	}
	e.scan.actives = e.scan.actives[:0]
	e.scan.infoCursor = 0
	e.scan.position = noPosition
	e.scan.nextPos = noPosition
	if n > 0 {
		e.scan.nextPos = floorToInt(e.infos[0].YMin())
	}

	if cap(e.frag.segments) < n {
		e.frag.segments = make([]fragSegment, n)
	} else {
		e.frag.segments = e.frag.segments[:n]
	}
	e.frag.actives = e.frag.actives[:0]
}

func (e *Engine) scanBottomPtr(idx int) *raster.Point {
	if e.infos[idx].LeftIsBottom {
		return &e.scan.segments[idx].left
	}
	return &e.scan.segments[idx].right
}

func (e *Engine) scanTopPtr(idx int) *raster.Point {
	if e.infos[idx].LeftIsBottom {
		return &e.scan.segments[idx].right
	}
	return &e.scan.segments[idx].left
}

func (e *Engine) scanlineBegin() int { return e.scan.position }
func (e *Engine) scanlineEnd() int   { return e.scan.position + 1 }
func (e *Engine) fragmentBegin() int { return e.frag.position }
func (e *Engine) fragmentEnd() int   { return e.frag.position + 1 }

// nextScanlineActiveXMin returns the left X of the next not-yet-activated
// fragment segment on the current scanline, if any.
func (e *Engine) nextScanlineActiveXMin() (float64, bool) {
	if e.frag.scanActiveCursor < len(e.scan.actives) {
		idx := e.scan.actives[e.frag.scanActiveCursor]
		return e.scan.segments[idx].left.X, true
	}
	return 0, false
}

// advanceScanline moves to the next scanline, activating newly-relevant
// segments and clipping all active segments to the new scanline band. It
// returns false once there is nothing left to process.
func (e *Engine) advanceScanline() bool {
	if len(e.scan.actives) == 0 && e.scan.infoCursor >= len(e.infos) {
		return false
	}

	e.scan.position = e.scan.nextPos
	e.scan.nextPos = e.scan.position + 1

	for e.scan.infoCursor < len(e.infos) && e.infos[e.scan.infoCursor].YMin() < float64(e.scanlineEnd()) {
		idx := e.scan.infoCursor
		*e.scanTopPtr(idx) = e.infos[idx].P0
		e.scan.actives = append(e.scan.actives, idx)
		e.scan.infoCursor++
	}

	kept := e.scan.actives[:0]
	yMid := float64(e.scan.position) + 0.5
	for _, idx := range e.scan.actives {
		info := e.infos[idx]
		if info.YMax() <= float64(e.scanlineBegin()) {
			continue
		}

		bottomPtr := e.scanBottomPtr(idx)
		topPtr := e.scanTopPtr(idx)
		*bottomPtr = *topPtr
		*topPtr = getIntersection(1, info.YMax(), float64(e.scanlineEnd()), info.P0, info.P1)

		seg := &e.scan.segments[idx]
		seg.leftLeqYMid = seg.left.Y <= yMid
		seg.rightLeqYMid = seg.right.Y <= yMid

		yMin, yMax := bottomPtr.Y, topPtr.Y
		if yMin <= yMid && yMax > yMid {
			dy := yMax - yMin
			t := 0.5
			if dy > 5e-6 {
				t = (yMid - yMin) / dy
			}
			x := bottomPtr.X + (topPtr.X-bottomPtr.X)*t
			seg.yMidFragment = floorToInt(x)
		} else {
			seg.yMidFragment = noPosition
		}

		kept = append(kept, idx)
	}
	e.scan.actives = kept

	sort.SliceStable(e.scan.actives, func(i, j int) bool {
		return e.scan.segments[e.scan.actives[i]].left.X < e.scan.segments[e.scan.actives[j]].left.X
	})

	e.frag.actives = e.frag.actives[:0]
	e.frag.scanActiveCursor = 0
	e.frag.position = noPosition
	e.frag.nextPos = noPosition
	e.frag.nextSegmentPos = noPosition
	if xMin, ok := e.nextScanlineActiveXMin(); ok {
		e.frag.nextPos = floorToInt(xMin)
		e.frag.nextSegmentPos = e.frag.nextPos
	}

	e.scanWinding = 0

	return true
}

// advanceFragment moves to the next fragment (pixel column) within the
// current scanline, activating newly-relevant segments, clipping all
// active segments to the new fragment, and emitting the resulting
// SampleRun. It returns false once the scanline is exhausted.
func (e *Engine) advanceFragment() bool {
	if len(e.frag.actives) == 0 && e.frag.scanActiveCursor >= len(e.scan.actives) {
		return false
	}

	e.frag.position = e.frag.nextPos
	e.frag.nextPos = e.frag.position + 1

	if e.frag.position >= e.frag.nextSegmentPos {
		for {
			xMin, ok := e.nextScanlineActiveXMin()
			if !ok || xMin > float64(e.fragmentEnd()) {
				break
			}
			idx := e.scan.actives[e.frag.scanActiveCursor]
			e.frag.segments[idx].right = e.scan.segments[idx].left
			e.frag.actives = append(e.frag.actives, idx)
			e.frag.scanActiveCursor++
		}
		if xMin, ok := e.nextScanlineActiveXMin(); ok {
			e.frag.nextSegmentPos = floorToInt(xMin)
		} else {
			e.frag.nextSegmentPos = noPosition
		}
	}

	kept := e.frag.actives[:0]
	for _, idx := range e.frag.actives {
		scanSeg := e.scan.segments[idx]
		if scanSeg.right.X <= float64(e.fragmentBegin()) {
			continue
		}
		fs := &e.frag.segments[idx]
		fs.left = fs.right
		fs.right = getIntersection(0, scanSeg.right.X, float64(e.fragmentEnd()), scanSeg.left, scanSeg.right)
		kept = append(kept, idx)
	}
	e.frag.actives = kept

	if len(e.frag.actives) == 0 {
		e.frag.nextPos = e.frag.nextSegmentPos
	}

	e.onFragment()

	return true
}

// onFragment computes this pixel's coverage mask (or, for a fully
// interior run, decides whether to emit a solid span) from the active
// segments' current fragment clips. This is the Go port of
// original_source/msaa/src/msaa.cpp's Rasterizer::on_fragment.
func (e *Engine) onFragment() {
	x := e.fragmentBegin()
	y := e.scanlineBegin()

	if len(e.frag.actives) == 0 {
		if e.frag.scanActiveCursor < len(e.scan.actives) && e.scanWinding != 0 {
			length := e.frag.nextSegmentPos - e.fragmentBegin()
			e.addSampleRun(x, y, length, ^uint32(0))
		}
		return
	}

	xBegin := float64(x)
	yBegin := float64(y)
	yEnd := float64(y + 1)
	fragPos := raster.Point{X: xBegin, Y: yBegin}

	var deltas sampleDeltas
	var scanDelta int8

	for _, idx := range e.frag.actives {
		info := e.infos[idx]
		scanSeg := e.scan.segments[idx]
		fragSeg := e.frag.segments[idx]
		left, right := fragSeg.left, fragSeg.right

		if left.X == right.X && left.Y == right.Y {
			continue
		}

		intersectsMainRay := xBegin == float64(scanSeg.yMidFragment)

		if left.X == xBegin && info.Vertical {
			if intersectsMainRay {
				e.scanWinding += info.WindingSign
			}
			continue
		}

		if intersectsMainRay {
			scanDelta += info.WindingSign
		}

		lowMask := ^uint32(0)
		var highMask uint32
		yMin, yMax := left.Y, right.Y
		if yMin > yMax {
			yMin, yMax = yMax, yMin
		}
		if yMin > yBegin {
			lowMask = e.lut.FetchYLeft(raster.Point{X: 0, Y: 1}, yMin-yBegin)
		}
		if yMax < yEnd {
			highMask = e.lut.FetchYLeft(raster.Point{X: 0, Y: 1}, yMax-yBegin)
		}
		normalMask := e.lut.FetchPoint01(e.normals[idx], raster.Point{X: left.X - fragPos.X, Y: left.Y - fragPos.Y})

		horizontalMask := lowMask &^ highMask & normalMask
		deltas.addMasked(horizontalMask, info.WindingSign)

		if left.X == xBegin {
			verticalWinding := info.WindingSign
			var verticalMask uint32
			if info.LeftIsBottom {
				verticalMask = lowMask
			} else {
				verticalMask = highMask
			}

			isUp := info.LeftIsBottom && !info.Horizontal
			if isUp {
				verticalWinding = -verticalWinding
			}

			leftLeqYMid := scanSeg.leftLeqYMid
			if xBegin > float64(scanSeg.yMidFragment) {
				leftLeqYMid = scanSeg.rightLeqYMid
			}
			if leftLeqYMid {
				verticalWinding = -verticalWinding
				verticalMask = ^verticalMask
			}

			deltas.addMasked(verticalMask, verticalWinding)
		}
	}

	deltas.addAll(e.scanWinding)
	e.addSampleRun(x, y, 1, deltas.nonZeroMask())

	e.scanWinding += scanDelta
}

func (e *Engine) addSampleRun(x, y, length int, mask uint32) {
	e.sampleRuns = append(e.sampleRuns, SampleRun{
		X: x, Y: y, Length: length,
		Mask: mask & e.lut.SampleMask(),
	})
}
