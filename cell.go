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

import "golang.org/x/image/math/fixed"

// cellRecord is one line-segment/pixel-cell intersection (§4.H). pos
// holds the signed, doubled trapezoid area the segment sweeps out
// inside the cell; dir holds the signed sub-pixel height (vertical
// extent) the segment contributes to the cell's running winding sum.
type cellRecord struct {
	y, x int32
	pos  int32
	dir  int32
}

const cellRecordSize = 16

// SpanSink receives one coverage run [x1, x2) on scanline y, with
// coverage in [0, 255].
type SpanSink func(y, x1, x2 int32, coverage byte)

// CellRaster is the alternate direct anti-aliasing path (§4.H): instead
// of the profile/sweep B/W pipeline followed by gray filtering, it
// records one cell per line-segment/pixel intersection, sorts the
// cells by (y, x), and sweeps each row accumulating signed area/cover
// to produce exact per-pixel coverage in a single pass.
type CellRaster struct {
	pool      *RenderPool
	precision Precision
	flattener *BezierFlattener
	width     int32
	height    int32
	minY      int32
	maxY      int32

	cells []cellRecord
	err   error

	started    bool
	first      point
	last       point
	shellSort  bool
}

// NewCellRaster returns a raster accumulating cells into pool, clipped
// to [0, width) x [minY, maxY) (minY/maxY let a caller sub-band a
// direct render across several pool-sized passes, same as
// ProfileBuilder's minY/maxY, §7/§12).
func NewCellRaster(pool *RenderPool, precision Precision, width, height, minY, maxY int32) *CellRaster {
	return &CellRaster{
		pool:      pool,
		precision: precision,
		flattener: NewBezierFlattener(precision),
		width:     width,
		height:    height,
		minY:      minY,
		maxY:      maxY,
	}
}

// SetShellSort selects the shell-sort cell ordering instead of the
// default quicksort (§4.H's optional toggle); useful for workloads
// whose cell counts make quicksort's partitioning overhead not pay off.
func (cr *CellRaster) SetShellSort(enabled bool) { cr.shellSort = enabled }

// Err returns the first error encountered.
func (cr *CellRaster) Err() error { return cr.err }

func (cr *CellRaster) up(p fixed.Point26_6) point {
	return point{X: cr.precision.Upscale(p.X), Y: cr.precision.Upscale(p.Y)}
}

// MoveTo implements Sink.
func (cr *CellRaster) MoveTo(p fixed.Point26_6) {
	if cr.err != nil {
		return
	}
	cr.closeContour()
	cr.first = cr.up(p)
	cr.last = cr.first
	cr.started = true
}

// LineTo implements Sink.
func (cr *CellRaster) LineTo(p fixed.Point26_6) {
	if cr.err != nil {
		return
	}
	to := cr.up(p)
	cr.renderLine(cr.last, to)
	cr.last = to
}

// ConicTo implements Sink.
func (cr *CellRaster) ConicTo(c, p fixed.Point26_6) {
	if cr.err != nil {
		return
	}
	cUp, pUp := cr.up(c), cr.up(p)
	start := cr.last
	cr.flattener.FlattenQuad(start, cUp, pUp, func(a, b point, _ bool) {
		if cr.err != nil {
			return
		}
		cr.renderLine(a, b)
	})
	cr.last = pUp
}

// CubicTo implements Sink.
func (cr *CellRaster) CubicTo(c1, c2, p fixed.Point26_6) {
	if cr.err != nil {
		return
	}
	c1Up, c2Up, pUp := cr.up(c1), cr.up(c2), cr.up(p)
	start := cr.last
	cr.flattener.FlattenCubic(start, c1Up, c2Up, pUp, func(a, b point, _ bool) {
		if cr.err != nil {
			return
		}
		cr.renderLine(a, b)
	})
	cr.last = pUp
}

// closeContour implicitly closes the current contour with a straight
// line back to its start point, matching outline semantics where
// contours are always closed (§3).
func (cr *CellRaster) closeContour() {
	if !cr.started {
		return
	}
	if cr.last != cr.first {
		cr.renderLine(cr.last, cr.first)
	}
	cr.started = false
}

// Finish closes the final contour. Call once after the outline walk
// completes and before Sweep.
func (cr *CellRaster) Finish() error {
	if cr.err != nil {
		return cr.err
	}
	cr.closeContour()
	return nil
}

// renderLine walks a line segment row by row, splitting at each
// horizontal pixel-grid boundary it crosses (§4.H).
func (cr *CellRaster) renderLine(p0, p1 point) {
	if cr.err != nil || p0.Y == p1.Y {
		return
	}
	one := cr.precision.One()
	x1, y1 := p0.X, p0.Y
	x2, y2 := p1.X, p1.Y

	ey1 := floorDivFx(y1, one)
	ey2 := floorDivFx(y2, one)

	if ey1 == ey2 {
		cr.renderScanline(ey1, x1, y1-fx(ey1)*one, x2, y2-fx(ey1)*one)
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	dir := int32(1)
	if dy < 0 {
		dir = -1
	}

	row := ey1
	xFrom := x1
	yFrom := y1
	for row != ey2 {
		var yBound fx
		if dir > 0 {
			yBound = fx(row+1) * one
		} else {
			yBound = fx(row) * one
		}
		xTo := xFrom + fx(MulDiv(int32(dx), int32(yBound-yFrom), int32(dy)))
		cr.renderScanline(row, xFrom, yFrom-fx(row)*one, xTo, yBound-fx(row)*one)
		row += dir
		xFrom = xTo
		yFrom = yBound
	}
	cr.renderScanline(row, xFrom, yFrom-fx(row)*one, x2, y2-fx(row)*one)
}

// renderScanline walks one row's portion of a line segment column by
// column, splitting at each vertical pixel-grid boundary, and records
// one cell per column touched.
func (cr *CellRaster) renderScanline(ey int32, x1, fy1, x2, fy2 fx) {
	if cr.err != nil {
		return
	}
	one := cr.precision.One()
	ex1 := floorDivFx(x1, one)
	ex2 := floorDivFx(x2, one)

	if ex1 == ex2 {
		cr.addCell(ex1, ey, x1-fx(ex1)*one, x2-fx(ex1)*one, fy1, fy2)
		return
	}

	dx := x2 - x1
	dy := fy2 - fy1
	dir := int32(1)
	if dx < 0 {
		dir = -1
	}

	col := ex1
	xFrom := x1
	yFrom := fy1
	for col != ex2 {
		var xBound fx
		if dir > 0 {
			xBound = fx(col+1) * one
		} else {
			xBound = fx(col) * one
		}
		var yTo fx
		if dx == 0 {
			yTo = yFrom
		} else {
			yTo = yFrom + fx(MulDiv(int32(dy), int32(xBound-xFrom), int32(dx)))
		}
		cr.addCell(col, ey, xFrom-fx(col)*one, xBound-fx(col)*one, yFrom, yTo)
		col += dir
		xFrom = xBound
		yFrom = yTo
	}
	cr.addCell(col, ey, xFrom-fx(col)*one, x2-fx(col)*one, yFrom, fy2)
}

// addCell records one cell's signed area/cover contribution, charging
// the pool for the record (§4.H, §4.D).
func (cr *CellRaster) addCell(x, y int32, fx1, fx2, fy1, fy2 fx) {
	if cr.err != nil || y < cr.minY || y >= cr.maxY {
		return
	}
	cover := int32(fy2 - fy1)
	if cover == 0 {
		return
	}
	if _, err := cr.pool.AllocTop(cellRecordSize); err != nil {
		cr.err = err
		return
	}
	area := int32(fx1+fx2) * cover
	cr.cells = append(cr.cells, cellRecord{y: y, x: x, pos: area, dir: cover})
}

// Sweep sorts the recorded cells and walks each row left to right,
// turning accumulated area/cover into coverage spans via sink. Spans
// are coalesced via SpanCoalescer before reaching sink.
func (cr *CellRaster) Sweep(sink SpanSink) error {
	if cr.err != nil {
		return cr.err
	}
	if cr.shellSort {
		shellSortCells(cr.cells)
	} else {
		quicksortCells(cr.cells)
	}

	i := 0
	n := len(cr.cells)
	for i < n {
		y := cr.cells[i].y
		start := i
		for i < n && cr.cells[i].y == y {
			i++
		}
		cr.sweepRow(y, cr.cells[start:i], sink)
	}
	return nil
}

func (cr *CellRaster) sweepRow(y int32, cells []cellRecord, sink SpanSink) {
	var co SpanCoalescer
	co.ASink = sink
	co.Y = y

	var cover int32
	x := int32(0)
	idx := 0
	for idx < len(cells) {
		cx := cells[idx].x
		if cx >= cr.width {
			break
		}
		var area, dCover int32
		for idx < len(cells) && cells[idx].x == cx {
			area += cells[idx].pos
			dCover += cells[idx].dir
			idx++
		}

		if cx > x && cover != 0 {
			gx1, gx2 := clampRange(x, cx, cr.width)
			co.Push(gx1, gx2, 255)
		}

		cover += dCover
		if cx >= 0 {
			// The cell's pixel is covered by the part of each segment's
			// cover lying to its right: cover·2·one minus the left area.
			co.Push(cx, cx+1, cr.alphaToCoverage(cover, -area))
		}
		x = cx + 1
	}

	if cover != 0 && x < cr.width {
		gx1, gx2 := clampRange(x, cr.width, cr.width)
		co.Push(gx1, gx2, 255)
	}
	co.Flush()
}

// alphaToCoverage converts the accumulated signed area for one cell,
// |cover·2·one + area|, into a coverage byte, clamped to [0, 255] (§4.H).
func (cr *CellRaster) alphaToCoverage(cover, area int32) byte {
	one := int64(cr.precision.One())
	alpha := int64(cover)*2*one + int64(area)
	if alpha < 0 {
		alpha = -alpha
	}
	full := 2 * one * one
	if full == 0 {
		return 0
	}
	v := alpha * 255 / full
	if v > 255 {
		v = 255
	}
	return byte(v)
}

func floorDivFx(n, d fx) int32 {
	q := int32(n) / int32(d)
	r := int32(n) % int32(d)
	if r != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}

func cellLess(a, b cellRecord) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

// quicksortCells sorts cells by (y, x) using a non-recursive quicksort
// with an explicit stack, median-of-three pivot selection, and an
// insertion-sort cutoff for small partitions (§4.H). The larger
// partition is always pushed on the stack and the loop continues on the
// smaller one, so the stack depth is bounded by O(log n) even for
// adversarial inputs.
func quicksortCells(cells []cellRecord) {
	const cutoff = 4
	type frame struct{ lo, hi int }

	if len(cells) < 2 {
		return
	}

	var stack [64]frame
	sp := 0
	stack[sp] = frame{0, len(cells) - 1}
	sp++

	for sp > 0 {
		sp--
		lo, hi := stack[sp].lo, stack[sp].hi

		for hi-lo+1 > cutoff {
			mid := lo + (hi-lo)/2
			if cellLess(cells[mid], cells[lo]) {
				cells[lo], cells[mid] = cells[mid], cells[lo]
			}
			if cellLess(cells[hi], cells[lo]) {
				cells[lo], cells[hi] = cells[hi], cells[lo]
			}
			if cellLess(cells[hi], cells[mid]) {
				cells[mid], cells[hi] = cells[hi], cells[mid]
			}
			pivot := cells[mid]
			cells[mid], cells[hi-1] = cells[hi-1], cells[mid]

			i, j := lo, hi-1
			for {
				i++
				for cellLess(cells[i], pivot) {
					i++
				}
				j--
				for cellLess(pivot, cells[j]) {
					j--
				}
				if i >= j {
					break
				}
				cells[i], cells[j] = cells[j], cells[i]
			}
			cells[i], cells[hi-1] = cells[hi-1], cells[i]

			if i-lo < hi-i {
				if sp < len(stack) {
					stack[sp] = frame{i + 1, hi}
					sp++
				}
				hi = i - 1
			} else {
				if sp < len(stack) {
					stack[sp] = frame{lo, i - 1}
					sp++
				}
				lo = i + 1
			}
		}
		insertionSortCells(cells, lo, hi)
	}
}

func insertionSortCells(cells []cellRecord, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v := cells[i]
		j := i - 1
		for j >= lo && cellLess(v, cells[j]) {
			cells[j+1] = cells[j]
			j--
		}
		cells[j+1] = v
	}
}

// shellSortCells is the optional alternate ordering pass (§4.H),
// using Ciura's empirically-tuned gap sequence.
func shellSortCells(cells []cellRecord) {
	n := len(cells)
	gaps := [...]int{701, 301, 132, 57, 23, 10, 4, 1}
	for _, gap := range gaps {
		if gap >= n {
			continue
		}
		for i := gap; i < n; i++ {
			v := cells[i]
			j := i
			for j >= gap && cellLess(v, cells[j-gap]) {
				cells[j] = cells[j-gap]
				j -= gap
			}
			cells[j] = v
		}
	}
}
