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

import "sort"

// DropOutMode selects the drop-out control rule applied to sub-pixel
// spans (§4.F). Mode 0 disables drop-out handling; any other value not
// in {1,2,4,5} is ignored (treated as DropOutNone).
type DropOutMode int

const (
	DropOutNone  DropOutMode = 0
	DropOutStub1 DropOutMode = 1
	DropOutStub2 DropOutMode = 2
	DropOutStub4 DropOutMode = 4
	DropOutStub5 DropOutMode = 5
)

func (m DropOutMode) valid() bool {
	switch m {
	case DropOutNone, DropOutStub1, DropOutStub2, DropOutStub4, DropOutStub5:
		return true
	default:
		return false
	}
}

// SpanFunc receives one filled horizontal pixel span [xStart, xEnd) on
// scanline y.
type SpanFunc func(y, xStart, xEnd int32)

// PixelFunc sets a single pixel, used by drop-out control. When nil,
// the sweeper synthesizes a length-1 span instead.
type PixelFunc func(x, y int32)

// Sweeper walks the y-turn list of a ProfileBuilder, maintaining an
// x-sorted active ("draw") list and emitting horizontal fill spans
// with drop-out control (§4.F).
type Sweeper struct {
	precision Precision
	dropOut   DropOutMode
	width     int32
}

// NewSweeper returns a Sweeper clipping emitted spans to [0, width).
func NewSweeper(precision Precision, dropOut DropOutMode, width int32) *Sweeper {
	if !dropOut.valid() {
		dropOut = DropOutNone
	}
	return &Sweeper{precision: precision, dropOut: dropOut, width: width}
}

// Run sweeps all profiles built by pb, calling span for each fill span
// and (when drop-out control fires) setPixel for single pixels.
func (sw *Sweeper) Run(pb *ProfileBuilder, span SpanFunc, setPixel PixelFunc) error {
	profiles := pb.Profiles()
	xStore := pb.xStore
	yTurns := pb.YTurns()
	if len(profiles) == 0 || len(yTurns) < 2 {
		return nil
	}

	waitOrder := make([]int, len(profiles))
	for i := range waitOrder {
		waitOrder[i] = i
	}
	sort.Slice(waitOrder, func(i, j int) bool {
		return profiles[waitOrder[i]].startY < profiles[waitOrder[j]].startY
	})
	waitPos := 0

	var draw []int
	rowBits := make([]bool, sw.width)

	for ti := 0; ti < len(yTurns)-1; ti++ {
		bandStart := yTurns[ti]
		bandEnd := yTurns[ti+1]

		for waitPos < len(waitOrder) && profiles[waitOrder[waitPos]].startY == bandStart {
			idx := waitOrder[waitPos]
			profiles[idx].rowIdx = 0
			profiles[idx].currentX = xStore[profiles[idx].xBase]
			draw = append(draw, idx)
			waitPos++
		}

		for y := bandStart; y < bandEnd; y++ {
			if y != bandStart {
				for _, idx := range draw {
					p := &profiles[idx]
					p.rowIdx++
					p.currentX = xStore[p.xBase+int(p.rowIdx)]
				}
			}

			bubbleSortByX(draw, profiles)
			clearBits(rowBits)
			sw.sweepRow(y, draw, profiles, xStore, span, setPixel, rowBits)

			kept := draw[:0]
			for _, idx := range draw {
				p := &profiles[idx]
				if p.startY+p.height > y+1 {
					kept = append(kept, idx)
				}
			}
			draw = kept
		}
	}
	return nil
}

func bubbleSortByX(draw []int, profiles []profileRec) {
	n := len(draw)
	for {
		swapped := false
		for i := 1; i < n; i++ {
			if profiles[draw[i-1]].currentX > profiles[draw[i]].currentX {
				draw[i-1], draw[i] = draw[i], draw[i-1]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

func clearBits(b []bool) {
	for i := range b {
		b[i] = false
	}
}

func rowsRemaining(p *profileRec) int32 { return p.height - p.rowIdx - 1 }

// sweepRow traverses the x-sorted draw list for one scanline, tracking
// the signed winding window; whenever it returns to zero the pair
// (spanStart, current) is an in-fill span (§4.F item b).
func (sw *Sweeper) sweepRow(y int32, draw []int, profiles []profileRec, xStore []fx, span SpanFunc, setPixel PixelFunc, rowBits []bool) {
	one := sw.precision.One()
	var window int32
	var spanStartX fx
	var spanStartIdx int
	inSpan := false

	for _, idx := range draw {
		p := &profiles[idx]
		delta := int32(1)
		if p.orientation == profDescending {
			delta = -1
		}

		prevWindow := window
		window += delta

		if prevWindow == 0 && window != 0 {
			spanStartX = p.currentX
			spanStartIdx = idx
			inSpan = true
			continue
		}
		if prevWindow != 0 && window == 0 && inSpan {
			inSpan = false
			gap := p.currentX - spanStartX
			x1 := sw.precision.Trunc(spanStartX)
			x2 := sw.precision.Trunc(p.currentX)

			if gap <= one && sw.dropOut != DropOutNone {
				sw.handleDropOut(y, x1, x2, spanStartIdx, idx, profiles, span, setPixel, rowBits)
			} else if x2 > x1 {
				sw.emitSpan(y, x1, x2, span, rowBits)
			}
		}
	}
	_ = xStore
}

func (sw *Sweeper) emitSpan(y, x1, x2 int32, span SpanFunc, rowBits []bool) {
	if x1 < 0 {
		x1 = 0
	}
	if x2 > sw.width {
		x2 = sw.width
	}
	if x2 <= x1 {
		return
	}
	for x := x1; x < x2; x++ {
		rowBits[x] = true
	}
	if span != nil {
		span(y, x1, x2)
	}
}

// setDropOutPixel marks one drop-out-recovered pixel. When setPixel is
// nil it falls back to span, emitting the pixel as a length-1 span, so
// a caller that only wires span still observes every drop-out pixel.
func (sw *Sweeper) setDropOutPixel(y, x int32, span SpanFunc, setPixel PixelFunc, rowBits []bool) {
	if x < 0 || x >= sw.width {
		return
	}
	rowBits[x] = true
	if setPixel != nil {
		setPixel(x, y)
	} else if span != nil {
		span(y, x, x+1)
	}
}

// handleDropOut applies the drop-out rule for a pair of pixels (x1,x2)
// that together span at most one pixel (§4.F).
func (sw *Sweeper) handleDropOut(y, x1, x2 int32, leftIdx, rightIdx int, profiles []profileRec, span SpanFunc, setPixel PixelFunc, rowBits []bool) {
	left := &profiles[leftIdx]
	right := &profiles[rightIdx]

	switch sw.dropOut {
	case DropOutStub1:
		sw.setDropOutPixel(y, maxI32(x1, x2), span, setPixel, rowBits)

	case DropOutStub4:
		mid := (x1 + x2 + 1) / 2
		sw.setDropOutPixel(y, mid, span, setPixel, rowBits)

	case DropOutStub2, DropOutStub5:
		isStub := (left.nextInContour == rightIdx && rowsRemaining(left) <= 0) ||
			(right.nextInContour == leftIdx && left.startY == y)
		if !isStub {
			return
		}
		px := maxI32(x1, x2)
		if sw.dropOut == DropOutStub5 {
			px = (x1 + x2 + 1) / 2
		}
		if px+1 >= 0 && px+1 < sw.width && rowBits[px+1] {
			return
		}
		sw.setDropOutPixel(y, px, span, setPixel, rowBits)
	}
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
