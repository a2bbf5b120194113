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

// maxFlattenDepth bounds the explicit subdivision stack (§4.C): 32
// levels for both quadratic and cubic arcs, sidestepping deep call
// recursion in favour of an O(1) worst-case stack.
const maxFlattenDepth = 32

func midPt(a, b point) point {
	return point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func minfx(a, b fx) fx {
	if a < b {
		return a
	}
	return b
}

func maxfx(a, b fx) fx {
	if a > b {
		return a
	}
	return b
}

func absfx(a fx) fx {
	if a < 0 {
		return -a
	}
	return a
}

// splitQuad performs one de Casteljau halving of a quadratic arc,
// returning the two joint sub-arcs sharing the midpoint.
func splitQuad(b [3]point) (left, right [3]point) {
	m01 := midPt(b[0], b[1])
	m12 := midPt(b[1], b[2])
	m := midPt(m01, m12)
	return [3]point{b[0], m01, m}, [3]point{m, m12, b[2]}
}

// splitCubic performs one de Casteljau halving of a cubic arc.
func splitCubic(b [4]point) (left, right [4]point) {
	p01 := midPt(b[0], b[1])
	p12 := midPt(b[1], b[2])
	p23 := midPt(b[2], b[3])
	p012 := midPt(p01, p12)
	p123 := midPt(p12, p23)
	p0123 := midPt(p012, p123)
	return [4]point{b[0], p01, p012, p0123}, [4]point{p0123, p123, p23, b[3]}
}

// arcClass is the monotony classification of one arc (§4.C, §4.I).
type arcClass int

const (
	arcNeedsSplit arcClass = iota // not y-monotone: controls exceed the endpoint range
	arcAscending
	arcDescending
	arcFlat
)

func classifyQuad(b [3]point) arcClass {
	lo := minfx(b[0].Y, b[2].Y)
	hi := maxfx(b[0].Y, b[2].Y)
	if b[1].Y < lo || b[1].Y > hi {
		return arcNeedsSplit
	}
	switch {
	case b[2].Y > b[0].Y:
		return arcAscending
	case b[2].Y < b[0].Y:
		return arcDescending
	default:
		return arcFlat
	}
}

func classifyCubic(b [4]point) arcClass {
	lo := minfx(b[0].Y, b[3].Y)
	hi := maxfx(b[0].Y, b[3].Y)
	if b[1].Y < lo || b[1].Y > hi || b[2].Y < lo || b[2].Y > hi {
		return arcNeedsSplit
	}
	switch {
	case b[3].Y > b[0].Y:
		return arcAscending
	case b[3].Y < b[0].Y:
		return arcDescending
	default:
		return arcFlat
	}
}

func bboxHeightQuad(b [3]point) fx {
	lo := minfx(b[0].Y, minfx(b[1].Y, b[2].Y))
	hi := maxfx(b[0].Y, maxfx(b[1].Y, b[2].Y))
	return hi - lo
}

func bboxWidthQuad(b [3]point) fx {
	lo := minfx(b[0].X, minfx(b[1].X, b[2].X))
	hi := maxfx(b[0].X, maxfx(b[1].X, b[2].X))
	return hi - lo
}

func bboxHeightCubic(b [4]point) fx {
	lo := minfx(minfx(b[0].Y, b[1].Y), minfx(b[2].Y, b[3].Y))
	hi := maxfx(maxfx(b[0].Y, b[1].Y), maxfx(b[2].Y, b[3].Y))
	return hi - lo
}

func bboxWidthCubic(b [4]point) fx {
	lo := minfx(minfx(b[0].X, b[1].X), minfx(b[2].X, b[3].X))
	hi := maxfx(maxfx(b[0].X, b[1].X), maxfx(b[2].X, b[3].X))
	return hi - lo
}

// BezierFlattener subdivides quadratic/cubic arcs into y-monotone
// sub-arcs and further into linear segments by adaptive halving
// (§4.C). It is shared by ProfileBuilder and CellRaster: both consume
// straight line segments tagged with the originating arc's
// orientation.
type BezierFlattener struct {
	precision Precision
	threshold fx   // precision_step; overridden per-arc when dynamic is set
	dynamic   bool // use the bounding-box/second-difference threshold variant
}

// NewBezierFlattener returns a flattener using precision's default
// precision_step threshold (32 low, 128 high).
func NewBezierFlattener(precision Precision) *BezierFlattener {
	return &BezierFlattener{precision: precision, threshold: precision.PrecisionStep()}
}

// SetDynamicThreshold toggles the per-arc bounding-box/second-order-
// difference threshold variant described in §4.C.
func (bf *BezierFlattener) SetDynamicThreshold(enabled bool) { bf.dynamic = enabled }

func (bf *BezierFlattener) quadThreshold(b [3]point) fx {
	if !bf.dynamic {
		return bf.threshold
	}
	width := bboxWidthQuad(b)
	d := absfx(b[0].X - 2*b[1].X + b[2].X)
	if width+d == 0 {
		return bf.threshold
	}
	t := MulDiv(int32(bf.threshold), int32(width+1), int32(width+d+1))
	if t < 1 {
		t = 1
	}
	return fx(t)
}

func (bf *BezierFlattener) cubicThreshold(b [4]point) fx {
	if !bf.dynamic {
		return bf.threshold
	}
	width := bboxWidthCubic(b)
	d1 := absfx(b[0].X - 2*b[1].X + b[2].X)
	d2 := absfx(b[1].X - 2*b[2].X + b[3].X)
	d := maxfx(d1, d2)
	if width+d == 0 {
		return bf.threshold
	}
	t := MulDiv(int32(bf.threshold), int32(width+1), int32(width+d+1))
	if t < 1 {
		t = 1
	}
	return fx(t)
}

// FlattenQuad emits emit(a, b, ascending) for each line segment
// approximating the arc p0-c-p1. Flat arcs are discarded without
// emitting anything (Testable property: height <= precision_step
// yields exactly one segment).
func (bf *BezierFlattener) FlattenQuad(p0, c, p1 point, emit func(a, b point, ascending bool)) {
	var stack [maxFlattenDepth][3]point
	sp := 0
	stack[0] = [3]point{p0, c, p1}

	for sp >= 0 {
		arc := stack[sp]
		sp--

		cls := classifyQuad(arc)
		if cls == arcNeedsSplit || bboxHeightQuad(arc) > bf.quadThreshold(arc) {
			if sp+2 >= maxFlattenDepth {
				// Depth exhausted: approximate with a single chord
				// rather than overflow the stack.
				if arc[0].Y != arc[2].Y {
					emit(arc[0], arc[2], arc[2].Y > arc[0].Y)
				}
				continue
			}
			left, right := splitQuad(arc)
			sp++
			stack[sp] = right
			sp++
			stack[sp] = left
			continue
		}

		if cls != arcFlat {
			emit(arc[0], arc[2], cls == arcAscending)
		}
	}
}

// FlattenCubic emits emit(a, b, ascending) for each line segment
// approximating the arc p0-c1-c2-p3.
func (bf *BezierFlattener) FlattenCubic(p0, c1, c2, p3 point, emit func(a, b point, ascending bool)) {
	var stack [maxFlattenDepth][4]point
	sp := 0
	stack[0] = [4]point{p0, c1, c2, p3}

	for sp >= 0 {
		arc := stack[sp]
		sp--

		cls := classifyCubic(arc)
		if cls == arcNeedsSplit || bboxHeightCubic(arc) > bf.cubicThreshold(arc) {
			if sp+2 >= maxFlattenDepth {
				if arc[0].Y != arc[3].Y {
					emit(arc[0], arc[3], arc[3].Y > arc[0].Y)
				}
				continue
			}
			left, right := splitCubic(arc)
			sp++
			stack[sp] = right
			sp++
			stack[sp] = left
			continue
		}

		if cls != arcFlat {
			emit(arc[0], arc[3], cls == arcAscending)
		}
	}
}
