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
	"sort"

	"golang.org/x/image/math/fixed"
)

// profileOrientation is the fill-direction of one profile: Ascending
// contributes +1 to the sweep's winding counter, Descending -1 (§3,
// §4.F). It is independent of which endpoint has the smaller y.
type profileOrientation int

const (
	profAscending profileOrientation = iota
	profDescending
)

// profileState mirrors the builder's current-arc classification (§4.E).
type profileState int

const (
	stateUnknown profileState = iota
	stateAscending
	stateDescending
	stateFlat
)

// profileRec is one profile: the x-intersections of a monotone sub-arc
// over a contiguous range of scanlines (§3). Profiles live in a
// bump-allocated arena (ProfileBuilder.profiles) and form an intrusive
// ring per contour via nextInContour. link is initialised to -1 and not
// used further; the sweeper keeps its own index slices.
type profileRec struct {
	orientation   profileOrientation
	startY        int32
	height        int32
	xBase         int // index into xStore of this profile's first x value
	link          int // always -1; unused
	nextInContour int // next profile along the same contour (ring); -1 = none
	countLeft     int32
	currentX      fx
	rowIdx        int32 // sweeper scratch: offset into xStore for the current scanline
}

// Byte costs charged against the RenderPool for each arena allocation;
// chosen close to the size an equivalent packed C struct would occupy.
const (
	profileRecordSize = 32
	xEntrySize        = 4
	yTurnEntrySize    = 4
)

// ProfileBuilder consumes OutlineWalker/BezierFlattener events and
// builds the profile arena and sorted y-turn list for one render call
// (§4.E).
type ProfileBuilder struct {
	pool        *RenderPool
	precision   Precision
	reverseFill bool
	flattener   *BezierFlattener
	minY, maxY  int32 // clip range, in scanlines

	profiles []profileRec
	xStore   []fx
	yTurns   []int32

	state           profileState
	fresh           bool
	last            point
	curProfile      int // -1 = none open
	curOrientation  profileOrientation
	lastPushedRow   int32
	hasLastPushed   bool
	contourFirst    int // first profile opened in the current contour; -1 = none
	contourPrev     int // most recently closed profile in the current contour; -1 = none
	err             error
}

// NewProfileBuilder returns a builder writing into pool, working in
// precision, clipping scanlines to [minY, maxY).
func NewProfileBuilder(pool *RenderPool, precision Precision, reverseFill bool, minY, maxY int32) *ProfileBuilder {
	return &ProfileBuilder{
		pool:        pool,
		precision:   precision,
		reverseFill: reverseFill,
		flattener:   NewBezierFlattener(precision),
		minY:        minY,
		maxY:        maxY,
		curProfile:  -1,
		contourFirst: -1,
		contourPrev: -1,
	}
}

// Err returns the first error encountered; once set, further Sink
// calls are no-ops.
func (pb *ProfileBuilder) Err() error { return pb.err }

// Profiles, XAt, YTurns expose the built arena to the Sweeper.
func (pb *ProfileBuilder) Profiles() []profileRec { return pb.profiles }
func (pb *ProfileBuilder) XAt(i int) fx           { return pb.xStore[i] }
func (pb *ProfileBuilder) YTurns() []int32        { return pb.yTurns }

func (pb *ProfileBuilder) up(p fixed.Point26_6) point {
	return point{X: pb.precision.Upscale(p.X), Y: pb.precision.Upscale(p.Y)}
}

// MoveTo implements Sink.
func (pb *ProfileBuilder) MoveTo(p fixed.Point26_6) {
	if pb.err != nil {
		return
	}
	pb.closeContour()
	pb.last = pb.up(p)
	pb.state = stateUnknown
	pb.fresh = true
}

// LineTo implements Sink.
func (pb *ProfileBuilder) LineTo(p fixed.Point26_6) {
	if pb.err != nil {
		return
	}
	to := pb.up(p)
	pb.addMonotoneSegment(pb.last, to)
	pb.last = to
}

// ConicTo implements Sink, flattening the quadratic via BezierFlattener.
func (pb *ProfileBuilder) ConicTo(c, p fixed.Point26_6) {
	if pb.err != nil {
		return
	}
	cUp := pb.up(c)
	pUp := pb.up(p)
	start := pb.last
	pb.flattener.FlattenQuad(start, cUp, pUp, func(a, b point, _ bool) {
		if pb.err != nil {
			return
		}
		pb.addMonotoneSegment(a, b)
	})
	pb.last = pUp
}

// CubicTo implements Sink, flattening the cubic via BezierFlattener.
func (pb *ProfileBuilder) CubicTo(c1, c2, p fixed.Point26_6) {
	if pb.err != nil {
		return
	}
	c1Up := pb.up(c1)
	c2Up := pb.up(c2)
	pUp := pb.up(p)
	start := pb.last
	pb.flattener.FlattenCubic(start, c1Up, c2Up, pUp, func(a, b point, _ bool) {
		if pb.err != nil {
			return
		}
		pb.addMonotoneSegment(a, b)
	})
	pb.last = pUp
}

// addMonotoneSegment classifies one already-monotone segment (a straight
// line, or one y-monotone piece of a flattened curve) and feeds it into
// the current profile, opening a new one if the orientation changed.
func (pb *ProfileBuilder) addMonotoneSegment(from, to point) {
	if pb.err != nil {
		return
	}
	if to.Y == from.Y {
		pb.state = stateFlat
		return
	}

	ascending := to.Y > from.Y
	orient := profAscending
	if !ascending {
		orient = profDescending
	}
	if pb.reverseFill {
		if orient == profAscending {
			orient = profDescending
		} else {
			orient = profAscending
		}
	}

	if pb.curProfile < 0 || pb.curOrientation != orient {
		pb.endProfile()
		if err := pb.startProfile(orient); err != nil {
			pb.err = err
			return
		}
		pb.curOrientation = orient
	}
	if orient == profAscending {
		pb.state = stateAscending
	} else {
		pb.state = stateDescending
	}
	pb.fresh = false

	lowY, highY := from, to
	if lowY.Y > highY.Y {
		lowY, highY = highY, lowY
	}
	prof := pb.curProfile
	base, before := pb.profiles[prof].xBase, len(pb.xStore)
	if err := pb.pushLineIntersections(lowY.X, lowY.Y, highY.X, highY.Y); err != nil {
		pb.err = err
		return
	}
	// A downward segment's rows lie just below the rows this profile
	// already holds: move them to the front so the profile's x values
	// stay in increasing-row order starting at startY.
	if added := len(pb.xStore) - before; !ascending && added > 0 && before > base {
		blk := append([]fx(nil), pb.xStore[before:]...)
		copy(pb.xStore[base+added:], pb.xStore[base:before])
		copy(pb.xStore[base:], blk)
		pb.profiles[prof].startY -= int32(added)
	}
}

// pushLineIntersections pushes one x-intersection per scanline the
// segment [ (x0,y0), (x1,y1) ] crosses (y0 < y1 required), sampling
// each pixel row at its vertical centre. The per-row x follows the
// per-scanline increment described in §4.E (here computed per row via
// MulDiv rather than an incremental Bresenham carry, which is an
// equivalent, simpler formulation of the same fixed-point division).
func (pb *ProfileBuilder) pushLineIntersections(x0, y0, x1, y1 fx) error {
	one := pb.precision.One()
	half := one / 2
	dy := y1 - y0
	if dy <= 0 {
		return nil
	}
	dx := x1 - x0

	firstRow := ceilDivFx(y0-half, one)
	lastRow := ceilDivFx(y1-half, one)
	if firstRow < pb.minY {
		firstRow = pb.minY
	}
	if lastRow > pb.maxY {
		lastRow = pb.maxY
	}
	if lastRow <= firstRow {
		return nil
	}

	prof := &pb.profiles[pb.curProfile]
	if prof.height == 0 {
		prof.startY = firstRow
	}

	for row := firstRow; row < lastRow; row++ {
		if pb.hasLastPushed && row == pb.lastPushedRow {
			// Drop-out joint rule: an arc that terminated exactly on
			// this scanline already pushed it; the next arc must not
			// duplicate it.
			continue
		}
		yc := fx(row)*one + half
		xAt := x0 + fx(MulDiv(int32(dx), int32(yc-y0), int32(dy)))
		if err := pb.pushX(xAt); err != nil {
			return err
		}
	}
	pb.hasLastPushed = true
	pb.lastPushedRow = lastRow - 1
	return nil
}

func (pb *ProfileBuilder) pushX(v fx) error {
	if _, err := pb.pool.AllocTop(xEntrySize); err != nil {
		return err
	}
	pb.xStore = append(pb.xStore, v)
	pb.profiles[pb.curProfile].height++
	return nil
}

func (pb *ProfileBuilder) startProfile(orient profileOrientation) error {
	if _, err := pb.pool.AllocTop(profileRecordSize); err != nil {
		return err
	}
	idx := len(pb.profiles)
	pb.profiles = append(pb.profiles, profileRec{
		orientation:   orient,
		xBase:         len(pb.xStore),
		link:          -1,
		nextInContour: -1,
	})
	pb.curProfile = idx
	pb.hasLastPushed = false
	return nil
}

// endProfile closes the currently-open profile (if any) and links it
// into the current contour's ring via nextInContour.
func (pb *ProfileBuilder) endProfile() {
	if pb.curProfile < 0 {
		return
	}
	idx := pb.curProfile
	if pb.contourPrev >= 0 {
		pb.profiles[pb.contourPrev].nextInContour = idx
	}
	if pb.contourFirst < 0 {
		pb.contourFirst = idx
	}
	pb.contourPrev = idx
	pb.curProfile = -1
}

// closeContour ends any open profile and closes the contour's ring
// (nextInContour of the last profile points back to the first),
// matching the design note that the link is closed exactly once per
// contour so no cycle can form prematurely. When the first and last
// profile of the contour share an orientation the split point fell
// mid-arc; both profiles are kept (their arena data is not merged)
// since the ring closure below already
// gives the sweeper and drop-out logic a correct, if not maximally
// compact, picture of the contour.
func (pb *ProfileBuilder) closeContour() {
	pb.endProfile()
	if pb.contourFirst >= 0 && pb.contourPrev >= 0 {
		pb.profiles[pb.contourPrev].nextInContour = pb.contourFirst
	}
	pb.contourFirst = -1
	pb.contourPrev = -1
	pb.hasLastPushed = false
}

// Finish closes the last contour, validates every profile has positive
// height, and builds the sorted, deduplicated y-turn list (§4.E). It
// fails with ErrInvalidOutline if the outline produced zero turns.
func (pb *ProfileBuilder) Finish() error {
	if pb.err != nil {
		return pb.err
	}
	pb.closeContour()

	seen := make(map[int32]bool, 2*len(pb.profiles))
	for i := range pb.profiles {
		p := &pb.profiles[i]
		if p.height <= 0 {
			return newRasterError(ErrNegativeHeight, "profile has non-positive height")
		}
		if err := pb.insertTurn(p.startY, seen); err != nil {
			return err
		}
		if err := pb.insertTurn(p.startY+p.height, seen); err != nil {
			return err
		}
	}
	if len(pb.yTurns) == 0 {
		return newRasterError(ErrInvalidOutline, "outline produced no y-turns")
	}
	sort.Slice(pb.yTurns, func(i, j int) bool { return pb.yTurns[i] < pb.yTurns[j] })
	return nil
}

func (pb *ProfileBuilder) insertTurn(y int32, seen map[int32]bool) error {
	if seen[y] {
		return nil
	}
	seen[y] = true
	if _, err := pb.pool.AllocBottom(yTurnEntrySize); err != nil {
		return err
	}
	pb.yTurns = append(pb.yTurns, y)
	return nil
}

func ceilDivFx(n, d fx) int32 {
	q := int32(n) / int32(d)
	r := int32(n) % int32(d)
	if r != 0 && (n < 0) == (d < 0) {
		q++
	}
	return q
}
