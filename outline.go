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

// Tag classifies one point of an Outline. The two low bits of the wire
// encoding (§6) are: 00=Quadratic, 01=OnCurve, 10=Cubic.
type Tag uint8

const (
	TagQuadratic Tag = iota
	TagOnCurve
	TagCubic
)

// OutlineFlags are per-outline rendering hints (§6).
type OutlineFlags uint16

const (
	// FlagReverseFill inverts the ascending/descending classification
	// of every arc before profile construction.
	FlagReverseFill OutlineFlags = 1 << 0

	// FlagHighPrecision selects 22.10 work precision instead of 26.6.
	FlagHighPrecision OutlineFlags = 1 << 8

	// FlagSinglePass disables the horizontal (x-sweep) second pass.
	FlagSinglePass OutlineFlags = 1 << 9
)

// Outline is the vector glyph description consumed by the rasterizer
// (§3). Points and Tags are parallel arrays; ContourEnds holds the
// index of the final point of each contour, so contour i spans
// points[ContourEnds[i-1]+1 : ContourEnds[i]+1] (ContourEnds[-1] == -1).
//
// Shift and Delta simulate a hinting phase upstream of this package:
// a caller that wants to apply them does so as x' = (x<<Shift) - Delta
// before points are handed to the walker; this package does not apply
// them itself; the fields are carried here only so a caller can tell
// whether a given Outline has had them applied.
type Outline struct {
	Points      []fixed.Point26_6
	Tags        []Tag
	ContourEnds []int
	Flags       OutlineFlags

	Shift int
	Delta fixed.Int26_6
}

// NContours returns the number of contours in the outline.
func (o *Outline) NContours() int { return len(o.ContourEnds) }

// HighPrecision reports whether the outline requests 22.10 work
// precision.
func (o *Outline) HighPrecision() bool { return o.Flags&FlagHighPrecision != 0 }

// Sink receives decomposition events from WalkOutline, in contour
// order (§4.B). Coordinates are in the outline's native 26.6.
type Sink interface {
	MoveTo(p fixed.Point26_6)
	LineTo(p fixed.Point26_6)
	ConicTo(c, p fixed.Point26_6)
	CubicTo(c1, c2, p fixed.Point26_6)
}

func midpoint(a, b fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// WalkOutline decomposes every contour of o into Sink events. It fails
// with ErrInvalidOutline if a contour starts with a cubic control
// point, if a cubic control is not followed by another cubic control
// (or the points/contour_ends bookkeeping is inconsistent), or if
// contour_ends disagrees with len(points).
func WalkOutline(o *Outline, sink Sink) error {
	if len(o.Points) == 0 || len(o.ContourEnds) == 0 {
		return newRasterError(ErrInvalidOutline, "outline has no contours")
	}
	if o.ContourEnds[len(o.ContourEnds)-1] != len(o.Points)-1 {
		return newRasterError(ErrInvalidOutline, "contour_ends disagrees with points length")
	}

	start := 0
	for _, end := range o.ContourEnds {
		if end < start {
			return newRasterError(ErrInvalidOutline, "contour_ends is not increasing")
		}
		if err := walkContour(o, start, end, sink); err != nil {
			return err
		}
		start = end + 1
	}
	return nil
}

func walkContour(o *Outline, start, end int, sink Sink) error {
	n := end - start + 1
	if n < 2 {
		return newRasterError(ErrInvalidOutline, "contour has fewer than two points")
	}

	pt := func(i int) fixed.Point26_6 { return o.Points[start+(i%n+n)%n] }
	tag := func(i int) Tag { return o.Tags[start+(i%n+n)%n] }

	if tag(0) == TagCubic {
		return newRasterError(ErrInvalidOutline, "contour begins with a cubic control point")
	}

	// Determine the effective start point and first index to process,
	// per the tag handling rules in §4.B.
	var startPoint fixed.Point26_6
	var first int
	switch {
	case tag(0) == TagOnCurve:
		startPoint = pt(0)
		first = 1
	case tag(0) == TagQuadratic && tag(n-1) == TagOnCurve:
		startPoint = pt(n - 1)
		first = 0
		n-- // last point consumed as the start; iterate 0..n-1 exclusive of old last
	case tag(0) == TagQuadratic && tag(n-1) == TagQuadratic:
		startPoint = midpoint(pt(0), pt(n-1))
		first = 0
	default:
		return newRasterError(ErrInvalidOutline, "invalid contour start")
	}

	sink.MoveTo(startPoint)

	current := startPoint
	i := first
	processed := 0
	// processed bounds the loop to the number of points actually
	// belonging to this contour pass, guarding against malformed tag
	// sequences that would otherwise spin forever.
	limit := n + 1
	for processed < limit {
		t := tag(i)
		switch t {
		case TagOnCurve:
			p := pt(i)
			sink.LineTo(p)
			current = p
			i++

		case TagQuadratic:
			c := pt(i)
			var next fixed.Point26_6
			nt := tag(i + 1)
			if nt == TagQuadratic {
				next = midpoint(c, pt(i+1))
				sink.ConicTo(c, next)
				current = next
				i++
			} else if nt == TagOnCurve {
				next = pt(i + 1)
				sink.ConicTo(c, next)
				current = next
				i += 2
			} else {
				return newRasterError(ErrInvalidOutline, "quadratic control not followed by control or on-curve")
			}

		case TagCubic:
			c1 := pt(i)
			if tag(i+1) != TagCubic {
				return newRasterError(ErrInvalidOutline, "cubic control not followed by a second cubic control")
			}
			c2 := pt(i + 1)
			var next fixed.Point26_6
			if tag(i+2) == TagOnCurve {
				next = pt(i + 2)
				i += 3
			} else {
				// Contour closes directly on a cubic pair.
				next = startPoint
				i += 2
			}
			sink.CubicTo(c1, c2, next)
			current = next

		default:
			return newRasterError(ErrInvalidOutline, "unreachable tag")
		}

		if i >= n {
			break
		}
		processed++
	}

	if current != startPoint {
		sink.LineTo(startPoint)
	}
	return nil
}
