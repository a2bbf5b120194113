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
	"math"

	"golang.org/x/image/math/fixed"
)

// fx is the work-precision fixed-point type used throughout the scan
// converter. A render call works in either 26.6 (low precision, the
// default) or 22.10 (high precision, selected by the outline's
// high_precision flag or by the caller for small ppem); both fit in an
// int32 for a single coordinate.
type fx int32

// point is a work-precision coordinate pair. Distinct from the public
// fixed.Point26_6 the outline is described in: the outline is always
// 26.6, the internal arithmetic may be 22.10.
type point struct {
	X, Y fx
}

// Precision selects the fixed-point format used internally by a render
// call: how many fractional bits a work-precision coordinate carries,
// and the conversion to/from the outline's fixed.Point26_6 input.
type Precision struct {
	bits uint // fractional bits: 6 (low) or 10 (high)
}

var (
	// PrecisionLow is 26.6, the default work precision.
	PrecisionLow = Precision{bits: 6}

	// PrecisionHigh is 22.10, used for high_precision outlines or small ppem.
	PrecisionHigh = Precision{bits: 10}
)

// One returns the fixed-point representation of 1.0 in this precision.
func (p Precision) One() fx { return fx(1) << p.bits }

// PrecisionStep is the default flattening threshold (§4.C): the vertical
// span, in work-precision units, below which an arc is approximated by
// a single line segment rather than split further.
func (p Precision) PrecisionStep() fx {
	if p.bits == PrecisionHigh.bits {
		return 128
	}
	return 32
}

// Upscale converts a 26.6 outline coordinate to a work-precision value.
func (p Precision) Upscale(v fixed.Int26_6) fx {
	if p.bits == 6 {
		return fx(v)
	}
	// 26.6 -> 22.10: shift left by (bits-6).
	return fx(int32(v)) << (p.bits - 6)
}

// Downscale converts a work-precision value back to 26.6.
func (p Precision) Downscale(v fx) fixed.Int26_6 {
	if p.bits == 6 {
		return fixed.Int26_6(v)
	}
	shift := p.bits - 6
	half := fx(1) << (shift - 1)
	return fixed.Int26_6((v + half) >> shift)
}

// Floor rounds v down to a whole pixel, in work-precision units.
func (p Precision) Floor(v fx) fx { return v &^ (p.One() - 1) }

// Ceiling rounds v up to a whole pixel, in work-precision units.
func (p Precision) Ceiling(v fx) fx { return (v + p.One() - 1) &^ (p.One() - 1) }

// Round rounds v to the nearest whole pixel; halves round toward +inf.
func (p Precision) Round(v fx) fx { return (v + p.One()/2) &^ (p.One() - 1) }

// Frac returns the fractional part of v, in work-precision units.
func (p Precision) Frac(v fx) fx { return v & (p.One() - 1) }

// Trunc returns the integer pixel coordinate of v. The arithmetic shift
// rounds toward -inf for negative values too, which matches the scan
// converter's pixel addressing.
func (p Precision) Trunc(v fx) int32 { return int32(v >> p.bits) }

// MulDiv computes floor(a*b/c) using a 64-bit intermediate product so it
// never overflows for 32-bit inputs. Division by zero saturates to
// math.MaxInt32 (matching the source's "never crash the rasterizer on
// a malformed outline" stance); the sign of a*b is preserved.
func MulDiv(a, b, c int32) int32 {
	if c == 0 {
		if (a < 0) != (b < 0) {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	s := int64(a) * int64(b)
	q := s / int64(c)
	if s%int64(c) != 0 && (s < 0) != (c < 0) {
		q--
	}
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	if q < math.MinInt32 {
		return math.MinInt32
	}
	return int32(q)
}

// MulFix computes floor(a*b/65536), the standard 16.16 fixed-point
// multiply. The fast path (|a| < 2048 and |b| < 2^20, so the product
// fits in int32) avoids the 64-bit product; everything else falls back
// to it.
func MulFix(a, b int32) int32 {
	if a > -2048 && a < 2048 && b > -1<<20 && b < 1<<20 {
		return (a * b) >> 16
	}
	return int32((int64(a) * int64(b)) >> 16)
}

// DivFix computes floor(a*65536/b). Uses a 64-bit intermediate whenever
// a<<16 would not fit in int32.
func DivFix(a, b int32) int32 {
	if b == 0 {
		if a < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	shifted := a << 16
	if int32(shifted>>16) == a {
		q := shifted / b
		if shifted%b != 0 && (shifted < 0) != (b < 0) {
			q--
		}
		return q
	}
	s := int64(a) << 16
	q := s / int64(b)
	if s%int64(b) != 0 && (s < 0) != (b < 0) {
		q--
	}
	return int32(q)
}
