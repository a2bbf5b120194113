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

package testcases

import "github.com/pixelcontour/raster"

var ComplexCases = []TestCase{
	{
		Name:    "mixed_lines_curves",
		Outline: mixedLinesCurves(),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "glyph_like_bowl_with_counter",
		Outline: glyphLikeShape(),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
}

// mixedLinesCurves combines straight segments, a quadratic arc, and a
// cubic arc in one contour; the cubic ends on the start point, so the
// contour closes without an extra line.
func mixedLinesCurves() *raster.Outline {
	return newOutlineBuilder().
		MoveTo(10, 50).
		LineTo(20, 30).
		QuadTo(32, 10, 44, 30).
		LineTo(54, 50).
		CubicTo(48, 60, 16, 60, 10, 50).
		Build()
}

// glyphLikeShape resembles a simplified lowercase letterform: an outer
// bowl with an inner counter wound the opposite way to punch a hole.
func glyphLikeShape() *raster.Outline {
	cx, cy, r := 32.0, 38.0, 18.0
	k := r * kappa

	b := newOutlineBuilder().
		MoveTo(cx+r, cy).
		CubicTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r).
		CubicTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy).
		CubicTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r).
		CubicTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy).
		LineTo(cx+r, 10).
		LineTo(cx+r-6, 10).
		LineTo(cx+r-6, cy)

	ir := 8.0
	ik := ir * kappa
	return b.
		LineTo(cx+ir, cy).
		CubicTo(cx+ir, cy+ik, cx+ik, cy+ir, cx, cy+ir).
		CubicTo(cx-ik, cy+ir, cx-ir, cy+ik, cx-ir, cy).
		CubicTo(cx-ir, cy-ik, cx-ik, cy-ir, cx, cy-ir).
		CubicTo(cx+ik, cy-ir, cx+ir, cy-ik, cx+ir, cy).
		Build()
}
