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

var SubpathCases = []TestCase{
	{
		Name:    "two_disjoint_triangles",
		Outline: twoTriangles(16, 32, 48, 32, 12),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "overlapping_rectangles",
		Outline: overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "ring_outer_inner_same_winding",
		Outline: ringShape(32, 32, 25, 12),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "multiple_rings",
		Outline: multipleRings(64, 64),
		Width:   128,
		Height:  128,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "many_small_shapes_grid",
		Outline: manySmallShapes(8, 8),
		Width:   128,
		Height:  128,
		Mode:    raster.ModeMono,
	},
}

func twoTriangles(cx1, cy1, cx2, cy2, size float64) *raster.Outline {
	b := newOutlineBuilder().
		MoveTo(cx1, cy1-size).
		LineTo(cx1+size, cy1+size).
		LineTo(cx1-size, cy1+size)
	return b.
		MoveTo(cx2, cy2-size).
		LineTo(cx2+size, cy2+size).
		LineTo(cx2-size, cy2+size).
		Build()
}

func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *raster.Outline {
	b := newOutlineBuilder().
		MoveTo(x1a, y1a).
		LineTo(x2a, y1a).
		LineTo(x2a, y2a).
		LineTo(x1a, y2a)
	return b.
		MoveTo(x1b, y1b).
		LineTo(x2b, y1b).
		LineTo(x2b, y2b).
		LineTo(x1b, y2b).
		Build()
}

func ringShape(cx, cy, outerSize, innerSize float64) *raster.Outline {
	b := newOutlineBuilder().
		MoveTo(cx-outerSize, cy-outerSize).
		LineTo(cx+outerSize, cy-outerSize).
		LineTo(cx+outerSize, cy+outerSize).
		LineTo(cx-outerSize, cy+outerSize)
	return b.
		MoveTo(cx-innerSize, cy-innerSize).
		LineTo(cx+innerSize, cy-innerSize).
		LineTo(cx+innerSize, cy+innerSize).
		LineTo(cx-innerSize, cy+innerSize).
		Build()
}

func multipleRings(cx, cy float64) *raster.Outline {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	b := newOutlineBuilder()
	for _, r := range rings {
		b = b.
			MoveTo(r.cx-r.outer, r.cy-r.outer).
			LineTo(r.cx+r.outer, r.cy-r.outer).
			LineTo(r.cx+r.outer, r.cy+r.outer).
			LineTo(r.cx-r.outer, r.cy+r.outer).
			MoveTo(r.cx-r.inner, r.cy-r.inner).
			LineTo(r.cx+r.inner, r.cy-r.inner).
			LineTo(r.cx+r.inner, r.cy+r.inner).
			LineTo(r.cx-r.inner, r.cy+r.inner)
	}
	return b.Build()
}

func manySmallShapes(rows, cols int) *raster.Outline {
	const size, spacing = 5.0, 14.0
	b := newOutlineBuilder()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			b = b.
				MoveTo(cx, cy-size).
				LineTo(cx+size, cy+size).
				LineTo(cx-size, cy+size)
		}
	}
	return b.Build()
}
