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

import (
	"math"

	"github.com/pixelcontour/raster"
)

var FillCases = []TestCase{
	{
		Name:    "triangle",
		Outline: triangle(10, 50, 32, 10, 54, 50),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "star",
		Outline: fivePointStar(32, 32, 25),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "rectangle",
		Outline: rectangle(10, 10, 44, 44),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "concentric_rect_hole",
		Outline: concentricRectangles(32, 32, 25, 12),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "figure_eight_self_crossing",
		Outline: figureEight(32, 32, 20, 10),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "high_winding_stack",
		Outline: highWindingRect(32, 32, 20, 3),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},

	// Edge cases.
	{
		Name:    "horizontal_edges",
		Outline: rectangle(10, 20, 54, 44),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "vertical_edges",
		Outline: rectangle(28, 5, 36, 59),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "diagonal_45deg",
		Outline: diamond(32, 32, 20),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "single_pixel",
		Outline: triangle(30, 32, 32, 30, 34, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},
	{
		Name:    "subpixel_shape",
		Outline: triangle(31.2, 31.8, 31.5, 31.2, 31.8, 31.8),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},

	// Boundary conditions.
	{
		Name:    "touching_canvas_edge",
		Outline: rectangle(0, 10, 54, 54),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "partially_clipped",
		Outline: rectangle(-10, 20, 40, 74),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "fully_outside",
		Outline: rectangle(70, 70, 100, 100),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "pixel_aligned",
		Outline: rectangle(10, 10, 50, 50),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "half_pixel_offset",
		Outline: rectangle(10.5, 10.5, 50.5, 50.5),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "mixed_close",
		Outline: mixedClose(),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *raster.Outline {
	return newOutlineBuilder().
		MoveTo(x1, y1).
		LineTo(x2, y2).
		LineTo(x3, y3).
		Build()
}

func fivePointStar(cx, cy, r float64) *raster.Outline {
	var pts [5]struct{ x, y float64 }
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i].x = cx + r*math.Cos(angle)
		pts[i].y = cy + r*math.Sin(angle)
	}
	order := [5]int{0, 2, 4, 1, 3}
	b := newOutlineBuilder().MoveTo(pts[order[0]].x, pts[order[0]].y)
	for _, i := range order[1:] {
		b = b.LineTo(pts[i].x, pts[i].y)
	}
	return b.Build()
}

func rectangle(x1, y1, x2, y2 float64) *raster.Outline {
	return newOutlineBuilder().
		MoveTo(x1, y1).
		LineTo(x2, y1).
		LineTo(x2, y2).
		LineTo(x1, y2).
		Build()
}

// concentricRectangles nests an inner hole inside an outer square by
// winding the inner contour opposite to the outer one.
func concentricRectangles(cx, cy, outerSize, innerSize float64) *raster.Outline {
	b := newOutlineBuilder().
		MoveTo(cx-outerSize, cy-outerSize).
		LineTo(cx+outerSize, cy-outerSize).
		LineTo(cx+outerSize, cy+outerSize).
		LineTo(cx-outerSize, cy+outerSize)

	return b.
		MoveTo(cx-innerSize, cy-innerSize).
		LineTo(cx-innerSize, cy+innerSize).
		LineTo(cx+innerSize, cy+innerSize).
		LineTo(cx+innerSize, cy-innerSize).
		Build()
}

func figureEight(cx, cy, width, height float64) *raster.Outline {
	return newOutlineBuilder().
		MoveTo(cx-width, cy-height).
		LineTo(cx+width, cy+height).
		LineTo(cx+width, cy-height).
		LineTo(cx-width, cy+height).
		Build()
}

func highWindingRect(cx, cy, size float64, windings int) *raster.Outline {
	b := newOutlineBuilder()
	for i := 0; i < windings; i++ {
		b = b.
			MoveTo(cx-size, cy-size).
			LineTo(cx+size, cy-size).
			LineTo(cx+size, cy+size).
			LineTo(cx-size, cy+size)
	}
	return b.Build()
}

func diamond(cx, cy, size float64) *raster.Outline {
	return newOutlineBuilder().
		MoveTo(cx, cy-size).
		LineTo(cx+size, cy).
		LineTo(cx, cy+size).
		LineTo(cx-size, cy).
		Build()
}

// mixedClose builds two rectangles: the first relies on the walker's
// implicit closing line, the second is already closed explicitly.
func mixedClose() *raster.Outline {
	return newOutlineBuilder().
		MoveTo(2, 2).
		LineTo(30, 2).
		LineTo(30, 30).
		LineTo(2, 30).
		MoveTo(34, 34).
		LineTo(62, 34).
		LineTo(62, 62).
		LineTo(34, 62).
		LineTo(34, 34).
		Build()
}
