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

var PrecisionCases = []TestCase{
	{
		Name:    "subpixel_offset_00",
		Outline: offsetRectangle(20, 20, 24, 24, 0.0),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "subpixel_offset_25",
		Outline: offsetRectangle(20, 20, 24, 24, 0.25),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "subpixel_offset_50",
		Outline: offsetRectangle(20, 20, 24, 24, 0.5),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "subpixel_offset_75",
		Outline: offsetRectangle(20, 20, 24, 24, 0.75),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "large_coord_centered",
		Outline: largeOffsetRectangle(1000, 1000, 20),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "small_shape_large_offset",
		Outline: largeOffsetRectangle(10000, 10000, 2),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},
	{
		Name:    "float64_precision_digits",
		Outline: float64PrecisionShape(),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},
}

func offsetRectangle(x1, y1, w, h, offset float64) *raster.Outline {
	ox1 := x1 + offset
	oy1 := y1 + offset
	ox2 := x1 + w + offset
	oy2 := y1 + h + offset
	return rectangle(ox1, oy1, ox2, oy2)
}

// largeOffsetRectangle builds a small square logically centred at
// (cx, cy), translated back onto the canvas. The translation is done in
// float64 before conversion, so the rasterizer itself only sees a square
// centred at (32, 32).
func largeOffsetRectangle(cx, cy, size float64) *raster.Outline {
	translateX := 32 - cx
	translateY := 32 - cy
	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY
	return rectangle(x1, y1, x2, y2)
}

func float64PrecisionShape() *raster.Outline {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346
	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2
	return rectangle(x1, y1, x2, y2)
}
