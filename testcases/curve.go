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

// kappa approximates a quarter circle with a single cubic Bezier arc.
const kappa = 0.5522847498307936

var CurveCases = []TestCase{
	{
		Name:    "quadratic",
		Outline: quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic",
		Outline: cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "circle",
		Outline: circle(32, 32, 25),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "quadratic_shallow",
		Outline: quadraticCurve(10, 32, 32, 28, 54, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "quadratic_deep",
		Outline: quadraticCurve(10, 50, 32, 5, 54, 50),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "quadratic_below_chord",
		Outline: quadraticCurve(10, 20, 32, 55, 54, 20),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic_shallow",
		Outline: cubicCurve(10, 32, 22, 28, 42, 28, 54, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic_scurve",
		Outline: cubicCurve(10, 50, 10, 10, 54, 54, 54, 14),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic_loop_self_intersecting",
		Outline: cubicCurve(10, 32, 60, 5, 4, 59, 54, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic_cusp",
		Outline: cubicCurve(10, 50, 54, 10, 10, 10, 54, 50),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic_nearly_straight",
		Outline: cubicCurve(10, 32, 24, 31, 40, 31, 54, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},
	{
		Name:    "circle_small",
		Outline: circle(32, 32, 5),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "circle_large",
		Outline: circle(64, 64, 100),
		Width:   128,
		Height:  128,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "ellipse",
		Outline: ellipse(32, 32, 28, 14),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeGray,
	},
	{
		Name:    "curve_many_segments",
		Outline: cubicCurve(5, 60, 5, 5, 123, 5, 123, 60),
		Width:   128,
		Height:  64,
		Mode:    raster.ModeMono,
	},
	{
		Name:    "cubic_degenerate_all_coincident",
		Outline: cubicCurve(32, 32, 32, 32, 32, 32, 32, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},
	{
		Name:    "quadratic_degenerate_control_on_start",
		Outline: quadraticCurve(10, 32, 10, 32, 54, 32),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeDirect,
	},
}

func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *raster.Outline {
	return newOutlineBuilder().
		MoveTo(x1, y1).
		QuadTo(cx, cy, x2, y2).
		Build()
}

func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *raster.Outline {
	return newOutlineBuilder().
		MoveTo(x1, y1).
		CubicTo(c1x, c1y, c2x, c2y, x2, y2).
		Build()
}

func circle(cx, cy, r float64) *raster.Outline {
	k := r * kappa
	return newOutlineBuilder().
		MoveTo(cx+r, cy).
		CubicTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r).
		CubicTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy).
		CubicTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r).
		CubicTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy).
		Build()
}

func ellipse(cx, cy, rx, ry float64) *raster.Outline {
	kx := rx * kappa
	ky := ry * kappa
	return newOutlineBuilder().
		MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry).
		CubicTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy).
		CubicTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry).
		CubicTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy).
		Build()
}
