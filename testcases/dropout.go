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

// DropOutCases exercises the B/W sweep's narrow-feature recovery rules:
// contours whose width stays under one pixel for a stretch of
// scanlines, at each of the supported drop-out modes, plus a thin
// closed ring representative of a serif's hairline stroke.
var DropOutCases = []TestCase{
	{
		Name:    "thin_diagonal_no_dropout",
		Outline: thinDiagonal(4, 4, 60, 60),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutNone,
	},
	{
		Name:    "thin_diagonal_stub_mode1",
		Outline: thinDiagonal(4, 4, 60, 60),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutStub1,
	},
	{
		Name:    "thin_diagonal_stub_mode2",
		Outline: thinDiagonal(4, 4, 60, 60),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutStub2,
	},
	{
		Name:    "thin_diagonal_stub_mode4",
		Outline: thinDiagonal(4, 4, 60, 60),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutStub4,
	},
	{
		Name:    "thin_diagonal_stub_mode5",
		Outline: thinDiagonal(4, 4, 60, 60),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutStub5,
	},
	{
		Name:    "hairline_ring",
		Outline: hairlineRing(32, 32, 28),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutStub2,
	},
	{
		Name:    "near_vertical_spike",
		Outline: nearVerticalSpike(32, 4, 60),
		Width:   64,
		Height:  64,
		Mode:    raster.ModeMono,
		DropOut: raster.DropOutStub2,
	},
}

// thinDiagonal builds a parallelogram less than one pixel wide running
// diagonally across the canvas: a single vertical or horizontal sweep
// alone drops scanlines where the stroke's local width rounds to zero.
func thinDiagonal(x1, y1, x2, y2 float64) *raster.Outline {
	const halfWidth = 0.3
	return newOutlineBuilder().
		MoveTo(x1-halfWidth, y1+halfWidth).
		LineTo(x2-halfWidth, y2+halfWidth).
		LineTo(x2+halfWidth, y2-halfWidth).
		LineTo(x1+halfWidth, y1-halfWidth).
		Build()
}

// hairlineRing is a circular ring whose stroke width is kept under one
// pixel by construction, the closed-contour analogue of thinDiagonal.
func hairlineRing(cx, cy, r float64) *raster.Outline {
	const half = 0.35
	outer := r + half
	inner := r - half
	ok := outer * kappa
	ik := inner * kappa

	b := newOutlineBuilder().
		MoveTo(cx+outer, cy).
		CubicTo(cx+outer, cy-ok, cx+ok, cy-outer, cx, cy-outer).
		CubicTo(cx-ok, cy-outer, cx-outer, cy-ok, cx-outer, cy).
		CubicTo(cx-outer, cy+ok, cx-ok, cy+outer, cx, cy+outer).
		CubicTo(cx+ok, cy+outer, cx+outer, cy+ok, cx+outer, cy)

	return b.
		MoveTo(cx+inner, cy).
		CubicTo(cx+inner, cy+ik, cx+ik, cy+inner, cx, cy+inner).
		CubicTo(cx-ik, cy+inner, cx-inner, cy+ik, cx-inner, cy).
		CubicTo(cx-inner, cy-ik, cx-ik, cy-inner, cx, cy-inner).
		CubicTo(cx+ik, cy-inner, cx+inner, cy-ik, cx+inner, cy).
		Build()
}

// nearVerticalSpike is a thin vertical rectangle half a pixel wide, the
// case a stem's hinted edge degenerates to when a ppem rounds its width
// to zero.
func nearVerticalSpike(x, y1, y2 float64) *raster.Outline {
	const halfWidth = 0.25
	return rectangle(x-halfWidth, y1, x+halfWidth, y2)
}
