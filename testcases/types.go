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

// Package testcases collects named outlines exercising the rasterizer's
// fill paths: winding rules, curve flattening, sub-pixel positioning,
// multi-contour outlines, and drop-out control. Each case names a
// canvas size and render mode, but leaves pool sizing and palette
// installation to the caller (mirrors a font renderer driving many
// glyphs against one shared driver).
package testcases

import (
	"math"

	"github.com/pixelcontour/raster"
	"golang.org/x/image/math/fixed"
)

// TestCase defines a single rendering exercise.
type TestCase struct {
	Name    string // lowercase a-z, 0-9 and _ only
	Outline *raster.Outline
	Width   int32
	Height  int32
	Mode    raster.RenderMode
	DropOut raster.DropOutMode
}

// fpt converts canvas-space float coordinates into the outline's native
// 26.6 fixed point.
func fpt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}

// outlineBuilder assembles an *raster.Outline one contour at a time,
// closing the previous contour automatically whenever MoveTo starts a
// new one, writing directly into the parallel points/tags/contour_ends
// arrays the walker consumes.
type outlineBuilder struct {
	o           *raster.Outline
	contourOpen bool
}

func newOutlineBuilder() *outlineBuilder {
	return &outlineBuilder{o: &raster.Outline{}}
}

func (b *outlineBuilder) endContour() {
	if b.contourOpen {
		b.o.ContourEnds = append(b.o.ContourEnds, len(b.o.Points)-1)
		b.contourOpen = false
	}
}

func (b *outlineBuilder) MoveTo(x, y float64) *outlineBuilder {
	b.endContour()
	b.o.Points = append(b.o.Points, fpt(x, y))
	b.o.Tags = append(b.o.Tags, raster.TagOnCurve)
	b.contourOpen = true
	return b
}

func (b *outlineBuilder) LineTo(x, y float64) *outlineBuilder {
	b.o.Points = append(b.o.Points, fpt(x, y))
	b.o.Tags = append(b.o.Tags, raster.TagOnCurve)
	return b
}

func (b *outlineBuilder) QuadTo(cx, cy, x, y float64) *outlineBuilder {
	b.o.Points = append(b.o.Points, fpt(cx, cy), fpt(x, y))
	b.o.Tags = append(b.o.Tags, raster.TagQuadratic, raster.TagOnCurve)
	return b
}

func (b *outlineBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *outlineBuilder {
	b.o.Points = append(b.o.Points, fpt(c1x, c1y), fpt(c2x, c2y), fpt(x, y))
	b.o.Tags = append(b.o.Tags, raster.TagCubic, raster.TagCubic, raster.TagOnCurve)
	return b
}

// Build finalises the outline, closing any still-open contour.
func (b *outlineBuilder) Build() *raster.Outline {
	b.endContour()
	return b.o
}
