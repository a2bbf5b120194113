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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestRasterDriverMonoSolidSquareFillsBitmap(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)

	target := &Bitmap{Width: 16, Rows: 16, Pitch: 2, Buffer: make([]byte, 2*16)}
	err = d.Render(RenderParams{
		Outline: squareOutline(),
		Target:  target,
		Mode:    ModeMono,
		DropOut: DropOutStub2,
	})
	require.NoError(t, err)

	for _, b := range target.Buffer {
		assert.EqualValues(t, 0xFF, b)
	}
}

func TestRasterDriverRejectsMissingPool(t *testing.T) {
	d := &RasterDriver{}
	err := d.Render(RenderParams{Outline: squareOutline(), Target: &Bitmap{Width: 1, Rows: 1, Pitch: 1, Buffer: make([]byte, 1)}})
	require.Error(t, err)
	assert.Equal(t, ErrUninitialisedObject, CodeOf(err))
}

func TestRasterDriverRejectsEmptyOutline(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)
	err = d.Render(RenderParams{Outline: &Outline{}, Target: &Bitmap{Width: 1, Rows: 1, Pitch: 1, Buffer: make([]byte, 1)}})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}

func TestRasterDriverSkipsOutlineEntirelyOffBitmap(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)

	o := &Outline{
		Points:      []fixed.Point26_6{pt(100, 100), pt(116, 100), pt(116, 116), pt(100, 116)},
		Tags:        []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{3},
	}
	target := &Bitmap{Width: 16, Rows: 16, Pitch: 2, Buffer: make([]byte, 2*16)}
	err = d.Render(RenderParams{Outline: o, Target: target, Mode: ModeMono})
	require.NoError(t, err)
	for _, b := range target.Buffer {
		assert.EqualValues(t, 0, b)
	}
}

func TestRasterDriverGrayRequiresPalette(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)
	target := &Bitmap{Width: 16, Rows: 16, Pitch: 16, Buffer: make([]byte, 16*16)}
	err = d.Render(RenderParams{Outline: squareOutline(), Target: target, Mode: ModeGray})
	require.Error(t, err)
	assert.Equal(t, ErrUninitialisedObject, CodeOf(err))
}

func TestRasterDriverGrayRejectsTwoEntryPalette(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)
	require.NoError(t, d.SetPalette([]byte{0, 255}))
	target := &Bitmap{Width: 16, Rows: 16, Pitch: 16, Buffer: make([]byte, 16*16)}
	err = d.Render(RenderParams{Outline: squareOutline(), Target: target, Mode: ModeGray})
	require.Error(t, err)
	assert.Equal(t, ErrAntiAliasUnsupported, CodeOf(err))
}

func TestRasterDriverSetPaletteRejectsBadLength(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)
	err = d.SetPalette([]byte{1, 2, 3})
	require.Error(t, err)
	assert.Equal(t, ErrBadPaletteCount, CodeOf(err))
}

func TestRasterDriverGraySolidSquareIsFullyOpaque(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)
	require.NoError(t, d.SetPalette([]byte{0, 64, 128, 192, 255}))

	target := &Bitmap{Width: 16, Rows: 16, Pitch: 16, Buffer: make([]byte, 16*16)}
	err = d.Render(RenderParams{Outline: squareOutline(), Target: target, Mode: ModeGray})
	require.NoError(t, err)
	for _, b := range target.Buffer {
		assert.EqualValues(t, 255, b)
	}
}

func TestRasterDriverDirectSolidSquareIsFullyOpaque(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)

	target := &Bitmap{Width: 16, Rows: 16, Pitch: 16, Buffer: make([]byte, 16*16)}
	err = d.Render(RenderParams{Outline: squareOutline(), Target: target, Mode: ModeDirect})
	require.NoError(t, err)
	for _, b := range target.Buffer {
		assert.EqualValues(t, 255, b)
	}
}

// TestRasterDriverSubBandsOnPoolOverflow renders a tall, full-bitmap
// rectangle through a minimum-size pool too small to hold the whole
// outline's profile arena in one pass, confirming the driver recovers
// by halving the render range rather than failing outright.
//
// At 16x320 the rectangle's two vertical edges push one x-entry per
// row each; every AllocTop call rounds up to an 8-byte multiple
// (pool.go), so the full-range profile arena costs 64 + 2*320*8 =
// 5184 bytes, over the 4096-byte pool. Halving the range to 160 rows
// per band costs 64 + 2*160*8 = 2624 bytes, which fits, so the first
// bandRange call must fail and its two halves must each succeed.
func TestRasterDriverSubBandsOnPoolOverflow(t *testing.T) {
	const width, height = 16, 320
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	d := NewRasterDriver(pool)

	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(width, 0), pt(width, height), pt(0, height)},
		Tags:        []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{3},
	}
	target := &Bitmap{Width: width, Rows: height, Pitch: 2, Buffer: make([]byte, 2*height)}
	err = d.Render(RenderParams{Outline: o, Target: target, Mode: ModeMono, DropOut: DropOutStub2})
	require.NoError(t, err)

	for _, b := range target.Buffer {
		assert.EqualValues(t, 0xFF, b)
	}
}
