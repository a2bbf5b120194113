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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestQuicksortCellsOrdersByYThenX(t *testing.T) {
	cells := []cellRecord{
		{y: 3, x: 1}, {y: 1, x: 9}, {y: 1, x: 2}, {y: 2, x: 5},
		{y: 0, x: 0}, {y: 3, x: 0}, {y: 2, x: 1}, {y: 1, x: 1},
	}
	want := append([]cellRecord(nil), cells...)
	sort.Slice(want, func(i, j int) bool { return cellLess(want[i], want[j]) })

	quicksortCells(cells)
	assert.Equal(t, want, cells)
}

func TestQuicksortCellsHandlesManyDuplicateKeys(t *testing.T) {
	cells := make([]cellRecord, 200)
	for i := range cells {
		cells[i] = cellRecord{y: int32(i % 3), x: int32(i % 5)}
	}
	quicksortCells(cells)
	for i := 1; i < len(cells); i++ {
		assert.False(t, cellLess(cells[i], cells[i-1]), "out of order at %d", i)
	}
}

func TestShellSortCellsMatchesQuicksortOrdering(t *testing.T) {
	base := []cellRecord{
		{y: 5, x: 4}, {y: 1, x: 9}, {y: 1, x: 2}, {y: 4, x: 5},
		{y: 0, x: 0}, {y: 3, x: 0}, {y: 2, x: 1}, {y: 1, x: 1},
		{y: 0, x: 7}, {y: 2, x: 3},
	}

	byQuick := append([]cellRecord(nil), base...)
	quicksortCells(byQuick)

	byShell := append([]cellRecord(nil), base...)
	shellSortCells(byShell)

	assert.Equal(t, byQuick, byShell)
}

func TestCellRasterSolidSquareIsFullyCovered(t *testing.T) {
	pool, err := NewRenderPool(1 << 16)
	require.NoError(t, err)
	cr := NewCellRaster(pool, PrecisionLow, 16, 16, 0, 16)

	require.NoError(t, WalkOutline(squareOutline(), cr))
	require.NoError(t, cr.Finish())

	grid := make([][]byte, 16)
	for i := range grid {
		grid[i] = make([]byte, 16)
	}
	require.NoError(t, cr.Sweep(func(y, x1, x2 int32, coverage byte) {
		for x := x1; x < x2; x++ {
			grid[y][x] = coverage
		}
	}))

	for y := int32(0); y < 16; y++ {
		for x := int32(0); x < 16; x++ {
			assert.EqualValues(t, 255, grid[y][x], "pixel (%d,%d)", x, y)
		}
	}
}

func TestCellRasterShellSortProducesSameCoverageAsQuicksort(t *testing.T) {
	run := func(shell bool) [16][16]byte {
		pool, err := NewRenderPool(1 << 16)
		require.NoError(t, err)
		cr := NewCellRaster(pool, PrecisionLow, 16, 16, 0, 16)
		cr.SetShellSort(shell)
		require.NoError(t, WalkOutline(squareOutline(), cr))
		require.NoError(t, cr.Finish())

		var grid [16][16]byte
		require.NoError(t, cr.Sweep(func(y, x1, x2 int32, coverage byte) {
			for x := x1; x < x2; x++ {
				grid[y][x] = coverage
			}
		}))
		return grid
	}

	assert.Equal(t, run(false), run(true))
}

func TestAlphaToCoverageClampsToByteRange(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	cr := NewCellRaster(pool, PrecisionLow, 16, 16, 0, 16)

	one := int32(cr.precision.One())
	assert.EqualValues(t, 0, cr.alphaToCoverage(0, 0))
	assert.EqualValues(t, 255, cr.alphaToCoverage(one, 2*one*one))
	// a fully negative area should produce the same magnitude as its
	// positive counterpart (coverage is unsigned).
	assert.Equal(t, cr.alphaToCoverage(0, one*one), cr.alphaToCoverage(0, -one*one))
}

func TestCellRasterSlantedTrianglePartiallyCovers(t *testing.T) {
	pool, err := NewRenderPool(1 << 16)
	require.NoError(t, err)
	cr := NewCellRaster(pool, PrecisionLow, 16, 16, 0, 16)

	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(8, 16), pt(16, 0)},
		Tags:        []Tag{TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{2},
	}
	require.NoError(t, WalkOutline(o, cr))
	require.NoError(t, cr.Finish())

	var sawPartial bool
	require.NoError(t, cr.Sweep(func(y, x1, x2 int32, coverage byte) {
		if coverage > 0 && coverage < 255 {
			sawPartial = true
		}
	}))
	assert.True(t, sawPartial, "a slanted triangle edge should produce partial coverage somewhere")
}
