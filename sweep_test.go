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

func TestSweeperFillsSquareExactly(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	pb := NewProfileBuilder(pool, PrecisionLow, false, 0, 16)
	require.NoError(t, WalkOutline(squareOutline(), pb))
	require.NoError(t, pb.Finish())

	grid := make([][]bool, 16)
	for i := range grid {
		grid[i] = make([]bool, 16)
	}
	sw := NewSweeper(PrecisionLow, DropOutNone, 16)
	err = sw.Run(pb, func(y, x1, x2 int32) {
		for x := x1; x < x2; x++ {
			grid[y][x] = true
		}
	}, nil)
	require.NoError(t, err)

	for y := int32(0); y < 16; y++ {
		for x := int32(0); x < 16; x++ {
			assert.True(t, grid[y][x], "pixel (%d,%d) should be filled", x, y)
		}
	}
}

// circleOutline approximates a circle of the given radius centred at
// (cx, cy) with four cubic arcs, using the standard kappa control
// offset for a 90-degree arc.
func circleOutline(cx, cy, r fixed.Int26_6) *Outline {
	k := fixed.Int26_6(float64(r) * 0.5523)
	pts := []fixed.Point26_6{
		{X: cx + r, Y: cy},
		{X: cx + r, Y: cy + k}, {X: cx + k, Y: cy + r}, {X: cx, Y: cy + r},
		{X: cx - k, Y: cy + r}, {X: cx - r, Y: cy + k}, {X: cx - r, Y: cy},
		{X: cx - r, Y: cy - k}, {X: cx - k, Y: cy - r}, {X: cx, Y: cy - r},
		{X: cx + k, Y: cy - r}, {X: cx + r, Y: cy - k},
	}
	tags := make([]Tag, len(pts))
	for i := range tags {
		if i%3 == 0 {
			tags[i] = TagOnCurve
		} else {
			tags[i] = TagCubic
		}
	}
	return &Outline{
		Points:      pts,
		Tags:        tags,
		ContourEnds: []int{len(pts) - 1},
	}
}

func TestSweeperDropOutProducesClosedRing(t *testing.T) {
	// radius 32, centre (32,32), rendered at a 64x64 grid (ppem-equivalent
	// here is unscaled 26.6 pixel units); every interior scanline, rows 2
	// to 61, must have at least two transitions.
	o := circleOutline(32<<6, 32<<6, 32<<6)

	pool, err := NewRenderPool(1 << 16)
	require.NoError(t, err)
	pb := NewProfileBuilder(pool, PrecisionLow, false, 0, 64)
	require.NoError(t, WalkOutline(o, pb))
	require.NoError(t, pb.Finish())

	grid := make([][]bool, 64)
	for i := range grid {
		grid[i] = make([]bool, 64)
	}
	sw := NewSweeper(PrecisionLow, DropOutStub2, 64)
	err = sw.Run(pb, func(y, x1, x2 int32) {
		for x := x1; x < x2; x++ {
			grid[y][x] = true
		}
	}, func(x, y int32) {
		grid[y][x] = true
	})
	require.NoError(t, err)

	for y := int32(2); y < 62; y++ {
		transitions := 0
		prev := false
		for x := int32(0); x < 64; x++ {
			if grid[y][x] != prev {
				transitions++
				prev = grid[y][x]
			}
		}
		assert.GreaterOrEqual(t, transitions, 2, "row %d should have at least 2 transitions", y)
	}
}
