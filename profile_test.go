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

func squareOutline() *Outline {
	return &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(16, 0), pt(16, 16), pt(0, 16)},
		Tags:        []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{3},
	}
}

func TestProfileBuilderSquareProducesTwoVerticalProfiles(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	pb := NewProfileBuilder(pool, PrecisionLow, false, 0, 16)

	require.NoError(t, WalkOutline(squareOutline(), pb))
	require.NoError(t, pb.Finish())

	profiles := pb.Profiles()
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.EqualValues(t, 16, p.height)
		assert.EqualValues(t, 0, p.startY)
	}
	assert.NotEqual(t, profiles[0].orientation, profiles[1].orientation)
	assert.Equal(t, []int32{0, 16}, pb.YTurns())
}

func TestProfileBuilderRejectsFlatOutline(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	// Every edge is horizontal: no profile is ever opened, so Finish
	// must reject the outline for producing zero y-turns.
	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 4), pt(4, 4), pt(8, 4), pt(12, 4)},
		Tags:        []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{3},
	}
	pb := NewProfileBuilder(pool, PrecisionLow, false, 0, 16)
	require.NoError(t, WalkOutline(o, pb))
	err = pb.Finish()
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}

func TestProfileBuilderReverseFillFlipsOrientation(t *testing.T) {
	pool, err := NewRenderPool(4096)
	require.NoError(t, err)
	pbNormal := NewProfileBuilder(pool, PrecisionLow, false, 0, 16)
	require.NoError(t, WalkOutline(squareOutline(), pbNormal))
	require.NoError(t, pbNormal.Finish())
	normalOrientations := []profileOrientation{pbNormal.Profiles()[0].orientation, pbNormal.Profiles()[1].orientation}

	pool2, err := NewRenderPool(4096)
	require.NoError(t, err)
	pbRev := NewProfileBuilder(pool2, PrecisionLow, true, 0, 16)
	require.NoError(t, WalkOutline(squareOutline(), pbRev))
	require.NoError(t, pbRev.Finish())
	revOrientations := []profileOrientation{pbRev.Profiles()[0].orientation, pbRev.Profiles()[1].orientation}

	assert.NotEqual(t, normalOrientations, revOrientations)
}
