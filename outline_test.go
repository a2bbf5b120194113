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

type recordingSink struct {
	events []string
}

func (s *recordingSink) MoveTo(p fixed.Point26_6) {
	s.events = append(s.events, "M")
}
func (s *recordingSink) LineTo(p fixed.Point26_6) {
	s.events = append(s.events, "L")
}
func (s *recordingSink) ConicTo(c, p fixed.Point26_6) {
	s.events = append(s.events, "Q")
}
func (s *recordingSink) CubicTo(c1, c2, p fixed.Point26_6) {
	s.events = append(s.events, "C")
}

func pt(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x << 6), Y: fixed.Int26_6(y << 6)}
}

func TestWalkOutlineSquare(t *testing.T) {
	o := &Outline{
		Points: []fixed.Point26_6{pt(0, 0), pt(16, 0), pt(16, 16), pt(0, 16)},
		Tags:   []Tag{TagOnCurve, TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{3},
	}
	var s recordingSink
	require.NoError(t, WalkOutline(o, &s))
	assert.Equal(t, []string{"M", "L", "L", "L", "L"}, s.events)
}

func TestWalkOutlineQuadraticChain(t *testing.T) {
	// on, quad, quad, quad, on: the middle quads get an implicit
	// on-curve midpoint inserted between them (§4.B).
	o := &Outline{
		Points: []fixed.Point26_6{pt(0, 0), pt(8, 8), pt(16, 8), pt(24, 8), pt(32, 0)},
		Tags: []Tag{
			TagOnCurve, TagQuadratic, TagQuadratic, TagQuadratic, TagOnCurve,
		},
		ContourEnds: []int{4},
	}
	var s recordingSink
	require.NoError(t, WalkOutline(o, &s))
	// the chain ends at (32,0), which does not coincide with the start
	// point (0,0), so the walker appends a closing LineTo.
	assert.Equal(t, []string{"M", "Q", "Q", "Q", "L"}, s.events)
}

func TestWalkOutlineCubic(t *testing.T) {
	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(4, 8), pt(12, 8), pt(16, 0)},
		Tags:        []Tag{TagOnCurve, TagCubic, TagCubic, TagOnCurve},
		ContourEnds: []int{3},
	}
	var s recordingSink
	require.NoError(t, WalkOutline(o, &s))
	// the contour does not return to its start point, so the walker
	// appends a closing LineTo.
	assert.Equal(t, []string{"M", "C", "L"}, s.events)
}

func TestWalkOutlineDegenerateSinglePointFails(t *testing.T) {
	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0)},
		Tags:        []Tag{TagOnCurve},
		ContourEnds: []int{0},
	}
	var s recordingSink
	err := WalkOutline(o, &s)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}

func TestWalkOutlineCubicMustBePaired(t *testing.T) {
	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(4, 8), pt(16, 0)},
		Tags:        []Tag{TagOnCurve, TagCubic, TagOnCurve},
		ContourEnds: []int{2},
	}
	var s recordingSink
	err := WalkOutline(o, &s)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}

func TestWalkOutlineCannotStartWithCubic(t *testing.T) {
	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(4, 8), pt(16, 0)},
		Tags:        []Tag{TagCubic, TagCubic, TagOnCurve},
		ContourEnds: []int{2},
	}
	var s recordingSink
	err := WalkOutline(o, &s)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}

func TestWalkOutlineEmptyFails(t *testing.T) {
	o := &Outline{}
	var s recordingSink
	err := WalkOutline(o, &s)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}

func TestWalkOutlineContourEndsMismatch(t *testing.T) {
	o := &Outline{
		Points:      []fixed.Point26_6{pt(0, 0), pt(16, 0), pt(16, 16)},
		Tags:        []Tag{TagOnCurve, TagOnCurve, TagOnCurve},
		ContourEnds: []int{5},
	}
	var s recordingSink
	err := WalkOutline(o, &s)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOutline, CodeOf(err))
}
