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
)

func TestNewRenderPoolRejectsUndersize(t *testing.T) {
	_, err := NewRenderPool(100)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidPool, CodeOf(err))
}

func TestNewRenderPoolRoundsDownToMultipleOf8(t *testing.T) {
	p, err := NewRenderPool(4099)
	require.NoError(t, err)
	assert.Equal(t, 4096, p.Cap())
}

func TestAllocTopAndBottomMeetInTheMiddle(t *testing.T) {
	p, err := NewRenderPool(4096)
	require.NoError(t, err)

	_, err = p.AllocTop(2000)
	require.NoError(t, err)
	_, err = p.AllocBottom(2000)
	require.NoError(t, err)
	assert.Equal(t, 4000, p.Used())

	_, err = p.AllocTop(200)
	assert.Error(t, err)
	assert.Equal(t, ErrOverflow, CodeOf(err))
}

func TestAllocTopOffsetsAreDistinctAnd8ByteAligned(t *testing.T) {
	p, err := NewRenderPool(4096)
	require.NoError(t, err)

	off1, err := p.AllocTop(4)
	require.NoError(t, err)
	off2, err := p.AllocTop(4)
	require.NoError(t, err)
	assert.Equal(t, 0, off1)
	assert.Equal(t, 8, off2)
}

func TestResetReclaimsBothEnds(t *testing.T) {
	p, err := NewRenderPool(4096)
	require.NoError(t, err)

	_, err = p.AllocTop(1000)
	require.NoError(t, err)
	_, err = p.AllocBottom(1000)
	require.NoError(t, err)
	p.Reset()
	assert.Equal(t, 0, p.Used())

	_, err = p.AllocBottom(4096)
	assert.NoError(t, err)
}
