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

// SpanCoalescer merges adjacent, equal-coverage single-pixel runs
// produced by a per-cell sweep into the fewest possible span calls
// (§9's coalescing note, applied to CellRaster's per-column output).
// Zero value is ready to use; call Flush once the row is exhausted.
type SpanCoalescer struct {
	Sink   SpanFunc
	ASink  func(y, x1, x2 int32, coverage byte)
	Y      int32
	active bool
	x1, x2 int32
	cov    byte
}

// Push adds the run [x1, x2) at coverage cov, coalescing it with the
// pending run when contiguous and equal-coverage.
func (c *SpanCoalescer) Push(x1, x2 int32, cov byte) {
	if x2 <= x1 || cov == 0 {
		return
	}
	if c.active && cov == c.cov && x1 == c.x2 {
		c.x2 = x2
		return
	}
	c.Flush()
	c.active = true
	c.x1, c.x2, c.cov = x1, x2, cov
}

// Flush emits the pending run, if any.
func (c *SpanCoalescer) Flush() {
	if !c.active {
		return
	}
	if c.ASink != nil {
		c.ASink(c.Y, c.x1, c.x2, c.cov)
	} else if c.Sink != nil {
		c.Sink(c.Y, c.x1, c.x2)
	}
	c.active = false
}

func clampRange(a, b, width int32) (int32, int32) {
	if a < 0 {
		a = 0
	}
	if b > width {
		b = width
	}
	return a, b
}
