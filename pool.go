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

// minPoolSize is the smallest pool RenderPool accepts (§4.D).
const minPoolSize = 4096

// RenderPool is a single contiguous arena supplied by the caller and
// reused across render calls. Profiles and x-turn data bump-allocate
// upward from the base; the y-turn list allocates downward from the
// limit. When the two cursors meet, the current operation fails with
// ErrOverflow and the driver is expected to sub-band and retry (§7).
//
// A RenderPool is not safe for concurrent use; a single render call
// owns it exclusively for its duration (§5).
type RenderPool struct {
	size   int // usable size in bytes, rounded down to a multiple of 8
	cursor int // next byte offset to hand out, growing upward
	limit  int // next byte offset to hand out, growing downward from size
}

// NewRenderPool validates size (minimum 4 KiB) and returns a pool with
// that much usable capacity, rounded down to a multiple of 8.
func NewRenderPool(size int) (*RenderPool, error) {
	if size < minPoolSize {
		return nil, newRasterError(ErrInvalidPool, "pool smaller than 4096 bytes")
	}
	p := &RenderPool{size: size &^ 7}
	p.Reset()
	return p, nil
}

// Reset clears the pool's cursors, releasing all allocations from the
// previous render call. It never reallocates the backing size.
func (p *RenderPool) Reset() {
	p.cursor = 0
	p.limit = p.size
}

// AllocTop bump-allocates n bytes growing upward (profiles, x-offset
// arrays, cell records). Returns the byte offset, or ErrOverflow.
func (p *RenderPool) AllocTop(n int) (int, error) {
	n = (n + 7) &^ 7
	if p.cursor+n > p.limit {
		return 0, newRasterError(ErrOverflow, "pool exhausted (top)")
	}
	off := p.cursor
	p.cursor += n
	return off, nil
}

// AllocBottom bump-allocates n bytes growing downward (the y-turn
// list). Returns the byte offset of the start of the allocated region.
func (p *RenderPool) AllocBottom(n int) (int, error) {
	n = (n + 7) &^ 7
	if p.limit-n < p.cursor {
		return 0, newRasterError(ErrOverflow, "pool exhausted (bottom)")
	}
	p.limit -= n
	return p.limit, nil
}

// Used returns the number of bytes currently allocated (from both ends).
func (p *RenderPool) Used() int { return p.cursor + (p.size - p.limit) }

// Cap returns the pool's usable capacity in bytes.
func (p *RenderPool) Cap() int { return p.size }
