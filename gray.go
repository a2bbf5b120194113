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

// GraySweeper runs the B/W sweep into a small monochrome accumulator
// (2 sub-rows for 5-level grays, 4 sub-rows for 17-level) and projects
// each output pixel's accumulated sub-samples through a 256-entry
// population-count table into a palette index (§4.G).
//
// It reuses ProfileBuilder and Sweeper unmodified: the accumulator's
// extra resolution is obtained by re-running the same fixed-point
// pipeline on the outline scaled up n times in both axes (n=2 or n=4),
// so "sub-row s, sub-column c of output pixel (x,y)" is simply
// fine-resolution pixel (x*n+c, y*n+s).
type GraySweeper struct {
	n        int // subsamples per axis: 2 (5-level) or 4 (17-level)
	grays    int
	fine     Precision
	popcount [256]byte
	palette  []byte
}

// NewGraySweeper returns a sweeper producing grays (5 or 17) gray
// levels, working at precision's base resolution.
func NewGraySweeper(precision Precision, grays int) (*GraySweeper, error) {
	var n int
	switch grays {
	case 5:
		n = 2
	case 17:
		n = 4
	default:
		return nil, newRasterError(ErrBadPaletteCount, "gray sweeper supports 5 or 17 levels")
	}
	log2n := uint(0)
	for (1 << log2n) < n {
		log2n++
	}
	gs := &GraySweeper{
		n:     n,
		grays: grays,
		fine:  Precision{bits: precision.bits + log2n},
	}
	gs.rebuildPopcount()
	return gs, nil
}

// SetPalette installs the gray palette (length must equal grays) and
// rebuilds the population-count table (the table itself does not
// depend on palette content, but is rebuilt in lockstep so repeated
// SetPalette calls with the same bytes are idempotent, matching §8's
// palette idempotence property).
func (gs *GraySweeper) SetPalette(palette []byte) error {
	if len(palette) != gs.grays {
		return newRasterError(ErrBadPaletteCount, "palette length does not match gray level count")
	}
	gs.palette = append(gs.palette[:0], palette...)
	gs.rebuildPopcount()
	return nil
}

func (gs *GraySweeper) rebuildPopcount() {
	for i := 0; i < 256; i++ {
		c := 0
		for v := i; v != 0; v >>= 1 {
			c += v & 1
		}
		gs.popcount[i] = byte(c)
	}
}

// Render walks outline o and calls sink(x, y, value) for every output
// pixel with non-zero coverage in rows [minRow, maxRow); pixels with
// zero coverage are left untouched (the target bitmap is assumed
// pre-filled with palette[0]). minRow/maxRow let a caller sub-band a
// render across several pool-sized passes (§7, §12).
func (gs *GraySweeper) Render(pool *RenderPool, o *Outline, width, height, minRow, maxRow int32, dropOut DropOutMode, sink func(x, y int32, value byte)) error {
	if len(gs.palette) == 0 {
		return newRasterError(ErrUninitialisedObject, "gray sweeper has no palette")
	}
	n := int32(gs.n)
	fineWidth := width * n
	fineHeight := height * n
	fineMin := minRow * n
	fineMax := maxRow * n

	// Rasterize the outline scaled up n times at the base precision, so
	// fine pixel (x*n+c, y*n+s) is sub-column c, sub-row s of output pixel (x, y).
	shift := uint(n / 2) // log2(n) for n = 2 or 4
	base := Precision{bits: gs.fine.bits - shift}
	scaled := *o
	scaled.Points = append(o.Points[:0:0], o.Points...)
	for i := range scaled.Points {
		scaled.Points[i].X <<= shift
		scaled.Points[i].Y <<= shift
	}

	pb := NewProfileBuilder(pool, base, o.Flags&FlagReverseFill != 0, fineMin, fineMax)
	if err := WalkOutline(&scaled, pb); err != nil {
		return err
	}
	if err := pb.Finish(); err != nil {
		return err
	}

	rows := make([][]byte, n)
	for i := range rows {
		rows[i] = make([]byte, width)
	}
	currentFinalRow := int32(-1)

	flush := func(finalRow int32) {
		if finalRow < 0 || finalRow >= height {
			return
		}
		for c := int32(0); c < width; c++ {
			sum := 0
			for s := int32(0); s < n; s++ {
				sum += int(gs.popcount[rows[s][c]])
				rows[s][c] = 0
			}
			if sum > 0 {
				if sum >= len(gs.palette) {
					sum = len(gs.palette) - 1
				}
				sink(c, finalRow, gs.palette[sum])
			}
		}
	}

	sweeper := NewSweeper(base, dropOut, fineWidth)
	err := sweeper.Run(pb, func(y, x1, x2 int32) {
		finalRow := y / n
		if finalRow != currentFinalRow {
			flush(currentFinalRow)
			currentFinalRow = finalRow
		}
		subrow := byte(y % n)
		for fc := x1; fc < x2; fc++ {
			finalCol := fc / n
			if finalCol < 0 || finalCol >= width {
				continue
			}
			subcol := byte(fc % n)
			rows[subrow][finalCol] |= 1 << subcol
		}
	}, nil)
	if err != nil {
		return err
	}
	flush(currentFinalRow)
	return nil
}
