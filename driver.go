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
	"log/slog"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
)

// RenderMode selects which of the three render paths services a call
// (§4.I, §5).
type RenderMode int

const (
	// ModeMono produces a 1-bit-per-pixel bitmap via ProfileBuilder and
	// Sweeper, with drop-out control.
	ModeMono RenderMode = iota

	// ModeGray produces palette-indexed gray levels by running the
	// B/W pipeline through a GraySweeper accumulator.
	ModeGray

	// ModeDirect produces 8-bit coverage directly via CellRaster,
	// bypassing the B/W+filter path entirely.
	ModeDirect
)

// maxBandDepth bounds the sub-banding retry recursion (§7): a render
// call that still overflows the pool after this many halvings fails
// with ErrInvalidOutline rather than looping forever.
const maxBandDepth = 8

// Bitmap is the driver's output target. Pitch may be negative, in
// which case row 0 is stored last in Buffer (matches the bottom-up
// convention some callers' bitmap sources use). Clip further restricts
// writes beyond the [0,Width)x[0,Rows) bound Render already enforces.
type Bitmap struct {
	Width, Rows int32
	Pitch       int32
	Buffer      []byte
	Clip        rect.Rect
}

func (b *Bitmap) rowOffset(y int32) int {
	if b.Pitch >= 0 {
		return int(y) * int(b.Pitch)
	}
	return int(b.Rows-1-y) * int(-b.Pitch)
}

func (b *Bitmap) clipped(x, y int32) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Rows {
		return true
	}
	if b.Clip == (rect.Rect{}) {
		return false
	}
	px, py := float64(x), float64(y)
	return px < b.Clip.LLx || px >= b.Clip.URx || py < b.Clip.LLy || py >= b.Clip.URy
}

// SetMonoPixel sets bit x of row y in a 1-bpp, MSB-first buffer.
func (b *Bitmap) SetMonoPixel(x, y int32) {
	if b.clipped(x, y) {
		return
	}
	off := b.rowOffset(y) + int(x>>3)
	if off < 0 || off >= len(b.Buffer) {
		return
	}
	b.Buffer[off] |= 0x80 >> uint(x&7)
}

// SetGrayPixel writes value at column x, row y of an 8-bpp buffer.
func (b *Bitmap) SetGrayPixel(x, y int32, value byte) {
	if b.clipped(x, y) {
		return
	}
	off := b.rowOffset(y) + int(x)
	if off < 0 || off >= len(b.Buffer) {
		return
	}
	b.Buffer[off] = value
}

// RenderParams bundles one Render call's inputs (§5).
type RenderParams struct {
	Outline *Outline
	Target  *Bitmap
	Mode    RenderMode
	DropOut DropOutMode
}

// RasterDriver is the public entry point (§4.I): it owns a RenderPool,
// the installed gray palette, and dispatches each call to the
// ProfileBuilder+Sweeper path, the GraySweeper path, or CellRaster,
// recovering from pool exhaustion by sub-banding and retrying.
type RasterDriver struct {
	pool         *RenderPool
	log          *slog.Logger
	paletteCount int
	palette      []byte
}

// NewRasterDriver returns a driver backed by pool, logging sub-banding
// and palette events to slog.Default().
func NewRasterDriver(pool *RenderPool) *RasterDriver {
	return &RasterDriver{pool: pool, log: slog.Default()}
}

// SetLogger installs a custom logger in place of slog.Default().
func (d *RasterDriver) SetLogger(l *slog.Logger) { d.log = l }

// Reset installs a new (or newly-cleared) pool. A caller services many
// glyphs against one driver by calling Reset between them instead of
// constructing a new driver each time (§4.D, §5).
func (d *RasterDriver) Reset(pool *RenderPool) {
	d.pool = pool
}

// SetPalette installs a gray palette; its length must be 2, 5, or 17
// (§6). A 2-entry palette marks the driver as B/W-only: ModeGray then
// fails with ErrAntiAliasUnsupported.
func (d *RasterDriver) SetPalette(palette []byte) error {
	switch len(palette) {
	case 2, 5, 17:
	default:
		return newRasterError(ErrBadPaletteCount, "palette count must be 2, 5, or 17")
	}
	d.paletteCount = len(palette)
	d.palette = append(d.palette[:0], palette...)
	d.log.Debug("palette installed", "count", d.paletteCount)
	return nil
}

// Render dispatches p to the path selected by p.Mode (§4.I).
func (d *RasterDriver) Render(p RenderParams) error {
	if d.pool == nil {
		return newRasterError(ErrUninitialisedObject, "driver has no pool")
	}
	if p.Outline == nil || p.Target == nil {
		return newRasterError(ErrInvalidMap, "outline and target are required")
	}
	if p.Outline.NContours() == 0 {
		return newRasterError(ErrInvalidOutline, "outline has no contours")
	}
	if outlineMissesTarget(p.Outline, p.Target) {
		return nil
	}

	precision := PrecisionLow
	if p.Outline.HighPrecision() {
		precision = PrecisionHigh
	}

	switch p.Mode {
	case ModeDirect:
		return d.renderDirect(p, precision)
	case ModeGray:
		return d.renderGray(p, precision)
	default:
		return d.renderMono(p, precision)
	}
}

// bandRange runs fn over [minY, maxY); on ErrOverflow it halves the
// range and retries each half independently, up to maxBandDepth deep
// (§7's sub-banding recovery). Any other error propagates to the
// caller unchanged; overflow past the depth limit, or in a band of one
// row, is reported as ErrInvalidOutline.
func (d *RasterDriver) bandRange(minY, maxY int32, depth int, fn func(minY, maxY int32) error) error {
	err := fn(minY, maxY)
	if err == nil {
		return nil
	}
	re, ok := err.(*RasterError)
	if !ok || re.Code != ErrOverflow {
		return err
	}
	if depth >= maxBandDepth || maxY-minY <= 1 {
		return newRasterError(ErrInvalidOutline, "pool overflow persists after sub-banding")
	}
	mid := minY + (maxY-minY)/2
	d.log.Debug("sub-banding render after pool overflow",
		"minY", minY, "maxY", maxY, "mid", mid, "depth", depth)
	if err := d.bandRange(minY, mid, depth+1, fn); err != nil {
		return err
	}
	return d.bandRange(mid, maxY, depth+1, fn)
}

func (d *RasterDriver) renderMono(p RenderParams, precision Precision) error {
	width := p.Target.Width
	height := p.Target.Rows
	reverse := p.Outline.Flags&FlagReverseFill != 0

	err := d.bandRange(0, height, 0, func(minY, maxY int32) error {
		d.pool.Reset()
		pb := NewProfileBuilder(d.pool, precision, reverse, minY, maxY)
		if err := WalkOutline(p.Outline, pb); err != nil {
			return err
		}
		if err := pb.Finish(); err != nil {
			return err
		}
		sw := NewSweeper(precision, p.DropOut, width)
		return sw.Run(pb, func(y, x1, x2 int32) {
			for x := x1; x < x2; x++ {
				p.Target.SetMonoPixel(x, y)
			}
		}, func(x, y int32) {
			p.Target.SetMonoPixel(x, y)
		})
	})
	if err != nil {
		return err
	}
	if p.Outline.Flags&FlagSinglePass == 0 {
		return d.renderHorizontalPass(p, precision)
	}
	return nil
}

// renderHorizontalPass is the second, x-major sweep (§4.E/§9's design
// note): it transposes the outline's coordinates, reruns the same
// profile/sweep pipeline, and ORs the resulting pixels into the
// target. This recovers spans a single vertical sweep drops at shallow
// near-horizontal edges. Disabled by FlagSinglePass.
func (d *RasterDriver) renderHorizontalPass(p RenderParams, precision Precision) error {
	transposed := transposeOutline(p.Outline)
	width := p.Target.Rows
	height := p.Target.Width
	reverse := transposed.Flags&FlagReverseFill != 0

	return d.bandRange(0, height, 0, func(minY, maxY int32) error {
		d.pool.Reset()
		pb := NewProfileBuilder(d.pool, precision, reverse, minY, maxY)
		if err := WalkOutline(transposed, pb); err != nil {
			return err
		}
		if err := pb.Finish(); err != nil {
			return err
		}
		sw := NewSweeper(precision, p.DropOut, width)
		return sw.Run(pb, func(y, x1, x2 int32) {
			for x := x1; x < x2; x++ {
				p.Target.SetMonoPixel(y, x)
			}
		}, func(x, y int32) {
			p.Target.SetMonoPixel(y, x)
		})
	})
}

// outlineMissesTarget reports whether o's bounding box falls entirely
// outside the target bitmap, letting Render skip the walk/profile/sweep
// pipeline altogether for off-bitmap contours (§12's clip pre-pass,
// grounded on the original rasterizer's bbox-vs-bitmap check).
func outlineMissesTarget(o *Outline, t *Bitmap) bool {
	if len(o.Points) == 0 {
		return true
	}
	minX, minY := o.Points[0].X, o.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range o.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	loX, hiX := int32(minX>>6), int32((maxX+63)>>6)
	loY, hiY := int32(minY>>6), int32((maxY+63)>>6)
	return hiX <= 0 || loX >= t.Width || hiY <= 0 || loY >= t.Rows
}

// transposeOutline swaps X and Y of every point, used to drive the
// horizontal second pass through the same vertical-sweep machinery.
func transposeOutline(o *Outline) *Outline {
	pts := make([]fixed.Point26_6, len(o.Points))
	for i, p := range o.Points {
		pts[i] = fixed.Point26_6{X: p.Y, Y: p.X}
	}
	return &Outline{
		Points:      pts,
		Tags:        o.Tags,
		ContourEnds: o.ContourEnds,
		Flags:       o.Flags | FlagSinglePass,
		Shift:       o.Shift,
		Delta:       o.Delta,
	}
}

func (d *RasterDriver) renderGray(p RenderParams, precision Precision) error {
	if d.paletteCount == 0 {
		return newRasterError(ErrUninitialisedObject, "driver has no gray palette")
	}
	if d.paletteCount == 2 {
		return newRasterError(ErrAntiAliasUnsupported, "2-entry palette does not support gray rendering")
	}
	width := p.Target.Width
	height := p.Target.Rows

	gs, err := NewGraySweeper(precision, d.paletteCount)
	if err != nil {
		return err
	}
	if err := gs.SetPalette(d.palette); err != nil {
		return err
	}

	return d.bandRange(0, height, 0, func(minY, maxY int32) error {
		d.pool.Reset()
		return gs.Render(d.pool, p.Outline, width, height, minY, maxY, p.DropOut, func(x, y int32, value byte) {
			p.Target.SetGrayPixel(x, y, value)
		})
	})
}

// renderDirect runs the CellRaster path through the same bandRange
// sub-banding recovery as renderMono/renderGray (§7): a pool overflow
// while accumulating cells for one band retries at half the row range
// instead of propagating ErrOverflow to the caller.
func (d *RasterDriver) renderDirect(p RenderParams, precision Precision) error {
	width := p.Target.Width
	height := p.Target.Rows
	havePalette := len(d.palette) > 0
	var last byte
	if havePalette {
		last = byte(len(d.palette) - 1)
	}

	return d.bandRange(0, height, 0, func(minY, maxY int32) error {
		d.pool.Reset()
		cr := NewCellRaster(d.pool, precision, width, height, minY, maxY)
		if err := WalkOutline(p.Outline, cr); err != nil {
			return err
		}
		if err := cr.Finish(); err != nil {
			return err
		}
		if !havePalette {
			return cr.Sweep(func(y, x1, x2 int32, coverage byte) {
				for x := x1; x < x2; x++ {
					p.Target.SetGrayPixel(x, y, coverage)
				}
			})
		}
		return cr.Sweep(func(y, x1, x2 int32, coverage byte) {
			idx := int(coverage) * int(last) / 255
			val := d.palette[idx]
			for x := x1; x < x2; x++ {
				p.Target.SetGrayPixel(x, y, val)
			}
		})
	})
}
