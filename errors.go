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

import "fmt"

// ErrCode is the closed error taxonomy of §6/§7. The numeric values
// match the driver's documented exit values.
type ErrCode int

const (
	ErrOk                  ErrCode = 0
	ErrUninitialisedObject ErrCode = 1
	ErrOverflow            ErrCode = 2
	ErrNegativeHeight      ErrCode = 3
	ErrInvalidOutline      ErrCode = 4
	ErrInvalidMap          ErrCode = 5
	ErrAntiAliasUnsupported ErrCode = 6
	ErrInvalidPool         ErrCode = 7
	ErrUnimplemented       ErrCode = 8
	ErrBadPaletteCount     ErrCode = 9
)

func (c ErrCode) String() string {
	switch c {
	case ErrOk:
		return "Ok"
	case ErrUninitialisedObject:
		return "UninitialisedObject"
	case ErrOverflow:
		return "Overflow"
	case ErrNegativeHeight:
		return "NegativeHeight"
	case ErrInvalidOutline:
		return "InvalidOutline"
	case ErrInvalidMap:
		return "InvalidMap"
	case ErrAntiAliasUnsupported:
		return "AntiAliasUnsupported"
	case ErrInvalidPool:
		return "InvalidPool"
	case ErrUnimplemented:
		return "Unimplemented"
	case ErrBadPaletteCount:
		return "BadPaletteCount"
	default:
		return fmt.Sprintf("ErrCode(%d)", int(c))
	}
}

// RasterError reports a failure from this package along with its
// taxonomy code (§7: InvalidInput, ResourceExhaustion, Unsupported,
// InternalInvariant); Overflow is the only code a caller should treat
// as recoverable (the driver already recovers it internally via
// sub-banding, so callers of RasterDriver.Render never observe it).
type RasterError struct {
	Code ErrCode
	Msg  string
}

func (e *RasterError) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newRasterError(code ErrCode, msg string) *RasterError {
	return &RasterError{Code: code, Msg: msg}
}

// CodeOf extracts the ErrCode from err, or ErrUnimplemented if err is
// not a *RasterError (defensive default for unexpected error types
// surfacing from a collaborator).
func CodeOf(err error) ErrCode {
	if err == nil {
		return ErrOk
	}
	if re, ok := err.(*RasterError); ok {
		return re.Code
	}
	return ErrUnimplemented
}
