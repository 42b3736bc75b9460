// seehuhn.de/go/preflight - print-production checks for PDF files
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

package analysis

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

const (
	mmPerInch  = 25.4
	ptPerInch  = 72
	mmPerPoint = 0.352778 // used for line widths
	boxEpsilon = 1e-3     // points
)

// Geometry holds the page boxes of a page, in PDF points.
// A nil entry means that the box is not present.
type Geometry struct {
	Media *rect.Rect
	Crop  *rect.Rect
	Trim  *rect.Rect
	Bleed *rect.Rect
}

// Box is a page box, measured in PDF points.
type Box struct {
	rect.Rect
}

// Width returns the width of the box in points.
func (b Box) Width() float64 { return b.Dx() }

// Height returns the height of the box in points.
func (b Box) Height() float64 { return b.Dy() }

// WidthMM returns the width of the box in millimeters.
func (b Box) WidthMM() float64 { return PointsToMM(b.Dx()) }

// HeightMM returns the height of the box in millimeters.
func (b Box) HeightMM() float64 { return PointsToMM(b.Dy()) }

// nearlyEqual reports whether all corners of the two boxes are within tol
// of each other.
func (b Box) nearlyEqual(other Box, tol float64) bool {
	return math.Abs(b.LLx-other.LLx) <= tol &&
		math.Abs(b.LLy-other.LLy) <= tol &&
		math.Abs(b.URx-other.URx) <= tol &&
		math.Abs(b.URy-other.URy) <= tol
}

// PointsToMM converts a length from PDF points to millimeters.
func PointsToMM(pt float64) float64 {
	return pt / ptPerInch * mmPerInch
}

// PointsToInches converts a length from PDF points to inches.
func PointsToInches(pt float64) float64 {
	return pt / ptPerInch
}

// LineWidthMM converts a line width from points to millimeters, rounded to
// three decimals.
func LineWidthMM(pt float64) float64 {
	return round(pt*mmPerPoint, 3)
}

// round rounds x to the given number of decimals, with ties away from zero.
func round(x float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	r := math.Round(x*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
