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
	"time"

	"seehuhn.de/go/preflight/inventory"
	"seehuhn.de/go/preflight/spot"
)

// Meta identifies an analyzed document.
type Meta struct {
	Path      string
	Time      time.Time
	Version   string
	PageCount int
}

// Spot describes one spot ink used on the page.
type Spot struct {
	Name     string
	Category spot.Category

	// IsDieCut is set for the ink which matched the die-cut vocabulary.
	IsDieCut bool

	// LineWidths lists the distinct widths, in points, used to stroke
	// paths in this ink, in increasing order.
	LineWidths []float64
}

// Record is the result of analyzing one PDF file.
// A Record is not modified after it has been built.
type Record struct {
	Meta

	Valid        bool
	ErrorMessage string

	Media       Box
	Trim        Box
	HasTrimBox  bool
	Bleed       Box
	HasBleedBox bool
	Crop        Box
	HasCropBox  bool

	CMYK   []inventory.CMYK // sorted by K, C, M, Y
	RGB    []inventory.RGB  // sorted by R, G, B
	Spots  []Spot           // sorted by name
	DieCut inventory.DieCut
}

// Build assembles the record for a successfully analyzed page.
func Build(meta Meta, g Geometry, c *inventory.Collector) *Record {
	rec := &Record{
		Meta:  meta,
		Valid: true,
	}

	if g.Media != nil {
		rec.Media = Box{*g.Media}
	}
	if g.Trim != nil {
		rec.Trim = Box{*g.Trim}
		rec.HasTrimBox = true
	} else {
		rec.Trim = rec.Media
	}
	if g.Bleed != nil {
		rec.Bleed = Box{*g.Bleed}
		rec.HasBleedBox = true
	}
	if g.Crop != nil {
		crop := Box{*g.Crop}
		if !crop.nearlyEqual(rec.Media, boxEpsilon) {
			rec.Crop = crop
			rec.HasCropBox = true
		}
	}

	rec.CMYK = c.CMYK()
	rec.RGB = c.RGB()
	rec.DieCut = c.DieCut()
	for _, name := range c.Spots() {
		rec.Spots = append(rec.Spots, Spot{
			Name:       name,
			Category:   spot.Categorize(name),
			IsDieCut:   rec.DieCut.Found && spot.SameName(name, rec.DieCut.ColorName),
			LineWidths: c.LineWidths(name),
		})
	}

	return rec
}

// Invalid returns the record for a file which could not be analyzed.
func Invalid(path string, err error) *Record {
	rec := &Record{
		Meta: Meta{Path: path},
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}
	return rec
}

// dieCutWidth returns the first line width of the die-cut ink, or 0 if
// there is no die-cut ink or it was never stroked.
func (r *Record) dieCutWidth() float64 {
	if !r.DieCut.Found {
		return 0
	}
	for _, s := range r.Spots {
		if s.IsDieCut && len(s.LineWidths) > 0 {
			return s.LineWidths[0]
		}
	}
	return 0
}
