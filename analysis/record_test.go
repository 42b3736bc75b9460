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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/preflight/contentstream"
	"seehuhn.de/go/preflight/inventory"
	"seehuhn.de/go/preflight/spot"
)

func TestUnits(t *testing.T) {
	b := Box{rect.Rect{URx: 72, URy: 144}}
	if b.Width() != 72 || b.Height() != 144 {
		t.Errorf("size = %g x %g, want 72 x 144", b.Width(), b.Height())
	}
	if w, h := b.WidthMM(), b.HeightMM(); w != 25.4 || h != 50.8 {
		t.Errorf("size = %g mm x %g mm, want 25.4 mm x 50.8 mm", w, h)
	}
	if w, h := PointsToInches(b.Width()), PointsToInches(b.Height()); w != 1 || h != 2 {
		t.Errorf("size = %g in x %g in, want 1 in x 2 in", w, h)
	}

	got := boxDimensions(b)
	want := &BoxDimensions{
		WidthMm:      25.4,
		HeightMm:     50.8,
		WidthInches:  1,
		HeightInches: 2,
		WidthPoints:  72,
		HeightPoints: 144,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected dimensions (-want +got):\n%s", d)
	}
}

func TestLineWidthMM(t *testing.T) {
	testCases := []struct {
		pt, mm float64
	}{
		{0, 0},
		{0.25, 0.088},
		{0.5, 0.176},
		{1, 0.353},
		{2.835, 1},
	}
	for _, tc := range testCases {
		if got := LineWidthMM(tc.pt); got != tc.mm {
			t.Errorf("LineWidthMM(%g) = %g, want %g", tc.pt, got, tc.mm)
		}
	}
}

func TestTrimBoxFallback(t *testing.T) {
	media := &rect.Rect{URx: 595.276, URy: 841.89}
	rec := Build(Meta{Path: "a4.pdf"}, Geometry{Media: media}, inventory.New(nil))

	if rec.HasTrimBox {
		t.Error("HasTrimBox set without TrimBox")
	}
	if rec.Trim != rec.Media {
		t.Errorf("TrimBox %v differs from MediaBox %v", rec.Trim, rec.Media)
	}
	if rec.Trim.WidthMM() != rec.Media.WidthMM() || rec.Trim.HeightMM() != rec.Media.HeightMM() {
		t.Error("TrimBox dimensions differ from MediaBox dimensions")
	}
	if rec.HasBleedBox || rec.HasCropBox {
		t.Error("unexpected BleedBox or CropBox")
	}

	s := rec.Structured()
	if s.Dimensions.TrimBox != nil {
		t.Error("fallback TrimBox included in structured output")
	}
}

func TestBoxes(t *testing.T) {
	media := &rect.Rect{URx: 612, URy: 792}
	testCases := []struct {
		name     string
		g        Geometry
		trim     bool
		bleed    bool
		crop     bool
		wantTrim Box
	}{
		{
			name:     "media only",
			g:        Geometry{Media: media},
			wantTrim: Box{*media},
		},
		{
			name:     "trim and bleed",
			g:        Geometry{Media: media, Trim: &rect.Rect{LLx: 9, LLy: 9, URx: 603, URy: 783}, Bleed: &rect.Rect{URx: 612, URy: 792}},
			trim:     true,
			bleed:    true,
			wantTrim: Box{rect.Rect{LLx: 9, LLy: 9, URx: 603, URy: 783}},
		},
		{
			name:     "crop equal to media",
			g:        Geometry{Media: media, Crop: &rect.Rect{URx: 612.0004, URy: 792}},
			wantTrim: Box{*media},
		},
		{
			name:     "crop differs from media",
			g:        Geometry{Media: media, Crop: &rect.Rect{LLx: 10, LLy: 10, URx: 602, URy: 782}},
			crop:     true,
			wantTrim: Box{*media},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Build(Meta{}, tc.g, inventory.New(nil))
			if rec.HasTrimBox != tc.trim || rec.HasBleedBox != tc.bleed || rec.HasCropBox != tc.crop {
				t.Errorf("flags = %t %t %t, want %t %t %t",
					rec.HasTrimBox, rec.HasBleedBox, rec.HasCropBox,
					tc.trim, tc.bleed, tc.crop)
			}
			if rec.Trim != tc.wantTrim {
				t.Errorf("TrimBox = %v, want %v", rec.Trim, tc.wantTrim)
			}
			s := rec.Structured()
			if (s.Dimensions.CropBox != nil) != tc.crop {
				t.Errorf("structured CropBox = %v", s.Dimensions.CropBox)
			}
		})
	}
}

func TestBuildSpots(t *testing.T) {
	c := inventory.New(spot.NewSet("CutContour"))
	for _, ev := range []contentstream.Event{
		{
			Kind:      contentstream.KindPath,
			Fill:      &contentstream.Color{Family: contentstream.Separation, Values: []float64{1}, Colorant: "PANTONE 286 C"},
			LineWidth: 1,
		},
		{
			Kind:      contentstream.KindPath,
			Stroke:    &contentstream.Color{Family: contentstream.Separation, Values: []float64{1}, Colorant: "CutContour"},
			LineWidth: 1,
		},
		{
			Kind:      contentstream.KindPath,
			Stroke:    &contentstream.Color{Family: contentstream.Separation, Values: []float64{1}, Colorant: "CutContour"},
			LineWidth: 0.5,
		},
	} {
		c.Consume(ev)
	}

	rec := Build(Meta{Path: "x.pdf"}, Geometry{Media: &rect.Rect{URx: 100, URy: 100}}, c)
	want := []Spot{
		{Name: "CutContour", Category: spot.DieCut, IsDieCut: true, LineWidths: []float64{0.5, 1}},
		{Name: "PANTONE 286 C", Category: spot.Pantone},
	}
	if d := cmp.Diff(want, rec.Spots); d != "" {
		t.Errorf("unexpected spots (-want +got):\n%s", d)
	}
	if rec.dieCutWidth() != 0.5 {
		t.Errorf("die-cut width = %g, want 0.5", rec.dieCutWidth())
	}
}

func TestInvalid(t *testing.T) {
	rec := Invalid("dir/broken.pdf", errors.New("unexpected end of file"))
	if rec.Valid {
		t.Error("invalid record marked valid")
	}
	if rec.ErrorMessage != "unexpected end of file" {
		t.Errorf("ErrorMessage = %q", rec.ErrorMessage)
	}

	got := rec.Structured()
	want := &Structured{
		FileName:     "broken.pdf",
		FilePath:     "dir/broken.pdf",
		ErrorMessage: "unexpected end of file",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected structured record (-want +got):\n%s", d)
	}
}
