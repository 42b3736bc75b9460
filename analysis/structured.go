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
	"encoding/xml"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/preflight/colorname"
	"seehuhn.de/go/preflight/spot"
)

// Structured is the serializable form of a [Record].
// For invalid records only the identifying fields, the validity flag and
// the error message are set.
type Structured struct {
	XMLName xml.Name `json:"-" xml:"PdfAnalysis"`

	FileName         string    `json:"fileName" xml:"FileName"`
	FilePath         string    `json:"filePath" xml:"FilePath"`
	AnalysisDateTime time.Time `json:"analysisDateTime" xml:"AnalysisDateTime"`
	IsValid          bool      `json:"isValid" xml:"IsValid"`
	ErrorMessage     string    `json:"errorMessage" xml:"ErrorMessage"`

	PdfInfo    *PdfInfo       `json:"pdfInfo,omitempty" xml:"PdfInfo,omitempty"`
	Dimensions *Dimensions    `json:"dimensions,omitempty" xml:"Dimensions,omitempty"`
	Colors     *Colors        `json:"colors,omitempty" xml:"Colors,omitempty"`
	DieCut     *DieCutSummary `json:"dieCut,omitempty" xml:"DieCut,omitempty"`
}

// PdfInfo holds document level information.
type PdfInfo struct {
	Version   string `json:"version" xml:"Version"`
	PageCount int    `json:"pageCount" xml:"PageCount"`
}

// Dimensions lists the page boxes.  Only the MediaBox is always present.
type Dimensions struct {
	MediaBox *BoxDimensions `json:"mediaBox" xml:"MediaBox"`
	TrimBox  *BoxDimensions `json:"trimBox,omitempty" xml:"TrimBox,omitempty"`
	BleedBox *BoxDimensions `json:"bleedBox,omitempty" xml:"BleedBox,omitempty"`
	CropBox  *BoxDimensions `json:"cropBox,omitempty" xml:"CropBox,omitempty"`
}

// BoxDimensions gives the size of a box in several units.
// Inches are rounded to three decimals, points to two.
type BoxDimensions struct {
	WidthMm      float64 `json:"widthMm" xml:"WidthMm"`
	HeightMm     float64 `json:"heightMm" xml:"HeightMm"`
	WidthInches  float64 `json:"widthInches" xml:"WidthInches"`
	HeightInches float64 `json:"heightInches" xml:"HeightInches"`
	WidthPoints  float64 `json:"widthPoints" xml:"WidthPoints"`
	HeightPoints float64 `json:"heightPoints" xml:"HeightPoints"`
}

// Colors lists the inks used on the page.
type Colors struct {
	CmykColors []CMYKInfo `json:"cmykColors" xml:"CmykColors>CmykColor"`
	RgbColors  []RGBInfo  `json:"rgbColors" xml:"RgbColors>RgbColor"`
	SpotColors []SpotInfo `json:"spotColors" xml:"SpotColors>SpotColor"`
}

// CMYKInfo describes a CMYK process color.  Values are percentages.
type CMYKInfo struct {
	C          float64 `json:"c" xml:"C"`
	M          float64 `json:"m" xml:"M"`
	Y          float64 `json:"y" xml:"Y"`
	K          float64 `json:"k" xml:"K"`
	ColorName  string  `json:"colorName" xml:"ColorName"`
	CmykString string  `json:"cmykString" xml:"CmykString"`
}

// RGBInfo describes an RGB process color.  Values are in the range 0-255.
type RGBInfo struct {
	R         float64 `json:"r" xml:"R"`
	G         float64 `json:"g" xml:"G"`
	B         float64 `json:"b" xml:"B"`
	ColorName string  `json:"colorName" xml:"ColorName"`
	HexValue  string  `json:"hexValue" xml:"HexValue"`
}

// SpotInfo describes a spot ink.
type SpotInfo struct {
	Name       string      `json:"name" xml:"Name"`
	Type       string      `json:"type" xml:"Type"`
	IsDieCut   bool        `json:"isDieCut" xml:"IsDieCut"`
	LineWidths []LineWidth `json:"lineWidths" xml:"LineWidths>Width"`
}

// LineWidth is a stroke width in points and millimeters.
type LineWidth struct {
	Points      float64 `json:"points" xml:"Points"`
	Millimeters float64 `json:"millimeters" xml:"Millimeters"`
}

// DieCutSummary describes the outcome of the die-cut search.
//
// AllDieCutColors lists every spot ink whose name looks like a cutting
// line, whether or not it is in the vocabulary.
type DieCutSummary struct {
	Found           bool     `json:"found" xml:"Found"`
	ColorName       string   `json:"colorName" xml:"ColorName"`
	LineWidthPoints float64  `json:"lineWidthPoints" xml:"LineWidthPoints"`
	LineWidthMm     float64  `json:"lineWidthMm" xml:"LineWidthMm"`
	AllDieCutColors []string `json:"allDieCutColors" xml:"AllDieCutColors>DieCutColor"`
}

// Structured returns the serializable form of the record.
func (r *Record) Structured() *Structured {
	s := &Structured{
		FileName:         filepath.Base(r.Path),
		FilePath:         r.Path,
		AnalysisDateTime: r.Time,
		IsValid:          r.Valid,
		ErrorMessage:     r.ErrorMessage,
	}
	if r.Path == "" {
		s.FileName = ""
	}
	if !r.Valid {
		return s
	}

	s.PdfInfo = &PdfInfo{
		Version:   r.Version,
		PageCount: r.PageCount,
	}

	s.Dimensions = &Dimensions{
		MediaBox: boxDimensions(r.Media),
	}
	if r.HasTrimBox {
		s.Dimensions.TrimBox = boxDimensions(r.Trim)
	}
	if r.HasBleedBox {
		s.Dimensions.BleedBox = boxDimensions(r.Bleed)
	}
	if r.HasCropBox {
		s.Dimensions.CropBox = boxDimensions(r.Crop)
	}

	colors := &Colors{
		CmykColors: make([]CMYKInfo, 0, len(r.CMYK)),
		RgbColors:  make([]RGBInfo, 0, len(r.RGB)),
		SpotColors: make([]SpotInfo, 0, len(r.Spots)),
	}
	for _, c := range r.CMYK {
		colors.CmykColors = append(colors.CmykColors, CMYKInfo{
			C:          c.C,
			M:          c.M,
			Y:          c.Y,
			K:          c.K,
			ColorName:  colorname.CMYK(c.C, c.M, c.Y, c.K),
			CmykString: cmykString(c.C, c.M, c.Y, c.K),
		})
	}
	for _, c := range r.RGB {
		colors.RgbColors = append(colors.RgbColors, RGBInfo{
			R:         c.R,
			G:         c.G,
			B:         c.B,
			ColorName: colorname.RGB(c.R, c.G, c.B),
			HexValue:  hexString(c.R, c.G, c.B),
		})
	}
	dieCut := &DieCutSummary{
		Found:           r.DieCut.Found,
		ColorName:       r.DieCut.ColorName,
		AllDieCutColors: []string{},
	}
	for _, sp := range r.Spots {
		widths := make([]LineWidth, 0, len(sp.LineWidths))
		for _, w := range sp.LineWidths {
			widths = append(widths, LineWidth{Points: w, Millimeters: LineWidthMM(w)})
		}
		colors.SpotColors = append(colors.SpotColors, SpotInfo{
			Name:       sp.Name,
			Type:       string(sp.Category),
			IsDieCut:   sp.IsDieCut,
			LineWidths: widths,
		})
		if spot.LooksLikeDieCut(sp.Name) {
			dieCut.AllDieCutColors = append(dieCut.AllDieCutColors, sp.Name)
		}
	}
	if w := r.dieCutWidth(); w > 0 {
		dieCut.LineWidthPoints = w
		dieCut.LineWidthMm = LineWidthMM(w)
	}
	s.Colors = colors
	s.DieCut = dieCut

	return s
}

func boxDimensions(b Box) *BoxDimensions {
	wMM, hMM := b.WidthMM(), b.HeightMM()
	return &BoxDimensions{
		WidthMm:      wMM,
		HeightMm:     hMM,
		WidthInches:  round(wMM/mmPerInch, 3),
		HeightInches: round(hMM/mmPerInch, 3),
		WidthPoints:  round(wMM*ptPerInch/mmPerInch, 2),
		HeightPoints: round(hMM*ptPerInch/mmPerInch, 2),
	}
}

// cmykString formats a CMYK color in the compact form "C0M100Y100K0".
func cmykString(c, m, y, k float64) string {
	return fmt.Sprintf("C%.0fM%.0fY%.0fK%.0f",
		math.Round(c), math.Round(m), math.Round(y), math.Round(k))
}

// hexString formats an RGB color as "#RRGGBB".
func hexString(r, g, b float64) string {
	col := colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped()
	return strings.ToUpper(col.Hex())
}
