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
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

const bullet = "  • "

// WriteReport writes a human readable report of the record to w.
func (r *Record) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}

// String returns the text of the report written by [Record.WriteReport].
func (r *Record) String() string {
	b := &strings.Builder{}

	if !r.Valid {
		fmt.Fprintf(b, "File: %s\n", r.Path)
		fmt.Fprintln(b, "Status: INVALID PDF")
		fmt.Fprintf(b, "Error: %s\n", r.ErrorMessage)
		return b.String()
	}

	fmt.Fprintf(b, "--- Analysis for: %s ---\n", filepath.Base(r.Path))
	fmt.Fprintf(b, "PDF Valid: %t\n", r.Valid)
	fmt.Fprintf(b, "PDF Version: %s\n", r.Version)
	fmt.Fprintf(b, "Page Count: %d\n", r.PageCount)

	fmt.Fprintln(b, "\nPDF Boxes:")
	writeBox(b, "MediaBox", r.Media)
	if r.HasTrimBox {
		writeBox(b, "TrimBox", r.Trim)
	} else {
		fmt.Fprintln(b, bullet+"TrimBox: Not defined (using MediaBox)")
	}
	if r.HasBleedBox {
		writeBox(b, "BleedBox", r.Bleed)
	} else {
		fmt.Fprintln(b, bullet+"BleedBox: Not defined")
	}
	if r.HasCropBox {
		writeBox(b, "CropBox", r.Crop)
	}

	if len(r.CMYK) > 0 {
		fmt.Fprintf(b, "\nCMYK Colors Found (%d):\n", len(r.CMYK))
		for _, c := range r.CMYK {
			fmt.Fprintf(b, bullet+"C:%s%% M:%s%% Y:%s%% K:%s%%\n",
				num(c.C), num(c.M), num(c.Y), num(c.K))
		}
	}

	if len(r.RGB) > 0 {
		fmt.Fprintf(b, "\nRGB Colors Found (%d):\n", len(r.RGB))
		for _, c := range r.RGB {
			fmt.Fprintf(b, bullet+"R:%s G:%s B:%s\n", num(c.R), num(c.G), num(c.B))
		}
	}

	if len(r.Spots) > 0 {
		fmt.Fprintf(b, "\nSpot Colors Found (%d):\n", len(r.Spots))
		for _, s := range r.Spots {
			b.WriteString(bullet + s.Name)
			switch len(s.LineWidths) {
			case 0:
				// pass
			case 1:
				fmt.Fprintf(b, " (Line width: %.2f pt)", s.LineWidths[0])
			default:
				widths := make([]string, len(s.LineWidths))
				for i, w := range s.LineWidths {
					widths[i] = fmt.Sprintf("%.2f pt", w)
				}
				fmt.Fprintf(b, " (Line widths: %s)", strings.Join(widths, ", "))
			}
			if s.IsDieCut {
				b.WriteString(" [DIE-CUT DETECTED]")
			}
			b.WriteString("\n")
		}
	} else {
		fmt.Fprintf(b, "\nSpecial Spot Color Found: %t\n", r.DieCut.Found)
		if r.DieCut.Found {
			fmt.Fprintf(b, "Spot Color Name: %s\n", r.DieCut.ColorName)
		}
	}

	return b.String()
}

func writeBox(b *strings.Builder, label string, box Box) {
	fmt.Fprintf(b, bullet+"%s: %.2f mm x %.2f mm\n", label, box.WidthMM(), box.HeightMM())
}

// Summary returns the short summary printed after a record was exported.
func (r *Record) Summary() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "Summary:")
	fmt.Fprintf(b, bullet+"PDF: %s\n", filepath.Base(r.Path))
	fmt.Fprintf(b, bullet+"Dimensions: %.1f x %.1f mm\n", r.Trim.WidthMM(), r.Trim.HeightMM())
	fmt.Fprintf(b, bullet+"CMYK Colors: %d\n", len(r.CMYK))
	fmt.Fprintf(b, bullet+"Spot Colors: %d\n", len(r.Spots))
	fmt.Fprintf(b, bullet+"Die-Cut Found: %t\n", r.DieCut.Found)
	if r.DieCut.Found {
		fmt.Fprintf(b, bullet+"Die-Cut Color: %s\n", r.DieCut.ColorName)
	}
	return b.String()
}

// num formats x with the smallest number of digits which represents it
// exactly.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
