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

package colorname

import (
	"testing"
)

func TestCMYK(t *testing.T) {
	testCases := []struct {
		c, m, y, k float64
		want       string
	}{
		{0, 0, 0, 0, "White"},
		{0.5, 0.5, 0.5, 0.5, "White"},
		{0.4, 0, 0.3, 0.5, "White"},
		{0, 0, 0, 100, "Black"},
		{0.5, 0.5, 0.5, 99.5, "Black"},
		{100, 0, 0, 0, "Cyan"},
		{0, 100, 0, 0, "Magenta"},
		{0, 0, 100, 0, "Yellow"},
		{100, 100, 0, 0, "Blue"},
		{0, 100, 100, 0, "Red"},
		{100, 0, 100, 0, "Green"},
		{60, 40, 40, 100, "Rich Black"},
		{0, 0, 11, 80, "Rich Black"},
		{0, 0, 0, 10, "Light Gray"},
		{5, 5, 5, 25, "Light Gray"},
		{0, 0, 0, 50, "Medium Gray"},
		{0, 0, 0, 75, "Dark Gray"},
		{0, 0, 0, 90, "Very Dark Gray"},
		{20, 40, 80, 40, "Brown"},
		{0, 70, 90, 0, "Orange"},
		{0, 80, 10, 0, "Pink"},
		{60, 90, 0, 0, "Purple"},
		{12.4, 50.5, 0, 60, "CMYK(12,51,0,60)"},
		{30, 30, 30, 30, "CMYK(30,30,30,30)"},
		{0, 0, 0, 2, "CMYK(0,0,0,2)"},
	}
	for _, tc := range testCases {
		got := CMYK(tc.c, tc.m, tc.y, tc.k)
		if got != tc.want {
			t.Errorf("CMYK(%g, %g, %g, %g) = %q, want %q",
				tc.c, tc.m, tc.y, tc.k, got, tc.want)
		}
	}
}

func TestCMYKNearWhiteAndBlack(t *testing.T) {
	steps := []float64{-0.5, -0.25, 0, 0.25, 0.5}
	for _, dc := range steps {
		for _, dm := range steps {
			for _, dy := range steps {
				for _, dk := range steps {
					if got := CMYK(dc, dm, dy, dk); got != "White" {
						t.Fatalf("CMYK(%g, %g, %g, %g) = %q", dc, dm, dy, dk, got)
					}
					if got := CMYK(dc, dm, dy, 100+dk); got != "Black" {
						t.Fatalf("CMYK(%g, %g, %g, %g) = %q", dc, dm, dy, 100+dk, got)
					}
				}
			}
		}
	}
}

func TestRGB(t *testing.T) {
	testCases := []struct {
		r, g, b float64
		want    string
	}{
		{255, 255, 255, "White"},
		{250, 251, 255, "White"},
		{0, 0, 0, "Black"},
		{5, 5, 5, "Black"},
		{255, 0, 0, "Red"},
		{0, 255, 0, "Green"},
		{0, 0, 255, "Blue"},
		{255, 255, 0, "Yellow"},
		{255, 0, 255, "Magenta"},
		{0, 255, 255, "Cyan"},
		{40, 45, 50, "Dark Gray"},
		{128, 128, 128, "Medium Gray"},
		{126, 128, 130, "Medium Gray"},
		{128, 128, 130, "Light Gray"}, // average 128.67
		{190, 192, 194, "Light Gray"},
		{230, 232, 235, "Very Light Gray"},
		{200, 100, 50, "RGB(200,100,50)"},
		{12.5, 99.4, 200.6, "RGB(13,99,201)"},
	}
	for _, tc := range testCases {
		got := RGB(tc.r, tc.g, tc.b)
		if got != tc.want {
			t.Errorf("RGB(%g, %g, %g) = %q, want %q", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

// TestRuleOrder checks that specific rules take precedence over the broad
// bands which would also match.
func TestRuleOrder(t *testing.T) {
	// C=M=100 also satisfies the purple band.
	if got := CMYK(100, 100, 0, 0); got != "Blue" {
		t.Errorf("CMYK(100, 100, 0, 0) = %q, want Blue", got)
	}
	// M=Y=100 also satisfies the orange band.
	if got := CMYK(0, 100, 100, 0); got != "Red" {
		t.Errorf("CMYK(0, 100, 100, 0) = %q, want Red", got)
	}
	// K=100 with C,M,Y=0 is inside the gray precondition.
	if got := CMYK(0, 0, 0, 100); got != "Black" {
		t.Errorf("CMYK(0, 0, 0, 100) = %q, want Black", got)
	}
	// Rich black comes before the brown band.
	if got := CMYK(20, 40, 80, 90); got != "Rich Black" {
		t.Errorf("CMYK(20, 40, 80, 90) = %q, want Rich Black", got)
	}
	// Pure white is also neutral.
	if got := RGB(255, 255, 255); got != "White" {
		t.Errorf("RGB(255, 255, 255) = %q, want White", got)
	}
}

func TestIdempotent(t *testing.T) {
	for _, v := range [][4]float64{{0, 0, 0, 0}, {33, 44, 55, 66}, {1, 2, 3, 4}} {
		a := CMYK(v[0], v[1], v[2], v[3])
		b := CMYK(v[0], v[1], v[2], v[3])
		if a != b {
			t.Errorf("CMYK%v: %q != %q", v, a, b)
		}
		a = RGB(v[0], v[1], v[2])
		b = RGB(v[0], v[1], v[2])
		if a != b {
			t.Errorf("RGB%v: %q != %q", v[:3], a, b)
		}
	}
}

func FuzzCMYK(f *testing.F) {
	f.Add(0.0, 0.0, 0.0, 0.0)
	f.Add(100.0, 100.0, 0.0, 0.0)
	f.Add(42.1, 13.7, 99.9, 50.0)
	f.Fuzz(func(t *testing.T, c, m, y, k float64) {
		if CMYK(c, m, y, k) == "" {
			t.Errorf("CMYK(%g, %g, %g, %g) is empty", c, m, y, k)
		}
	})
}
