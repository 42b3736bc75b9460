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
	"fmt"
	"math"
)

const (
	cmykTolerance = 0.5
	rgbTolerance  = 5
)

// rule is one step of a classification ladder.
type rule[T any] struct {
	name  string
	match func(T) bool
}

type cmyk struct{ c, m, y, k float64 }

type rgb struct{ r, g, b float64 }

func near(x, target, tol float64) bool {
	return math.Abs(x-target) <= tol
}

// nearCMYK reports whether all four channels are close to the given values.
func nearCMYK(c, m, y, k float64) func(cmyk) bool {
	return func(x cmyk) bool {
		return near(x.c, c, cmykTolerance) &&
			near(x.m, m, cmykTolerance) &&
			near(x.y, y, cmykTolerance) &&
			near(x.k, k, cmykTolerance)
	}
}

func nearRGB(r, g, b float64) func(rgb) bool {
	return func(x rgb) bool {
		return near(x.r, r, rgbTolerance) &&
			near(x.g, g, rgbTolerance) &&
			near(x.b, b, rgbTolerance)
	}
}

// cmykGray is the precondition of the gray ladder.
func cmykGray(x cmyk) bool {
	return x.c <= 5 && x.m <= 5 && x.y <= 5 && x.k > 5
}

var cmykRules = []rule[cmyk]{
	{"White", nearCMYK(0, 0, 0, 0)},
	{"Black", nearCMYK(0, 0, 0, 100)},

	{"Cyan", nearCMYK(100, 0, 0, 0)},
	{"Magenta", nearCMYK(0, 100, 0, 0)},
	{"Yellow", nearCMYK(0, 0, 100, 0)},

	{"Blue", nearCMYK(100, 100, 0, 0)},
	{"Red", nearCMYK(0, 100, 100, 0)},
	{"Green", nearCMYK(100, 0, 100, 0)},

	{"Rich Black", func(x cmyk) bool {
		return x.k >= 80 && (x.c > 10 || x.m > 10 || x.y > 10)
	}},

	{"Light Gray", func(x cmyk) bool { return cmykGray(x) && x.k <= 25 }},
	{"Medium Gray", func(x cmyk) bool { return cmykGray(x) && x.k <= 50 }},
	{"Dark Gray", func(x cmyk) bool { return cmykGray(x) && x.k <= 75 }},
	{"Very Dark Gray", cmykGray},

	{"Brown", func(x cmyk) bool {
		return x.y >= 60 && x.k >= 30 && x.m >= 20 && x.c <= 30
	}},
	{"Orange", func(x cmyk) bool {
		return x.y >= 80 && x.m >= 60 && x.c <= 20 && x.k <= 20
	}},
	{"Pink", func(x cmyk) bool {
		return x.m >= 50 && x.c <= 30 && x.y <= 30 && x.k <= 20
	}},
	{"Purple", func(x cmyk) bool {
		return x.m >= 60 && x.c >= 40 && x.y <= 30
	}},
}

// rgbNeutral is the precondition of the RGB gray ladder.
func rgbNeutral(x rgb) bool {
	return math.Abs(x.r-x.g) <= 10 &&
		math.Abs(x.g-x.b) <= 10 &&
		math.Abs(x.r-x.b) <= 10
}

func (x rgb) average() float64 {
	return (x.r + x.g + x.b) / 3
}

var rgbRules = []rule[rgb]{
	{"White", nearRGB(255, 255, 255)},
	{"Black", nearRGB(0, 0, 0)},

	{"Red", nearRGB(255, 0, 0)},
	{"Green", nearRGB(0, 255, 0)},
	{"Blue", nearRGB(0, 0, 255)},

	{"Yellow", nearRGB(255, 255, 0)},
	{"Magenta", nearRGB(255, 0, 255)},
	{"Cyan", nearRGB(0, 255, 255)},

	{"Dark Gray", func(x rgb) bool { return rgbNeutral(x) && x.average() <= 64 }},
	{"Medium Gray", func(x rgb) bool { return rgbNeutral(x) && x.average() <= 128 }},
	{"Light Gray", func(x rgb) bool { return rgbNeutral(x) && x.average() <= 192 }},
	{"Very Light Gray", rgbNeutral},
}

func classify[T any](rules []rule[T], x T) (string, bool) {
	for _, r := range rules {
		if r.match(x) {
			return r.name, true
		}
	}
	return "", false
}

// CMYK returns a descriptive name for a CMYK color.
// The channel values are percentages in the range from 0 to 100.
func CMYK(c, m, y, k float64) string {
	if name, ok := classify(cmykRules, cmyk{c, m, y, k}); ok {
		return name
	}
	return fmt.Sprintf("CMYK(%.0f,%.0f,%.0f,%.0f)",
		math.Round(c), math.Round(m), math.Round(y), math.Round(k))
}

// RGB returns a descriptive name for an RGB color.
// The channel values are in the range from 0 to 255.
func RGB(r, g, b float64) string {
	if name, ok := classify(rgbRules, rgb{r, g, b}); ok {
		return name
	}
	return fmt.Sprintf("RGB(%.0f,%.0f,%.0f)",
		math.Round(r), math.Round(g), math.Round(b))
}
