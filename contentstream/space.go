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

package contentstream

import (
	"slices"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Family identifies the kind of color space a color belongs to.
// Only the families which are relevant for ink inventories are
// distinguished, all others are reported as [Other].
type Family int

// These are the supported color space families.
const (
	Other Family = iota
	DeviceGray
	DeviceRGB
	DeviceCMYK
	Separation
)

func (f Family) String() string {
	switch f {
	case DeviceGray:
		return "DeviceGray"
	case DeviceRGB:
		return "DeviceRGB"
	case DeviceCMYK:
		return "DeviceCMYK"
	case Separation:
		return "Separation"
	default:
		return "Other"
	}
}

// Color is a color together with its color space.
type Color struct {
	Family Family

	// Values holds the color components, each in the range from 0 to 1.
	Values []float64

	// Colorant is the name of the ink of a Separation color space,
	// and empty for all other families.
	Colorant string
}

func (c *Color) clone() *Color {
	if c == nil {
		return nil
	}
	res := *c
	res.Values = slices.Clone(c.Values)
	return &res
}

// space is a color space, as far as it matters for the interpreter.
type space struct {
	family   Family
	colorant string
}

var (
	spaceGray = space{family: DeviceGray}
	spaceRGB  = space{family: DeviceRGB}
	spaceCMYK = space{family: DeviceCMYK}
	spaceNone = space{family: Other}
)

// channels returns the number of color components, or -1 if any number is
// accepted.
func (s space) channels() int {
	switch s.family {
	case DeviceGray, Separation:
		return 1
	case DeviceRGB:
		return 3
	case DeviceCMYK:
		return 4
	default:
		return -1
	}
}

// initial returns the initial color of the space, which is set by the CS
// and cs operators.
func (s space) initial() *Color {
	c := &Color{Family: s.family, Colorant: s.colorant}
	switch s.family {
	case DeviceGray:
		c.Values = []float64{0}
	case DeviceRGB:
		c.Values = []float64{0, 0, 0}
	case DeviceCMYK:
		c.Values = []float64{0, 0, 0, 1}
	case Separation:
		c.Values = []float64{1}
	}
	return c
}

// deviceSpace maps the names of the device color spaces (including the
// abbreviations used in inline images) to color spaces.
func deviceSpace(name types.Name) (space, bool) {
	switch name {
	case "DeviceGray", "G":
		return spaceGray, true
	case "DeviceRGB", "RGB":
		return spaceRGB, true
	case "DeviceCMYK", "CMYK":
		return spaceCMYK, true
	case "Pattern":
		return spaceNone, true
	}
	return space{}, false
}

// decodeSpace interprets a color space object found in a resource
// dictionary.  The function never fails: color spaces which cannot be
// understood are mapped to [Other].
func decodeSpace(r Resolver, obj types.Object) space {
	obj, err := r.Dereference(obj)
	if err != nil {
		return spaceNone
	}

	switch obj := obj.(type) {
	case types.Name:
		if s, ok := deviceSpace(obj); ok {
			return s
		}
	case types.Array:
		if len(obj) == 0 {
			break
		}
		family, err := r.Dereference(obj[0])
		if err != nil {
			break
		}
		name, _ := family.(types.Name)
		switch name {
		case "Separation":
			// [/Separation name alternateSpace tintTransform]
			if len(obj) < 2 {
				break
			}
			colorant, err := r.Dereference(obj[1])
			if err != nil {
				break
			}
			if n, ok := colorant.(types.Name); ok {
				return space{family: Separation, colorant: decodeName(string(n))}
			}
		case "DeviceGray", "DeviceRGB", "DeviceCMYK":
			s, _ := deviceSpace(name)
			return s
		}
	}
	return spaceNone
}

// decodeName replaces "#xx" escapes in a name read by the pdfcpu parser.
// A '#' which is not followed by two hex digits is kept.
func decodeName(s string) string {
	if !strings.Contains(s, "#") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && i+2 < len(s) {
			hi, lo := hexDigit(s[i+1]), hexDigit(s[i+2])
			if hi != 255 && lo != 255 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
