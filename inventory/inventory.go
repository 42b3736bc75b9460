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

// Package inventory collects the inks used on a page.
//
// A [Collector] consumes the drawing events of one page and records every
// distinct process color, every spot ink together with the line widths it
// is stroked with, and the first spot ink which belongs to a given
// vocabulary of die-cut names.
//
// Process colors are canonicalized before they are stored: CMYK values are
// converted to percentages and rounded to one decimal, RGB values are
// converted to the range 0-255 and rounded to integers.  DeviceGray colors
// are recorded as CMYK colors with only a black component.  Two colors are
// the same if their canonical forms are equal.
package inventory

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/preflight/contentstream"
	"seehuhn.de/go/preflight/spot"
)

// CMYK is a process color, given as percentages rounded to one decimal.
type CMYK struct {
	C, M, Y, K float64
}

// RGB is a process color, with channels in the range 0-255 rounded to
// integers.
type RGB struct {
	R, G, B float64
}

// DieCut reports the outcome of the die-cut search.
// If Found is true, ColorName is the spot ink which matched the vocabulary.
type DieCut struct {
	Found     bool
	ColorName string
}

// A Collector records the inks used by the drawing events of one page.
// A Collector is not safe for concurrent use.
type Collector struct {
	vocab spot.Vocabulary

	cmyk   map[CMYK]struct{}
	rgb    map[RGB]struct{}
	spots  map[string]struct{}
	widths map[string]map[float64]struct{}
	dieCut DieCut
	events int
}

// New returns a collector which uses v to recognize die-cut inks.
// If v is nil, no die-cut ink is ever found.
func New(v spot.Vocabulary) *Collector {
	return &Collector{
		vocab:  v,
		cmyk:   make(map[CMYK]struct{}),
		rgb:    make(map[RGB]struct{}),
		spots:  make(map[string]struct{}),
		widths: make(map[string]map[float64]struct{}),
	}
}

// Consume records the colors of one drawing event.
// The stroking color is recorded together with the line width of the event,
// the fill color with width 0.
func (c *Collector) Consume(ev contentstream.Event) {
	if ev.Kind != contentstream.KindPath {
		return
	}
	c.events++
	if ev.Stroke != nil {
		c.add(ev.Stroke, ev.LineWidth)
	}
	if ev.Fill != nil {
		c.add(ev.Fill, 0)
	}
}

// Paint is like Consume, but has the signature of the
// [contentstream.Interpreter] callback.  The returned error is always nil.
func (c *Collector) Paint(ev contentstream.Event) error {
	c.Consume(ev)
	return nil
}

func (c *Collector) add(col *contentstream.Color, lineWidth float64) {
	v := col.Values
	switch col.Family {
	case contentstream.Separation:
		c.addSpot(col.Colorant, lineWidth)
	case contentstream.DeviceCMYK:
		if len(v) != 4 {
			return
		}
		c.cmyk[CMYK{
			C: round1(v[0] * 100),
			M: round1(v[1] * 100),
			Y: round1(v[2] * 100),
			K: round1(v[3] * 100),
		}] = struct{}{}
	case contentstream.DeviceRGB:
		if len(v) != 3 {
			return
		}
		c.rgb[RGB{
			R: math.Round(v[0] * 255),
			G: math.Round(v[1] * 255),
			B: math.Round(v[2] * 255),
		}] = struct{}{}
	case contentstream.DeviceGray:
		if len(v) != 1 {
			return
		}
		c.cmyk[CMYK{K: round1((1 - v[0]) * 100)}] = struct{}{}
	}
}

func (c *Collector) addSpot(name string, lineWidth float64) {
	if name == "" {
		return
	}
	c.spots[name] = struct{}{}

	if lineWidth > 0 {
		w := c.widths[name]
		if w == nil {
			w = make(map[float64]struct{})
			c.widths[name] = w
		}
		w[lineWidth] = struct{}{}
	}

	// The first match is kept, later matches are ignored.
	if !c.dieCut.Found && c.vocab != nil && c.vocab.Contains(name) {
		c.dieCut = DieCut{Found: true, ColorName: name}
	}
}

// round1 rounds x to one decimal, with ties away from zero.
func round1(x float64) float64 {
	r := math.Round(x*10) / 10
	if r == 0 {
		return 0 // avoid negative zero
	}
	return r
}

// CMYK returns the distinct CMYK colors, sorted by K, C, M and Y.
func (c *Collector) CMYK() []CMYK {
	res := slices.Collect(maps.Keys(c.cmyk))
	slices.SortFunc(res, compareCMYK)
	return res
}

func compareCMYK(a, b CMYK) int {
	for _, d := range [4]float64{a.K - b.K, a.C - b.C, a.M - b.M, a.Y - b.Y} {
		if d < 0 {
			return -1
		} else if d > 0 {
			return 1
		}
	}
	return 0
}

// RGB returns the distinct RGB colors, sorted by R, G and B.
func (c *Collector) RGB() []RGB {
	res := slices.Collect(maps.Keys(c.rgb))
	slices.SortFunc(res, func(a, b RGB) int {
		for _, d := range [3]float64{a.R - b.R, a.G - b.G, a.B - b.B} {
			if d < 0 {
				return -1
			} else if d > 0 {
				return 1
			}
		}
		return 0
	})
	return res
}

// Spots returns the names of all spot inks, in sorted order.
func (c *Collector) Spots() []string {
	return slices.Sorted(maps.Keys(c.spots))
}

// LineWidths returns the distinct line widths used to stroke the given
// spot ink, in increasing order.  The name is compared exactly.
func (c *Collector) LineWidths(name string) []float64 {
	w := c.widths[name]
	if len(w) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(w))
}

// AllLineWidths returns the line widths of all stroked spot inks.
// Spot inks which were only used for filling are not included.
func (c *Collector) AllLineWidths() map[string][]float64 {
	res := make(map[string][]float64, len(c.widths))
	for name := range c.widths {
		res[name] = c.LineWidths(name)
	}
	return res
}

// DieCut returns the result of the die-cut search.
func (c *Collector) DieCut() DieCut {
	return c.dieCut
}

// Events returns the number of path events consumed so far.
func (c *Collector) Events() int {
	return c.events
}
