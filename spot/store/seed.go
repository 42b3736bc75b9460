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

package store

import "seehuhn.de/go/preflight/spot"

// Names are stored once per case-folded key, so capitalization variants
// like "CUTCONTOUR" need no separate entry.
var defaultEntries = []spot.Entry{
	{Name: "CutContour", Category: spot.DieCut, Description: "Standard die-cut contour line"},
	{Name: "Cut Contour", Category: spot.DieCut, Description: "Spaced die-cut contour"},
	{Name: "Stans", Category: spot.DieCut, Description: "Standard stans (Dutch/German die-cut)"},
	{Name: "Stans!", Category: spot.DieCut, Description: "Stans with exclamation"},
	{Name: "KissCut", Category: spot.DieCut, Description: "Kiss cut (partial cut)"},
	{Name: "KissCutt", Category: spot.DieCut, Description: "Kiss cut, common misspelling"},
	{Name: "Kiss Cut", Category: spot.DieCut, Description: "Spaced kiss cut"},
	{Name: "Die-Cut", Category: spot.DieCut, Description: "Hyphenated die-cut"},
	{Name: "DieCut", Category: spot.DieCut, Description: "Combined die-cut"},
	{Name: "Die Cut", Category: spot.DieCut, Description: "Spaced die-cut"},
	{Name: "Thru-cut", Category: spot.DieCut, Description: "Through cut"},
	{Name: "ThruCut", Category: spot.DieCut, Description: "Combined through cut"},
	{Name: "Thru Cut", Category: spot.DieCut, Description: "Spaced through cut"},
	{Name: "Through Cut", Category: spot.DieCut, Description: "Full through cut"},
	{Name: "Cut", Category: spot.DieCut, Description: "Simple cut"},
	{Name: "Cutting", Category: spot.DieCut, Description: "Cutting line"},

	{Name: "Foil", Category: spot.Foil, Description: "Generic foil stamping"},
	{Name: "Hot Foil", Category: spot.Foil, Description: "Hot foil stamping"},
	{Name: "HotFoil", Category: spot.Foil, Description: "Combined hot foil"},
	{Name: "Gold Foil", Category: spot.Foil, Description: "Gold foil stamping"},
	{Name: "Silver Foil", Category: spot.Foil, Description: "Silver foil stamping"},
	{Name: "Metallic", Category: spot.Foil, Description: "Metallic finish"},
	{Name: "Hot Stamp", Category: spot.Foil, Description: "Hot stamping"},
	{Name: "HotStamp", Category: spot.Foil, Description: "Combined hot stamp"},

	{Name: "Emboss", Category: spot.Emboss, Description: "Embossing"},
	{Name: "Embossing", Category: spot.Emboss, Description: "Embossing process"},
	{Name: "Deboss", Category: spot.Emboss, Description: "Debossing"},
	{Name: "Debossing", Category: spot.Emboss, Description: "Debossing process"},
	{Name: "Blind Emboss", Category: spot.Emboss, Description: "Blind embossing"},
	{Name: "BlindEmboss", Category: spot.Emboss, Description: "Combined blind emboss"},

	{Name: "Varnish", Category: spot.Varnish, Description: "Varnish coating"},
	{Name: "UV", Category: spot.Varnish, Description: "UV coating"},
	{Name: "Spot UV", Category: spot.Varnish, Description: "Spot UV coating"},
	{Name: "SpotUV", Category: spot.Varnish, Description: "Combined spot UV"},
	{Name: "UV Varnish", Category: spot.Varnish, Description: "UV varnish coating"},
	{Name: "Gloss", Category: spot.Varnish, Description: "Gloss finish"},
	{Name: "Matt", Category: spot.Varnish, Description: "Matte finish"},
	{Name: "Matte", Category: spot.Varnish, Description: "Matte finish variant"},
	{Name: "Satin", Category: spot.Varnish, Description: "Satin finish"},

	{Name: "Registration", Category: spot.Registration, Description: "Registration marks"},
	{Name: "Crop Marks", Category: spot.Registration, Description: "Crop marks"},
	{Name: "CropMarks", Category: spot.Registration, Description: "Combined crop marks"},
	{Name: "Trim Marks", Category: spot.Registration, Description: "Trim marks"},
	{Name: "TrimMarks", Category: spot.Registration, Description: "Combined trim marks"},
	{Name: "Bleed", Category: spot.Registration, Description: "Bleed area"},

	{Name: "Perf", Category: spot.Perforation, Description: "Perforation"},
	{Name: "Perforation", Category: spot.Perforation, Description: "Full perforation"},
	{Name: "Perforated", Category: spot.Perforation, Description: "Perforated line"},

	{Name: "Score", Category: spot.Scoring, Description: "Score line"},
	{Name: "Scoring", Category: spot.Scoring, Description: "Scoring process"},
	{Name: "Crease", Category: spot.Scoring, Description: "Crease line"},
	{Name: "Creasing", Category: spot.Scoring, Description: "Creasing process"},

	{Name: "Window", Category: spot.Cutout, Description: "Window cutout"},
	{Name: "Cutout", Category: spot.Cutout, Description: "Generic cutout"},
	{Name: "Cut Out", Category: spot.Cutout, Description: "Spaced cutout"},

	{Name: "PANTONE Red 032 C", Category: spot.Pantone, Description: "Pantone Red", PantoneNumber: "032 C"},
	{Name: "PANTONE Blue 072 C", Category: spot.Pantone, Description: "Pantone Blue", PantoneNumber: "072 C"},
	{Name: "PANTONE Yellow C", Category: spot.Pantone, Description: "Pantone Yellow", PantoneNumber: "Yellow C"},
	{Name: "PANTONE Black C", Category: spot.Pantone, Description: "Pantone Black", PantoneNumber: "Black C"},
	{Name: "PANTONE White C", Category: spot.Pantone, Description: "Pantone White", PantoneNumber: "White C"},
	{Name: "PANTONE Reflex Blue C", Category: spot.Pantone, Description: "Pantone Reflex Blue", PantoneNumber: "Reflex Blue C"},
	{Name: "PANTONE Cool Gray 11 C", Category: spot.Pantone, Description: "Pantone Cool Gray", PantoneNumber: "Cool Gray 11 C"},
	{Name: "PANTONE Warm Gray 11 C", Category: spot.Pantone, Description: "Pantone Warm Gray", PantoneNumber: "Warm Gray 11 C"},
	{Name: "PANTONE 485 C", Category: spot.Pantone, Description: "Pantone Red 485", PantoneNumber: "485 C"},
	{Name: "PANTONE 286 C", Category: spot.Pantone, Description: "Pantone Blue 286", PantoneNumber: "286 C"},
	{Name: "PANTONE 348 C", Category: spot.Pantone, Description: "Pantone Green 348", PantoneNumber: "348 C"},
	{Name: "PANTONE 802 C", Category: spot.Pantone, Description: "Pantone Brown 802", PantoneNumber: "802 C"},
	{Name: "PANTONE Purple C", Category: spot.Pantone, Description: "Pantone Purple", PantoneNumber: "Purple C"},
	{Name: "PANTONE Orange 021 C", Category: spot.Pantone, Description: "Pantone Orange", PantoneNumber: "Orange 021 C"},
	{Name: "PANTONE Process Blue C", Category: spot.Pantone, Description: "Pantone Process Blue", PantoneNumber: "Process Blue C"},
	{Name: "Red 032", Category: spot.Pantone, Description: "Simplified Pantone Red", PantoneNumber: "032"},
	{Name: "Blue 072", Category: spot.Pantone, Description: "Simplified Pantone Blue", PantoneNumber: "072"},
	{Name: "485", Category: spot.Pantone, Description: "Pantone number only", PantoneNumber: "485"},
	{Name: "286", Category: spot.Pantone, Description: "Pantone number only", PantoneNumber: "286"},
	{Name: "348", Category: spot.Pantone, Description: "Pantone number only", PantoneNumber: "348"},
}
