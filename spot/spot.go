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

// Package spot describes named spot inks and the vocabulary of ink names
// which mark finishing steps such as die cutting, foil or varnish.
//
// Two different equality relations are used for spot names.  In the ink
// inventory of a page, names are compared exactly, because the capitalization
// found in the file is part of what is reported.  Lookups in a vocabulary,
// and the die-cut match, ignore case.  [SameName] implements the first
// relation, [EqualFold] and [Key] the second one.
package spot

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Category classifies the purpose of a spot ink.
type Category string

// These are the categories known to the vocabulary.
const (
	DieCut       Category = "DieCut"
	Foil         Category = "Foil"
	Emboss       Category = "Emboss"
	Varnish      Category = "Varnish"
	Registration Category = "Registration"
	Perforation  Category = "Perforation"
	Scoring      Category = "Scoring"
	Cutout       Category = "Cutout"
	Pantone      Category = "Pantone"
	Unknown      Category = "Unknown"
)

// Categories lists all categories, in the order used for display.
var Categories = []Category{
	DieCut, Foil, Emboss, Varnish, Registration,
	Perforation, Scoring, Cutout, Pantone, Unknown,
}

// ErrUnknownCategory is returned by [ParseCategory] for unrecognized input.
var ErrUnknownCategory = errors.New("unknown spot color category")

// ParseCategory converts a category name into a Category.
// The comparison ignores case, so that "diecut" and "DIECUT" both give
// [DieCut].
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// keyword groups for Categorize, tried in order
var categoryKeywords = []struct {
	cat      Category
	keywords []string
}{
	{DieCut, []string{"cut", "stans", "die"}},
	{Pantone, []string{"pantone"}},
	{Foil, []string{"foil", "metallic"}},
	{Emboss, []string{"emboss", "deboss"}},
	{Varnish, []string{"varnish", "uv", "gloss"}},
	{Registration, []string{"registration", "crop", "trim"}},
	{Perforation, []string{"perf"}},
	{Scoring, []string{"score", "crease"}},
}

// Categorize guesses the category of a spot ink from its name.
// Names which do not contain any of the known keywords give [Unknown].
func Categorize(name string) Category {
	key := Key(name)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(key, kw) {
				return group.cat
			}
		}
	}
	return Unknown
}

// LooksLikeDieCut reports whether the name of a spot ink suggests a cutting
// line.
func LooksLikeDieCut(name string) bool {
	return Categorize(name) == DieCut
}

// Entry is one record of the spot color vocabulary.
type Entry struct {
	Name          string
	Category      Category
	Description   string
	PantoneNumber string // empty except for Pantone entries
}

// Vocabulary is a set of spot ink names.
// Lookups must ignore case.
type Vocabulary interface {
	Contains(name string) bool
}

// Key returns the comparison key used for case-insensitive lookups.
// The string is first brought to Unicode normalization form C, and then
// case folded.
func Key(name string) string {
	// A cases.Caser keeps state and must not be shared between goroutines.
	return cases.Fold().String(norm.NFC.String(name))
}

// EqualFold reports whether the two names refer to the same vocabulary
// entry.
func EqualFold(a, b string) bool {
	return Key(a) == Key(b)
}

// SameName reports whether two names denote the same ink in an inventory.
// The comparison is exact.
func SameName(a, b string) bool {
	return a == b
}

// Set is an immutable, case-insensitive set of spot ink names.
// A Set can be used concurrently by several goroutines.
type Set struct {
	keys map[string]struct{}
}

// NewSet returns a set containing the given names.
func NewSet(names ...string) *Set {
	s := &Set{keys: make(map[string]struct{}, len(names))}
	for _, name := range names {
		s.keys[Key(name)] = struct{}{}
	}
	return s
}

// Contains implements the [Vocabulary] interface.
func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.keys[Key(name)]
	return ok
}

// Len returns the number of distinct entries in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
