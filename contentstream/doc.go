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

// Package contentstream interprets PDF content streams, as far as needed to
// find out which colors are used for painting paths.
//
// The [Interpreter] keeps track of the stroking and nonstroking colors, the
// line width and the graphics state stack.  Every operator which ends a
// path, including n, results in one [Event] carrying both active colors.
// Event.Stroked and Event.Filled record how the path was painted.  With
// [Interpreter.PaintedOnly] set, only the colors used for painting are
// reported and n produces no event.
//
// Named color spaces are looked up in the /ColorSpace resource dictionary.
// Form XObjects are interpreted recursively, using their own resources if
// present.  Text, images and shadings are ignored.
//
// PDF 2.0 sections: 8.2 8.4 8.6 8.10
package contentstream
