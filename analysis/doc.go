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

// Package analysis turns the page boxes and the ink inventory of the first
// page of a PDF file into an analysis [Record].
//
// A Record can be printed as a text report ([Record.WriteReport]), or
// projected into the [Structured] form which is written as JSON or XML
// ([WriteJSON], [WriteXML], [ExportFile]).  An [Analyzer] opens documents,
// runs the content interpreter and builds the records, either for one file
// or for a batch of files in parallel.
//
// Page boxes are converted as follows:
//
//   - The MediaBox is always reported.
//   - If no TrimBox is present, the MediaBox is used in its place and
//     [Record.HasTrimBox] is false.
//   - The BleedBox is reported only if present.
//   - The CropBox is reported only if present and different from the
//     MediaBox, up to a tolerance of 0.001 points.
package analysis
