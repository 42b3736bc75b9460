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

// Package colorname turns process color values into descriptive names.
//
// The names are meant for a human reading a preflight report, not for color
// management.  Both functions evaluate an ordered list of rules and return
// the name of the first rule which matches.  The order is part of the
// contract: the narrow rules for pure, primary and secondary colors come
// before the broad bands, so that for example C=M=100 is reported as "Blue"
// even though it would also fall into the purple band.
//
// CMYK values are percentages in the range 0 to 100.  The rules are, in
// order ("near" means within 0.5 percentage points):
//  1. White (all channels near 0), Black (C, M, Y near 0, K near 100)
//  2. Cyan, Magenta, Yellow (one channel near 100, the others near 0)
//  3. Blue (C+M), Red (M+Y), Green (C+Y)
//  4. Rich Black (K >= 80 and one of C, M, Y above 10)
//  5. Light, Medium, Dark and Very Dark Gray (C, M, Y <= 5 and K > 5)
//  6. Brown, 7. Orange, 8. Pink, 9. Purple
//  10. "CMYK(c,m,y,k)" with the values rounded to integers
//
// RGB values are in the range 0 to 255.  The rules are, in order ("near"
// means within 5):
//  1. White, Black
//  2. Red, Green, Blue
//  3. Yellow (R+G), Magenta (R+B), Cyan (G+B)
//  4. Dark, Medium, Light and Very Light Gray (channels differ by at most 10)
//  5. "RGB(r,g,b)" with the values rounded to integers
package colorname
