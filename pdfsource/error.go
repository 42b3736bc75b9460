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

package pdfsource

import (
	"errors"
)

// ErrNoPages is returned when a document has no pages.
var ErrNoPages = errors.New("document has no pages")

// MalformedFileError indicates that a file could not be parsed as a PDF
// file, or that its page structure is damaged.
type MalformedFileError struct {
	Path string // empty for documents not read from a file
	Err  error
}

func (err *MalformedFileError) Error() string {
	head := ""
	if err.Path != "" {
		head = err.Path + ": "
	}
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return head + "not a valid PDF file" + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// IsMalformed reports whether err is, or wraps, a [MalformedFileError].
func IsMalformed(err error) bool {
	var e *MalformedFileError
	return errors.As(err, &e)
}
