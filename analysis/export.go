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

package analysis

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an output format for analysis records.
type Format string

// These are the supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ErrFormat indicates an unsupported output format.
var ErrFormat = errors.New("unsupported output format")

// ParseFormat converts a format name like "json" into a [Format].
// Case is ignored.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatXML:
		return f, nil
	case "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w %q", ErrFormat, s)
}

// Ext returns the file name extension used for the format, without the
// leading dot.
func (f Format) Ext() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s *Structured) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteXML writes s as an indented XML document with root element
// <PdfAnalysis>.
func WriteXML(w io.Writer, s *Structured) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Write writes the record to w in the given format.
func (r *Record) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return r.WriteReport(w)
	case FormatJSON:
		return WriteJSON(w, r.Structured())
	case FormatXML:
		return WriteXML(w, r.Structured())
	}
	return fmt.Errorf("%w %q", ErrFormat, string(f))
}

// ExportPath returns the name of the export file for the record: the path
// of the analyzed file with the extension replaced by the format's.
func ExportPath(r *Record, f Format) string {
	base := strings.TrimSuffix(r.Path, filepath.Ext(r.Path))
	return base + "." + f.Ext()
}

// ExportFile writes the record next to the analyzed file, and returns the
// name of the file written.
func ExportFile(r *Record, f Format) (path string, err error) {
	f, err = ParseFormat(string(f))
	if err != nil {
		return "", err
	}
	path = ExportPath(r, f)

	fd, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil && err2 != nil {
			err = err2
		}
		if err != nil {
			os.Remove(path)
			path = ""
		}
	}()

	err = r.Write(fd, f)
	return path, err
}
