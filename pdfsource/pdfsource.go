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

// Package pdfsource opens PDF files and gives access to the page boxes and
// the painted paths of individual pages.
//
// Parsing, decryption and stream decoding are done by pdfcpu.  The content
// of a page is interpreted with [contentstream.Interpreter].
package pdfsource

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/preflight/contentstream"
)

func init() {
	// Do not create a pdfcpu configuration directory in the user's home.
	api.DisableConfigDir()
}

// Options control how documents are opened.
type Options struct {
	// Password is used for encrypted documents.
	Password string
}

// Boxes holds the page boxes of a page, in PDF points.
// Entries are nil if the corresponding box is not present.
type Boxes struct {
	Media *rect.Rect
	Crop  *rect.Rect
	Trim  *rect.Rect
	Bleed *rect.Rect
}

// Document is an opened PDF document.
type Document struct {
	ctx *model.Context
}

// Open reads the PDF file at path.
func Open(path string, opt Options) (*Document, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	doc, err := Read(fd, opt)
	if e, ok := err.(*MalformedFileError); ok {
		e.Path = path
	}
	return doc, err
}

// Read reads a PDF document from rs.
// Every failure to parse the document is reported as a [MalformedFileError].
func Read(rs io.ReadSeeker, opt Options) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if opt.Password != "" {
		conf.UserPW = opt.Password
		conf.OwnerPW = opt.Password
	}

	ctx, err := api.ReadAndValidate(rs, conf)
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	return &Document{ctx: ctx}, nil
}

// Version returns the PDF version of the document, for example "1.7".
func (d *Document) Version() string {
	return d.ctx.VersionString()
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

func (d *Document) page(pageNo int) (types.Dict, *model.InheritedPageAttrs, error) {
	if d.ctx.PageCount == 0 {
		return nil, nil, ErrNoPages
	}
	if pageNo < 1 || pageNo > d.ctx.PageCount {
		return nil, nil, fmt.Errorf("page %d out of range 1-%d", pageNo, d.ctx.PageCount)
	}
	dict, _, inh, err := d.ctx.PageDict(pageNo, true)
	if err != nil {
		return nil, nil, &MalformedFileError{Err: fmt.Errorf("page %d: %w", pageNo, err)}
	}
	if dict == nil {
		return nil, nil, &MalformedFileError{Err: fmt.Errorf("page %d: missing page dictionary", pageNo)}
	}
	return dict, inh, nil
}

// Geometry returns the page boxes of the given page.
// Pages are numbered starting from 1.
func (d *Document) Geometry(pageNo int) (*Boxes, error) {
	dict, inh, err := d.page(pageNo)
	if err != nil {
		return nil, err
	}

	res := &Boxes{
		Trim:  d.box(dict, "TrimBox"),
		Bleed: d.box(dict, "BleedBox"),
	}
	if inh != nil {
		res.Media = fromRectangle(inh.MediaBox)
		res.Crop = fromRectangle(inh.CropBox)
	}
	if res.Media == nil {
		res.Media = d.box(dict, "MediaBox")
	}
	if res.Crop == nil {
		res.Crop = d.box(dict, "CropBox")
	}
	if res.Media == nil {
		return nil, &MalformedFileError{Err: fmt.Errorf("page %d: missing MediaBox", pageNo)}
	}
	return res, nil
}

// Walk interprets the content of the given page and calls paint for every
// painted path.  Errors returned by paint are passed through.
func (d *Document) Walk(pageNo int, paint func(contentstream.Event) error) error {
	dict, inh, err := d.page(pageNo)
	if err != nil {
		return err
	}

	var resources types.Dict
	if inh != nil {
		resources = inh.Resources
	}
	if resources == nil {
		if obj, ok := dict.Find("Resources"); ok {
			if obj, err := d.ctx.Dereference(obj); err == nil {
				resources, _ = obj.(types.Dict)
			}
		}
	}

	contents, _ := dict.Find("Contents")
	in := contentstream.NewInterpreter(d.ctx, paint)
	return in.RunContents(contents, resources)
}

// box reads a rectangle entry from a page dictionary.
func (d *Document) box(dict types.Dict, key string) *rect.Rect {
	obj, ok := dict.Find(key)
	if !ok {
		return nil
	}
	obj, err := d.ctx.Dereference(obj)
	if err != nil {
		return nil
	}
	arr, ok := obj.(types.Array)
	if !ok || len(arr) != 4 {
		return nil
	}
	var x [4]float64
	for i, elem := range arr {
		elem, err := d.ctx.Dereference(elem)
		if err != nil {
			return nil
		}
		switch v := elem.(type) {
		case types.Integer:
			x[i] = float64(v)
		case types.Float:
			x[i] = float64(v)
		default:
			return nil
		}
	}
	return normalize(x[0], x[1], x[2], x[3])
}

func fromRectangle(r *types.Rectangle) *rect.Rect {
	if r == nil {
		return nil
	}
	return normalize(r.LL.X, r.LL.Y, r.UR.X, r.UR.Y)
}

// normalize returns the rectangle with corners (x1, y1) and (x2, y2), such
// that the lower left corner comes first.
func normalize(x1, y1, x2, y2 float64) *rect.Rect {
	return &rect.Rect{
		LLx: min(x1, x2),
		LLy: min(y1, y2),
		URx: max(x1, x2),
		URy: max(y1, y2),
	}
}
