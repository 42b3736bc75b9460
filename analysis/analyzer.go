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
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/preflight/contentstream"
	"seehuhn.de/go/preflight/inventory"
	"seehuhn.de/go/preflight/pdfsource"
	"seehuhn.de/go/preflight/spot"
)

// Document gives access to an opened document.
// [*pdfsource.Document] implements this interface.
type Document interface {
	Version() string
	PageCount() int
	Geometry(pageNo int) (*pdfsource.Boxes, error)
	Walk(pageNo int, paint func(contentstream.Event) error) error
}

// Source opens documents for analysis.
type Source interface {
	Open(path string) (Document, error)
}

// PDFSource opens PDF files using [pdfsource.Open].
type PDFSource struct {
	Options pdfsource.Options
}

// Open implements the [Source] interface.
func (s PDFSource) Open(path string) (Document, error) {
	doc, err := pdfsource.Open(path, s.Options)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// An Analyzer analyzes the first page of PDF files.
// The fields must not be changed while analyses are running.
type Analyzer struct {
	// Source opens the documents.  If this is nil, PDFSource{} is used.
	Source Source

	// Vocabulary is used to recognize die-cut inks.  If this is nil, no
	// die-cut ink is found.
	Vocabulary spot.Vocabulary

	// Logger receives one entry per analyzed file.  If this is nil,
	// nothing is logged.
	Logger logrus.FieldLogger

	// Now returns the analysis time.  If this is nil, time.Now is used.
	Now func() time.Time
}

func (a *Analyzer) source() Source {
	if a.Source == nil {
		return PDFSource{}
	}
	return a.Source
}

func (a *Analyzer) logger() logrus.FieldLogger {
	if a.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return a.Logger
}

func (a *Analyzer) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Analyze analyzes the first page of the file at path.
// Files which cannot be analyzed result in an invalid record.
func (a *Analyzer) Analyze(ctx context.Context, path string) *Record {
	start := a.now()
	log := a.logger().WithField("file", path)

	rec, c, err := a.analyze(ctx, path, start)
	elapsed := a.now().Sub(start)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"valid":   false,
			"elapsed": elapsed,
		}).Warn("cannot analyze file")
		rec = Invalid(path, err)
		rec.Time = start
		return rec
	}

	log.WithFields(logrus.Fields{
		"valid":   true,
		"events":  c.Events(),
		"spots":   len(rec.Spots),
		"dieCut":  rec.DieCut.ColorName,
		"elapsed": elapsed,
	}).Info("file analyzed")
	return rec
}

func (a *Analyzer) analyze(ctx context.Context, path string, start time.Time) (*Record, *inventory.Collector, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	doc, err := a.source().Open(path)
	if err != nil {
		return nil, nil, err
	}
	if doc.PageCount() == 0 {
		return nil, nil, &pdfsource.MalformedFileError{Path: path, Err: pdfsource.ErrNoPages}
	}

	boxes, err := doc.Geometry(1)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	c := inventory.New(a.Vocabulary)
	err = doc.Walk(1, func(ev contentstream.Event) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Consume(ev)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	meta := Meta{
		Path:      path,
		Time:      start,
		Version:   doc.Version(),
		PageCount: doc.PageCount(),
	}
	return Build(meta, Geometry(*boxes), c), c, nil
}

// AnalyzeAll analyzes several files in parallel, using at most the given
// number of workers.  If workers is zero or negative, one worker per CPU is
// used.  The records are returned in the order of the paths.
//
// Once ctx is cancelled, the remaining files are reported as invalid.
func (a *Analyzer) AnalyzeAll(ctx context.Context, paths []string, workers int) []*Record {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	res := make([]*Record, len(paths))
	jobs := make(chan int, len(paths))
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res[i] = a.Analyze(ctx, paths[i])
			}
		}()
	}
	wg.Wait()

	return res
}
