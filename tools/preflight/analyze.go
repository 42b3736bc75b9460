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

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/preflight/analysis"
	"seehuhn.de/go/preflight/pdfsource"
	"seehuhn.de/go/preflight/spot"
)

func (a *app) analyzeCommand() *cobra.Command {
	var format string
	var dieCutOnly bool

	cmd := &cobra.Command{
		Use:   "analyze [flags] [file.pdf...]",
		Short: "analyze PDF files and print the results",
		Long: `Analyze the first page of each PDF file and print the results.

If no file is given and stdin is a terminal, the name of a file is read
from the terminal.

Examples:
  preflight analyze card.pdf
  preflight analyze --format json *.pdf
  preflight analyze --diecut-only box.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := analysis.ParseFormat(format)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				path, err := a.promptPath(cmd)
				if err != nil {
					return err
				}
				args = []string{path}
			}

			recs, err := a.analyzeAll(cmd.Context(), args, dieCutOnly)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, rec := range recs {
				if i > 0 && f == analysis.FormatText {
					fmt.Fprintln(out)
				}
				if err := rec.Write(out, f); err != nil {
					return err
				}
			}
			return countInvalid(recs)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, xml)")
	cmd.Flags().BoolVar(&dieCutOnly, "diecut-only", false, "only match names of the DieCut category")
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [flags] file.pdf...",
		Short: "analyze PDF files and write the results to files",
		Long: `Analyze the first page of each PDF file and write the results next to
the input file, as <name>.xml or <name>.json.

Examples:
  preflight export card.pdf
  preflight export --format json card.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := analysis.ParseFormat(format)
			if err != nil {
				return err
			}

			recs, err := a.analyzeAll(cmd.Context(), args, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for i, rec := range recs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if !rec.Valid {
					fmt.Fprintf(out, "ERROR: Invalid PDF - %s\n", rec.ErrorMessage)
					failed++
					continue
				}
				path, err := analysis.ExportFile(rec, f)
				if err != nil {
					fmt.Fprintf(out, "ERROR: Failed to export - %v\n", err)
					failed++
					continue
				}
				fmt.Fprintf(out, "Analysis exported to: %s\n", path)
				fmt.Fprintf(out, "Format: %s\n\n", strings.ToUpper(string(f)))
				fmt.Fprint(out, rec.Summary())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files not exported", failed, len(recs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "xml", "output format (xml, json)")
	return cmd
}

// analyzeAll loads the vocabulary and analyzes the given files.
func (a *app) analyzeAll(ctx context.Context, paths []string, dieCutOnly bool) ([]*analysis.Record, error) {
	st, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	var cats []spot.Category
	if dieCutOnly {
		cats = append(cats, spot.DieCut)
	}
	vocab, err := st.Vocabulary(ctx, cats...)
	st.Close()
	if err != nil {
		return nil, err
	}
	a.log.WithField("names", vocab.Len()).Debug("vocabulary loaded")

	an := &analysis.Analyzer{
		Source:     analysis.PDFSource{Options: pdfsource.Options{Password: a.password}},
		Vocabulary: vocab,
		Logger:     a.log,
	}
	return an.AnalyzeAll(ctx, paths, a.workers), nil
}

func countInvalid(recs []*analysis.Record) error {
	n := 0
	for _, rec := range recs {
		if !rec.Valid {
			n++
		}
	}
	if n > 0 {
		return fmt.Errorf("%d of %d files could not be analyzed", n, len(recs))
	}
	return nil
}
