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

// Licensify adds the license header to all Go source files below the
// current directory.  With --check, files are only reported.
package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const header = `// seehuhn.de/go/preflight - print-production checks for PDF files
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

`

func main() {
	var check bool
	cmd := &cobra.Command{
		Use:           "licensify [--check] [dir]",
		Short:         "add the license header to Go source files",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			n, err := licensify(root, check, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if check && n > 0 {
				return fmt.Errorf("%d files without license header", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "only report files without header")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "licensify:", err)
		os.Exit(1)
	}
}

// licensify walks the directory tree below root and adds the license
// header where it is missing.  Directories starting with "." or "_", and
// testdata directories, are skipped.  The number of files without header
// is returned.
func licensify(root string, check bool, w io.Writer) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) {
			return nil
		}
		count++
		if !bytes.HasPrefix(body, []byte("package ")) {
			fmt.Fprintln(w, "ATTENTION "+path)
			return nil
		}
		if check {
			fmt.Fprintln(w, "missing "+path)
			return nil
		}

		fmt.Fprintln(w, "updating "+path)
		return os.WriteFile(path, append([]byte(header), body...), 0o644)
	})
	return count, err
}
