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

// Preflight checks PDF files for print production.
//
// For the first page of each file, preflight reports the page boxes, the
// process colors and spot inks used, and whether a die-cut line is present.
// Die-cut lines are recognized by the name of their spot ink, using a
// vocabulary which is kept in an SQLite database.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/preflight/spot/store"
	"seehuhn.de/go/preflight/tools/internal/buildinfo"
	"seehuhn.de/go/preflight/tools/internal/profile"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := &app{stdin: os.Stdin}
	err := a.run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preflight:", err)
		cancel()
		os.Exit(1)
	}
}

// app holds the global options of the command line tool.
type app struct {
	db         string
	password   string
	workers    int
	verbose    bool
	cpuprofile string
	memprofile string

	stdin io.Reader
	lines *bufio.Reader
	log   *logrus.Logger
	stop  func() error
}

func (a *app) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := a.command()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(a.stdin)

	err := root.ExecuteContext(ctx)
	if a.stop != nil {
		if err2 := a.stop(); err == nil {
			err = err2
		}
	}
	return err
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "preflight",
		Short: "print-production checks for PDF files",
		Long: `Preflight checks the first page of PDF files for print production.

It reports the page boxes, all process colors and spot inks, the line
widths used for each spot ink, and whether a die-cut line is present.

The die-cut vocabulary is stored in an SQLite database.  The location of
the database is given by the --db flag, the PREFLIGHT_DB environment
variable, or defaults to "spot_colors.db" next to the executable.`,
		Version:           buildinfo.Short("preflight"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.db, "db", "", "spot color database `file`")
	flags.StringVarP(&a.password, "password", "p", "", `PDF password ("-" to prompt)`)
	flags.IntVarP(&a.workers, "workers", "j", 0, "number of files to analyze in parallel (0 = one per CPU)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")
	flags.StringVar(&a.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&a.memprofile, "memprofile", "", "write memory profile to `file`")

	root.AddCommand(a.analyzeCommand(), a.exportCommand(), a.colorsCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	stop, err := profile.Start(a.cpuprofile, a.memprofile)
	if err != nil {
		return err
	}
	a.stop = stop

	if a.password == "-" {
		pw, err := a.readPassword(cmd)
		if err != nil {
			return fmt.Errorf("cannot read password: %w", err)
		}
		a.password = pw
	}
	return nil
}

// openStore opens the spot color database.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	path := a.db
	if path == "" {
		path = store.DefaultPath()
	}
	a.log.WithField("db", path).Debug("opening spot color database")
	return store.Open(ctx, path)
}

// terminal returns the file descriptor of stdin, if stdin is a terminal.
func (a *app) terminal() (int, bool) {
	f, ok := a.stdin.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func (a *app) readLine() (string, error) {
	if a.lines == nil {
		a.lines = bufio.NewReader(a.stdin)
	}
	line, err := a.lines.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (a *app) readPassword(cmd *cobra.Command) (string, error) {
	fd, isTerm := a.terminal()
	if !isTerm {
		return a.readLine()
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	return string(pw), err
}

var errNoInput = errors.New("no input files")

// promptPath asks for the name of a file to analyze.  This only works if
// stdin is a terminal.
func (a *app) promptPath(cmd *cobra.Command) (string, error) {
	if _, isTerm := a.terminal(); !isTerm {
		return "", errNoInput
	}
	fmt.Fprint(cmd.OutOrStdout(), "Enter the path to your PDF file: ")
	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	path := strings.Trim(strings.TrimSpace(line), `"'`)
	if path == "" {
		return "", errNoInput
	}
	return path, nil
}
