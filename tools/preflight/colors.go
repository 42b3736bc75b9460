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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/preflight/spot"
)

func (a *app) colorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "manage the spot color database",
		Long: `Manage the spot color database.

Categories: ` + categoryList(),
	}
	cmd.AddCommand(a.colorsListCommand(), a.colorsAddCommand(), a.colorsAddPantoneCommand())
	return cmd
}

func categoryList() string {
	names := make([]string, len(spot.Categories))
	for i, c := range spot.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (a *app) colorsListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the spot colors in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()

			if category != "" {
				cat, err := spot.ParseCategory(category)
				if err != nil {
					return err
				}
				names, err := st.NamesByCategory(ctx, cat)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			entries, err := st.Entries(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "--- SPOT COLOR DATABASE ---")
			var current spot.Category
			for i, e := range entries {
				if i == 0 || e.Category != current {
					current = e.Category
					fmt.Fprintf(out, "\n%s Colors:\n", strings.ToUpper(string(current)))
				}
				line := e.Name
				if e.PantoneNumber != "" {
					line += " (Pantone: " + e.PantoneNumber + ")"
				}
				if e.Description != "" {
					line += " - " + e.Description
				}
				fmt.Fprintln(out, "  • "+line)
			}
			fmt.Fprintf(out, "\nTotal: %d spot colors in database\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list names in this `category`")
	return cmd
}

func (a *app) colorsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add name category [description]",
		Short:   "add a spot color to the database",
		Example: `  preflight colors add "Custom Cut" DieCut "Custom die-cut line"`,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := spot.ParseCategory(args[1])
			if err != nil {
				return err
			}
			e := spot.Entry{Name: args[0], Category: cat}
			if len(args) > 2 {
				e.Description = args[2]
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if old, found, err := st.Lookup(ctx, e.Name); err != nil {
				return err
			} else if found {
				fmt.Fprintf(out, "Spot color %s is already in the database (Type: %s)\n", old.Name, old.Category)
				return nil
			}
			if err := st.Add(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(out, "Added spot color: %s (Type: %s)\n", e.Name, e.Category)
			return nil
		},
	}
}

func (a *app) colorsAddPantoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add-pantone number [description]",
		Short:   "add a Pantone color to the database",
		Example: `  preflight colors add-pantone "185 C" "Bright red Pantone color"`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var desc string
			if len(args) > 1 {
				desc = args[1]
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			name := "PANTONE " + strings.TrimSpace(args[0])
			found, err := st.Contains(ctx, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if found {
				fmt.Fprintf(out, "Pantone color %s is already in the database\n", name)
				return nil
			}
			if err := st.AddPantone(ctx, args[0], desc); err != nil {
				return err
			}
			fmt.Fprintf(out, "Added Pantone color: %s\n", name)
			return nil
		},
	}
}
