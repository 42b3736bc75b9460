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

// Package buildinfo formats version information for the command line tools.
package buildinfo

import (
	"runtime/debug"
)

// Short returns a short version string for a CLI tool, e.g.
// "preflight (seehuhn.de/go/preflight v0.3.0)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	return format(toolName, info)
}

func format(toolName string, info *debug.BuildInfo) string {
	if v := version(info); v != "" {
		return toolName + " (" + info.Main.Path + " " + v + ")"
	}
	return toolName
}

// version returns the module version, or the abbreviated VCS revision for
// development builds.  The result is empty if neither is known.
func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}
