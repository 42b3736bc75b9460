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

package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	const path = "seehuhn.de/go/preflight"
	testCases := []struct {
		version  string
		settings []debug.BuildSetting
		want     string
	}{
		{"v0.3.0", nil, "preflight (seehuhn.de/go/preflight v0.3.0)"},
		{"(devel)", nil, "preflight"},
		{"", nil, "preflight"},
		{
			"(devel)",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			"preflight (seehuhn.de/go/preflight 01234567)",
		},
		{
			"(devel)",
			[]debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			"preflight (seehuhn.de/go/preflight abc+dirty)",
		},
		{
			"v1.0.0",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			"preflight (seehuhn.de/go/preflight v1.0.0)",
		},
	}
	for _, tc := range testCases {
		info := &debug.BuildInfo{
			Main:     debug.Module{Path: path, Version: tc.version},
			Settings: tc.settings,
		}
		if got := format("preflight", info); got != tc.want {
			t.Errorf("format(%q, %v) = %q, want %q", tc.version, tc.settings, got, tc.want)
		}
	}
}

func TestShort(t *testing.T) {
	if got := Short("preflight"); !strings.HasPrefix(got, "preflight") {
		t.Errorf("Short = %q", got)
	}
}
