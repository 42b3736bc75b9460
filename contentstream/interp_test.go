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

package contentstream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// memResolver is an in-memory object store, indexed by object number.
type memResolver map[int]types.Object

func (m memResolver) Dereference(o types.Object) (types.Object, error) {
	ref, ok := o.(types.IndirectRef)
	if !ok {
		return o, nil
	}
	obj, ok := m[int(ref.ObjectNumber)]
	if !ok {
		return nil, nil
	}
	return obj, nil
}

func (m memResolver) DereferenceStreamDict(o types.Object) (*types.StreamDict, bool, error) {
	o, err := m.Dereference(o)
	if err != nil {
		return nil, false, err
	}
	sd, ok := o.(types.StreamDict)
	if !ok {
		return nil, false, fmt.Errorf("expected a stream, got %T", o)
	}
	return &sd, true, nil
}

func ref(n int) types.IndirectRef {
	return types.IndirectRef{ObjectNumber: types.Integer(n)}
}

func stream(dict types.Dict, content string) types.StreamDict {
	if dict == nil {
		dict = types.Dict{}
	}
	return types.StreamDict{
		Dict:    dict,
		Raw:     []byte(content),
		Content: []byte(content),
	}
}

func separation(name string) types.Array {
	return types.Array{
		types.Name("Separation"),
		types.Name(name),
		types.Name("DeviceCMYK"),
		types.Dict{},
	}
}

// ignorePaintMode compares events by their colors and line width only.
var ignorePaintMode = cmpopts.IgnoreFields(Event{}, "Stroked", "Filled")

// run interprets content with PaintedOnly set.
func run(t *testing.T, r memResolver, res types.Dict, content string) []Event {
	t.Helper()
	var events []Event
	in := NewInterpreter(r, func(ev Event) error {
		events = append(events, ev)
		return nil
	})
	in.PaintedOnly = true
	err := in.Run([]byte(content), res)
	if err != nil {
		t.Fatal(err)
	}
	return events
}

func gray(g float64) *Color {
	return &Color{Family: DeviceGray, Values: []float64{g}}
}

func TestInterpreter(t *testing.T) {
	res := types.Dict{
		"ColorSpace": types.Dict{
			"CS0": separation("CutContour"),
			"CS1": ref(3),
			"CS2": types.Name("DeviceRGB"),
			"CS3": types.Array{types.Name("ICCBased"), ref(4)},
			"CS4": separation("Gold#20Foil"),
		},
		"ExtGState": types.Dict{
			"GS1": types.Dict{"LW": types.Float(0.25)},
			"GS2": ref(5),
		},
	}
	r := memResolver{
		3: separation("Stans"),
		5: types.Dict{"Type": types.Name("ExtGState"), "LW": types.Integer(3)},
	}

	testCases := []struct {
		name    string
		content string
		want    []Event
	}{
		{
			name:    "separation stroke",
			content: "/CS0 CS 1 SCN 0.5 w 0 0 m 10 10 l S",
			want: []Event{{
				Kind:      KindPath,
				Stroke:    &Color{Family: Separation, Values: []float64{1}, Colorant: "CutContour"},
				LineWidth: 0.5,
			}},
		},
		{
			name:    "indirect separation fill",
			content: "/CS1 cs 0.3 scn 0 0 10 10 re f",
			want: []Event{{
				Kind:      KindPath,
				Fill:      &Color{Family: Separation, Values: []float64{0.3}, Colorant: "Stans"},
				LineWidth: 1,
			}},
		},
		{
			name:    "initial tint",
			content: "/CS0 cs f",
			want: []Event{{
				Kind:      KindPath,
				Fill:      &Color{Family: Separation, Values: []float64{1}, Colorant: "CutContour"},
				LineWidth: 1,
			}},
		},
		{
			name:    "escaped colorant",
			content: "/CS4 CS S",
			want: []Event{{
				Kind:      KindPath,
				Stroke:    &Color{Family: Separation, Values: []float64{1}, Colorant: "Gold Foil"},
				LineWidth: 1,
			}},
		},
		{
			name:    "save and restore",
			content: "0 0 1 RG 2 w q 1 0 0 RG 5 w S Q S",
			want: []Event{
				{Kind: KindPath, Stroke: &Color{Family: DeviceRGB, Values: []float64{1, 0, 0}}, LineWidth: 5},
				{Kind: KindPath, Stroke: &Color{Family: DeviceRGB, Values: []float64{0, 0, 1}}, LineWidth: 2},
			},
		},
		{
			name:    "no-op path",
			content: "0 0 m 1 1 l n 0.2 g f",
			want: []Event{
				{Kind: KindPath, Fill: gray(0.2), LineWidth: 1},
			},
		},
		{
			name:    "fill and stroke",
			content: "1 0 0 0 K 0 1 0 0 k B b*",
			want: []Event{
				{
					Kind:      KindPath,
					Stroke:    &Color{Family: DeviceCMYK, Values: []float64{1, 0, 0, 0}},
					Fill:      &Color{Family: DeviceCMYK, Values: []float64{0, 1, 0, 0}},
					LineWidth: 1,
				},
				{
					Kind:      KindPath,
					Stroke:    &Color{Family: DeviceCMYK, Values: []float64{1, 0, 0, 0}},
					Fill:      &Color{Family: DeviceCMYK, Values: []float64{0, 1, 0, 0}},
					LineWidth: 1,
				},
			},
		},
		{
			name:    "device space by name",
			content: "/DeviceCMYK CS s /CS2 cs F",
			want: []Event{
				{Kind: KindPath, Stroke: &Color{Family: DeviceCMYK, Values: []float64{0, 0, 0, 1}}, LineWidth: 1},
				{Kind: KindPath, Fill: &Color{Family: DeviceRGB, Values: []float64{0, 0, 0}}, LineWidth: 1},
			},
		},
		{
			name:    "other family",
			content: "/CS3 cs 0.1 0.2 0.3 sc f*",
			want: []Event{
				{Kind: KindPath, Fill: &Color{Family: Other, Values: []float64{0.1, 0.2, 0.3}}, LineWidth: 1},
			},
		},
		{
			name:    "malformed operands",
			content: "1 0 RG /X RG 0.5 0.5 0.5 0.5 0.5 K 1 0 SC S",
			want: []Event{
				{Kind: KindPath, Stroke: gray(0), LineWidth: 1},
			},
		},
		{
			name:    "wrong component count",
			content: "/CS0 CS 0.5 0.5 SCN S",
			want: []Event{{
				Kind:      KindPath,
				Stroke:    &Color{Family: Separation, Values: []float64{1}, Colorant: "CutContour"},
				LineWidth: 1,
			}},
		},
		{
			name:    "graphics state dictionary",
			content: "/GS1 gs S /GS2 gs S /Missing gs S",
			want: []Event{
				{Kind: KindPath, Stroke: gray(0), LineWidth: 0.25},
				{Kind: KindPath, Stroke: gray(0), LineWidth: 3},
				{Kind: KindPath, Stroke: gray(0), LineWidth: 3},
			},
		},
		{
			name:    "unknown color space",
			content: "/Nope CS 0.7 G S",
			want: []Event{
				{Kind: KindPath, Stroke: gray(0.7), LineWidth: 1},
			},
		},
		{
			name:    "unbalanced restore",
			content: "Q Q 4 w S",
			want: []Event{
				{Kind: KindPath, Stroke: gray(0), LineWidth: 4},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, r, res, tc.content)
			if d := cmp.Diff(tc.want, got, ignorePaintMode); d != "" {
				t.Errorf("unexpected events (-want +got):\n%s", d)
			}
		})
	}
}

func TestFormXObject(t *testing.T) {
	formRes := types.Dict{
		"ColorSpace": types.Dict{"CS1": separation("Stans")},
	}
	r := memResolver{
		7: stream(types.Dict{
			"Type":      types.Name("XObject"),
			"Subtype":   types.Name("Form"),
			"Resources": formRes,
		}, "/CS1 CS 1 SCN S 9 w"),
		8: stream(types.Dict{"Subtype": types.Name("Form")}, "/CS0 cs f"),
		9: stream(types.Dict{"Subtype": types.Name("Image")}, "garbage"),
	}
	res := types.Dict{
		"ColorSpace": types.Dict{"CS0": separation("CutContour")},
		"XObject": types.Dict{
			"Fm1": ref(7),
			"Fm2": ref(8),
			"Im1": ref(9),
		},
	}

	got := run(t, r, res, "3 w /Fm1 Do S /Fm2 Do /Im1 Do /Fm9 Do")
	want := []Event{
		{
			Kind:      KindPath,
			Stroke:    &Color{Family: Separation, Values: []float64{1}, Colorant: "Stans"},
			LineWidth: 3,
		},
		{Kind: KindPath, Stroke: gray(0), LineWidth: 3},
		{
			Kind:      KindPath,
			Fill:      &Color{Family: Separation, Values: []float64{1}, Colorant: "CutContour"},
			LineWidth: 3,
		},
	}
	if d := cmp.Diff(want, got, ignorePaintMode); d != "" {
		t.Errorf("unexpected events (-want +got):\n%s", d)
	}
}

func TestActiveColors(t *testing.T) {
	res := types.Dict{
		"ColorSpace": types.Dict{"CS0": separation("CutContour")},
	}
	cut := &Color{Family: Separation, Values: []float64{1}, Colorant: "CutContour"}
	black := &Color{Family: DeviceCMYK, Values: []float64{0, 0, 0, 1}}

	testCases := []struct {
		content string
		want    []Event
	}{
		{ // fill with a separation stroke color
			content: "/CS0 CS 1 SCN 0.5 w 0 0 10 10 re f",
			want: []Event{
				{Kind: KindPath, Stroke: cut, Fill: gray(0), Filled: true, LineWidth: 0.5},
			},
		},
		{ // stroke with a CMYK fill color
			content: "0 0 0 1 k /CS0 CS 1 SCN 0 0 m 10 10 l S",
			want: []Event{
				{Kind: KindPath, Stroke: cut, Fill: black, Stroked: true, LineWidth: 1},
			},
		},
		{ // clipping path which is not painted
			content: "/CS0 CS 1 SCN 0 0 10 10 re W n",
			want: []Event{
				{Kind: KindPath, Stroke: cut, Fill: gray(0), LineWidth: 1},
			},
		},
		{
			content: "0 0 10 10 re B",
			want: []Event{
				{Kind: KindPath, Stroke: gray(0), Fill: gray(0), Stroked: true, Filled: true, LineWidth: 1},
			},
		},
	}
	for _, tc := range testCases {
		var got []Event
		in := NewInterpreter(memResolver{}, func(ev Event) error {
			got = append(got, ev)
			return nil
		})
		if err := in.Run([]byte(tc.content), res); err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("%q: unexpected events (-want +got):\n%s", tc.content, d)
		}
	}
}

func TestPaintedOnlyClip(t *testing.T) {
	got := run(t, memResolver{}, nil, "0 0 10 10 re W n 0 0 10 10 re f")
	want := []Event{{Kind: KindPath, Fill: gray(0), Filled: true, LineWidth: 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected events (-want +got):\n%s", d)
	}
}

func TestFormRecursion(t *testing.T) {
	// The form draws itself.
	r := memResolver{
		7: stream(types.Dict{"Subtype": types.Name("Form")}, "/Fm1 Do f"),
	}
	res := types.Dict{
		"XObject": types.Dict{"Fm1": ref(7)},
	}
	got := run(t, r, res, "/Fm1 Do")
	if len(got) != MaxFormDepth {
		t.Errorf("got %d events, want %d", len(got), MaxFormDepth)
	}
}

func TestRunContents(t *testing.T) {
	r := memResolver{
		1: stream(nil, "0.5 w 1 0 0"),
		2: stream(nil, "RG S"),
	}
	var got []Event
	in := NewInterpreter(r, func(ev Event) error {
		got = append(got, ev)
		return nil
	})
	err := in.RunContents(types.Array{ref(1), ref(2)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []Event{
		{
			Kind:      KindPath,
			Stroke:    &Color{Family: DeviceRGB, Values: []float64{1, 0, 0}},
			Fill:      gray(0),
			Stroked:   true,
			LineWidth: 0.5,
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected events (-want +got):\n%s", d)
	}

	if err := in.RunContents(types.Integer(1), nil); err == nil {
		t.Error("invalid contents accepted")
	}
	if err := in.RunContents(nil, nil); err != nil {
		t.Errorf("missing contents: %v", err)
	}
}

func TestPaintError(t *testing.T) {
	errStop := errors.New("stop")
	count := 0
	in := NewInterpreter(memResolver{}, func(Event) error {
		count++
		return errStop
	})
	err := in.Run([]byte("S S S"), nil)
	if !errors.Is(err, errStop) {
		t.Errorf("unexpected error %v", err)
	}
	if count != 1 {
		t.Errorf("paint called %d times", count)
	}
}

func TestEventIsolation(t *testing.T) {
	// Events must not share color values with the interpreter state.
	var events []Event
	in := NewInterpreter(memResolver{}, func(ev Event) error {
		events = append(events, ev)
		return nil
	})
	err := in.Run([]byte("0.5 G S"), nil)
	if err != nil {
		t.Fatal(err)
	}
	events[0].Stroke.Values[0] = 99
	err = in.Run([]byte("S"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(gray(0.5), events[1].Stroke); d != "" {
		t.Errorf("unexpected color (-want +got):\n%s", d)
	}
}
