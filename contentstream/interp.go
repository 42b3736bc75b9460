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
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// MaxFormDepth is the maximal nesting depth of form XObjects.
// Deeper forms, including cyclic references, are not interpreted.
const MaxFormDepth = 16

// Resolver gives access to indirect objects of a PDF file.
// The type *model.Context from pdfcpu implements this interface.
type Resolver interface {
	Dereference(o types.Object) (types.Object, error)
	DereferenceStreamDict(o types.Object) (*types.StreamDict, bool, error)
}

// Kind describes the type of a drawing event.
type Kind int

// KindPath is emitted when a path is painted.
const KindPath Kind = iota + 1

// An Event describes one drawing operation.
type Event struct {
	Kind Kind

	// Stroke and Fill are the stroking and nonstroking colors which were
	// active when the path was ended.  If the Interpreter has PaintedOnly
	// set, colors which were not used for painting are nil.
	Stroke *Color
	Fill   *Color

	// Stroked and Filled report whether the operator which ended the path
	// strokes or fills it.  Both are false for "n".
	Stroked, Filled bool

	// LineWidth is the line width in user space units, at the time the path
	// was painted.
	LineWidth float64
}

// state holds the parts of the graphics state used by the interpreter.
type state struct {
	strokeSpace space
	fillSpace   space
	stroke      *Color
	fill        *Color
	lineWidth   float64
}

func newState() state {
	return state{
		strokeSpace: spaceGray,
		fillSpace:   spaceGray,
		stroke:      spaceGray.initial(),
		fill:        spaceGray.initial(),
		lineWidth:   1,
	}
}

// An Interpreter runs content streams and reports the painted paths.
//
// Operators with missing or malformed operands are ignored.  An Interpreter
// must not be used concurrently.
type Interpreter struct {
	R     Resolver
	Paint func(Event) error

	// PaintedOnly restricts the colors of an event to the ones used by the
	// path painting operator, and suppresses events for "n".
	PaintedOnly bool

	state
	stack   []state
	depth   int
	scanner *Scanner
}

// NewInterpreter returns a new interpreter which calls paint for every
// path painting operator, including "n".
func NewInterpreter(r Resolver, paint func(Event) error) *Interpreter {
	return &Interpreter{
		R:       r,
		Paint:   paint,
		state:   newState(),
		scanner: NewScanner(),
	}
}

// RunContents interprets the content of a page.
// The argument contents is the value of the /Contents entry of a page
// dictionary, either a stream or an array of streams.  Resources is the
// (inherited) resource dictionary of the page.
func (in *Interpreter) RunContents(contents types.Object, resources types.Dict) error {
	contents, err := in.R.Dereference(contents)
	if err != nil {
		return err
	}

	var body []byte
	switch contents := contents.(type) {
	case nil:
		return nil
	case types.StreamDict:
		body, err = streamData(in.R, contents)
		if err != nil {
			return err
		}
	case types.Array:
		// The streams of an array are concatenated, they need not end at
		// token boundaries.
		var buf bytes.Buffer
		for _, ref := range contents {
			data, err := streamData(in.R, ref)
			if err != nil {
				return err
			}
			buf.Write(data)
			buf.WriteByte('\n')
		}
		body = buf.Bytes()
	default:
		return fmt.Errorf("content stream: unexpected type %T", contents)
	}
	return in.Run(body, resources)
}

// Run interprets a decoded content stream, using the given resources.
func (in *Interpreter) Run(content []byte, resources types.Dict) error {
	// The scanner holds state for the current stream, so nested
	// forms need a scanner of their own.
	sc := in.scanner
	if in.depth > 0 || sc == nil {
		sc = NewScanner()
	}
	res := &resourceDict{r: in.R, dict: resources}
	return sc.Scan(bytes.NewReader(content))(func(op string, args []types.Object) error {
		return in.do(op, args, res)
	})
}

func (in *Interpreter) do(op string, args []types.Object, res *resourceDict) error {
	getNum := func() (float64, bool) {
		if len(args) == 0 {
			return 0, false
		}
		x, ok := getNumber(args[0])
		args = args[1:]
		return x, ok
	}
	getName := func() (types.Name, bool) {
		if len(args) == 0 {
			return "", false
		}
		x, ok := args[0].(types.Name)
		args = args[1:]
		return x, ok
	}
	// getColor reads exactly n numeric operands.
	getColor := func(n int) ([]float64, bool) {
		if len(args) != n {
			return nil, false
		}
		vals := make([]float64, n)
		for i := range n {
			x, ok := getNum()
			if !ok {
				return nil, false
			}
			vals[i] = x
		}
		return vals, true
	}

	switch op {

	// == General graphics state =========================================

	case "w": // line width
		if x, ok := getNum(); ok {
			in.lineWidth = x
		}

	case "gs": // graphics state parameter dictionary
		name, ok := getName()
		if !ok {
			break
		}
		gs := res.lookup("ExtGState", name)
		if gs == nil {
			break
		}
		if obj, ok := gs.Find("LW"); ok {
			obj, err := in.R.Dereference(obj)
			if err != nil {
				break
			}
			if x, ok := getNumber(obj); ok {
				in.lineWidth = x
			}
		}

	case "q":
		in.stack = append(in.stack, in.state)

	case "Q":
		if len(in.stack) > 0 {
			in.state = in.stack[len(in.stack)-1]
			in.stack = in.stack[:len(in.stack)-1]
		}

	// == Path painting ==================================================

	case "S", "s":
		return in.paint(true, false)
	case "f", "F", "f*":
		return in.paint(false, true)
	case "B", "B*", "b", "b*":
		return in.paint(true, true)
	case "n":
		return in.paint(false, false)

	// == Color ==========================================================

	case "CS", "cs":
		name, ok := getName()
		if !ok {
			break
		}
		cs, ok := deviceSpace(name)
		if !ok {
			obj := res.find("ColorSpace", name)
			if obj == nil {
				break
			}
			cs = decodeSpace(in.R, obj)
		}
		if op == "CS" {
			in.strokeSpace = cs
			in.stroke = cs.initial()
		} else {
			in.fillSpace = cs
			in.fill = cs.initial()
		}

	case "SC", "SCN":
		in.setComponents(&in.stroke, in.strokeSpace, args)
	case "sc", "scn":
		in.setComponents(&in.fill, in.fillSpace, args)

	case "G", "g":
		vals, ok := getColor(1)
		if ok {
			in.setDevice(op == "G", spaceGray, vals)
		}
	case "RG", "rg":
		vals, ok := getColor(3)
		if ok {
			in.setDevice(op == "RG", spaceRGB, vals)
		}
	case "K", "k":
		vals, ok := getColor(4)
		if ok {
			in.setDevice(op == "K", spaceCMYK, vals)
		}

	// == XObjects =======================================================

	case "Do":
		name, ok := getName()
		if !ok {
			break
		}
		return in.doXObject(res, name)
	}
	return nil
}

func (in *Interpreter) paint(stroke, fill bool) error {
	if in.Paint == nil {
		return nil
	}
	if in.PaintedOnly && !stroke && !fill {
		return nil
	}
	ev := Event{
		Kind:      KindPath,
		Stroked:   stroke,
		Filled:    fill,
		LineWidth: in.lineWidth,
	}
	if stroke || !in.PaintedOnly {
		ev.Stroke = in.stroke.clone()
	}
	if fill || !in.PaintedOnly {
		ev.Fill = in.fill.clone()
	}
	return in.Paint(ev)
}

func (in *Interpreter) setDevice(stroke bool, cs space, vals []float64) {
	c := &Color{Family: cs.family, Values: vals}
	if stroke {
		in.strokeSpace = cs
		in.stroke = c
	} else {
		in.fillSpace = cs
		in.fill = c
	}
}

// setComponents implements the SC, SCN, sc and scn operators.
// A trailing pattern name is ignored.
func (in *Interpreter) setComponents(dst **Color, cs space, args []types.Object) {
	var vals []float64
	for _, arg := range args {
		x, ok := getNumber(arg)
		if !ok {
			if _, isName := arg.(types.Name); isName {
				continue
			}
			return
		}
		vals = append(vals, x)
	}
	if n := cs.channels(); n >= 0 && len(vals) != n {
		return
	}
	*dst = &Color{Family: cs.family, Values: vals, Colorant: cs.colorant}
}

func (in *Interpreter) doXObject(res *resourceDict, name types.Name) error {
	if in.depth >= MaxFormDepth {
		return nil
	}
	obj := res.find("XObject", name)
	if obj == nil {
		return nil
	}
	sd, _, err := in.R.DereferenceStreamDict(obj)
	if err != nil || sd == nil {
		return nil
	}
	if subtype, _ := sd.Dict.Find("Subtype"); subtype != types.Name("Form") {
		return nil
	}

	body, err := streamData(in.R, *sd)
	if err != nil {
		return nil
	}

	// Forms without their own resources use the resources of the parent.
	formRes := res.dict
	if obj, ok := sd.Dict.Find("Resources"); ok {
		if d, ok := resolveDict(in.R, obj); ok {
			formRes = d
		}
	}

	// The form is painted with the graphics state of the Do operator,
	// and changes made by the form do not leak out.
	saved := in.state
	savedStack := in.stack
	in.stack = nil
	in.depth++
	err = in.Run(body, formRes)
	in.depth--
	in.state = saved
	in.stack = savedStack
	return err
}

// streamData returns the decoded content of a stream.
func streamData(r Resolver, obj types.Object) ([]byte, error) {
	sd, _, err := r.DereferenceStreamDict(obj)
	if err != nil {
		return nil, err
	}
	if sd == nil {
		return nil, nil
	}
	if err := sd.Decode(); err != nil {
		return nil, err
	}
	return sd.Content, nil
}

// resourceDict gives access to the sub-dictionaries of a resource
// dictionary.
type resourceDict struct {
	r    Resolver
	dict types.Dict
}

// find returns the value stored under the given name in the given
// resource category, or nil if there is no such value.
func (res *resourceDict) find(category string, name types.Name) types.Object {
	if res.dict == nil {
		return nil
	}
	obj, ok := res.dict.Find(category)
	if !ok {
		return nil
	}
	sub, ok := resolveDict(res.r, obj)
	if !ok {
		return nil
	}
	val, ok := sub.Find(string(name))
	if !ok {
		return nil
	}
	return val
}

// lookup is like find, but resolves the value to a dictionary.
func (res *resourceDict) lookup(category string, name types.Name) types.Dict {
	obj := res.find(category, name)
	if obj == nil {
		return nil
	}
	d, _ := resolveDict(res.r, obj)
	return d
}

func resolveDict(r Resolver, obj types.Object) (types.Dict, bool) {
	obj, err := r.Dereference(obj)
	if err != nil {
		return nil, false
	}
	d, ok := obj.(types.Dict)
	return d, ok
}

func getNumber(x types.Object) (float64, bool) {
	switch x := x.(type) {
	case types.Float:
		return float64(x), true
	case types.Integer:
		return float64(x), true
	default:
		return 0, false
	}
}
