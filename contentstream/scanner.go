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
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// A Scanner breaks a content stream into operators and their operands.
//
// Operands are represented using the pdfcpu object types.  Parse errors are
// skipped as much as possible.  The data of inline images is skipped; the
// image dictionary is reported as the only operand of the "BI" operator.
type Scanner struct {
	src   *bufio.Reader
	stack []*frame
	args  []types.Object

	// err is the first error returned by the underlying reader.
	err error
}

type frame struct {
	data   []types.Object
	isDict bool
}

// NewScanner returns a new scanner.
// The same scanner can be used for several content streams.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns an iterator over all operators in the content stream r.
//
// The operand slice passed to the yield function is owned by the scanner and
// is only valid until yield returns.  If yield returns an error, scanning
// stops and the error is returned.  Read errors other than io.EOF are
// returned as well.
func (s *Scanner) Scan(r io.Reader) func(yield func(op string, args []types.Object) error) error {
	return func(yield func(string, []types.Object) error) error {
		s.src = bufio.NewReader(r)
		s.stack = s.stack[:0]
		s.args = s.args[:0]
		s.err = nil

		for {
			obj, err := s.nextToken()
			if err == errParse {
				continue
			} else if err != nil {
				break
			}

			if op, isOp := obj.(operator); isOp {
				switch op {
				case "<<":
					s.stack = append(s.stack, &frame{isDict: true})
					continue
				case ">>":
					dict, ok := s.closeDict()
					if !ok {
						continue
					}
					obj = dict
				case "[":
					s.stack = append(s.stack, &frame{})
					continue
				case "]":
					if len(s.stack) == 0 || s.top().isDict {
						continue
					}
					obj = types.Array(s.top().data)
					s.stack = s.stack[:len(s.stack)-1]
				case "BI":
					if len(s.stack) > 0 {
						break
					}
					s.args = append(s.args[:0], s.readInlineImage())
				}
			}

			if len(s.stack) > 0 {
				top := s.top()
				top.data = append(top.data, obj)
			} else if op, isOp := obj.(operator); isOp {
				err := yield(string(op), s.args)
				if err != nil {
					return err
				}
				s.args = s.args[:0]
			} else {
				s.args = append(s.args, obj)
			}
		}

		if s.err == io.EOF {
			return nil
		}
		return s.err
	}
}

func (s *Scanner) top() *frame {
	return s.stack[len(s.stack)-1]
}

// closeDict pops a dictionary frame from the stack.
func (s *Scanner) closeDict() (types.Dict, bool) {
	if len(s.stack) == 0 || !s.top().isDict {
		return nil, false
	}
	entry := s.top()
	s.stack = s.stack[:len(s.stack)-1]
	if len(entry.data)%2 != 0 {
		return nil, false
	}
	return makeDict(entry.data), true
}

func makeDict(data []types.Object) types.Dict {
	dict := types.Dict{}
	for i := 0; i+1 < len(data); i += 2 {
		key, ok := data[i].(types.Name)
		if !ok || data[i+1] == nil {
			continue
		}
		dict[string(key)] = data[i+1]
	}
	return dict
}

// readInlineImage reads the image dictionary following a "BI" operator and
// skips the image data up to and including the "EI" operator.
func (s *Scanner) readInlineImage() types.Dict {
	var data []types.Object
	var arrays [][]types.Object
dictLoop:
	for {
		obj, err := s.nextToken()
		if err != nil {
			return makeDict(data)
		}
		if op, isOp := obj.(operator); isOp {
			switch op {
			case "ID":
				break dictLoop
			case "[":
				arrays = append(arrays, nil)
				continue
			case "]":
				if len(arrays) == 0 {
					continue
				}
				obj = types.Array(arrays[len(arrays)-1])
				arrays = arrays[:len(arrays)-1]
			default:
				continue
			}
		}
		if len(arrays) > 0 {
			arrays[len(arrays)-1] = append(arrays[len(arrays)-1], obj)
		} else {
			data = append(data, obj)
		}
	}

	// A single white-space character separates ID from the data.
	s.readByte()

	// The data ends at white space, followed by "EI", followed by
	// white space or the end of the stream.
	var prev byte = ' '
	for {
		b, err := s.readByte()
		if err != nil {
			break
		}
		if class[prev] == whiteSpace && b == 'E' {
			bb, _ := s.src.Peek(2)
			if len(bb) >= 1 && bb[0] == 'I' && (len(bb) == 1 || class[bb[1]] != regular) {
				s.readByte()
				break
			}
		}
		prev = b
	}
	return makeDict(data)
}

func (s *Scanner) nextToken() (types.Object, error) {
	s.skipWhiteSpace()
	bb, _ := s.src.Peek(2)
	if len(bb) == 0 {
		if s.err == nil {
			s.err = io.EOF
		}
		return nil, s.err
	}

	switch {
	case bb[0] == '/':
		s.readByte()
		return s.readName(), nil
	case bb[0] == '(':
		s.readByte()
		return s.readString()
	case string(bb) == "<<":
		s.readByte()
		s.readByte()
		return operator("<<"), nil
	case bb[0] == '<':
		s.readByte()
		return s.readHexString()
	case string(bb) == ">>":
		s.readByte()
		s.readByte()
		return operator(">>"), nil
	case bb[0] == '[' || bb[0] == ']':
		c := bb[0]
		s.readByte()
		return operator([]byte{c}), nil
	}

	first, _ := s.readByte()
	opBytes := []byte{first}
	if class[first] == regular {
		for {
			b, err := s.peek()
			if err != nil || class[b] != regular {
				break
			}
			s.readByte()
			opBytes = append(opBytes, b)
		}
	}

	if x := parseNumber(opBytes); x != nil {
		return x, nil
	}
	switch string(opBytes) {
	case "false":
		return types.Boolean(false), nil
	case "true":
		return types.Boolean(true), nil
	case "null":
		return nil, nil
	}
	return operator(opBytes), nil
}

// readString reads a literal string, not including the leading parenthesis.
func (s *Scanner) readString() (types.Object, error) {
	var res []byte
	level := 1
	ignoreLF := false
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if ignoreLF && b == '\n' {
			ignoreLF = false
			continue
		}
		ignoreLF = false

		switch b {
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return types.StringLiteral(res), nil
			}
		case '\\':
			b, err = s.readByte()
			if err != nil {
				return nil, err
			}
			switch b {
			case 'n':
				b = '\n'
			case 'r':
				b = '\r'
			case 't':
				b = '\t'
			case 'b':
				b = '\b'
			case 'f':
				b = '\f'
			case '\n':
				continue
			case '\r':
				ignoreLF = true
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for range 2 {
					c, err := s.peek()
					if err != nil || c < '0' || c > '7' {
						break
					}
					s.readByte()
					oct = oct*8 + (c - '0')
				}
				b = oct
			}
		}
		res = append(res, b)
	}
}

// readHexString reads a hexadecimal string, not including the leading '<'.
func (s *Scanner) readHexString() (types.Object, error) {
	var res []byte
	var hi byte
	first := true
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if b == '>' {
			break
		}
		if class[b] == whiteSpace {
			continue
		}
		d := hexDigit(b)
		if d == 255 {
			return nil, errParse
		}
		if first {
			hi = d << 4
		} else {
			res = append(res, hi|d)
		}
		first = !first
	}
	if !first {
		res = append(res, hi)
	}
	return types.StringLiteral(res), nil
}

// readName reads a name, not including the leading slash.
// Escapes "#xx" are decoded only if followed by two hex digits.
func (s *Scanner) readName() types.Name {
	var name []byte
	for {
		b, err := s.peek()
		if err != nil || class[b] != regular {
			break
		}
		if b == '#' {
			if bb, _ := s.src.Peek(3); len(bb) == 3 {
				hi, lo := hexDigit(bb[1]), hexDigit(bb[2])
				if hi != 255 && lo != 255 {
					s.src.Discard(3)
					name = append(name, hi<<4|lo)
					continue
				}
			}
		}
		s.readByte()
		name = append(name, b)
	}
	return types.Name(name)
}

// skipWhiteSpace skips white space and comments.
func (s *Scanner) skipWhiteSpace() {
	for {
		b, err := s.peek()
		if err != nil {
			return
		}
		switch {
		case class[b] == whiteSpace:
			s.readByte()
		case b == '%':
			for {
				b, err := s.peek()
				if err != nil || b == '\n' || b == '\r' {
					break
				}
				s.readByte()
			}
		default:
			return
		}
	}
}

func (s *Scanner) readByte() (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	b, err := s.src.ReadByte()
	if err != nil {
		s.err = err
	}
	return b, err
}

func (s *Scanner) peek() (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	bb, err := s.src.Peek(1)
	if len(bb) == 0 {
		s.err = err
		return 0, err
	}
	return bb[0], nil
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 255
	}
}

// parseNumber tries to interpret s as a number.
// The function returns [types.Integer] or [types.Float] if s is a valid
// number, and nil otherwise.
func parseNumber(s []byte) types.Object {
	if x, err := strconv.Atoi(string(s)); err == nil {
		return types.Integer(x)
	}

	digits := 0
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
		case i == 0 && (c == '+' || c == '-'):
		default:
			return nil
		}
	}
	if digits == 0 {
		return nil
	}
	y, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(y, 0) || math.IsNaN(y) {
		return nil
	}
	return types.Float(y)
}

var errParse = errors.New("content stream: malformed hex string")

// operator is a content stream operator, or one of the delimiters which
// open or close an array or a dictionary.
type operator string

// These methods implement [types.Object].

func (x operator) Clone() types.Object { return x }
func (x operator) PDFString() string   { return string(x) }
func (x operator) String() string      { return string(x) }

type characterClass byte

const (
	regular characterClass = iota
	whiteSpace
	delimiter
)

var class [256]characterClass

func init() {
	for _, c := range []byte{0, '\t', '\n', '\f', '\r', ' '} {
		class[c] = whiteSpace
	}
	for _, c := range []byte("()<>[]{}/%") {
		class[c] = delimiter
	}
}
