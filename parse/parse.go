// Package parse provides JSON parsing support.
//
// Parse builds an ir.Node tree from a byte slice by recursive descent.
// Failures carry the byte position of the first offending byte via
// *ParseError; no partial tree is ever returned.
package parse

import (
	"bytes"

	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d}
	p.skipSpace()
	if p.off >= len(d) {
		return nil, p.errAt(ErrNoInput, p.off)
	}
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	if pOpts.requireFull {
		p.skipSpace()
		if p.off < len(p.d) {
			return nil, p.errAt(ErrTrailing, p.off)
		}
	}
	if pOpts.end != nil {
		*pOpts.end = p.off
	}
	return res, nil
}

// Valid reports whether d is a single well-formed JSON document with
// nothing after it.
func Valid(d []byte) bool {
	_, err := Parse(d, RequireFull())
	return err == nil
}

type parser struct {
	d   []byte
	off int
}

// bytes with value <= 32 are whitespace
func (p *parser) skipSpace() {
	for p.off < len(p.d) && p.d[p.off] <= 32 {
		p.off++
	}
}

func (p *parser) errAt(err error, off int) error {
	return &ParseError{Err: err, Pos: token.PosAt(p.d, off)}
}

// value parses one value at the current offset, which must not be past
// the end of input.
func (p *parser) value() (*ir.Node, error) {
	d := p.d[p.off:]
	switch {
	case bytes.HasPrefix(d, []byte("null")):
		p.off += 4
		return ir.Null(), nil
	case bytes.HasPrefix(d, []byte("false")):
		p.off += 5
		return ir.FromBool(false), nil
	case bytes.HasPrefix(d, []byte("true")):
		p.off += 4
		return ir.FromBool(true), nil
	}
	switch c := p.d[p.off]; {
	case c == '"':
		return p.string()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	case c == '[':
		return p.array()
	case c == '{':
		return p.object()
	}
	return nil, p.errAt(ErrValue, p.off)
}

func (p *parser) string() (*ir.Node, error) {
	s, n, err := token.Unquote(p.d[p.off:])
	if err != nil {
		return nil, p.errAt(err, p.off+n)
	}
	p.off += n
	return ir.FromString(s), nil
}

func (p *parser) number() (*ir.Node, error) {
	f, n, err := token.ScanNumber(p.d[p.off:])
	if err != nil {
		return nil, p.errAt(err, p.off)
	}
	p.off += n
	return ir.FromFloat(f), nil
}

func (p *parser) array() (*ir.Node, error) {
	arr := ir.Array()
	p.off++ // consume '['
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == ']' {
		p.off++
		return arr, nil
	}
	for {
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return arr, nil
		default:
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
	}
}

func (p *parser) object() (*ir.Node, error) {
	obj := ir.Object()
	p.off++ // consume '{'
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == '}' {
		p.off++
		return obj, nil
	}
	for {
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
		if p.d[p.off] != '"' {
			return nil, p.errAt(ErrValue, p.off)
		}
		// the member name is parsed with the string rule and lands in
		// the child's key slot, not its value
		key, n, err := token.Unquote(p.d[p.off:])
		if err != nil {
			return nil, p.errAt(err, p.off+n)
		}
		p.off += n
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
		if p.d[p.off] != ':' {
			return nil, p.errAt(ErrValue, p.off)
		}
		p.off++
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return obj, nil
		default:
			return nil, p.errAt(ErrUnterminatedContainer, p.off)
		}
	}
}
