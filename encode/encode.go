package encode

import (
	"fmt"
	"io"

	"github.com/signadot/jsontree/buffer"
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

type EncState struct {
	depth  int
	pretty bool
	hint   int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Print(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Print renders node and returns the text. The result does not alias
// any internal storage.
func Print(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	b := buffer.New(es.hint)
	if err := encode(node, b, es); err != nil {
		return nil, err
	}
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out, nil
}

// PrintTo renders node into b. With a fixed buffer the rendering fails
// with buffer.ErrFixedFull when the text does not fit; b then holds a
// truncated prefix and should be Reset before reuse.
func PrintTo(node *ir.Node, b *buffer.Buffer, opts ...EncodeOption) error {
	return encode(node, b, newEncState(opts))
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		hint: 64,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func encode(node *ir.Node, b *buffer.Buffer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.NullType:
		return writeValue(b, es, ir.NullType, "null")
	case ir.BoolType:
		if node.Bool {
			return writeValue(b, es, ir.BoolType, "true")
		}
		return writeValue(b, es, ir.BoolType, "false")
	case ir.NumberType:
		return encodeNumber(node, b, es)
	case ir.StringType:
		return encodeString(node.String, b, es, ValueColor)
	case ir.RawType:
		// pre-rendered text, emitted verbatim
		return writeValue(b, es, ir.RawType, node.String)
	case ir.ArrayType:
		return encodeArray(node, b, es)
	case ir.ObjectType:
		return encodeObject(node, b, es)
	default:
		return fmt.Errorf("%w: cannot render %s node", ErrEncoding, node.Type)
	}
}

func writeValue(b *buffer.Buffer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return b.AppendString(v)
}

func writeSep(b *buffer.Buffer, es *EncState, t ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return b.AppendString(sep)
}

func encodeNumber(node *ir.Node, b *buffer.Buffer, es *EncState) error {
	if es.Color == nil {
		return token.AppendNumber(b, node.Float64, node.Int)
	}
	tmp := buffer.New(26)
	if err := token.AppendNumber(tmp, node.Float64, node.Int); err != nil {
		return err
	}
	return b.AppendString(es.Color(ir.NumberType, ValueColor, string(tmp.Bytes())))
}

func encodeString(v string, b *buffer.Buffer, es *EncState, attr ColorAttr) error {
	if es.Color == nil {
		return token.AppendQuote(b, v)
	}
	tmp := buffer.New(len(v) + 2)
	if err := token.AppendQuote(tmp, v); err != nil {
		return err
	}
	return b.AppendString(es.Color(ir.StringType, attr, string(tmp.Bytes())))
}

func encodeArray(node *ir.Node, b *buffer.Buffer, es *EncState) error {
	if err := writeSep(b, es, ir.ArrayType, "["); err != nil {
		return err
	}
	sep := ","
	if es.pretty {
		sep = ", "
	}
	// elements stay on one line, but each one nests a level deeper, so
	// an object element indents its members past the array's own level
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(b, es, ir.ArrayType, sep); err != nil {
				return err
			}
		}
		if err := encode(v, b, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeSep(b, es, ir.ArrayType, "]")
}

func encodeObject(node *ir.Node, b *buffer.Buffer, es *EncState) error {
	if err := writeSep(b, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(b, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeMemberPrefix(b, es); err != nil {
			return err
		}
		if err := encodeKey(v.Key, b, es); err != nil {
			return err
		}
		if err := encode(v, b, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeSep(b, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeObjectClose(b, es); err != nil {
		return err
	}
	return writeSep(b, es, ir.ObjectType, "}")
}

func writeMemberPrefix(b *buffer.Buffer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	if err := b.AppendByte('\n'); err != nil {
		return err
	}
	return writeTabs(b, es.depth)
}

func writeObjectClose(b *buffer.Buffer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	if err := b.AppendByte('\n'); err != nil {
		return err
	}
	return writeTabs(b, es.depth)
}

func encodeKey(key string, b *buffer.Buffer, es *EncState) error {
	if err := encodeString(key, b, es, FieldColor); err != nil {
		return err
	}
	sep := ":"
	if es.pretty {
		sep = ":\t"
	}
	return writeSep(b, es, ir.ObjectType, sep)
}

func writeTabs(b *buffer.Buffer, n int) error {
	w, err := b.Ensure(n)
	if err != nil {
		return err
	}
	for i := range w {
		w[i] = '\t'
	}
	b.Advance(n)
	return nil
}
