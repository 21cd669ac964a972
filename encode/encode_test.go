package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/jsontree/buffer"
	"github.com/signadot/jsontree/ir"
)

func sampleDoc() *ir.Node {
	doc := ir.Object()
	doc.Set("name", ir.FromString("and/or"))
	doc.Set("count", ir.FromInt(3))
	doc.Set("tags", ir.FromStrings([]string{"a", "b"}))
	doc.Set("on", ir.FromBool(true))
	doc.Set("gone", ir.Null())
	return doc
}

func TestPrintCompact(t *testing.T) {
	got, err := Print(sampleDoc())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"and/or","count":3,"tags":["a","b"],"on":true,"gone":null}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestPrintPretty(t *testing.T) {
	got, err := Print(sampleDoc(), Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"name\":\t\"and/or\",\n\t\"count\":\t3,\n\t\"tags\":\t[\"a\", \"b\"],\n\t\"on\":\ttrue,\n\t\"gone\":\tnull\n}"
	if string(got) != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestPrintNested(t *testing.T) {
	doc := ir.Object()
	inner := ir.Object()
	inner.Set("b", ir.FromInt(1))
	doc.Set("a", inner)
	got, err := Print(doc, Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"a\":\t{\n\t\t\"b\":\t1\n\t}\n}"
	if string(got) != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestPrintObjectInArray(t *testing.T) {
	doc := ir.Object()
	arr := ir.Array()
	inner := ir.Object()
	inner.Set("a", ir.FromInt(1))
	arr.Append(inner)
	doc.Set("b", arr)
	got, err := Print(doc, Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	// the array itself is a nesting level: its object element indents
	// members three deep and closes two deep
	want := "{\n\t\"b\":\t[{\n\t\t\t\"a\":\t1\n\t\t}]\n}"
	if string(got) != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestEmptyContainers(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		if got := mustPrint(t, ir.Array(), Pretty(pretty)); got != "[]" {
			t.Errorf("array pretty=%v: %q", pretty, got)
		}
		if got := mustPrint(t, ir.Object(), Pretty(pretty)); got != "{}" {
			t.Errorf("object pretty=%v: %q", pretty, got)
		}
	}
}

func TestArrayOneLine(t *testing.T) {
	arr := ir.FromInts([]int{1, 2, 3})
	if got := mustPrint(t, arr); got != "[1,2,3]" {
		t.Errorf("compact: %q", got)
	}
	if got := mustPrint(t, arr, Pretty(true)); got != "[1, 2, 3]" {
		t.Errorf("pretty: %q", got)
	}
}

func TestRawVerbatim(t *testing.T) {
	doc := ir.Array()
	doc.Append(ir.Raw(`{"pre":"rendered"}`))
	doc.Append(ir.FromInt(2))
	if got := mustPrint(t, doc); got != `[{"pre":"rendered"},2]` {
		t.Errorf("raw: %q", got)
	}
}

func TestInvalidNode(t *testing.T) {
	if _, err := Print(&ir.Node{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v, want ErrEncoding", err)
	}
}

func TestPrintToFixed(t *testing.T) {
	doc := sampleDoc()
	full, err := Print(doc)
	if err != nil {
		t.Fatal(err)
	}
	d := make([]byte, len(full))
	b := buffer.Fixed(d)
	if err := PrintTo(doc, b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), full) {
		t.Errorf("fixed render differs: %s", b.Bytes())
	}
	// one byte short must fail, not write past the storage
	b = buffer.Fixed(d[:len(full)-1])
	if err := PrintTo(doc, b); !errors.Is(err, buffer.ErrFixedFull) {
		t.Errorf("got %v, want ErrFixedFull", err)
	}
}

func TestSizeHint(t *testing.T) {
	doc := sampleDoc()
	small := mustPrint(t, doc, SizeHint(1))
	large := mustPrint(t, doc, SizeHint(1<<16))
	if small != large {
		t.Errorf("hint changed output: %q vs %q", small, large)
	}
}

func TestEncodeWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(ir.FromFloat(0.5), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "0.500000" {
		t.Errorf("got %q", buf.String())
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromString("x")); got != `"x"` {
		t.Errorf("got %q", got)
	}
}

func TestColorsPassthrough(t *testing.T) {
	// with colors disabled fatih/color emits no escapes, so colored
	// output must match plain output
	doc := sampleDoc()
	plain := mustPrint(t, doc, Pretty(true))
	colored := mustPrint(t, doc, Pretty(true), EncodeColors(NewColors()))
	if plain != colored {
		t.Skip("terminal colors enabled")
	}
}

func mustPrint(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	d, err := Print(node, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
