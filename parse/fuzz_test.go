package parse

import (
	"testing"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`3.14`,
		`-1e10`,
		`""`,
		`"hello"`,

		// Arrays
		`[]`,
		`[1,2,3]`,
		`[[1],[2,[3]]]`,

		// Objects
		`{}`,
		`{"a":1,"b":2}`,
		`{"nested":{"object":[null,true]}}`,
		`{"users":[{"name":"alice"},{"name":"bob"}]}`,

		// Strings with escapes
		`"with\nnewline"`,
		`"with\ttab"`,
		`"with \"quotes\""`,
		`"\u00e9"`,
		`"\ud83d\ude00"`,

		// Edge cases
		` [ 1 , null ] `,
		`-0`,
		`1e308`,
		`{"a":`,
		`[1,2,`,
		`"\uD800"`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data, RequireFull())
		if err != nil {
			return // parse errors are expected for random input
		}

		// accepted input must render, and the rendering must parse.
		// the numeric formatting rules are lossy, so tree equality
		// holds only from the second rendering on: one reparse is
		// enough to reach the printer's fixed point.
		out, err := encode.Print(node)
		if err != nil {
			t.Fatalf("accepted %q but cannot render: %v", data, err)
		}
		t2, err := Parse(out, RequireFull())
		if err != nil {
			t.Fatalf("rendering %q of %q does not parse: %v", out, data, err)
		}
		out2, err := encode.Print(t2)
		if err != nil {
			t.Fatal(err)
		}
		t3, err := Parse(out2, RequireFull())
		if err != nil {
			t.Fatalf("second rendering %q does not parse: %v", out2, err)
		}
		if !ir.Equal(t2, t3) {
			t.Fatalf("reparsing changed the tree: %q vs %q", out, out2)
		}
		out3, err := encode.Print(t3)
		if err != nil {
			t.Fatal(err)
		}
		if string(out2) != string(out3) {
			t.Fatalf("rendering did not converge: %q then %q", out2, out3)
		}
	})
}
