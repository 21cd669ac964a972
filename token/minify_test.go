package token

import "testing"

func TestMinify(t *testing.T) {
	mts := []struct{ in, want string }{
		{in: `{ "a" : 1 }`, want: `{"a":1}`},
		{in: "[\n\t1,\r\n\t2\n]", want: "[1,2]"},
		{in: "// leading comment\n{}", want: "{}"},
		{in: "{\"a\":1 // trailing\n}", want: "{\"a\":1}"},
		{in: "/* block */[1, /* mid */ 2]", want: "[1,2]"},
		{in: "/* unclosed", want: ""},
		// comment and whitespace characters inside strings survive
		{in: `{"k": "a b // c /* d */"}`, want: `{"k":"a b // c /* d */"}`},
		{in: `"esc \" // not a comment"`, want: `"esc \" // not a comment"`},
		{in: "", want: ""},
	}
	for _, mt := range mts {
		if got := string(Minify([]byte(mt.in))); got != mt.want {
			t.Errorf("Minify(%q) = %q, want %q", mt.in, got, mt.want)
		}
	}
}

func TestPos(t *testing.T) {
	doc := []byte("{\n  \"a\": 1\n}")
	p := PosAt(doc, 0)
	if l, c := p.LineCol(); l != 1 || c != 1 {
		t.Errorf("offset 0: %d:%d", l, c)
	}
	p = PosAt(doc, 4) // the quote opening "a"
	if l, c := p.LineCol(); l != 2 || c != 3 {
		t.Errorf("offset 4: %d:%d", l, c)
	}
	if got := p.String(); got != "2:3 (byte 4)" {
		t.Errorf("String() = %q", got)
	}
}
