package main

import (
	"testing"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

func parseDoc(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.Parse([]byte(s), parse.RequireFull())
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return y
}

func TestPatchPipeline(t *testing.T) {
	py := parseDoc(t, `[{"op":"replace","path":"/a","value":2}]`)
	pc, err := encode.Print(py)
	if err != nil {
		t.Fatal(err)
	}
	ops, err := jsonpatch.DecodePatch(pc)
	if err != nil {
		t.Fatal(err)
	}
	td, err := encode.Print(parseDoc(t, `{"a":1,"b":[1,2]}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := ops.Apply(td)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse.Parse(out, parse.RequireFull())
	if err != nil {
		t.Fatalf("patched output does not parse: %v", err)
	}
	if !ir.Equal(got, parseDoc(t, `{"a":2,"b":[1,2]}`)) {
		t.Errorf("patched tree: %s", encode.MustString(got))
	}
}

func TestEvalPipeline(t *testing.T) {
	y := parseDoc(t, `{"xs":[1,2,3]}`)
	env := map[string]any{"doc": y.Any()}
	v, err := expr.Eval("len(doc.xs)", env)
	if err != nil {
		t.Fatal(err)
	}
	res, err := ir.FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if res.Type != ir.NumberType || res.Int != 3 {
		t.Errorf("got %s", encode.MustString(res))
	}
}

func TestYAMLPipeline(t *testing.T) {
	var v any
	if err := yaml.Unmarshal([]byte("a: 1\nbs:\n  - x\n  - y\n"), &v); err != nil {
		t.Fatal(err)
	}
	y, err := ir.FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	out, err := encode.Print(y)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"a":1,"bs":["x","y"]}` {
		t.Errorf("yaml to json: %s", out)
	}

	// and back: marshal the tree and re-read it
	d, err := yaml.Marshal(y.Any())
	if err != nil {
		t.Fatal(err)
	}
	var v2 any
	if err := yaml.Unmarshal(d, &v2); err != nil {
		t.Fatal(err)
	}
	y2, err := ir.FromAny(v2)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(y, y2) {
		t.Errorf("yaml round trip changed the tree: %s", encode.MustString(y2))
	}
}
