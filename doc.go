// Package jsontree parses JSON text into a mutable tree and renders
// trees back to JSON text.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"a": 1}`))
//	if err != nil {
//	    // err wraps a sentinel and carries the byte position
//	}
//	node.Set("b", ir.FromString("two"))
//	out, err := encode.Print(node, encode.Pretty(true))
//
// # Packages
//
//   - github.com/signadot/jsontree/ir - tree representation and splicing
//   - github.com/signadot/jsontree/parse - text to tree
//   - github.com/signadot/jsontree/encode - tree to text
//   - github.com/signadot/jsontree/token - string and number codec
//   - github.com/signadot/jsontree/buffer - output byte accumulator
package jsontree
