// Package encode renders IR nodes to JSON text.
//
// # Usage
//
//	// Render compact JSON
//	node := ir.Object()
//	node.Set("name", ir.FromString("alice"))
//	node.Set("age", ir.FromInt(30))
//	out, err := encode.Print(node)
//
//	// Render human-readable JSON
//	out, err := encode.Print(node, encode.Pretty(true))
//
//	// Render into caller-owned storage
//	buf := buffer.Fixed(make([]byte, 256))
//	err := encode.PrintTo(node, buf)
//
// # Related Packages
//
//   - github.com/signadot/jsontree/ir - IR representation
//   - github.com/signadot/jsontree/parse - Parse text to IR
package encode
