package encode

import (
	"github.com/signadot/jsontree/ir"
)

func MustString(node *ir.Node) string {
	d, err := Print(node)
	if err != nil {
		panic(err)
	}
	return string(d)
}
