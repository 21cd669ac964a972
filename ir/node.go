package ir

import "math"

// Node is one JSON value instance.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Key names this node as a member of a parent object. It is empty
	// and meaningless for array elements and detached nodes.
	Key string

	// Values holds the ordered children of Array and Object nodes.
	Values []*Node

	String  string // String and Raw payload
	Bool    bool
	Float64 float64
	Int     int32 // saturated integer mirror of Float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	y := &Node{Type: BoolType, Bool: v}
	if v {
		y.Int = 1
	}
	return y
}

func FromInt(v int64) *Node {
	y := &Node{Type: NumberType}
	y.SetNumber(float64(v))
	return y
}

func FromFloat(f float64) *Node {
	y := &Node{Type: NumberType}
	y.SetNumber(f)
	return y
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// Raw returns a node whose payload is copied into the output verbatim
// when encoded, bypassing escaping. The caller is responsible for v
// being well-formed JSON text.
func Raw(v string) *Node {
	return &Node{Type: RawType, String: v}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

// SetNumber sets the numeric value, saturating the integer mirror at
// the 32-bit bounds.
func (y *Node) SetNumber(f float64) {
	y.Float64 = f
	switch {
	case f >= math.MaxInt32:
		y.Int = math.MaxInt32
	case f <= math.MinInt32:
		y.Int = math.MinInt32
	default:
		y.Int = int32(f)
	}
}

// Clone returns a deep copy of y, detached from y's parent.
func (y *Node) Clone() *Node {
	res := &Node{
		Type:    y.Type,
		Key:     y.Key,
		String:  y.String,
		Bool:    y.Bool,
		Float64: y.Float64,
		Int:     y.Int,
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			c := v.Clone()
			c.Parent = res
			c.ParentIndex = i
			res.Values[i] = c
		}
	}
	return res
}

// Reference returns a node aliasing y's payload and children without
// copying them. Mutations of shared children are visible through both
// nodes; the alias itself is detached and has no key.
func Reference(y *Node) *Node {
	return &Node{
		Type:    y.Type,
		Values:  y.Values,
		String:  y.String,
		Bool:    y.Bool,
		Float64: y.Float64,
		Int:     y.Int,
	}
}

// Visit walks the tree in depth-first order, calling f twice per node,
// before (isPost false) and after (isPost true) its children. Returning
// false from the pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
