package ir

import "math"

// tolerance matches the encoder's integer-detection epsilon, so two
// trees that print identically compare equal.
const tolerance = 2.220446049250313e-16

// Equal reports whether a and b have the same types, keys, child order,
// and values. Numbers compare within the encoder's tolerance.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if math.IsNaN(a.Float64) || math.IsNaN(b.Float64) {
			return math.IsNaN(a.Float64) == math.IsNaN(b.Float64)
		}
		return math.Abs(a.Float64-b.Float64) <= tolerance
	case StringType, RawType:
		return a.String == b.String
	case ArrayType, ObjectType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if a.Values[i].Key != b.Values[i].Key {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
