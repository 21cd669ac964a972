package ir

import (
	"fmt"
	"maps"
	"slices"
)

// FromAny builds a tree from the generic Go representation used by
// reflection-based decoders: nil, bool, numbers, string, []any, and
// map[string]any. Map members are ordered by key, since Go maps carry
// no order of their own.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case float64:
		return FromFloat(t), nil
	case float32:
		return FromFloat(float64(t)), nil
	case int:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		return FromFloat(float64(t)), nil
	case string:
		return FromString(t), nil
	case []any:
		res := Array()
		for _, e := range t {
			c, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(c)
		}
		return res, nil
	case map[string]any:
		res := Object()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			c, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, c)
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("cannot represent key %v (%T)", k, k)
			}
			m[ks] = e
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("cannot represent %T", v)
}

// Any converts the tree to the generic Go representation. Raw nodes
// degrade to their text payload.
func (y *Node) Any() any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		return y.Float64
	case StringType, RawType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.Any()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Values))
		for _, v := range y.Values {
			res[v.Key] = v.Any()
		}
		return res
	}
	return nil
}
