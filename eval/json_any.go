package eval

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"
)

// MarshalJSON encodes node through its plain Go form. Object keys come
// out sorted.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}

// ToAny converts node to nil, bool, int, float64, string, []any and
// map[string]any values.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		return node.Number()
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny is the inverse of ToAny. Values of other types are converted
// through their JSON encoding.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("number %v has no literal form", x)
		}
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	}
	if rv := reflect.ValueOf(v); rv.CanInt() {
		return ir.FromInt(rv.Int()), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}
