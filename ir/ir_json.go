package ir

import (
	"encoding/json"
	"fmt"
)

// The JSON form of a node is a dump of the IR itself, not the document it
// represents. encode renders documents.
type irBase struct {
	Type    Type     `json:"type"`
	Fields  []*Node  `json:"fields,omitempty"`
	Values  []*Node  `json:"values,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Values = tmp.Values
	y.Fields = tmp.Fields
	y.Bool = tmp.Bool
	y.String = tmp.String
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields and %d values", len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for _, f := range y.Fields {
			if f.Type != StringType {
				return fmt.Errorf("invalid field type %s", f.Type)
			}
			if seen[f.String] {
				return fmt.Errorf("duplicate field %q", f.String)
			}
			seen[f.String] = true
		}
		y.reindex(0)
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("array with %d fields", len(y.Fields))
		}
		y.reindex(0)
	case NumberType:
		if (y.Int64 == nil) == (y.Float64 == nil) {
			return fmt.Errorf("number needs exactly one of int or float")
		}
	}
	return nil
}

// ToJSON dumps the IR of node.
func ToJSON(node *Node) ([]byte, error) {
	return json.MarshalIndent(node, "", "  ")
}

func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
