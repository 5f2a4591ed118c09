package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object from m with its keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object in the order of kvs. A repeated key keeps
// its first position and its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Set binds key to v in the object y, replacing any existing value in place
// or appending a new entry.
func (y *Node) Set(key string, v *Node) {
	v.Parent = y
	v.ParentField = key
	if i := y.FieldIndex(key); i >= 0 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	})
	v.ParentIndex = i
	y.Values = append(y.Values, v)
}

// Append adds v as the last element of the array y.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// FieldIndex returns the position of key in the object y, or -1.
func (y *Node) FieldIndex(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	if i := y.FieldIndex(field); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// Keys returns the object keys of y in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Len is the number of elements of an array or entries of an object, and 0
// for scalars.
func (y *Node) Len() int {
	if y.Type.IsLeaf() {
		return 0
	}
	return len(y.Values)
}

// Number returns the numeric value of a number node as a float64.
func (y *Node) Number() float64 {
	switch {
	case y.Int64 != nil:
		return float64(*y.Int64)
	case y.Float64 != nil:
		return *y.Float64
	}
	return 0
}

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

// reindex restores the back references of the children of y starting at
// position from.
func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		v := y.Values[i]
		v.Parent = y
		v.ParentIndex = i
		if y.Type == ObjectType {
			f := y.Fields[i]
			f.Parent = y
			f.ParentIndex = i
			f.ParentField = f.String
			v.ParentField = f.String
		} else {
			v.ParentField = ""
		}
	}
}
