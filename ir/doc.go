// Package ir provides the in-memory value model shared by every dialect.
//
// # Node Structure
//
// A Node is a tagged union selected by its Type:
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64 for integers that fit, Float64 otherwise
//   - StringType: String
//   - ArrayType: ordered Values
//   - ObjectType: Fields[i] is the String key node for Values[i]
//
// Keys are unique within an object and keep their insertion order. Each
// child records its Parent, ParentIndex and ParentField, so PathOf can
// report where a node lives. These back references are maintained by the
// constructors, by Set and Append, and by Move.
//
// # Paths
//
// A Path is a sequence of key and index segments. Its string form is
// kinded:
//
//	a.b[0]
//	"x.y"[2].z
//
// ParsePath also accepts the dotted form a.0.b, where a numeric key
// addresses an array element.
//
// # Traversal and Mutation
//
// Entries, Len and Summary are the traversal API used by renderers.
// Resolve looks a path up. Move is the only structural mutation: it
// relocates a subtree, refusing to move a node into itself and never
// producing a duplicate key. A rejected move leaves the tree untouched.
//
// # Comparison and Hashing
//
//	equal := ir.Equal(a, b)
//	hash := node.Hash()
//
// Numbers compare by value, so an Int64 1 equals a Float64 1.0.
//
// Node structures are not safe for concurrent use.
package ir
