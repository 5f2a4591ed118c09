// Package encode renders IR nodes as document text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "ok", Val: ir.FromBool(true)},
//	})
//	err := encode.Encode(node, os.Stdout, encode.EncodeDictLiteral())
//
// writes
//
//	{
//	    'name': 'alice',
//	    'ok': True
//	}
//
// Output is indented by four spaces per level with one element per line and
// no trailing commas. Empty composites are written as [] and {}. Numbers
// are written the way JavaScript prints them.
//
// [Export] wraps the encoders for saving a document to a file.
package encode
