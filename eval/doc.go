// Package eval runs expr-lang expressions over documents.
//
// Queries see the document as the variable doc, in its plain Go form
// (see [ToAny]), and may call
//
//	getpath(path)  the value at path
//	haspath(path)  whether path resolves
//	summary(path)  "Array[n]", "Object[n]" or the scalar type
//
// Paths use the [ir.ParsePath] syntax, e.g. "users[0].name".
package eval
