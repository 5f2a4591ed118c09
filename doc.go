// Package litview views and edits literal data documents written as json,
// JavaScript object literals or Python dict literals.
//
// A [Document] ties the parser, formatter and tree operations together for
// one dialect:
//
//	doc := litview.New(format.DictLiteralDialect)
//	if err := doc.Load(text); err != nil {
//	    fmt.Println(litview.DescribeError(err, text))
//	    return
//	}
//	doc.Move(ir.MustParsePath("settings.theme"), ir.Path{})
//	out, err := doc.FormatAs(format.JSONDialect)
//
// # Related Packages
//
//   - github.com/signadot/litview/parse - dialect parsers
//   - github.com/signadot/litview/encode - formatting and export
//   - github.com/signadot/litview/ir - values, paths and moves
//   - github.com/signadot/litview/treeview - text tree rendering
package litview
