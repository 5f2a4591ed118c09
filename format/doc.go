// Package format names the dialects litview reads and writes, and the
// export formats built on them.
//
// # Usage
//
//	d, err := format.ParseDialect("python")
//	if err != nil {
//	    return err // wraps format.ErrUnsupportedDialect
//	}
//	fmt.Println(d.Suffix()) // ".py"
//
//	f := format.ParseExportFormat("js")
//	fmt.Println(f.Filename()) // "data.js"
//
// # Related Packages
//
//   - github.com/signadot/litview/parse - Parse dialect text to IR
//   - github.com/signadot/litview/encode - Encode IR to dialect text
package format
