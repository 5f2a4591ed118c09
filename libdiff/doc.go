// Package libdiff compares documents.
//
// # Usage
//
//	// Structural diff of two values
//	for _, c := range libdiff.Diff(oldNode, newNode) {
//	    fmt.Println(c)
//	}
//
//	// Line diff of two renderings
//	fmt.Print(libdiff.Lines(oldText, newText))
//
// Both are built on github.com/sergi/go-diff.
package libdiff
