// Package parse turns document text into an [ir.Node].
//
// Three dialects are accepted, selected with [ParseDialect]:
//
//   - json: strict interchange text.
//   - javascript: object-literal source. Keys may be bare identifiers or
//     numbers, strings may be single-quoted, comments and one trailing
//     comma are allowed. Only literals are accepted; nothing is evaluated.
//   - python: dict-literal source. True, False and None are rewritten
//     outside strings, single-quoted strings become double-quoted, and the
//     result is parsed as json. Comments, tuples, sets, triple-quoted
//     strings and numeric underscores are rejected with ErrUnsupported.
//
// Failures are reported as a *SyntaxError carrying the offset in the
// original text, which [token.Locate] turns into a line and column.
package parse
