// Package token scans the lexical elements shared by the supported dialects
// and maps byte offsets to line and column positions.
//
// A [Scanner] runs in one of two modes. [TokenJSON] scans strict
// interchange text. [TokenLiteral] additionally accepts single-quoted
// strings, JavaScript escapes, comments, bare identifiers, hexadecimal
// integers, digit separators and the relaxed decimal forms ".5", "5." and
// "+5".
package token
