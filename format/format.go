package format

import (
	"errors"
	"fmt"
)

// Dialect is one of the textual notations a document may be written in.
type Dialect int

const (
	JSONDialect Dialect = iota
	ObjectLiteralDialect
	DictLiteralDialect
)

var ErrUnsupportedDialect = errors.New("unsupported dialect")

func ParseDialect(v string) (Dialect, error) {
	d, ok := map[string]Dialect{
		"j":          JSONDialect,
		"json":       JSONDialect,
		"js":         ObjectLiteralDialect,
		"javascript": ObjectLiteralDialect,
		"object":     ObjectLiteralDialect,
		"py":         DictLiteralDialect,
		"python":     DictLiteralDialect,
		"dict":       DictLiteralDialect,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDialect, v)
}

func (d Dialect) String() string {
	b, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case JSONDialect:
		return []byte("json"), nil
	case ObjectLiteralDialect:
		return []byte("javascript"), nil
	case DictLiteralDialect:
		return []byte("python"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a dialect>", d)
	}
}

func (d *Dialect) UnmarshalText(b []byte) error {
	pd, err := ParseDialect(string(b))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Dialect) Valid() bool {
	switch d {
	case JSONDialect, ObjectLiteralDialect, DictLiteralDialect:
		return true
	}
	return false
}

// Suffix returns the file extension for this dialect (including the dot).
func (d Dialect) Suffix() string {
	switch d {
	case JSONDialect:
		return ".json"
	case ObjectLiteralDialect:
		return ".js"
	case DictLiteralDialect:
		return ".py"
	default:
		return ".txt"
	}
}

// DialectForSuffix maps a file extension back to its dialect.
func DialectForSuffix(suffix string) (Dialect, bool) {
	for _, d := range AllDialects() {
		if d.Suffix() == suffix {
			return d, true
		}
	}
	return 0, false
}

// AllDialects returns all supported dialects in preference order.
func AllDialects() []Dialect {
	return []Dialect{JSONDialect, ObjectLiteralDialect, DictLiteralDialect}
}
