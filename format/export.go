package format

import "strings"

// ExportFormat names a downloadable rendering of a document. Unknown
// formats are kept as-is so that exporting can fall back to JSON text
// in a .txt file.
type ExportFormat string

const (
	ExportJSON   ExportFormat = "json"
	ExportJS     ExportFormat = "js"
	ExportPython ExportFormat = "python"
)

func ParseExportFormat(v string) ExportFormat {
	switch strings.ToLower(v) {
	case "json", "j":
		return ExportJSON
	case "js", "javascript":
		return ExportJS
	case "python", "py":
		return ExportPython
	}
	return ExportFormat(v)
}

// Known reports whether f is one of the supported export formats.
func (f ExportFormat) Known() bool {
	switch f {
	case ExportJSON, ExportJS, ExportPython:
		return true
	}
	return false
}

// Dialect returns the dialect whose rendering backs the export.
func (f ExportFormat) Dialect() Dialect {
	switch f {
	case ExportJS:
		return ObjectLiteralDialect
	case ExportPython:
		return DictLiteralDialect
	default:
		return JSONDialect
	}
}

// Filename returns the name of the downloaded artifact.
func (f ExportFormat) Filename() string {
	if !f.Known() {
		return "data.txt"
	}
	return "data" + f.Dialect().Suffix()
}

// ExportFor returns the export format matching a dialect.
func ExportFor(d Dialect) ExportFormat {
	switch d {
	case ObjectLiteralDialect:
		return ExportJS
	case DictLiteralDialect:
		return ExportPython
	default:
		return ExportJSON
	}
}
