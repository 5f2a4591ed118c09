package encode

import "github.com/signadot/litview/format"

type EncodeOption func(*EncState)

func EncodeDialect(d format.Dialect) EncodeOption {
	return func(es *EncState) { es.dialect = d }
}

func EncodeJSON() EncodeOption {
	return EncodeDialect(format.JSONDialect)
}

func EncodeObjectLiteral() EncodeOption {
	return EncodeDialect(format.ObjectLiteralDialect)
}

func EncodeDictLiteral() EncodeOption {
	return EncodeDialect(format.DictLiteralDialect)
}

// Depth sets the nesting level the output starts at.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire writes everything on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
