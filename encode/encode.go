package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool

	dialect format.Dialect
	Color   func(ir.Type, ColorAttr, string) string
}

// Encode writes node in the selected dialect, json by default, followed
// by a newline unless the output is wire formatted.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if !es.dialect.Valid() {
		return fmt.Errorf("%w: %d", format.ErrUnsupportedDialect, int(es.dialect))
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, quoteString(node.String, es)))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, boolText(node.Bool, es)))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, nullText(es)))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func quoteString(v string, es *EncState) string {
	if es.dialect == format.DictLiteralDialect {
		return token.Quote(v, '\'')
	}
	return token.Quote(v, '"')
}

func quoteField(k string, es *EncState) string {
	switch es.dialect {
	case format.ObjectLiteralDialect:
		return token.KeyText(k, '"')
	default:
		return quoteString(k, es)
	}
}

func boolText(v bool, es *EncState) string {
	switch {
	case es.dialect != format.DictLiteralDialect:
		return strconv.FormatBool(v)
	case v:
		return "True"
	default:
		return "False"
	}
}

func nullText(es *EncState) string {
	if es.dialect == format.DictLiteralDialect {
		return "None"
	}
	return "null"
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var text string
	switch {
	case node.Int64 != nil:
		text = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v has no literal form in %s", ErrEncoding, f, es.dialect)
		}
		text = token.FormatFloat(f)
	default:
		return fmt.Errorf("%w: number without a value", ErrEncoding)
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, text))
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object with %d keys and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, field := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := applyColor(es, ir.ObjectType, FieldColor, quoteField(field.String, es))
		if err := writeString(w, key); err != nil {
			return err
		}
		colon := ": "
		if es.wire && es.dialect == format.JSONDialect {
			colon = ":"
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeComma(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeComma(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func writeComma(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ","
	if es.wire && es.dialect != format.JSONDialect {
		sep = ", "
	}
	return writeSep(w, es, cType, sep)
}
