package parse

import (
	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/token"
)

type parseOpts struct {
	dialect   format.Dialect
	positions map[*ir.Node]int
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	switch o.dialect {
	case format.ObjectLiteralDialect:
		return []token.TokenOpt{token.TokenLiteral()}
	default:
		// dict literals are normalized to json text first
		return []token.TokenOpt{token.TokenJSON()}
	}
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseDialect(format.JSONDialect)
}

func ParseObjectLiteral() ParseOption {
	return ParseDialect(format.ObjectLiteralDialect)
}

func ParseDictLiteral() ParseOption {
	return ParseDialect(format.DictLiteralDialect)
}

func ParseDialect(d format.Dialect) ParseOption {
	return func(o *parseOpts) { o.dialect = d }
}

// ParsePositions records in m the offset in the input at which each
// produced node, including object key nodes, starts.
func ParsePositions(m map[*ir.Node]int) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
