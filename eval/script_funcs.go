package eval

import (
	"github.com/signadot/litview/ir"

	"github.com/expr-lang/expr"
)

func resolve(doc *ir.Node, path string) (*ir.Node, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return ir.Resolve(doc, p)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := resolve(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := resolve(doc, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("summary", func(params ...any) (any, error) {
			res, err := resolve(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.Summary(res), nil
		},
			new(func(string) string)),
	}
}
