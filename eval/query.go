package eval

import (
	"fmt"

	"github.com/signadot/litview/debug"
	"github.com/signadot/litview/ir"

	"github.com/expr-lang/expr"
)

// Query evaluates an expr-lang expression against root, which is bound
// to the variable doc. The result is converted back to a node.
func Query(root *ir.Node, expression string) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("query %q", expression)
	}
	env := map[string]any{"doc": ToAny(root)}
	opts := append(exprOpts(root), expr.Env(env))
	prg, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return FromAny(res)
}
