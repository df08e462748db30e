package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
)

// Eval evaluates code against doc and env and converts the result to a
// document value.
func Eval(code string, doc ir.Value, env Env) (ir.Value, error) {
	x, err := run(code, doc, env)
	if err != nil {
		return nil, err
	}
	res, err := gomap.FromAny(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %q gave %T: %w", ErrResult, code, x, err)
	}
	return res, nil
}

// Test evaluates code and reports the truth of the result.
func Test(code string, doc ir.Value, env Env) (bool, error) {
	v, err := Eval(code, doc, env)
	if err != nil {
		return false, err
	}
	return ir.Truth(v), nil
}

func run(code string, doc ir.Value, env Env) (any, error) {
	program, err := expr.Compile(code, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, code, err)
	}
	vars := env.vars(doc)
	if debug.Eval() {
		debug.Logf("eval %q in env ", code)
		debug.LogAny(vars)
	}
	x, err := expr.Run(program, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, code, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", code, x)
	}
	return x, nil
}
