package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerLambdaBuiltins wires `\`: `\ formals_q body_q` builds a Lambda
// with a fresh, empty closure environment. The formals invariant (at most
// one `&`, exactly one symbol following it) is a construction-time check
// here; the binding-time behavior it enables lives in eval.go's
// applyLambda.
func (i *Interpreter) registerLambdaBuiltins() {
	i.builtin("\\", builtinLambda)
}

func builtinLambda(env *value.Environment, args []*value.Value) *value.Value {
	if e := requireExactly("\\", args, 2); e != nil {
		return e
	}
	formalsQ, bodyQ := args[0], args[1]
	if e := requireQExpr(formalsQ); e != nil {
		return e
	}
	if e := requireQExpr(bodyQ); e != nil {
		return e
	}

	ampersands := 0
	for idx, f := range formalsQ.Cells {
		if e := requireSymbol(f); e != nil {
			return e
		}
		if f.Str == "&" {
			ampersands++
			if idx != len(formalsQ.Cells)-2 {
				return value.NewError("Expected a single symbol following '&'")
			}
		}
	}
	if ampersands > 1 {
		return value.NewError("Expected a single symbol following '&'")
	}

	formals := append([]*value.Value(nil), formalsQ.Cells...)
	body := append([]*value.Value(nil), bodyQ.Cells...)
	return value.NewLambda(formals, body, value.NewEnv())
}
