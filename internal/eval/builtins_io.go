package eval

import (
	"io"
	"strings"

	"github.com/lispy-lang/lispy/internal/value"
)

// registerIOBuiltins wires `print` and `error`.
func (i *Interpreter) registerIOBuiltins() {
	i.builtin("print", func(env *value.Environment, args []*value.Value) *value.Value {
		parts := make([]string, len(args))
		for idx, a := range args {
			parts[idx] = a.Display()
		}
		io.WriteString(i.Out, strings.Join(parts, " ")+"\n")
		return value.NewSExpr()
	})

	i.builtin("error", func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireExactly("error", args, 1); e != nil {
			return e
		}
		if e := requireText(args[0]); e != nil {
			return e
		}
		return value.NewError("%s", args[0].Str)
	})
}
