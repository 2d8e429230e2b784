package eval

import (
	"io"

	"github.com/lispy-lang/lispy/internal/help"
	"github.com/lispy-lang/lispy/internal/loader"
	"github.com/lispy-lang/lispy/internal/parser"
	"github.com/lispy-lang/lispy/internal/value"
)

// Interpreter owns the global environment and the sink primitives like
// `print` and `load` report through. Bundling Out alongside Global is what
// lets `print`/`load` write diagnostics without eval.go's pure Eval needing
// an io.Writer at all.
type Interpreter struct {
	Global *value.Environment
	Out    io.Writer
}

// New builds a fresh Interpreter with every primitive registered on a new
// global environment, bound to this Interpreter's Out.
func New(out io.Writer) *Interpreter {
	i := &Interpreter{Global: value.NewGlobal(), Out: out}
	i.registerBuiltins()
	return i
}

// builtin wraps a concretely typed primitive function into the
// value.BuiltinFunc shape (which types its env argument as `any` to avoid
// value importing eval), and registers it under name on the global
// environment.
func (i *Interpreter) builtin(name string, fn func(env *value.Environment, args []*value.Value) *value.Value) {
	i.Global.Put(name, value.NewBuiltin(name, func(env any, args []*value.Value) *value.Value {
		return fn(env.(*value.Environment), args)
	}))
}

func (i *Interpreter) registerBuiltins() {
	i.registerListBuiltins()
	i.registerArithBuiltins()
	i.registerComparisonBuiltins()
	i.registerControlBuiltins()
	i.registerBindingBuiltins()
	i.registerLambdaBuiltins()
	i.registerIOBuiltins()
	i.registerLoadBuiltin()
	i.registerHelpBuiltins()
}

// LoadFile reads a file fully via internal/loader, parses it in file mode,
// then evaluates each form into the global environment, reporting (but not
// aborting on) parse or evaluation errors. Shared by the `load` primitive,
// cmd/lispy's file-argument mode, and stdlib bootstrap.
func (i *Interpreter) LoadFile(path string) *value.Value {
	src, err := loader.ReadSource(path)
	if err != nil {
		return value.NewError("%s", err.Error())
	}
	return i.LoadString(src)
}

// LoadString runs LoadFile's file-mode evaluation loop directly against
// already-in-memory source, for content with no path on disk to read, such
// as the standard library bootstrap. Every top-level form's error is
// reported and loading continues with the next one. The result is always
// an empty SExpression once the source itself was read; a per-form failure
// is reported to Out, not surfaced as the return value, so callers
// composing `load` with other forms (e.g. `(do (load "lib.lispy") (foo))`)
// still see `(foo)` run.
func (i *Interpreter) LoadString(src string) *value.Value {
	global := i.Global.Root()
	for _, form := range parser.ParseFile(src) {
		if form.IsErr() {
			i.report(form)
			continue
		}
		if result := Eval(global, form); result.IsErr() {
			i.report(result)
		}
	}
	return value.NewSExpr()
}

func (i *Interpreter) report(v *value.Value) {
	io.WriteString(i.Out, v.Debug()+"\n")
}

func (i *Interpreter) registerHelpBuiltins() {
	i.builtin("doc", func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireExactly("doc", args, 2); e != nil {
			return e
		}
		syms := args[0]
		if e := requireQExpr(syms); e != nil {
			return e
		}
		if len(syms.Cells) != 1 {
			return value.NewError("'doc' expected a single symbol in {}, got %d", len(syms.Cells))
		}
		sym := syms.Cells[0]
		if e := requireSymbol(sym); e != nil {
			return e
		}
		text := args[1]
		if e := requireText(text); e != nil {
			return e
		}
		env.SetDoc(sym.Str, text.Str)
		return value.NewSExpr()
	})

	i.builtin("help", func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireExactly("help", args, 1); e != nil {
			return e
		}
		syms := args[0]
		if e := requireQExpr(syms); e != nil {
			return e
		}
		if len(syms.Cells) != 1 {
			return value.NewError("'help' expected a single symbol in {}, got %d", len(syms.Cells))
		}
		sym := syms.Cells[0]
		if e := requireSymbol(sym); e != nil {
			return e
		}
		if sym.Str == "env" {
			io.WriteString(i.Out, help.RenderEnvSnapshot(env)+"\n")
			return value.NewSExpr()
		}
		io.WriteString(i.Out, help.RenderDoc(env, sym.Str)+"\n")
		return value.NewSExpr()
	})
}
