// Package value implements the Lispy runtime value model: a single tagged
// union covering every kind of datum the interpreter can produce, plus the
// environment that binds symbols to values.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the alternative a Value currently holds.
type Kind uint8

const (
	Error Kind = iota
	Integer
	Text
	Symbol
	SExpression
	QExpression
	Builtin
	Lambda
)

// BuiltinFunc is the host-implemented shape of a primitive. Env is typed as
// `any` here to avoid an import cycle back onto *Environment; internal/eval
// asserts it to *value.Environment on every call. args are already
// evaluated.
type BuiltinFunc func(env any, args []*Value) *Value

// Value is the single runtime datum type. Only the fields relevant to Kind
// are meaningful; the zero value of the others is ignored.
type Value struct {
	Kind Kind

	// Error
	ErrMsg string

	// Integer
	Int int64

	// Text / Symbol payload
	Str string

	// SExpression / QExpression children, in order
	Cells []*Value

	// Builtin
	BuiltinName string
	Fn          BuiltinFunc

	// Lambda
	Formals []*Value // Symbols, possibly containing the "&" sentinel
	Body    []*Value
	Closure *Environment
}

// Constructors

func NewError(format string, args ...any) *Value {
	return &Value{Kind: Error, ErrMsg: fmt.Sprintf(format, args...)}
}

func NewInteger(n int64) *Value {
	return &Value{Kind: Integer, Int: n}
}

func NewText(s string) *Value {
	return &Value{Kind: Text, Str: s}
}

func NewSymbol(s string) *Value {
	return &Value{Kind: Symbol, Str: s}
}

func NewSExpr(cells ...*Value) *Value {
	return &Value{Kind: SExpression, Cells: cells}
}

func NewQExpr(cells ...*Value) *Value {
	return &Value{Kind: QExpression, Cells: cells}
}

func NewBuiltin(name string, fn BuiltinFunc) *Value {
	return &Value{Kind: Builtin, BuiltinName: name, Fn: fn}
}

func NewLambda(formals []*Value, body []*Value, closure *Environment) *Value {
	return &Value{Kind: Lambda, Formals: formals, Body: body, Closure: closure}
}

// IsErr reports whether v is an Error Value.
func (v *Value) IsErr() bool { return v != nil && v.Kind == Error }

// Truthy treats Integer 0 as false and everything else, including
// non-Integers, as true.
func (v *Value) Truthy() bool {
	return v.Kind != Integer || v.Int != 0
}

// Equal is structural equality within a Kind. The closure environment of a
// Lambda and the callable of a Builtin are excluded.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Error:
		return v.ErrMsg == o.ErrMsg
	case Integer:
		return v.Int == o.Int
	case Text, Symbol:
		return v.Str == o.Str
	case SExpression, QExpression:
		return cellsEqual(v.Cells, o.Cells)
	case Builtin:
		return v.BuiltinName == o.BuiltinName
	case Lambda:
		return cellsEqual(v.Formals, o.Formals) && cellsEqual(v.Body, o.Body)
	default:
		return false
	}
}

func cellsEqual(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Display renders the user-facing form: Text is printed raw, everything
// else uses the debug form. This is what the `print` primitive uses.
func (v *Value) Display() string {
	if v.Kind == Text {
		return v.Str
	}
	return v.Debug()
}

// Debug renders the machine-readable form used by the REPL and by nested
// printing of children.
func (v *Value) Debug() string {
	switch v.Kind {
	case Error:
		return "Error: " + v.ErrMsg
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case Text:
		return quoteText(v.Str)
	case Symbol:
		return v.Str
	case SExpression:
		return "(" + debugJoin(v.Cells) + ")"
	case QExpression:
		return "{" + debugJoin(v.Cells) + "}"
	case Builtin:
		return "<" + v.BuiltinName + ">"
	case Lambda:
		body := "(\\ {" + debugJoin(v.Formals) + "} {" + debugJoin(v.Body) + "})"
		if bindings := v.Closure.debugBindings(); bindings != "" {
			body += " " + bindings
		}
		return body
	default:
		return "<unknown>"
	}
}

func debugJoin(cells []*Value) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.Debug()
	}
	return strings.Join(parts, " ")
}

// quoteText re-escapes \n, \t, \\ and " the way a Text literal is written.
// Every other character passes through unescaped.
func quoteText(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
