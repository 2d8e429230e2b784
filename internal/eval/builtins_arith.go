package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerArithBuiltins wires `+ - * /`: Integer-only folds, with `-`
// additionally supporting unary negation on a single operand.
func (i *Interpreter) registerArithBuiltins() {
	i.builtin("+", builtinAdd)
	i.builtin("-", builtinSub)
	i.builtin("*", builtinMul)
	i.builtin("/", builtinDiv)
}

func integers(name string, args []*value.Value) ([]int64, *value.Value) {
	if e := requireAtLeast(name, args, 1); e != nil {
		return nil, e
	}
	ints := make([]int64, len(args))
	for i, a := range args {
		if e := requireInteger(a); e != nil {
			return nil, e
		}
		ints[i] = a.Int
	}
	return ints, nil
}

func builtinAdd(env *value.Environment, args []*value.Value) *value.Value {
	ints, errVal := integers("+", args)
	if errVal != nil {
		return errVal
	}
	sum := ints[0]
	for _, n := range ints[1:] {
		sum += n
	}
	return value.NewInteger(sum)
}

func builtinSub(env *value.Environment, args []*value.Value) *value.Value {
	ints, errVal := integers("-", args)
	if errVal != nil {
		return errVal
	}
	if len(ints) == 1 {
		return value.NewInteger(-ints[0])
	}
	diff := ints[0]
	for _, n := range ints[1:] {
		diff -= n
	}
	return value.NewInteger(diff)
}

func builtinMul(env *value.Environment, args []*value.Value) *value.Value {
	ints, errVal := integers("*", args)
	if errVal != nil {
		return errVal
	}
	product := ints[0]
	for _, n := range ints[1:] {
		product *= n
	}
	return value.NewInteger(product)
}

func builtinDiv(env *value.Environment, args []*value.Value) *value.Value {
	ints, errVal := integers("/", args)
	if errVal != nil {
		return errVal
	}
	quotient := ints[0]
	for _, n := range ints[1:] {
		if n == 0 {
			return value.NewError("Division by zero")
		}
		quotient /= n // truncates toward zero
	}
	return value.NewInteger(quotient)
}
