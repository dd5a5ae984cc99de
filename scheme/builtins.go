//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package scheme

// builtin constructs the *Procedure for name, or reports ok=false if
// no such built-in exists. This is the closed switch the registry
// (interpreter.go) caches by name on first lookup, grounded on the
// original implementation's Interpreter::FindFunc
// (original_source/.../basic/scheme.cpp), which enumerates every
// built-in name the same way.
func builtin(name string) (*Procedure, bool) {
	var fn func(args []Value) (Value, *SchemeError)
	switch name {
	case "+":
		fn = builtinAdd
	case "-":
		fn = builtinSub
	case "*":
		fn = builtinMul
	case "/":
		fn = builtinDiv
	case "max":
		fn = builtinMax
	case "min":
		fn = builtinMin
	case "abs":
		fn = builtinAbs
	case "=":
		fn = builtinNumEq
	case "<":
		fn = builtinLt
	case "<=":
		fn = builtinLe
	case ">":
		fn = builtinGt
	case ">=":
		fn = builtinGe
	case "number?":
		fn = builtinNumberP
	case "boolean?":
		fn = builtinBooleanP
	case "pair?":
		fn = builtinPairP
	case "null?":
		fn = builtinNullP
	case "list?":
		fn = builtinListP
	case "not":
		fn = builtinNot
	case "and":
		fn = builtinAnd
	case "or":
		fn = builtinOr
	case "cons":
		fn = builtinCons
	case "car":
		fn = builtinCar
	case "cdr":
		fn = builtinCdr
	case "list":
		fn = builtinList
	case "list-ref":
		fn = builtinListRef
	case "list-tail":
		fn = builtinListTail
	default:
		return nil, false
	}
	return &Procedure{Name: name, Fn: fn}, true
}

func asInteger(name string, v Value) (int64, *SchemeError) {
	n, ok := v.(Integer)
	if !ok {
		return 0, NewRuntimeError("%s: argument is not a number: %s", name, print(v))
	}
	return int64(n), nil
}

func builtinAdd(args []Value) (Value, *SchemeError) {
	var sum int64
	for _, a := range args {
		n, err := asInteger("+", a)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return Integer(sum), nil
}

func builtinSub(args []Value) (Value, *SchemeError) {
	if len(args) < 1 {
		return nil, NewRuntimeError("-: requires at least 1 argument")
	}
	first, err := asInteger("-", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return Integer(-first), nil
	}
	var rest int64
	for _, a := range args[1:] {
		n, err := asInteger("-", a)
		if err != nil {
			return nil, err
		}
		rest += n
	}
	return Integer(first - rest), nil
}

func builtinMul(args []Value) (Value, *SchemeError) {
	product := int64(1)
	for _, a := range args {
		n, err := asInteger("*", a)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	return Integer(product), nil
}

func builtinDiv(args []Value) (Value, *SchemeError) {
	if len(args) < 1 {
		return nil, NewRuntimeError("/: requires at least 1 argument")
	}
	first, err := asInteger("/", args[0])
	if err != nil {
		return nil, err
	}
	result := first
	for _, a := range args[1:] {
		n, err := asInteger("/", a)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, NewRuntimeError("/: division by zero")
		}
		result /= n
	}
	return Integer(result), nil
}

func builtinMax(args []Value) (Value, *SchemeError) {
	if len(args) < 1 {
		return nil, NewRuntimeError("max: requires at least 1 argument")
	}
	best, err := asInteger("max", args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asInteger("max", a)
		if err != nil {
			return nil, err
		}
		if n > best {
			best = n
		}
	}
	return Integer(best), nil
}

func builtinMin(args []Value) (Value, *SchemeError) {
	if len(args) < 1 {
		return nil, NewRuntimeError("min: requires at least 1 argument")
	}
	best, err := asInteger("min", args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asInteger("min", a)
		if err != nil {
			return nil, err
		}
		if n < best {
			best = n
		}
	}
	return Integer(best), nil
}

func builtinAbs(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("abs: requires exactly 1 argument")
	}
	n, err := asInteger("abs", args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return Integer(n), nil
}

// asIntegers converts every argument to int64, under the given
// procedure name for error messages.
func asIntegers(name string, args []Value) ([]int64, *SchemeError) {
	ns := make([]int64, len(args))
	for i, a := range args {
		n, err := asInteger(name, a)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}

func builtinNumEq(args []Value) (Value, *SchemeError) {
	ns, err := asIntegers("=", args)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(ns); i++ {
		if ns[i] != ns[0] {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func monotonic(name string, args []Value, ok func(a, b int64) bool) (Value, *SchemeError) {
	ns, err := asIntegers(name, args)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(ns); i++ {
		if !ok(ns[i-1], ns[i]) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinLt(args []Value) (Value, *SchemeError) {
	return monotonic("<", args, func(a, b int64) bool { return a < b })
}

func builtinLe(args []Value) (Value, *SchemeError) {
	return monotonic("<=", args, func(a, b int64) bool { return a <= b })
}

func builtinGt(args []Value) (Value, *SchemeError) {
	return monotonic(">", args, func(a, b int64) bool { return a > b })
}

func builtinGe(args []Value) (Value, *SchemeError) {
	return monotonic(">=", args, func(a, b int64) bool { return a >= b })
}

func builtinNumberP(args []Value) (Value, *SchemeError) {
	if len(args) < 1 {
		return nil, NewRuntimeError("number?: requires at least 1 argument")
	}
	for _, a := range args {
		if _, ok := a.(Integer); !ok {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinBooleanP(args []Value) (Value, *SchemeError) {
	if len(args) < 1 {
		return nil, NewRuntimeError("boolean?: requires at least 1 argument")
	}
	for _, a := range args {
		if _, ok := a.(Bool); !ok {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinPairP(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("pair?: requires exactly 1 argument")
	}
	return Bool(isPairValue(args[0])), nil
}

func builtinNullP(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("null?: requires exactly 1 argument")
	}
	v, ok := asPair(args[0])
	return Bool(ok && v == nil), nil
}

func builtinListP(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("list?: requires exactly 1 argument")
	}
	return Bool(isProperList(args[0])), nil
}

// builtinNot has its own polarity for the empty list, distinct from
// isTruthy (used by and/or): object.h's NotFunction::Apply gives
// Boolean(false) for an empty Quote and Boolean(true) for a non-empty
// one, the opposite of and/or's treatment of an empty Quote as false.
// It must not be implemented as !isTruthy.
func builtinNot(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("not: requires exactly 1 argument")
	}
	switch t := args[0].(type) {
	case nil:
		return Bool(false), nil
	case Integer:
		return Bool(false), nil
	case Bool:
		return Bool(!bool(t)), nil
	case *QuoteWrap:
		return Bool(t.Inner != nil), nil
	default:
		return Bool(true), nil
	}
}

func builtinAnd(args []Value) (Value, *SchemeError) {
	if len(args) == 0 {
		return Bool(true), nil
	}
	for _, a := range args {
		if !isTruthy(a) {
			return a, nil
		}
	}
	return args[len(args)-1], nil
}

func builtinOr(args []Value) (Value, *SchemeError) {
	if len(args) == 0 {
		return Bool(false), nil
	}
	for _, a := range args {
		if isTruthy(a) {
			return a, nil
		}
	}
	return args[len(args)-1], nil
}

// builtinCons stores its arguments verbatim, unlike car/cdr and the
// other list-inspecting builtins: it must not unwrap a QuoteWrap
// argument, matching the original MakePair exactly, so that (cons a b)
// prints dotted or list-shaped purely from whatever structure b
// already has.
func builtinCons(args []Value) (Value, *SchemeError) {
	switch len(args) {
	case 1:
		return NewCell(args[0], nil), nil
	case 2:
		return NewCell(args[0], args[1]), nil
	default:
		return nil, NewRuntimeError("cons: requires 1 or 2 arguments")
	}
}

func builtinCar(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("car: requires exactly 1 argument")
	}
	v, ok := asPair(args[0])
	if !ok || v == nil {
		return nil, NewRuntimeError("car: argument is not a pair: %s", print(args[0]))
	}
	return v.(*Cell).First, nil
}

func builtinCdr(args []Value) (Value, *SchemeError) {
	if len(args) != 1 {
		return nil, NewRuntimeError("cdr: requires exactly 1 argument")
	}
	v, ok := asPair(args[0])
	if !ok || v == nil {
		return nil, NewRuntimeError("cdr: argument is not a pair: %s", print(args[0]))
	}
	return v.(*Cell).Rest, nil
}

func builtinList(args []Value) (Value, *SchemeError) {
	var result Value
	for i := len(args) - 1; i >= 0; i-- {
		result = NewCell(args[i], result)
	}
	return result, nil
}

func builtinListRef(args []Value) (Value, *SchemeError) {
	if len(args) != 2 {
		return nil, NewRuntimeError("list-ref: requires exactly 2 arguments")
	}
	idx, err := asInteger("list-ref", args[1])
	if err != nil {
		return nil, err
	}
	cur, ok := asPair(args[0])
	if !ok {
		return nil, NewRuntimeError("list-ref: argument is not a list: %s", print(args[0]))
	}
	for ; idx > 0; idx-- {
		c, ok := cur.(*Cell)
		if !ok || c == nil {
			return nil, NewRuntimeError("list-ref: index out of range")
		}
		cur = c.Rest
	}
	c, ok := cur.(*Cell)
	if !ok {
		return nil, NewRuntimeError("list-ref: index out of range")
	}
	return c.First, nil
}

func builtinListTail(args []Value) (Value, *SchemeError) {
	if len(args) != 2 {
		return nil, NewRuntimeError("list-tail: requires exactly 2 arguments")
	}
	idx, err := asInteger("list-tail", args[1])
	if err != nil {
		return nil, err
	}
	cur, ok := asPair(args[0])
	if !ok {
		return nil, NewRuntimeError("list-tail: argument is not a list: %s", print(args[0]))
	}
	for ; idx > 0; idx-- {
		c, ok := cur.(*Cell)
		if !ok || c == nil {
			return nil, NewRuntimeError("list-tail: index out of range")
		}
		cur = c.Rest
	}
	return cur, nil
}
