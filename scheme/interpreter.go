//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package scheme implements a string-in/string-out interpreter for a
// small Scheme subset: a tokenizer, a recursive-descent reader, and
// an evaluator dispatching to a fixed catalog of built-in procedures.
package scheme

// Interpreter is the single externally meaningful type: construct one
// and call Run repeatedly. The only state an Interpreter carries
// across calls is its built-in registry (lazily populated, immutable
// per name once populated); there is no other form of persistence,
// matching the teacher's swatcl.Interpreter
// (swatcl/interpreter.go, registerCoreCommands/InvokeCommand) in
// shape, though that registry is populated eagerly there and lazily
// here per this language's own contract.
type Interpreter struct {
	registry map[string]*Procedure
}

// NewInterpreter constructs a ready-to-use Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{registry: make(map[string]*Procedure)}
}

// lookup returns the named built-in, populating the registry cache on
// first reference.
func (ip *Interpreter) lookup(name string) (*Procedure, bool) {
	if p, ok := ip.registry[name]; ok {
		return p, true
	}
	p, ok := builtin(name)
	if !ok {
		return nil, false
	}
	ip.registry[name] = p
	return p, true
}

// Run tokenizes and parses exactly one expression from input, requires
// end-of-input, evaluates it, canonicalizes the result, and returns
// its printed form. Successive calls are independent: nothing besides
// the built-in registry survives between them, and the registry is
// immutable once a name has been resolved.
func (ip *Interpreter) Run(input string) (string, error) {
	v, err := read(input)
	if err != nil {
		return "", err
	}
	result, err := ip.eval(v)
	if err != nil {
		return "", err
	}
	return print(canonicalize(result)), nil
}

// canonicalize wraps a raw nil or *Cell evaluation result in a
// QuoteWrap so the printer parenthesizes it, reproducing the
// convention that list-shaped results print self-describing.
func canonicalize(v Value) Value {
	switch v.(type) {
	case nil:
		return &QuoteWrap{}
	case *Cell:
		return &QuoteWrap{Inner: v}
	default:
		return v
	}
}

// eval evaluates a single Value to a result Value.
func (ip *Interpreter) eval(v Value) (Value, *SchemeError) {
	if v == nil {
		return nil, NewRuntimeError("cannot evaluate nil program")
	}
	switch t := v.(type) {
	case Integer, Bool, Symbol, *QuoteWrap:
		return v, nil
	case *Cell:
		return ip.apply(t)
	default:
		return nil, NewRuntimeError("cannot evaluate value: %s", print(v))
	}
}

// apply handles Cell evaluation, which is always procedure
// application: op is the Cell's First, args is its Rest.
func (ip *Interpreter) apply(cell *Cell) (Value, *SchemeError) {
	op := cell.First
	switch o := op.(type) {
	case Symbol:
		proc, ok := ip.lookup(string(o))
		if !ok {
			return nil, NewRuntimeError("unknown procedure: %s", o)
		}
		argv, err := ip.evalArgs(cell.Rest)
		if err != nil {
			return nil, err
		}
		return proc.Fn(argv)
	case *QuoteWrap:
		if cell.Rest != nil {
			return nil, NewRuntimeError("quote: too many arguments")
		}
		return o.Inner, nil
	default:
		return nil, NewRuntimeError("cannot apply non-procedure: %s", print(op))
	}
}

// evalArgs walks a Cell-chain of arguments, evaluating each Cell
// element recursively and using any other element as-is. A dotted
// tail is a runtime error: only proper argument lists are valid.
func (ip *Interpreter) evalArgs(args Value) ([]Value, *SchemeError) {
	var out []Value
	for {
		if args == nil {
			return out, nil
		}
		cell, ok := args.(*Cell)
		if !ok {
			return nil, NewRuntimeError("malformed argument list (dotted)")
		}
		v := cell.First
		if inner, isCell := v.(*Cell); isCell {
			var err *SchemeError
			v, err = ip.apply(inner)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, v)
		args = cell.Rest
	}
}
