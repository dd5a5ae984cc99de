//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package scheme

import "strconv"

// Value is the polymorphic result of reading and evaluating an
// expression. A nil Value (the zero value of the interface) always
// represents the empty list; there is no separate "empty Cell".
type Value interface {
	isValue()
}

// Integer is a signed decimal literal.
type Integer int64

func (Integer) isValue() {}

// Bool is a boolean literal, #t or #f.
type Bool bool

func (Bool) isValue() {}

// Symbol is an identifier or operator name.
type Symbol string

func (Symbol) isValue() {}

// Cell is a cons pair. Rest is nil for a proper list's final link; a
// dotted pair has a non-nil, non-Cell Rest.
type Cell struct {
	First Value
	Rest  Value
}

func (*Cell) isValue() {}

// NewCell constructs a Cell from the given first and rest values.
func NewCell(first, rest Value) *Cell {
	return &Cell{First: first, Rest: rest}
}

// QuoteWrap wraps a value produced by the `'` abbreviation or the
// `quote` special form, and also stands in for a canonicalized
// printer wrapping of a raw pair or nil result (see Interpreter.Run).
type QuoteWrap struct {
	Inner Value
}

func (*QuoteWrap) isValue() {}

// Procedure is the identity of a built-in. Its Fn performs the work;
// procedures never originate from the reader, only from a successful
// lookup in the built-in registry.
type Procedure struct {
	Name string
	Fn   func(args []Value) (Value, *SchemeError)
}

func (*Procedure) isValue() {}

// asPair unwraps at most one QuoteWrap layer and reports whether the
// result is either nil (the empty list) or a *Cell. This lets
// list-inspecting built-ins accept both a freshly read quoted literal
// (which arrives QuoteWrap'ped) and a bare Cell/nil produced by a
// prior builtin call such as cdr.
func asPair(v Value) (Value, bool) {
	if qw, ok := v.(*QuoteWrap); ok {
		v = qw.Inner
	}
	if v == nil {
		return nil, true
	}
	if c, ok := v.(*Cell); ok {
		return c, true
	}
	return nil, false
}

// isPairValue implements the pair? predicate's own notion of "pair",
// which is broader than asPair's: a non-empty QuoteWrap counts
// regardless of what it wraps (object.h's IsPair::Apply accepts any
// Quote whose GetObject() is non-null, not just a Quote-of-Cell), as
// does a bare, necessarily non-empty *Cell.
func isPairValue(v Value) bool {
	switch t := v.(type) {
	case *QuoteWrap:
		return t.Inner != nil
	case *Cell:
		return t != nil
	default:
		return false
	}
}

// isTruthy implements the language's truthiness rule: only Bool(false)
// and an empty QuoteWrap (or bare nil) are false; every other value,
// including Integer(0), is true.
func isTruthy(v Value) bool {
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	if v == nil {
		return false
	}
	if qw, ok := v.(*QuoteWrap); ok {
		return qw.Inner != nil
	}
	return true
}

// isProperList reports whether v (after unwrapping one QuoteWrap
// layer) is nil or a chain of Cells whose final Rest is nil.
func isProperList(v Value) bool {
	cur, ok := asPair(v)
	if !ok {
		return false
	}
	for {
		if cur == nil {
			return true
		}
		cell := cur.(*Cell)
		next := cell.Rest
		if next == nil {
			return true
		}
		if c, ok := next.(*Cell); ok {
			cur = c
			continue
		}
		return false
	}
}

// print renders v in canonical Scheme textual form.
func print(v Value) string {
	switch t := v.(type) {
	case nil:
		return "()"
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Bool:
		if t {
			return "#t"
		}
		return "#f"
	case Symbol:
		return string(t)
	case *QuoteWrap:
		if t.Inner == nil {
			return "()"
		}
		return "(" + print(t.Inner) + ")"
	case *Cell:
		return printCell(t)
	case *Procedure:
		return "#<procedure " + t.Name + ">"
	default:
		return "?"
	}
}

func printCell(c *Cell) string {
	if c.First == nil {
		return "()"
	}
	if c.Rest == nil {
		return print(c.First)
	}
	if next, ok := c.Rest.(*Cell); ok {
		return print(c.First) + " " + printCell(next)
	}
	return print(c.First) + " . " + print(c.Rest)
}
