//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package scheme

import "fmt"

// ErrorKind distinguishes the two failure modes the interpreter can
// report: a malformed token/expression stream, or a well-formed
// expression that fails during evaluation.
type ErrorKind int

const (
	// KindSyntax covers tokenizer and reader failures: an
	// unrecognized character, an unexpected close paren or dot, a
	// missing close paren, premature end of input, or trailing
	// tokens after a complete expression.
	KindSyntax ErrorKind = iota
	// KindRuntime covers evaluator failures: a nil program, applying
	// a non-procedure, an unknown built-in, wrong arity or argument
	// type, a dotted argument list, or a built-in's own precondition
	// failure.
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindRuntime:
		return "runtime error"
	default:
		return "error"
	}
}

// SchemeError reports a failure originating in the tokenizer, reader,
// or evaluator, tagged with which of the two it is.
type SchemeError struct {
	Kind    ErrorKind
	Message string
}

// NewSyntaxError constructs a SchemeError of kind KindSyntax.
func NewSyntaxError(format string, args ...interface{}) *SchemeError {
	return newSchemeError(KindSyntax, format, args...)
}

// NewRuntimeError constructs a SchemeError of kind KindRuntime.
func NewRuntimeError(format string, args ...interface{}) *SchemeError {
	return newSchemeError(KindRuntime, format, args...)
}

func newSchemeError(kind ErrorKind, format string, args ...interface{}) *SchemeError {
	return &SchemeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error returns the string representation of the error.
func (e *SchemeError) Error() string {
	return e.Kind.String() + ": " + e.Message
}
