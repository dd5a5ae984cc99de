//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunEndToEnd covers the end-to-end scenarios.
func TestRunEndToEnd(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"sum", "(+ 1 2 3)", "6"},
		{"nested max", "(max 1 (+ 2 3) 4)", "5"},
		{"dotted quote", "'(1 2 . 3)", "(1 2 . 3)"},
		{"list? true", "(list? '(1 2 3))", "#t"},
		{"list? false on dotted", "(list? '(1 . 2))", "#f"},
		{"cdr", "(cdr '(1 2 3))", "(2 3)"},
		{"plus empty", "(+ )", "0"},
		{"times empty", "(*)", "1"},
	}
	ip := NewInterpreter()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ip.Run(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRunUnsupportedSpecialFormIsRuntimeError(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.Run("(if #t 1 2)")
	require.Error(t, err)
	se, ok := err.(*SchemeError)
	require.True(t, ok)
	assert.Equal(t, KindRuntime, se.Kind)
}

func TestRunArityErrors(t *testing.T) {
	ip := NewInterpreter()
	cases := []string{"(-)", "(/)"}
	for _, input := range cases {
		_, err := ip.Run(input)
		require.Error(t, err, input)
		se, ok := err.(*SchemeError)
		require.True(t, ok)
		assert.Equal(t, KindRuntime, se.Kind)
	}
}

func TestRunCarCdrOfEmptyList(t *testing.T) {
	ip := NewInterpreter()
	for _, input := range []string{"(car '())", "(cdr '())"} {
		_, err := ip.Run(input)
		require.Error(t, err, input)
	}
}

func TestRunBoundaryErrors(t *testing.T) {
	ip := NewInterpreter()
	cases := []string{"", "   ", "(", ")"}
	for _, input := range cases {
		_, err := ip.Run(input)
		require.Error(t, err, input)
		se, ok := err.(*SchemeError)
		require.True(t, ok)
		assert.Equal(t, KindSyntax, se.Kind)
	}
}

func TestRunConsPrintsDottedOrList(t *testing.T) {
	ip := NewInterpreter()
	got, err := ip.Run("(cons 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(1 . 2)", got)

	got, err = ip.Run("(cons 1 (list 2 3))")
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3)", got)
}

func TestRunIndependentAcrossCalls(t *testing.T) {
	ip := NewInterpreter()
	first, err := ip.Run("(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "3", first)
	second, err := ip.Run("(+ 10 20)")
	require.NoError(t, err)
	assert.Equal(t, "30", second)
}

func TestRunCompositionOfListBuiltins(t *testing.T) {
	ip := NewInterpreter()
	got, err := ip.Run("(car (cdr '(1 2 3)))")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestRunListRefAndTail(t *testing.T) {
	ip := NewInterpreter()
	got, err := ip.Run("(list-ref '(10 20 30) 1)")
	require.NoError(t, err)
	assert.Equal(t, "20", got)

	got, err = ip.Run("(list-tail '(10 20 30) 1)")
	require.NoError(t, err)
	assert.Equal(t, "(20 30)", got)
}

func TestRunListBuildsOverAllArguments(t *testing.T) {
	ip := NewInterpreter()
	got, err := ip.Run("(list 1 2 3 4 5)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3 4 5)", got)
}

// A quoted value's printed form is always parenthesized, per the
// QuoteWrap row of the printing rules, even for an atom: '42 is a
// QuoteWrap around an Integer, not the bare Integer itself.
func TestRunQuotedAtomPrintsParenthesized(t *testing.T) {
	ip := NewInterpreter()
	got, err := ip.Run("'42")
	require.NoError(t, err)
	assert.Equal(t, "(42)", got)
}

func TestRunUnknownProcedure(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.Run("(frobnicate 1 2)")
	require.Error(t, err)
	se, ok := err.(*SchemeError)
	require.True(t, ok)
	assert.Equal(t, KindRuntime, se.Kind)
}
