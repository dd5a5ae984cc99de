//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package scheme

import "testing"

func TestReadAtoms(t *testing.T) {
	v, err := read("42")
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := v.(Integer); !ok || i != 42 {
		t.Errorf("got %#v, want Integer(42)", v)
	}

	v, err = read("#t")
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := v.(Bool); !ok || !bool(b) {
		t.Errorf("got %#v, want Bool(true)", v)
	}

	v, err = read("foo")
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := v.(Symbol); !ok || s != "foo" {
		t.Errorf("got %#v, want Symbol(foo)", v)
	}
}

func TestReadProperList(t *testing.T) {
	v, err := read("(1 2 3)")
	if err != nil {
		t.Fatal(err)
	}
	if print(v) != "1 2 3" {
		t.Errorf("got %q, want %q", print(v), "1 2 3")
	}
}

func TestReadDottedPair(t *testing.T) {
	v, err := read("(1 . 2)")
	if err != nil {
		t.Fatal(err)
	}
	if print(v) != "1 . 2" {
		t.Errorf("got %q, want %q", print(v), "1 . 2")
	}
}

func TestReadQuoteAbbreviation(t *testing.T) {
	v, err := read("'(1 2)")
	if err != nil {
		t.Fatal(err)
	}
	qw, ok := v.(*QuoteWrap)
	if !ok {
		t.Fatalf("got %#v, want *QuoteWrap", v)
	}
	if print(qw.Inner) != "1 2" {
		t.Errorf("got %q, want %q", print(qw.Inner), "1 2")
	}
}

func TestReadQuoteForm(t *testing.T) {
	v1, err := read("'x")
	if err != nil {
		t.Fatal(err)
	}
	v2, err := read("(quote x)")
	if err != nil {
		t.Fatal(err)
	}
	if print(v1) != print(v2) {
		t.Errorf("'x and (quote x) should read identically: %q vs %q", print(v1), print(v2))
	}
}

func TestReadEmptyInputIsSyntaxError(t *testing.T) {
	_, err := read("")
	if err == nil || err.Kind != KindSyntax {
		t.Fatalf("expected syntax error for empty input, got %v", err)
	}
}

func TestReadUnmatchedParen(t *testing.T) {
	if _, err := read("(1 2"); err == nil || err.Kind != KindSyntax {
		t.Fatalf("expected syntax error for unmatched '(', got %v", err)
	}
	if _, err := read(")"); err == nil || err.Kind != KindSyntax {
		t.Fatalf("expected syntax error for stray ')', got %v", err)
	}
}

func TestReadTrailingTokens(t *testing.T) {
	if _, err := read("1 2"); err == nil || err.Kind != KindSyntax {
		t.Fatalf("expected syntax error for trailing input, got %v", err)
	}
}
