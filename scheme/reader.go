//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package scheme

// read tokenizes and parses exactly one expression from input,
// requiring the tokenizer to be at end-of-input afterward. Grounded
// on the teacher's parserRead (src/pkg/liswat/parser.go), adapted to
// the synchronous tokenizer and to the Cell-based value model.
func read(input string) (Value, *SchemeError) {
	t := newTokenizer(input)
	if t.err != nil {
		return nil, t.err
	}
	v, err := readExpr(t)
	if err != nil {
		return nil, err
	}
	if !t.atEnd() {
		return nil, NewSyntaxError("trailing input after expression")
	}
	return v, nil
}

// readExpr reads one complete expression, dispatching on the current
// token.
func readExpr(t *tokenizer) (Value, *SchemeError) {
	if t.atEnd() {
		return nil, NewSyntaxError("unexpected end of input")
	}
	cur := t.peek()
	switch cur.typ {
	case tokenInteger:
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		return Integer(cur.ival), nil
	case tokenBool:
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		return Bool(cur.bval), nil
	case tokenSymbol:
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		if cur.text == "quote" {
			inner, err := readExpr(t)
			if err != nil {
				return nil, err
			}
			return &QuoteWrap{Inner: inner}, nil
		}
		return Symbol(cur.text), nil
	case tokenQuote:
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		inner, err := readExpr(t)
		if err != nil {
			return nil, err
		}
		return &QuoteWrap{Inner: inner}, nil
	case tokenOpenParen:
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		return readListTail(t)
	default:
		return nil, NewSyntaxError("unexpected token %q", cur.text)
	}
}

// readListTail consumes list elements following an already-consumed
// OpenParen, up through the matching CloseParen (or a dotted tail).
func readListTail(t *tokenizer) (Value, *SchemeError) {
	if t.atEnd() {
		return nil, NewSyntaxError("unexpected end of input inside list")
	}
	cur := t.peek()
	if cur.typ == tokenCloseParen {
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		return nil, nil
	}

	head, err := readExpr(t)
	if err != nil {
		return nil, err
	}

	if t.atEnd() {
		return nil, NewSyntaxError("unexpected end of input inside list")
	}
	if t.peek().typ == tokenDot {
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		tail, err := readExpr(t)
		if err != nil {
			return nil, err
		}
		if t.atEnd() || t.peek().typ != tokenCloseParen {
			return nil, NewSyntaxError("expected ')' after dotted tail")
		}
		t.advance()
		if t.err != nil {
			return nil, t.err
		}
		return NewCell(head, tail), nil
	}

	rest, err := readListTail(t)
	if err != nil {
		return nil, err
	}
	return NewCell(head, rest), nil
}
