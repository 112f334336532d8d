/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tokenizer

import (
	"testing"

	"github.com/krotik/cflow/token"
)

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	tok := New()

	toks, err := tok.Tokenize(1, "if (x) { y; }")
	if err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	kinds := make([]token.Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}

	expected := []token.Kind{
		token.If, token.ParenOpen, token.Statement, token.ParenClose,
		token.BraceOpen, token.Statement, token.Semicolon, token.BraceClose,
	}

	if len(kinds) != len(expected) {
		t.Error("Unexpected result:", kinds)
		return
	}

	for i := range expected {
		if kinds[i] != expected[i] {
			t.Error("Unexpected result at", i, ":", kinds, "want", expected)
			return
		}
	}
}

func TestTokenizeFunctionCall(t *testing.T) {
	tok := New()

	toks, err := tok.Tokenize(1, "foo(a, b);")
	if err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	if len(toks) != 2 || toks[0].Kind != token.Function || toks[1].Kind != token.Semicolon {
		t.Error("Unexpected result:", toks)
		return
	}
}

func TestTokenizeCaseInsensitive(t *testing.T) {
	tok := New()

	toks, err := tok.Tokenize(1, "WHILE (x) ;")
	if err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	if len(toks) == 0 || toks[0].Kind != token.While {
		t.Error("Unexpected result:", toks)
		return
	}
}

func TestTokenizeNoMatch(t *testing.T) {
	tok := New()

	_, err := tok.Tokenize(5, "$$$")
	if err == nil {
		t.Error("Expected a no-match error for an unrecognisable line")
		return
	}

	if _, ok := err.(*NoMatchError); !ok {
		t.Error("Expected a *NoMatchError, got:", err)
		return
	}
}

func TestTokenizeEmptyLine(t *testing.T) {
	tok := New()

	toks, err := tok.Tokenize(1, "   ")
	if err != nil || len(toks) != 0 {
		t.Error("Unexpected result:", toks, err)
		return
	}
}

func TestAddRuleCustomPriority(t *testing.T) {
	tok := &Tokenizer{}
	tok.AddRule(`foo`, token.Statement)
	tok.AddRule(`.`, token.Error)

	toks, err := tok.Tokenize(1, "foo")
	if err != nil || len(toks) != 1 || toks[0].Kind != token.Statement {
		t.Error("Unexpected result:", toks, err)
		return
	}
}
