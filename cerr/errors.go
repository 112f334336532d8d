/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package cerr defines the error taxonomy raised while building a
// control flow graph: tokenizer failures, grammar errors, and
// structural errors detected after a sub-builder's main loop exits.
package cerr

import (
	"errors"
	"fmt"

	"github.com/krotik/cflow/token"
)

/*
Class identifies which member of the error taxonomy a diagnostic
belongs to.
*/
type Class string

const (
	TokenizeNoMatch Class = "tokenize_no_match"
	GrammarError    Class = "grammar_error"
	StructuralError Class = "structural_error"
)

/*
ErrEmptyQueue reports an exhausted token queue. The parser's
sub-builders do not return it: on an empty queue they return the
walker they were given.
*/
var ErrEmptyQueue = errors.New("cflow: token queue is empty")

/*
Diagnostic is a single best-effort error surfaced by Parse: it never
aborts the whole build, only the sub-builder in progress.
*/
type Diagnostic struct {
	Class Class
	Token token.Token
	Msg   string
}

/*
Error implements the error interface.
*/
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s (at %v)", d.Class, d.Msg, d.Token)
}

/*
NewGrammarError builds a GrammarError diagnostic naming the offending
token, per the contract that T[state][peek.Kind] had no transition and
no success sentinel had yet been reached.
*/
func NewGrammarError(offending token.Token) *Diagnostic {
	return &Diagnostic{
		Class: GrammarError,
		Token: offending,
		Msg:   fmt.Sprintf("no transition for token kind %v", offending.Kind),
	}
}

/*
NewStructuralError builds a StructuralError diagnostic for a
post-loop invariant failure (e.g. a do-while with no tail, or a for
loop missing its condition or modify clause).
*/
func NewStructuralError(offending token.Token, reason string) *Diagnostic {
	return &Diagnostic{
		Class: StructuralError,
		Token: offending,
		Msg:   reason,
	}
}
