/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package fsm

import (
	"fmt"

	"github.com/krotik/cflow/token"
	"github.com/krotik/common/errorutil"
)

/*
Table is the 2-D transition table T[State][token.Kind] -> State shared
by every sub-builder. Unset entries default to Error. Table is built
once from a flat list of (from, input, to) triples rather than scattered
imperative insertion; Add can still install further transitions into
cells that are unset.
*/
type Table struct {
	rows [][]State
}

/*
Add installs a single transition. It returns an error if a different,
already-installed transition would be overwritten, so that a
programming mistake in the rule list is caught at construction time
rather than silently shadowed.
*/
func (t *Table) Add(from State, in token.Kind, to State) error {
	existing := t.rows[int(from)][int(in)]
	if existing != Error && existing != to {
		return fmt.Errorf("fsm: conflicting transition for (%v, %v): have %v, want %v",
			from, in, existing, to)
	}
	t.rows[int(from)][int(in)] = to
	return nil
}

/*
Next looks up T[state][kind], defaulting to Error for any entry that was
never installed.
*/
func (t *Table) Next(state State, kind token.Kind) State {
	if int(state) < 0 || int(state) >= len(t.rows) {
		return Error
	}
	row := t.rows[int(state)]
	if int(kind) < 0 || int(kind) >= len(row) {
		return Error
	}
	return row[int(kind)]
}

type triple struct {
	from State
	in   token.Kind
	to   State
}

/*
New builds the full transition table described by the control flow
grammar: dispatch from INIT_START plus the six construct-specific
sub-tables. Panics (via a construction-time assertion) if two triples
disagree on the same (from, in) cell -- this can only happen from a
mistake in this file, never from user input.
*/
func New() *Table {
	t := &Table{rows: make([][]State, NumStates)}
	for i := range t.rows {
		t.rows[i] = make([]State, token.NumKinds)
	}

	triples := dispatchTriples()
	triples = append(triples, statementTriples()...)
	triples = append(triples, whileTriples()...)
	triples = append(triples, doWhileTriples()...)
	triples = append(triples, ifTriples()...)
	triples = append(triples, forTriples()...)
	triples = append(triples, functionTriples()...)

	for _, tr := range triples {
		errorutil.AssertOk(t.Add(tr.from, tr.in, tr.to))
	}

	return t
}

func dispatchTriples() []triple {
	return []triple{
		{InitStart, token.Statement, StatementStart},
		{InitStart, token.Semicolon, StatementStart},
		{InitStart, token.If, IfStart},
		{InitStart, token.While, WhileStart},
		{InitStart, token.Do, DoWhileStart},
		{InitStart, token.For, ForStart},
		{InitStart, token.Function, FuncStart},
	}
}

func statementTriples() []triple {
	return []triple{
		{StatementStart, token.Statement, StatementMid},
		{StatementMid, token.Statement, StatementMid},
		{StatementMid, token.Semicolon, StatementEnd},
		{StatementStart, token.Semicolon, StatementEnd},
		{StatementEnd, token.Statement, StatementMid},
		{StatementEnd, token.Semicolon, StatementEnd},
	}
}

// nestedOpeners is every token kind that can open a nested construct
// from inside a braced body: a statement, an empty statement
// (semicolon), or one of the five construct keywords.
var nestedOpeners = []token.Kind{
	token.Semicolon, token.Statement, token.If, token.While, token.Do, token.For, token.Function,
}

// singleStatementOpeners is nestedOpeners without the bare semicolon,
// used where the grammar requires an actual single statement rather
// than a braced body (e.g. "while (x) ;" is not a single-statement
// while, it closes immediately via WHILE_PAREN_CLOSE -> WHILE_END).
var singleStatementOpeners = []token.Kind{
	token.Statement, token.If, token.While, token.Do, token.For, token.Function,
}

func whileTriples() []triple {
	tr := []triple{
		{WhileStart, token.ParenOpen, WhileParenOpen},
		{WhileParenOpen, token.Statement, WhileParenStatement},
		{WhileParenStatement, token.Statement, WhileParenStatement},
		{WhileParenStatement, token.ParenClose, WhileParenClose},
		{WhileParenStatement, token.Do, WhileParenClose},
		{WhileParenClose, token.BraceOpen, WhileBraceOpen},
		{WhileParenClose, token.Semicolon, WhileEnd},
		{WhileBraceOpen, token.BraceClose, WhileEnd},
		{WhileStatement, token.BraceClose, WhileEnd},
		{WhileSingleStatement, token.Lambda, WhileEnd},
	}
	for _, k := range singleStatementOpeners {
		tr = append(tr, triple{WhileParenClose, k, WhileSingleStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{WhileBraceOpen, k, WhileStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{WhileStatement, k, WhileStatement})
	}
	return tr
}

func doWhileTriples() []triple {
	tr := []triple{
		{DoWhileStart, token.BraceOpen, DoWhileBraceOpen},
		{DoWhileBraceOpen, token.BraceClose, DoWhileBraceClose},
		{DoWhileStatement, token.BraceClose, DoWhileBraceClose},
		{DoWhileBraceClose, token.While, DoWhileKeyword},
		{DoWhileKeyword, token.ParenOpen, DoWhileParenOpen},
		{DoWhileParenOpen, token.Semicolon, DoWhileParenStatement},
		{DoWhileParenOpen, token.Statement, DoWhileParenStatement},
		{DoWhileParenStatement, token.Semicolon, DoWhileParenStatement},
		{DoWhileParenStatement, token.Statement, DoWhileParenStatement},
		{DoWhileParenStatement, token.ParenClose, DoWhileParenClose},
		{DoWhileParenClose, token.Semicolon, DoWhileEnd},
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{DoWhileBraceOpen, k, DoWhileStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{DoWhileStatement, k, DoWhileStatement})
	}
	return tr
}

func ifTriples() []triple {
	tr := []triple{
		// IF_THEN
		{IfStart, token.ParenOpen, IfParenOpen},
		{IfStart, token.Semicolon, IfThenEnd},
		{IfParenOpen, token.Statement, IfParenStatement},
		{IfParenStatement, token.Statement, IfParenStatement},
		{IfParenStatement, token.ParenClose, IfParenClose},
		{IfParenClose, token.BraceOpen, IfThenBraceOpen},
		{IfParenClose, token.Semicolon, IfThenEnd},
		{IfThenSingleStatement, token.Else, IfElse},
		{IfThenBraceOpen, token.BraceClose, IfThenEnd},
		{IfThenStatement, token.BraceClose, IfThenEnd},

		// ELSE_IF
		{IfElse, token.If, ElseIfStatement},
		{ElseIfStatement, token.Lambda, ElseIfEnd},
		{ElseIfStatement, token.Else, IfElse},

		// IF_ELSE
		{IfThenEnd, token.Else, IfElse},
		{IfElse, token.Semicolon, IfElseEnd},
		{IfElseSingleStatement, token.Lambda, IfElseEnd},
		{IfElse, token.BraceOpen, IfElseBraceOpen},
		{IfElseBraceOpen, token.BraceClose, IfElseEnd},
		{IfElseStatement, token.BraceClose, IfElseEnd},
	}
	for _, k := range singleStatementOpeners {
		tr = append(tr, triple{IfParenClose, k, IfThenSingleStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{IfThenBraceOpen, k, IfThenStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{IfThenStatement, k, IfThenStatement})
	}
	for _, k := range []token.Kind{token.Statement, token.While, token.Do, token.For, token.Function} {
		tr = append(tr, triple{IfElse, k, IfElseSingleStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{IfElseBraceOpen, k, IfElseStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{IfElseStatement, k, IfElseStatement})
	}
	return tr
}

func forTriples() []triple {
	tr := []triple{
		{ForStart, token.ParenOpen, ForParenOpen},
		{ForParenOpen, token.Semicolon, ForInitEnd},
		{ForParenOpen, token.Statement, ForInit},
		{ForInit, token.Semicolon, ForInitEnd},
		{ForInitEnd, token.Semicolon, ForCondEnd},
		{ForInitEnd, token.Statement, ForCond},
		{ForCond, token.Semicolon, ForCondEnd},
		{ForCondEnd, token.ParenClose, ForParenClose},
		{ForCondEnd, token.Statement, ForModify},
		{ForModify, token.ParenClose, ForParenClose},
		{ForParenClose, token.Semicolon, ForEnd},
		{ForSingleStatement, token.Lambda, ForEnd},
		{ForParenClose, token.BraceOpen, ForBraceOpen},
		{ForBraceOpen, token.BraceClose, ForEnd},
		{ForStatement, token.BraceClose, ForEnd},
	}
	for _, k := range singleStatementOpeners {
		tr = append(tr, triple{ForParenClose, k, ForSingleStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{ForBraceOpen, k, ForStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{ForStatement, k, ForStatement})
	}
	return tr
}

func functionTriples() []triple {
	tr := []triple{
		{FuncStart, token.BraceOpen, FuncBraceOpen},
		{FuncStart, token.Semicolon, FuncEnd},
		{FuncBraceOpen, token.BraceClose, FuncEnd},
		{FuncStatement, token.BraceClose, FuncEnd},
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{FuncBraceOpen, k, FuncStatement})
	}
	for _, k := range nestedOpeners {
		tr = append(tr, triple{FuncStatement, k, FuncStatement})
	}
	return tr
}
