/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package fsm implements the 2-D parser-state/token-kind transition
// table shared by every sub-builder in package parser.
package fsm

import "fmt"

/*
State is a parser state. The zero value, Error, is the table's
"no transition" sentinel and is never a valid destination a sub-builder
can install as a reachable start state.
*/
type State int

const (
	Error State = iota

	InitStart

	// Statement states.
	StatementStart
	StatementMid
	StatementEnd

	// If-then-else states.
	IfStart
	IfParenOpen
	IfParenStatement
	IfParenClose
	IfThenBraceOpen
	IfThenStatement
	IfThenSingleStatement
	IfThenEnd

	ElseIfStatement
	ElseIfEnd

	IfElse
	IfElseBraceOpen
	IfElseStatement
	IfElseSingleStatement
	IfElseEnd

	// While states.
	WhileStart
	WhileParenOpen
	WhileParenStatement
	WhileParenClose
	WhileBraceOpen
	WhileStatement
	WhileSingleStatement
	WhileEnd

	// Do-while states.
	DoWhileStart
	DoWhileBraceOpen
	DoWhileStatement
	DoWhileBraceClose
	DoWhileKeyword
	DoWhileParenOpen
	DoWhileParenStatement
	DoWhileParenClose
	DoWhileEnd

	// For states.
	ForStart
	ForParenOpen
	ForInit
	ForInitEnd
	ForCond
	ForCondEnd
	ForModify
	ForParenClose
	ForBraceOpen
	ForStatement
	ForSingleStatement
	ForEnd

	// Function states.
	FuncStart
	FuncBraceOpen
	FuncStatement
	FuncEnd

	numStates
)

/*
NumStates is the number of distinct parser states, used to size the
table's row dimension.
*/
const NumStates = int(numStates)

var stateNames = map[State]string{
	Error: "ERROR", InitStart: "INIT_START",

	StatementStart: "STATEMENT_START", StatementMid: "STATEMENT_MID", StatementEnd: "STATEMENT_END",

	IfStart: "IF_START", IfParenOpen: "IF_PAREN_OPEN", IfParenStatement: "IF_PAREN_STATEMENT",
	IfParenClose: "IF_PAREN_CLOSE", IfThenBraceOpen: "IF_THEN_BRACE_OPEN",
	IfThenStatement: "IF_THEN_STATEMENT", IfThenSingleStatement: "IF_THEN_SINGLE_STATEMENT",
	IfThenEnd: "IF_THEN_END",

	ElseIfStatement: "ELSE_IF_STATEMENT", ElseIfEnd: "ELSE_IF_END",

	IfElse: "IF_ELSE", IfElseBraceOpen: "IF_ELSE_BRACE_OPEN", IfElseStatement: "IF_ELSE_STATEMENT",
	IfElseSingleStatement: "IF_ELSE_SINGLE_STATEMENT", IfElseEnd: "IF_ELSE_END",

	WhileStart: "WHILE_START", WhileParenOpen: "WHILE_PAREN_OPEN",
	WhileParenStatement: "WHILE_PAREN_STATEMENT", WhileParenClose: "WHILE_PAREN_CLOSE",
	WhileBraceOpen: "WHILE_BRACE_OPEN", WhileStatement: "WHILE_STATEMENT",
	WhileSingleStatement: "WHILE_SINGLE_STATEMENT", WhileEnd: "WHILE_END",

	DoWhileStart: "DO_WHILE_START", DoWhileBraceOpen: "DO_WHILE_BRACE_OPEN",
	DoWhileStatement: "DO_WHILE_STATEMENT", DoWhileBraceClose: "DO_WHILE_BRACE_CLOSE",
	DoWhileKeyword: "DO_WHILE_KEYWORD", DoWhileParenOpen: "DO_WHILE_PAREN_OPEN",
	DoWhileParenStatement: "DO_WHILE_PAREN_STATEMENT", DoWhileParenClose: "DO_WHILE_PAREN_CLOSE",
	DoWhileEnd: "DO_WHILE_END",

	ForStart: "FOR_START", ForParenOpen: "FOR_PAREN_OPEN", ForInit: "FOR_INIT",
	ForInitEnd: "FOR_INIT_END", ForCond: "FOR_COND", ForCondEnd: "FOR_COND_END",
	ForModify: "FOR_MODIFY", ForParenClose: "FOR_PAREN_CLOSE", ForBraceOpen: "FOR_BRACE_OPEN",
	ForStatement: "FOR_STATEMENT", ForSingleStatement: "FOR_SINGLE_STATEMENT", ForEnd: "FOR_END",

	FuncStart: "FUNC_START", FuncBraceOpen: "FUNC_BRACE_OPEN", FuncStatement: "FUNC_STATEMENT",
	FuncEnd: "FUNC_END",
}

/*
String returns the name of the state.
*/
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

/*
IsStartState reports whether s is one of the six dispatch states
INIT_START transitions into; these are the entry points build_tree uses
to pick a sub-builder.
*/
func IsStartState(s State) bool {
	switch s {
	case StatementStart, IfStart, WhileStart, DoWhileStart, ForStart, FuncStart:
		return true
	}
	return false
}
