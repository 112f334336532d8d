/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"github.com/krotik/cflow/cerr"
	"github.com/krotik/cflow/fsm"
	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/token"
)

/*
buildFunctionTree assembles an F1/F1_END function body, or -- when the
closing token of the grammar turns out to be a semicolon rather than a
brace -- downgrades the head node to a plain P1 statement in place,
since "int get();" is a forward declaration, not a defined body.
*/
func (p *Parser) buildFunctionTree(parent *node.Node) *node.Node {
	if parent == nil {
		return nil
	}

	tok, ok := p.q.pop()
	if !ok {
		return parent
	}

	state := p.table.Next(fsm.InitStart, tok.Kind)
	if state != fsm.FuncStart {
		return parent
	}

	start := p.newNode(mapFSMToDecomp(state))
	start.Tokens = append(start.Tokens, tok)
	parent.AddChild(start)

	cur := start
	var end *node.Node
	success := false

	for !p.q.empty() {
		peek, _ := p.q.peek()
		peekState := p.table.Next(state, peek.Kind)

		if peekState == fsm.Error {
			if success {
				break
			}
			p.report(cerr.NewGrammarError(peek))
			return cur
		}

		switch peekState {
		case fsm.FuncStatement:
			if next := p.BuildTree(cur, state); next != nil {
				cur = next
			}

		case fsm.FuncEnd:
			if state == fsm.FuncBraceOpen {
				empty := p.emptyBodyPlaceholder(lastLineOf(cur))
				cur.AddChild(empty)
				cur = empty
			}

			tok, _ = p.q.pop()

			if tok.Kind == token.Semicolon {
				start.Kind = node.P1
				start.Tokens = append(start.Tokens, tok)
				end = start
			} else {
				end = p.newNode(mapFSMToDecomp(peekState))
				end.Tokens = append(end.Tokens, tok)
				cur.AddChild(end)
			}

			success = true
			state = peekState

		default:
			tok, _ = p.q.pop()
			cur.Tokens = append(cur.Tokens, tok)
		}

		if peekState == fsm.FuncEnd {
			break
		}
		state = peekState
	}

	if end == nil {
		p.report(cerr.NewGrammarError(lastTokenOf(cur)))
		return cur
	}

	return end
}
