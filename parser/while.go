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
)

/*
buildWhileTree assembles a D2/D2_END while-loop: the head node
accumulates the condition tokens, the body is built recursively
(braced or single-statement), and on close a back-edge links the body
tail to the head and a forward edge links the head to the join so
control may bypass a zero-iteration loop.
*/
func (p *Parser) buildWhileTree(parent *node.Node) *node.Node {
	if parent == nil {
		return nil
	}

	tok, ok := p.q.pop()
	if !ok {
		return parent
	}

	state := p.table.Next(fsm.InitStart, tok.Kind)
	if state != fsm.WhileStart {
		return parent
	}

	start := p.newNode(mapFSMToDecomp(state))
	start.Tokens = append(start.Tokens, tok)
	parent.AddChild(start)

	cur := start
	var end *node.Node
	success := false

loop:
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
		case fsm.WhileStatement, fsm.WhileSingleStatement:
			if next := p.BuildTree(cur, state); next != nil {
				cur = next
			}
			if peekState == fsm.WhileSingleStatement {
				success = true
				break loop
			}

		case fsm.WhileEnd:
			if state == fsm.WhileBraceOpen {
				empty := p.emptyBodyPlaceholder(lastLineOf(cur))
				cur.AddChild(empty)
				cur = empty
			}
			tok, _ = p.q.pop()
			end = p.newNode(mapFSMToDecomp(peekState))
			end.Tokens = append(end.Tokens, tok)
			success = true

		default:
			tok, _ = p.q.pop()
			cur.Tokens = append(cur.Tokens, tok)
		}

		state = peekState
	}

	cur.AddChild(start)

	if end == nil {
		end = p.newNode(mapFSMToDecomp(state))
		end.Tokens = append(end.Tokens, lastTokenOf(cur))
	}

	start.AddChild(end)

	return end
}
