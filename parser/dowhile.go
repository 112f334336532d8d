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
buildDoWhileTree assembles a D3/D3_END do-while loop: the body is built
first, then the "while (cond);" tail is accumulated as its own node
linked as a child of the body's tail node, and finally a back-edge
closes the loop from the tail back to the head.

Per the known edge case recorded in DESIGN.md, an empty "{}" body
reached directly from the opening brace stamps the placeholder with
the literal BRACE_CLOSE token rather than a synthetic empty token --
this is mirrored exactly rather than "fixed".
*/
func (p *Parser) buildDoWhileTree(parent *node.Node) *node.Node {
	if parent == nil {
		return nil
	}

	tok, ok := p.q.pop()
	if !ok {
		return parent
	}

	state := p.table.Next(fsm.InitStart, tok.Kind)
	if state != fsm.DoWhileStart {
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

		switch {
		case peekState == fsm.DoWhileStatement:
			if next := p.BuildTree(cur, state); next != nil {
				cur = next
			}

		case peekState == fsm.DoWhileEnd:
			tok, _ = p.q.pop()
			cur.Tokens = append(cur.Tokens, tok)
			end = cur
			success = true
			state = peekState
			goto done

		case peekState == fsm.DoWhileBraceClose && state == fsm.DoWhileBraceOpen:
			tok, _ = p.q.pop()
			empty := p.newNode(node.P1)
			empty.Tokens = append(empty.Tokens, tok)
			cur.AddChild(empty)
			cur = empty

		case peekState == fsm.DoWhileKeyword:
			tok, _ = p.q.pop()
			next := p.newNode(node.P1)
			next.Tokens = append(next.Tokens, tok)
			cur.AddChild(next)
			cur = next

		default:
			tok, _ = p.q.pop()
			cur.Tokens = append(cur.Tokens, tok)
		}

		state = peekState
	}

done:
	if end == nil || end == start {
		p.report(cerr.NewStructuralError(lastTokenOf(cur), "do-while loop produced no while(...) tail"))
		return cur
	}

	end.Kind = mapFSMToDecomp(state)
	end.AddChild(start)

	return end
}
