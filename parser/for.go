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
buildForTree assembles a D0/D0_END for-loop out of three distinguished
sub-nodes: cond (the condition, created lazily on the first FOR_COND
token), modify (the post-iteration step, wired with a back-edge to cond
the moment it is created) and bodyTail (the last node of the loop
body, tracked so the finalize step knows where to attach modify's
entry edge). A for-loop whose body is a bare ";" links cond directly
to modify instead; an empty "{}" body gets a placeholder node between
them.
*/
func (p *Parser) buildForTree(parent *node.Node) *node.Node {
	if parent == nil {
		return nil
	}

	tok, ok := p.q.pop()
	if !ok {
		return parent
	}

	state := p.table.Next(fsm.InitStart, tok.Kind)
	if state != fsm.ForStart {
		return parent
	}

	start := p.newNode(mapFSMToDecomp(state))
	start.Tokens = append(start.Tokens, tok)
	parent.AddChild(start)

	cur := start
	var cond, modify, bodyTail, end *node.Node
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
		case fsm.ForCond, fsm.ForCondEnd:
			tok, _ = p.q.pop()
			if cond == nil {
				cond = p.newNode(mapFSMToDecomp(peekState))
				cond.Tokens = append(cond.Tokens, tok)
				start.AddChild(cond)
				cur = cond
			} else {
				cur.Tokens = append(cur.Tokens, tok)
			}

		case fsm.ForModify, fsm.ForParenClose:
			tok, _ = p.q.pop()
			if modify == nil {
				modify = p.newNode(node.P1)
				modify.Tokens = append(modify.Tokens, tok)
				modify.AddChild(cond)
				cur = modify
			} else {
				cur.Tokens = append(cur.Tokens, tok)
			}

		case fsm.ForStatement, fsm.ForSingleStatement:
			cur = p.BuildTree(cond, state)
			bodyTail = cur

			if peekState == fsm.ForSingleStatement {
				success = true
				state = peekState
				goto done
			}

		case fsm.ForEnd:
			if state == fsm.ForBraceOpen {
				bodyTail = p.emptyBodyPlaceholder(lastLineOf(cur))
				cond.AddChild(bodyTail)
				cur = bodyTail
			}

			tok, _ = p.q.pop()
			end = p.newNode(mapFSMToDecomp(peekState))
			end.Tokens = append(end.Tokens, tok)
			success = true
			state = peekState
			goto done

		default:
			tok, _ = p.q.pop()
			cur.Tokens = append(cur.Tokens, tok)
		}

		state = peekState
	}

done:
	if cond == nil || modify == nil {
		p.report(cerr.NewStructuralError(lastTokenOf(cur), "for loop missing condition or modify clause"))
		return cur
	}

	if end == nil {
		end = p.newNode(mapFSMToDecomp(state))
		end.Tokens = append(end.Tokens, lastTokenOf(cur))
	}

	cond.AddChild(end)

	if bodyTail != nil {
		bodyTail.AddChild(modify)
	} else {
		cond.AddChild(modify)
	}

	return end
}
