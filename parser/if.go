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
buildIfTree assembles an if/else-if/else chain. The head node starts
out as D0 (plain if-then); the first ELSE encountered promotes it to
D1. Every arm (then, each else-if, the final else) produces its own
join node, collected in lastWalkers; a single shared end node is
created once the whole chain closes and every arm's join is linked to
it. If the head ends up with fewer than two children (a pure if-then
with no else at all), an extra start->end edge lets control bypass the
body entirely.
*/
func (p *Parser) buildIfTree(parent *node.Node) *node.Node {
	if parent == nil {
		return nil
	}

	tok, ok := p.q.pop()
	if !ok {
		return parent
	}

	state := p.table.Next(fsm.InitStart, tok.Kind)
	if state != fsm.IfStart {
		return parent
	}

	start := p.newNode(mapFSMToDecomp(state))
	start.Tokens = append(start.Tokens, tok)
	parent.AddChild(start)

	cur := start
	var lastWalkers []*node.Node
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
		case fsm.IfThenSingleStatement, fsm.ElseIfStatement, fsm.IfElseSingleStatement:
			if next := p.BuildTree(cur, state); next != nil {
				cur = next
			}

			join := p.newNode(mapFSMToDecomp(peekState))
			join.Tokens = append(join.Tokens, lastTokenOf(cur))
			cur.AddChild(join)
			lastWalkers = append(lastWalkers, join)
			cur = join
			success = true

		case fsm.IfThenStatement, fsm.IfElseStatement:
			if next := p.BuildTree(cur, state); next != nil {
				cur = next
			}

		case fsm.IfElse:
			tok, _ = p.q.pop()
			branch := p.newNode(node.P1)
			branch.Tokens = append(branch.Tokens, tok)
			start.AddChild(branch)
			cur = branch
			start.Kind = node.D1

		case fsm.IfThenEnd, fsm.ElseIfEnd, fsm.IfElseEnd:
			if state == fsm.IfThenBraceOpen || state == fsm.IfElseBraceOpen {
				empty := p.emptyBodyPlaceholder(lastLineOf(cur))
				cur.AddChild(empty)
				cur = empty
			}

			tok, _ = p.q.pop()
			join := p.newNode(mapFSMToDecomp(peekState))
			join.Tokens = append(join.Tokens, tok)
			cur.AddChild(join)
			lastWalkers = append(lastWalkers, join)
			cur = join
			success = true

		default:
			tok, _ = p.q.pop()
			cur.Tokens = append(cur.Tokens, tok)
		}

		state = peekState
	}

	end := p.newNode(mapFSMToDecomp(state))
	end.Tokens = append(end.Tokens, lastTokenOf(cur))

	if len(start.Children) < 2 {
		start.AddChild(end)
	}

	for _, w := range lastWalkers {
		w.AddChild(end)
	}

	return end
}
