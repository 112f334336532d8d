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
buildStatementTree assembles a single P1 basic block out of consecutive
STATEMENT tokens up to and including the terminating SEMICOLON. If the
caller's walker is already a P1 node, the new tokens are coalesced into
it directly instead of creating a sibling block -- this is what keeps
adjacent statements at the same nesting level in one basic block.
*/
func (p *Parser) buildStatementTree(walker *node.Node) *node.Node {
	if walker == nil {
		return nil
	}

	tok, ok := p.q.pop()
	if !ok {
		return walker
	}

	state := p.table.Next(fsm.InitStart, tok.Kind)
	if state != fsm.StatementStart {
		return walker
	}

	var cur *node.Node
	if walker.Kind != node.P1 {
		cur = p.newNode(mapFSMToDecomp(state))
		cur.Tokens = append(cur.Tokens, tok)
		walker.AddChild(cur)
	} else {
		cur = walker
		cur.Tokens = append(cur.Tokens, tok)
	}

	for !p.q.empty() {
		peek, _ := p.q.peek()
		peekState := p.table.Next(state, peek.Kind)

		if peekState == fsm.Error {
			p.report(cerr.NewGrammarError(peek))
			return cur
		}

		tok, _ = p.q.pop()
		cur.Tokens = append(cur.Tokens, tok)

		if peekState == fsm.StatementEnd {
			break
		}
		state = peekState
	}

	return cur
}
