/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package parser drives the table-driven finite-state parser: it owns
// the master token queue and node list, dispatches to one of six
// recursive sub-builders, and performs node minimisation and edge
// extraction once the queue is drained.
package parser

import (
	"github.com/krotik/cflow/cerr"
	"github.com/krotik/cflow/fsm"
	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/token"
)

/*
queue is a one-token-lookahead view over the full token slice. It is
consumed front-to-back only; nothing is ever pushed back.
*/
type queue struct {
	tokens []token.Token
	pos    int
}

func (q *queue) empty() bool {
	return q.pos >= len(q.tokens)
}

func (q *queue) peek() (token.Token, bool) {
	if q.empty() {
		return token.Token{}, false
	}
	return q.tokens[q.pos], true
}

func (q *queue) pop() (token.Token, bool) {
	t, ok := q.peek()
	if ok {
		q.pos++
	}
	return t, ok
}

/*
Parser owns the master token queue and master node list for a single
parse. Construct one per parse; it shares no mutable state with any
other Parser.
*/
type Parser struct {
	table       *fsm.Table
	q           *queue
	nodes       []*node.Node
	idSeq       int
	diagnostics []*cerr.Diagnostic
}

/*
New creates a Parser over the given token stream.
*/
func New(tokens []token.Token) *Parser {
	return &Parser{
		table: fsm.New(),
		q:     &queue{tokens: tokens},
	}
}

/*
Diagnostics returns every best-effort error recorded while parsing. A
non-empty result does not mean the returned node set is empty: partial
sub-graphs built before the error are still linked into the parent (see
DESIGN.md's decision on the corresponding Open Question).
*/
func (p *Parser) Diagnostics() []*cerr.Diagnostic {
	return p.diagnostics
}

/*
Nodes returns every node created during this parse, minus any that a
call to Minimise has since merged away.
*/
func (p *Parser) Nodes() []*node.Node {
	return p.nodes
}

func (p *Parser) nextID() int {
	id := p.idSeq
	p.idSeq++
	return id
}

func (p *Parser) newNode(kind node.DecompKind) *node.Node {
	n := node.New(p.nextID(), kind)
	p.nodes = append(p.nodes, n)
	return n
}

func (p *Parser) report(d *cerr.Diagnostic) {
	p.diagnostics = append(p.diagnostics, d)
}

/*
Parse drains the entire token queue, repeatedly invoking BuildTree, and
returns the single rooted entry node (or nil for empty input).
*/
func (p *Parser) Parse() *node.Node {
	// The synthetic anchor is not a P1 node, so a leading statement gets
	// a block of its own instead of being coalesced into the anchor,
	// which never appears in the node list.
	root := node.New(-1, node.F1)
	walker := root

	for !p.q.empty() {
		before, _ := p.q.peek()

		if next := p.BuildTree(walker, fsm.Error); next != nil {
			walker = next
		}

		if after, ok := p.q.peek(); ok && after == before {
			// BuildTree made no progress (an unrecognised leading
			// token); drop it so the loop terminates.
			p.q.pop()
		}
	}

	if len(root.Children) == 0 {
		return nil
	}

	entry := root.Children[0]
	entry.Parents = nil
	return entry
}

/*
BuildTree is the dispatch entry point: it consults T[INIT_START][peek]
to decide which of the six sub-builders should run, and returns the
node the caller should continue attaching to. The state argument is
ignored; dispatch always starts from INIT_START.
*/
func (p *Parser) BuildTree(walker *node.Node, _ fsm.State) *node.Node {
	peek, ok := p.q.peek()
	if !ok {
		return nil
	}

	state := p.table.Next(fsm.InitStart, peek.Kind)
	if !fsm.IsStartState(state) {
		return nil
	}

	switch state {
	case fsm.StatementStart:
		return p.buildStatementTree(walker)
	case fsm.IfStart:
		return p.buildIfTree(walker)
	case fsm.WhileStart:
		return p.buildWhileTree(walker)
	case fsm.DoWhileStart:
		return p.buildDoWhileTree(walker)
	case fsm.ForStart:
		return p.buildForTree(walker)
	case fsm.FuncStart:
		return p.buildFunctionTree(walker)
	}
	return nil
}

// emptyBodyPlaceholder synthesises the P1 placeholder node the grammar
// calls for whenever a braced body turns out to be empty ("{}"). The
// placeholder carries a single empty-sequence token on the line of the
// last real token seen.
func (p *Parser) emptyBodyPlaceholder(line int) *node.Node {
	n := p.newNode(node.P1)
	n.Tokens = append(n.Tokens, token.New(line, token.Statement, ""))
	return n
}
