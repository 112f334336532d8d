/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package node defines the basic-block type of the control flow graph
// and its decomposition kinds.
package node

import (
	"fmt"
	"strings"

	"github.com/krotik/cflow/token"
)

/*
DecompKind is the syntactic role a node plays in the decomposition of
the source into basic blocks. Borrowed from structured-program
decomposition theory: P1 is a plain statement, D0/D1 are if-then and
if-then-else heads, D2/D3 are while and do-while heads, F1 is a
function head, C1 is reserved for a future case/switch decomposition,
and the *End variants are the matching join nodes.
*/
type DecompKind int

const (
	P1 DecompKind = iota
	D0
	D0End
	D1
	D1End
	D2
	D2End
	D3
	D3End
	F1
	F1End
	C1
	C1End
)

var decompNames = map[DecompKind]string{
	P1: "P1", D0: "D0", D0End: "D0_END",
	D1: "D1", D1End: "D1_END",
	D2: "D2", D2End: "D2_END",
	D3: "D3", D3End: "D3_END",
	F1: "F1", F1End: "F1_END",
	C1: "C1", C1End: "C1_END",
}

/*
String returns the name of the decomposition kind.
*/
func (k DecompKind) String() string {
	if name, ok := decompNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DecompKind(%d)", int(k))
}

/*
IsJoin reports whether k is one of the *End kinds: the synthetic join
nodes a sub-builder emits to close off a construct's arms, as opposed
to a head (D0, D1, ...) or a plain statement block (P1). Only join
kinds are safe to coalesce when two sub-builders both land a join on
the same source line -- a head or a P1 block carries its own distinct
content and two of them sharing a line is coincidence, not duplication.
*/
func (k DecompKind) IsJoin() bool {
	switch k {
	case D0End, D1End, D2End, D3End, F1End, C1End:
		return true
	}
	return false
}

/*
Node is a basic block: a straight-line run of Tokens that executes to
completion without internal branching. Node is created by the six
parser sub-builders and is only ever mutated during parsing and
minimisation; after Parse returns, the node set is frozen.
*/
type Node struct {
	ID       int
	Kind     DecompKind
	Tokens   []token.Token
	Parents  []*Node
	Children []*Node
}

/*
New creates a Node with the given id and decomposition kind. Nodes are
always allocated on the heap and referred to by pointer so that the
cyclic adjacency graph (loop back-edges) needs no reference counting.
*/
func New(id int, kind DecompKind) *Node {
	return &Node{ID: id, Kind: kind}
}

/*
FirstToken returns the first accumulated token, or the zero Token if
this node has none yet (only possible before a sub-builder has
appended anything).
*/
func (n *Node) FirstToken() (token.Token, bool) {
	if len(n.Tokens) == 0 {
		return token.Token{}, false
	}
	return n.Tokens[0], true
}

/*
AddChild links n -> c and reciprocally c -> n, preserving the
double-linked adjacency invariant. It is a no-op if the edge already
exists.
*/
func (n *Node) AddChild(c *Node) {
	for _, existing := range n.Children {
		if existing == c {
			return
		}
	}
	n.Children = append(n.Children, c)
	c.Parents = append(c.Parents, n)
}

/*
RemoveChild unlinks n -> c and the reciprocal c -> n, if present.
*/
func (n *Node) RemoveChild(c *Node) {
	n.Children = removeNode(n.Children, c)
	c.Parents = removeNode(c.Parents, n)
}

func removeNode(list []*Node, target *Node) []*Node {
	out := list[:0]
	for _, n := range list {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}

/*
String renders the node roughly the way the reference tool's node
repr does: id, kind, and the tokens grouped by source line.
*/
func (n *Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d) %v", n.ID, n.Kind)

	lastLine := -1
	for _, t := range n.Tokens {
		if t.Line != lastLine {
			b.WriteByte('\n')
			lastLine = t.Line
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(t.Sequence)
	}

	return b.String()
}
