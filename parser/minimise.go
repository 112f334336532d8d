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
	"fmt"

	"github.com/krotik/cflow/node"
	"github.com/krotik/common/sortutil"
)

/*
Minimise merges duplicate join nodes produced by the sub-builders. Two
nodes are duplicates iff they are both a *End (node.DecompKind.IsJoin)
kind and share the same (decomp kind, first token line) key -- the
synthetic join nodes a loop or if/else chain creates for the same
source line collapse into one.

Only join kinds are ever clustered. A head (D0, D1, ...) or a plain
statement block (P1) is excluded even when it shares a key with
another node of the same kind: unlike a join node, which always carries
the single token that closed its construct and so is a true duplicate
of any other join on that line, a P1 block carries the real statement
tokens of one specific arm. An if/else whose arms are both one
statement on the same source line ("if (c) a; else b;") produces two
P1 nodes that happen to key identically despite holding different
tokens -- merging them would silently drop one arm's content and one of
the construct's two outgoing edges.

For each cluster of 2+ duplicates, the first member (in node-id order)
survives as root; every other member's parents and children are
re-pointed at root and the member is dropped from the master list. The
double-linking invariant holds throughout: every re-pointing updates
both sides of the edge.
*/
func (p *Parser) Minimise() {
	clusters := make(map[string][]*node.Node)

	for _, n := range p.nodes {
		if !n.Kind.IsJoin() {
			continue
		}
		tok, ok := n.FirstToken()
		if !ok {
			continue
		}
		key := fmt.Sprintf("%s:%d", n.Kind, tok.Line)
		clusters[key] = append(clusters[key], n)
	}

	var keys []interface{}
	for k := range clusters {
		keys = append(keys, k)
	}
	sortutil.InterfaceStrings(keys)

	removed := make(map[*node.Node]bool)

	for _, k := range keys {
		members := clusters[k.(string)]
		if len(members) < 2 {
			continue
		}

		root := members[0]
		for _, n := range members[1:] {
			mergeInto(root, n)
			removed[n] = true
		}
	}

	if len(removed) == 0 {
		return
	}

	kept := p.nodes[:0]
	for _, n := range p.nodes {
		if !removed[n] {
			kept = append(kept, n)
		}
	}
	p.nodes = kept
}

/*
mergeInto re-points every parent and child of n onto root, then drops
n from root's own adjacency (covering the case where root already had
n as a neighbour) so the graph carries no dangling reference to n.
*/
func mergeInto(root, n *node.Node) {
	parents := append([]*node.Node(nil), n.Parents...)
	for _, parent := range parents {
		if parent != root {
			parent.AddChild(root)
		}
		parent.RemoveChild(n)
	}

	children := append([]*node.Node(nil), n.Children...)
	for _, child := range children {
		if child != root {
			root.AddChild(child)
		}
		n.RemoveChild(child)
	}

	root.RemoveChild(n)
}
