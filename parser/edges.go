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

import "github.com/krotik/cflow/node"

/*
Edge is a single directed control-transfer between two basic blocks.
Curve marks an edge that has a reciprocal counterpart in the node set
(From and To exchange roles in some other edge) -- the DOT renderer in
package graph draws these dashed; every other edge is drawn solid.
*/
type Edge struct {
	From  *node.Node
	To    *node.Node
	Curve bool
}

/*
Edges extracts the flat edge set { (n, c) : n in nodes, c in n.Children }
and classifies each as straight or curved.
*/
func (p *Parser) Edges() []Edge {
	reciprocal := make(map[[2]int]bool)
	for _, n := range p.nodes {
		for _, c := range n.Children {
			reciprocal[[2]int{n.ID, c.ID}] = true
		}
	}

	var edges []Edge
	for _, n := range p.nodes {
		for _, c := range n.Children {
			edges = append(edges, Edge{
				From:  n,
				To:    c,
				Curve: reciprocal[[2]int{c.ID, n.ID}],
			})
		}
	}

	return edges
}
