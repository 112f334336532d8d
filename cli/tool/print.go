/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"fmt"

	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/parser"
	"github.com/krotik/common/stringutil"
)

/*
PrintNodes renders a node table: id, kind, parent ids, child ids. It
mirrors the reference driver's node listing.
*/
func PrintNodes(nodes []*node.Node) string {
	const cols = 5
	tabData := []string{"ID", "Kind", "Parents", "Children", "Source"}

	for _, n := range nodes {
		tabData = append(tabData, fmt.Sprint(n.ID), fmt.Sprintf("%v", n.Kind),
			idList(n.Parents), idList(n.Children), tokenSequence(n))
	}

	if len(tabData) <= cols {
		return "(no nodes)"
	}

	return stringutil.PrintGraphicStringTable(tabData, cols, 1, stringutil.SingleDoubleLineTable)
}

/*
PrintEdges renders an edge table: from id, to id, and whether it was
classified as a curved edge.
*/
func PrintEdges(edges []parser.Edge) string {
	tabData := []string{"From", "To", "Curve"}

	for _, e := range edges {
		tabData = append(tabData, fmt.Sprint(e.From.ID), fmt.Sprint(e.To.ID), fmt.Sprint(e.Curve))
	}

	if len(tabData) <= 3 {
		return "(no edges)"
	}

	return stringutil.PrintGraphicStringTable(tabData, 3, 1, stringutil.SingleDoubleLineTable)
}

func idList(ns []*node.Node) string {
	if len(ns) == 0 {
		return "-"
	}
	s := ""
	for i, n := range ns {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(n.ID)
	}
	return s
}

func tokenSequence(n *node.Node) string {
	if len(n.Tokens) == 0 {
		return "-"
	}
	s := ""
	for i, t := range n.Tokens {
		if i > 0 {
			s += " "
		}
		s += t.Sequence
	}
	return s
}
