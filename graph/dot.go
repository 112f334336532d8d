/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package graph renders a built CFG as Graphviz DOT text. It is the
// one renderer spec.md carves out of the core's testable surface; no
// library in the retrieval pack binds to graphviz, so this uses the
// standard library's text/template rather than inventing a dependency.
package graph

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/parser"
)

const dotTemplate = `digraph cfg {
	rankdir=TB;
	node [shape=box, fontname="monospace"];
{{- range .Nodes}}
	n{{.ID}} [label="{{.Label}}"];
{{- end}}
{{range .Edges}}
	n{{.From}} -> n{{.To}}{{if .Curve}} [style=dashed]{{end}};
{{- end}}
}
`

type dotNode struct {
	ID    int
	Label string
}

type dotEdge struct {
	From, To int
	Curve    bool
}

var tmpl = template.Must(template.New("dot").Parse(dotTemplate))

/*
WriteDOT renders the given node and edge set as Graphviz DOT text.
*/
func WriteDOT(w io.Writer, nodes []*node.Node, edges []parser.Edge) error {
	data := struct {
		Nodes []dotNode
		Edges []dotEdge
	}{}

	for _, n := range nodes {
		data.Nodes = append(data.Nodes, dotNode{ID: n.ID, Label: dotLabel(n)})
	}

	for _, e := range edges {
		data.Edges = append(data.Edges, dotEdge{From: e.From.ID, To: e.To.ID, Curve: e.Curve})
	}

	return tmpl.Execute(w, data)
}

/*
dotLabel escapes a node's string form for embedding in a DOT label.
*/
func dotLabel(n *node.Node) string {
	s := n.String()
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

/*
ToDOTString is a convenience wrapper around WriteDOT for callers that
want the rendered text directly.
*/
func ToDOTString(nodes []*node.Node, edges []parser.Edge) (string, error) {
	var b strings.Builder
	if err := WriteDOT(&b, nodes, edges); err != nil {
		return "", fmt.Errorf("could not render DOT graph: %w", err)
	}
	return b.String(), nil
}
