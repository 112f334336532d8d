/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package cflow is the CFG facade: it buffers source text line by line,
tokenizes and parses it on demand, and exposes the resulting minimised
node and edge sets. It is the only entry point external callers (the
command-line driver, tests) need -- the tokenizer, fsm, node and parser
packages are implementation detail.
*/
package cflow

import (
	"time"

	"github.com/krotik/cflow/cerr"
	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/parser"
	"github.com/krotik/cflow/token"
	"github.com/krotik/cflow/tokenizer"
	"github.com/krotik/cflow/util"
)

/*
Builder buffers source lines and builds one control flow graph from
them. Construct one per input; it shares no mutable state with any
other Builder.
*/
type Builder struct {
	Minimise bool // Whether to run node minimisation after parsing
	Logger   util.Logger

	tokenizer *tokenizer.Tokenizer
	lines     []string

	nodes []*node.Node
	edges []parser.Edge

	diagnostics []*cerr.Diagnostic
}

/*
New creates a Builder with the default tokenizer rules and node
minimisation enabled.
*/
func New() *Builder {
	return &Builder{
		Minimise:  true,
		Logger:    util.NewNullLogger(),
		tokenizer: tokenizer.New(),
	}
}

/*
AddLine buffers one line of source. Multi-line constructs are formed
at Parse time by concatenating the buffered lines, each tagged with its
own 1-based line number.
*/
func (b *Builder) AddLine(text string) {
	b.lines = append(b.lines, text)
}

/*
Parse tokenizes every buffered line in order, builds the CFG, runs
node minimisation (unless disabled), and extracts the final edge set.
Calling Parse twice on the same Builder is not required to succeed;
callers should build one CFG per input. Tokenizer and grammar failures
are collected as best-effort diagnostics rather than returned -- Parse
only returns a non-nil error for a condition that leaves no usable
graph at all (there is none at present; it is kept for interface
stability).
*/
func (b *Builder) Parse() error {
	start := time.Now()

	var tokens []token.Token
	for i, line := range b.lines {
		lineNo := i + 1
		lineTokens, err := b.tokenizer.Tokenize(lineNo, line)
		if err != nil {
			d := &cerr.Diagnostic{
				Class: cerr.TokenizeNoMatch,
				Token: token.New(lineNo, token.Error, line),
				Msg:   err.Error(),
			}
			b.diagnostics = append(b.diagnostics, d)
			b.Logger.LogDiagnostic(d)
			continue
		}
		tokens = append(tokens, lineTokens...)
	}

	p := parser.New(tokens)
	root := p.Parse()

	for _, d := range p.Diagnostics() {
		b.diagnostics = append(b.diagnostics, d)
		b.Logger.LogDiagnostic(d)
	}

	if b.Minimise {
		p.Minimise()
	}

	b.nodes = p.Nodes()
	b.edges = p.Edges()

	if root != nil {
		b.Logger.LogDebug("entry node: ", root.String())
	}

	b.Logger.LogDebug("parse took ", time.Since(start))

	return nil
}

/*
Nodes returns the final node set. Only meaningful after Parse.
*/
func (b *Builder) Nodes() []*node.Node {
	return b.nodes
}

/*
Edges returns the final edge set, each classified straight or curved.
Only meaningful after Parse.
*/
func (b *Builder) Edges() []parser.Edge {
	return b.edges
}

/*
Diagnostics returns every best-effort error recorded while parsing.
*/
func (b *Builder) Diagnostics() []*cerr.Diagnostic {
	return b.diagnostics
}
