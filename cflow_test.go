/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cflow

import (
	"testing"

	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/util"
)

func TestBuilderSimpleProgram(t *testing.T) {
	b := New()
	b.AddLine("if (c) {")
	b.AddLine("x;")
	b.AddLine("}")

	if err := b.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if len(b.Nodes()) == 0 {
		t.Error("Expected at least one node")
		return
	}

	if len(b.Diagnostics()) != 0 {
		t.Error("Unexpected diagnostics:", b.Diagnostics())
		return
	}
}

func TestBuilderMinimiseToggle(t *testing.T) {
	raw := New()
	raw.Minimise = false
	raw.AddLine("if (c) { x; }")
	if err := raw.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	min := New()
	min.AddLine("if (c) { x; }")
	if err := min.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if len(min.Nodes()) >= len(raw.Nodes()) {
		t.Error("Expected minimisation to reduce the node count:", len(raw.Nodes()), len(min.Nodes()))
		return
	}
}

func TestBuilderTokenizeFailureIsDiagnostic(t *testing.T) {
	b := New()
	b.AddLine("x;")
	b.AddLine("$$$")
	b.AddLine("y;")

	if err := b.Parse(); err != nil {
		t.Fatal("Expected Parse to report tokenizer failures as diagnostics, not an error:", err)
	}

	if len(b.Diagnostics()) != 1 {
		t.Error("Expected exactly one diagnostic for the unrecognisable line:", b.Diagnostics())
		return
	}

	// The surrounding lines must still have been parsed into nodes.
	if len(b.Nodes()) == 0 {
		t.Error("Expected the surviving lines to still produce nodes:", b.Nodes())
		return
	}
}

func TestBuilderEdgesFollowNodes(t *testing.T) {
	b := New()
	b.AddLine("while (c) { x; }")

	if err := b.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if len(b.Edges()) == 0 {
		t.Error("Expected at least one edge for a while loop")
		return
	}
}

func TestBuilderLogsToProvidedLogger(t *testing.T) {
	b := New()
	b.Logger = util.NewMemoryLogger(10)
	b.AddLine("x;")

	if err := b.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	ml := b.Logger.(*util.MemoryLogger)
	if ml.Size() == 0 {
		t.Error("Expected the builder to have logged at least one debug message")
		return
	}
}

func TestBuilderEmptyInputProducesNoNodes(t *testing.T) {
	b := New()

	if err := b.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if len(b.Nodes()) != 0 {
		t.Error("Expected no nodes for empty input:", b.Nodes())
		return
	}
}

func TestBuilderNodesAreDecompKindTagged(t *testing.T) {
	b := New()
	b.AddLine("foo() { x; }")

	if err := b.Parse(); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	found := false
	for _, n := range b.Nodes() {
		if n.Kind == node.F1 {
			found = true
		}
	}

	if !found {
		t.Error("Expected a function head node among the result:", b.Nodes())
		return
	}
}
