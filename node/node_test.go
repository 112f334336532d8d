/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package node

import (
	"testing"

	"github.com/krotik/cflow/token"
)

func TestAddChildReciprocal(t *testing.T) {
	a := New(0, P1)
	b := New(1, P1)

	a.AddChild(b)

	if len(a.Children) != 1 || a.Children[0] != b {
		t.Error("Unexpected result:", a.Children)
		return
	}

	if len(b.Parents) != 1 || b.Parents[0] != a {
		t.Error("Unexpected result:", b.Parents)
		return
	}
}

func TestAddChildIdempotent(t *testing.T) {
	a := New(0, P1)
	b := New(1, P1)

	a.AddChild(b)
	a.AddChild(b)

	if len(a.Children) != 1 {
		t.Error("Expected AddChild to be a no-op for an already-linked edge:", a.Children)
		return
	}

	if len(b.Parents) != 1 {
		t.Error("Unexpected result:", b.Parents)
		return
	}
}

func TestRemoveChildReciprocal(t *testing.T) {
	a := New(0, P1)
	b := New(1, P1)
	c := New(2, P1)

	a.AddChild(b)
	a.AddChild(c)
	a.RemoveChild(b)

	if len(a.Children) != 1 || a.Children[0] != c {
		t.Error("Unexpected result:", a.Children)
		return
	}

	if len(b.Parents) != 0 {
		t.Error("Unexpected result:", b.Parents)
		return
	}
}

func TestRemoveChildNotPresent(t *testing.T) {
	a := New(0, P1)
	b := New(1, P1)

	a.RemoveChild(b)

	if len(a.Children) != 0 {
		t.Error("Unexpected result:", a.Children)
		return
	}
}

func TestFirstToken(t *testing.T) {
	n := New(0, P1)

	if _, ok := n.FirstToken(); ok {
		t.Error("Expected no first token on a freshly created node")
		return
	}

	n.Tokens = append(n.Tokens, token.New(1, token.Statement, "x"))
	n.Tokens = append(n.Tokens, token.New(1, token.Semicolon, ";"))

	tok, ok := n.FirstToken()
	if !ok || tok.Sequence != "x" {
		t.Error("Unexpected result:", tok, ok)
		return
	}
}

func TestDecompKindString(t *testing.T) {
	if res := D1.String(); res != "D1" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := DecompKind(999).String(); res != "DecompKind(999)" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestDecompKindIsJoin(t *testing.T) {
	joins := []DecompKind{D0End, D1End, D2End, D3End, F1End, C1End}
	for _, k := range joins {
		if !k.IsJoin() {
			t.Error("Expected an End kind to be a join:", k)
			return
		}
	}

	heads := []DecompKind{P1, D0, D1, D2, D3, F1, C1}
	for _, k := range heads {
		if k.IsJoin() {
			t.Error("Expected a head or statement kind not to be a join:", k)
			return
		}
	}
}

func TestNodeString(t *testing.T) {
	n := New(3, D0)
	n.Tokens = append(n.Tokens, token.New(1, token.If, "if"))
	n.Tokens = append(n.Tokens, token.New(2, token.Statement, "x"))

	res := n.String()

	if res == "" {
		t.Error("Expected a non-empty rendering")
		return
	}
}
