/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"encoding/json"
	"testing"

	"github.com/krotik/cflow/cerr"
	"github.com/krotik/cflow/token"
)

func TestFileReport(t *testing.T) {

	empty := &FileReport{Source: "empty.c"}

	if empty.Error() != "empty.c: no diagnostics" {
		t.Error("Unexpected result:", empty.Error())
		return
	}

	tok := token.New(3, token.Statement, "x = 1")
	d1 := cerr.NewGrammarError(tok)
	d2 := cerr.NewStructuralError(tok, "do-while loop produced no while(...) tail")

	fr := &FileReport{
		Source:      "main.c",
		Diagnostics: []*cerr.Diagnostic{d1, d2},
	}

	expected := "main.c: " + d1.Error() + "\n" + "main.c: " + d2.Error()

	if fr.Error() != expected {
		t.Error("Unexpected result:", fr.Error())
		return
	}

	b, err := json.Marshal(fr)
	if err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Error("Unexpected error:", err)
		return
	}

	if decoded["source"] != "main.c" {
		t.Error("Unexpected source:", decoded["source"])
		return
	}

	diags, ok := decoded["diagnostics"].([]interface{})
	if !ok || len(diags) != 2 {
		t.Error("Unexpected diagnostics:", decoded["diagnostics"])
		return
	}
}
