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
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempSource(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal("Could not write fixture:", err)
	}
	return path
}

func TestGraphFileText(t *testing.T) {
	dir, err := ioutil.TempDir("", "cflow-graph-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeTempSource(t, dir, "sample.c", "if (c) {\nx;\n}\n")

	var out strings.Builder
	if err := graphFile(path, outputText, &out); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if !strings.Contains(out.String(), path) {
		t.Error("Expected the report header to name the source file:", out.String())
		return
	}
}

func TestGraphFileDot(t *testing.T) {
	dir, err := ioutil.TempDir("", "cflow-graph-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeTempSource(t, dir, "sample.c", "x;\n")

	var out strings.Builder
	if err := graphFile(path, outputDot, &out); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	dotPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".dot"
	data, err := ioutil.ReadFile(dotPath)
	if err != nil {
		t.Fatal("Expected a .dot file to have been written:", err)
	}

	if !strings.HasPrefix(string(data), "digraph cfg {") {
		t.Error("Unexpected .dot contents:", string(data))
		return
	}
}

func TestGraphFileJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "cflow-graph-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeTempSource(t, dir, "bad.c", "x;\nif (c) }\n")

	var out strings.Builder
	if err := graphFile(path, outputJSON, &out); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	var report map[string]interface{}
	if err := json.Unmarshal([]byte(out.String()), &report); err != nil {
		t.Fatal("Expected valid JSON output:", err, out.String())
	}

	if report["source"] != path {
		t.Error("Expected the report to name the source file:", report)
		return
	}

	diags, ok := report["diagnostics"].([]interface{})
	if !ok || len(diags) != 1 {
		t.Error("Expected exactly one diagnostic in the report:", report)
		return
	}
}

func TestGraphPathsMissingFile(t *testing.T) {
	if err := graphPaths([]string{"/no/such/file.c"}, outputText); err != nil {
		t.Fatal("Expected graphPaths to report missing files rather than fail:", err)
	}
}

func TestGraphPathsMultipleFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "cflow-graph-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	a := writeTempSource(t, dir, "a.c", "x;\n")
	b := writeTempSource(t, dir, "b.c", "y;\n")

	if err := graphPaths([]string{a, b}, outputText); err != nil {
		t.Fatal("Unexpected error:", err)
	}
}
