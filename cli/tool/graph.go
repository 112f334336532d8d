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
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/krotik/cflow"
	"github.com/krotik/cflow/config"
	"github.com/krotik/cflow/graph"
	"github.com/krotik/cflow/util"
	"github.com/krotik/common/fileutil"
)

/*
Graph builds control flow graphs for a given set of source files.

With no arguments it walks the current (or -dir) directory for every
file matching -ext. Each
matching file becomes one independent graph; results are written to
stdout as text tables, or alongside the source as a ".dot" file when
-dot is set.
*/
func Graph(paths ...string) error {
	var err error

	wd, _ := os.Getwd()

	dir := flag.String("dir", wd, "Root directory to search when no paths are given")
	ext := flag.String("ext", ".c", "Extension for source files")
	dot := flag.Bool("dot", false, "Write a .dot file next to each source file instead of printing tables")
	jsonOut := flag.Bool("json", false, "Print diagnostics as a JSON FileReport instead of tables")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s graph [options] [file ...]", os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "This tool builds a control flow graph for each given file, or every")
		fmt.Fprintln(flag.CommandLine.Output(), "matching file in a directory structure if no files are given.")
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(paths) == 0 && len(os.Args) >= 2 {
		flag.CommandLine.Parse(osArgs[2:])

		if *showHelp {
			flag.Usage()
			return nil
		}

		paths = flag.Args()
	}

	if len(paths) == 0 {
		err = filepath.Walk(*dir, func(path string, i os.FileInfo, walkErr error) error {
			if walkErr == nil && !i.IsDir() && strings.HasSuffix(path, *ext) {
				paths = append(paths, path)
			}
			return walkErr
		})
	}

	if err != nil {
		return err
	}

	mode := outputText
	if *dot {
		mode = outputDot
	} else if *jsonOut {
		mode = outputJSON
	}

	return graphPaths(paths, mode)
}

/*
GraphDot is Graph with DOT-file output forced on, for callers (such as
the "dot" command) that already know their path list and want to skip
flag parsing entirely.
*/
func GraphDot(paths ...string) error {
	return graphPaths(paths, outputDot)
}

/*
outputMode selects how graphFile renders a single file's result.
*/
type outputMode int

const (
	outputText outputMode = iota
	outputDot
	outputJSON
)

/*
graphPaths fans the given files out over config.WorkerCount workers, the
way the multi-file driver is sized in the config package. Each worker
builds its own Builder (Builder shares no state across instances) and
renders to a private buffer so concurrent files never interleave their
output; buffers are flushed to stdout in the order their worker
finishes, under a single mutex.
*/
func graphPaths(paths []string, mode outputMode) error {
	workers := config.Int(config.WorkerCount)
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, path := range paths {
		path := path

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if ok, existErr := fileutil.PathExists(path); existErr != nil || !ok {
				mu.Lock()
				fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Could not find %v", path))
				mu.Unlock()
				return
			}

			var out strings.Builder
			if gerr := graphFile(path, mode, &out); gerr != nil {
				mu.Lock()
				fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Could not build graph for %v: %v", path, gerr))
				mu.Unlock()
				return
			}

			mu.Lock()
			io.Copy(os.Stdout, strings.NewReader(out.String()))
			mu.Unlock()
		}()
	}

	wg.Wait()

	return nil
}

/*
graphFile builds the control flow graph for a single file and renders
it to w according to mode: a text table, a ".dot" file written next to
the source, or a JSON FileReport of its diagnostics.
*/
func graphFile(path string, mode outputMode, w io.Writer) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	b := cflow.New()
	b.Minimise = config.Bool(config.Minimise)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		b.AddLine(scanner.Text())
	}
	if serr := scanner.Err(); serr != nil {
		return serr
	}

	if err := b.Parse(); err != nil {
		return err
	}

	if mode == outputJSON {
		report := &util.FileReport{Source: path, Diagnostics: b.Diagnostics()}
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, d := range b.Diagnostics() {
		fmt.Fprintln(w, fmt.Sprintf("%v: %v", path, d.Error()))
	}

	if mode == outputDot {
		dotPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".dot"
		text, err := graph.ToDOTString(b.Nodes(), b.Edges())
		if err != nil {
			return err
		}
		return ioutil.WriteFile(dotPath, []byte(text), 0644)
	}

	fmt.Fprintln(w, fmt.Sprintf("--- %v ---", path))
	fmt.Fprintln(w, PrintNodes(b.Nodes()))
	fmt.Fprintln(w, PrintEdges(b.Edges()))

	return nil
}
