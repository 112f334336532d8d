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
	"os"
	"strings"

	"github.com/krotik/cflow"
	"github.com/krotik/cflow/config"
	"github.com/krotik/cflow/graph"
	"github.com/krotik/common/stringutil"
	"github.com/krotik/common/termutil"
)

/*
CLIConsole is an interactive line-buffering front end for cflow. Lines
are accumulated into a Builder until the user enters a blank line or
one of the console commands below, at which point the buffered source
is parsed and the resulting graph is printed.

Commands:

	:build        parse the buffered lines now
	:reset        discard the buffered lines without parsing
	:dot          parse and print the graph as DOT text instead of tables
	:find <glob>  list nodes of the last built graph whose source matches glob
	q, quit       exit the console
*/
type CLIConsole struct {
	Term termutil.ConsoleLineTerminal

	last *cflow.Builder
}

/*
NewCLIConsole creates a new console front end.
*/
func NewCLIConsole() *CLIConsole {
	return &CLIConsole{}
}

func (c *CLIConsole) isExitLine(s string) bool {
	s = strings.TrimSpace(s)
	return s == "q" || s == "quit"
}

/*
Console starts the interactive console on stdout. It blocks until the
user quits or input ends.
*/
func (c *CLIConsole) Console() error {
	var err error

	if c.Term == nil {
		if c.Term, err = termutil.NewConsoleLineTerminal(os.Stdout); err != nil {
			return err
		}

		if c.Term, err = termutil.AddHistoryMixin(c.Term, "", func(s string) bool {
			return c.isExitLine(s)
		}); err != nil {
			return err
		}
	}

	if err = c.Term.StartTerm(); err != nil {
		return err
	}
	defer c.Term.StopTerm()

	fmt.Fprintln(os.Stdout, fmt.Sprintf("cflow %v", config.ProductVersion))
	fmt.Fprintln(os.Stdout, "Enter source lines; a blank line builds the graph. Type 'q' or 'quit' to exit.")

	return c.runLoop()
}

/*
runLoop drives the read-eval-print loop once the terminal is ready.
Split out from Console so tests can exercise it against a fake
termutil.ConsoleLineTerminal without touching a real tty.
*/
func (c *CLIConsole) runLoop() error {
	b := cflow.New()
	b.Minimise = config.Bool(config.Minimise)

	line, err := c.Term.NextLine()
	for err == nil && !c.isExitLine(line) {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == ":reset":
			b = cflow.New()
			b.Minimise = config.Bool(config.Minimise)
		case trimmed == "" || trimmed == ":build":
			c.build(b, false)
			b = cflow.New()
			b.Minimise = config.Bool(config.Minimise)
		case trimmed == ":dot":
			c.build(b, true)
			b = cflow.New()
			b.Minimise = config.Bool(config.Minimise)
		case strings.HasPrefix(trimmed, ":find "):
			c.find(strings.TrimSpace(strings.TrimPrefix(trimmed, ":find ")))
		default:
			b.AddLine(line)
		}

		line, err = c.Term.NextLine()
	}

	return nil
}

func (c *CLIConsole) build(b *cflow.Builder, asDot bool) {
	if err := b.Parse(); err != nil {
		c.Term.WriteString(fmt.Sprintln("Error:", err))
		return
	}

	c.last = b

	for _, d := range b.Diagnostics() {
		c.Term.WriteString(fmt.Sprintln(d.Error()))
	}

	if asDot {
		text, err := graph.ToDOTString(b.Nodes(), b.Edges())
		if err != nil {
			c.Term.WriteString(fmt.Sprintln("Error:", err))
			return
		}
		c.Term.WriteString(text)
		return
	}

	c.Term.WriteString(PrintNodes(b.Nodes()))
	c.Term.WriteString(PrintEdges(b.Edges()))
}

/*
find lists, from the last built graph, every node whose rendered
source matches the given glob expression.
*/
func (c *CLIConsole) find(glob string) {
	if c.last == nil {
		c.Term.WriteString(fmt.Sprintln("No graph has been built yet"))
		return
	}

	tabData := []string{"ID", "Source"}

	for _, n := range c.last.Nodes() {
		src := tokenSequence(n)
		if glob != "" && !matchesFulltextSearch(c.Term, src, glob) {
			continue
		}
		tabData = fillTableRow(tabData, fmt.Sprint(n.ID), src)
	}

	if len(tabData) <= 2 {
		c.Term.WriteString(fmt.Sprintln("No matching nodes"))
		return
	}

	c.Term.WriteString(stringutil.PrintGraphicStringTable(tabData, 2, 1, stringutil.SingleDoubleLineTable))
}
