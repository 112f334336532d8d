/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/krotik/cflow/cli/tool"
	"github.com/krotik/cflow/config"
)

func main() {

	// Initialize the default command line parser

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	// Define default usage message

	flag.Usage = func() {

		// Print usage for tool selection

		fmt.Println(fmt.Sprintf("Usage of %s <tool>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("cflow %v - Control Flow Graph construction toolkit", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    console   Interactive console (default)")
		fmt.Println("    graph     Build control flow graphs for files or a directory")
		fmt.Println("    dot       Build graphs and write .dot files instead of tables")
		fmt.Println("    watch     Rebuild graphs on a cron schedule as files change")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	// Parse the command bit

	if err := flag.CommandLine.Parse(os.Args[1:]); err == nil {

		if len(flag.Args()) > 0 {

			arg := flag.Args()[0]

			if arg == "console" {
				err = tool.NewCLIConsole().Console()
			} else if arg == "graph" {
				err = tool.Graph(flag.Args()[1:]...)
			} else if arg == "dot" {
				err = tool.GraphDot(flag.Args()[1:]...)
			} else if arg == "watch" {
				args := flag.Args()[1:]
				if len(args) < 1 {
					err = fmt.Errorf("watch requires a cron schedule, e.g. cflow watch \"*/5 * * * * *\" [path ...]")
				} else {
					err = tool.Watch(args[0], args[1:]...)
				}
			} else {
				flag.Usage()
			}

		} else if err == nil {

			err = tool.NewCLIConsole().Console()
		}

		if err != nil {
			fmt.Println(fmt.Sprintf("Error: %v", err))
		}

	}
}
