/*
 * alda-go
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
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

	"github.com/shakfu/alda-go/cli/tool"
	"github.com/shakfu/alda-go/config"
)

func main() {

	// Initialize the default command line parser

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	// Define default usage message

	flag.Usage = func() {

		// Print usage for tool selection

		fmt.Println(fmt.Sprintf("Usage of %s <tool>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("alda-go %v - Alda scanner and parser", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    tokens    Scan a file and print its token stream")
		fmt.Println("    ast       Parse a file and print its abstract syntax tree")
		fmt.Println("    validate  Parse all Alda files in a directory structure")
		fmt.Println("    version   Print the alda-go version")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	// Parse the command bit

	if err := flag.CommandLine.Parse(os.Args[1:]); err == nil {

		if len(flag.Args()) > 0 {

			arg := flag.Args()[0]

			if arg == "tokens" {
				err = tool.Tokens()
			} else if arg == "ast" {
				err = tool.AST()
			} else if arg == "validate" {
				err = tool.Validate()
			} else if arg == "version" {
				fmt.Println(config.GetVersion())
			} else {
				flag.Usage()
			}

		} else {
			flag.Usage()
		}

		if err != nil {
			fmt.Println(fmt.Sprintf("Error: %v", err))
		}

	}
}
