/*
 * alda-go
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"flag"
	"fmt"

	"github.com/shakfu/alda-go/parser"
)

/*
AST parses a single Alda file (or stdin if "-") and prints a debug dump
of its abstract syntax tree.
*/
func AST() error {
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s ast <file>", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "This tool parses an Alda file and prints its abstract syntax tree.")
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(osArgs) >= 2 {
		flag.CommandLine.Parse(osArgs[2:])
	}

	if *showHelp || len(flag.Args()) == 0 {
		flag.Usage()
		return nil
	}

	path := flag.Args()[0]

	source, err := readSource(path)
	if err != nil {
		return err
	}

	root, perr := parser.Parse(source, path)
	if root != nil {
		fmt.Fprint(osStdout, root.String())
	}

	return perr
}
