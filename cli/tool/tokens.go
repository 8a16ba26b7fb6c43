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

	"devt.de/krotik/common/stringutil"

	"github.com/shakfu/alda-go/parser"
)

/*
Tokens scans a single Alda file (or stdin if "-") and prints its token
stream as a graphic table.
*/
func Tokens() error {
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s tokens <file>", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "This tool scans an Alda file and prints its token stream.")
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

	tokens, serr := parser.Scan(source, path)

	tabData := []string{"Kind", "Lexeme", "Position"}
	for _, t := range tokens {
		tabData = append(tabData, t.Kind.String(), t.Lexeme, t.Pos.String())
	}

	fmt.Fprintln(osStdout, stringutil.PrintGraphicStringTable(tabData, 3, 1,
		stringutil.SingleDoubleLineTable))

	return serr
}
