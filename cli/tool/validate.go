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
	"os"
	"path/filepath"
	"strings"

	"github.com/shakfu/alda-go/parser"
)

/*
Validate walks a directory structure and parses every Alda file found,
writing the formatted error of each file that failed to scan or parse
to stderr. No AST
transformation or rewriting happens here - this only checks that the
source is well-formed Alda, mirroring the directory-walk shape of the
teacher's own bulk file tool but ending at validation rather than
rewriting the files in place.
*/
func Validate() error {
	wd, _ := os.Getwd()

	dir := flag.String("dir", wd, "Root directory for Alda files")
	ext := flag.String("ext", ".alda", "Extension for Alda files")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s validate [options]", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "This tool parses all Alda files in a directory structure and reports errors.")
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(osArgs) >= 2 {
		flag.CommandLine.Parse(osArgs[2:])

		if *showHelp {
			flag.Usage()
			return nil
		}
	}

	fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Validating all %v files in %v", *ext, *dir))

	failures := 0

	err := filepath.Walk(*dir,
		func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, *ext) {
				var data string
				if data, err = readSource(path); err == nil {
					if _, perr := parser.Parse(data, path); perr != nil {
						failures++
						fmt.Fprintln(osStderr, perr.Error())
					}
				}
			}
			return err
		})

	if err == nil && failures > 0 {
		err = fmt.Errorf("%d file(s) failed to validate", failures)
	}

	return err
}
