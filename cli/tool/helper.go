/*
 * alda-go
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package tool implements the subcommands of the alda-go command line tool.
*/
package tool

import (
	"io"
	"io/ioutil"
	"os"
)

/*
osArgs is a local copy of os.Args (used for unit tests).
*/
var osArgs = os.Args

/*
osStdout is a local copy of os.Stdout (used for unit tests).
*/
var osStdout io.Writer = os.Stdout

/*
osStderr is a local copy of os.Stderr (used for unit tests).
*/
var osStderr io.Writer = os.Stderr

/*
osExit is a local variable pointing to os.Exit (used for unit tests).
*/
var osExit func(int) = os.Exit

/*
readSource reads the given file, or stdin if path is "-".
*/
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), err
	}

	data, err := ioutil.ReadFile(path)
	return string(data), err
}
