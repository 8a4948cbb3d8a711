/*
File    : di/main.go
Project : di compiler front-end
*/

// dlc is the command-line front-end of the di compiler:
//
//	dlc [COMMAND] FILE
//
// with commands source, lex, parse, annotate, pp and repl. The default
// command is lex. Exit code 0 on success, 1 for usage or runtime errors,
// 2 for lex, parse and annotation errors.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zuiderkwast/di/diag"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		var d *diag.Error
		if errors.As(err, &d) {
			fmt.Fprintln(os.Stderr, d.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
