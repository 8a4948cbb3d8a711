/*
File    : di/commands.go
Project : di compiler front-end
*/

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/oops"

	"github.com/zuiderkwast/di/annotate"
	"github.com/zuiderkwast/di/diag"
	"github.com/zuiderkwast/di/lexer"
	"github.com/zuiderkwast/di/parser"
	"github.com/zuiderkwast/di/pretty"
	"github.com/zuiderkwast/di/value"
)

// readSource reads the named source file.
func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", oops.Code("READ_FAILED").With("file", filename).Wrap(err)
	}
	return string(data), nil
}

// runSource dumps the raw source text as a string value.
func runSource(filename string) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	fmt.Printf("Source: %s\n", (&value.String{Value: src}).ToString())
	return nil
}

// runLex dumps every token until eof.
func runLex(filename string) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	lex := lexer.New(src)
	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		fmt.Printf("Token: %s\n", tok)
		if tok.Op == lexer.EOF {
			return nil
		}
	}
}

// runParse dumps the raw syntax tree.
func runParse(filename string) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return err
	}
	slog.Debug("parsed", "file", filename, "forms", len(tree.Seq), "defs", len(tree.Defs))
	fmt.Println("Parsing done.")
	fmt.Print(pretty.Dump(tree))
	return nil
}

// runAnnotate dumps the annotated syntax tree. Warnings go to stdout; with
// warn-errors set they fail the run.
func runAnnotate(filename string) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return err
	}
	tree, warnings, err := annotate.Annotate(tree)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Println(w.String())
	}
	if cfg != nil && cfg.WarnErrors && len(warnings) > 0 {
		w := warnings[0]
		return diag.Errorf(diag.KindContext, w.Line, w.Column, "%s", w.Message)
	}
	slog.Debug("annotated", "file", filename, "warnings", len(warnings))
	fmt.Print(pretty.Dump(tree))
	return nil
}

// runPrettyPrint parses and pretty-prints the source.
func runPrettyPrint(filename string) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return err
	}
	fmt.Print(pretty.Print(tree))
	return nil
}
