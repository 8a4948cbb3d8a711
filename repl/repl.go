/*
File    : di/repl/repl.go
Project : di compiler front-end

Package repl implements the interactive front-end of the di compiler. The
REPL reads a line of di source, runs it through the lexer, the parser and
the annotator, and pretty-prints the annotated result. It provides:
- Command history navigation using arrow keys
- Colored feedback for warnings and errors

The REPL uses the readline library for line editing and stops at the
annotated tree: it analyzes code, it does not run it.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/zuiderkwast/di/annotate"
	"github.com/zuiderkwast/di/parser"
	"github.com/zuiderkwast/di/pretty"
)

// Color definitions for REPL output:
// - yellowColor: warnings
// - redColor: errors
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session.
type Repl struct {
	Banner  string // banner displayed at startup
	Version string // version string of the compiler
	Prompt  string // prompt shown to the user (e.g. "di> ")
	Dump    bool   // dump the raw annotated tree instead of pretty-printing
}

// New creates a REPL with the default banner and prompt.
func New(version string) *Repl {
	return &Repl{
		Banner:  "di compiler front-end",
		Version: version,
		Prompt:  "di> ",
	}
}

// Start runs the read-analyze-print loop until EOF (ctrl-d) or "exit".
func (r *Repl) Start() error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	greenColor.Printf("%s %s\n", r.Banner, r.Version)
	cyanColor.Println("Enter an expression, or 'exit' to leave.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		r.handle(line)
	}
}

// handle analyzes one line of input and prints the result.
func (r *Repl) handle(line string) {
	tree, err := parser.Parse(line)
	if err != nil {
		redColor.Println(err.Error())
		return
	}
	tree, warnings, err := annotate.Annotate(tree)
	if err != nil {
		redColor.Println(err.Error())
		return
	}
	for _, w := range warnings {
		yellowColor.Println(w.String())
	}
	if r.Dump {
		fmt.Print(pretty.Dump(tree))
	} else {
		fmt.Print(pretty.Print(tree))
	}
}
