/*
File    : di/diag/diag.go
Project : di compiler front-end
*/

// Package diag defines the diagnostics shared by the compiler passes: typed
// fatal errors carrying a source position and non-fatal warnings. The first
// error terminates the pipeline; there is no recovery or multi-error
// reporting.
package diag

import "fmt"

// Kind classifies a diagnostic.
type Kind string

const (
	// KindLex is an unmatched byte at the cursor
	KindLex Kind = "lex"
	// KindParse is an unexpected token
	KindParse Kind = "parse"
	// KindContext is a construct used in the wrong expression/pattern context
	KindContext Kind = "context"
	// KindUndefined is a variable name not visible at its use site
	KindUndefined Kind = "undefined"
	// KindArity is a function definition whose clauses disagree on arity
	KindArity Kind = "arity"
	// KindInternal is an impossible AST shape reached in a traversal
	KindInternal Kind = "internal"
)

// Error is a fatal diagnostic with a 1-based source position.
type Error struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
}

// Error renders the diagnostic in the reporting format of its kind:
// parse errors as "Parse error on line L, column C: MSG", everything else
// as "L:C: MSG".
func (e *Error) Error() string {
	if e.Kind == KindParse || e.Kind == KindArity {
		return fmt.Sprintf("Parse error on line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Errorf creates an Error at the given position.
func Errorf(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal diagnostic. Warnings are collected by the
// annotator and printed by the caller; they do not halt the pipeline.
type Warning struct {
	Line    int
	Column  int
	Message string
}

// String renders the warning as "L:C: Warning: MSG".
func (w Warning) String() string {
	return fmt.Sprintf("%d:%d: Warning: %s", w.Line, w.Column, w.Message)
}
