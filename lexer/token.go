/*
File    : di/lexer/token.go
Project : di compiler front-end
*/

package lexer

import (
	"fmt"

	"github.com/zuiderkwast/di/value"
)

// Token operator/category constants. A token's Op is either a fixed
// operator or keyword spelling, or one of the category constants below.
// The relational operators are canonicalized by the lexer: the source
// spellings <= and ≤ become =<, ≥ becomes >= and ≠ becomes !=, so every
// later pass sees a single spelling per operator.
const (
	// IDENT is a user-defined identifier; Data holds the name as a string
	IDENT = "ident"
	// LIT is a literal; Data holds the value (number, string, boolean, null)
	LIT = "lit"
	// REGEX is a regular expression literal; Data holds the pattern string
	REGEX = "regex"
	// EOF marks the end of the token stream
	EOF = "eof"
)

// KEYWORDS is the set of reserved words. A word matching one of these
// becomes a token whose Op is the word itself.
var KEYWORDS = map[string]bool{
	"case": true, "of": true, "let": true, "in": true,
	"do": true, "end": true,
	"if": true, "then": true, "else": true,
	"and": true, "or": true, "not": true, "mod": true,
}

// layoutKeywords are the token ops that open an indentation-sensitive
// block: the next token's column becomes the block's indentation.
var layoutKeywords = map[string]bool{
	"do": true, "of": true, "let": true, "where": true,
}

// topFrame is the op of the implicit layout frame for the top level of a
// source file, anchored at its first token.
const topFrame = "top"

// multiOps are the multi-character operators, longest match first. The
// second column is the canonical spelling emitted in the token.
var multiOps = [][2]string{
	{"->", "->"},
	{"<=", "=<"},
	{">=", ">="},
	{"≤", "=<"},
	{"≥", ">="},
	{"==", "=="},
	{"!=", "!="},
	{"≠", "!="},
}

// singleOps are the single-character operators.
const singleOps = "<>,:;=+*~@-{}[]()\\"

// Token represents a single lexical token of di source code.
//
// Fields:
//   - Op: the operator/keyword spelling, or ident/lit/regex/eof
//   - Data: only set for ident (String), lit (the literal value) and
//     regex (the pattern as a String)
//   - Line, Column: 1-based position of the token's first byte
type Token struct {
	Op     string
	Data   value.Value
	Line   int
	Column int
}

// NewToken creates a token without a payload.
func NewToken(op string, line, column int) Token {
	return Token{Op: op, Line: line, Column: column}
}

// NewTokenWithData creates a token carrying a payload value.
func NewTokenWithData(op string, data value.Value, line, column int) Token {
	return Token{Op: op, Data: data, Line: line, Column: column}
}

// Ident returns the identifier name carried by an ident token.
func (tok Token) Ident() string {
	return tok.Data.(*value.String).Value
}

// String returns a human-readable representation of the token, used by the
// lex command.
func (tok Token) String() string {
	if tok.Data != nil {
		return fmt.Sprintf("%d:%d %s %s", tok.Line, tok.Column, tok.Op, tok.Data.ToString())
	}
	return fmt.Sprintf("%d:%d %s", tok.Line, tok.Column, tok.Op)
}

// Frame is one pending layout block: the keyword that opened it and the
// column of the first token inside it.
type Frame struct {
	Op     string
	Column int
}

// terminator returns the synthetic token op that closes the frame.
func (f Frame) terminator() string {
	if f.Op == "let" {
		return "in"
	}
	return "end"
}
