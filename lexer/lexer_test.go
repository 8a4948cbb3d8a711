/*
File    : di/lexer/lexer_test.go
Project : di compiler front-end
*/

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuiderkwast/di/diag"
	"github.com/zuiderkwast/di/value"
)

// lexAll collects every token up to and including eof.
func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := New(src)
	var tokens []Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Op == EOF {
			return tokens
		}
	}
}

// ops extracts the op of each token.
func ops(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Op
	}
	return out
}

// represents one expected token stream for an input
type lexCase struct {
	Input       string
	ExpectedOps []string
}

func TestLexer_TokenStreams(t *testing.T) {
	tests := []lexCase{
		// an integer literal is terminated by a synthetic ";" before eof
		{`42`, []string{LIT, ";", EOF}},
		// division after an identifier
		{`a/b`, []string{IDENT, "/", IDENT, ";", EOF}},
		// regex after "=", where division makes no sense
		{`a = /b/`, []string{IDENT, "=", REGEX, ";", EOF}},
		// relational operators are canonicalized
		{`x <= y`, []string{IDENT, "=<", IDENT, ";", EOF}},
		{"x ≤ y", []string{IDENT, "=<", IDENT, ";", EOF}},
		{"x ≥ y", []string{IDENT, ">=", IDENT, ";", EOF}},
		{"x ≠ y", []string{IDENT, "!=", IDENT, ";", EOF}},
		{`x >= y == z != w`, []string{IDENT, ">=", IDENT, "==", IDENT, "!=", IDENT, ";", EOF}},
		// keywords are their own ops; true/false/null are literals
		{`case x of end`, []string{"case", IDENT, "of", "end", ";", EOF}},
		{`true false null`, []string{LIT, LIT, LIT, ";", EOF}},
		// arrow and the single-char operators
		{`x -> [y, z]`, []string{IDENT, "->", "[", IDENT, ",", IDENT, "]", ";", EOF}},
		{`f(x) ~ g @ h`, []string{IDENT, "(", IDENT, ")", "~", IDENT, "@", IDENT, ";", EOF}},
		// a "-" is always the operator, even before a digit
		{`-5`, []string{"-", LIT, ";", EOF}},
		// comments are consumed up to the end of the line
		{"1 # one\n2", []string{LIT, ";", LIT, ";", EOF}},
		// an explicitly closed block emits no second terminator at eof
		{`do x end`, []string{"do", IDENT, "end", ";", EOF}},
		// empty input is just eof
		{``, []string{EOF}},
		{"# only a comment\n", []string{EOF}},
	}
	for _, test := range tests {
		tokens := lexAll(t, test.Input)
		assert.Equal(t, test.ExpectedOps, ops(tokens), "input: %q", test.Input)
	}
}

func TestLexer_LayoutBlock(t *testing.T) {
	// Blocks can be written by indentation alone: lines at the block's
	// column get a synthetic ";" and the dedent at eof a synthetic "end",
	// followed by the top-level ";".
	src := "do\n  x = 1\n  x + 2"
	tokens := lexAll(t, src)
	assert.Equal(t,
		[]string{"do", IDENT, "=", LIT, ";", IDENT, "+", LIT, "end", ";", EOF},
		ops(tokens))
}

func TestLexer_LayoutNested(t *testing.T) {
	src := "do\n  a\n  do\n    b\n  c"
	tokens := lexAll(t, src)
	assert.Equal(t,
		[]string{"do", IDENT, ";", "do", IDENT, "end", ";", IDENT, "end", ";", EOF},
		ops(tokens))
}

func TestLexer_LayoutLetIn(t *testing.T) {
	// A let frame closes with a synthetic "in" on dedent; the top-level
	// layout then separates the dedented line from the let form.
	src := "let\n  x = 1\ny"
	tokens := lexAll(t, src)
	assert.Equal(t,
		[]string{"let", IDENT, "=", LIT, "in", ";", IDENT, ";", EOF},
		ops(tokens))
}

func TestLexer_LayoutNoDoubleSemicolon(t *testing.T) {
	// An explicit ";" at the end of a line suppresses the synthetic one.
	src := "do\n  x = 1;\n  x"
	tokens := lexAll(t, src)
	assert.Equal(t,
		[]string{"do", IDENT, "=", LIT, ";", IDENT, "end", ";", EOF},
		ops(tokens))
}

func TestLexer_CaseOfLayout(t *testing.T) {
	src := "case v of\n  1 -> 2\n  3 -> 4"
	tokens := lexAll(t, src)
	assert.Equal(t,
		[]string{"case", IDENT, "of", LIT, "->", LIT, ";", LIT, "->", LIT, "end", ";", EOF},
		ops(tokens))
}

func TestLexer_Positions(t *testing.T) {
	tokens := lexAll(t, "ab + 1\ncd")
	require.Len(t, tokens, 7)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 1, tokens[1].Line)
	assert.Equal(t, 4, tokens[1].Column)
	assert.Equal(t, 2, tokens[3].Line) // synthetic ";" at the start of line 2
	assert.Equal(t, 1, tokens[3].Column)
	assert.Equal(t, 2, tokens[4].Line)
	assert.Equal(t, 1, tokens[4].Column)
}

func TestLexer_TabColumns(t *testing.T) {
	// A tab rounds the column up to the next multiple of 8 plus 1.
	tokens := lexAll(t, "\tx")
	assert.Equal(t, 9, tokens[0].Column)
	tokens = lexAll(t, "ab\tx")
	assert.Equal(t, 9, tokens[1].Column)
}

func TestLexer_NumberLiterals(t *testing.T) {
	tests := []struct {
		Input    string
		Expected value.Value
	}{
		{`0`, &value.Integer{Value: 0}},
		{`42`, &value.Integer{Value: 42}},
		{`3.14`, &value.Double{Value: 3.14}},
		{`1e3`, &value.Double{Value: 1000}},
		{`2.5e-1`, &value.Double{Value: 0.25}},
	}
	for _, test := range tests {
		tokens := lexAll(t, test.Input)
		require.Equal(t, LIT, tokens[0].Op, "input: %q", test.Input)
		assert.True(t, test.Expected.Equal(tokens[0].Data), "input: %q", test.Input)
	}
}

func TestLexer_StringLiterals(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"q\"q"`, `q"q`},
		{`"A"`, "A"},
		{`"back\\slash"`, `back\slash`},
		{`"\u0041\u00e9"`, "Aé"},
		{`"sla\/sh"`, "sla/sh"},
	}
	for _, test := range tests {
		tokens := lexAll(t, test.Input)
		require.Equal(t, LIT, tokens[0].Op, "input: %q", test.Input)
		assert.True(t, (&value.String{Value: test.Expected}).Equal(tokens[0].Data),
			"input: %q", test.Input)
	}
}

func TestLexer_RegexData(t *testing.T) {
	tokens := lexAll(t, `x = /ab+c\/d/`)
	require.Equal(t, REGEX, tokens[2].Op)
	assert.Equal(t, `ab+c\/d`, tokens[2].Data.(*value.String).Value)
}

func TestLexer_UnicodeIdentifiers(t *testing.T) {
	tokens := lexAll(t, "räksmörgås = $x_1")
	assert.Equal(t, []string{IDENT, "=", IDENT, ";", EOF}, ops(tokens))
	assert.Equal(t, "räksmörgås", tokens[0].Ident())
	assert.Equal(t, "$x_1", tokens[2].Ident())
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		Input  string
		Line   int
		Column int
	}{
		{`|`, 1, 1},
		{`x = "unterminated`, 1, 5},
		{"x =\n  /unterminated", 2, 3},
	}
	for _, test := range tests {
		lex := New(test.Input)
		var err error
		for err == nil {
			var tok Token
			tok, err = lex.Next()
			if err == nil && tok.Op == EOF {
				t.Fatalf("input %q lexed without error", test.Input)
			}
		}
		var d *diag.Error
		require.ErrorAs(t, err, &d, "input: %q", test.Input)
		assert.Equal(t, diag.KindLex, d.Kind, "input: %q", test.Input)
		assert.Equal(t, test.Line, d.Line, "input: %q", test.Input)
		assert.Equal(t, test.Column, d.Column, "input: %q", test.Input)
		assert.Contains(t, d.Message, "Unmatched token", "input: %q", test.Input)
	}
}
