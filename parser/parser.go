/*
File    : di/parser/parser.go
Project : di compiler front-end
*/

// Package parser implements the recursive-descent parser for the di
// language. It consumes one token of lookahead from the lexer and emits a
// typed AST. The top level of a source file is the body of an implicit
// do-block; its forms are partitioned into a sequence of expressions and
// let-bindings plus a mapping from function name to multi-clause
// definition.
//
// Parsing is total: every token stream either yields a single do node or
// reports a parse error with a position inside the input. The first error
// terminates parsing; there is no recovery.
package parser

import (
	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/diag"
	"github.com/zuiderkwast/di/lexer"
)

// Parser holds the parsing state: the lexer and the single current token
// (one token of lookahead).
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
}

// Parse parses di source code and returns the implicit top-level do node.
// On failure it returns a *diag.Error with the position of the offending
// token or node.
func Parse(source string) (tree *ast.Do, err error) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*diag.Error); ok {
				tree = nil
				err = d
				return
			}
			panic(r)
		}
	}()
	par := NewParser(source)
	tree = par.parseProgram()
	return tree, nil
}

// NewParser creates a parser over the given source with the first token
// fetched. Lex errors surface as panics caught by Parse.
func NewParser(source string) *Parser {
	par := &Parser{Lex: lexer.New(source)}
	par.fetch()
	return par
}

// fetch advances to the next token.
func (par *Parser) fetch() {
	tok, err := par.Lex.Next()
	if err != nil {
		panic(err)
	}
	par.CurrToken = tok
}

// isToken reports whether the current token has the given op.
func (par *Parser) isToken(op string) bool {
	return par.CurrToken.Op == op
}

// tryToken consumes the current token if its op matches, returning its
// position and true; otherwise the token is left in place.
func (par *Parser) tryToken(op string) (line, col int, ok bool) {
	if !par.isToken(op) {
		return 0, 0, false
	}
	line, col = par.CurrToken.Line, par.CurrToken.Column
	par.fetch()
	return line, col, true
}

// eat consumes the current token, asserting its op.
func (par *Parser) eat(op string) {
	if par.isToken(op) {
		par.fetch()
		return
	}
	tok := par.CurrToken
	panic(diag.Errorf(diag.KindParse, tok.Line, tok.Column,
		"Unexpected %s. Expecting %s.", tok.Op, op))
}

// failRule aborts parsing with the grammar rule being attempted.
func (par *Parser) failRule(rule string) {
	tok := par.CurrToken
	panic(diag.Errorf(diag.KindParse, tok.Line, tok.Column,
		"Unexpected %s, parsing %s", tok.Op, rule))
}

// failNode aborts parsing with a context violation at a node's position.
func failNode(n ast.Node, context string) {
	line, col := n.Pos()
	panic(diag.Errorf(diag.KindParse, line, col,
		"Unexpected %s in %s", n.Syntax(), context))
}

// pos copies a node's position, used when a parent node takes the position
// of its first child.
func pos(n ast.Node) ast.Position {
	line, col := n.Pos()
	return ast.Position{Line: line, Column: col}
}

// parseProgram parses the whole source as the body of an implicit
// do-block terminated by eof.
func (par *Parser) parseProgram() *ast.Do {
	return par.parseBlockBody(1, 1, lexer.EOF)
}
