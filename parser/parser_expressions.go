/*
File    : di/parser/parser_expressions.go
Project : di compiler front-end
*/

package parser

import (
	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/lexer"
)

// Expression precedence, lowest to highest:
//
//	expr   := expr0 ("=" expr)?         right associative
//	expr0  := expr1 (("and"|"or") expr1)*
//	expr1  := expr2 (("<"|">"|"=<"|">="|"=="|"!=") expr2)*
//	expr2  := expr3 (("+"|"-"|"~"|"@") expr3)*
//	expr3  := expr4 (("*"|"/"|"mod") expr4)*
//	expr4  := expr5 ("(" args? ")" | "{" entries? "}")*
//	expr5  := primaries
//
// Patterns share this grammar; the pattern restrictions are enforced by
// validation after parsing.

// expr parses a full expression including "=", which is right associative
// and only legal in the contexts checked during block assembly and
// validation.
func (par *Parser) expr() ast.Node {
	e := par.expr0()
	if _, _, ok := par.tryToken("="); ok {
		right := par.expr()
		e = par.binop("=", e, right)
	}
	return e
}

func (par *Parser) expr0() ast.Node {
	return par.leftAssoc((*Parser).expr1, "and", "or")
}

func (par *Parser) expr1() ast.Node {
	return par.leftAssoc((*Parser).expr2, "<", ">", "=<", ">=", "==", "!=")
}

func (par *Parser) expr2() ast.Node {
	return par.leftAssoc((*Parser).expr3, "+", "-", "~", "@")
}

func (par *Parser) expr3() ast.Node {
	return par.leftAssoc((*Parser).expr4, "*", "/", "mod")
}

// leftAssoc parses a sequence of next-level expressions separated by any
// of the supplied operator tokens, folded left-associatively.
func (par *Parser) leftAssoc(next func(*Parser) ast.Node, ops ...string) ast.Node {
	e := next(par)
	for {
		matched := false
		for _, op := range ops {
			if _, _, ok := par.tryToken(op); ok {
				right := next(par)
				e = par.binop(op, e, right)
				matched = true
				break
			}
		}
		if !matched {
			return e
		}
	}
}

// binop creates a binary node, copying line and column from the left
// operand.
func (par *Parser) binop(op string, left, right ast.Node) ast.Node {
	return &ast.Binary{Position: pos(left), Op: op, Left: left, Right: right}
}

// expr4 parses the postfix level: function application and dict update.
func (par *Parser) expr4() ast.Node {
	e := par.expr5()
	for {
		if _, _, ok := par.tryToken("("); ok {
			var args []ast.Node
			if !par.isToken(")") {
				for {
					args = append(args, par.expr())
					if _, _, ok := par.tryToken(","); ok {
						continue
					}
					break
				}
			}
			par.eat(")")
			e = &ast.Apply{Position: pos(e), Func: e, Args: args}
			continue
		}
		if _, _, ok := par.tryToken("{"); ok {
			entries := par.entries()
			e = &ast.DictUp{Position: pos(e), Subj: e, Entries: entries}
			continue
		}
		return e
	}
}

// entries parses "key : value" pairs separated by commas, terminated by
// "}". The opening "{" is already consumed.
func (par *Parser) entries() []*ast.Entry {
	var entries []*ast.Entry
	if _, _, ok := par.tryToken("}"); ok {
		return entries
	}
	for {
		key := par.expr()
		par.eat(":")
		val := par.expr()
		entries = append(entries, &ast.Entry{Position: pos(key), Key: key, Value: val})
		if _, _, ok := par.tryToken(","); ok {
			continue
		}
		break
	}
	par.eat("}")
	return entries
}

// expr5 parses the primaries: case, do, if, array and dict constructors,
// identifiers, literals, regex literals, unary operators and
// parenthesized expressions.
func (par *Parser) expr5() ast.Node {
	if line, col, ok := par.tryToken("case"); ok {
		subj := par.expr()
		par.eat("of")
		clauses := par.caseClauses()
		return &ast.Case{Position: ast.Position{Line: line, Column: col}, Subj: subj, Clauses: clauses}
	}
	if line, col, ok := par.tryToken("do"); ok {
		return par.parseBlockBody(line, col, "end")
	}
	if line, col, ok := par.tryToken("if"); ok {
		cond := par.expr()
		par.eat("then")
		thenExpr := par.expr()
		// layout may insert a ";" before else
		par.tryToken(";")
		par.eat("else")
		elseExpr := par.expr()
		return &ast.If{
			Position: ast.Position{Line: line, Column: col},
			Cond:     cond, Then: thenExpr, Else: elseExpr,
		}
	}
	if line, col, ok := par.tryToken("["); ok {
		var elems []ast.Node
		if _, _, closed := par.tryToken("]"); !closed {
			for {
				elems = append(elems, par.expr())
				if _, _, ok := par.tryToken(","); ok {
					continue
				}
				break
			}
			par.eat("]")
		}
		return &ast.Array{Position: ast.Position{Line: line, Column: col}, Elems: elems}
	}
	if line, col, ok := par.tryToken("{"); ok {
		entries := par.entries()
		return &ast.Dict{Position: ast.Position{Line: line, Column: col}, Entries: entries}
	}
	if par.isToken(lexer.IDENT) {
		tok := par.CurrToken
		par.fetch()
		return &ast.Var{Position: ast.Position{Line: tok.Line, Column: tok.Column}, Name: tok.Ident()}
	}
	if par.isToken(lexer.LIT) {
		tok := par.CurrToken
		par.fetch()
		return &ast.Lit{Position: ast.Position{Line: tok.Line, Column: tok.Column}, Value: tok.Data}
	}
	if par.isToken(lexer.REGEX) {
		tok := par.CurrToken
		par.fetch()
		return &ast.Regex{Position: ast.Position{Line: tok.Line, Column: tok.Column}, Regex: tok.Ident()}
	}
	if line, col, ok := par.tryToken("-"); ok {
		right := par.expr()
		return &ast.Unary{Position: ast.Position{Line: line, Column: col}, Op: "-", Right: right}
	}
	if line, col, ok := par.tryToken("not"); ok {
		right := par.expr()
		return &ast.Unary{Position: ast.Position{Line: line, Column: col}, Op: "not", Right: right}
	}
	if _, _, ok := par.tryToken("("); ok {
		e := par.expr()
		par.eat(")")
		return e
	}
	par.failRule("expression")
	return nil
}
