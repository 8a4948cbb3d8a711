/*
File    : di/parser/parser_blocks.go
Project : di compiler front-end
*/

package parser

import (
	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/diag"
)

// parseBlockBody parses a ";"-separated sequence of top-level forms,
// terminated by term ("end" for do-blocks, eof for the implicit top-level
// block). Each form is classified into the block's seq or defs. A trailing
// ";" before the terminator is accepted; the layout algorithm produces one
// for sources that end in a newline.
func (par *Parser) parseBlockBody(line, col int, term string) *ast.Do {
	blk := &ast.Do{
		Position: ast.Position{Line: line, Column: col},
		Defs:     make(map[string]*ast.FuncDef),
	}
	for {
		if par.isToken(term) {
			break
		}
		form := par.expr()
		par.classifyForm(blk, form)
		if _, _, ok := par.tryToken(";"); ok {
			continue
		}
		break
	}
	par.eat(term)
	return blk
}

// classifyForm sorts one top-level form into the block. A "=" whose LHS is
// an application of a plain variable is a function-definition clause; its
// arguments become the clause's patterns and the clauses accumulate under
// the function's name. Every other form is an expression, where a "=" is a
// let-binding whose LHS must be a pattern.
func (par *Parser) classifyForm(blk *ast.Do, form ast.Node) {
	bin, isBin := form.(*ast.Binary)
	if isBin && bin.Op == "=" {
		if app, isApp := bin.Left.(*ast.Apply); isApp {
			if fn, isVar := app.Func.(*ast.Var); isVar {
				par.addClause(blk, fn.Name, app, bin.Right)
				return
			}
		}
		par.validatePattern(bin.Left)
		par.validateExpr(bin.Right)
		blk.Seq = append(blk.Seq, form)
		return
	}
	par.validateExpr(form)
	blk.Seq = append(blk.Seq, form)
}

// addClause appends one equation to the named function definition,
// checking that all clauses of a name share the same arity.
func (par *Parser) addClause(blk *ast.Do, name string, lhs *ast.Apply, body ast.Node) {
	for _, pat := range lhs.Args {
		par.validatePattern(pat)
	}
	par.validateExpr(body)
	clause := &ast.Clause{Position: pos(lhs), Pats: lhs.Args, Body: body}

	def, ok := blk.Defs[name]
	if !ok {
		def = &ast.FuncDef{
			Position: pos(lhs),
			Name:     name,
			Arity:    len(lhs.Args),
		}
		blk.Defs[name] = def
		blk.DefNames = append(blk.DefNames, name)
	} else if def.Arity != len(lhs.Args) {
		line, col := lhs.Pos()
		panic(diag.Errorf(diag.KindArity, line, col,
			"Arity mismatch in definition of '%s'", name))
	}
	def.Clauses = append(def.Clauses, clause)
}

// caseClauses parses "pattern -> expr" clauses separated by ";" and closed
// by "end". A ";" directly before "end" is tolerated for layout's sake.
func (par *Parser) caseClauses() []*ast.Clause {
	var clauses []*ast.Clause
	for {
		pat := par.expr()
		par.eat("->")
		body := par.expr()
		clauses = append(clauses, &ast.Clause{
			Position: pos(pat),
			Pats:     []ast.Node{pat},
			Body:     body,
		})
		if _, _, ok := par.tryToken(";"); ok {
			if par.isToken("end") {
				break
			}
			continue
		}
		break
	}
	par.eat("end")
	return clauses
}
