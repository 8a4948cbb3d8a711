/*
File    : di/parser/parser_validate.go
Project : di compiler front-end
*/

package parser

import (
	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/diag"
)

// Context validation. After a subtree is parsed it is checked against the
// context it appears in: expressions forbid "=" (below the top level of a
// block) and regex literals; patterns allow only var, lit, regex, array,
// dict, dictup and the "@", "~" and "=" operators. Both validators recurse
// structurally and abort with a parse error at the offending node.

// validateExpr checks a subtree in expression context. Nested do-blocks
// are skipped: their forms were validated during their own assembly. The
// patterns of case clauses are validated as patterns.
func (par *Parser) validateExpr(n ast.Node) {
	switch e := n.(type) {
	case *ast.Lit, *ast.Var, *ast.Do:
		// do-block forms are validated in classifyForm
	case *ast.Regex:
		line, col := n.Pos()
		panic(diag.Errorf(diag.KindContext, line, col,
			"Regular expression can't be used in this context."))
	case *ast.Array:
		for _, el := range e.Elems {
			par.validateExpr(el)
		}
	case *ast.Dict:
		for _, entry := range e.Entries {
			par.validateExpr(entry.Key)
			par.validateExpr(entry.Value)
		}
	case *ast.DictUp:
		par.validateExpr(e.Subj)
		for _, entry := range e.Entries {
			par.validateExpr(entry.Key)
			par.validateExpr(entry.Value)
		}
	case *ast.Apply:
		par.validateExpr(e.Func)
		for _, arg := range e.Args {
			par.validateExpr(arg)
		}
	case *ast.If:
		par.validateExpr(e.Cond)
		par.validateExpr(e.Then)
		par.validateExpr(e.Else)
	case *ast.Case:
		par.validateExpr(e.Subj)
		for _, c := range e.Clauses {
			for _, pat := range c.Pats {
				par.validatePattern(pat)
			}
			par.validateExpr(c.Body)
		}
	case *ast.Unary:
		par.validateExpr(e.Right)
	case *ast.Binary:
		if e.Op == "=" {
			failNode(n, "expression")
		}
		par.validateExpr(e.Left)
		par.validateExpr(e.Right)
	default:
		failNode(n, "expression")
	}
}

// validatePattern checks a subtree in pattern context.
func (par *Parser) validatePattern(n ast.Node) {
	switch p := n.(type) {
	case *ast.Var, *ast.Lit, *ast.Regex:
	case *ast.Array:
		for _, el := range p.Elems {
			par.validatePattern(el)
		}
	case *ast.Dict:
		for _, entry := range p.Entries {
			par.validatePattern(entry.Key)
			par.validatePattern(entry.Value)
		}
	case *ast.DictUp:
		par.validatePattern(p.Subj)
		for _, entry := range p.Entries {
			par.validatePattern(entry.Key)
			par.validatePattern(entry.Value)
		}
	case *ast.Binary:
		switch p.Op {
		case "@", "~", "=":
			par.validatePattern(p.Left)
			par.validatePattern(p.Right)
		default:
			failNode(n, "pattern")
		}
	default:
		failNode(n, "pattern")
	}
}
