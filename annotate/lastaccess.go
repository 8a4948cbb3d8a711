/*
File    : di/annotate/lastaccess.go
Project : di compiler front-end
*/

package annotate

import (
	"strings"

	"github.com/zuiderkwast/di/ast"
	"github.com/zuiderkwast/di/diag"
)

// Last-access marking. Given an ordered sequence of forms and a variable,
// the last form whose varset contains the variable owns the last access.
// Within that form the descent follows evaluation order backwards:
// binaries right then left ("=" left then right: the pattern match runs
// after the RHS), if marks both branches or falls back to the condition,
// case walks its clauses backwards or falls back to the subject, apply
// tries the arguments then the callee. Reaching the variable itself,
// access becomes last; a bind that is never accessed becomes discard with
// an unused-variable warning unless the name starts with an underscore.

// markLastAccessInSeq walks a sequence backwards and marks the last access
// of name inside the last form that mentions it. It reports whether any
// occurrence was found.
func (a *annotator) markLastAccessInSeq(seq []ast.Node, name string) bool {
	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i].Vars().Contains(name) {
			a.mustMarkLast(seq[i], name)
			return true
		}
	}
	return false
}

func (a *annotator) lastInClauses(cs []*ast.Clause, name string) bool {
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].Vars().Contains(name) {
			a.mustMarkLast(cs[i], name)
			return true
		}
	}
	return false
}

func (a *annotator) lastInEntries(es []*ast.Entry, name string) bool {
	for i := len(es) - 1; i >= 0; i-- {
		if es[i].Vars().Contains(name) {
			a.mustMarkLast(es[i], name)
			return true
		}
	}
	return false
}

func (a *annotator) mustMarkLast(e ast.Node, name string) {
	if !a.markLastAccess(e, name) {
		line, col := e.Pos()
		panic(diag.Errorf(diag.KindInternal, line, col,
			"Can't annotate %s as the last access of %s", e.Syntax(), name))
	}
}

// markLastAccess marks the last access of name within e. It returns false
// if the variable is not accessed in this branch.
func (a *annotator) markLastAccess(e ast.Node, name string) bool {
	if !e.Vars().Contains(name) {
		return false
	}
	switch n := e.(type) {
	case *ast.Var:
		if n.Name == name {
			switch n.Action {
			case ast.ActionAccess:
				n.Action = ast.ActionLast
			case ast.ActionBind:
				if !strings.HasPrefix(name, "_") {
					a.warn(n, "Unused variable '%s'", name)
				}
				n.Action = ast.ActionDiscard
			default:
				a.errorNode(n, diag.KindInternal,
					"Unexpected action %s marking last access of %s", n.Action, name)
			}
			return true
		}
		// A function access whose environment captures the variable: the
		// closure instantiation owns the last access, nothing to mark on
		// the var node itself.
		return true
	case *ast.Binary:
		if n.Op == "=" {
			if !a.markLastAccess(n.Left, name) {
				a.mustMarkLast(n.Right, name)
			}
			return true
		}
		if !a.markLastAccess(n.Right, name) {
			a.mustMarkLast(n.Left, name)
		}
		return true
	case *ast.Unary:
		a.mustMarkLast(n.Right, name)
		return true
	case *ast.If:
		lastThen := a.markLastAccess(n.Then, name)
		lastElse := a.markLastAccess(n.Else, name)
		if !lastThen && !lastElse {
			a.mustMarkLast(n.Cond, name)
		}
		return true
	case *ast.Case:
		if !a.lastInClauses(n.Clauses, name) {
			a.mustMarkLast(n.Subj, name)
		}
		return true
	case *ast.Clause:
		if !a.markLastAccess(n.Body, name) {
			if !a.markLastAccessInSeq(n.Pats, name) {
				a.errorNode(n, diag.KindInternal,
					"Can't annotate clause as the last access of %s", name)
			}
		}
		return true
	case *ast.Apply:
		if !a.markLastAccessInSeq(n.Args, name) {
			a.mustMarkLast(n.Func, name)
		}
		return true
	case *ast.Array:
		if !a.markLastAccessInSeq(n.Elems, name) {
			a.errorNode(n, diag.KindInternal,
				"Can't annotate array as the last access of %s", name)
		}
		return true
	case *ast.Dict:
		if !a.lastInEntries(n.Entries, name) {
			a.errorNode(n, diag.KindInternal,
				"Can't annotate dict as the last access of %s", name)
		}
		return true
	case *ast.DictUp:
		if !a.lastInEntries(n.Entries, name) {
			a.mustMarkLast(n.Subj, name)
		}
		return true
	case *ast.Entry:
		if !a.markLastAccess(n.Value, name) {
			a.mustMarkLast(n.Key, name)
		}
		return true
	case *ast.Do:
		if !a.markLastAccessInSeq(n.Seq, name) {
			a.errorNode(n, diag.KindInternal,
				"Can't annotate do as the last access of %s", name)
		}
		return true
	default:
		a.errorNode(e, diag.KindInternal,
			"Can't annotate %s as the last access of %s", e.Syntax(), name)
		return false
	}
}
