/*
File    : di/annotate/firstaccess.go
Project : di compiler front-end
*/

package annotate

import "github.com/zuiderkwast/di/ast"

// First-access marking, the symmetric dual of last-access marking. The
// sequence is walked forwards and the descent follows evaluation order:
// binaries left then right ("=" right then left), if marks the condition
// or else both branches (a conditional first access is still treated as
// the first access), case tries the subject then walks its clauses
// forwards, apply tries the callee then the arguments. The binding
// occurrence itself is skipped: an access becomes first, and an access
// already marked last becomes only.

// markFirstAccessInSeq walks a sequence forwards and marks the first
// access of name. It reports whether an access was marked; a form that
// contains only the binding occurrence is skipped.
func (a *annotator) markFirstAccessInSeq(seq []ast.Node, name string) bool {
	for _, e := range seq {
		if e.Vars().Contains(name) && a.markFirstAccess(e, name) {
			return true
		}
	}
	return false
}

func (a *annotator) firstInClauses(cs []*ast.Clause, name string) bool {
	for _, c := range cs {
		if c.Vars().Contains(name) && a.markFirstAccess(c, name) {
			return true
		}
	}
	return false
}

func (a *annotator) firstInEntries(es []*ast.Entry, name string) bool {
	for _, entry := range es {
		if entry.Vars().Contains(name) && a.markFirstAccess(entry, name) {
			return true
		}
	}
	return false
}

// markFirstAccess marks the first access of name within e. It returns
// false if the branch contains no access (only the binding, or nothing).
func (a *annotator) markFirstAccess(e ast.Node, name string) bool {
	if !e.Vars().Contains(name) {
		return false
	}
	switch n := e.(type) {
	case *ast.Var:
		if n.Name == name {
			switch n.Action {
			case ast.ActionAccess:
				n.Action = ast.ActionFirst
				return true
			case ast.ActionLast:
				n.Action = ast.ActionOnly
				return true
			default:
				// the binding occurrence (bind or discard)
				return false
			}
		}
		// A function access instantiates its closure: the captured
		// variable's first access happens there.
		return true
	case *ast.Binary:
		if n.Op == "=" {
			if a.markFirstAccess(n.Right, name) {
				return true
			}
			return a.markFirstAccess(n.Left, name)
		}
		if a.markFirstAccess(n.Left, name) {
			return true
		}
		return a.markFirstAccess(n.Right, name)
	case *ast.Unary:
		return a.markFirstAccess(n.Right, name)
	case *ast.If:
		if a.markFirstAccess(n.Cond, name) {
			return true
		}
		firstThen := a.markFirstAccess(n.Then, name)
		firstElse := a.markFirstAccess(n.Else, name)
		return firstThen || firstElse
	case *ast.Case:
		if a.markFirstAccess(n.Subj, name) {
			return true
		}
		return a.firstInClauses(n.Clauses, name)
	case *ast.Clause:
		if a.markFirstAccessInSeq(n.Pats, name) {
			return true
		}
		return a.markFirstAccess(n.Body, name)
	case *ast.Apply:
		if a.markFirstAccess(n.Func, name) {
			return true
		}
		return a.markFirstAccessInSeq(n.Args, name)
	case *ast.Array:
		return a.markFirstAccessInSeq(n.Elems, name)
	case *ast.Dict:
		return a.firstInEntries(n.Entries, name)
	case *ast.DictUp:
		if a.markFirstAccess(n.Subj, name) {
			return true
		}
		return a.firstInEntries(n.Entries, name)
	case *ast.Entry:
		if a.markFirstAccess(n.Key, name) {
			return true
		}
		return a.markFirstAccess(n.Value, name)
	case *ast.Do:
		return a.markFirstAccessInSeq(n.Seq, name)
	default:
		return false
	}
}
